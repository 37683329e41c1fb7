package httpapp

import (
	"errors"
	"net/http"

	"github.com/cesargomez89/topmovies/internal/constants"
	"github.com/cesargomez89/topmovies/internal/domain"
)

type errorPage struct {
	StatusText string
	Message    string
	Status     int
}

// StatusFor maps a service error onto the HTTP status it is reported with.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidID):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrDuplicateTitle):
		return http.StatusConflict
	case errors.Is(err, domain.ErrUpstream), errors.Is(err, domain.ErrMalformedResponse):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func userMessage(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "That link is missing a valid movie id."
	case http.StatusNotFound:
		return "That movie is not in your list."
	case http.StatusConflict:
		return "A movie with that title is already in your list."
	case http.StatusBadGateway:
		return "The movie database could not be reached. Please try again."
	default:
		return "Something went wrong."
	}
}

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusFor(err)
	log := h.Logger.With("path", r.URL.Path, "status", status, "error", err)
	if reqID := w.Header().Get(constants.HeaderRequestID); reqID != "" {
		log = log.With("request_id", reqID)
	}
	if status >= http.StatusInternalServerError {
		log.Error("Request failed")
	} else {
		log.Warn("Request rejected")
	}

	h.RenderPageStatus(w, status, "error.html", errorPage{
		Status:     status,
		StatusText: http.StatusText(status),
		Message:    userMessage(status),
	})
}
