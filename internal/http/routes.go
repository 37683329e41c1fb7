package httpapp

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/cesargomez89/topmovies/internal/domain"
	"github.com/cesargomez89/topmovies/internal/http/dto"
)

type indexPage struct {
	Movies []*domain.Movie
}

type addPage struct {
	Errors map[string]string
	Title  string
}

type selectPage struct {
	Query      string
	Candidates []domain.Candidate
}

type editPage struct {
	Movie  *domain.Movie
	Errors map[string]string
	Rating string
	Review string
}

func (h *Handler) IndexPage(w http.ResponseWriter, r *http.Request) {
	movies, err := h.Movies.List(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.RenderPage(w, "index.html", indexPage{Movies: movies})
}

func (h *Handler) AddPage(w http.ResponseWriter, r *http.Request) {
	h.RenderPage(w, "add.html", addPage{})
}

func (h *Handler) AddSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.RenderPageStatus(w, http.StatusBadRequest, "add.html", addPage{Errors: map[string]string{"title": "could not be read"}})
		return
	}

	req, errs := dto.DecodeAddForm(r.PostForm)
	if len(errs) > 0 {
		h.Logger.Debug("Add form rejected", "errors", dto.ToResponse(errs))
		h.RenderPageStatus(w, http.StatusUnprocessableEntity, "add.html", addPage{Title: req.Title, Errors: dto.ToMap(errs)})
		return
	}

	candidates, err := h.Movies.Search(r.Context(), req.Title)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.RenderPage(w, "select.html", selectPage{Query: req.Title, Candidates: candidates})
}

func (h *Handler) FindMovie(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	movie, err := h.Movies.Import(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	http.Redirect(w, r, fmt.Sprintf("/edit?id=%d", movie.ID), http.StatusSeeOther)
}

func (h *Handler) EditPage(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	movie, err := h.Movies.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	page := editPage{Movie: movie, Review: movie.ReviewText()}
	if movie.HasRating() {
		page.Rating = strconv.FormatFloat(movie.RatingValue(), 'f', -1, 64)
	}
	h.RenderPage(w, "edit.html", page)
}

func (h *Handler) EditSubmit(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	movie, err := h.Movies.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if err := r.ParseForm(); err != nil {
		h.RenderPageStatus(w, http.StatusBadRequest, "edit.html", editPage{Movie: movie, Errors: map[string]string{"rating": "could not be read"}})
		return
	}

	req, errs := dto.DecodeEditForm(r.PostForm)
	if len(errs) > 0 {
		h.Logger.Debug("Edit form rejected", "movie_id", id, "errors", dto.ToResponse(errs))
		h.RenderPageStatus(w, http.StatusUnprocessableEntity, "edit.html", editPage{
			Movie:  movie,
			Rating: req.Rating,
			Review: req.Review,
			Errors: dto.ToMap(errs),
		})
		return
	}

	if err := h.Movies.Edit(r.Context(), id, req.RatingValue(), req.Review); err != nil {
		h.handleError(w, r, err)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if err := h.Movies.Delete(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	if h.DB != nil {
		if err := h.DB.PingContext(r.Context()); err != nil {
			h.Logger.Error("Health check failed", "error", err)
			http.Error(w, "database unavailable", http.StatusServiceUnavailable)
			return
		}
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func parseID(r *http.Request) (int64, error) {
	raw := r.URL.Query().Get("id")
	if raw == "" {
		return 0, fmt.Errorf("missing id: %w", domain.ErrInvalidID)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("id %q: %w", raw, domain.ErrInvalidID)
	}
	return id, nil
}
