package dto

import (
	"net/url"
	"strings"

	"github.com/go-playground/form/v4"
)

var decoder = form.NewDecoder()

// AddMovieRequest is the body of POST /add.
type AddMovieRequest struct {
	Title string `form:"title" validate:"required,max=250"`
}

// EditMovieRequest is the body of POST /edit. Rating stays text until it
// validates so a non-numeric entry is reported instead of failing to decode.
type EditMovieRequest struct {
	Rating string `form:"rating" validate:"required,rating"`
	Review string `form:"review" validate:"required,max=250"`
}

// RatingValue is only meaningful once the request has validated.
func (r *EditMovieRequest) RatingValue() float64 {
	v, _ := ParseRating(r.Rating)
	return v
}

func DecodeAddForm(values url.Values) (*AddMovieRequest, []ValidationError) {
	var req AddMovieRequest
	if err := decoder.Decode(&req, values); err != nil {
		return &req, []ValidationError{{Field: "form", Message: err.Error()}}
	}
	req.Title = strings.TrimSpace(req.Title)
	return &req, validateStruct(&req)
}

func DecodeEditForm(values url.Values) (*EditMovieRequest, []ValidationError) {
	var req EditMovieRequest
	if err := decoder.Decode(&req, values); err != nil {
		return &req, []ValidationError{{Field: "form", Message: err.Error()}}
	}
	req.Rating = strings.TrimSpace(req.Rating)
	req.Review = strings.TrimSpace(req.Review)
	return &req, validateStruct(&req)
}
