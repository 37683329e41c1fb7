package domain

import "errors"

var (
	// ErrNotFound is returned when no movie has the requested id
	ErrNotFound = errors.New("movie not found")
	// ErrDuplicateTitle is returned when a movie with the same title is already stored
	ErrDuplicateTitle = errors.New("movie with this title already exists")
	// ErrUpstream is returned when the catalog request fails or returns a non-success status
	ErrUpstream = errors.New("upstream request failed")
	// ErrMalformedResponse is returned when the catalog payload lacks expected fields
	ErrMalformedResponse = errors.New("malformed upstream response")
	// ErrInvalidID is returned when a request carries a missing or non-numeric id
	ErrInvalidID = errors.New("invalid id")
)
