package catalog

import (
	"context"

	"github.com/cesargomez89/topmovies/internal/domain"
)

// Provider looks movies up in an external catalog.
type Provider interface {
	// Search returns candidates matching query; no matches is an empty slice.
	Search(ctx context.Context, query string) ([]domain.Candidate, error)
	// GetMovie returns the full detail for one candidate id.
	GetMovie(ctx context.Context, id int64) (*domain.MovieDetail, error)
}
