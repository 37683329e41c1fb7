package catalog

import (
	"fmt"
	"strings"

	"github.com/cesargomez89/topmovies/internal/domain"
)

// APISearchResponse is the body of GET /search/movie.
type APISearchResponse struct {
	Results *[]APISearchResult `json:"results"`
	Page    int                `json:"page"`
}

type APISearchResult struct {
	ReleaseDate *string `json:"release_date"`
	PosterPath  *string `json:"poster_path"`
	Title       string  `json:"title"`
	ID          int64   `json:"id"`
}

// APIMovie is the body of GET /movie/{id}. Pointer fields distinguish an
// absent or null value from an empty one.
type APIMovie struct {
	Title       *string `json:"title"`
	ReleaseDate *string `json:"release_date"`
	Overview    *string `json:"overview"`
	PosterPath  *string `json:"poster_path"`
	ID          int64   `json:"id"`
}

func (r APISearchResult) ToDomain() domain.Candidate {
	return domain.Candidate{
		ID:          r.ID,
		Title:       r.Title,
		ReleaseDate: deref(r.ReleaseDate),
		PosterPath:  deref(r.PosterPath),
	}
}

// ToDomain validates the payload and converts it, building the poster URL
// from imageBaseURL.
func (m APIMovie) ToDomain(imageBaseURL string) (*domain.MovieDetail, error) {
	var missing []string
	if m.Title == nil || strings.TrimSpace(*m.Title) == "" {
		missing = append(missing, "title")
	}
	if m.ReleaseDate == nil {
		missing = append(missing, "release_date")
	}
	if m.Overview == nil {
		missing = append(missing, "overview")
	}
	if m.PosterPath == nil || *m.PosterPath == "" {
		missing = append(missing, "poster_path")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("movie %d: missing %s: %w", m.ID, strings.Join(missing, ", "), domain.ErrMalformedResponse)
	}

	year, ok := domain.ParseYear(*m.ReleaseDate)
	if !ok {
		return nil, fmt.Errorf("movie %d: release_date %q has no year: %w", m.ID, *m.ReleaseDate, domain.ErrMalformedResponse)
	}

	return &domain.MovieDetail{
		ID:          m.ID,
		Title:       strings.TrimSpace(*m.Title),
		ReleaseDate: *m.ReleaseDate,
		Year:        year,
		Overview:    *m.Overview,
		PosterURL:   PosterURL(imageBaseURL, *m.PosterPath),
	}, nil
}

// PosterURL joins the image base with a poster path such as "/abc.jpg".
func PosterURL(imageBaseURL, posterPath string) string {
	if posterPath == "" {
		return ""
	}
	if strings.HasPrefix(posterPath, "http://") || strings.HasPrefix(posterPath, "https://") {
		return posterPath
	}
	return strings.TrimSuffix(imageBaseURL, "/") + "/" + strings.TrimPrefix(posterPath, "/")
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
