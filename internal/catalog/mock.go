package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/cesargomez89/topmovies/internal/constants"
	"github.com/cesargomez89/topmovies/internal/domain"
)

// MockProvider serves a small fixed catalog for offline development.
type MockProvider struct {
	movies []mockMovie
}

type mockMovie struct {
	releaseDate string
	posterPath  string
	title       string
	overview    string
	id          int64
}

func NewMockProvider() *MockProvider {
	return &MockProvider{movies: []mockMovie{
		{id: 27205, title: "Inception", releaseDate: "2010-07-15", posterPath: "/oYuLEt3zVCKq57qu2F8dT7NIa6f.jpg",
			overview: "Cobb, a skilled thief who commits corporate espionage by infiltrating the subconscious of his targets, is offered a chance to regain his old life."},
		{id: 157336, title: "Interstellar", releaseDate: "2014-11-05", posterPath: "/gEU2QniE6E77NI6lCU6MxlNBvIx.jpg",
			overview: "The adventures of a group of explorers who make use of a newly discovered wormhole to surpass the limitations on human space travel."},
		{id: 1422, title: "The Departed", releaseDate: "2006-10-05", posterPath: "/nT97ifVT2J1yMQmeq20Qblg61T.jpg",
			overview: "To take down South Boston's Irish Mafia, the police send in one of their own to infiltrate the underworld."},
		{id: 10867, title: "Phone Booth", releaseDate: "2002-11-14", posterPath: "/tjrX2oWRCM3Tvarz38zlZM7Uc10.jpg",
			overview: "Publicist Stuart Shepard finds himself trapped in a phone booth, pinned down by an extortionist's sniper rifle."},
	}}
}

func (p *MockProvider) Search(ctx context.Context, query string) ([]domain.Candidate, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	results := []domain.Candidate{}
	for _, m := range p.movies {
		if q == "" || strings.Contains(strings.ToLower(m.title), q) {
			results = append(results, domain.Candidate{
				ID:          m.id,
				Title:       m.title,
				ReleaseDate: m.releaseDate,
				PosterPath:  m.posterPath,
			})
		}
	}
	return results, nil
}

func (p *MockProvider) GetMovie(ctx context.Context, id int64) (*domain.MovieDetail, error) {
	for _, m := range p.movies {
		if m.id != id {
			continue
		}
		year, _ := domain.ParseYear(m.releaseDate)
		return &domain.MovieDetail{
			ID:          m.id,
			Title:       m.title,
			ReleaseDate: m.releaseDate,
			Year:        year,
			Overview:    m.overview,
			PosterURL:   PosterURL(constants.DefaultTMDBImageURL, m.posterPath),
		}, nil
	}
	return nil, fmt.Errorf("mock movie %d: status 404 Not Found: %w", id, domain.ErrUpstream)
}

var _ Provider = (*MockProvider)(nil)
