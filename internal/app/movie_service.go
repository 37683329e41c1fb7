package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/cesargomez89/topmovies/internal/catalog"
	"github.com/cesargomez89/topmovies/internal/domain"
	"github.com/cesargomez89/topmovies/internal/logger"
	"github.com/cesargomez89/topmovies/internal/ranking"
	"github.com/cesargomez89/topmovies/internal/store"
)

// MovieCounter is told the list size after each list view.
type MovieCounter interface {
	SetMovieCount(n int)
}

type MovieService struct {
	Repo     *store.DB
	Provider catalog.Provider
	Counter  MovieCounter
	Logger   *logger.Logger
}

func NewMovieService(repo *store.DB, provider catalog.Provider, log *logger.Logger) *MovieService {
	if log == nil {
		log = logger.Default()
	}
	return &MovieService{Repo: repo, Provider: provider, Logger: log.WithComponent("movies")}
}

// List recomputes and persists every ranking, then returns the movies best
// rank first.
func (s *MovieService) List(ctx context.Context) ([]*domain.Movie, error) {
	movies, err := s.Repo.ListMovies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list movies: %w", err)
	}

	ranking.Recompute(movies)
	if err := s.Repo.UpdateRankings(ctx, movies); err != nil {
		return nil, fmt.Errorf("failed to persist rankings: %w", err)
	}

	if s.Counter != nil {
		s.Counter.SetMovieCount(len(movies))
	}
	return ranking.ByRank(movies), nil
}

func (s *MovieService) Search(ctx context.Context, title string) ([]domain.Candidate, error) {
	title = strings.TrimSpace(title)
	candidates, err := s.Provider.Search(ctx, title)
	if err != nil {
		s.Logger.Error("Search failed", "query", title, "error", err)
		return nil, err
	}
	s.Logger.Debug("Search complete", "query", title, "results", len(candidates))
	return candidates, nil
}

// Import fetches the candidate's detail and stores it as an unrated movie.
func (s *MovieService) Import(ctx context.Context, candidateID int64) (*domain.Movie, error) {
	if candidateID <= 0 {
		return nil, fmt.Errorf("candidate %d: %w", candidateID, domain.ErrInvalidID)
	}

	detail, err := s.Provider.GetMovie(ctx, candidateID)
	if err != nil {
		s.Logger.Error("Failed to fetch movie detail", "candidate_id", candidateID, "error", err)
		return nil, err
	}

	movie := detail.ToMovie()
	if err := s.Repo.CreateMovie(ctx, movie); err != nil {
		return nil, err
	}
	s.Logger.WithMovie(movie.ID, movie.Title).Info("Movie added", "candidate_id", candidateID, "year", movie.Year)
	return movie, nil
}

func (s *MovieService) Get(ctx context.Context, id int64) (*domain.Movie, error) {
	if id <= 0 {
		return nil, fmt.Errorf("movie %d: %w", id, domain.ErrInvalidID)
	}
	return s.Repo.GetMovie(ctx, id)
}

func (s *MovieService) Edit(ctx context.Context, id int64, rating float64, review string) error {
	if id <= 0 {
		return fmt.Errorf("movie %d: %w", id, domain.ErrInvalidID)
	}
	if err := s.Repo.UpdateReview(ctx, id, rating, strings.TrimSpace(review)); err != nil {
		return err
	}
	s.Logger.Info("Movie reviewed", "movie_id", id, "rating", rating)
	return nil
}

func (s *MovieService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("movie %d: %w", id, domain.ErrInvalidID)
	}
	if err := s.Repo.DeleteMovie(ctx, id); err != nil {
		return err
	}
	s.Logger.Info("Movie deleted", "movie_id", id)
	return nil
}
