package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/cesargomez89/topmovies/internal/domain"
)

// ListMovies returns every movie ascending by rating. Unrated movies sort
// first; equal ratings keep insertion order.
func (db *DB) ListMovies(ctx context.Context) ([]*domain.Movie, error) {
	query := `SELECT * FROM movies ORDER BY rating ASC, id ASC`
	return selectMovies(ctx, db, query)
}

func (db *DB) GetMovie(ctx context.Context, id int64) (*domain.Movie, error) {
	query := `SELECT * FROM movies WHERE id = ?`

	var movie domain.Movie
	err := db.GetContext(ctx, &movie, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("movie %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get movie %d: %w", id, err)
	}
	return &movie, nil
}

func (db *DB) CreateMovie(ctx context.Context, movie *domain.Movie) error {
	movie.Normalize()

	now := time.Now()
	if movie.CreatedAt.IsZero() {
		movie.CreatedAt = now
	}
	movie.UpdatedAt = now

	query := `INSERT INTO movies (
		title, year, description, rating, ranking, review, img_url, created_at, updated_at
	) VALUES (
		:title, :year, :description, :rating, :ranking, :review, :img_url, :created_at, :updated_at
	) RETURNING id`

	rows, err := db.NamedQueryContext(ctx, query, movie)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("create %q: %w", movie.Title, domain.ErrDuplicateTitle)
		}
		return fmt.Errorf("failed to create movie: %w", err)
	}
	defer rows.Close() //nolint:errcheck // deferred cleanup

	if rows.Next() {
		if err := rows.Scan(&movie.ID); err != nil {
			return fmt.Errorf("failed to scan movie id: %w", err)
		}
	}
	if err := rows.Err(); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("create %q: %w", movie.Title, domain.ErrDuplicateTitle)
		}
		return fmt.Errorf("error iterating returning rows: %w", err)
	}

	return nil
}

func (db *DB) UpdateReview(ctx context.Context, id int64, rating float64, review string) error {
	query := `UPDATE movies SET rating = ?, review = ?, updated_at = ? WHERE id = ?`
	result, err := db.ExecContext(ctx, query, rating, review, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to update movie %d: %w", id, err)
	}
	return expectOneRow(result, id)
}

func (db *DB) DeleteMovie(ctx context.Context, id int64) error {
	result, err := db.ExecContext(ctx, `DELETE FROM movies WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete movie %d: %w", id, err)
	}
	return expectOneRow(result, id)
}

// UpdateRankings writes the ranking of every given movie in one transaction.
// Rows that vanished since they were read are skipped.
func (db *DB) UpdateRankings(ctx context.Context, movies []*domain.Movie) error {
	if len(movies) == 0 {
		return nil
	}

	return db.RunInTx(ctx, func(tx *sqlx.Tx) error {
		stmt, err := tx.PreparexContext(ctx, `UPDATE movies SET ranking = ? WHERE id = ?`)
		if err != nil {
			return fmt.Errorf("failed to prepare ranking update: %w", err)
		}
		defer stmt.Close() //nolint:errcheck // deferred cleanup

		for _, m := range movies {
			if _, err := stmt.ExecContext(ctx, m.Ranking, m.ID); err != nil {
				return fmt.Errorf("failed to update ranking of movie %d: %w", m.ID, err)
			}
		}
		return nil
	})
}

func (db *DB) CountMovies(ctx context.Context) (int, error) {
	var count int
	err := db.GetContext(ctx, &count, `SELECT COUNT(*) FROM movies`)
	return count, err
}

func expectOneRow(result sql.Result, id int64) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("movie %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

func selectMovies(ctx context.Context, q sqlx.QueryerContext, query string, args ...interface{}) ([]*domain.Movie, error) {
	movies := []*domain.Movie{}
	if err := sqlx.SelectContext(ctx, q, &movies, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list movies: %w", err)
	}
	return movies, nil
}
