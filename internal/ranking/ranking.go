// Package ranking derives the 1..N position of every movie in the list.
package ranking

import "github.com/cesargomez89/topmovies/internal/domain"

// Recompute assigns rankings to movies ordered ascending by rating: the last
// (highest rated) movie gets rank 1 and the first gets rank len(movies).
// Equal ratings receive distinct ranks following the given order. The slice is
// modified in place and returned.
func Recompute(movies []*domain.Movie) []*domain.Movie {
	n := len(movies)
	for i, m := range movies {
		rank := n - i
		m.Ranking = &rank
	}
	return movies
}

// ByRank returns a copy of movies ordered best rank first.
func ByRank(movies []*domain.Movie) []*domain.Movie {
	out := make([]*domain.Movie, len(movies))
	for i, m := range movies {
		out[len(movies)-1-i] = m
	}
	return out
}
