package ranking

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/cesargomez89/topmovies/internal/domain"
)

func movie(id int64, rating *float64) *domain.Movie {
	return &domain.Movie{ID: id, Rating: rating}
}

func f(v float64) *float64 { return &v }

func TestRecompute(t *testing.T) {
	movies := []*domain.Movie{
		movie(1, nil),
		movie(2, f(3.5)),
		movie(3, f(7)),
		movie(4, f(7)),
		movie(5, f(9.1)),
	}

	Recompute(movies)

	want := map[int64]int{1: 5, 2: 4, 3: 3, 4: 2, 5: 1}
	for _, m := range movies {
		if m.RankingValue() != want[m.ID] {
			t.Errorf("movie %d: ranking = %d, want %d", m.ID, m.RankingValue(), want[m.ID])
		}
	}
}

func TestRecompute_Empty(t *testing.T) {
	if got := Recompute(nil); len(got) != 0 {
		t.Errorf("Expected empty result, got %v", got)
	}
}

func TestRecompute_OverwritesStaleRanking(t *testing.T) {
	stale := 42
	movies := []*domain.Movie{{ID: 1, Ranking: &stale}}
	Recompute(movies)
	if movies[0].RankingValue() != 1 {
		t.Errorf("Expected ranking 1, got %d", movies[0].RankingValue())
	}
}

func TestRecompute_Permutation(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for n := 1; n <= 50; n++ {
		movies := make([]*domain.Movie, n)
		for i := range movies {
			movies[i] = movie(int64(i+1), f(float64(r.Intn(11))))
		}
		sort.SliceStable(movies, func(i, j int) bool { return movies[i].RatingValue() < movies[j].RatingValue() })

		Recompute(movies)

		seen := make(map[int]bool, n)
		for _, m := range movies {
			rank := m.RankingValue()
			if rank < 1 || rank > n {
				t.Fatalf("n=%d: rank %d out of range", n, rank)
			}
			if seen[rank] {
				t.Fatalf("n=%d: rank %d assigned twice", n, rank)
			}
			seen[rank] = true
		}

		var best, worst *domain.Movie
		for _, m := range movies {
			if m.RankingValue() == 1 {
				best = m
			}
			if m.RankingValue() == n {
				worst = m
			}
		}
		for _, m := range movies {
			if m.RatingValue() > best.RatingValue() {
				t.Fatalf("n=%d: rank 1 has rating %v but %v exists", n, best.RatingValue(), m.RatingValue())
			}
			if m.RatingValue() < worst.RatingValue() {
				t.Fatalf("n=%d: rank %d has rating %v but %v exists", n, n, worst.RatingValue(), m.RatingValue())
			}
		}
	}
}

func TestByRank(t *testing.T) {
	movies := Recompute([]*domain.Movie{movie(1, f(1)), movie(2, f(5)), movie(3, f(9))})

	ordered := ByRank(movies)
	for i, m := range ordered {
		if m.RankingValue() != i+1 {
			t.Errorf("position %d has ranking %d", i, m.RankingValue())
		}
	}
	if movies[0].ID != 1 {
		t.Error("Expected ByRank to leave the input order untouched")
	}
}
