package domain

import (
	"strconv"
	"strings"
	"time"
)

// Movie is a stored entry in the user's list
type Movie struct {
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
	Rating      *float64  `json:"rating,omitempty" db:"rating"`
	Ranking     *int      `json:"ranking,omitempty" db:"ranking"`
	Review      *string   `json:"review,omitempty" db:"review"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	ImgURL      string    `json:"img_url" db:"img_url"`
	ID          int64     `json:"id" db:"id"`
	Year        int       `json:"year" db:"year"`
}

// Normalize trims user and upstream supplied text before it is persisted
func (m *Movie) Normalize() {
	m.Title = strings.TrimSpace(m.Title)
	m.Description = strings.TrimSpace(m.Description)
	m.ImgURL = strings.TrimSpace(m.ImgURL)
	if m.Review != nil {
		r := strings.TrimSpace(*m.Review)
		m.Review = &r
	}
}

// RatingValue returns the rating or 0 when the movie has not been rated
func (m *Movie) RatingValue() float64 {
	if m.Rating == nil {
		return 0
	}
	return *m.Rating
}

// RankingValue returns the ranking or 0 when none has been assigned
func (m *Movie) RankingValue() int {
	if m.Ranking == nil {
		return 0
	}
	return *m.Ranking
}

// ReviewText returns the review or an empty string
func (m *Movie) ReviewText() string {
	if m.Review == nil {
		return ""
	}
	return *m.Review
}

// HasRating reports whether the movie has been rated
func (m *Movie) HasRating() bool {
	return m.Rating != nil
}

// Candidate is a search hit from the upstream catalog, not yet stored
type Candidate struct {
	ReleaseDate string `json:"release_date,omitempty"`
	PosterPath  string `json:"poster_path,omitempty"`
	Title       string `json:"title"`
	ID          int64  `json:"id"`
}

// Year returns the release year of the candidate, or "" when unknown
func (c Candidate) Year() string {
	year, _, _ := strings.Cut(c.ReleaseDate, "-")
	if _, err := strconv.Atoi(year); err != nil {
		return ""
	}
	return year
}

// MovieDetail is the full upstream record for one candidate
type MovieDetail struct {
	Title       string `json:"title"`
	ReleaseDate string `json:"release_date"`
	Overview    string `json:"overview"`
	PosterURL   string `json:"poster_url"`
	ID          int64  `json:"id"`
	Year        int    `json:"year"`
}

// ToMovie builds a new, unrated movie from the upstream detail
func (d *MovieDetail) ToMovie() *Movie {
	now := time.Now()
	return &Movie{
		Title:       d.Title,
		Year:        d.Year,
		Description: d.Overview,
		ImgURL:      d.PosterURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// ParseYear extracts the year from a year-first, dash separated date such as
// "2010-07-15". ok is false when the leading segment is not an integer.
func ParseYear(date string) (year int, ok bool) {
	head, _, _ := strings.Cut(strings.TrimSpace(date), "-")
	if head == "" {
		return 0, false
	}
	year, err := strconv.Atoi(head)
	if err != nil {
		return 0, false
	}
	return year, true
}
