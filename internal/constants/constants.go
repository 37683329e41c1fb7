// Package constants contains application-wide constants to avoid magic numbers and strings.
package constants

import "time"

// Application defaults
const (
	DefaultPort            = "8080"
	DefaultDBPath          = "movies.db"
	DefaultProvider        = ProviderTMDB
	DefaultTMDBBaseURL     = "https://api.themoviedb.org/3"
	DefaultTMDBImageURL    = "https://image.tmdb.org/t/p/w500"
	DefaultTMDBLanguage    = "en-US"
	DefaultHTTPTimeout     = 10 * time.Second
	DefaultMaxAttempts     = 1
	MaxAttempts            = 5
	DefaultRetryBase       = 1 * time.Second
	DefaultCacheTTL        = 12 * time.Hour
	DefaultCachePurgeEvery = 1 * time.Hour
	DefaultShutdownTimeout = 5 * time.Second
)

// Catalog providers
const (
	ProviderTMDB = "tmdb"
	ProviderMock = "mock"
)

// Database
const (
	MoviesTable = "movies"
	CacheTable  = "cache"
)

// Column limits, matching the VARCHAR sizes in the schema
const (
	MaxTitleLength       = 250
	MaxDescriptionLength = 500
	MaxReviewLength      = 250
	MaxImageURLLength    = 250
)

// Rating scale
const (
	MinRating = 0.0
	MaxRating = 10.0
)

// Cache key prefixes
const (
	CacheKeySearch = "search"
	CacheKeyMovie  = "movie"
)

// HTTP
const (
	HeaderRequestID = "X-Request-ID"
	MimeTypeHTML    = "text/html; charset=utf-8"
)
