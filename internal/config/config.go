package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/cesargomez89/topmovies/internal/constants"
)

// Config holds all application configuration
type Config struct {
	Port         string
	DBPath       string
	Provider     string
	TMDBAPIKey   string
	TMDBBaseURL  string
	TMDBImageURL string
	TMDBLanguage string
	LogLevel     string
	LogFormat    string
	HTTPTimeout  time.Duration
	CacheTTL     time.Duration
	MaxAttempts  int
	parseErrors  []string
}

// LoadEnvFile loads variables from the given dotenv files into the process
// environment. Missing files are ignored; variables already set win.
func LoadEnvFile(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load %s: %w", p, err)
		}
	}
	return nil
}

// Load loads configuration from environment variables with defaults
func Load() *Config {
	cfg := &Config{
		Port:         getEnv("PORT", constants.DefaultPort),
		DBPath:       getEnv("DB_PATH", constants.DefaultDBPath),
		Provider:     getEnv("CATALOG_PROVIDER", constants.DefaultProvider),
		TMDBAPIKey:   getEnv("TMDB_API_KEY", ""),
		TMDBBaseURL:  strings.TrimSuffix(getEnv("TMDB_BASE_URL", constants.DefaultTMDBBaseURL), "/"),
		TMDBImageURL: strings.TrimSuffix(getEnv("TMDB_IMAGE_BASE_URL", constants.DefaultTMDBImageURL), "/"),
		TMDBLanguage: getEnv("TMDB_LANGUAGE", constants.DefaultTMDBLanguage),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LogFormat:    getEnv("LOG_FORMAT", "text"),
	}

	cfg.HTTPTimeout = cfg.getDuration("TMDB_TIMEOUT", constants.DefaultHTTPTimeout)
	cfg.CacheTTL = cfg.getDuration("CACHE_TTL", constants.DefaultCacheTTL)
	cfg.MaxAttempts = cfg.getInt("TMDB_MAX_ATTEMPTS", constants.DefaultMaxAttempts)

	return cfg
}

// Validate validates the configuration and returns detailed errors
func (c *Config) Validate() error {
	errors := append([]string(nil), c.parseErrors...)

	// Validate Port
	if c.Port == "" {
		errors = append(errors, "PORT cannot be empty")
	} else {
		port, err := strconv.Atoi(c.Port)
		if err != nil {
			errors = append(errors, fmt.Sprintf("PORT must be a valid number, got: %s", c.Port))
		} else if port < 1 || port > 65535 {
			errors = append(errors, fmt.Sprintf("PORT must be between 1 and 65535, got: %d", port))
		}
	}

	if c.DBPath == "" {
		errors = append(errors, "DB_PATH cannot be empty")
	}

	switch c.Provider {
	case constants.ProviderTMDB:
		if c.TMDBAPIKey == "" {
			errors = append(errors, "TMDB_API_KEY is required when CATALOG_PROVIDER is tmdb")
		}
	case constants.ProviderMock:
	default:
		errors = append(errors, fmt.Sprintf("CATALOG_PROVIDER must be one of: tmdb, mock, got: %s", c.Provider))
	}

	if !isAbsoluteURL(c.TMDBBaseURL) {
		errors = append(errors, fmt.Sprintf("TMDB_BASE_URL is not a valid URL: %s", c.TMDBBaseURL))
	}
	if !isAbsoluteURL(c.TMDBImageURL) {
		errors = append(errors, fmt.Sprintf("TMDB_IMAGE_BASE_URL is not a valid URL: %s", c.TMDBImageURL))
	}

	if c.TMDBLanguage == "" {
		errors = append(errors, "TMDB_LANGUAGE cannot be empty")
	}

	if c.HTTPTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("TMDB_TIMEOUT must be positive, got: %s", c.HTTPTimeout))
	}

	if c.MaxAttempts < 1 || c.MaxAttempts > constants.MaxAttempts {
		errors = append(errors, fmt.Sprintf("TMDB_MAX_ATTEMPTS must be between 1 and %d, got: %d", constants.MaxAttempts, c.MaxAttempts))
	}

	if c.CacheTTL < 0 {
		errors = append(errors, fmt.Sprintf("CACHE_TTL cannot be negative, got: %s", c.CacheTTL))
	}

	// Validate LogLevel
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		errors = append(errors, fmt.Sprintf("LOG_LEVEL must be one of: debug, info, warn, error, got: %s", c.LogLevel))
	}

	// Validate LogFormat
	validLogFormats := map[string]bool{
		"text": true,
		"json": true,
	}
	if !validLogFormats[c.LogFormat] {
		errors = append(errors, fmt.Sprintf("LOG_FORMAT must be one of: text, json, got: %s", c.LogFormat))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

func (c *Config) getDuration(key string, fallback time.Duration) time.Duration {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		c.parseErrors = append(c.parseErrors, fmt.Sprintf("%s must be a duration (e.g. 10s), got: %s", key, raw))
		return fallback
	}
	return d
}

func (c *Config) getInt(key string, fallback int) int {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		c.parseErrors = append(c.parseErrors, fmt.Sprintf("%s must be a valid number, got: %s", key, raw))
		return fallback
	}
	return n
}

func isAbsoluteURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && u.Scheme != "" && u.Host != ""
}

// getEnv retrieves an environment variable with a fallback default
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
