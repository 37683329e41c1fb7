package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/cesargomez89/topmovies/internal/constants"
	"github.com/cesargomez89/topmovies/internal/domain"
	"github.com/cesargomez89/topmovies/internal/httpclient"
)

// Doer executes HTTP requests; *httpclient.Client satisfies it.
type Doer interface {
	Do(ctx context.Context, req *http.Request) (*http.Response, error)
}

// TMDBProvider talks to The Movie Database v3 API.
type TMDBProvider struct {
	Client   Doer
	BaseURL  string
	ImageURL string
	APIKey   string
	Language string
	Logger   Logger
}

func NewTMDBProvider(baseURL, imageURL, apiKey, language string, client Doer) *TMDBProvider {
	if client == nil {
		client = httpclient.NewClient(nil, 0, constants.DefaultMaxAttempts)
	}
	if language == "" {
		language = constants.DefaultTMDBLanguage
	}
	return &TMDBProvider{
		Client:   client,
		BaseURL:  strings.TrimSuffix(baseURL, "/"),
		ImageURL: strings.TrimSuffix(imageURL, "/"),
		APIKey:   apiKey,
		Language: language,
		Logger:   slog.Default().With("component", "tmdb"),
	}
}

func (p *TMDBProvider) Search(ctx context.Context, query string) ([]domain.Candidate, error) {
	params := url.Values{}
	params.Set("query", query)

	var resp APISearchResponse
	if err := p.get(ctx, "/search/movie", params, &resp); err != nil {
		return nil, err
	}
	if resp.Results == nil {
		return nil, fmt.Errorf("search %q: missing results: %w", query, domain.ErrMalformedResponse)
	}

	candidates := make([]domain.Candidate, 0, len(*resp.Results))
	for _, r := range *resp.Results {
		candidates = append(candidates, r.ToDomain())
	}
	return candidates, nil
}

func (p *TMDBProvider) GetMovie(ctx context.Context, id int64) (*domain.MovieDetail, error) {
	params := url.Values{}
	params.Set("language", p.Language)

	var resp APIMovie
	if err := p.get(ctx, "/movie/"+strconv.FormatInt(id, 10), params, &resp); err != nil {
		return nil, err
	}
	if resp.ID == 0 {
		resp.ID = id
	}
	return resp.ToDomain(p.ImageURL)
}

func (p *TMDBProvider) get(ctx context.Context, path string, params url.Values, target interface{}) error {
	p.Logger.Debug("API request", "path", path, "base_url", p.BaseURL)

	params.Set("api_key", p.APIKey)
	u := p.BaseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed to build request for %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.Client.Do(ctx, req)
	if err != nil {
		return fmt.Errorf("GET %s: %v: %w", path, redact(err, p.APIKey), domain.ErrUpstream)
	}
	defer resp.Body.Close() //nolint:errcheck // deferred cleanup

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("GET %s: status %s: %w", path, resp.Status, domain.ErrUpstream)
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("GET %s: decode: %v: %w", path, err, domain.ErrMalformedResponse)
	}
	return nil
}

// redact strips the credential from transport errors, which quote the URL.
func redact(err error, secret string) string {
	if secret == "" {
		return err.Error()
	}
	return strings.ReplaceAll(err.Error(), url.QueryEscape(secret), "REDACTED")
}

var _ Provider = (*TMDBProvider)(nil)
