package catalog

import (
	"fmt"
	"net/http"
	"time"

	"github.com/cesargomez89/topmovies/internal/constants"
	"github.com/cesargomez89/topmovies/internal/httpclient"
)

type Logger interface {
	Debug(msg string, keyValues ...interface{})
	Info(msg string, keyValues ...interface{})
	Error(msg string, keyValues ...interface{})
}

// Options selects and configures the catalog the application talks to.
type Options struct {
	Cache       Cache
	Recorder    Recorder
	Logger      Logger
	Kind        string
	BaseURL     string
	ImageURL    string
	APIKey      string
	Language    string
	HTTPTimeout time.Duration
	CacheTTL    time.Duration
	MaxAttempts int
}

// ProviderManager owns the active provider and the layers wrapped around it:
// upstream instrumentation closest to the source, then the response cache.
type ProviderManager struct {
	provider Provider
	cached   *CachedProvider
	logger   Logger
	kind     string
}

func NewProviderManager(opts Options) (*ProviderManager, error) {
	var base Provider
	switch opts.Kind {
	case constants.ProviderTMDB, "":
		client := httpclient.NewClient(&http.Client{Timeout: opts.HTTPTimeout}, 0, opts.MaxAttempts)
		tmdb := NewTMDBProvider(opts.BaseURL, opts.ImageURL, opts.APIKey, opts.Language, client)
		if opts.Logger != nil {
			tmdb.Logger = opts.Logger
		}
		base = tmdb
		opts.Kind = constants.ProviderTMDB
	case constants.ProviderMock:
		base = NewMockProvider()
	default:
		return nil, fmt.Errorf("unknown catalog provider %q", opts.Kind)
	}

	m := &ProviderManager{
		provider: NewInstrumentedProvider(base, opts.Recorder),
		logger:   opts.Logger,
		kind:     opts.Kind,
	}
	if opts.Cache != nil && opts.CacheTTL > 0 {
		m.cached = NewCachedProvider(m.provider, opts.Cache, opts.CacheTTL)
	}
	if m.logger != nil {
		m.logger.Info("Catalog provider ready", "provider", m.kind, "cache", m.cached != nil)
	}
	return m, nil
}

// GetProvider returns the outermost layer, the cache when one is configured.
func (m *ProviderManager) GetProvider() Provider {
	if m.cached != nil {
		return m.cached
	}
	return m.provider
}

func (m *ProviderManager) Kind() string {
	return m.kind
}
