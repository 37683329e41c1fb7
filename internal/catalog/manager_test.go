package catalog

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/cesargomez89/topmovies/internal/constants"
	"github.com/cesargomez89/topmovies/internal/domain"
	"github.com/cesargomez89/topmovies/internal/logger"
)

type recordedCall struct {
	err error
	op  string
}

type fakeRecorder struct {
	calls []recordedCall
}

func (r *fakeRecorder) ObserveUpstream(operation string, d time.Duration, err error) {
	r.calls = append(r.calls, recordedCall{op: operation, err: err})
}

func TestNewProviderManager(t *testing.T) {
	tests := []struct {
		name       string
		opts       Options
		wantErr    bool
		wantCached bool
		wantKind   string
	}{
		{"tmdb default kind", Options{BaseURL: "https://api.example", APIKey: "k"}, false, false, constants.ProviderTMDB},
		{"mock without cache", Options{Kind: constants.ProviderMock}, false, false, constants.ProviderMock},
		{"mock with cache", Options{Kind: constants.ProviderMock, Cache: newMockCache(), CacheTTL: time.Hour}, false, true, constants.ProviderMock},
		{"zero ttl disables cache", Options{Kind: constants.ProviderMock, Cache: newMockCache()}, false, false, constants.ProviderMock},
		{"unknown kind", Options{Kind: "imdb"}, true, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewProviderManager(tt.opts)
			if tt.wantErr {
				if err == nil {
					t.Fatal("Expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewProviderManager failed: %v", err)
			}
			if m.Kind() != tt.wantKind {
				t.Errorf("Expected kind %s, got %s", tt.wantKind, m.Kind())
			}
			_, isCached := m.GetProvider().(*CachedProvider)
			if isCached != tt.wantCached {
				t.Errorf("Expected cached=%v, got %v", tt.wantCached, isCached)
			}
		})
	}
}

func TestProviderManager_RecordsUpstreamCallsBelowCache(t *testing.T) {
	rec := &fakeRecorder{}
	m, err := NewProviderManager(Options{
		Kind:     constants.ProviderMock,
		Cache:    newMockCache(),
		CacheTTL: time.Hour,
		Recorder: rec,
	})
	if err != nil {
		t.Fatalf("NewProviderManager failed: %v", err)
	}

	ctx := context.Background()
	p := m.GetProvider()
	for i := 0; i < 3; i++ {
		if _, err := p.GetMovie(ctx, 27205); err != nil {
			t.Fatalf("GetMovie failed: %v", err)
		}
	}
	_, _ = p.GetMovie(ctx, 1)

	if len(rec.calls) != 2 {
		t.Fatalf("Expected 2 upstream observations, got %d", len(rec.calls))
	}
	if rec.calls[0].op != OpMovie || rec.calls[0].err != nil {
		t.Errorf("Unexpected first observation: %+v", rec.calls[0])
	}
	if !errors.Is(rec.calls[1].err, domain.ErrUpstream) {
		t.Errorf("Expected failed observation, got %+v", rec.calls[1])
	}
}

func TestProviderManager_PassesLoggerToTMDB(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(logger.Config{Level: "debug", Format: "text"}, &buf)

	m, err := NewProviderManager(Options{BaseURL: "https://api.example", APIKey: "k", Logger: log})
	if err != nil {
		t.Fatalf("NewProviderManager failed: %v", err)
	}

	instrumented, ok := m.GetProvider().(*InstrumentedProvider)
	if !ok {
		t.Fatalf("Expected instrumented provider, got %T", m.GetProvider())
	}
	tmdb, ok := instrumented.provider.(*TMDBProvider)
	if !ok {
		t.Fatalf("Expected TMDB provider, got %T", instrumented.provider)
	}
	if tmdb.Logger != Logger(log) {
		t.Errorf("Expected TMDB provider to use the configured logger")
	}
	if !strings.Contains(buf.String(), "Catalog provider ready") {
		t.Errorf("Expected startup line on configured logger, got %q", buf.String())
	}
}
