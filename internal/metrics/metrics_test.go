package metrics

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/cesargomez89/topmovies/internal/domain"
)

func TestOutcome(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, "ok"},
		{fmt.Errorf("GET /movie/1: %w", domain.ErrUpstream), "upstream_error"},
		{fmt.Errorf("movie 1: %w", domain.ErrMalformedResponse), "malformed"},
		{errors.New("boom"), "error"},
	}
	for _, tt := range tests {
		if got := Outcome(tt.err); got != tt.want {
			t.Errorf("Outcome(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

func TestObserveUpstream(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveUpstream("search", 10*time.Millisecond, nil)
	m.ObserveUpstream("search", 10*time.Millisecond, nil)
	m.ObserveUpstream("movie", 10*time.Millisecond, domain.ErrUpstream)

	if got := testutil.ToFloat64(m.upstreamCalls.WithLabelValues("search", "ok")); got != 2 {
		t.Errorf("Expected 2 ok search calls, got %v", got)
	}
	if got := testutil.ToFloat64(m.upstreamCalls.WithLabelValues("movie", "upstream_error")); got != 1 {
		t.Errorf("Expected 1 failed movie call, got %v", got)
	}
}

func TestObserveRequest(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveRequest(http.MethodGet, "/", http.StatusOK, time.Millisecond)
	m.ObserveRequest(http.MethodGet, "", http.StatusNotFound, time.Millisecond)

	if got := testutil.ToFloat64(m.requests.WithLabelValues("GET", "/", "200")); got != 1 {
		t.Errorf("Expected 1 request on /, got %v", got)
	}
	if got := testutil.ToFloat64(m.requests.WithLabelValues("GET", "unknown", "404")); got != 1 {
		t.Errorf("Expected empty route to be labelled unknown, got %v", got)
	}
}

func TestHandler(t *testing.T) {
	m := New(prometheus.NewRegistry())
	m.SetMovieCount(3)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "topmovies_movies 3") {
		t.Errorf("Expected gauge in exposition, got %q", rec.Body.String())
	}
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics
	m.ObserveRequest("GET", "/", 200, time.Millisecond)
	m.ObserveUpstream("search", time.Millisecond, nil)
	m.SetMovieCount(1)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404 from nil metrics handler, got %d", rec.Code)
	}

	noop := New(nil)
	noop.ObserveUpstream("search", time.Millisecond, nil)
}
