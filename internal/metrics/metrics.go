// Package metrics exposes Prometheus instruments for the web handlers and the
// upstream catalog.
package metrics

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cesargomez89/topmovies/internal/domain"
)

const namespace = "topmovies"

// Metrics records request and upstream call statistics. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	requests         *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	upstreamCalls    *prometheus.CounterVec
	upstreamDuration *prometheus.HistogramVec
	moviesListed     prometheus.Gauge
	gatherer         prometheus.Gatherer
}

// New registers the instruments on reg. A nil reg yields a no-op Metrics.
func New(reg *prometheus.Registry) *Metrics {
	if reg == nil {
		return &Metrics{}
	}
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		upstreamCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_calls_total",
			Help:      "Catalog calls by operation and outcome.",
		}, []string{"operation", "outcome"}),
		upstreamDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upstream_call_duration_seconds",
			Help:      "Catalog call latency by operation.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
		moviesListed: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "movies",
			Help:      "Number of movies seen by the last list view.",
		}),
		gatherer: reg,
	}
	reg.MustRegister(m.requests, m.requestDuration, m.upstreamCalls, m.upstreamDuration, m.moviesListed)
	return m
}

// ObserveRequest records one served HTTP request.
func (m *Metrics) ObserveRequest(method, route string, status int, d time.Duration) {
	if m == nil || m.requests == nil {
		return
	}
	route = normalizeLabel(route)
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// ObserveUpstream records one catalog call and its outcome.
func (m *Metrics) ObserveUpstream(operation string, d time.Duration, err error) {
	if m == nil || m.upstreamCalls == nil {
		return
	}
	operation = normalizeLabel(operation)
	m.upstreamCalls.WithLabelValues(operation, Outcome(err)).Inc()
	m.upstreamDuration.WithLabelValues(operation).Observe(d.Seconds())
}

// SetMovieCount records the size of the list at the last view.
func (m *Metrics) SetMovieCount(n int) {
	if m == nil || m.moviesListed == nil {
		return
	}
	m.moviesListed.Set(float64(n))
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil || m.gatherer == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

// Outcome classifies an upstream error into a low-cardinality label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrMalformedResponse):
		return "malformed"
	case errors.Is(err, domain.ErrUpstream):
		return "upstream_error"
	default:
		return "error"
	}
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
