package catalog

import (
	"context"
	"time"

	"github.com/cesargomez89/topmovies/internal/domain"
)

// Recorder receives one observation per upstream call.
type Recorder interface {
	ObserveUpstream(operation string, d time.Duration, err error)
}

const (
	OpSearch = "search"
	OpMovie  = "movie"
)

// InstrumentedProvider times every call to the wrapped provider.
type InstrumentedProvider struct {
	provider Provider
	recorder Recorder
	now      func() time.Time
}

func NewInstrumentedProvider(provider Provider, recorder Recorder) *InstrumentedProvider {
	return &InstrumentedProvider{provider: provider, recorder: recorder, now: time.Now}
}

func (p *InstrumentedProvider) Search(ctx context.Context, query string) ([]domain.Candidate, error) {
	start := p.now()
	candidates, err := p.provider.Search(ctx, query)
	p.observe(OpSearch, start, err)
	return candidates, err
}

func (p *InstrumentedProvider) GetMovie(ctx context.Context, id int64) (*domain.MovieDetail, error) {
	start := p.now()
	detail, err := p.provider.GetMovie(ctx, id)
	p.observe(OpMovie, start, err)
	return detail, err
}

func (p *InstrumentedProvider) observe(op string, start time.Time, err error) {
	if p.recorder == nil {
		return
	}
	p.recorder.ObserveUpstream(op, p.now().Sub(start), err)
}

var _ Provider = (*InstrumentedProvider)(nil)
