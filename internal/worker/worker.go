package worker

import (
	"context"
	"sync"
	"time"

	"github.com/cesargomez89/topmovies/internal/logger"
)

// CachePurger deletes expired cache entries and reports how many went.
type CachePurger interface {
	PurgeExpiredCache(ctx context.Context) (int64, error)
}

// Worker periodically purges expired catalog responses from the cache table,
// which would otherwise only be removed when the same key is read again.
type Worker struct {
	Repo     CachePurger
	Logger   *logger.Logger
	Interval time.Duration
	wg       sync.WaitGroup
	ctx      context.Context
	cancel   context.CancelFunc
}

func NewWorker(repo CachePurger, interval time.Duration, log *logger.Logger) *Worker {
	if log == nil {
		log = logger.Default()
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Worker{
		Repo:     repo,
		Logger:   log.WithComponent("worker"),
		Interval: interval,
		ctx:      ctx,
		cancel:   cancel,
	}
}

func (w *Worker) Start() {
	w.Logger.Info("Starting cache worker", "interval", w.Interval)

	w.purge()

	w.wg.Add(1)
	go w.run()
}

func (w *Worker) Stop() {
	w.Logger.Info("Stopping cache worker")
	w.cancel()
	w.wg.Wait()
}

func (w *Worker) run() {
	defer w.wg.Done()
	ticker := time.NewTicker(w.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			w.purge()
		}
	}
}

func (w *Worker) purge() {
	n, err := w.Repo.PurgeExpiredCache(w.ctx)
	if err != nil {
		if w.ctx.Err() == nil {
			w.Logger.Warn("Failed to purge expired cache", "error", err)
		}
		return
	}
	if n > 0 {
		w.Logger.Info("Purged expired cache entries", "count", n)
	}
}
