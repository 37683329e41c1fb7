package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/cesargomez89/topmovies/internal/constants"
	"github.com/cesargomez89/topmovies/internal/domain"
)

type Cache interface {
	GetCache(ctx context.Context, key string) ([]byte, error)
	SetCache(ctx context.Context, key string, data []byte, ttl time.Duration) error
	ClearCache(ctx context.Context) error
}

// CachedProvider serves repeated lookups from Cache and collapses concurrent
// identical lookups into one upstream call. Errors are never cached.
type CachedProvider struct {
	provider Provider
	cache    Cache
	cacheTTL time.Duration
	group    singleflight.Group
}

func NewCachedProvider(provider Provider, cache Cache, cacheTTL time.Duration) *CachedProvider {
	return &CachedProvider{
		provider: provider,
		cache:    cache,
		cacheTTL: cacheTTL,
	}
}

func (c *CachedProvider) Search(ctx context.Context, query string) ([]domain.Candidate, error) {
	cacheKey := fmt.Sprintf("%s:%s", constants.CacheKeySearch, strings.ToLower(strings.TrimSpace(query)))

	var candidates []domain.Candidate
	err := c.cached(ctx, cacheKey, &candidates, func() (interface{}, error) {
		return c.provider.Search(ctx, query)
	})
	if err != nil {
		return nil, err
	}
	if candidates == nil {
		candidates = []domain.Candidate{}
	}
	return candidates, nil
}

func (c *CachedProvider) GetMovie(ctx context.Context, id int64) (*domain.MovieDetail, error) {
	cacheKey := fmt.Sprintf("%s:%d", constants.CacheKeyMovie, id)

	var detail domain.MovieDetail
	err := c.cached(ctx, cacheKey, &detail, func() (interface{}, error) {
		return c.provider.GetMovie(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

func (c *CachedProvider) ClearCache(ctx context.Context) error {
	return c.cache.ClearCache(ctx)
}

// cached fills dest from the cache, or from fetch on a miss, storing the
// fetched value for next time.
func (c *CachedProvider) cached(ctx context.Context, key string, dest interface{}, fetch func() (interface{}, error)) error {
	data, err := c.cache.GetCache(ctx, key)
	if err != nil {
		return err
	}
	if data != nil {
		if err := json.Unmarshal(data, dest); err == nil {
			return nil
		}
	}

	v, err, _ := c.group.Do(key, func() (interface{}, error) {
		result, err := fetch()
		if err != nil {
			return nil, err
		}
		encoded, err := json.Marshal(result)
		if err != nil {
			return nil, err
		}
		_ = c.cache.SetCache(ctx, key, encoded, c.cacheTTL)
		return encoded, nil
	})
	if err != nil {
		return err
	}
	return json.Unmarshal(v.([]byte), dest)
}

var _ Provider = (*CachedProvider)(nil)
