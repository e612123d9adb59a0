package market

import (
	"context"
	"encoding/json"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/rueidis"
	"go.uber.org/zap"

	"github.com/harvest-cloud/marketdex/internal/domain"
)

const slugCacheKeyPrefix = "marketdex:market:"

// reader is the consumer interface wrapped by the cache decorator.
type reader interface {
	GetBySlug(ctx context.Context, slug string) (domain.Market, error)
	StateCounts(ctx context.Context) ([]domain.StateCount, error)
}

// CachedRepo is a read-through Redis cache for market-by-slug lookups, the
// hot path behind detail pages. It fails open: any cache error falls back
// to the inner repository. Misses (ErrMarketNotFound) are never cached so a
// freshly activated market appears immediately.
//
// Search results are deliberately not cached here; the pipeline itself is
// stateless per request.
type CachedRepo struct {
	inner      reader
	client     rueidis.Client
	ttl        time.Duration
	cacheTotal *prometheus.CounterVec
	logger     *zap.Logger
}

// NewCached creates a caching decorator.
// cacheTotal is a counter vec with label "result" ("hit"/"miss"), passed explicitly.
func NewCached(
	inner reader,
	client rueidis.Client,
	ttl time.Duration,
	cacheTotal *prometheus.CounterVec,
	logger *zap.Logger,
) *CachedRepo {
	return &CachedRepo{
		inner:      inner,
		client:     client,
		ttl:        ttl,
		cacheTotal: cacheTotal,
		logger:     logger,
	}
}

// GetBySlug returns a cached market or consults the inner repository.
func (c *CachedRepo) GetBySlug(ctx context.Context, slug string) (domain.Market, error) {
	key := slugCacheKeyPrefix + slug

	if m, ok := c.getFromCache(ctx, key); ok {
		c.incCache("hit")
		return m, nil
	}
	c.incCache("miss")

	m, err := c.inner.GetBySlug(ctx, slug)
	if err != nil {
		return domain.Market{}, err
	}

	c.putToCache(ctx, key, &m)
	return m, nil
}

// StateCounts passes through to the inner repository.
func (c *CachedRepo) StateCounts(ctx context.Context) ([]domain.StateCount, error) {
	return c.inner.StateCounts(ctx)
}

func (c *CachedRepo) incCache(result string) {
	if c.cacheTotal != nil {
		c.cacheTotal.WithLabelValues(result).Inc()
	}
}

func (c *CachedRepo) getFromCache(ctx context.Context, key string) (domain.Market, bool) {
	cmd := c.client.B().Get().Key(key).Build()
	data, err := c.client.Do(ctx, cmd).AsBytes()
	if err != nil {
		if !rueidis.IsRedisNil(err) {
			c.logger.Warn("Failed to get cached market", zap.String("key", key), zap.Error(err))
		}
		return domain.Market{}, false
	}

	var m domain.Market
	if err := json.Unmarshal(data, &m); err != nil {
		c.logger.Warn("Failed to parse cached market", zap.String("key", key), zap.Error(err))
		return domain.Market{}, false
	}
	return m, true
}

func (c *CachedRepo) putToCache(ctx context.Context, key string, m *domain.Market) {
	data, err := json.Marshal(m)
	if err != nil {
		c.logger.Warn("Failed to encode market for cache", zap.String("key", key), zap.Error(err))
		return
	}
	cmd := c.client.B().Set().Key(key).Value(string(data)).Ex(c.ttl).Build()
	if err := c.client.Do(ctx, cmd).Error(); err != nil {
		c.logger.Warn("Failed to cache market", zap.String("key", key), zap.Error(err))
	}
}
