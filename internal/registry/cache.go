// internal/registry/cache.go
package registry

import (
	"context"
	stderrors "errors"
	"time"

	"activity-signup/internal/common/database"
	"activity-signup/internal/common/logger"
	"activity-signup/internal/common/metrics"

	"github.com/redis/go-redis/v9"
)

// listCacheKey holds the rendered GET /activities payload.
const listCacheKey = "activities:list"

// ListCache is an optional Redis cache for the rendered activity listing.
// The registry map stays the source of truth: entries are written with a
// short TTL and dropped on every successful mutation, and any Redis failure
// degrades to a direct registry read. A nil *ListCache is a disabled cache.
type ListCache struct {
	client *database.RedisClient
	ttl    time.Duration
	logger logger.Logger
}

// NewListCache builds a cache over an established Redis client.
func NewListCache(client *database.RedisClient, ttl time.Duration, log logger.Logger) *ListCache {
	return &ListCache{
		client: client,
		ttl:    ttl,
		logger: log.WithFields(map[string]interface{}{"component": "list-cache"}),
	}
}

// Get returns the cached listing payload, if present.
func (c *ListCache) Get(ctx context.Context) ([]byte, bool) {
	if c == nil {
		return nil, false
	}

	payload, err := c.client.Get(ctx, listCacheKey)
	if err != nil {
		if stderrors.Is(err, redis.Nil) {
			metrics.ListCacheResults.WithLabelValues("miss").Inc()
			return nil, false
		}
		metrics.ListCacheResults.WithLabelValues("error").Inc()
		c.logger.Warn("cache read failed, serving from registry", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, false
	}

	metrics.ListCacheResults.WithLabelValues("hit").Inc()
	return []byte(payload), true
}

// Set stores the listing payload with the configured TTL.
func (c *ListCache) Set(ctx context.Context, payload []byte) {
	if c == nil {
		return
	}

	if err := c.client.Set(ctx, listCacheKey, payload, c.ttl); err != nil {
		metrics.ListCacheResults.WithLabelValues("error").Inc()
		c.logger.Warn("cache write failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

// Invalidate drops the cached listing. Called after every successful
// signup or withdrawal.
func (c *ListCache) Invalidate(ctx context.Context) {
	if c == nil {
		return
	}

	if err := c.client.Del(ctx, listCacheKey); err != nil {
		metrics.ListCacheResults.WithLabelValues("error").Inc()
		c.logger.Warn("cache invalidation failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
}
