// internal/registry/cache_test.go
package registry

import (
	"context"
	"testing"
	"time"

	"activity-signup/internal/common/database"
	"activity-signup/internal/common/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestCache(t *testing.T, ttl time.Duration) (*ListCache, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := database.NewRedisFromClient(redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	}))
	t.Cleanup(func() { client.Close() })

	return NewListCache(client, ttl, logger.NewTestLogger(t)), mr
}

func TestListCache_SetGet(t *testing.T) {
	cache, _ := setupTestCache(t, 5*time.Second)
	ctx := context.Background()

	_, ok := cache.Get(ctx)
	assert.False(t, ok, "cold cache must miss")

	payload := []byte(`{"Chess Club":{"participants":[]}}`)
	cache.Set(ctx, payload)

	got, ok := cache.Get(ctx)
	assert.True(t, ok)
	assert.Equal(t, payload, got)
}

func TestListCache_Invalidate(t *testing.T) {
	cache, _ := setupTestCache(t, 5*time.Second)
	ctx := context.Background()

	cache.Set(ctx, []byte("payload"))
	cache.Invalidate(ctx)

	_, ok := cache.Get(ctx)
	assert.False(t, ok)
}

func TestListCache_TTLExpiry(t *testing.T) {
	cache, mr := setupTestCache(t, 2*time.Second)
	ctx := context.Background()

	cache.Set(ctx, []byte("payload"))
	mr.FastForward(3 * time.Second)

	_, ok := cache.Get(ctx)
	assert.False(t, ok)
}

func TestListCache_RedisDownDegrades(t *testing.T) {
	cache, mr := setupTestCache(t, 5*time.Second)
	ctx := context.Background()

	mr.Close()

	// Every operation degrades silently; none may panic or error out.
	_, ok := cache.Get(ctx)
	assert.False(t, ok)
	cache.Set(ctx, []byte("payload"))
	cache.Invalidate(ctx)
}

func TestListCache_NilIsDisabled(t *testing.T) {
	var cache *ListCache
	ctx := context.Background()

	_, ok := cache.Get(ctx)
	assert.False(t, ok)
	cache.Set(ctx, []byte("payload"))
	cache.Invalidate(ctx)
}
