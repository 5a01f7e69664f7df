package redis_a_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	redis_a "github.com/klerys/shoplist-be/internal/adapters/redis_adapter"
	"github.com/klerys/shoplist-be/internal/core/domain"
	"github.com/klerys/shoplist-be/internal/core/ports"
	"github.com/klerys/shoplist-be/test/helpers"
)

func newCache(t *testing.T) (*miniredis.Miniredis, ports.CacheRepository) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return mr, redis_a.NewCache(client, 5*time.Minute, helpers.TestLogger())
}

func TestCache_SetWithTTLAndGet(t *testing.T) {
	ctx := context.Background()
	_, cache := newCache(t)

	groups := []domain.CategoryGroup{
		{Category: domain.CategoryDairy, Items: []domain.ShoppingItem{
			{ID: 1, Name: "Milk", Quantity: 2, Category: domain.CategoryDairy},
		}},
	}

	err := cache.SetWithTTL(ctx, "view:1:all:default:", groups, time.Minute)
	require.NoError(t, err)

	var result []domain.CategoryGroup
	err = cache.Get(ctx, "view:1:all:default:", &result)
	require.NoError(t, err)
	assert.Equal(t, groups, result)
}

func TestCache_GetMissingKey(t *testing.T) {
	ctx := context.Background()
	_, cache := newCache(t)

	var result string
	err := cache.Get(ctx, "missing:key", &result)
	assert.Equal(t, redis_a.ErrCacheMiss, err)
}

func TestCache_TTLExpiry(t *testing.T) {
	ctx := context.Background()
	mr, cache := newCache(t)

	err := cache.SetWithTTL(ctx, "ttl:test", "value", 100*time.Millisecond)
	require.NoError(t, err)

	var result string
	err = cache.Get(ctx, "ttl:test", &result)
	require.NoError(t, err)
	assert.Equal(t, "value", result)

	// Fast forward time in miniredis
	mr.FastForward(200 * time.Millisecond)

	err = cache.Get(ctx, "ttl:test", &result)
	assert.Equal(t, redis_a.ErrCacheMiss, err)
}

func TestCache_GetOrSet(t *testing.T) {
	ctx := context.Background()
	_, cache := newCache(t)

	fetchCount := 0
	fetchFunc := func() (interface{}, error) {
		fetchCount++
		return domain.Statistics{Total: 3, PurchasedCount: 1, Remaining: 2, DistinctCategories: 2, Percentage: 33}, nil
	}

	// First call should fetch
	var result1 domain.Statistics
	err := cache.GetOrSet(ctx, "stats:1", &result1, fetchFunc, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 3, result1.Total)
	assert.Equal(t, 1, fetchCount)

	// Second call should get from cache
	var result2 domain.Statistics
	err = cache.GetOrSet(ctx, "stats:1", &result2, fetchFunc, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, result1, result2)
	assert.Equal(t, 1, fetchCount) // Should not increment
}

func TestCache_DeletePattern(t *testing.T) {
	ctx := context.Background()
	_, cache := newCache(t)

	keysToDelete := []string{"view:1:all", "view:2:to_buy", "view:3:purchased"}
	keysToKeep := []string{"stats:1", "stats:2"}

	for _, key := range append(keysToDelete, keysToKeep...) {
		err := cache.SetWithTTL(ctx, key, "value", time.Minute)
		require.NoError(t, err)
	}

	err := cache.DeletePattern(ctx, "view:*")
	require.NoError(t, err)

	for _, key := range keysToDelete {
		var result string
		err := cache.Get(ctx, key, &result)
		assert.Equal(t, redis_a.ErrCacheMiss, err)
	}

	for _, key := range keysToKeep {
		var result string
		err := cache.Get(ctx, key, &result)
		require.NoError(t, err)
		assert.Equal(t, "value", result)
	}
}

func TestCache_Ping(t *testing.T) {
	ctx := context.Background()
	mr, cache := newCache(t)

	require.NoError(t, cache.Ping(ctx))

	mr.Close()
	assert.Error(t, cache.Ping(ctx))
}

func TestCache_BuildKey(t *testing.T) {
	tests := []struct {
		name     string
		prefix   redis_a.CacheKeyPrefix
		parts    []string
		expected string
	}{
		{
			name:     "view_key",
			prefix:   redis_a.PrefixView,
			parts:    []string{"7", "to_buy", "quantity", "mi"},
			expected: "view:7:to_buy:quantity:mi",
		},
		{
			name:     "stats_key",
			prefix:   redis_a.PrefixStats,
			parts:    []string{"7"},
			expected: "stats:7",
		},
		{
			name:     "no_parts",
			prefix:   redis_a.PrefixStats,
			parts:    []string{},
			expected: "stats",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := redis_a.BuildKey(tt.prefix, tt.parts...)
			assert.Equal(t, tt.expected, result)
		})
	}
}
