package cache

import (
	"time"

	"github.com/dgraph-io/ristretto/v2"
)

// Cache is a typed ristretto cache keyed by string
type Cache[T any] struct {
	impl      *ristretto.Cache[string, T]
	cacheType string
}

// New creates a new cache with the given cost function and cache type.
// maxCost bounds the summed cost of all entries.
func New[T any](costFunc func(T) int64, cacheType string, maxCost int64) (*Cache[T], error) {
	impl, err := ristretto.NewCache(&ristretto.Config[string, T]{
		NumCounters: maxCost / 100, // ~10x the expected number of entries
		MaxCost:     maxCost,
		BufferItems: 64, // number of keys per Get buffer
		Metrics:     true,
		Cost:        costFunc,
	})
	if err != nil {
		return nil, err
	}

	return &Cache[T]{
		impl:      impl,
		cacheType: cacheType,
	}, nil
}

// Get retrieves a value from the cache
func (c *Cache[T]) Get(key string) (T, bool) {
	return c.impl.Get(key)
}

// SetWithTTL stores a value; a zero cost lets the cost function decide.
func (c *Cache[T]) SetWithTTL(key string, value T, cost int64, ttl time.Duration) bool {
	return c.impl.SetWithTTL(key, value, cost, ttl)
}

// GetOrBuild returns the cached value for key, building and storing it on a
// miss. Build errors are returned and nothing is stored.
func (c *Cache[T]) GetOrBuild(key string, ttl time.Duration, build func() (T, error)) (T, error) {
	if v, ok := c.impl.Get(key); ok {
		return v, nil
	}
	v, err := build()
	if err != nil {
		return v, err
	}
	c.impl.SetWithTTL(key, v, 0, ttl)
	return v, nil
}

// Clear removes all items from the cache
func (c *Cache[T]) Clear() {
	c.impl.Clear()
}

// Wait waits for buffered writes to be applied
func (c *Cache[T]) Wait() {
	c.impl.Wait()
}

// Close stops the cache's background goroutines
func (c *Cache[T]) Close() {
	c.impl.Close()
}

// GetItemCount returns the current number of items in the cache
func (c *Cache[T]) GetItemCount() int64 {
	return int64(c.impl.Metrics.KeysAdded() - c.impl.Metrics.KeysEvicted())
}

// Stats returns cache statistics for the admin page
func (c *Cache[T]) Stats() map[string]interface{} {
	metrics := c.impl.Metrics

	memoryUsed := metrics.CostAdded() - metrics.CostEvicted()

	hitRate := 0.0
	totalRequests := metrics.Hits() + metrics.Misses()
	if totalRequests > 0 {
		hitRate = float64(metrics.Hits()) / float64(totalRequests) * 100
	}

	return map[string]interface{}{
		"cache_type":     c.cacheType,
		"hits":           metrics.Hits(),
		"misses":         metrics.Misses(),
		"sets":           metrics.KeysAdded(),
		"total_requests": totalRequests,
		"hit_rate":       hitRate,
		"sets_dropped":   metrics.SetsDropped(),
		"sets_rejected":  metrics.SetsRejected(),
		"memory_used":    memoryUsed,
		"memory_used_kb": float64(memoryUsed) / 1024,
		"current_items":  c.GetItemCount(),
	}
}
