// Package cache provides TTL-gated in-memory caches for the ranking service.
//
// Each cache entry is replaced wholesale under a single assignment, never
// mutated field-by-field, so readers always observe a complete value. There
// is no background refresh and no stale-serving grace period: an expired
// entry is recomputed synchronously on the read path. Concurrent readers
// racing on an expired entry share one recompute via singleflight.
package cache

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Cache holds a single value of one data class with its own TTL.
type Cache[T any] struct {
	ttl   time.Duration
	now   func() time.Time
	group singleflight.Group

	mu        sync.Mutex
	value     T
	fetchedAt time.Time
	valid     bool
}

// New creates a cache whose value expires ttl after each successful fetch.
func New[T any](ttl time.Duration) *Cache[T] {
	return &Cache[T]{
		ttl: ttl,
		now: time.Now,
	}
}

// Get returns the cached value when fresh, otherwise runs fetch and stores
// the result before returning it. A failed fetch stores nothing, so the next
// caller retries. All callers racing on an expired entry await one shared
// fetch.
func (c *Cache[T]) Get(ctx context.Context, fetch func(context.Context) (T, error)) (T, error) {
	if v, ok := c.fresh(); ok {
		return v, nil
	}

	v, err, _ := c.group.Do("refresh", func() (any, error) {
		// A caller that queued behind the in-flight fetch sees its result
		// here without fetching again.
		if v, ok := c.fresh(); ok {
			return v, nil
		}

		val, err := fetch(ctx)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.value = val
		c.fetchedAt = c.now()
		c.valid = true
		c.mu.Unlock()

		return val, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}

// Age reports how long ago the value was fetched. ok is false when the cache
// has never been populated.
func (c *Cache[T]) Age() (time.Duration, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.valid {
		return 0, false
	}
	return c.now().Sub(c.fetchedAt), true
}

func (c *Cache[T]) fresh() (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.valid && c.now().Sub(c.fetchedAt) < c.ttl {
		return c.value, true
	}
	var zero T
	return zero, false
}
