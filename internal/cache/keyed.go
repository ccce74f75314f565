package cache

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

type keyedEntry[T any] struct {
	value     T
	fetchedAt time.Time
}

// Keyed is a per-key TTL cache. It backs the event-metadata class, where
// entries are cached per event ticker rather than as one whole-feed value.
type Keyed[T any] struct {
	ttl   time.Duration
	now   func() time.Time
	group singleflight.Group

	mu      sync.Mutex
	entries map[string]keyedEntry[T]
}

// NewKeyed creates a per-key cache with a shared TTL.
func NewKeyed[T any](ttl time.Duration) *Keyed[T] {
	return &Keyed[T]{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]keyedEntry[T]),
	}
}

// Get returns the cached value for key when fresh, otherwise runs fetch and
// stores the result. Concurrent callers for the same key share one fetch;
// distinct keys never block each other's fetches.
func (k *Keyed[T]) Get(ctx context.Context, key string, fetch func(context.Context) (T, error)) (T, error) {
	if v, ok := k.fresh(key); ok {
		return v, nil
	}

	v, err, _ := k.group.Do(key, func() (any, error) {
		if v, ok := k.fresh(key); ok {
			return v, nil
		}

		val, err := fetch(ctx)
		if err != nil {
			return nil, err
		}

		k.mu.Lock()
		k.entries[key] = keyedEntry[T]{value: val, fetchedAt: k.now()}
		k.mu.Unlock()

		return val, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}

// Len reports the number of stored entries, fresh or not.
func (k *Keyed[T]) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.entries)
}

func (k *Keyed[T]) fresh(key string) (T, bool) {
	k.mu.Lock()
	defer k.mu.Unlock()
	if e, ok := k.entries[key]; ok && k.now().Sub(e.fetchedAt) < k.ttl {
		return e.value, true
	}
	var zero T
	return zero, false
}
