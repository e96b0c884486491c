// query/cache.go

// Package query caches the result of keyed fetch operations. Concurrent
// fetches under the same key share one underlying call, and cached data
// is served until it passes the staleness window.
package query

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

const DefaultStaleAfter = 30 * time.Second

// FetchFunc produces fresh data for a key.
type FetchFunc[T any] func(ctx context.Context) (T, error)

type entry[T any] struct {
	data      T
	fetchedAt time.Time
}

type Cache[T any] struct {
	staleAfter time.Duration
	group      singleflight.Group

	mu      sync.RWMutex
	entries map[string]entry[T]

	// now is swapped in tests.
	now func() time.Time
}

// NewCache creates a cache whose entries go stale after the given
// duration. Non-positive durations fall back to DefaultStaleAfter.
func NewCache[T any](staleAfter time.Duration) *Cache[T] {
	if staleAfter <= 0 {
		staleAfter = DefaultStaleAfter
	}
	return &Cache[T]{
		staleAfter: staleAfter,
		entries:    make(map[string]entry[T]),
		now:        time.Now,
	}
}

// Fetch returns the cached data for key when it is still fresh, and
// otherwise calls fn. Concurrent calls for the same key are collapsed
// into a single fn invocation whose result all callers share. Errors are
// not cached; the next Fetch retries.
func (c *Cache[T]) Fetch(ctx context.Context, key string, fn FetchFunc[T]) Result[T] {
	if e, ok := c.fresh(key); ok {
		return Success(e.data)
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		// A concurrent caller may have refreshed the entry while this
		// one waited on the flight group.
		if e, ok := c.fresh(key); ok {
			return e.data, nil
		}

		data, err := fn(ctx)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.entries[key] = entry[T]{data: data, fetchedAt: c.now()}
		c.mu.Unlock()

		return data, nil
	})
	if err != nil {
		return Failure[T](err)
	}

	return Success(v.(T))
}

// Invalidate drops the entry for key so the next Fetch hits the network.
func (c *Cache[T]) Invalidate(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

func (c *Cache[T]) fresh(key string) (entry[T], bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok || c.now().Sub(e.fetchedAt) >= c.staleAfter {
		return entry[T]{}, false
	}
	return e, true
}
