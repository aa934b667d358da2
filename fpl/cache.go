package fpl

import (
	"context"
	"sync"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
)

// Cache holds upstream documents for a revalidate interval chosen by the
// caller on every read, so one entry can serve routes with different
// freshness needs. Concurrent misses for a key share one upstream request.
type Cache struct {
	clock   clock.Clock
	group   singleflight.Group
	mu      sync.Mutex
	entries map[string]cacheEntry
}

type cacheEntry struct {
	value   any
	fetched time.Time
}

func NewCache(clock clock.Clock) *Cache {
	return &Cache{
		clock:   clock,
		entries: make(map[string]cacheEntry),
	}
}

// Get returns the value stored under key when it is younger than maxAge and
// calls fetch otherwise. A maxAge <= 0 means no-store: fetch is always called
// and nothing is stored. When a refresh fails and an older value exists, the
// older value is served.
func (c *Cache) Get(ctx context.Context, key string, maxAge time.Duration, fetch func(context.Context) (any, error)) (any, error) {
	if maxAge <= 0 {
		return fetch(ctx)
	}

	e, ok := c.lookup(key)
	if ok && c.clock.Now().Sub(e.fetched) < maxAge {
		return e.value, nil
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		// The shared fetch must not be cut short by whichever request started it.
		v, err := fetch(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}
		c.Store(key, v)
		return v, nil
	})
	if err != nil {
		if ok {
			log.Warn().Err(err).Str("key", key).Dur("age", c.clock.Now().Sub(e.fetched)).Msg("serving stale fpl data")
			return e.value, nil
		}
		return nil, err
	}
	return v, nil
}

// Store replaces the value under key and marks it fresh.
func (c *Cache) Store(key string, v any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{value: v, fetched: c.clock.Now()}
}

func (c *Cache) lookup(key string) (cacheEntry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	return e, ok
}

// Cached is a typed wrapper around Cache.Get.
func Cached[T any](ctx context.Context, c *Cache, key string, maxAge time.Duration, fetch func(context.Context) (T, error)) (T, error) {
	v, err := c.Get(ctx, key, maxAge, func(ctx context.Context) (any, error) {
		return fetch(ctx)
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}
