package fpl

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/itbasis/go-clock"
)

func countingFetch(calls *atomic.Int32, err error) func(context.Context) (int, error) {
	return func(ctx context.Context) (int, error) {
		n := calls.Add(1)
		if err != nil {
			return 0, err
		}
		return int(n), nil
	}
}

func TestCacheRevalidate(t *testing.T) {
	clock := clock.NewMock()
	c := NewCache(clock)
	ctx := context.Background()

	var calls atomic.Int32
	fetch := countingFetch(&calls, nil)

	v, err := Cached(ctx, c, "players", time.Minute, fetch)
	if err != nil || v != 1 {
		t.Fatalf("expected: '1', got: '%d' (err: %v)", v, err)
	}

	clock.Add(59 * time.Second)
	v, _ = Cached(ctx, c, "players", time.Minute, fetch)
	if v != 1 {
		t.Errorf("expected a cached value within the interval, got: '%d'", v)
	}

	// Another route with a shorter interval sees the same entry as stale.
	v, _ = Cached(ctx, c, "players", 30*time.Second, fetch)
	if v != 2 {
		t.Errorf("expected a refetch for the shorter interval, got: '%d'", v)
	}

	clock.Add(time.Minute)
	v, _ = Cached(ctx, c, "players", time.Minute, fetch)
	if v != 3 {
		t.Errorf("expected a refetch after expiry, got: '%d'", v)
	}

	if calls.Load() != 3 {
		t.Errorf("expected 3 fetches, got %d", calls.Load())
	}
}

func TestCacheNoStore(t *testing.T) {
	c := NewCache(clock.NewMock())
	ctx := context.Background()

	var calls atomic.Int32
	fetch := countingFetch(&calls, nil)

	for i := 1; i <= 3; i++ {
		v, err := Cached(ctx, c, "detail", 0, fetch)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v != i {
			t.Errorf("expected: '%d', got: '%d'", i, v)
		}
	}
	if _, ok := c.lookup("detail"); ok {
		t.Errorf("no-store reads must not populate the cache")
	}
}

func TestCacheServesStaleOnError(t *testing.T) {
	clock := clock.NewMock()
	c := NewCache(clock)
	ctx := context.Background()

	var calls atomic.Int32
	if _, err := Cached(ctx, c, "fixtures", time.Minute, countingFetch(&calls, nil)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	clock.Add(2 * time.Minute)
	upstream := errors.New("upstream down")
	v, err := Cached(ctx, c, "fixtures", time.Minute, countingFetch(&calls, upstream))
	if err != nil {
		t.Fatalf("expected the stale value, got error: %v", err)
	}
	if v != 1 {
		t.Errorf("expected: '1', got: '%d'", v)
	}

	// Nothing to fall back on.
	_, err = Cached(ctx, c, "other", time.Minute, countingFetch(&calls, upstream))
	if !errors.Is(err, upstream) {
		t.Errorf("expected: '%v', got: '%v'", upstream, err)
	}
}

func TestCacheCollapsesConcurrentMisses(t *testing.T) {
	c := NewCache(clock.NewMock())
	ctx := context.Background()

	var calls atomic.Int32
	release := make(chan struct{})
	fetch := func(ctx context.Context) (int, error) {
		calls.Add(1)
		<-release
		return 42, nil
	}

	const n = 10
	var started, done sync.WaitGroup
	started.Add(n)
	done.Add(n)
	results := make([]int, n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer done.Done()
			started.Done()
			results[i], _ = Cached(ctx, c, "bootstrap", time.Minute, fetch)
		}(i)
	}
	started.Wait()
	// Give the goroutines a moment to join the in-flight call.
	time.Sleep(50 * time.Millisecond)
	close(release)
	done.Wait()

	if calls.Load() < 1 || calls.Load() > n {
		t.Fatalf("unexpected fetch count: %d", calls.Load())
	}
	if calls.Load() != 1 {
		t.Logf("expected 1 fetch, got %d; a goroutine was slow to start", calls.Load())
	}
	for i, r := range results {
		if r != 42 {
			t.Errorf("result %d: expected: '42', got: '%d'", i, r)
		}
	}
}

func TestCacheStore(t *testing.T) {
	mockClock := clock.NewMock()
	c := NewCache(mockClock)
	ctx := context.Background()

	c.Store("teams", 7)
	v, _ := Cached(ctx, c, "teams", time.Hour, func(context.Context) (int, error) { return 8, nil })
	if v != 7 {
		t.Errorf("expected: '7', got: '%d'", v)
	}

	mockClock.Add(time.Hour)
	v, _ = Cached(ctx, c, "teams", time.Hour, func(context.Context) (int, error) { return 8, nil })
	if v != 8 {
		t.Errorf("expected: '8', got: '%d'", v)
	}
}
