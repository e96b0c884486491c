// query/cache_test.go
package query

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestFetchDeduplicatesConcurrentCalls(t *testing.T) {
	c := NewCache[[]int](time.Minute)

	var calls atomic.Int32
	release := make(chan struct{})
	fn := func(ctx context.Context) ([]int, error) {
		calls.Add(1)
		<-release
		return []int{1, 2, 3}, nil
	}

	const consumers = 2
	results := make([]Result[[]int], consumers)
	var wg sync.WaitGroup
	for i := 0; i < consumers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = c.Fetch(context.Background(), "todos", fn)
		}(i)
	}

	// Give both consumers time to join the flight before it resolves.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	if got := calls.Load(); got != 1 {
		t.Errorf("expected exactly 1 underlying call, got %d", got)
	}
	for i, res := range results {
		if res.Status != StatusSuccess {
			t.Fatalf("consumer %d: expected success, got %v (%v)", i, res.Status, res.Err)
		}
		if len(res.Data) != 3 {
			t.Errorf("consumer %d: unexpected data %v", i, res.Data)
		}
	}
}

func TestFetchServesFreshEntriesFromCache(t *testing.T) {
	c := NewCache[int](50 * time.Millisecond)
	current := time.Now()
	c.now = func() time.Time { return current }

	calls := 0
	fn := func(ctx context.Context) (int, error) {
		calls++
		return 42, nil
	}

	if res := c.Fetch(context.Background(), "k", fn); res.Status != StatusSuccess || res.Data != 42 {
		t.Fatalf("unexpected result %+v", res)
	}
	c.Fetch(context.Background(), "k", fn)
	if calls != 1 {
		t.Errorf("expected fresh entry served from cache, got %d calls", calls)
	}

	current = current.Add(60 * time.Millisecond)
	c.Fetch(context.Background(), "k", fn)
	if calls != 2 {
		t.Errorf("expected stale entry to trigger refetch, got %d calls", calls)
	}
}

func TestFetchKeysAreIndependent(t *testing.T) {
	c := NewCache[string](time.Minute)

	calls := 0
	fn := func(ctx context.Context) (string, error) {
		calls++
		return "data", nil
	}

	c.Fetch(context.Background(), "a", fn)
	c.Fetch(context.Background(), "b", fn)
	if calls != 2 {
		t.Errorf("expected one call per key, got %d", calls)
	}
}

func TestFetchDoesNotCacheErrors(t *testing.T) {
	c := NewCache[int](time.Minute)

	boom := errors.New("boom")
	calls := 0
	fn := func(ctx context.Context) (int, error) {
		calls++
		if calls == 1 {
			return 0, boom
		}
		return 7, nil
	}

	res := c.Fetch(context.Background(), "k", fn)
	if res.Status != StatusError || !errors.Is(res.Err, boom) {
		t.Fatalf("expected error result, got %+v", res)
	}

	res = c.Fetch(context.Background(), "k", fn)
	if res.Status != StatusSuccess || res.Data != 7 {
		t.Errorf("expected retry after error, got %+v", res)
	}
}

func TestInvalidateForcesRefetch(t *testing.T) {
	c := NewCache[int](time.Minute)

	calls := 0
	fn := func(ctx context.Context) (int, error) {
		calls++
		return calls, nil
	}

	c.Fetch(context.Background(), "k", fn)
	c.Invalidate("k")

	res := c.Fetch(context.Background(), "k", fn)
	if calls != 2 {
		t.Errorf("expected refetch after invalidate, got %d calls", calls)
	}
	if res.Data != 2 {
		t.Errorf("expected fresh data, got %d", res.Data)
	}
}

func TestNewCacheDefaultStaleness(t *testing.T) {
	c := NewCache[int](0)
	if c.staleAfter != DefaultStaleAfter {
		t.Errorf("expected default staleness %v, got %v", DefaultStaleAfter, c.staleAfter)
	}
}

func TestResultConstructors(t *testing.T) {
	p := Pending[int]()
	if p.Status != StatusPending || p.Err != nil {
		t.Errorf("unexpected pending result %+v", p)
	}

	f := Failure[int](errors.New("boom"))
	if f.Status != StatusError || f.Err == nil {
		t.Errorf("unexpected failure result %+v", f)
	}

	s := Success(5)
	if s.Status != StatusSuccess || s.Data != 5 || s.Err != nil {
		t.Errorf("unexpected success result %+v", s)
	}

	for want, status := range map[string]Status{
		"pending": StatusPending,
		"error":   StatusError,
		"success": StatusSuccess,
	} {
		if status.String() != want {
			t.Errorf("expected %q, got %q", want, status.String())
		}
	}
}
