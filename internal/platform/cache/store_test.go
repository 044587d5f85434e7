package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestStore_GetOrLoad_UsesSingleFlight(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (any, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return "colleges", nil
	}

	const workers = 32
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)
	errCh := make(chan error, workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			v, err := store.GetOrLoad(context.Background(), "college:list", loader)
			if err != nil {
				errCh <- err
				return
			}
			if got, _ := v.(string); got != "colleges" {
				errCh <- errUnexpectedValue
			}
		}()
	}

	close(start)
	wg.Wait()
	close(errCh)
	for err := range errCh {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestStore_EntriesExpire(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	now := time.Date(2025, 5, 20, 9, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	store.Set(context.Background(), "sport:list", []string{"축구"})
	if _, ok := store.Get(context.Background(), "sport:list"); !ok {
		t.Fatalf("expected fresh entry")
	}

	now = now.Add(2 * time.Minute)
	if _, ok := store.Get(context.Background(), "sport:list"); ok {
		t.Fatalf("expected entry to expire")
	}
	if store.Len() != 0 {
		t.Fatalf("expected empty store, got %d", store.Len())
	}
}

func TestStore_DeletePrefix(t *testing.T) {
	t.Parallel()

	store := NewStore(0)
	ctx := context.Background()
	store.Set(ctx, "department:list:1", 1)
	store.Set(ctx, "department:list:2", 2)
	store.Set(ctx, "venue:list", 3)

	store.DeletePrefix(ctx, "department:")
	if store.Len() != 1 {
		t.Fatalf("expected 1 entry left, got %d", store.Len())
	}
}

func TestLoad_TypedAndErrorsNotCached(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32
	failing := func(context.Context) ([]int64, error) {
		calls.Add(1)
		return nil, errUnexpectedValue
	}

	if _, err := Load(context.Background(), store, "ids", failing); !errors.Is(err, errUnexpectedValue) {
		t.Fatalf("expected loader error, got %v", err)
	}

	got, err := Load(context.Background(), store, "ids", func(context.Context) ([]int64, error) {
		calls.Add(1)
		return []int64{1, 2}, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || calls.Load() != 2 {
		t.Fatalf("unexpected result %v after %d calls", got, calls.Load())
	}
}

var errUnexpectedValue = errors.New("unexpected loaded value")
