package jobs

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestRunBatchKeepsOrderAndErrors(t *testing.T) {
	boom := errors.New("boom")
	items := []int{1, 2, 3, 4, 5}

	results := RunBatch(context.Background(), "test", 2, items, func(ctx context.Context, n int) error {
		if n%2 == 0 {
			return boom
		}
		return nil
	})

	if len(results) != len(items) {
		t.Fatalf("expected %d results, got %d", len(items), len(results))
	}
	for i, r := range results {
		if r.Item != items[i] {
			t.Fatalf("result %d out of order: %+v", i, r)
		}
		if (items[i]%2 == 0) != errors.Is(r.Err, boom) {
			t.Fatalf("unexpected error for %d: %v", items[i], r.Err)
		}
	}
	if Failed(results) != 2 {
		t.Fatalf("expected 2 failures, got %d", Failed(results))
	}
}

func TestRunBatchRespectsWorkerLimit(t *testing.T) {
	var running, peak int32
	items := make([]int, 12)

	RunBatch(context.Background(), "test", 3, items, func(ctx context.Context, _ int) error {
		cur := atomic.AddInt32(&running, 1)
		for {
			old := atomic.LoadInt32(&peak)
			if cur <= old || atomic.CompareAndSwapInt32(&peak, old, cur) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		atomic.AddInt32(&running, -1)
		return nil
	})

	if peak > 3 {
		t.Fatalf("expected at most 3 concurrent tasks, saw %d", peak)
	}
}

func TestRunBatchCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	results := RunBatch(ctx, "test", 1, []string{"a"}, func(ctx context.Context, _ string) error {
		called = true
		return nil
	})
	if called {
		t.Fatal("task should not run on a cancelled context")
	}
	if !errors.Is(results[0].Err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", results[0].Err)
	}
}
