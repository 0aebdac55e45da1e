package jobs

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
)

// Result is the outcome of one item in a batch. Err is the untouched error
// returned by the task.
type Result[T any] struct {
	Item     T
	Err      error
	Duration time.Duration
}

// RunBatch runs task for every item with at most workers in flight. It never
// stops early: every item gets a Result, in input order.
func RunBatch[T any](ctx context.Context, jobType string, workers int, items []T, task func(context.Context, T) error) []Result[T] {
	if workers <= 0 {
		workers = 1
	}
	results := make([]Result[T], len(items))

	var g errgroup.Group
	g.SetLimit(workers)
	for i, item := range items {
		g.Go(func() error {
			start := time.Now()
			err := ctx.Err()
			if err == nil {
				err = task(ctx, item)
			}
			results[i] = Result[T]{Item: item, Err: err, Duration: time.Since(start)}
			if err != nil {
				slog.Warn("batch item failed", "jobType", jobType, "index", i, "err", err)
			}
			return nil
		})
	}
	_ = g.Wait()

	slog.Info("batch finished", "jobType", jobType, "items", len(items), "failed", Failed(results))
	return results
}

func Failed[T any](results []Result[T]) int {
	n := 0
	for _, r := range results {
		if r.Err != nil {
			n++
		}
	}
	return n
}
