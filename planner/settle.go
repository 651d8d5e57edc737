package planner

import (
	"context"
	"sync"
)

// settled holds the outcome of one task in a fan-out batch.
type settled[T any] struct {
	value T
	err   error
}

// settleAll runs every task concurrently and captures each outcome in its
// slot. A failing task never aborts the batch; callers inspect each result
// independently.
func settleAll[T any](ctx context.Context, tasks []func(context.Context) (T, error)) []settled[T] {
	out := make([]settled[T], len(tasks))
	var wg sync.WaitGroup
	for i, task := range tasks {
		wg.Add(1)
		go func(i int, task func(context.Context) (T, error)) {
			defer wg.Done()
			v, err := task(ctx)
			out[i] = settled[T]{value: v, err: err}
		}(i, task)
	}
	wg.Wait()
	return out
}
