package syncs

import (
	"context"
	"sync"
)

// Map calls fn on every input with at most n calls running, and returns the results in input order.
// Inputs not started before ctx is done get the context error.
func Map[T, R any](ctx context.Context, n int, inputs []T, fn func(context.Context, T) (R, error)) ([]R, []error) {
	results := make([]R, len(inputs))
	errs := make([]error, len(inputs))
	sem := NewSemaphore(n)
	var wg sync.WaitGroup
	for i, input := range inputs {
		if err := sem.Acquire(ctx); err != nil {
			for j := i; j < len(inputs); j++ {
				errs[j] = err
			}
			break
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release()
			results[i], errs[i] = fn(ctx, input)
		}()
	}
	wg.Wait()
	return results, errs
}
