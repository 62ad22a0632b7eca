package freejourney

import (
	"context"
	"sync"

	"github.com/cockroachdb/errors"
)

// Call is one API call, usually a closure over a namespace method.
type Call[T any] func(ctx context.Context) (T, error)

type Result[T any] struct {
	Value T
	Error error
}

// All runs the calls concurrently and waits for all of them. Results are in
// the same order as the calls.
//
// Example usage:
//
//	results := freejourney.All(ctx,
//		func(ctx context.Context) (freejourney.Fact, error) { return fj.Animals.CatFact(ctx) },
//		func(ctx context.Context) (freejourney.Fact, error) { return fj.Animals.DogFact(ctx) })
func All[T any](ctx context.Context, calls ...Call[T]) []Result[T] {
	var wg sync.WaitGroup

	results := make([]Result[T], len(calls))

	for idx, call := range calls {
		idx, call := idx, call
		wg.Add(1)

		go func() {
			defer wg.Done()

			value, err := call(ctx)
			if err != nil {
				results[idx] = Result[T]{Error: err}
				return
			}

			results[idx] = Result[T]{Value: value}
		}()
	}

	wg.Wait()

	return results
}

// Race runs the calls concurrently and returns the first successful result.
// The context given to the other calls is canceled as soon as one succeeds.
func Race[T any](ctx context.Context, calls ...Call[T]) (T, error) {
	if len(calls) == 0 {
		return *new(T), errors.New("no requests to race")
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	c := make(chan Result[T], len(calls))

	for _, call := range calls {
		call := call
		go func() {
			value, err := call(ctx)
			if err != nil {
				c <- Result[T]{Error: err}
				return
			}

			c <- Result[T]{Value: value}
		}()
	}

	errored := 0

	for {
		select {
		case <-ctx.Done():
			return *new(T), ctx.Err()

		case value := <-c:
			switch value.Error {
			case nil:
				return value.Value, nil

			default:
				errored += 1

				if errored == len(calls) {
					return *new(T), errors.New("all requests failed")
				}
			}
		}
	}
}
