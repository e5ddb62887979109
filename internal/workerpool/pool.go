package workerpool

import (
	"context"
	"sync"
)

// Transformer maps one input item to one result. It is called concurrently
// by every worker of the pool and must be safe for that.
type Transformer[T, R any] func(ctx context.Context, current T) R

// Pool runs a bounded number of workers over an input channel.
type Pool[T, R any] interface {
	// Transform applies transformer to each item read from input and sends the
	// results to the returned channel, which is closed once input is drained or
	// ctx is done. Results come back in completion order, not input order.
	Transform(ctx context.Context, workers int, input <-chan T, transformer Transformer[T, R]) <-chan R
}

var _ Pool[int, int] = (*poolImpl[int, int])(nil)

type poolImpl[T, R any] struct{}

func New[T, R any]() *poolImpl[T, R] {
	return &poolImpl[T, R]{}
}

func (p *poolImpl[T, R]) Transform(
	ctx context.Context,
	workers int,
	input <-chan T,
	transformer Transformer[T, R],
) <-chan R {
	ans := make(chan R)
	wg := sync.WaitGroup{}

	workers = max(workers, 1)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case v, ok := <-input:
					if !ok {
						return
					}

					select {
					case <-ctx.Done():
						return
					case ans <- transformer(ctx, v):
					}
				}
			}
		}()
	}
	go func() {
		defer close(ans)
		wg.Wait()
	}()

	return ans
}

// Generate streams values into a channel that is closed after the last value
// or when ctx is done.
func Generate[T any](ctx context.Context, values []T) <-chan T {
	ans := make(chan T)

	go func() {
		defer close(ans)
		for _, v := range values {
			select {
			case <-ctx.Done():
				return
			case ans <- v:
			}
		}
	}()

	return ans
}
