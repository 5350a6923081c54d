package scheduler

import (
	"context"
)

// Work is a unit of async work. It must return promptly once ctx is done.
type Work[T any] func(ctx context.Context) (T, error)

type Result[T any] struct {
	Data T
	Err  error
}

// Future delivers exactly one value on C.
type Future[T any] struct {
	input  chan T
	cancel context.CancelFunc
}

func NewFuture[T any](input chan T, cancel context.CancelFunc) *Future[T] {
	return &Future[T]{
		input:  input,
		cancel: cancel,
	}
}

func (f *Future[T]) C() <-chan T {
	return f.input
}

// Stop cancels the work's context. The future still delivers a result.
func (f *Future[T]) Stop() {
	f.cancel()
}
