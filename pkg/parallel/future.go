package parallel

import (
	"context"

	"github.com/go-arcade/aoc2021/pkg/safe"
)

/**
 * @author: gagral.x@gmail.com
 * @file: future.go
 * @description: single asynchronous result
 */

type IFuture[T any] interface {
	// Get wait and get result
	Get() (T, error)
	// IsDone check if the task is done
	IsDone() bool
	// Cancel cancel the task
	Cancel()
}

// Go runs fn in its own goroutine and returns a handle to its result.
func Go[T any](ctx context.Context, fn func(ctx context.Context) (T, error), opts ...RunOption) IFuture[T] {
	rOpts := newRunOptions(opts)
	f := &futureResult[T]{
		done: make(chan struct{}),
	}
	if rOpts.timeout > 0 {
		f.ctx, f.cancel = context.WithTimeout(ctx, rOpts.timeout)
	} else {
		f.ctx, f.cancel = context.WithCancel(ctx)
	}
	go func() {
		defer f.cancel()
		defer close(f.done)
		f.err = safe.Do(func() error {
			var err error
			f.data, err = fn(f.ctx)
			return err
		})
	}()
	return f
}

type futureResult[T any] struct {
	ctx    context.Context
	cancel func()

	done chan struct{}
	data T
	err  error
}

// Get returns the result, or the context error if the deadline passes or the
// task is cancelled first.
func (f *futureResult[T]) Get() (T, error) {
	select {
	case <-f.done:
		return f.data, f.err
	case <-f.ctx.Done():
		select {
		case <-f.done:
			return f.data, f.err
		default:
		}
		var zero T
		return zero, f.ctx.Err()
	}
}

func (f *futureResult[T]) IsDone() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

func (f *futureResult[T]) Cancel() {
	f.cancel()
}
