package core

import (
	"context"
	"errors"
)

// ErrClosed is the error of a Future fed by a channel that closed empty.
var ErrClosed = errors.New("[core]: channel closed before a value was sent")

// Future is a pending result produced by a goroutine. It satisfies
// op.Pending and may be awaited any number of times.
type Future struct {
	done  chan struct{}
	value any
	err   error
}

// Go runs fn on its own goroutine and returns its pending result.
func Go(ctx context.Context, fn func(ctx context.Context) (any, error)) *Future {
	f := &Future{done: make(chan struct{})}

	go func() {
		defer close(f.done)
		f.value, f.err = fn(ctx)
	}()

	return f
}

// Resolved returns a Future that is already complete.
func Resolved(value any, err error) *Future {
	f := &Future{done: make(chan struct{}), value: value, err: err}
	close(f.done)
	return f
}

// FromChan resolves to the first value received from ch.
func FromChan[T any](ctx context.Context, ch <-chan T) *Future {
	return Go(ctx, func(ctx context.Context) (any, error) {
		select {
		case v, ok := <-ch:
			if !ok {
				return nil, ErrClosed
			}
			return v, nil
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	})
}

// Await blocks until the result is ready or ctx is done.
func (f *Future) Await(ctx context.Context) (any, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (f *Future) Done() <-chan struct{} {
	return f.done
}
