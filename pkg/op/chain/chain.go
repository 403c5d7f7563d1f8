package chain

import (
	"context"

	"github.com/ib-77/composeop/pkg/op"
	"github.com/ib-77/composeop/pkg/op/wrap"
)

// Chain accumulates `a | b | c ...` fluently, keeping the first error.
type Chain struct {
	value any
	err   error
}

// Start creates a new chain from a first operand
func Start(first any) *Chain {
	return &Chain{value: first}
}

// Composable starts a chain from fn made composable
func Composable(fn any) *Chain {
	c, err := wrap.NewComposable(fn)
	if err != nil {
		return &Chain{err: err}
	}
	return &Chain{value: c}
}

// Pipe applies `current | next`
func (c *Chain) Pipe(next any) *Chain {
	if c.err != nil {
		return c
	}
	v, err := wrap.Or(c.value, next)
	return &Chain{value: v, err: err}
}

// PipeAll applies Pipe for each operand in order
func (c *Chain) PipeAll(next ...any) *Chain {
	out := c
	for _, n := range next {
		out = out.Pipe(n)
	}
	return out
}

// Result returns the accumulated value
func (c *Chain) Result() (any, error) {
	return c.value, c.err
}

// Err returns the first error met
func (c *Chain) Err() error {
	return c.err
}

// Call invokes the accumulated value
func (c *Chain) Call(ctx context.Context, args ...any) (any, error) {
	if c.err != nil {
		return nil, c.err
	}
	return op.Call(ctx, c.value, args...)
}

// Finally collapses the chain into a value via handlers
func Finally[U any](c *Chain, onSuccess func(v any) U, onFailure func(err error) U) U {
	if c.err != nil {
		return onFailure(c.err)
	}
	return onSuccess(c.value)
}
