package wrap

import (
	"context"

	"github.com/ib-77/composeop/pkg/op"
)

// Composable makes a callable composable with Or.
type Composable struct {
	wrapped any
}

// NewComposable wraps fn. A Composable or Constructor argument is unwrapped
// one layer first.
func NewComposable(fn any) (*Composable, error) {
	if op.IsNil(fn) {
		return nil, op.NotCallable(KindComposable.String(), fn)
	}
	switch w := fn.(type) {
	case *Composable:
		fn = w.wrapped
	case *Constructor:
		fn = w.wrapped
	}
	if !op.IsCallable(fn) {
		return nil, op.NotCallable(KindComposable.String(), fn)
	}
	return &Composable{wrapped: fn}, nil
}

// MustComposable is NewComposable for package-level declarations.
func MustComposable(fn any) *Composable {
	c, err := NewComposable(fn)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Composable) Kind() Kind {
	return KindComposable
}

func (c *Composable) Unwrap() any {
	return c.wrapped
}

// PipeTo is `c | next`, equivalent to next(c(...)).
func (c *Composable) PipeTo(next any) op.Outcome[any] {
	if !op.IsCallable(next) {
		return op.NotApplicable[any]()
	}
	return composeOutcome(next, c)
}

// PipeFrom is `prev | c`, equivalent to c(prev(...)).
func (c *Composable) PipeFrom(prev any) op.Outcome[any] {
	if !op.IsCallable(prev) {
		return op.NotApplicable[any]()
	}
	return composeOutcome(c, prev)
}

// Call invokes the wrapped callable. A callable result is returned as a
// Composable so chains keep working on functions that return functions.
func (c *Composable) Call(ctx context.Context, args ...any) (any, error) {
	result, err := op.Call(ctx, c.wrapped, args...)
	if err != nil {
		return nil, err
	}
	if !op.IsCallable(result) {
		return result, nil
	}
	w, err := NewComposable(result)
	if err != nil {
		return nil, err
	}
	return w, nil
}

// Bind returns c bound to owner as a Composable. When the wrapped value has
// no binding behaviour, or binding returns it unchanged, c itself is returned.
func (c *Composable) Bind(owner any) (any, error) {
	b, ok := c.wrapped.(op.Binder)
	if !ok {
		return c, nil
	}
	bound, err := b.Bind(owner)
	if err != nil {
		return nil, err
	}
	if op.Same(bound, c.wrapped) {
		return c, nil
	}
	w, err := NewComposable(bound)
	if err != nil {
		return nil, err
	}
	return w, nil
}

// Attr forwards attribute lookups to the wrapped value.
func (c *Composable) Attr(name string) (any, error) {
	return op.GetAttr(c.wrapped, name)
}

func (c *Composable) Equal(other any) bool {
	o, ok := other.(*Composable)
	return ok && op.Equal(c.wrapped, o.wrapped)
}

func (c *Composable) Repr() string {
	return reprOf(c)
}

func (c *Composable) String() string {
	return c.Repr()
}

func (c *Composable) Reduce() (Kind, any) {
	return KindComposable, c.wrapped
}

func (c *Composable) Copy() *Composable {
	return rebuild(c.Reduce()).(*Composable)
}

func (c *Composable) DeepCopy() any {
	return rebuild(KindComposable, op.DeepCopy(c.wrapped))
}

func reprOf(w Wrapper) string {
	kind, v := w.Reduce()
	return kind.String() + "(" + op.Repr(v) + ")"
}
