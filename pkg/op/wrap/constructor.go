package wrap

import (
	"context"

	"github.com/ib-77/composeop/pkg/op"
)

// Constructor makes a class constructor composable with Or while the class
// keeps combining natively with plain classes.
type Constructor struct {
	wrapped any
}

// NewConstructor wraps cls. A Composable or Constructor argument is
// unwrapped one layer first.
func NewConstructor(cls any) (*Constructor, error) {
	if op.IsNil(cls) {
		return nil, op.NotAClass(KindConstructor.String(), cls)
	}
	switch w := cls.(type) {
	case *Composable:
		cls = w.wrapped
	case *Constructor:
		cls = w.wrapped
	}
	if !op.IsClass(cls) {
		return nil, op.NotAClass(KindConstructor.String(), cls)
	}
	return &Constructor{wrapped: cls}, nil
}

func MustConstructor(cls any) *Constructor {
	c, err := NewConstructor(cls)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Constructor) Kind() Kind {
	return KindConstructor
}

func (c *Constructor) Unwrap() any {
	return c.wrapped
}

// PipeTo is `c | next`. If next is a class that was not forced to be
// composable, this is the native combination of the wrapped class and
// next; otherwise it is the composition next(c(...)).
func (c *Constructor) PipeTo(next any) op.Outcome[any] {
	return classPipeTo(c, next)
}

// PipeFrom is `prev | c`, mirroring PipeTo.
func (c *Constructor) PipeFrom(prev any) op.Outcome[any] {
	return classPipeFrom(c, prev)
}

// Call constructs an instance of the wrapped class.
func (c *Constructor) Call(ctx context.Context, args ...any) (any, error) {
	return op.Call(ctx, c.wrapped, args...)
}

// IsInstance answers as the wrapped class would.
func (c *Constructor) IsInstance(v any) bool {
	return op.IsInstance(v, c.wrapped)
}

// IsSubclass answers as the wrapped class would; a wrapped sub is
// unwrapped first.
func (c *Constructor) IsSubclass(sub any) bool {
	if u, ok := sub.(op.Unwrapper); ok {
		sub = u.Unwrap()
	}
	return op.IsSubclass(sub, c.wrapped)
}

func (c *Constructor) Attr(name string) (any, error) {
	return op.GetAttr(c.wrapped, name)
}

func (c *Constructor) Equal(other any) bool {
	o, ok := other.(*Constructor)
	return ok && op.Equal(c.wrapped, o.wrapped)
}

func (c *Constructor) Repr() string {
	return reprOf(c)
}

func (c *Constructor) String() string {
	return c.Repr()
}

func (c *Constructor) Reduce() (Kind, any) {
	return KindConstructor, c.wrapped
}

func (c *Constructor) Copy() *Constructor {
	return rebuild(c.Reduce()).(*Constructor)
}

func (c *Constructor) DeepCopy() any {
	return rebuild(KindConstructor, op.DeepCopy(c.wrapped))
}
