package wrap

import (
	"context"

	"github.com/ib-77/composeop/pkg/op"
)

// Instances wraps a class so that every instance it constructs comes back
// as a Composable.
type Instances struct {
	wrapped any
}

// NewInstances wraps cls. An Instances argument is unwrapped one layer, so
// rewrapping keeps the same underlying class.
func NewInstances(cls any) (*Instances, error) {
	if op.IsNil(cls) {
		return nil, op.NotAClass(KindInstances.String(), cls)
	}
	if w, ok := cls.(*Instances); ok {
		cls = w.wrapped
	}
	if !op.IsClass(cls) {
		return nil, op.NotAClass(KindInstances.String(), cls)
	}
	return &Instances{wrapped: cls}, nil
}

func MustInstances(cls any) *Instances {
	i, err := NewInstances(cls)
	if err != nil {
		panic(err)
	}
	return i
}

func (i *Instances) Kind() Kind {
	return KindInstances
}

func (i *Instances) Unwrap() any {
	return i.wrapped
}

// Call constructs an instance of the wrapped class and returns it as a
// Composable. Instances that are not callable are an error.
func (i *Instances) Call(ctx context.Context, args ...any) (any, error) {
	instance, err := op.Call(ctx, i.wrapped, args...)
	if err != nil {
		return nil, err
	}
	w, err := NewComposable(instance)
	if err != nil {
		return nil, err
	}
	return w, nil
}

func (i *Instances) PipeTo(next any) op.Outcome[any] {
	return classPipeTo(i, next)
}

func (i *Instances) PipeFrom(prev any) op.Outcome[any] {
	return classPipeFrom(i, prev)
}

func (i *Instances) IsInstance(v any) bool {
	return op.IsInstance(v, i.wrapped)
}

func (i *Instances) IsSubclass(sub any) bool {
	if u, ok := sub.(op.Unwrapper); ok {
		sub = u.Unwrap()
	}
	return op.IsSubclass(sub, i.wrapped)
}

func (i *Instances) Attr(name string) (any, error) {
	return op.GetAttr(i.wrapped, name)
}

func (i *Instances) Equal(other any) bool {
	o, ok := other.(*Instances)
	return ok && op.Equal(i.wrapped, o.wrapped)
}

func (i *Instances) Repr() string {
	return reprOf(i)
}

func (i *Instances) String() string {
	return i.Repr()
}

func (i *Instances) Reduce() (Kind, any) {
	return KindInstances, i.wrapped
}

func (i *Instances) Copy() *Instances {
	return rebuild(i.Reduce()).(*Instances)
}

func (i *Instances) DeepCopy() any {
	return rebuild(KindInstances, op.DeepCopy(i.wrapped))
}
