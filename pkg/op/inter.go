package op

import (
	"context"
	"time"
)

// Callable is anything that can be invoked with positional arguments.
// Keyword arguments travel as a trailing Keywords value.
type Callable interface {
	Call(ctx context.Context, args ...any) (any, error)
}

// Binder is implemented by values that turn into a bound callable when
// looked up through an owning object.
type Binder interface {
	// Bind returns the value bound to owner. A nil owner means the lookup
	// went through the class; binders return themselves in that case.
	Bind(owner any) (any, error)
}

// Unwrapper is implemented by proxies.
type Unwrapper interface {
	// Unwrap returns the object the proxy stands in for
	Unwrap() any
}

// Pending is a suspended computation.
type Pending interface {
	Await(ctx context.Context) (any, error)
}

// Piper is the two-sided pipeline operator hook.
type Piper interface {
	// PipeTo handles `self | next`
	PipeTo(next any) Outcome[any]
	// PipeFrom handles `prev | self`
	PipeFrom(prev any) Outcome[any]
}

// Equaler overrides the default equality used by Equal.
type Equaler interface {
	Equal(other any) bool
}

// Reprer overrides the default representation used by Repr.
type Reprer interface {
	Repr() string
}

// DeepCopier overrides the default (identity) deep copy used by DeepCopy.
type DeepCopier interface {
	DeepCopy() any
}

// Instance is implemented by values constructed from a Class.
type Instance interface {
	Class() *Class
}

// Attributer exposes named attributes.
type Attributer interface {
	Attr(name string) (any, error)
}

// OutcomeProvider is the read side of an Outcome.
type OutcomeProvider[T any] interface {
	// Value returns the produced value
	Value() T
	// Err returns the error if the operator applied and failed
	Err() error
	// IsApplied returns true if the operator applied and succeeded
	IsApplied() bool
	// IsNotApplicable returns true if the operator declined the operands
	IsNotApplicable() bool
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}
