package wrap

import (
	"github.com/ib-77/composeop/pkg/op"
	"github.com/ib-77/composeop/pkg/op/engine"
)

// Or evaluates `left | right`. The left operand's PipeTo is tried first,
// then the right operand's PipeFrom; if neither applies the operands are
// combined natively, which only works for raw classes and unions.
func Or(left, right any) (any, error) {
	if p, ok := left.(op.Piper); ok {
		if out := p.PipeTo(right); !out.IsNotApplicable() {
			return out.Unpack()
		}
	}
	if p, ok := right.(op.Piper); ok {
		if out := p.PipeFrom(left); !out.IsNotApplicable() {
			return out.Unpack()
		}
	}
	return op.Combine(left, right)
}

// Pipe evaluates `first | rest[0] | rest[1] | ...` left to right.
func Pipe(first any, rest ...any) (any, error) {
	acc := first
	for _, next := range rest {
		v, err := Or(acc, next)
		if err != nil {
			return nil, err
		}
		acc = v
	}
	return acc, nil
}

// composeOutcome wraps Compose(fns...) in a Composable.
func composeOutcome(fns ...any) op.Outcome[any] {
	comp, err := engine.Compose(fns...)
	if err != nil {
		return op.Failed[any](err)
	}
	w, err := NewComposable(comp)
	if err != nil {
		return op.Failed[any](err)
	}
	return op.Applied[any](w)
}

// isForcedComposable reports whether v opted into function composition:
// walking through proxies, the first wrapper met is a Composable.
// Constructor layers stop the walk; Instances layers are looked through.
func isForcedComposable(v any) bool {
	for {
		switch t := v.(type) {
		case *Composable:
			return true
		case *Constructor:
			return false
		case op.Unwrapper:
			v = t.Unwrap()
		default:
			return false
		}
	}
}

// combinesNatively reports whether v joins a class wrapper in a union
// rather than composing with it: a union, or a class that did not opt into
// composition.
func combinesNatively(v any) bool {
	if _, ok := v.(*op.Union); ok {
		return true
	}
	return op.IsClass(v) && !isForcedComposable(v)
}

// classPipeTo is `self | next` for the class wrappers: plain classes and
// unions combine natively with the wrapped class, everything else composes.
func classPipeTo(self Wrapper, next any) op.Outcome[any] {
	if combinesNatively(next) {
		return op.FromPair[any](Or(self.Unwrap(), next))
	}
	if !op.IsCallable(next) {
		return op.NotApplicable[any]()
	}
	return composeOutcome(next, self)
}

// classPipeFrom is `prev | self` for the class wrappers.
func classPipeFrom(self Wrapper, prev any) op.Outcome[any] {
	if combinesNatively(prev) {
		return op.FromPair[any](Or(prev, self.Unwrap()))
	}
	if !op.IsCallable(prev) {
		return op.NotApplicable[any]()
	}
	return composeOutcome(self, prev)
}
