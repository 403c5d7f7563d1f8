package op

import "context"

// Capability classifies what an operand can do.
type Capability uint8

const (
	CapNone Capability = iota
	CapCallable
	CapClass
	CapWrappedCallable
	CapWrappedClass
)

func (c Capability) String() string {
	switch c {
	case CapCallable:
		return "callable"
	case CapClass:
		return "class"
	case CapWrappedCallable:
		return "wrapped callable"
	case CapWrappedClass:
		return "wrapped class"
	default:
		return "none"
	}
}

// CapabilityOf classifies v. A proxy is classified by what it ultimately
// stands in for. Typed nils can do nothing.
func CapabilityOf(v any) Capability {
	if IsNil(v) {
		return CapNone
	}
	if u, ok := v.(Unwrapper); ok {
		switch CapabilityOf(u.Unwrap()) {
		case CapClass, CapWrappedClass:
			return CapWrappedClass
		case CapCallable, CapWrappedCallable:
			return CapWrappedCallable
		default:
			return CapNone
		}
	}
	switch v.(type) {
	case *Class:
		return CapClass
	case Callable,
		func(context.Context, ...any) (any, error),
		func(any) (any, error),
		func(any) any:
		return CapCallable
	default:
		return CapNone
	}
}

func IsCallable(v any) bool {
	return CapabilityOf(v) != CapNone
}

func IsClass(v any) bool {
	c := CapabilityOf(v)
	return c == CapClass || c == CapWrappedClass
}
