package op

import (
	"context"
	"fmt"
	"reflect"
	"strconv"
)

// IsNil reports whether i is nil, including a nil pointer, func, map,
// slice, chan or interface held in a non-nil interface.
func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}
	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Ptr, reflect.Func, reflect.Map, reflect.Slice, reflect.Chan, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}

func isComparable(v any) bool {
	return v == nil || reflect.TypeOf(v).Comparable()
}

// Same reports whether a and b are the same object. Funcs of one type are
// the same when they share a code pointer, so closures made by a single
// func literal are not told apart. Other values of non-comparable types
// are never the same as anything.
func Same(a, b any) bool {
	if fa, fb := reflect.ValueOf(a), reflect.ValueOf(b); fa.Kind() == reflect.Func && fb.Kind() == reflect.Func {
		return fa.Type() == fb.Type() && fa.Pointer() == fb.Pointer()
	}
	if !isComparable(a) || !isComparable(b) {
		return false
	}
	return a == b
}

// Equal is value equality: an Equaler on either side decides, otherwise
// comparable values are compared with ==.
func Equal(a, b any) bool {
	if e, ok := a.(Equaler); ok {
		return e.Equal(b)
	}
	if e, ok := b.(Equaler); ok {
		return e.Equal(a)
	}
	return Same(a, b)
}

// Repr renders v unambiguously.
func Repr(v any) string {
	if v != nil && IsNil(v) {
		return fmt.Sprintf("%#v", v)
	}
	switch t := v.(type) {
	case nil:
		return "nil"
	case Reprer:
		return t.Repr()
	case string:
		return strconv.Quote(t)
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprintf("%#v", v)
	}
}

// DeepCopy copies v through its DeepCopier hook. Values without one are
// treated as immutable and returned as is.
func DeepCopy(v any) any {
	if d, ok := v.(DeepCopier); ok {
		return d.DeepCopy()
	}
	return v
}

// Call invokes fn. Besides Callable it accepts the plain func shapes
// func(context.Context, ...any) (any, error), func(any) (any, error) and
// func(any) any.
func Call(ctx context.Context, fn any, args ...any) (any, error) {
	switch f := fn.(type) {
	case Callable:
		return f.Call(ctx, args...)
	case func(context.Context, ...any) (any, error):
		return f(ctx, args...)
	case func(any) (any, error):
		return f(single(args))
	case func(any) any:
		return f(single(args)), nil
	default:
		return nil, NotCallable("call", fn)
	}
}

func single(args []any) any {
	if len(args) == 0 {
		return nil
	}
	return args[0]
}
