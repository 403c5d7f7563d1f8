package wrap_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ib-77/composeop/pkg/op"
	"github.com/ib-77/composeop/pkg/op/engine"
	"github.com/ib-77/composeop/pkg/op/wrap"
)

func identity(name string) *op.Function {
	return op.Lift(name, func(v any) any { return v })
}

var (
	f = identity("f")
	g = identity("g")
	h = wrap.MustComposable(identity("h"))

	// C and E are plain classes.
	C = op.NewClass(op.ClassSpec{Name: "C"})
	E = op.NewClass(op.ClassSpec{Name: "E"})

	// D has a composable constructor.
	D = wrap.MustConstructor(op.NewClass(op.ClassSpec{Name: "D"}))

	// F has composable callable instances that compare equal by class.
	F = wrap.MustInstances(callableClass("F"))

	// G stacks a composable constructor over composable instances.
	G = wrap.MustConstructor(wrap.MustInstances(callableClass("G")))

	// H stacks the same two wrappers in the opposite order.
	H = wrap.MustInstances(wrap.MustConstructor(callableClass("H")))
)

func callableClass(name string) *op.Class {
	return op.NewClass(op.ClassSpec{
		Name: name,
		Invoke: func(_ context.Context, _ *op.Object, args ...any) (any, error) {
			if len(args) == 0 {
				return nil, nil
			}
			return args[0], nil
		},
		Eq: func(self, other *op.Object) bool {
			return self.Class() == other.Class()
		},
	})
}

// or is `a | b` that must succeed.
func or(t *testing.T, a, b any) any {
	t.Helper()
	v, err := wrap.Or(a, b)
	require.NoError(t, err)
	return v
}

// chainOf is `a | b | c ...` that must succeed.
func chainOf(t *testing.T, first any, rest ...any) any {
	t.Helper()
	v, err := wrap.Pipe(first, rest...)
	require.NoError(t, err)
	return v
}

// composed is Composable(Compose(fns...)).
func composed(t *testing.T, fns ...any) *wrap.Composable {
	t.Helper()
	comp, err := engine.Compose(fns...)
	require.NoError(t, err)
	w, err := wrap.NewComposable(comp)
	require.NoError(t, err)
	return w
}

func composable(t *testing.T, v any) *wrap.Composable {
	t.Helper()
	w, err := wrap.NewComposable(v)
	require.NoError(t, err)
	return w
}

// union is the native combination of the classes behind the operands.
func union(t *testing.T, classes ...any) any {
	t.Helper()
	raw := make([]any, len(classes))
	for i, c := range classes {
		cls, ok := op.ClassOf(c)
		require.True(t, ok, "not a class: %s", op.Repr(c))
		raw[i] = cls
	}
	v := raw[0]
	for _, next := range raw[1:] {
		var err error
		v, err = op.Combine(v, next)
		require.NoError(t, err)
	}
	return v
}

func newInstance(t *testing.T, cls any, args ...any) any {
	t.Helper()
	v, err := op.Call(context.Background(), cls, args...)
	require.NoError(t, err)
	return v
}

func requireEqual(t *testing.T, want, got any) {
	t.Helper()
	require.True(t, op.Equal(want, got), "want %s, got %s", op.Repr(want), op.Repr(got))
}
