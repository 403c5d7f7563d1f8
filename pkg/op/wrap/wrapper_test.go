package wrap_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/composeop/pkg/op"
	"github.com/ib-77/composeop/pkg/op/wrap"
)

func TestNew_RejectsWrongOperands(t *testing.T) {
	t.Parallel()

	_, err := wrap.NewComposable(5)
	assert.True(t, op.HasCode(err, op.CodeNotCallable))

	var unset func(any) any
	for _, v := range []any{(*op.Function)(nil), unset, (*wrap.Composable)(nil)} {
		_, err = wrap.NewComposable(v)
		assert.True(t, op.HasCode(err, op.CodeNotCallable), op.Repr(v))
	}
	_, err = wrap.NewConstructor((*op.Class)(nil))
	assert.True(t, op.HasCode(err, op.CodeNotAClass))
	_, err = wrap.NewConstructor((*wrap.Constructor)(nil))
	assert.True(t, op.HasCode(err, op.CodeNotAClass))
	_, err = wrap.NewInstances((*wrap.Instances)(nil))
	assert.True(t, op.HasCode(err, op.CodeNotAClass))

	for _, v := range []any{42, f, h, "C"} {
		_, err = wrap.NewConstructor(v)
		assert.True(t, op.HasCode(err, op.CodeNotAClass), op.Repr(v))

		_, err = wrap.NewInstances(v)
		assert.True(t, op.HasCode(err, op.CodeNotAClass), op.Repr(v))
	}

	_, err = wrap.New(wrap.Kind(9), f)
	assert.True(t, op.HasCode(err, wrap.CodeUnknownKind))

	assert.Panics(t, func() { wrap.MustConstructor(f) })
}

func TestNew_UnwrapsOneLayer(t *testing.T) {
	t.Parallel()

	assert.Same(t, h.Unwrap(), composable(t, h).Unwrap())
	assert.Same(t, D.Unwrap(), composable(t, D).Unwrap())
	assert.Same(t, C, wrap.MustConstructor(composable(t, C)).Unwrap())
	assert.Same(t, D.Unwrap(), wrap.MustConstructor(D).Unwrap())
	assert.Same(t, F.Unwrap(), wrap.MustInstances(F).Unwrap())

	// instances are only unwrapped by their own kind
	assert.Same(t, F, composable(t, F).Unwrap())
	assert.Same(t, G, wrap.MustInstances(G).Unwrap())
}

func TestNew_ByKind(t *testing.T) {
	t.Parallel()

	for _, w := range []wrap.Wrapper{h, D, F, G, H} {
		kind, v := w.Reduce()
		assert.Equal(t, w.Kind(), kind)

		rebuilt, err := wrap.New(kind, v)
		require.NoError(t, err)
		requireEqual(t, w, rebuilt)
	}
}

func TestKind_Names(t *testing.T) {
	t.Parallel()

	for _, k := range []wrap.Kind{wrap.KindComposable, wrap.KindConstructor, wrap.KindInstances} {
		parsed, ok := wrap.ParseKind(k.String())
		require.True(t, ok)
		assert.Equal(t, k, parsed)
	}

	_, ok := wrap.ParseKind("Unknown")
	assert.False(t, ok)
}

func TestComposable_CallableResultsStayComposable(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	returnF := composable(t, op.Lift("return_f", func(any) any { return f }))

	got, err := returnF.Call(ctx)
	require.NoError(t, err)
	require.IsType(t, &wrap.Composable{}, got)
	assert.Same(t, f, got.(*wrap.Composable).Unwrap())

	got, err = composable(t, f).Call(ctx, "whatever")
	require.NoError(t, err)
	assert.Equal(t, "whatever", got)
}

func TestComposable_ErrorsPassThrough(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	failing := composable(t, op.LiftErr("failing", func(any) (any, error) { return nil, boom }))

	_, err := failing.Call(context.Background(), 1)
	assert.Same(t, boom, err)

	p, err := wrap.Pipe(h, failing, g)
	require.NoError(t, err)
	_, err = op.Call(context.Background(), p, 1)
	assert.Same(t, boom, err)
}

func TestComposable_Bind(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	greet := wrap.MustComposable(op.NewMethod("greet", func(ctx context.Context, self any, _ ...any) (any, error) {
		name, err := op.GetAttr(self, "name")
		if err != nil {
			return nil, err
		}
		return "hello " + name.(string), nil
	}))
	greeter := op.NewClass(op.ClassSpec{
		Name:  "Greeter",
		Attrs: map[string]any{"greet": greet, "plain": h},
		Init: func(_ context.Context, self *op.Object, args ...any) error {
			self.Set("name", args[0])
			return nil
		},
	})
	ada := newInstance(t, greeter, "ada")

	bound, err := op.GetAttr(ada, "greet")
	require.NoError(t, err)
	require.IsType(t, &wrap.Composable{}, bound)
	assert.IsType(t, &op.BoundMethod{}, bound.(*wrap.Composable).Unwrap())

	got, err := op.Call(ctx, bound)
	require.NoError(t, err)
	assert.Equal(t, "hello ada", got)

	// bound methods keep composing
	loud, err := wrap.Or(bound, op.Lift("upper", func(v any) any { return v.(string) + "!" }))
	require.NoError(t, err)
	got, err = op.Call(ctx, loud)
	require.NoError(t, err)
	assert.Equal(t, "hello ada!", got)

	// looked up through the class the wrapper comes back as is
	unbound, err := op.GetAttr(greeter, "greet")
	require.NoError(t, err)
	assert.Same(t, greet, unbound)

	_, err = op.Call(ctx, unbound)
	assert.True(t, op.HasCode(err, op.CodeMissingReceiver))

	got, err = op.Call(ctx, unbound, ada)
	require.NoError(t, err)
	assert.Equal(t, "hello ada", got)

	// wrapped values that do not bind are left alone
	plain, err := op.GetAttr(ada, "plain")
	require.NoError(t, err)
	assert.Same(t, h, plain)
}

func TestConstructor_Call(t *testing.T) {
	t.Parallel()

	d := newInstance(t, D)
	require.IsType(t, &op.Object{}, d)
	assert.True(t, D.IsInstance(d))
	assert.True(t, op.IsInstance(d, D))
	assert.False(t, op.IsInstance(d, C))

	// a union of classes answers for all its members
	assert.True(t, op.IsInstance(d, or(t, D, C)))
	assert.True(t, op.IsInstance(newInstance(t, C), or(t, D, C)))
}

func TestConstructor_IsSubclass(t *testing.T) {
	t.Parallel()

	sub := op.NewClass(op.ClassSpec{Name: "SubD", Bases: []*op.Class{mustClass(t, D)}})

	assert.True(t, D.IsSubclass(sub))
	assert.True(t, D.IsSubclass(wrap.MustConstructor(sub)))
	assert.True(t, D.IsSubclass(D))
	assert.False(t, D.IsSubclass(C))
	assert.True(t, op.IsInstance(newInstance(t, sub), D))
}

func TestInstances_Call(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	inst := newInstance(t, F)
	require.IsType(t, &wrap.Composable{}, inst)
	require.IsType(t, &op.CallableObject{}, inst.(*wrap.Composable).Unwrap())

	assert.True(t, F.IsInstance(inst))
	assert.True(t, op.IsInstance(inst, F))
	assert.True(t, F.IsSubclass(F))

	got, err := op.Call(ctx, inst, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, got)

	// instances of a class without Invoke cannot be composed
	_, err = wrap.MustInstances(C).Call(ctx)
	assert.True(t, op.HasCode(err, op.CodeNotCallable))
}

func TestInstances_InitErrors(t *testing.T) {
	t.Parallel()

	boom := errors.New("bad args")
	strict := wrap.MustInstances(op.NewClass(op.ClassSpec{
		Name: "Strict",
		Init: func(context.Context, *op.Object, ...any) error { return boom },
		Invoke: func(context.Context, *op.Object, ...any) (any, error) {
			return nil, nil
		},
	}))

	_, err := strict.Call(context.Background())
	assert.Same(t, boom, err)
}

func TestAttr_Forwards(t *testing.T) {
	t.Parallel()

	versioned := op.NewClass(op.ClassSpec{Name: "Versioned", Attrs: map[string]any{"version": 2}})

	for _, w := range []wrap.Wrapper{
		wrap.MustComposable(versioned),
		wrap.MustConstructor(versioned),
		wrap.MustInstances(versioned),
	} {
		v, err := op.GetAttr(w, "version")
		require.NoError(t, err)
		assert.Equal(t, 2, v)

		_, err = op.GetAttr(w, "missing")
		assert.True(t, op.HasCode(err, op.CodeNoAttribute))
	}
}

func twice(v any) any { return v.(int) * 2 }

func TestEqual(t *testing.T) {
	t.Parallel()

	assert.True(t, op.Equal(composable(t, f), composable(t, f)))
	assert.False(t, op.Equal(composable(t, f), composable(t, g)))
	assert.False(t, op.Equal(composable(t, C), wrap.MustConstructor(C)))
	assert.False(t, op.Equal(wrap.MustConstructor(C), wrap.MustInstances(C)))
	assert.False(t, op.Equal(composable(t, f), f))

	// plain funcs are the same object as themselves
	assert.True(t, op.Equal(composable(t, twice), composable(t, twice)))
	assert.True(t, op.Equal(composed(t, twice, f), composed(t, twice, f)))
	assert.True(t, op.Equal(composed(t, composable(t, twice), f), or(t, f, composable(t, twice))))
	assert.False(t, op.Equal(composable(t, twice), composable(t, f)))

	// equality of the wrapped objects decides
	assert.True(t, op.Equal(newInstance(t, F), newInstance(t, F)))
	assert.False(t, op.Equal(newInstance(t, F), newInstance(t, G)))
}

func TestRepr(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Composable(<function h>)", h.Repr())
	assert.Equal(t, "ComposableConstructor(<class 'D'>)", D.Repr())
	assert.Equal(t, "ComposableInstances(<class 'F'>)", F.Repr())
	assert.Equal(t, "ComposableConstructor(ComposableInstances(<class 'G'>))", G.String())
	assert.Equal(t, "Composable(compose(<function f>, Composable(<function h>)))", fmt.Sprint(or(t, h, f)))
}

func TestCopy(t *testing.T) {
	t.Parallel()

	c := h.Copy()
	assert.NotSame(t, h, c)
	assert.Same(t, h.Unwrap(), c.Unwrap())
	requireEqual(t, h, c)

	for _, w := range []wrap.Wrapper{h, D, F, G, H} {
		cp, err := wrap.Copy(w)
		require.NoError(t, err)
		requireEqual(t, w, cp)

		deep, err := wrap.DeepCopy(w)
		require.NoError(t, err)
		requireEqual(t, w, deep)
	}
}

func TestDeepCopy_CopiesTheWrappedObject(t *testing.T) {
	t.Parallel()

	inst := newInstance(t, F).(*wrap.Composable)
	deep := inst.DeepCopy().(*wrap.Composable)

	assert.NotSame(t, inst.Unwrap(), deep.Unwrap())
	requireEqual(t, inst, deep)

	// without an Eq hook a copied instance is a different object
	counter := op.NewClass(op.ClassSpec{
		Name: "Counter",
		Invoke: func(_ context.Context, self *op.Object, _ ...any) (any, error) {
			return self.Attr("n")
		},
	})
	obj := newInstance(t, counter).(*op.CallableObject)
	obj.Set("n", 1)

	c := composable(t, obj)
	dc := c.DeepCopy().(*wrap.Composable)
	assert.False(t, op.Equal(c, dc))

	obj.Set("n", 2)
	got, err := op.Call(context.Background(), dc)
	require.NoError(t, err)
	assert.Equal(t, 1, got)
}
