package engine

import (
	"context"
	"strings"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/ib-77/composeop/pkg/op"
	"github.com/ib-77/composeop/pkg/op/core"
)

// Composition is a sequence of callables run right to left:
// Compose(f, g, h)(x) is f(g(h(x))).
type Composition struct {
	functions []any
}

// Compose records fns for sequencing; nothing is invoked. A composition
// among fns, including one behind proxies, is flattened into the new one.
func Compose(fns ...any) (*Composition, error) {
	if len(fns) == 0 {
		return nil, op.NoFunctions("compose")
	}

	functions := make([]any, 0, len(fns))
	for _, fn := range fns {
		if !op.IsCallable(fn) {
			return nil, op.NotCallable("compose", fn)
		}
		if inner, ok := asComposition(fn); ok {
			functions = append(functions, inner.functions...)
			continue
		}
		functions = append(functions, fn)
	}

	return &Composition{functions: functions}, nil
}

func asComposition(v any) (*Composition, bool) {
	for {
		switch t := v.(type) {
		case *Composition:
			return t, true
		case op.Unwrapper:
			v = t.Unwrap()
		default:
			return nil, false
		}
	}
}

// Functions returns the sequenced callables in composition order.
func (c *Composition) Functions() []any {
	return append([]any(nil), c.functions...)
}

// Call runs the pipeline. If a stage returns an op.Pending, the remaining
// stages run on a core.Future which is returned in place of the result.
func (c *Composition) Call(ctx context.Context, args ...any) (any, error) {
	last := len(c.functions) - 1

	result, err := op.Call(ctx, c.functions[last], args...)
	if err != nil {
		return nil, err
	}

	for i := last - 1; i >= 0; i-- {
		if _, pending := result.(op.Pending); pending {
			core.Logger(ctx).Debug("composition suspended",
				zap.Int("stage", last-i),
				zap.Int("stages", len(c.functions)))

			if core.IsInlineAwaitEnabled(ctx, false) {
				return c.finish(ctx, result, i)
			}
			awaiting := result
			next := i
			return core.Go(ctx, func(ctx context.Context) (any, error) {
				return c.finish(ctx, awaiting, next)
			}), nil
		}

		result, err = op.Call(ctx, c.functions[i], result)
		if err != nil {
			return nil, err
		}
	}

	return result, nil
}

// finish awaits result, feeds it through functions[next..0] awaiting each
// pending value on the way, and awaits the final one.
func (c *Composition) finish(ctx context.Context, result any, next int) (any, error) {
	var err error
	for i := next; i >= 0; i-- {
		if result, err = await(ctx, result); err != nil {
			return nil, err
		}
		if result, err = op.Call(ctx, c.functions[i], result); err != nil {
			return nil, err
		}
	}
	return await(ctx, result)
}

func await(ctx context.Context, v any) (any, error) {
	if p, ok := v.(op.Pending); ok {
		return p.Await(ctx)
	}
	return v, nil
}

// Equal compares the sequenced callables element-wise.
func (c *Composition) Equal(other any) bool {
	o, ok := other.(*Composition)
	if !ok || len(o.functions) != len(c.functions) {
		return false
	}
	for i := range c.functions {
		if !op.Equal(c.functions[i], o.functions[i]) {
			return false
		}
	}
	return true
}

func (c *Composition) Repr() string {
	return "compose(" + strings.Join(lo.Map(c.functions, func(fn any, _ int) string {
		return op.Repr(fn)
	}), ", ") + ")"
}

func (c *Composition) String() string {
	return c.Repr()
}

func (c *Composition) DeepCopy() any {
	return &Composition{functions: lo.Map(c.functions, func(fn any, _ int) any {
		return op.DeepCopy(fn)
	})}
}
