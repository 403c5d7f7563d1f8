package op

import "context"

// Keywords carries keyword arguments as the last positional argument.
type Keywords map[string]any

// SplitKeywords separates a trailing Keywords value from the positional
// arguments.
func SplitKeywords(args []any) ([]any, Keywords) {
	if len(args) == 0 {
		return args, nil
	}
	if kw, ok := args[len(args)-1].(Keywords); ok {
		return args[:len(args)-1], kw
	}
	return args, nil
}

// Function is a named free function. Equality is identity.
type Function struct {
	name string
	fn   func(ctx context.Context, args ...any) (any, error)
}

func NewFunction(name string, fn func(ctx context.Context, args ...any) (any, error)) *Function {
	return &Function{name: name, fn: fn}
}

// Lift makes a Function from a single-argument transformation.
func Lift(name string, fn func(any) any) *Function {
	return NewFunction(name, func(_ context.Context, args ...any) (any, error) {
		return fn(single(args)), nil
	})
}

// LiftErr makes a Function from a single-argument transformation that may fail.
func LiftErr(name string, fn func(any) (any, error)) *Function {
	return NewFunction(name, func(_ context.Context, args ...any) (any, error) {
		return fn(single(args))
	})
}

func (f *Function) Name() string {
	return f.name
}

func (f *Function) Call(ctx context.Context, args ...any) (any, error) {
	return f.fn(ctx, args...)
}

func (f *Function) Repr() string {
	return "<function " + f.name + ">"
}

// Method is a function defined on a class. Looking it up through an
// instance binds the instance as receiver.
type Method struct {
	name string
	fn   func(ctx context.Context, self any, args ...any) (any, error)
}

func NewMethod(name string, fn func(ctx context.Context, self any, args ...any) (any, error)) *Method {
	return &Method{name: name, fn: fn}
}

func (m *Method) Name() string {
	return m.name
}

// Call invokes the unbound method; the first argument is the receiver.
func (m *Method) Call(ctx context.Context, args ...any) (any, error) {
	if len(args) == 0 {
		return nil, MissingReceiver(m.name)
	}
	return m.fn(ctx, args[0], args[1:]...)
}

func (m *Method) Bind(owner any) (any, error) {
	if owner == nil {
		return m, nil
	}
	return &BoundMethod{method: m, self: owner}, nil
}

func (m *Method) Repr() string {
	return "<method " + m.name + ">"
}

// BoundMethod is a Method with its receiver fixed.
type BoundMethod struct {
	method *Method
	self   any
}

func (b *BoundMethod) Method() *Method {
	return b.method
}

func (b *BoundMethod) Self() any {
	return b.self
}

func (b *BoundMethod) Call(ctx context.Context, args ...any) (any, error) {
	return b.method.fn(ctx, b.self, args...)
}

func (b *BoundMethod) Equal(other any) bool {
	o, ok := other.(*BoundMethod)
	return ok && o.method == b.method && Equal(b.self, o.self)
}

func (b *BoundMethod) Repr() string {
	return "<bound method " + b.method.name + " of " + Repr(b.self) + ">"
}

func (b *BoundMethod) DeepCopy() any {
	return &BoundMethod{method: b.method, self: DeepCopy(b.self)}
}
