package op

import (
	"context"
	"maps"
)

// ClassSpec describes a class to NewClass.
type ClassSpec struct {
	Name  string
	Bases []*Class
	// Attrs are class attributes. Binders among them are bound to the
	// instance when looked up through one.
	Attrs map[string]any
	// Init runs on every freshly constructed instance.
	Init func(ctx context.Context, self *Object, args ...any) error
	// Invoke makes instances callable.
	Invoke func(ctx context.Context, self *Object, args ...any) (any, error)
	// Eq replaces identity equality between instances.
	Eq func(self, other *Object) bool
	// Repr replaces the default instance representation.
	Repr func(self *Object) string
}

// Class is a constructor for Objects. Calling a Class constructs an instance.
type Class struct {
	spec ClassSpec
}

func NewClass(spec ClassSpec) *Class {
	spec.Attrs = maps.Clone(spec.Attrs)
	return &Class{spec: spec}
}

func (c *Class) Name() string {
	return c.spec.Name
}

func (c *Class) Bases() []*Class {
	return c.spec.Bases
}

// Call constructs an instance. Instances of classes with an Invoke hook
// (own or inherited) are CallableObjects; all others are plain Objects.
func (c *Class) Call(ctx context.Context, args ...any) (any, error) {
	obj := &Object{class: c, fields: map[string]any{}}
	for _, init := range c.mro() {
		if init.spec.Init != nil {
			if err := init.spec.Init(ctx, obj, args...); err != nil {
				return nil, err
			}
			break
		}
	}
	if c.invoker() != nil {
		return &CallableObject{Object: obj}, nil
	}
	return obj, nil
}

// Attr looks up a class attribute, binding it with a nil owner.
func (c *Class) Attr(name string) (any, error) {
	v, ok := c.lookup(name)
	if !ok {
		return nil, NoAttribute(c, name)
	}
	if b, isBinder := v.(Binder); isBinder {
		return b.Bind(nil)
	}
	return v, nil
}

func (c *Class) Repr() string {
	return "<class '" + c.spec.Name + "'>"
}

func (c *Class) lookup(name string) (any, bool) {
	for _, k := range c.mro() {
		if v, ok := k.spec.Attrs[name]; ok {
			return v, true
		}
	}
	return nil, false
}

func (c *Class) invoker() func(ctx context.Context, self *Object, args ...any) (any, error) {
	for _, k := range c.mro() {
		if k.spec.Invoke != nil {
			return k.spec.Invoke
		}
	}
	return nil
}

func (c *Class) eq() func(self, other *Object) bool {
	for _, k := range c.mro() {
		if k.spec.Eq != nil {
			return k.spec.Eq
		}
	}
	return nil
}

// mro is a depth-first, left-to-right walk over the class and its bases,
// visiting each class once.
func (c *Class) mro() []*Class {
	seen := map[*Class]bool{}
	var out []*Class
	var walk func(k *Class)
	walk = func(k *Class) {
		if k == nil || seen[k] {
			return
		}
		seen[k] = true
		out = append(out, k)
		for _, b := range k.spec.Bases {
			walk(b)
		}
	}
	walk(c)
	return out
}

func (c *Class) isSubclassOf(sup *Class) bool {
	for _, k := range c.mro() {
		if k == sup {
			return true
		}
	}
	return false
}

// Object is an instance of a Class.
type Object struct {
	class  *Class
	fields map[string]any
}

func (o *Object) Class() *Class {
	return o.class
}

func (o *Object) Set(name string, v any) {
	o.fields[name] = v
}

// Attr looks up an instance field, then a class attribute bound to o.
func (o *Object) Attr(name string) (any, error) {
	if v, ok := o.fields[name]; ok {
		return v, nil
	}
	v, ok := o.class.lookup(name)
	if !ok {
		return nil, NoAttribute(o, name)
	}
	if b, isBinder := v.(Binder); isBinder {
		return b.Bind(o)
	}
	return v, nil
}

func (o *Object) Equal(other any) bool {
	p := asObject(other)
	if p == nil {
		return false
	}
	if eq := o.class.eq(); eq != nil {
		return eq(o, p)
	}
	return o == p
}

func (o *Object) Repr() string {
	for _, k := range o.class.mro() {
		if k.spec.Repr != nil {
			return k.spec.Repr(o)
		}
	}
	return "<" + o.class.spec.Name + " object>"
}

func (o *Object) DeepCopy() any {
	return o.deepCopy()
}

func (o *Object) deepCopy() *Object {
	fields := make(map[string]any, len(o.fields))
	for k, v := range o.fields {
		fields[k] = DeepCopy(v)
	}
	return &Object{class: o.class, fields: fields}
}

// CallableObject is an instance of a class with an Invoke hook.
type CallableObject struct {
	*Object
}

func (o *CallableObject) Call(ctx context.Context, args ...any) (any, error) {
	return o.class.invoker()(ctx, o.Object, args...)
}

func (o *CallableObject) DeepCopy() any {
	return &CallableObject{Object: o.deepCopy()}
}

func asObject(v any) *Object {
	switch t := v.(type) {
	case *Object:
		return t
	case *CallableObject:
		return t.Object
	default:
		return nil
	}
}

// ClassOf resolves v to a class, looking through proxies.
func ClassOf(v any) (*Class, bool) {
	for {
		switch t := v.(type) {
		case *Class:
			return t, true
		case Unwrapper:
			v = t.Unwrap()
		default:
			return nil, false
		}
	}
}

// IsInstance reports whether v, seen through proxies, is an instance of
// cls or of a member of a Union. cls may itself be a proxy.
func IsInstance(v any, cls any) bool {
	for {
		if inst, ok := v.(Instance); ok {
			return IsSubclass(inst.Class(), cls)
		}
		u, ok := v.(Unwrapper)
		if !ok {
			return false
		}
		v = u.Unwrap()
	}
}

// IsSubclass reports whether sub is sup or derives from it. Both sides may
// be proxies; sup may also be a Union.
func IsSubclass(sub any, sup any) bool {
	s, ok := ClassOf(sub)
	if !ok {
		return false
	}
	if u, isUnion := sup.(*Union); isUnion {
		for _, m := range u.members {
			if s.isSubclassOf(m) {
				return true
			}
		}
		return false
	}
	p, ok := ClassOf(sup)
	return ok && s.isSubclassOf(p)
}

// GetAttr reads a named attribute of v.
func GetAttr(v any, name string) (any, error) {
	if a, ok := v.(Attributer); ok {
		return a.Attr(name)
	}
	return nil, NoAttribute(v, name)
}
