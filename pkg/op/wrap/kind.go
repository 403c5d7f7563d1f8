package wrap

import (
	"github.com/code19m/errx"

	"github.com/ib-77/composeop/pkg/op"
)

const CodeUnknownKind = "UNKNOWN_KIND"

// Kind identifies a wrapper variant.
type Kind uint8

const (
	KindComposable Kind = iota + 1
	KindConstructor
	KindInstances
)

var kindNames = map[Kind]string{
	KindComposable:  "Composable",
	KindConstructor: "ComposableConstructor",
	KindInstances:   "ComposableInstances",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// ParseKind is the inverse of Kind.String.
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return k, true
		}
	}
	return 0, false
}

// Wrapper is what the three wrapper variants have in common.
type Wrapper interface {
	op.Callable
	op.Piper
	op.Unwrapper
	op.Equaler
	op.Reprer
	op.DeepCopier
	Kind() Kind
	// Reduce returns what New needs to rebuild the wrapper.
	Reduce() (Kind, any)
}

var (
	_ Wrapper = (*Composable)(nil)
	_ Wrapper = (*Constructor)(nil)
	_ Wrapper = (*Instances)(nil)
)

// New constructs a wrapper of the given kind around v. It is the single
// reconstruction path used for copying and deserialization.
func New(kind Kind, v any) (Wrapper, error) {
	var (
		w   Wrapper
		err error
	)
	switch kind {
	case KindComposable:
		w, err = asWrapper(NewComposable(v))
	case KindConstructor:
		w, err = asWrapper(NewConstructor(v))
	case KindInstances:
		w, err = asWrapper(NewInstances(v))
	default:
		err = errx.New("[wrap]: unknown wrapper kind",
			errx.WithType(errx.T_Validation),
			errx.WithCode(CodeUnknownKind),
			errx.WithDetails(errx.D{"kind": int(kind)}),
		)
	}
	if err != nil {
		return nil, err
	}
	return w, nil
}

func asWrapper[W Wrapper](w W, err error) (Wrapper, error) {
	if err != nil {
		return nil, err
	}
	return w, nil
}

// rebuild is New for values already known to be valid for kind, such as
// deep copies of a wrapper's own underlying object.
func rebuild(kind Kind, v any) Wrapper {
	w, err := New(kind, v)
	if err != nil {
		panic(err)
	}
	return w
}

// Copy rebuilds w around the same underlying object.
func Copy(w Wrapper) (Wrapper, error) {
	return New(w.Reduce())
}

// DeepCopy rebuilds w around a deep copy of its underlying object.
func DeepCopy(w Wrapper) (Wrapper, error) {
	kind, v := w.Reduce()
	return New(kind, op.DeepCopy(v))
}
