package codec

import (
	"slices"
	"sync"

	"github.com/code19m/errx"
	"github.com/samber/lo"

	"github.com/ib-77/composeop/pkg/op"
)

const (
	CodeAlreadyRegistered = "ALREADY_REGISTERED"
	CodeNotRegistered     = "NOT_REGISTERED"
	CodeUnencodable       = "UNENCODABLE"
	CodeMalformed         = "MALFORMED"
)

// Registry names the functions and classes a pipeline may refer to. Values
// are serialized by name, so they must be comparable.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]any
}

func NewRegistry() *Registry {
	return &Registry{entries: map[string]any{}}
}

func (r *Registry) Register(name string, v any) error {
	if op.IsNil(v) {
		return errx.New("[codec.registry]: nil value",
			errx.WithType(errx.T_Validation),
			errx.WithCode(CodeUnencodable),
			errx.WithDetails(errx.D{"name": name}),
		)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[name]; exists {
		return errx.New("[codec.registry]: name already registered",
			errx.WithType(errx.T_Conflict),
			errx.WithCode(CodeAlreadyRegistered),
			errx.WithDetails(errx.D{"name": name}),
		)
	}
	r.entries[name] = v
	return nil
}

func (r *Registry) MustRegister(name string, v any) {
	if err := r.Register(name, v); err != nil {
		panic(err)
	}
}

func (r *Registry) Lookup(name string) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.entries[name]
	return v, ok
}

// Resolve is Lookup returning a NOT_REGISTERED error for unknown names.
func (r *Registry) Resolve(name string) (any, error) {
	v, ok := r.Lookup(name)
	if !ok {
		return nil, errx.New("[codec.registry]: name not registered",
			errx.WithType(errx.T_NotFound),
			errx.WithCode(CodeNotRegistered),
			errx.WithDetails(errx.D{"name": name}),
		)
	}
	return v, nil
}

// NameOf finds the name v was registered under.
func (r *Registry) NameOf(v any) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return lo.FindKeyBy(r.entries, func(_ string, entry any) bool {
		return op.Same(entry, v)
	})
}

// Names lists registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := lo.Keys(r.entries)
	slices.Sort(names)
	return names
}
