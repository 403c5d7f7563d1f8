package codec

import (
	"github.com/code19m/errx"
	jsoniter "github.com/json-iterator/go"

	"github.com/ib-77/composeop/pkg/op"
	"github.com/ib-77/composeop/pkg/op/engine"
	"github.com/ib-77/composeop/pkg/op/wrap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// node is the encoded form of one value. Exactly one field is set.
type node struct {
	Ref     string              `json:"ref,omitempty"`
	Kind    string              `json:"kind,omitempty"`
	Wrapped *node               `json:"wrapped,omitempty"`
	Compose []*node             `json:"compose,omitempty"`
	Value   jsoniter.RawMessage `json:"value,omitempty"`
}

// Marshal encodes v. Wrappers are reduced to their kind and underlying
// object, compositions to their functions, registered values to their name.
func (r *Registry) Marshal(v any) ([]byte, error) {
	n, err := r.encode(v)
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(n)
	if err != nil {
		return nil, errx.Wrap(err)
	}
	return data, nil
}

// Unmarshal rebuilds a value encoded by Marshal. Wrappers are reconstructed
// through wrap.New, compositions through engine.Compose.
func (r *Registry) Unmarshal(data []byte) (any, error) {
	var n node
	if err := json.Unmarshal(data, &n); err != nil {
		return nil, errx.Wrap(err, errx.WithCode(CodeMalformed))
	}
	return r.decode(&n)
}

func (r *Registry) encode(v any) (*node, error) {
	if name, ok := r.NameOf(v); ok {
		return &node{Ref: name}, nil
	}

	switch t := v.(type) {
	case wrap.Wrapper:
		kind, underlying := t.Reduce()
		inner, err := r.encode(underlying)
		if err != nil {
			return nil, err
		}
		return &node{Kind: kind.String(), Wrapped: inner}, nil

	case *engine.Composition:
		fns := t.Functions()
		nodes := make([]*node, 0, len(fns))
		for _, fn := range fns {
			inner, err := r.encode(fn)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, inner)
		}
		return &node{Compose: nodes}, nil

	case nil, string, bool, int, int32, int64, float32, float64:
		raw, err := json.Marshal(t)
		if err != nil {
			return nil, errx.Wrap(err)
		}
		return &node{Value: raw}, nil

	default:
		return nil, errx.New("[codec]: value is neither registered nor encodable",
			errx.WithType(errx.T_Validation),
			errx.WithCode(CodeUnencodable),
			errx.WithDetails(errx.D{"value": op.Repr(v)}),
		)
	}
}

func (r *Registry) decode(n *node) (any, error) {
	switch {
	case n.Ref != "":
		return r.Resolve(n.Ref)

	case n.Kind != "":
		kind, ok := wrap.ParseKind(n.Kind)
		if !ok {
			return nil, errx.New("[codec]: unknown wrapper kind",
				errx.WithType(errx.T_Validation),
				errx.WithCode(wrap.CodeUnknownKind),
				errx.WithDetails(errx.D{"kind": n.Kind}),
			)
		}
		if n.Wrapped == nil {
			return nil, malformed("wrapper without wrapped value")
		}
		underlying, err := r.decode(n.Wrapped)
		if err != nil {
			return nil, err
		}
		w, err := wrap.New(kind, underlying)
		if err != nil {
			return nil, err
		}
		return w, nil

	case len(n.Compose) > 0:
		fns := make([]any, 0, len(n.Compose))
		for _, inner := range n.Compose {
			fn, err := r.decode(inner)
			if err != nil {
				return nil, err
			}
			fns = append(fns, fn)
		}
		comp, err := engine.Compose(fns...)
		if err != nil {
			return nil, err
		}
		return comp, nil

	case len(n.Value) > 0:
		var v any
		if err := json.Unmarshal(n.Value, &v); err != nil {
			return nil, errx.Wrap(err, errx.WithCode(CodeMalformed))
		}
		return v, nil

	default:
		return nil, malformed("empty node")
	}
}

func malformed(reason string) error {
	return errx.New("[codec]: malformed document",
		errx.WithType(errx.T_Validation),
		errx.WithCode(CodeMalformed),
		errx.WithDetails(errx.D{"reason": reason}),
	)
}
