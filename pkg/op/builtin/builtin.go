package builtin

import (
	"strings"
	"unicode/utf8"

	"github.com/spf13/cast"

	"github.com/ib-77/composeop/pkg/op"
	"github.com/ib-77/composeop/pkg/op/codec"
)

var (
	Trim = op.LiftErr("trim", func(v any) (any, error) {
		return mapString(v, strings.TrimSpace)
	})

	Upper = op.LiftErr("upper", func(v any) (any, error) {
		return mapString(v, strings.ToUpper)
	})

	Lower = op.LiftErr("lower", func(v any) (any, error) {
		return mapString(v, strings.ToLower)
	})

	Exclaim = op.LiftErr("exclaim", func(v any) (any, error) {
		return mapString(v, func(s string) string { return s + "!" })
	})

	// Len counts runes of strings and elements of slices.
	Len = op.LiftErr("len", func(v any) (any, error) {
		if s, ok := v.(string); ok {
			return utf8.RuneCountInString(s), nil
		}
		items, err := cast.ToSliceE(v)
		if err != nil {
			return nil, err
		}
		return len(items), nil
	})

	Double = op.LiftErr("double", func(v any) (any, error) {
		switch v.(type) {
		case float32, float64:
			f, err := cast.ToFloat64E(v)
			if err != nil {
				return nil, err
			}
			return f * 2, nil
		default:
			n, err := cast.ToIntE(v)
			if err != nil {
				return nil, err
			}
			return n * 2, nil
		}
	})

	ToInt = op.LiftErr("to_int", func(v any) (any, error) {
		if s, ok := v.(string); ok {
			v = strings.TrimSpace(s)
		}
		return cast.ToIntE(v)
	})

	ToString = op.LiftErr("to_string", func(v any) (any, error) {
		return cast.ToStringE(v)
	})

	SplitWords = op.LiftErr("split_words", func(v any) (any, error) {
		s, err := cast.ToStringE(v)
		if err != nil {
			return nil, err
		}
		fields := strings.Fields(s)
		out := make([]any, len(fields))
		for i, f := range fields {
			out[i] = f
		}
		return out, nil
	})

	JoinWords = op.LiftErr("join_words", func(v any) (any, error) {
		words, err := cast.ToStringSliceE(v)
		if err != nil {
			return nil, err
		}
		return strings.Join(words, " "), nil
	})
)

// All returns the builtins by name.
func All() map[string]*op.Function {
	return map[string]*op.Function{
		Trim.Name():       Trim,
		Upper.Name():      Upper,
		Lower.Name():      Lower,
		Exclaim.Name():    Exclaim,
		Len.Name():        Len,
		Double.Name():     Double,
		ToInt.Name():      ToInt,
		ToString.Name():   ToString,
		SplitWords.Name(): SplitWords,
		JoinWords.Name():  JoinWords,
	}
}

// Register adds every builtin to r under its own name.
func Register(r *codec.Registry) error {
	for name, fn := range All() {
		if err := r.Register(name, fn); err != nil {
			return err
		}
	}
	return nil
}

func mapString(v any, fn func(string) string) (any, error) {
	s, err := cast.ToStringE(v)
	if err != nil {
		return nil, err
	}
	return fn(s), nil
}
