package op

import (
	"strings"

	"github.com/samber/lo"
)

// Union is the native combination of two or more distinct classes.
type Union struct {
	members []*Class
}

func (u *Union) Members() []*Class {
	return u.members
}

// Equal ignores member order.
func (u *Union) Equal(other any) bool {
	o, ok := other.(*Union)
	if !ok || len(o.members) != len(u.members) {
		return false
	}
	return lo.Every(o.members, u.members)
}

func (u *Union) Repr() string {
	return strings.Join(lo.Map(u.members, func(c *Class, _ int) string {
		return c.Name()
	}), " | ")
}

// Combine is the native `a | b` for classes: both operands must be raw
// classes or unions. Duplicate members collapse, and a union of a single
// class is that class.
func Combine(a, b any) (any, error) {
	left, ok := unionMembers(a)
	if !ok {
		return nil, UnsupportedOperand(a, b)
	}
	right, ok := unionMembers(b)
	if !ok {
		return nil, UnsupportedOperand(a, b)
	}
	members := lo.Uniq(append(left, right...))
	if len(members) == 1 {
		return members[0], nil
	}
	return &Union{members: members}, nil
}

func unionMembers(v any) ([]*Class, bool) {
	switch t := v.(type) {
	case *Class:
		return []*Class{t}, true
	case *Union:
		return append([]*Class(nil), t.members...), true
	default:
		return nil, false
	}
}
