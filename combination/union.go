// SPDX-License-Identifier: MIT
//
// File: union.go
// Role: Conjunction of obligations.

package combination

import (
	"fmt"
	"strings"
)

// Union requires all obligations of its children. Child order has no
// effect on what must be covered.
type Union struct {
	specs []Spec
}

// NewUnion combines specs in order; nil entries, including typed nil
// pointers, are skipped.
func NewUnion(specs ...Spec) *Union {
	u := &Union{specs: make([]Spec, 0, len(specs))}
	for _, s := range specs {
		if !isNil(s) {
			u.specs = append(u.specs, s)
		}
	}

	return u
}

func isNil(s Spec) bool {
	switch v := s.(type) {
	case nil:
		return true
	case *VariableWise:
		return v == nil
	case *LiteralSetsCrossProduct:
		return v == nil
	case *ExplicitList:
		return v == nil
	case *Union:
		return v == nil
	default:
		return false
	}
}

// Kind implements Spec.
func (u *Union) Kind() Kind { return KindUnion }

// Specs returns the direct children.
func (u *Union) Specs() []Spec { return append([]Spec(nil), u.specs...) }

// Len returns the number of direct children.
func (u *Union) Len() int { return len(u.specs) }

// Flatten returns the non-union descendants in depth-first order.
func (u *Union) Flatten() []Spec {
	var out []Spec
	for _, s := range u.specs {
		if child, ok := s.(*Union); ok {
			out = append(out, child.Flatten()...)
			continue
		}
		out = append(out, s)
	}

	return out
}

// IsVacuous implements Spec: true when every child is vacuous.
func (u *Union) IsVacuous() bool {
	for _, s := range u.specs {
		if !s.IsVacuous() {
			return false
		}
	}

	return true
}

// Count implements Spec: the sum over children.
func (u *Union) Count() int64 {
	var n int64
	for _, s := range u.specs {
		n = addSat(n, s.Count())
	}

	return n
}

// String implements Spec.
func (u *Union) String() string {
	parts := make([]string, len(u.specs))
	for i, s := range u.specs {
		parts[i] = s.String()
	}

	return fmt.Sprintf("Union(%s)", strings.Join(parts, ", "))
}

func (*Union) sealed() {}
