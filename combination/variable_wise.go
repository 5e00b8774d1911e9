// SPDX-License-Identifier: MIT
//
// File: variable_wise.go
// Role: t-wise coverage over a set of variables.

package combination

import (
	"fmt"

	"github.com/katalvlaran/combispec/assignment"
	"github.com/katalvlaran/combispec/variables"
)

// VariableWise requires every combination of t variables from its set to
// appear in every sign pattern.
type VariableWise struct {
	t     int
	vars  assignment.Set
	space *variables.Space
}

// NewVariableWise covers all variables space holds at the time of the call.
// Variables added to space later are not part of the obligation.
func NewVariableWise(t int, space *variables.Space) (*VariableWise, error) {
	if space == nil {
		return nil, fmt.Errorf("NewVariableWise: %w", ErrNilSpace)
	}

	return &VariableWise{t: t, vars: assignment.Variables(space), space: space}, nil
}

// NewVariableWiseOver covers the variables of vars; signs are ignored and
// duplicates dropped. Every variable must belong to space.
func NewVariableWiseOver(t int, vars assignment.Set, space *variables.Space) (*VariableWise, error) {
	if space == nil {
		return nil, fmt.Errorf("NewVariableWiseOver: %w", ErrNilSpace)
	}
	abs := vars.AbsoluteValues()
	for _, v := range abs {
		if !space.Has(v) {
			return nil, fmt.Errorf("NewVariableWiseOver: variable %d: %w", v, ErrInconsistent)
		}
	}

	return &VariableWise{t: t, vars: abs, space: space}, nil
}

// Kind implements Spec.
func (v *VariableWise) Kind() Kind { return KindVariableWise }

// T returns the arity.
func (v *VariableWise) T() int { return v.t }

// Variables returns a copy of the covered variables.
func (v *VariableWise) Variables() assignment.Set { return v.vars.Clone() }

// Space returns the space the variables belong to.
func (v *VariableWise) Space() *variables.Space { return v.space }

// IsVacuous implements Spec: t <= 0 or more than the available variables.
func (v *VariableWise) IsVacuous() bool { return v.t <= 0 || v.t > len(v.vars) }

// Count implements Spec: C(n, t)·2^t.
func (v *VariableWise) Count() int64 {
	if v.IsVacuous() {
		return 0
	}

	return v.pool().count(v.t)
}

func (v *VariableWise) pool() pool {
	return newPool(v.vars.Union(v.vars.Inverse()))
}

// String implements Spec.
func (v *VariableWise) String() string {
	return fmt.Sprintf("VariableWise(t=%d, variables=%d)", v.t, len(v.vars))
}

func (*VariableWise) sealed() {}
