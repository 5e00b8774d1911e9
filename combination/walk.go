// SPDX-License-Identifier: MIT
//
// File: walk.go
// Role: Traversal and consistency checking of Spec trees.

package combination

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/combispec/assignment"
	"github.com/katalvlaran/combispec/variables"
)

// ErrSkipChildren may be returned by a Walk callback on a Union to skip its
// children without stopping the walk.
var ErrSkipChildren = errors.New("combination: skip children")

// Walk visits spec and its descendants in pre-order. A non-nil error from
// fn stops the walk and is returned, except ErrSkipChildren.
func Walk(spec Spec, fn func(Spec) error) error {
	if spec == nil {
		return nil
	}
	if err := fn(spec); err != nil {
		if errors.Is(err, ErrSkipChildren) {
			return nil
		}
		return err
	}
	if u, ok := spec.(*Union); ok {
		for _, child := range u.specs {
			if err := Walk(child, fn); err != nil {
				return err
			}
		}
	}

	return nil
}

// Validate checks that every variable id spec references exists in space
// and names the same variable there as in the space the leaf was built on.
// space is typically the final, possibly extended, space handed to the
// sampler together with spec.
func Validate(spec Spec, space *variables.Space) error {
	if space == nil {
		return fmt.Errorf("Validate: %w", ErrNilSpace)
	}

	return Walk(spec, func(s Spec) error {
		var (
			own  *variables.Space
			lits assignment.Set
		)
		switch v := s.(type) {
		case *VariableWise:
			own, lits = v.space, v.vars
		case *LiteralSetsCrossProduct:
			own, lits = v.Space(), v.a.Union(v.b)
		case *ExplicitList:
			own = v.Space()
			for _, a := range v.list.Sets() {
				lits = lits.Union(a)
			}
		case *Union:
			return nil
		}
		for _, id := range lits.AbsoluteValues() {
			want, ok := own.Name(id)
			if !ok {
				return fmt.Errorf("Validate: %s: variable %d undefined in its own space: %w", s, id, ErrInconsistent)
			}
			got, ok := space.Name(id)
			if !ok || got != want {
				return fmt.Errorf("Validate: %s: variable %d (%q): %w", s, id, want, ErrInconsistent)
			}
		}

		return nil
	})
}
