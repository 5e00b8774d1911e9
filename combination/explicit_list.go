// SPDX-License-Identifier: MIT
//
// File: explicit_list.go
// Role: Verbatim list of assignments to cover.

package combination

import (
	"fmt"

	"github.com/katalvlaran/combispec/assignment"
	"github.com/katalvlaran/combispec/variables"
)

// ExplicitList requires each of its assignments, as a whole, to be a subset
// of some row. Assignments are not expanded into sub-combinations.
type ExplicitList struct {
	list *assignment.List
}

// NewExplicitList builds the obligation from a copy of list.
func NewExplicitList(list *assignment.List) (*ExplicitList, error) {
	if list == nil {
		return nil, fmt.Errorf("NewExplicitList: %w", ErrNilList)
	}
	if err := list.Validate(); err != nil {
		return nil, fmt.Errorf("NewExplicitList: %w: %w", ErrInconsistent, err)
	}

	return &ExplicitList{list: list.Clone()}, nil
}

// Kind implements Spec.
func (e *ExplicitList) Kind() Kind { return KindExplicitList }

// Assignments returns copies of the listed assignments.
func (e *ExplicitList) Assignments() []assignment.Set { return e.list.Sets() }

// Space returns the space the assignments belong to.
func (e *ExplicitList) Space() *variables.Space { return e.list.Space() }

// IsVacuous implements Spec: true when no assignment has a literal.
func (e *ExplicitList) IsVacuous() bool { return e.Count() == 0 }

// Count implements Spec: the number of non-empty assignments.
func (e *ExplicitList) Count() int64 {
	var n int64
	for _, s := range e.list.Sets() {
		if len(s) > 0 {
			n++
		}
	}

	return n
}

// String implements Spec.
func (e *ExplicitList) String() string {
	return fmt.Sprintf("ExplicitList(assignments=%d)", e.list.Len())
}

func (*ExplicitList) sealed() {}
