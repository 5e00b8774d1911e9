// SPDX-License-Identifier: MIT
//
// File: describe.go
// Role: Name-resolved, serializable view of a Spec tree.

package combination

import (
	"github.com/katalvlaran/combispec/assignment"
)

// Description is a report-friendly rendering of a Spec with literals shown
// as variable names ("-Name" for negative literals).
type Description struct {
	Kind         string        `yaml:"kind" json:"kind"`
	T            []int         `yaml:"t,flow,omitempty" json:"t,omitempty"`
	Vacuous      bool          `yaml:"vacuous,omitempty" json:"vacuous,omitempty"`
	Interactions int64         `yaml:"interactions" json:"interactions"`
	Variables    []string      `yaml:"variables,flow,omitempty" json:"variables,omitempty"`
	Pools        [][]string    `yaml:"pools,omitempty" json:"pools,omitempty"`
	Assignments  [][]string    `yaml:"assignments,omitempty" json:"assignments,omitempty"`
	Children     []Description `yaml:"children,omitempty" json:"children,omitempty"`
}

// Describe renders spec; a nil spec renders as an empty Description.
func Describe(spec Spec) Description {
	if spec == nil {
		return Description{}
	}
	d := Description{
		Kind:         spec.Kind().String(),
		Vacuous:      spec.IsVacuous(),
		Interactions: spec.Count(),
	}
	switch s := spec.(type) {
	case *VariableWise:
		d.T = []int{s.t}
		d.Variables = assignment.Names(s.space, s.vars)
	case *LiteralSetsCrossProduct:
		d.T = []int{s.t[0], s.t[1]}
		d.Pools = [][]string{
			assignment.Names(s.Space(), s.a),
			assignment.Names(s.Space(), s.b),
		}
	case *ExplicitList:
		for _, a := range s.list.Sets() {
			d.Assignments = append(d.Assignments, assignment.Names(s.Space(), a))
		}
	case *Union:
		for _, child := range s.specs {
			d.Children = append(d.Children, Describe(child))
		}
	}

	return d
}
