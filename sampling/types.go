// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Build inputs and outputs.

package sampling

import (
	"github.com/katalvlaran/combispec/assignment"
	"github.com/katalvlaran/combispec/combination"
	"github.com/katalvlaran/combispec/valuemap"
	"github.com/katalvlaran/combispec/variables"
)

// Maps bundles the value maps of a Combined build. Nil maps are empty.
type Maps struct {
	Cardinality        *valuemap.Map
	ClusterInteraction *valuemap.Map
	Weight             *valuemap.Map
	Priority           *valuemap.Map
}

// Result is everything the external sampler and its post-processing need.
type Result struct {
	// Spec is the obligation to cover; always a *combination.Union.
	Spec combination.Spec
	// Space is the final universe: the model's variables, any names added
	// by permissive re-basing, then the artificial variables.
	Space *variables.Space
	// Model is a copy of the feature model re-based onto Space.
	Model *assignment.List
	// Artificial holds the ids to project away from sampled rows.
	Artificial assignment.Set
	// Ranks is the priority table over Space, nil unless the build read a
	// non-empty priority map.
	Ranks []valuemap.Entry
	// Iterations is passed through to the sampler unchanged.
	Iterations int
}

// ArtificialNames returns the names of r.Artificial in id order.
func (r *Result) ArtificialNames() []string {
	return assignment.Names(r.Space, r.Artificial)
}

// role indexes the per-build value map slots.
type role int

const (
	roleCardinality role = iota
	roleClusterInteraction
	roleWeight
	rolePriority
	roleCount
)

// String returns the role's map name, used in errors and log records.
func (r role) String() string {
	switch r {
	case roleCardinality:
		return "cardinality"
	case roleClusterInteraction:
		return "cluster-interaction"
	case roleWeight:
		return "weight"
	case rolePriority:
		return "priority"
	default:
		return "unknown"
	}
}
