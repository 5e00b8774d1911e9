// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Build orchestrator and the public sampling mode builders.
//
// A build is a sequence of steps over one private state: re-base the value
// maps onto a clone of the model's space, append obligations, and finally
// validate the union against the final space. Steps run strictly in order;
// the first error aborts the build and nothing of the inputs is modified.

package sampling

import (
	"fmt"

	"github.com/katalvlaran/combispec/assignment"
	"github.com/katalvlaran/combispec/combination"
	"github.com/katalvlaran/combispec/valuemap"
	"github.com/katalvlaran/combispec/variables"
)

// state is owned by exactly one build.
type state struct {
	cfg        config
	space      *variables.Space
	maps       [roleCount]*valuemap.Map
	specs      []combination.Spec
	artificial assignment.Set
	ranks      []valuemap.Entry
}

// step mutates the build state; it must not touch the caller's inputs.
type step func(s *state) error

// run executes steps over a clone of model's space and assembles the Result.
func run(method string, model *assignment.List, cfg config, steps ...step) (*Result, error) {
	if model == nil {
		return nil, fmt.Errorf("%s: %w", method, ErrNilModel)
	}
	if err := model.Validate(); err != nil {
		return nil, fmt.Errorf("%s: feature model: %w", method, err)
	}

	s := &state{cfg: cfg, space: model.Space().Clone(), artificial: assignment.Set{}}
	for _, st := range steps {
		if err := st(s); err != nil {
			return nil, fmt.Errorf("%s: %w", method, err)
		}
	}

	spec := combination.NewUnion(s.specs...)
	if err := combination.Validate(spec, s.space); err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	rebased := model.Clone()
	if err := rebased.Adapt(s.space, false); err != nil {
		return nil, fmt.Errorf("%s: feature model: %w", method, err)
	}

	cfg.logger.Debug("combination specification built",
		"mode", method,
		"variables", s.space.Size(),
		"artificial", len(s.artificial),
		"obligations", spec.Len(),
		"interactions", spec.Count(),
		"vacuous", spec.IsVacuous(),
	)

	return &Result{
		Spec:       spec,
		Space:      s.space,
		Model:      rebased,
		Artificial: s.artificial,
		Ranks:      s.ranks,
		Iterations: cfg.iterations,
	}, nil
}

// Cardinality builds the obligation that every cluster key of m appears
// in at least as many rows as its value, plus a baseline t-wise obligation
// over the feature variables. m is re-based strictly: a key naming a
// variable outside the model fails with assignment.ErrAdaptation.
func Cardinality(model *assignment.List, m *valuemap.Map, opts ...Option) (*Result, error) {
	return run(MethodCardinality, model, newConfig(opts...),
		rebase(roleCardinality, m, false),
		cardinality,
		baseline,
	)
}

// ClusterInteraction builds, per cluster key of m with weight w, the
// obligation that the whole cluster meets every (w-1)-combination of
// literals outside it, plus a baseline t-wise obligation. m is re-based
// strictly.
func ClusterInteraction(model *assignment.List, m *valuemap.Map, opts ...Option) (*Result, error) {
	return run(MethodClusterInteraction, model, newConfig(opts...),
		rebase(roleClusterInteraction, m, false),
		clusterInteraction,
		baseline,
	)
}

// Weighted builds one k-wise obligation per key of m over the key's
// variables, k being the key's value. No baseline is added. m is re-based
// strictly.
func Weighted(model *assignment.List, m *valuemap.Map, opts ...Option) (*Result, error) {
	return run(MethodWeighted, model, newConfig(opts...),
		rebase(roleWeight, m, false),
		weighted,
	)
}

// Prioritized requires every key of m verbatim in some row, plus a
// baseline t-wise obligation. The values are returned as Result.Ranks for
// ranking the finished sample. m is re-based strictly.
func Prioritized(model *assignment.List, m *valuemap.Map, opts ...Option) (*Result, error) {
	return run(MethodPrioritized, model, newConfig(opts...),
		rebase(rolePriority, m, false),
		prioritized,
		baseline,
	)
}

// Combined re-bases every map of maps permissively, so names unknown to
// the model extend the space instead of failing, and unions one baseline
// with the cluster-interaction, priority, weight and cardinality
// obligations. Artificial variables are appended last, after every name
// the maps introduced.
func Combined(model *assignment.List, maps Maps, opts ...Option) (*Result, error) {
	return run(MethodCombined, model, newConfig(opts...),
		rebase(roleClusterInteraction, maps.ClusterInteraction, true),
		rebase(rolePriority, maps.Priority, true),
		rebase(roleWeight, maps.Weight, true),
		rebase(roleCardinality, maps.Cardinality, true),
		baseline,
		clusterInteraction,
		prioritized,
		weighted,
		cardinality,
	)
}
