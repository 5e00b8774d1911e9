// SPDX-License-Identifier: MIT
//
// File: steps.go
// Role: Build steps shared by the sampling modes.

package sampling

import (
	"fmt"

	"github.com/katalvlaran/combispec/assignment"
	"github.com/katalvlaran/combispec/combination"
	"github.com/katalvlaran/combispec/valuemap"
)

// rebase installs a copy of src, re-based onto the build space, in slot r.
// A nil src is an empty map. In permissive mode unknown names are appended
// to the build space.
func rebase(r role, src *valuemap.Map, create bool) step {
	return func(s *state) error {
		if src == nil {
			s.maps[r] = valuemap.New(s.space)
			return nil
		}
		m := src.Clone()
		if err := m.Adapt(s.space, create); err != nil {
			return fmt.Errorf("%s map: %w", r, err)
		}
		s.maps[r] = m

		return nil
	}
}

// features returns the non-artificial variables of the build space.
func (s *state) features() assignment.Set {
	return assignment.Variables(s.space).RemoveVariables(s.artificial)
}

// baseline appends VariableWise(t) over the feature variables.
func baseline(s *state) error {
	vw, err := combination.NewVariableWiseOver(s.cfg.t, s.features(), s.space)
	if err != nil {
		return fmt.Errorf("baseline: %w", err)
	}
	s.specs = append(s.specs, vw)

	return nil
}

// cardinality appends max(c > 0) artificial variables, then one
// (|cluster|, 1) cross product per cluster with c > 0 whose second pool is
// the first c artificial variables.
func cardinality(s *state) error {
	m := s.maps[roleCardinality]
	n := 0
	for _, e := range m.Entries() {
		if e.Value > n {
			n = e.Value
		}
	}

	base := s.space.Size()
	ids := make(assignment.Set, n)
	for i := 0; i < n; i++ {
		name := s.cfg.nameFn(i)
		id := s.space.Add(name)
		if id != base+i+1 {
			return fmt.Errorf("cardinality: artificial variable %q: %w", name, ErrArtificialCollision)
		}
		ids[i] = id
	}
	s.artificial = s.artificial.Union(ids)

	for _, e := range m.Entries() {
		if e.Value <= 0 {
			continue
		}
		pools := assignment.NewList(s.space, e.Key, ids[:e.Value])
		cp, err := combination.NewLiteralSetsCrossProduct(e.Key.Size(), 1, pools)
		if err != nil {
			return fmt.Errorf("cardinality: cluster %v: %w", e.Key, err)
		}
		s.specs = append(s.specs, cp)
	}

	return nil
}

// clusterInteraction appends, per cluster with weight w, a (w-1, |cluster|)
// cross product of the feature literals outside the cluster and the
// cluster itself. w < 1 yields a vacuous obligation.
func clusterInteraction(s *state) error {
	literals := assignment.Literals(s.space).RemoveVariables(s.artificial)
	for _, e := range s.maps[roleClusterInteraction].Entries() {
		outside := literals.RemoveVariables(e.Key)
		pools := assignment.NewList(s.space, outside, e.Key)
		cp, err := combination.NewLiteralSetsCrossProduct(e.Value-1, e.Key.Size(), pools)
		if err != nil {
			return fmt.Errorf("cluster-interaction: cluster %v: %w", e.Key, err)
		}
		s.specs = append(s.specs, cp)
	}

	return nil
}

// weighted appends VariableWise(k) over the variables of each key.
func weighted(s *state) error {
	for _, e := range s.maps[roleWeight].Entries() {
		vw, err := combination.NewVariableWiseOver(e.Value, e.Key, s.space)
		if err != nil {
			return fmt.Errorf("weighted: key %v: %w", e.Key, err)
		}
		s.specs = append(s.specs, vw)
	}

	return nil
}

// prioritized appends the priority keys as an explicit list and exposes
// the values as ranks. An empty map leaves the ranks nil.
func prioritized(s *state) error {
	m := s.maps[rolePriority]
	el, err := combination.NewExplicitList(m.List())
	if err != nil {
		return fmt.Errorf("prioritized: %w", err)
	}
	s.specs = append(s.specs, el)
	if m.Len() > 0 {
		s.ranks = m.Entries()
	}

	return nil
}
