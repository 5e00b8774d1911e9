// SPDX-License-Identifier: MIT
//
// File: interactions.go
// Role: Enumeration of required tuples and coverage checks of finished samples.
// Determinism:
//   - Tuples are produced in a fixed order for a fixed Spec.

package combination

import "github.com/katalvlaran/combispec/assignment"

// Interactions calls fn with every literal tuple spec requires, children of
// a Union in order. Vacuous obligations produce nothing. The set passed to
// fn is fresh and may be retained. Returns false if fn stopped early.
//
// The number of tuples is Count(); callers should check it before
// enumerating large obligations.
func Interactions(spec Spec, fn func(assignment.Set) bool) bool {
	if spec == nil || spec.IsVacuous() {
		return true
	}
	switch s := spec.(type) {
	case *VariableWise:
		return s.pool().each(s.t, func(lits []int) bool {
			return fn(assignment.NewSet(lits...))
		})
	case *LiteralSetsCrossProduct:
		b := newPool(s.b)
		return newPool(s.a).each(s.t[0], func(left []int) bool {
			head := assignment.NewSet(left...)
			return b.each(s.t[1], func(right []int) bool {
				tuple := head.Union(right)
				if !tuple.IsConsistent() {
					return true
				}
				return fn(tuple)
			})
		})
	case *ExplicitList:
		for _, a := range s.list.Sets() {
			if len(a) == 0 {
				continue
			}
			if !fn(a) {
				return false
			}
		}
	case *Union:
		for _, child := range s.specs {
			if !Interactions(child, fn) {
				return false
			}
		}
	}

	return true
}

// Covered reports whether every tuple spec requires is a subset of at least
// one row. Vacuous obligations are covered by any sample, including none.
func Covered(spec Spec, rows []assignment.Set) bool {
	return len(Missing(spec, rows, 1)) == 0
}

// Missing returns up to limit required tuples that no row contains, in
// enumeration order. limit <= 0 means no limit.
func Missing(spec Spec, rows []assignment.Set, limit int) []assignment.Set {
	index := make([]map[int]struct{}, len(rows))
	for i, row := range rows {
		index[i] = make(map[int]struct{}, len(row))
		for _, lit := range row {
			index[i][lit] = struct{}{}
		}
	}
	var out []assignment.Set
	Interactions(spec, func(tuple assignment.Set) bool {
		if !coveredBy(tuple, index) {
			out = append(out, tuple)
		}
		return limit <= 0 || len(out) < limit
	})

	return out
}

func coveredBy(tuple assignment.Set, rows []map[int]struct{}) bool {
	for _, row := range rows {
		hit := true
		for _, lit := range tuple {
			if _, ok := row[lit]; !ok {
				hit = false
				break
			}
		}
		if hit {
			return true
		}
	}

	return false
}
