// SPDX-License-Identifier: MIT
//
// File: set.go
// Role: Set, an ordered set of literals, and its algebra.
// Determinism:
//   - Every operation preserves the left-to-right order of its inputs.

package assignment

import (
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/combispec/variables"
)

// Set is an ordered set of literals. Order is kept for presentation and
// serialization; identity (Key, Equal) ignores it.
type Set []int

// NewSet copies literals into a Set, dropping exact duplicates.
func NewSet(literals ...int) Set {
	out := make(Set, 0, len(literals))
	seen := make(map[int]struct{}, len(literals))
	for _, lit := range literals {
		if _, dup := seen[lit]; dup {
			continue
		}
		seen[lit] = struct{}{}
		out = append(out, lit)
	}

	return out
}

// Variables returns the positive ids 1..N of space as a Set.
func Variables(space *variables.Space) Set {
	return Set(space.IDs())
}

// Literals returns every literal of space: all positive ids followed by all
// negative ids.
func Literals(space *variables.Space) Set {
	vars := Variables(space)

	return vars.Union(vars.Inverse())
}

// Size returns the number of literals in s.
func (s Set) Size() int { return len(s) }

// Clone returns a copy of s that shares no memory with it.
func (s Set) Clone() Set {
	if s == nil {
		return nil
	}
	out := make(Set, len(s))
	copy(out, s)

	return out
}

// Contains reports whether lit occurs in s with the same sign.
func (s Set) Contains(lit int) bool {
	for _, l := range s {
		if l == lit {
			return true
		}
	}

	return false
}

// ContainsVariable reports whether variable v occurs in s with either sign.
func (s Set) ContainsVariable(v int) bool {
	v = abs(v)
	for _, l := range s {
		if abs(l) == v {
			return true
		}
	}

	return false
}

// Union returns the literals of s followed by the literals of o that are
// not already in s.
func (s Set) Union(o Set) Set {
	out := make(Set, 0, len(s)+len(o))
	seen := make(map[int]struct{}, len(s)+len(o))
	for _, part := range [2]Set{s, o} {
		for _, lit := range part {
			if _, dup := seen[lit]; dup {
				continue
			}
			seen[lit] = struct{}{}
			out = append(out, lit)
		}
	}

	return out
}

// Inverse returns s with every sign flipped.
func (s Set) Inverse() Set {
	out := make(Set, len(s))
	for i, lit := range s {
		out[i] = -lit
	}

	return out
}

// RemoveVariables returns the literals of s whose variable does not occur
// in o, regardless of sign on either side.
func (s Set) RemoveVariables(o Set) Set {
	drop := make(map[int]struct{}, len(o))
	for _, lit := range o {
		drop[abs(lit)] = struct{}{}
	}
	out := make(Set, 0, len(s))
	for _, lit := range s {
		if _, ok := drop[abs(lit)]; ok {
			continue
		}
		out = append(out, lit)
	}

	return out
}

// AbsoluteValues returns the variables of s in order of first occurrence.
func (s Set) AbsoluteValues() Set {
	out := make(Set, 0, len(s))
	seen := make(map[int]struct{}, len(s))
	for _, lit := range s {
		v := abs(lit)
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}

	return out
}

// IsConsistent reports whether no variable occurs in s with both signs.
func (s Set) IsConsistent() bool {
	signs := make(map[int]int, len(s))
	for _, lit := range s {
		v := abs(lit)
		if prev, ok := signs[v]; ok && prev != lit {
			return false
		}
		signs[v] = lit
	}

	return true
}

// Key returns a canonical string identifying s as a set: its literals in
// ascending order, comma-separated. Two sets with equal keys are equal.
func (s Set) Key() string {
	sorted := make([]int, 0, len(s))
	seen := make(map[int]struct{}, len(s))
	for _, lit := range s {
		if _, dup := seen[lit]; dup {
			continue
		}
		seen[lit] = struct{}{}
		sorted = append(sorted, lit)
	}
	sort.Ints(sorted)
	var b strings.Builder
	for i, lit := range sorted {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(lit))
	}

	return b.String()
}

// Equal reports set equality, ignoring order.
func (s Set) Equal(o Set) bool {
	return s.Key() == o.Key()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
