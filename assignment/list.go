// SPDX-License-Identifier: MIT
//
// File: list.go
// Role: List, an ordered sequence of Sets sharing one variables.Space.

package assignment

import (
	"fmt"

	"github.com/katalvlaran/combispec/variables"
)

// List is an ordered sequence of assignments over one Space.
//
// The List holds a reference to its Space, not a copy: the Space is the
// universe the literals are drawn from and may be shared by many lists.
type List struct {
	space *variables.Space
	sets  []Set
}

// NewList creates a List over space holding copies of sets.
// A nil space is replaced by a new empty one.
func NewList(space *variables.Space, sets ...Set) *List {
	if space == nil {
		space = variables.NewSpace()
	}
	l := &List{space: space, sets: make([]Set, 0, len(sets))}
	for _, s := range sets {
		l.sets = append(l.sets, s.Clone())
	}

	return l
}

// Space returns the space the literals of l refer to.
func (l *List) Space() *variables.Space { return l.space }

// Len returns the number of assignments.
func (l *List) Len() int { return len(l.sets) }

// At returns a copy of the i-th assignment.
func (l *List) At(i int) (Set, error) {
	if i < 0 || i >= len(l.sets) {
		return nil, fmt.Errorf("At(%d): %w", i, ErrIndexOutOfRange)
	}

	return l.sets[i].Clone(), nil
}

// Sets returns copies of all assignments in order.
func (l *List) Sets() []Set {
	out := make([]Set, len(l.sets))
	for i, s := range l.sets {
		out[i] = s.Clone()
	}

	return out
}

// Append adds a copy of s at the end of l.
func (l *List) Append(s Set) {
	l.sets = append(l.sets, s.Clone())
}

// Flatten returns the union of all assignments, in order.
func (l *List) Flatten() Set {
	var out Set
	for _, s := range l.sets {
		out = out.Union(s)
	}
	if out == nil {
		out = Set{}
	}

	return out
}

// Clone returns a List with copied assignments over the same Space.
func (l *List) Clone() *List {
	return NewList(l.space, l.sets...)
}

// Validate checks that every literal refers to a variable of l's Space.
func (l *List) Validate() error {
	size := l.space.Size()
	for i, s := range l.sets {
		for _, lit := range s {
			if lit == 0 || abs(lit) > size {
				return fmt.Errorf("Validate: assignment %d: literal %d: %w", i, lit, ErrUnknownVariable)
			}
		}
	}

	return nil
}

// Adapt re-bases l onto target by variable name. Afterwards every literal
// refers to target and l.Space() == target.
//
// In strict mode (create == false) a name absent from target fails with
// ErrAdaptation and l is left unchanged. In permissive mode missing names
// are appended to target in order of first occurrence; target never loses
// entries.
// Complexity: O(total literals).
func (l *List) Adapt(target *variables.Space, create bool) error {
	if target == nil {
		return fmt.Errorf("Adapt: %w", ErrNilSpace)
	}
	if target == l.space {
		return nil
	}
	if err := l.Validate(); err != nil {
		return fmt.Errorf("Adapt: %w", err)
	}

	remap := make(map[int]int)
	out := make([]Set, len(l.sets))
	for i, s := range l.sets {
		ns := make(Set, len(s))
		for j, lit := range s {
			v := abs(lit)
			nv, ok := remap[v]
			if !ok {
				name, _ := l.space.Name(v)
				if create {
					nv = target.Add(name)
				} else if nv, ok = target.Index(name); !ok {
					return fmt.Errorf("Adapt: variable %q: %w", name, ErrAdaptation)
				}
				remap[v] = nv
			}
			if lit < 0 {
				nv = -nv
			}
			ns[j] = nv
		}
		out[i] = ns
	}
	l.sets = out
	l.space = target

	return nil
}

// Names renders s using the names of l's Space, e.g. ["A", "-B"].
// Unknown ids render as their number.
func (l *List) Names(s Set) []string {
	return Names(l.space, s)
}

// Names renders the literals of s with the names registered in space.
func Names(space *variables.Space, s Set) []string {
	out := make([]string, len(s))
	for i, lit := range s {
		name, ok := space.Name(abs(lit))
		if !ok {
			name = fmt.Sprintf("%d", abs(lit))
		}
		if lit < 0 {
			name = "-" + name
		}
		out[i] = name
	}

	return out
}
