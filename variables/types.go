// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Space type and constructor.

package variables

import "sync"

// Space maps variable names to ids in [1..N] and back.
//
// names[i] holds the name of id i+1; ids is the reverse table.
type Space struct {
	mu sync.RWMutex // guards names and ids

	names []string       // id-1 → name
	ids   map[string]int // name → id
}

// NewSpace creates a Space and registers names in order, so the first name
// receives id 1. Duplicate names are registered once.
// Complexity: O(len(names)).
func NewSpace(names ...string) *Space {
	s := &Space{
		names: make([]string, 0, len(names)),
		ids:   make(map[string]int, len(names)),
	}
	for _, name := range names {
		s.add(name)
	}

	return s
}
