// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Map and Entry.

package valuemap

import (
	"github.com/katalvlaran/combispec/assignment"
	"github.com/katalvlaran/combispec/variables"
)

// Entry is one key/value pair of a Map.
type Entry struct {
	Key   assignment.Set
	Value int
}

// Map associates literal sets with int values.
//
// Keys are unique as sets ({1,-2} and {-2,1} are the same key). Insertion
// order is kept for Keys, Entries and serialization.
type Map struct {
	keys   *assignment.List // insertion order, over the map's space
	values []int            // values[i] belongs to keys.sets[i]
	index  map[string]int   // Set.Key() → position
}

// New creates an empty Map over space. A nil space is replaced by a new
// empty one, which is what a missing value-map file degrades to.
func New(space *variables.Space) *Map {
	return &Map{
		keys:  assignment.NewList(space),
		index: make(map[string]int),
	}
}
