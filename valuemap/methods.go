// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Access, mutation and re-basing of Map.

package valuemap

import (
	"fmt"

	"github.com/katalvlaran/combispec/assignment"
	"github.com/katalvlaran/combispec/variables"
)

// Space returns the space the keys refer to.
func (m *Map) Space() *variables.Space { return m.keys.Space() }

// Len returns the number of entries.
func (m *Map) Len() int { return len(m.values) }

// Put stores value under key. An existing equal key keeps its position and
// takes the new value. Every literal of key must belong to m.Space().
func (m *Map) Put(key assignment.Set, value int) error {
	key = assignment.NewSet(key...)
	probe := assignment.NewList(m.Space(), key)
	if err := probe.Validate(); err != nil {
		return fmt.Errorf("Put: %w", err)
	}
	k := key.Key()
	if pos, ok := m.index[k]; ok {
		m.values[pos] = value
		return nil
	}
	m.index[k] = len(m.values)
	m.keys.Append(key)
	m.values = append(m.values, value)

	return nil
}

// Get returns the value stored under key (compared as a set).
func (m *Map) Get(key assignment.Set) (int, bool) {
	pos, ok := m.index[key.Key()]
	if !ok {
		return 0, false
	}

	return m.values[pos], true
}

// Keys returns copies of all keys in insertion order.
func (m *Map) Keys() []assignment.Set { return m.keys.Sets() }

// Entries returns all entries in insertion order.
func (m *Map) Entries() []Entry {
	keys := m.keys.Sets()
	out := make([]Entry, len(keys))
	for i, k := range keys {
		out[i] = Entry{Key: k, Value: m.values[i]}
	}

	return out
}

// List returns the keys as an assignment list over m.Space().
func (m *Map) List() *assignment.List { return m.keys.Clone() }

// MaxValue returns the largest value, or false for an empty map.
func (m *Map) MaxValue() (int, bool) {
	if len(m.values) == 0 {
		return 0, false
	}
	best := m.values[0]
	for _, v := range m.values[1:] {
		if v > best {
			best = v
		}
	}

	return best, true
}

// Clone returns a Map with copied entries over the same space.
func (m *Map) Clone() *Map {
	c := &Map{
		keys:   m.keys.Clone(),
		values: append([]int(nil), m.values...),
		index:  make(map[string]int, len(m.index)),
	}
	for k, pos := range m.index {
		c.index[k] = pos
	}

	return c
}

// Adapt re-bases every key onto target by variable name and makes target
// the map's space. With create == false an unknown name fails with
// assignment.ErrAdaptation and m is unchanged; with create == true unknown
// names are appended to target.
func (m *Map) Adapt(target *variables.Space, create bool) error {
	if err := m.keys.Adapt(target, create); err != nil {
		return fmt.Errorf("valuemap: %w", err)
	}
	m.index = make(map[string]int, len(m.values))
	for i, k := range m.keys.Sets() {
		m.index[k.Key()] = i
	}

	return nil
}
