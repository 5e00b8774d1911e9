// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Registration and lookup on Space.
// Determinism:
//   - Names() and IDs() are returned in id order.

package variables

// Add registers name and returns its id. A name that is already registered
// keeps its id and the space is left unchanged; otherwise the name receives
// the next free id (Size()+1).
// Complexity: O(1) amortized.
func (s *Space) Add(name string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.add(name)
}

// add is Add without locking; callers hold mu or own s exclusively.
func (s *Space) add(name string) int {
	if id, ok := s.ids[name]; ok {
		return id
	}
	s.names = append(s.names, name)
	id := len(s.names)
	s.ids[name] = id

	return id
}

// Index returns the id registered for name.
func (s *Space) Index(name string) (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.ids[name]

	return id, ok
}

// Name returns the name registered for id.
func (s *Space) Name(id int) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if id < 1 || id > len(s.names) {
		return "", false
	}

	return s.names[id-1], true
}

// Has reports whether id is a valid variable id of this space.
func (s *Space) Has(id int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return id >= 1 && id <= len(s.names)
}

// Size returns the number of registered variables (the largest id).
func (s *Space) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.names)
}

// Names returns a copy of all names, ordered by id.
func (s *Space) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.names))
	copy(out, s.names)

	return out
}

// IDs returns all ids in ascending order: 1..Size().
func (s *Space) IDs() []int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]int, len(s.names))
	for i := range out {
		out[i] = i + 1
	}

	return out
}

// ContainsAll reports whether every name of other is registered in s.
// Ids are not compared; two spaces built in different orders can contain
// each other. A nil other is contained in every space.
// Complexity: O(other.Size()).
func (s *Space) ContainsAll(other *Space) bool {
	if other == nil {
		return true
	}
	if other == s {
		return true
	}
	names := other.Names()
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, name := range names {
		if _, ok := s.ids[name]; !ok {
			return false
		}
	}

	return true
}
