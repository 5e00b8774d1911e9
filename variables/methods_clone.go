// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Deep copies of a Space.
// Determinism:
//   - The clone keeps every (name, id) pair, so ids handed out later on the
//     clone continue the same sequence and never collide with existing ones.

package variables

// Clone returns an independent deep copy of s. Adding names to the clone
// never affects s, and vice versa.
// Complexity: O(N).
func (s *Space) Clone() *Space {
	s.mu.RLock()
	defer s.mu.RUnlock()
	clone := &Space{
		names: make([]string, len(s.names), cap(s.names)),
		ids:   make(map[string]int, len(s.ids)),
	}
	copy(clone.names, s.names)
	for name, id := range s.ids {
		clone.ids[name] = id
	}

	return clone
}
