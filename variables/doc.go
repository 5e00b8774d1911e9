// Package variables provides Space, the bidirectional registry between
// variable names and small positive integer ids that every literal in
// combispec refers to.
//
// Ids are dense: a Space with N variables uses exactly the ids 1..N, in
// registration order. Ids are never reused or renumbered, so a variable
// appended later can never alias one registered earlier.
//
// Core Methods:
//
//	Add(name string) int               // O(1), idempotent for known names
//	Index(name string) (int, bool)     // O(1)
//	Name(id int) (string, bool)        // O(1)
//	Has(id int) bool                   // O(1)
//	Size() int                         // O(1)
//	Names() []string                   // O(N), id order
//	IDs() []int                        // O(N), ascending
//	ContainsAll(other *Space) bool     // O(M), by name
//	Clone() *Space                     // O(N), deep copy
//
// Concurrency:
//
// A Space guards its tables with a sync.RWMutex, so readers may run in
// parallel with each other and with Clone. Builders that extend a space do
// so on their own clone; sharing one mutable Space between concurrent
// writers is not supported.
package variables
