// Package assignment implements literal sets and assignment lists over a
// variables.Space.
//
// A literal is a signed non-zero int: +v selects variable v, -v deselects
// it. A Set is an ordered set of literals; a List is an ordered sequence of
// Sets sharing one Space.
//
// Set algebra (all methods return new sets and never mutate the receiver):
//
//	Union(o)            literals of s, then those of o not yet present
//	Inverse()           every sign flipped
//	RemoveVariables(o)  literals of s whose variable does not occur in o
//	AbsoluteValues()    variables of s (sign dropped, deduplicated)
//
// Re-basing:
//
// List.Adapt(target, create) rewrites every literal to the id its variable
// name has in target. In strict mode (create == false) an unknown name fails
// with ErrAdaptation; in permissive mode the name is appended to target
// first. Adaptation is all-or-nothing for the list itself.
package assignment
