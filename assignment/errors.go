// SPDX-License-Identifier: MIT
// Package assignment: sentinel errors.
//
// Callers branch with errors.Is; context is attached at the call site with
// fmt.Errorf("Method: ...: %w", ErrX).

package assignment

import "errors"

var (
	// ErrAdaptation indicates that a variable name could not be resolved in
	// the target space during a strict re-basing.
	ErrAdaptation = errors.New("assignment: variable not found in target space")

	// ErrUnknownVariable indicates a literal whose variable id is not
	// registered in the space it claims to belong to (or the literal 0).
	ErrUnknownVariable = errors.New("assignment: unknown variable id")

	// ErrNilSpace indicates that a nil *variables.Space was passed where a
	// target space is required.
	ErrNilSpace = errors.New("assignment: space is nil")

	// ErrIndexOutOfRange indicates an assignment index outside [0, Len()).
	ErrIndexOutOfRange = errors.New("assignment: index out of range")
)
