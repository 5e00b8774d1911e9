// SPDX-License-Identifier: MIT
// Package sampling: sentinel errors.
//
// Builders wrap causes as "<Method>: ...: %w"; branch with errors.Is
// against these sentinels or those of assignment, valuemap and combination
// (assignment.ErrAdaptation for unresolvable names in strict re-basing).

package sampling

import "errors"

var (
	// ErrNilModel indicates a nil feature model.
	ErrNilModel = errors.New("sampling: feature model is nil")

	// ErrArtificialCollision indicates that an artificial variable name is
	// already registered, so the variable would alias an existing one.
	ErrArtificialCollision = errors.New("sampling: artificial variable name already in use")
)
