// SPDX-License-Identifier: MIT
// Package combination: sentinel errors.

package combination

import "errors"

var (
	// ErrNilSpace indicates a constructor received a nil space.
	ErrNilSpace = errors.New("combination: space is nil")

	// ErrNilList indicates a constructor received a nil assignment list.
	ErrNilList = errors.New("combination: assignment list is nil")

	// ErrNoPools indicates a cross product without a first pool.
	ErrNoPools = errors.New("combination: cross product needs at least one pool")

	// ErrInconsistent indicates a specification that references a variable
	// id its space does not define, or defines differently.
	ErrInconsistent = errors.New("combination: specification inconsistent with variable space")
)
