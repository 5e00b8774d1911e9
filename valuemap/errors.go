// SPDX-License-Identifier: MIT
// Package valuemap: sentinel errors and the FormatError type.

package valuemap

import (
	"errors"
	"fmt"
)

var (
	// ErrFormat matches every *FormatError via errors.Is.
	ErrFormat = errors.New("valuemap: malformed value map")

	// ErrMissingValue indicates a line without '='.
	ErrMissingValue = errors.New("valuemap: missing '=' value")

	// ErrBadValue indicates a value that is not a base-10 integer.
	ErrBadValue = errors.New("valuemap: value is not an integer")

	// ErrEmptyToken indicates an empty token or a lone sign.
	ErrEmptyToken = errors.New("valuemap: empty token")

	// ErrUnencodableName indicates a variable name that cannot be written
	// in the text format (empty, containing ',' or a line break, or with
	// surrounding whitespace).
	ErrUnencodableName = errors.New("valuemap: variable name cannot be serialized")
)

// FormatError reports a malformed line of a value-map document.
// Line and Column are 1-based; Column points at the offending token.
type FormatError struct {
	Line   int
	Column int
	Text   string // the raw line
	Err    error  // ErrMissingValue, ErrBadValue or ErrEmptyToken
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	return fmt.Sprintf("valuemap: line %d, column %d: %v: %q", e.Line, e.Column, e.Err, e.Text)
}

// Unwrap returns the specific cause.
func (e *FormatError) Unwrap() error { return e.Err }

// Is reports ErrFormat so callers can match any format failure.
func (e *FormatError) Is(target error) bool { return target == ErrFormat }
