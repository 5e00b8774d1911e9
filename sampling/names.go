// SPDX-License-Identifier: MIT
//
// File: names.go
// Role: Naming schemes for artificial variables.

package sampling

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
)

// NameFn names the idx-th artificial variable (zero-based). Names must be
// unique per index within one build.
type NameFn func(idx int) string

// UUIDName returns a random UUID, ignoring idx. Collisions with feature
// names are practically impossible, at the cost of non-reproducible names.
func UUIDName(int) string {
	return uuid.NewString()
}

// SequentialNames returns prefix + decimal index, e.g. "_a0", "_a1", ...
// The returned function panics if idx < 0.
func SequentialNames(prefix string) NameFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("SequentialNames: idx must be ≥ 0, got %d", idx))
		}
		return prefix + strconv.Itoa(idx)
	}
}
