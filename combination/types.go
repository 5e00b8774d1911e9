// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Kind tag and the sealed Spec interface.

package combination

// Kind tags the variant of a Spec.
type Kind int

// Spec variants.
const (
	KindVariableWise Kind = iota + 1
	KindLiteralSetsCrossProduct
	KindExplicitList
	KindUnion
)

// String returns the variant name.
func (k Kind) String() string {
	switch k {
	case KindVariableWise:
		return "VariableWise"
	case KindLiteralSetsCrossProduct:
		return "LiteralSetsCrossProduct"
	case KindExplicitList:
		return "ExplicitList"
	case KindUnion:
		return "Union"
	default:
		return "Unknown"
	}
}

// Spec is a coverage obligation. Implementations are immutable and live in
// this package only.
type Spec interface {
	// Kind returns the variant tag.
	Kind() Kind
	// IsVacuous reports whether the obligation requires nothing.
	IsVacuous() bool
	// Count returns the number of required interactions, saturating at
	// math.MaxInt64.
	Count() int64
	// String returns a short human-readable summary.
	String() string

	sealed()
}

var (
	_ Spec = (*VariableWise)(nil)
	_ Spec = (*LiteralSetsCrossProduct)(nil)
	_ Spec = (*ExplicitList)(nil)
	_ Spec = (*Union)(nil)
)
