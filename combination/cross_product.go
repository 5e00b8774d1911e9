// SPDX-License-Identifier: MIT
//
// File: cross_product.go
// Role: Cross product of literal combinations drawn from two pools.

package combination

import (
	"fmt"

	"github.com/katalvlaran/combispec/assignment"
	"github.com/katalvlaran/combispec/variables"
)

// LiteralSetsCrossProduct requires every t1-combination of literals from
// pool A, joined with every t2-combination of literals from pool B, to
// appear together in some row. A combination never takes two literals of
// the same variable; tuples whose two halves contradict each other are
// skipped.
//
// Pool A is the first assignment of the list, pool B the union of all
// remaining assignments.
type LiteralSetsCrossProduct struct {
	t     [2]int
	pools *assignment.List
	a, b  assignment.Set
}

// NewLiteralSetsCrossProduct builds the obligation over pools, which must
// hold at least one assignment and validate against its own space.
func NewLiteralSetsCrossProduct(t1, t2 int, pools *assignment.List) (*LiteralSetsCrossProduct, error) {
	if pools == nil || pools.Len() == 0 {
		return nil, fmt.Errorf("NewLiteralSetsCrossProduct: %w", ErrNoPools)
	}
	if err := pools.Validate(); err != nil {
		return nil, fmt.Errorf("NewLiteralSetsCrossProduct: %w: %w", ErrInconsistent, err)
	}
	sets := pools.Sets()
	b := assignment.Set{}
	for _, s := range sets[1:] {
		b = b.Union(s)
	}

	return &LiteralSetsCrossProduct{
		t:     [2]int{t1, t2},
		pools: pools.Clone(),
		a:     sets[0],
		b:     b,
	}, nil
}

// Kind implements Spec.
func (c *LiteralSetsCrossProduct) Kind() Kind { return KindLiteralSetsCrossProduct }

// T returns the arities {t1, t2}.
func (c *LiteralSetsCrossProduct) T() [2]int { return c.t }

// PoolA returns a copy of the first pool.
func (c *LiteralSetsCrossProduct) PoolA() assignment.Set { return c.a.Clone() }

// PoolB returns a copy of the second pool.
func (c *LiteralSetsCrossProduct) PoolB() assignment.Set { return c.b.Clone() }

// Pools returns a copy of the assignment list the pools were taken from.
func (c *LiteralSetsCrossProduct) Pools() *assignment.List { return c.pools.Clone() }

// Space returns the space the pools belong to.
func (c *LiteralSetsCrossProduct) Space() *variables.Space { return c.pools.Space() }

// IsVacuous implements Spec.
func (c *LiteralSetsCrossProduct) IsVacuous() bool {
	t1, t2 := c.t[0], c.t[1]
	if t1 < 0 || t2 < 0 || (t1 == 0 && t2 == 0) {
		return true
	}

	return t1 > newPool(c.a).width() || t2 > newPool(c.b).width()
}

// Count implements Spec. When the pools share variables the result is an
// upper bound, since contradicting tuples are not subtracted.
func (c *LiteralSetsCrossProduct) Count() int64 {
	if c.IsVacuous() {
		return 0
	}

	return mulSat(newPool(c.a).count(c.t[0]), newPool(c.b).count(c.t[1]))
}

// String implements Spec.
func (c *LiteralSetsCrossProduct) String() string {
	return fmt.Sprintf("LiteralSetsCrossProduct(t=[%d %d], |A|=%d, |B|=%d)", c.t[0], c.t[1], len(c.a), len(c.b))
}

func (*LiteralSetsCrossProduct) sealed() {}
