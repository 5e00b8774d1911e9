// SPDX-License-Identifier: MIT
//
// File: combinatorics.go
// Role: Pool grouping, k-combination enumeration and saturating counts.

package combination

import (
	"math"

	"github.com/katalvlaran/combispec/assignment"
)

// pool groups the literals of a set by variable, in order of first
// occurrence: vars[i] may be taken with any sign in signs[i].
type pool struct {
	vars  []int
	signs [][]int
}

func newPool(s assignment.Set) pool {
	var p pool
	pos := make(map[int]int, len(s))
	for _, lit := range s {
		v := lit
		if v < 0 {
			v = -v
		}
		i, ok := pos[v]
		if !ok {
			i = len(p.vars)
			pos[v] = i
			p.vars = append(p.vars, v)
			p.signs = append(p.signs, nil)
		}
		p.signs[i] = append(p.signs[i], lit)
	}

	return p
}

// width is the number of distinct variables in the pool.
func (p pool) width() int { return len(p.vars) }

// count returns how many k-combinations of literals over distinct variables
// the pool admits: the k-th coefficient of Π(1 + |signs_v|·x).
func (p pool) count(k int) int64 {
	if k < 0 || k > p.width() {
		return 0
	}
	coef := make([]int64, k+1)
	coef[0] = 1
	for _, signs := range p.signs {
		s := int64(len(signs))
		for j := k; j >= 1; j-- {
			coef[j] = addSat(coef[j], mulSat(coef[j-1], s))
		}
	}

	return coef[k]
}

// each calls fn with every k-combination of literals over distinct
// variables, in lexicographic order of variable positions and sign order.
// The slice passed to fn is reused; fn must copy it to retain it.
// Returns false if fn stopped the enumeration.
func (p pool) each(k int, fn func([]int) bool) bool {
	if k < 0 || k > p.width() {
		return true
	}
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	lits := make([]int, k)
	n := p.width()
	for {
		if !p.signProduct(idx, lits, 0, fn) {
			return false
		}
		// next variable combination
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return true
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

func (p pool) signProduct(idx, lits []int, depth int, fn func([]int) bool) bool {
	if depth == len(idx) {
		return fn(lits)
	}
	for _, lit := range p.signs[idx[depth]] {
		lits[depth] = lit
		if !p.signProduct(idx, lits, depth+1, fn) {
			return false
		}
	}

	return true
}

func addSat(a, b int64) int64 {
	if a > math.MaxInt64-b {
		return math.MaxInt64
	}

	return a + b
}

func mulSat(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	if a > math.MaxInt64/b {
		return math.MaxInt64
	}

	return a * b
}
