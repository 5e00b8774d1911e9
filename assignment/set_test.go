// SPDX-License-Identifier: MIT
package assignment_test

import (
	"testing"

	"github.com/katalvlaran/combispec/assignment"
	"github.com/katalvlaran/combispec/variables"
	"github.com/stretchr/testify/assert"
)

func TestSetAlgebra(t *testing.T) {
	t.Parallel()

	a := assignment.NewSet(1, -2, 3, 1)
	b := assignment.NewSet(3, -4, 2)

	tests := []struct {
		name string
		got  assignment.Set
		want assignment.Set
	}{
		{"NewSet_dedupe", a, assignment.Set{1, -2, 3}},
		{"Union", a.Union(b), assignment.Set{1, -2, 3, -4, 2}},
		{"Inverse", a.Inverse(), assignment.Set{-1, 2, -3}},
		{"RemoveVariables", a.RemoveVariables(b), assignment.Set{1}},
		{"AbsoluteValues", assignment.NewSet(-2, 2, 5, -1).AbsoluteValues(), assignment.Set{2, 5, 1}},
		{"Union_empty", assignment.Set{}.Union(nil), assignment.Set{}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tc.got)
		})
	}
}

func TestSet_ReceiverUntouched(t *testing.T) {
	t.Parallel()

	a := assignment.Set{1, -2}
	_ = a.Inverse()
	_ = a.Union(assignment.Set{5})
	_ = a.RemoveVariables(assignment.Set{2})
	assert.Equal(t, assignment.Set{1, -2}, a)
}

func TestSet_Identity(t *testing.T) {
	t.Parallel()

	a := assignment.Set{3, -1, 2}
	b := assignment.Set{2, 3, -1}
	c := assignment.Set{2, 3, 1}

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.Equal(t, "-1,2,3", a.Key())
	assert.True(t, a.Contains(-1))
	assert.False(t, a.Contains(1))
	assert.True(t, a.ContainsVariable(1))
	assert.True(t, a.ContainsVariable(-2))
	assert.False(t, a.ContainsVariable(4))
}

func TestSet_IsConsistent(t *testing.T) {
	t.Parallel()

	assert.True(t, assignment.Set{1, -2, 3}.IsConsistent())
	assert.False(t, assignment.Set{1, -2, -1}.IsConsistent())
	assert.True(t, assignment.Set{}.IsConsistent())
}

func TestLiterals(t *testing.T) {
	t.Parallel()

	space := variables.NewSpace("A", "B", "C")
	assert.Equal(t, assignment.Set{1, 2, 3}, assignment.Variables(space))
	assert.Equal(t, assignment.Set{1, 2, 3, -1, -2, -3}, assignment.Literals(space))
	assert.Equal(t, assignment.Set{1, 3, -1, -3},
		assignment.Literals(space).RemoveVariables(assignment.Set{-2}))
}
