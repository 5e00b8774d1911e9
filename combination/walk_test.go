// SPDX-License-Identifier: MIT
package combination_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/combispec/assignment"
	"github.com/katalvlaran/combispec/combination"
	"github.com/katalvlaran/combispec/variables"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalk_PreOrder(t *testing.T) {
	t.Parallel()

	space := newSpace(2)
	a, _ := combination.NewVariableWise(1, space)
	b, _ := combination.NewVariableWise(2, space)
	tree := combination.NewUnion(a, combination.NewUnion(b))

	var kinds []combination.Kind
	require.NoError(t, combination.Walk(tree, func(s combination.Spec) error {
		kinds = append(kinds, s.Kind())
		return nil
	}))
	assert.Equal(t, []combination.Kind{
		combination.KindUnion, combination.KindVariableWise, combination.KindUnion, combination.KindVariableWise,
	}, kinds)

	kinds = nil
	require.NoError(t, combination.Walk(tree, func(s combination.Spec) error {
		kinds = append(kinds, s.Kind())
		if s != combination.Spec(tree) && s.Kind() == combination.KindUnion {
			return combination.ErrSkipChildren
		}
		return nil
	}))
	assert.Len(t, kinds, 3)

	stop := errors.New("stop")
	require.ErrorIs(t, combination.Walk(tree, func(combination.Spec) error { return stop }), stop)
	require.NoError(t, combination.Walk(nil, func(combination.Spec) error { return stop }))
}

func TestValidate(t *testing.T) {
	t.Parallel()

	model := variables.NewSpace("A", "B", "C")
	extended := model.Clone()
	extended.Add("artificial")

	vw, err := combination.NewVariableWise(2, model)
	require.NoError(t, err)
	cp, err := combination.NewLiteralSetsCrossProduct(3, 1,
		assignment.NewList(extended, assignment.Set{1, 2, 3}, assignment.Set{4}))
	require.NoError(t, err)
	spec := combination.NewUnion(vw, cp)

	require.NoError(t, combination.Validate(spec, extended))
	require.ErrorIs(t, combination.Validate(spec, model), combination.ErrInconsistent)

	renamed := variables.NewSpace("A", "X", "C", "artificial")
	require.ErrorIs(t, combination.Validate(spec, renamed), combination.ErrInconsistent)
	require.ErrorIs(t, combination.Validate(spec, nil), combination.ErrNilSpace)
}

func TestKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "VariableWise", combination.KindVariableWise.String())
	assert.Equal(t, "LiteralSetsCrossProduct", combination.KindLiteralSetsCrossProduct.String())
	assert.Equal(t, "ExplicitList", combination.KindExplicitList.String())
	assert.Equal(t, "Union", combination.KindUnion.String())
	assert.Equal(t, "Unknown", combination.Kind(0).String())
}

func TestDescribe(t *testing.T) {
	t.Parallel()

	space := variables.NewSpace("Cycle", "Directed", "a1")
	cp, err := combination.NewLiteralSetsCrossProduct(2, 1,
		assignment.NewList(space, assignment.Set{1, -2}, assignment.Set{3}))
	require.NoError(t, err)
	vw, err := combination.NewVariableWiseOver(2, assignment.Set{1, 2}, space)
	require.NoError(t, err)

	d := combination.Describe(combination.NewUnion(cp, vw))
	assert.Equal(t, "Union", d.Kind)
	require.Len(t, d.Children, 2)
	assert.Equal(t, []int{2, 1}, d.Children[0].T)
	assert.Equal(t, [][]string{{"Cycle", "-Directed"}, {"a1"}}, d.Children[0].Pools)
	assert.Equal(t, int64(1), d.Children[0].Interactions)
	assert.Equal(t, []string{"Cycle", "Directed"}, d.Children[1].Variables)
	assert.Equal(t, int64(5), d.Interactions)

	assert.Equal(t, combination.Description{}, combination.Describe(nil))
}
