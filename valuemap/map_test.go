// SPDX-License-Identifier: MIT
package valuemap_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/combispec/assignment"
	"github.com/katalvlaran/combispec/valuemap"
	"github.com/katalvlaran/combispec/variables"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap_PutGet(t *testing.T) {
	t.Parallel()

	m := valuemap.New(variables.NewSpace("A", "B", "C"))
	require.NoError(t, m.Put(assignment.Set{1, -2}, 4))
	require.NoError(t, m.Put(assignment.Set{3}, -1))
	require.NoError(t, m.Put(assignment.Set{-2, 1, 1}, 6))
	require.ErrorIs(t, m.Put(assignment.Set{4}, 1), assignment.ErrUnknownVariable)

	assert.Equal(t, 2, m.Len())
	v, ok := m.Get(assignment.Set{-2, 1})
	require.True(t, ok)
	assert.Equal(t, 6, v)
	_, ok = m.Get(assignment.Set{1, 2})
	assert.False(t, ok)

	best, ok := m.MaxValue()
	require.True(t, ok)
	assert.Equal(t, 6, best)
	_, ok = valuemap.New(nil).MaxValue()
	assert.False(t, ok)

	l := m.List()
	assert.Same(t, m.Space(), l.Space())
	assert.Equal(t, []assignment.Set{{1, -2}, {3}}, l.Sets())
}

func TestMap_AdaptStrict(t *testing.T) {
	t.Parallel()

	m, err := valuemap.ParseString("Cycle,-Directed=3\nWeighted=1")
	require.NoError(t, err)

	model := variables.NewSpace("Base", "Directed", "Weighted", "Cycle")
	require.NoError(t, m.Adapt(model, false))
	assert.Same(t, model, m.Space())
	assert.Equal(t, 4, model.Size())

	v, ok := m.Get(assignment.Set{-2, 4})
	require.True(t, ok)
	assert.Equal(t, 3, v)
	v, ok = m.Get(assignment.Set{3})
	require.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestMap_AdaptStrictFails(t *testing.T) {
	t.Parallel()

	m, err := valuemap.ParseString("Cycle,Unknown=3")
	require.NoError(t, err)
	orig := m.Space()

	err = m.Adapt(variables.NewSpace("Cycle"), false)
	require.ErrorIs(t, err, assignment.ErrAdaptation)
	assert.Same(t, orig, m.Space())
	_, ok := m.Get(assignment.Set{1, 2})
	assert.True(t, ok)
}

func TestMap_AdaptPermissiveMonotonic(t *testing.T) {
	t.Parallel()

	m, err := valuemap.ParseString("X,-Base=2\nY=1")
	require.NoError(t, err)

	target := variables.NewSpace("Base", "Other")
	before := target.Names()
	require.NoError(t, m.Adapt(target, true))

	after := target.Names()
	assert.Equal(t, before, after[:len(before)])
	assert.Equal(t, []string{"Base", "Other", "X", "Y"}, after)
	v, ok := m.Get(assignment.Set{3, -1})
	require.True(t, ok)
	assert.Equal(t, 2, v)
}

func TestMap_CloneIndependent(t *testing.T) {
	t.Parallel()

	m, err := valuemap.ParseString("A=1")
	require.NoError(t, err)
	c := m.Clone()
	require.NoError(t, c.Put(assignment.Set{1}, 5))
	require.NoError(t, c.Adapt(variables.NewSpace("Z", "A"), false))

	v, _ := m.Get(assignment.Set{1})
	assert.Equal(t, 1, v)
	assert.Equal(t, []string{"A"}, m.Space().Names())
	v, _ = c.Get(assignment.Set{2})
	assert.Equal(t, 5, v)
}

func TestLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	good := filepath.Join(dir, "cardinality.txt")
	bad := filepath.Join(dir, "broken.txt")
	require.NoError(t, os.WriteFile(good, []byte("Number,Connected,Cycle=3\n"), 0o644))
	require.NoError(t, os.WriteFile(bad, []byte("Number,Connected\n"), 0o644))

	m, err := valuemap.Load(good)
	require.NoError(t, err)
	assert.Equal(t, 1, m.Len())

	_, err = valuemap.Load(bad)
	require.ErrorIs(t, err, valuemap.ErrMissingValue)

	_, err = valuemap.Load(filepath.Join(dir, "missing.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadOrEmpty(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	bad := filepath.Join(dir, "broken.txt")
	require.NoError(t, os.WriteFile(bad, []byte("A=oops\n"), 0o644))

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	m := valuemap.LoadOrEmpty(bad, logger)
	require.NotNil(t, m)
	assert.Equal(t, 0, m.Len())
	assert.Equal(t, 0, m.Space().Size())
	assert.Contains(t, logs.String(), "level=WARN")
	assert.Contains(t, logs.String(), bad)

	logs.Reset()
	m = valuemap.LoadOrEmpty(filepath.Join(dir, "absent.txt"), logger)
	assert.Equal(t, 0, m.Len())
	assert.Contains(t, logs.String(), "level=WARN")

	logs.Reset()
	m = valuemap.LoadOrEmpty("", logger)
	assert.Equal(t, 0, m.Len())
	assert.Empty(t, logs.String())
}
