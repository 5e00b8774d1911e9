package main

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "cfg.yaml", "feature_model: model.txt\nweight_map: w.txt\n")

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "model.txt", cfg.FeatureModel)
	assert.Equal(t, "w.txt", cfg.WeightMap)
	assert.Equal(t, 1, cfg.Iterations, "defaults survive a partial file")
	assert.Equal(t, "yaml", cfg.Output)
	assert.Nil(t, cfg.T)
	assert.Equal(t, 2, cfg.TOr(2))
	require.NoError(t, cfg.Validate())

	_, err = LoadFromFile(filepath.Join(dir, "absent.yaml"))
	require.Error(t, err)

	bad := writeFile(t, dir, "bad.yaml", "t: [1\n")
	_, err = LoadFromFile(bad)
	require.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	zero := 0
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"t zero", func(c *Config) { c.T = &zero }, false},
		{"prefix", func(c *Config) { c.ArtificialPrefix = "_card" }, false},
		{"no model", func(c *Config) { c.FeatureModel = "" }, true},
		{"prefix with equals", func(c *Config) { c.ArtificialPrefix = "a=" }, true},
		{"prefix with space", func(c *Config) { c.ArtificialPrefix = " a" }, true},
		{"output", func(c *Config) { c.Output = "xml" }, true},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg := DefaultConfig()
			cfg.FeatureModel = "model.txt"
			tc.mutate(&cfg)
			if tc.wantErr {
				require.Error(t, cfg.Validate())
				return
			}
			require.NoError(t, cfg.Validate())
		})
	}
}

func TestLoadFeatureModel(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "model.txt", "# comment\n  A \nB\nA\n\n-C\n")

	model, err := loadFeatureModel(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "-C"}, model.Space().Names())
	assert.Zero(t, model.Len())
}

func TestLoadMapsScoped(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg := DefaultConfig()
	cfg.CardinalityMap = writeFile(t, dir, "c.txt", "A=2\n")
	cfg.WeightMap = writeFile(t, dir, "w.txt", "A,B=2\n")

	maps, err := loadMaps(context.Background(), modeCardinality.scope(cfg), newLogger("error", io.Discard))
	require.NoError(t, err)
	assert.Equal(t, 1, maps.Cardinality.Len())
	assert.Zero(t, maps.Weight.Len())
	assert.Zero(t, maps.Priority.Len())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = loadMaps(ctx, cfg, newLogger("error", io.Discard))
	require.ErrorIs(t, err, context.Canceled)
}
