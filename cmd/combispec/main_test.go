package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/combispec/valuemap"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := rootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()

	return out.String(), errOut.String(), err
}

func decode(t *testing.T, out string) report {
	t.Helper()
	var r report
	require.NoError(t, yaml.Unmarshal([]byte(out), &r))

	return r
}

const featureModel = `# graph product line
Number
Connected

Cycle
Directed
`

func TestCardinalityCommand(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	fm := writeFile(t, dir, "model.txt", featureModel)
	cm := writeFile(t, dir, "cardinality.txt", "Number,Connected,-Cycle=3\n")

	out, _, err := execute(t, "cardinality", "-f", fm, "--cardinality-map", cm, "--artificial-prefix", "_c")
	require.NoError(t, err)

	r := decode(t, out)
	assert.Equal(t, "Cardinality", r.Mode)
	assert.Equal(t, 1, r.Iterations)
	assert.Equal(t, []string{"Number", "Connected", "Cycle", "Directed", "_c0", "_c1", "_c2"}, r.Variables)
	assert.Equal(t, []string{"_c0", "_c1", "_c2"}, r.Artificial)

	spec := r.Specification
	assert.Equal(t, "Union", spec.Kind)
	require.Len(t, spec.Children, 2)
	assert.Equal(t, []int{3, 1}, spec.Children[0].T)
	assert.Equal(t, [][]string{{"Number", "Connected", "-Cycle"}, {"_c0", "_c1", "_c2"}}, spec.Children[0].Pools)
	assert.Equal(t, []int{2}, spec.Children[1].T)
}

func TestMissingValueMapDegrades(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	fm := writeFile(t, dir, "model.txt", featureModel)

	out, errOut, err := execute(t, "prioritized", "-f", fm, "--priority-map", filepath.Join(dir, "absent.txt"))
	require.NoError(t, err)
	assert.Contains(t, errOut, "Value map unavailable")

	r := decode(t, out)
	assert.Empty(t, r.Ranks)
	require.Len(t, r.Specification.Children, 2)
	assert.True(t, r.Specification.Children[0].Vacuous)
}

func TestMissingFeatureModelFails(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	_, _, err := execute(t, "weighted", "-f", filepath.Join(dir, "absent.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "feature model")

	_, _, err = execute(t, "weighted")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")

	empty := writeFile(t, dir, "empty.txt", "# nothing\n")
	_, _, err = execute(t, "weighted", "-f", empty)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no variables")
}

func TestConfigFileWithFlagOverride(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	fm := writeFile(t, dir, "model.txt", featureModel)
	pm := writeFile(t, dir, "priority.txt", "Number,-Directed=5\n")
	cfg := writeFile(t, dir, "combispec.yaml", "feature_model: "+fm+"\n"+
		"priority_map: "+pm+"\n"+
		"t: 3\n"+
		"iterations: 4\n"+
		"output: text\n")

	out, _, err := execute(t, "prioritized", "-c", cfg, "--t", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "mode: Prioritized\n")
	assert.Contains(t, out, "iterations: 4\n")
	assert.Contains(t, out, "rank: Number,-Directed=5\n")
	assert.Contains(t, out, "  VariableWise t=[1] interactions=8\n")
}

func TestCombinedDefaultT(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	fm := writeFile(t, dir, "model.txt", featureModel)
	wm := writeFile(t, dir, "weight.txt", "Number,Extra=2\n")

	out, _, err := execute(t, "combined", "-f", fm, "--weight-map", wm)
	require.NoError(t, err)

	r := decode(t, out)
	assert.Equal(t, "Combined", r.Mode)
	assert.Contains(t, r.Variables, "Extra", "permissive re-basing adds unknown names")
	assert.Empty(t, r.Artificial)
	require.NotEmpty(t, r.Specification.Children)
	assert.Equal(t, []int{1}, r.Specification.Children[0].T)
}

func TestInvalidConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	fm := writeFile(t, dir, "model.txt", featureModel)
	tests := []struct {
		name string
		args []string
	}{
		{"iterations", []string{"weighted", "-f", fm, "-i", "0"}},
		{"negative t", []string{"weighted", "-f", fm, "--t", "-1"}},
		{"output", []string{"weighted", "-f", fm, "-o", "json"}},
		{"log level", []string{"weighted", "-f", fm, "--log-level", "loud"}},
		{"prefix", []string{"cardinality", "-f", fm, "--artificial-prefix", "a,b"}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, _, err := execute(t, tc.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid config")
		})
	}
}

func TestValuemapFmt(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "map.txt",
		"feature1,-feature2,feature3,+feature4=1\n--feature1,++feature2,-feature3,feature4=2\nfeature5=4")

	out, _, err := execute(t, "valuemap", "fmt", path)
	require.NoError(t, err)
	assert.Equal(t, "+feature1,-feature2,+feature3,+feature4=1\n"+
		"--feature1,++feature2,-feature3,+feature4=2\n"+
		"+feature5=4\n", out)

	bad := writeFile(t, dir, "bad.txt", "a,b\n")
	_, _, err = execute(t, "valuemap", "fmt", bad)
	require.ErrorIs(t, err, valuemap.ErrFormat)
}

func TestVersion(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "combispec version "+Version+"\n", out)
}
