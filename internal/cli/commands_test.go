package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"samm-mapper/internal/gen"
	"samm-mapper/internal/mapping"
)

const (
	sourceModel = "../pipeline/testdata/pcf.ttl"
	targetModel = "../pipeline/testdata/footprint.ttl"
	instanceDoc = "../pipeline/testdata/instance.json"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	root := NewRootCommand()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--env-dir", t.TempDir()}, args...))

	err := root.ExecuteContext(context.Background())

	return out.String(), err
}

func TestRootCommand_Subcommands(t *testing.T) {
	var names []string
	for _, c := range NewRootCommand().Commands() {
		names = append(names, c.Name())
	}

	for _, want := range []string{"generate", "inspect", "suggest", "apply", "batch"} {
		assert.Contains(t, names, want)
	}
}

func TestSetVersion(t *testing.T) {
	SetVersion("1.0.0", "abc123", "2026-10-19")
	t.Cleanup(func() { SetVersion("", "", "") })

	assert.Equal(t, "1.0.0", version)
	assert.Equal(t, "abc123", commit)
	assert.Equal(t, "2026-10-19", date)
}

func TestGenerateAndApply(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, "generate", "-s", sourceModel, "-t", targetModel, "-o", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "mappings")
	assert.Contains(t, out, "low_confidence")

	expr := filepath.Join(dir, gen.ExpressionFile)
	assert.FileExists(t, expr)
	assert.FileExists(t, filepath.Join(dir, gen.ReportJSONFile))

	out, err = run(t, "apply", "-x", expr, "-i", instanceDoc)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.InDelta(t, 27.78, doc["velocity"], 1e-9)

	result := filepath.Join(dir, "result.json")
	_, err = run(t, "apply", "-x", expr, "-i", instanceDoc, "-o", result)
	require.NoError(t, err)
	assert.FileExists(t, result)
}

func TestGenerate_Flags(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, "generate", "-s", sourceModel, "-t", targetModel, "-o", dir,
		"--report-format", "yaml", "--collections", "objects", "--threshold", "0.75")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, gen.ReportYAMLFile))

	tests := []struct {
		name string
		args []string
	}{
		{"missing target", []string{"generate", "-s", sourceModel}},
		{"bad threshold", []string{"generate", "-s", sourceModel, "-t", targetModel, "--threshold", "2"}},
		{"bad style", []string{"generate", "-s", sourceModel, "-t", targetModel, "--collections", "rows"}},
		{"bad format", []string{"generate", "-s", sourceModel, "-t", targetModel, "--report-format", "xml"}},
		{"missing mapping", []string{"generate", "-s", sourceModel, "-t", targetModel, "-m", "absent.yaml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, append(tt.args, "-o", t.TempDir())...)
			assert.Error(t, err)
		})
	}
}

func TestInspect(t *testing.T) {
	out, err := run(t, "inspect", sourceModel)
	require.NoError(t, err)
	assert.Contains(t, out, "technologicalDQR")
	assert.Contains(t, out, "kilometrePerHour")
	assert.Contains(t, out, "Technological DQR")

	out, err = run(t, "inspect", "--dump", sourceModel)
	require.NoError(t, err)
	assert.Contains(t, out, "Composites")

	_, err = run(t, "inspect", "../pipeline/testdata/cyclic.ttl")
	assert.Error(t, err)
}

func TestSuggest(t *testing.T) {
	out, err := run(t, "suggest", "-s", sourceModel, "-t", targetModel)
	require.NoError(t, err)

	f, err := mapping.Parse([]byte(out), mapping.FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, "velocity", f.Overrides["speed"])

	path := filepath.Join(t.TempDir(), "overrides.toml")
	_, err = run(t, "suggest", "-s", sourceModel, "-t", targetModel, "-o", path)
	require.NoError(t, err)

	loaded, err := mapping.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, f.Overrides, loaded.Overrides)

	// The exported file reproduces the mapping.
	dir := t.TempDir()
	_, err = run(t, "generate", "-s", sourceModel, "-t", targetModel, "-m", path, "-o", dir)
	require.NoError(t, err)
}

func TestBatch(t *testing.T) {
	dir := t.TempDir()

	src, err := filepath.Abs(sourceModel)
	require.NoError(t, err)

	tgt, err := filepath.Abs(targetModel)
	require.NoError(t, err)

	manifest := filepath.Join(dir, "batch.yaml")
	require.NoError(t, os.WriteFile(manifest, []byte(
		"jobs:\n"+
			"  - name: forward\n    source: "+src+"\n    target: "+tgt+"\n    output: out/forward\n"+
			"  - name: backward\n    source: "+tgt+"\n    target: "+src+"\n"), 0o644))

	out, err := run(t, "batch", manifest, "--concurrency", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "forward: 7 mappings")
	assert.Contains(t, out, "backward:")
	assert.FileExists(t, filepath.Join(dir, "out", "forward", gen.ExpressionFile))
}
