package mapping

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const yamlConfig = `
version: "1"
threshold: 0.7
precision: 3
collections: objects
report_ambiguity: true
units:
  - from: kilometrePerHour
    to: knot
    factor: 0.539957
overrides:
  pcf.partialFullPcf: pcf.pcfType
  "urn:samm:io.example:1.0.0#id": productId
`

const tomlConfig = `
version = "1"
threshold = 0.7
precision = 3
collections = "objects"
report_ambiguity = true

[[units]]
from = "kilometrePerHour"
to = "knot"
factor = 0.539957

[overrides]
"pcf.partialFullPcf" = "pcf.pcfType"
"urn:samm:io.example:1.0.0#id" = "productId"
`

func TestParse_Formats(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format Format
	}{
		{"yaml", yamlConfig, FormatYAML},
		{"toml", tomlConfig, FormatTOML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Parse([]byte(tt.data), tt.format)
			require.NoError(t, err)

			assert.Equal(t, "1", f.Version)
			assert.InDelta(t, 0.7, f.ThresholdOr(0.6), 1e-9)
			assert.Equal(t, 3, f.PrecisionOr(2))
			assert.Equal(t, CollectionsObjects, f.CollectionStyleOr(CollectionsParallel))
			assert.True(t, f.ReportAmbiguity)
			require.Len(t, f.Units, 1)
			assert.Equal(t, UnitConversion{From: "kilometrePerHour", To: "knot", Factor: 0.539957}, f.Units[0])
			assert.Equal(t, map[string]string{
				"pcf.partialFullPcf":           "pcf.pcfType",
				"urn:samm:io.example:1.0.0#id": "productId",
			}, f.Overrides)

			factor, ok := f.UnitTable().Factor("kilometrePerHour", "knot")
			require.True(t, ok)
			assert.InDelta(t, 0.539957, factor, 1e-9)
		})
	}
}

func TestParse_Defaults(t *testing.T) {
	f, err := Parse([]byte("{}"), FormatYAML)
	require.NoError(t, err)

	assert.Equal(t, CurrentVersion, f.Version)
	assert.InDelta(t, 0.6, f.ThresholdOr(0.6), 1e-9)
	assert.Equal(t, 2, f.PrecisionOr(2))
	assert.Equal(t, CollectionsParallel, f.CollectionStyleOr(CollectionsParallel))
	assert.Equal(t, DefaultUnitTable().Len(), f.UnitTable().Len())

	var nilFile *File
	assert.InDelta(t, 0.5, nilFile.ThresholdOr(0.5), 1e-9)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"threshold", "threshold: 1.5"},
		{"precision", "precision: -1"},
		{"style", "collections: nested"},
		{"unit factor", "units: [{from: a, to: b, factor: 0}]"},
		{"unit names", "units: [{from: a, factor: 2}]"},
		{"syntax", "threshold: [unterminated"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), FormatYAML)
			require.Error(t, err)
		})
	}

	_, err := Parse([]byte("threshold: 2"), FormatYAML)
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoadAndWriteFile(t *testing.T) {
	dir := t.TempDir()

	threshold := 0.65
	in := &File{
		Version:     CurrentVersion,
		Threshold:   &threshold,
		Collections: CollectionsParallel,
		Overrides:   map[string]string{"a.b": "c"},
	}

	for _, name := range []string{"mapping.yaml", "mapping.toml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, WriteFile(in, path))

			out, err := LoadFile(path)
			require.NoError(t, err)
			assert.Equal(t, in, out)
		})
	}

	_, err := LoadFile(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFormatOf(t *testing.T) {
	assert.Equal(t, FormatTOML, FormatOf("x/mapping.TOML"))
	assert.Equal(t, FormatYAML, FormatOf("mapping.yml"))
	assert.Equal(t, FormatYAML, FormatOf("mapping"))
}
