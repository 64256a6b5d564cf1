package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"samm-mapper/internal/mapping"
)

func TestExportSuggestions(t *testing.T) {
	src, tgt := footprint(t)

	cfg := DefaultConfig()

	result, err := Resolve(src, tgt, cfg)
	require.NoError(t, err)

	f := ExportSuggestions(result, cfg)
	assert.Equal(t, mapping.CurrentVersion, f.Version)
	assert.Equal(t, 0.6, f.ThresholdOr(0))
	assert.Equal(t, DefaultPrecision, f.PrecisionOr(0))
	assert.Len(t, f.Overrides, len(result.Entries))
	assert.Equal(t, "velocity", f.Overrides["speed"])
	assert.Equal(t, "pcf.attestationType", f.Overrides["pcf.attestations.attestationType"])

	// Replaying the exported overrides reproduces every pair.
	replayed, err := Resolve(src, tgt, ConfigFromFile(f))
	require.NoError(t, err)
	require.Len(t, replayed.Entries, len(result.Entries))

	for i, e := range replayed.Entries {
		assert.Equal(t, result.Entries[i].Match.Label(), e.Match.Label())
		assert.Equal(t, 1.0, e.Match.Confidence())
	}
}

func TestExportSuggestionsYAML(t *testing.T) {
	src, tgt := footprint(t)

	result, err := Resolve(src, tgt, DefaultConfig())
	require.NoError(t, err)

	data, err := ExportSuggestionsYAML(result, DefaultConfig())
	require.NoError(t, err)

	f, err := mapping.Parse(data, mapping.FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, "velocity", f.Overrides["speed"])
	assert.Equal(t, "comment", f.Overrides["remark"])
}
