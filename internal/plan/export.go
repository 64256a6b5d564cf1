package plan

import (
	"samm-mapper/internal/mapping"
)

// ExportSuggestions turns the accepted matches of a result into a mapping
// file whose overrides pin every pair, so users can review the automatic
// decisions and regenerate deterministically.
func ExportSuggestions(result *MappingResult, config ResolutionConfig) *mapping.File {
	threshold := config.Match.Threshold
	precision := config.Planner.Precision

	f := &mapping.File{
		Version:         mapping.CurrentVersion,
		Threshold:       &threshold,
		Precision:       &precision,
		ReportAmbiguity: config.Match.ReportAmbiguity,
		Overrides:       make(map[string]string, len(result.Entries)),
	}

	for _, e := range result.Entries {
		f.Overrides[e.Match.Source.Property.Path] = e.Match.Target.Property.Path
	}

	return f
}

// ExportSuggestionsYAML generates the suggested mapping file as YAML.
func ExportSuggestionsYAML(result *MappingResult, config ResolutionConfig) ([]byte, error) {
	return mapping.Marshal(ExportSuggestions(result, config), mapping.FormatYAML)
}
