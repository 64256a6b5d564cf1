package gen

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"samm-mapper/internal/diagnostic"
	"samm-mapper/internal/model"
	"samm-mapper/internal/plan"
)

// GeneratorName identifies the producer in report metadata.
const GeneratorName = "SAMM-to-JSONata Generator v1.0"

// Report is the mapping report written next to the expression.
type Report struct {
	Metadata       Metadata         `json:"metadata" yaml:"metadata"`
	Mappings       []Record         `json:"mappings" yaml:"mappings"`
	UnmappedSource []PropertyRef    `json:"unmapped_source" yaml:"unmapped_source"`
	UnmappedTarget []PropertyRef    `json:"unmapped_target" yaml:"unmapped_target"`
	Warnings       []DiagnosticItem `json:"warnings" yaml:"warnings"`
	Infos          []DiagnosticItem `json:"infos,omitempty" yaml:"infos,omitempty"`
}

// Metadata describes one generation run.
type Metadata struct {
	Generator           string                       `json:"generator" yaml:"generator"`
	GeneratedAt         string                       `json:"generated_at" yaml:"generated_at"`
	MappingID           string                       `json:"mapping_id" yaml:"mapping_id"`
	SourceModel         string                       `json:"source_model" yaml:"source_model"`
	TargetModel         string                       `json:"target_model" yaml:"target_model"`
	SourceAspect        string                       `json:"source_aspect" yaml:"source_aspect"`
	TargetAspect        string                       `json:"target_aspect" yaml:"target_aspect"`
	AverageConfidence   float64                      `json:"mapping_confidence_avg" yaml:"mapping_confidence_avg"`
	TotalMappings       int                          `json:"total_mappings" yaml:"total_mappings"`
	SourcePropertyCount int                          `json:"source_properties_count" yaml:"source_properties_count"`
	TargetPropertyCount int                          `json:"target_properties_count" yaml:"target_properties_count"`
	ConfidenceSummary   diagnostic.ConfidenceSummary `json:"confidence_summary" yaml:"confidence_summary"`
}

// Record is one accepted mapping.
type Record struct {
	SourceID            string   `json:"source_id" yaml:"source_id"`
	SourcePath          string   `json:"source_path" yaml:"source_path"`
	SourcePreferredName string   `json:"source_preferred_name,omitempty" yaml:"source_preferred_name,omitempty"`
	TargetID            string   `json:"target_id" yaml:"target_id"`
	TargetPath          string   `json:"target_path" yaml:"target_path"`
	TargetPreferredName string   `json:"target_preferred_name,omitempty" yaml:"target_preferred_name,omitempty"`
	Method              string   `json:"mapping_method" yaml:"mapping_method"`
	Confidence          float64  `json:"confidence" yaml:"confidence"`
	Transformations     []string `json:"transformation_types" yaml:"transformation_types"`
	Fragment            string   `json:"jsonata_fragment" yaml:"jsonata_fragment"`
	Explanation         string   `json:"explanation" yaml:"explanation"`
}

// PropertyRef identifies an unmapped property.
type PropertyRef struct {
	ID   string `json:"id" yaml:"id"`
	Path string `json:"path" yaml:"path"`
}

// DiagnosticItem is a reported warning or info.
type DiagnosticItem struct {
	Kind        string   `json:"type" yaml:"type"`
	Property    string   `json:"property" yaml:"property"`
	Message     string   `json:"message" yaml:"message"`
	Suggestions []string `json:"suggestions,omitempty" yaml:"suggestions,omitempty"`
}

// mappingID derives a stable identifier from both aspects and the rendered
// body, so identical inputs yield identical reports.
func mappingID(src, tgt *model.Model, body string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(src.ID+"\n"+tgt.ID+"\n"+body)).String()
}

func aspectName(m *model.Model) string {
	if m.PreferredName != "" {
		return m.PreferredName
	}

	return m.Name
}

func refs(entries []model.Entry) []PropertyRef {
	out := make([]PropertyRef, 0, len(entries))
	for _, e := range entries {
		out = append(out, PropertyRef{ID: e.Property.ID, Path: e.Property.Path})
	}

	return out
}

func items(ds []diagnostic.Diagnostic) []DiagnosticItem {
	out := make([]DiagnosticItem, 0, len(ds))
	for _, d := range ds {
		out = append(out, DiagnosticItem{
			Kind:        d.Kind,
			Property:    d.Property,
			Message:     d.Message,
			Suggestions: d.Suggestions,
		})
	}

	return out
}

func (g *Generator) buildReport(result *plan.MappingResult, out *Output, body, generatedAt string) *Report {
	var diags diagnostic.Diagnostics

	diags.Merge(result.Diagnostics)
	diags.Merge(out.Diagnostics)

	r := &Report{
		Metadata: Metadata{
			Generator:           GeneratorName,
			GeneratedAt:         generatedAt,
			MappingID:           mappingID(result.Source, result.Target, body),
			SourceModel:         g.sourceLabel(result),
			TargetModel:         g.targetLabel(result),
			SourceAspect:        aspectName(result.Source),
			TargetAspect:        aspectName(result.Target),
			AverageConfidence:   result.Summary.Average,
			TotalMappings:       len(result.Entries),
			SourcePropertyCount: result.Source.Count(),
			TargetPropertyCount: result.Target.Count(),
			ConfidenceSummary:   result.Summary,
		},
		Mappings:       make([]Record, 0, len(result.Entries)),
		UnmappedSource: refs(result.UnmappedSource),
		UnmappedTarget: refs(result.UnmappedTarget),
		Warnings:       items(diags.Warnings),
	}

	if len(diags.Infos) > 0 {
		r.Infos = items(diags.Infos)
	}

	for i, e := range result.Entries {
		src, tgt := e.Match.Source.Property, e.Match.Target.Property
		r.Mappings = append(r.Mappings, Record{
			SourceID:            src.ID,
			SourcePath:          src.Path,
			SourcePreferredName: src.PreferredName,
			TargetID:            tgt.ID,
			TargetPath:          tgt.Path,
			TargetPreferredName: tgt.PreferredName,
			Method:              string(e.Match.Method()),
			Confidence:          e.Match.Confidence(),
			Transformations:     e.Kinds(),
			Fragment:            out.Fragments[i],
			Explanation:         e.Match.Evidence.Explain(),
		})
	}

	return r
}

// JSON renders the report with two-space indentation.
func (r *Report) JSON() ([]byte, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling report: %w", err)
	}

	return append(data, '\n'), nil
}

// YAML renders the report as YAML.
func (r *Report) YAML() ([]byte, error) {
	data, err := yaml.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("marshaling report: %w", err)
	}

	return data, nil
}
