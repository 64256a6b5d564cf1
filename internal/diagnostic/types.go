package diagnostic

import (
	"fmt"
	"strings"

	"samm-mapper/internal/common"
)

// Warning and info kinds.
const (
	KindOverrideUnresolved = "override_unresolved"
	KindAmbiguousMatch     = "ambiguous_match"
	KindNoCastRule         = "no_cast_rule"
	KindNoUnitFactor       = "no_unit_factor"
	KindLowConfidence      = "low_confidence"
	KindGenerationConflict = "generation_conflict"
	KindContainerExpanded  = "container_expanded"
)

// LowConfidenceThreshold flags matches below this confidence for review.
const LowConfidenceThreshold = 0.7

// Diagnostics holds the warnings and infos of one run.
type Diagnostics struct {
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic is a single finding.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Kind identifies the type of finding, e.g. "no_unit_factor".
	Kind string
	// Property is the offending property path (or "src -> tgt" pair).
	Property string
	// Message is the human-readable description.
	Message string
	// Suggestions are alternatives worth reviewing.
	Suggestions []string
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	default:
		return common.UnknownStr
	}
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(kind, property, message string, suggestions ...string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity:    SeverityWarning,
		Kind:        kind,
		Property:    property,
		Message:     message,
		Suggestions: suggestions,
	})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(kind, property, message string) {
	d.Infos = append(d.Infos, Diagnostic{
		Severity: SeverityInfo,
		Kind:     kind,
		Property: property,
		Message:  message,
	})
}

// Merge appends another Diagnostics instance to this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// Len returns the total number of diagnostics.
func (d *Diagnostics) Len() int {
	return len(d.Warnings) + len(d.Infos)
}

// WarningsOfKind returns the warnings of one kind, in order.
func (d *Diagnostics) WarningsOfKind(kind string) []Diagnostic {
	var out []Diagnostic

	for _, w := range d.Warnings {
		if w.Kind == kind {
			out = append(out, w)
		}
	}

	return out
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	msg := d.Message
	if d.Kind != "" {
		msg = fmt.Sprintf("[%s] %s", d.Kind, msg)
	}

	if d.Property != "" {
		msg = d.Property + ": " + msg
	}

	if len(d.Suggestions) > 0 {
		msg += " (candidates: " + strings.Join(d.Suggestions, ", ") + ")"
	}

	return msg
}
