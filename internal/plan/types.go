package plan

import (
	"fmt"
	"strconv"

	"samm-mapper/internal/diagnostic"
	"samm-mapper/internal/match"
	"samm-mapper/internal/model"
)

//go:generate go tool stringer -type=StepKind -linecomment -output=stepkind_string.go

// StepKind is the type of one value conversion.
type StepKind int

const (
	_ StepKind = iota // zero value is invalid

	StepDirect             // direct
	StepTypeCast           // type_cast
	StepUnitConversion     // unit_conversion
	StepStructureTransform // structure_transform
)

// Direction of a structure transform.
type Direction string

const (
	// DirectionWrap turns a scalar into a one-element sequence.
	DirectionWrap Direction = "wrap"
	// DirectionUnwrap selects the element at index 0.
	DirectionUnwrap Direction = "unwrap"
)

// Step is one value conversion. Only the fields of its Kind are set.
type Step struct {
	Kind StepKind

	// type_cast
	TargetType string
	Operator   string

	// unit_conversion
	Factor     float64
	Precision  int
	SourceUnit string
	TargetUnit string

	// structure_transform
	Direction Direction
}

// String renders the step, e.g. "unit_conversion(kilometrePerHour->metrePerSecond x0.27778, 2)".
func (s Step) String() string {
	switch s.Kind {
	case StepTypeCast:
		return fmt.Sprintf("%s(%s, %s)", s.Kind, s.TargetType, s.Operator)
	case StepUnitConversion:
		return fmt.Sprintf("%s(%s->%s x%s, %d)", s.Kind, s.SourceUnit, s.TargetUnit,
			strconv.FormatFloat(s.Factor, 'g', -1, 64), s.Precision)
	case StepStructureTransform:
		return fmt.Sprintf("%s(%s)", s.Kind, s.Direction)
	default:
		return s.Kind.String()
	}
}

// Entry is one match with its planned steps.
type Entry struct {
	Match match.Match
	Steps []Step
}

// Kinds lists the step kinds in order.
func (e Entry) Kinds() []string {
	out := make([]string, 0, len(e.Steps))
	for _, s := range e.Steps {
		out = append(out, s.Kind.String())
	}

	return out
}

// Has reports whether the entry carries a step of kind k.
func (e Entry) Has(k StepKind) bool {
	for _, s := range e.Steps {
		if s.Kind == k {
			return true
		}
	}

	return false
}

// MappingResult is the terminal artifact of planning, consumed read-only by
// code generation.
type MappingResult struct {
	// Entries are in source declaration order.
	Entries        []Entry
	UnmappedSource []model.Entry
	UnmappedTarget []model.Entry
	Diagnostics    diagnostic.Diagnostics
	Summary        diagnostic.ConfidenceSummary

	Source      *model.Model
	Target      *model.Model
	SourceIndex *model.Index
	TargetIndex *model.Index
}
