package plan

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"samm-mapper/internal/diagnostic"
	"samm-mapper/internal/mapping"
	"samm-mapper/internal/match"
)

// DefaultPrecision is the rounding precision of unit conversions.
const DefaultPrecision = 2

// PlannerConfig holds the call-scoped tables of the planner.
type PlannerConfig struct {
	// Units is the conversion table; nil means mapping.DefaultUnitTable.
	Units *mapping.UnitTable
	// Precision is the number of decimals kept after a unit conversion.
	Precision int
	// Logger receives debug output; nil discards it.
	Logger *log.Logger
}

// DefaultPlannerConfig returns the default configuration.
func DefaultPlannerConfig() PlannerConfig {
	return PlannerConfig{
		Units:     mapping.DefaultUnitTable(),
		Precision: DefaultPrecision,
	}
}

// Planner decides the value conversions of a match.
type Planner struct {
	cfg PlannerConfig
	log *log.Logger
}

// NewPlanner creates a planner.
func NewPlanner(cfg PlannerConfig) *Planner {
	if cfg.Units == nil {
		cfg.Units = mapping.DefaultUnitTable()
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Planner{cfg: cfg, log: logger}
}

// Plan returns the ordered steps of m (cast, unit conversion, structure
// transform) and the gaps it found. A match without any step gets a single
// direct step.
func (p *Planner) Plan(m match.Match) ([]Step, diagnostic.Diagnostics) {
	var (
		steps []Step
		diags diagnostic.Diagnostics
	)

	src, tgt := m.Source.Property, m.Target.Property
	label := m.Label()

	if src.DataType != "" && tgt.DataType != "" && src.DataType != tgt.DataType {
		if op, ok := CastOperator(src.DataType, tgt.DataType); ok {
			steps = append(steps, Step{Kind: StepTypeCast, TargetType: tgt.DataType, Operator: op})
		} else {
			diags.AddWarning(diagnostic.KindNoCastRule, label,
				fmt.Sprintf("no cast rule from %s (%s) to %s (%s), value passed through",
					src.DataType, FamilyOf(src.DataType), tgt.DataType, FamilyOf(tgt.DataType)))
		}
	}

	if src.Unit != "" && tgt.Unit != "" && src.Unit != tgt.Unit {
		if factor, ok := p.cfg.Units.Factor(src.Unit, tgt.Unit); ok {
			steps = append(steps, Step{
				Kind:       StepUnitConversion,
				Factor:     factor,
				Precision:  p.cfg.Precision,
				SourceUnit: src.Unit,
				TargetUnit: tgt.Unit,
			})
		} else {
			diags.AddWarning(diagnostic.KindNoUnitFactor, label,
				fmt.Sprintf("no conversion factor from %s to %s, value left unconverted", src.Unit, tgt.Unit))
		}
	}

	switch {
	case !src.MultiValued() && tgt.MultiValued():
		steps = append(steps, Step{Kind: StepStructureTransform, Direction: DirectionWrap})
	case src.MultiValued() && !tgt.MultiValued():
		steps = append(steps, Step{Kind: StepStructureTransform, Direction: DirectionUnwrap})
	}

	if len(steps) == 0 {
		steps = []Step{{Kind: StepDirect}}
	}

	p.log.Debug("planned", "match", label, "steps", len(steps))

	return steps, diags
}
