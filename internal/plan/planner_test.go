package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"samm-mapper/internal/diagnostic"
	"samm-mapper/internal/mapping"
	"samm-mapper/internal/match"
	"samm-mapper/internal/model"
)

func pair(src, tgt *model.Property) match.Match {
	if src.Path == "" {
		src.Path = "src"
	}

	if tgt.Path == "" {
		tgt.Path = "tgt"
	}

	return match.Match{
		Source:   model.Entry{Property: src},
		Target:   model.Entry{Property: tgt},
		Evidence: match.LocalNameMatch{Name: "x"},
	}
}

func TestPlanner_Plan(t *testing.T) {
	tests := []struct {
		name     string
		src, tgt model.Property
		want     []Step
		warnings []string
	}{
		{
			name: "direct",
			src:  model.Property{DataType: "string"},
			tgt:  model.Property{DataType: "string"},
			want: []Step{{Kind: StepDirect}},
		},
		{
			name: "unknown type is direct",
			src:  model.Property{},
			tgt:  model.Property{DataType: "string"},
			want: []Step{{Kind: StepDirect}},
		},
		{
			name: "cast",
			src:  model.Property{DataType: "string"},
			tgt:  model.Property{DataType: "decimal"},
			want: []Step{{Kind: StepTypeCast, TargetType: "decimal", Operator: OpNumber}},
		},
		{
			name:     "no cast rule passes through",
			src:      model.Property{DataType: "dateTime"},
			tgt:      model.Property{DataType: "decimal"},
			want:     []Step{{Kind: StepDirect}},
			warnings: []string{diagnostic.KindNoCastRule},
		},
		{
			name: "unit conversion",
			src:  model.Property{DataType: "float", Unit: "kilometrePerHour"},
			tgt:  model.Property{DataType: "float", Unit: "metrePerSecond"},
			want: []Step{{
				Kind: StepUnitConversion, Factor: 0.27778, Precision: 2,
				SourceUnit: "kilometrePerHour", TargetUnit: "metrePerSecond",
			}},
		},
		{
			name:     "no unit factor",
			src:      model.Property{Unit: "kilometrePerHour"},
			tgt:      model.Property{Unit: "knot"},
			want:     []Step{{Kind: StepDirect}},
			warnings: []string{diagnostic.KindNoUnitFactor},
		},
		{
			name: "wrap",
			src:  model.Property{DataType: "string"},
			tgt:  model.Property{DataType: "string", Collection: true},
			want: []Step{{Kind: StepStructureTransform, Direction: DirectionWrap}},
		},
		{
			name: "unwrap array element",
			src:  model.Property{DataType: "string", ArrayElement: true},
			tgt:  model.Property{DataType: "string"},
			want: []Step{{Kind: StepStructureTransform, Direction: DirectionUnwrap}},
		},
		{
			name: "both multi-valued",
			src:  model.Property{DataType: "string", ArrayElement: true},
			tgt:  model.Property{DataType: "string", Collection: true},
			want: []Step{{Kind: StepDirect}},
		},
		{
			name: "ordered cast, unit, structure",
			src:  model.Property{DataType: "string", Unit: "kilometre", ArrayElement: true},
			tgt:  model.Property{DataType: "decimal", Unit: "metre"},
			want: []Step{
				{Kind: StepTypeCast, TargetType: "decimal", Operator: OpNumber},
				{Kind: StepUnitConversion, Factor: 1000, Precision: 2, SourceUnit: "kilometre", TargetUnit: "metre"},
				{Kind: StepStructureTransform, Direction: DirectionUnwrap},
			},
		},
		{
			name:     "composite to primitive",
			src:      model.Property{DataType: model.CompositeType, Composite: 0},
			tgt:      model.Property{DataType: "string"},
			want:     []Step{{Kind: StepDirect}},
			warnings: []string{diagnostic.KindNoCastRule},
		},
	}

	planner := NewPlanner(DefaultPlannerConfig())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, tgt := tt.src, tt.tgt

			steps, diags := planner.Plan(pair(&src, &tgt))
			assert.Equal(t, tt.want, steps)

			var kinds []string
			for _, w := range diags.Warnings {
				kinds = append(kinds, w.Kind)
				assert.Equal(t, "src -> tgt", w.Property)
			}

			assert.Equal(t, tt.warnings, kinds)
		})
	}
}

func TestPlanner_CustomUnitsAndPrecision(t *testing.T) {
	planner := NewPlanner(PlannerConfig{
		Units:     mapping.NewUnitTable(mapping.UnitConversion{From: "knot", To: "kilometrePerHour", Factor: 1.852}),
		Precision: 4,
	})

	src := model.Property{Unit: "kilometrePerHour"}
	tgt := model.Property{Unit: "knot"}

	steps, diags := planner.Plan(pair(&src, &tgt))
	assert.Empty(t, diags.Warnings)
	require.Len(t, steps, 1)
	assert.Equal(t, StepUnitConversion, steps[0].Kind)
	assert.InDelta(t, 1/1.852, steps[0].Factor, 1e-12)
	assert.Equal(t, 4, steps[0].Precision)
}
