package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"samm-mapper/internal/match"
	"samm-mapper/internal/model"
	"samm-mapper/internal/plan"
)

// prop builds a leaf property from a notation path such as "items[].qty".
func prop(t *testing.T, notation string) *model.Property {
	t.Helper()

	fp, err := model.ParsePath(notation)
	require.NoError(t, err)

	last := fp.Last()

	return &model.Property{
		ID:           "urn:test#" + last.Name,
		LocalName:    last.Name,
		Path:         fp.String(),
		Composite:    -1,
		Collection:   last.Collection,
		ArrayElement: fp.LastCollection() >= 0 && fp.LastCollection() < fp.Len()-1,
	}
}

func entry(t *testing.T, src, tgt string, steps ...plan.Step) plan.Entry {
	t.Helper()

	s, d := prop(t, src), prop(t, tgt)
	sp, _ := model.ParsePath(src)
	dp, _ := model.ParsePath(tgt)

	if len(steps) == 0 {
		steps = []plan.Step{{Kind: plan.StepDirect}}
	}

	return plan.Entry{
		Match: match.Match{
			Source:   model.Entry{Property: s, Path: sp},
			Target:   model.Entry{Property: d, Path: dp},
			Evidence: match.LocalNameMatch{Name: s.LocalName},
		},
		Steps: steps,
	}
}

func compositeEntry(t *testing.T, src, tgt string) plan.Entry {
	t.Helper()

	e := entry(t, src, tgt)
	e.Match.Source.Property.Composite = 0
	e.Match.Source.Property.DataType = model.CompositeType
	e.Match.Target.Property.Composite = 0
	e.Match.Target.Property.DataType = model.CompositeType

	return e
}

var (
	toNumber = plan.Step{Kind: plan.StepTypeCast, TargetType: "decimal", Operator: plan.OpNumber}
	toString = plan.Step{Kind: plan.StepTypeCast, TargetType: "string", Operator: plan.OpString}
	kmhToMs  = plan.Step{Kind: plan.StepUnitConversion, Factor: 0.27778, Precision: 2,
		SourceUnit: "kilometrePerHour", TargetUnit: "metrePerSecond"}
	kmToM = plan.Step{Kind: plan.StepUnitConversion, Factor: 1000, Precision: 2,
		SourceUnit: "kilometre", TargetUnit: "metre"}
	wrap   = plan.Step{Kind: plan.StepStructureTransform, Direction: plan.DirectionWrap}
	unwrap = plan.Step{Kind: plan.StepStructureTransform, Direction: plan.DirectionUnwrap}
)

func TestFragment(t *testing.T) {
	tests := []struct {
		name     string
		src, tgt string
		steps    []plan.Step
		want     string
	}{
		{"direct", "pcf.id", "pcf.id", nil, "$.pcf.id"},
		{"cast", "a", "b", []plan.Step{toNumber}, "$number($.a)"},
		{"unit", "speed", "velocity", []plan.Step{kmhToMs}, "$round($.speed * 0.27778, 2)"},
		{"cast then unit", "distance", "length", []plan.Step{toNumber, kmToM}, "$round($number($.distance) * 1000, 2)"},
		{
			"unwrap", "pcf.attestations[].attestationType", "pcf.attestationType",
			[]plan.Step{unwrap}, "$.pcf.attestations[0].attestationType",
		},
		{"unwrap list of primitives", "tags[]", "tag", []plan.Step{unwrap}, "$.tags[0]"},
		{"unwrap with cast", "items[].qty", "qty", []plan.Step{toString, unwrap}, "$string($.items[0].qty)"},
		{"wrap", "pcf.id", "ids[]", []plan.Step{wrap}, "[$.pcf.id]"},
		{"wrap with cast", "n", "names[]", []plan.Step{toString, wrap}, "[$string($.n)]"},
		{"element-wise direct", "items[].sku", "lines[].sku", nil, "$.items.sku[]"},
		{"element-wise cast", "items[].qty", "lines[].quantity", []plan.Step{toString}, "$.items.($string(qty))[]"},
		{"element-wise primitive list", "tags[]", "labels[]", []plan.Step{toString}, "$.tags.($string($))[]"},
		{"quoted key", "data.first-name", "name", nil, "$.data.`first-name`"},
		{"reserved word", "and", "x", nil, "$.`and`"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Fragment(entry(t, tt.src, tt.tgt, tt.steps...)))
		})
	}
}

func TestQuoteKey(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"technologicalDQR", "technologicalDQR"},
		{"_private", "_private"},
		{"v2", "v2"},
		{"2v", "`2v`"},
		{"first-name", "`first-name`"},
		{"with space", "`with space`"},
		{"null", "`null`"},
		{"", "``"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, QuoteKey(tt.key))
		})
	}
}

func TestPathExpr(t *testing.T) {
	p, err := model.ParsePath("pcf.attestations[].attestationType")
	require.NoError(t, err)

	assert.Equal(t, "$.pcf.attestations.attestationType", PathExpr(p, false))
	assert.Equal(t, "$.pcf.attestations[0].attestationType", PathExpr(p, true))
	assert.Equal(t, "$", PathExpr(model.FieldPath{}, false))
}
