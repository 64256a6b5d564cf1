package match

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"samm-mapper/internal/diagnostic"
	"samm-mapper/internal/model"
	"samm-mapper/internal/samm/sammtest"
)

const (
	srcNS = "urn:samm:io.example.source:1.0.0#"
	tgtNS = "urn:samm:io.example.target:1.0.0#"
)

func index(t *testing.T, f *sammtest.Fixture) *model.Index {
	t.Helper()

	m, err := model.Build(f.G)
	require.NoError(t, err)

	return model.NewIndex(m)
}

// flat builds an aspect of top-level properties.
func flat(ns string, props map[string]sammtest.Prop, order ...string) *sammtest.Fixture {
	f := sammtest.New(ns)

	refs := make([]sammtest.Ref, 0, len(order))
	for _, name := range order {
		refs = append(refs, sammtest.P(name))
		f.Property(name, props[name])
	}

	f.Aspect("Root", refs...)

	return f
}

func targets(matches []Match) []string {
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.Source.Property.Path+"->"+m.Target.Property.Path)
	}

	return out
}

// reflexiveFixture builds 12 entity-valued properties with 7 leaves each,
// 96 properties in total. The first leaf of the first `lacking` entities
// has no characteristic and no preferred name.
func reflexiveFixture(lacking int) *sammtest.Fixture {
	f := sammtest.New(srcNS)

	var top []sammtest.Ref

	for e := range 12 {
		group := fmt.Sprintf("group%d", e)
		entity := fmt.Sprintf("Group%d", e)
		top = append(top, sammtest.P(group))

		f.Characteristic(entity+"Char", sammtest.Char{Kind: "SingleEntity", DataType: entity})
		f.Property(group, sammtest.Prop{PreferredName: "Group " + fmt.Sprint(e), Characteristic: entity + "Char"})

		var leaves []sammtest.Ref

		for l := range 7 {
			leaf := fmt.Sprintf("g%dField%d", e, l)
			leaves = append(leaves, sammtest.P(leaf))

			if l == 0 && e < lacking {
				f.Property(leaf, sammtest.Prop{})

				continue
			}

			f.Simple(leaf, fmt.Sprintf("Group %d field %d", e, l), "string")
		}

		f.Entity(entity, leaves...)
	}

	f.Aspect("Reflexive", top...)

	return f
}

func TestEngine_ReflexiveModel(t *testing.T) {
	const lacking = 6

	idx := index(t, reflexiveFixture(lacking))
	require.Equal(t, 96, idx.Len())

	res := NewEngine(DefaultConfig()).Match(idx, idx)

	require.Len(t, res.Matches, 96)
	assert.Empty(t, res.UnmappedSource)
	assert.Empty(t, res.UnmappedTarget)

	byMethod := make(map[Method]int)

	for _, m := range res.Matches {
		assert.Equal(t, m.Source.Property.Path, m.Target.Property.Path)
		byMethod[m.Method()]++

		if m.Source.Property.Characteristic != "" {
			assert.Equal(t, MethodCharacteristic, m.Method())
			assert.GreaterOrEqual(t, m.Confidence(), 0.8)
		}
	}

	assert.Equal(t, 96-lacking, byMethod[MethodCharacteristic])
	assert.Equal(t, lacking, byMethod[MethodLocalName])
}

func TestEngine_ReflexiveModelAboveLocalNameLevel(t *testing.T) {
	const lacking = 6

	idx := index(t, reflexiveFixture(lacking))

	cfg := DefaultConfig()
	cfg.Threshold = 0.8

	res := NewEngine(cfg).Match(idx, idx)

	assert.Len(t, res.Matches, 96-lacking)
	assert.Len(t, res.UnmappedSource, lacking)
	assert.Len(t, res.UnmappedTarget, lacking)
}

func TestEngine_CascadePriority(t *testing.T) {
	src := flat(srcNS, map[string]sammtest.Prop{
		"speed": {PreferredName: "Speed", Characteristic: "urn:shared#Velocity"},
	}, "speed")

	tgt := flat(tgtNS, map[string]sammtest.Prop{
		"speedByName": {PreferredName: "speed"},
		"velocity":    {Characteristic: "urn:shared#Velocity"},
	}, "speedByName", "velocity")

	res := NewEngine(DefaultConfig()).Match(index(t, src), index(t, tgt))

	require.Len(t, res.Matches, 1)
	assert.Equal(t, "velocity", res.Matches[0].Target.Property.Path)
	assert.Equal(t, MethodCharacteristic, res.Matches[0].Method())
	assert.Equal(t, CharacteristicMatch{Characteristic: "urn:shared#Velocity"}, res.Matches[0].Evidence)
}

func TestEngine_Levels(t *testing.T) {
	tests := []struct {
		name       string
		src        sammtest.Prop
		srcName    string
		tgt        sammtest.Prop
		tgtName    string
		wantMethod Method
	}{
		{
			name:       "preferred name",
			srcName:    "pcfValue",
			src:        sammtest.Prop{PreferredName: "Product (Carbon) Footprint"},
			tgtName:    "footprint",
			tgt:        sammtest.Prop{PreferredName: "product carbon footprint"},
			wantMethod: MethodPreferredName,
		},
		{
			name:       "preferred name without abbreviation",
			srcName:    "pcfValue",
			src:        sammtest.Prop{PreferredName: "Product Carbon Footprint (PCF)"},
			tgtName:    "footprint",
			tgt:        sammtest.Prop{PreferredName: "Product Carbon Footprint"},
			wantMethod: MethodPreferredName,
		},
		{
			name:       "local name ignoring case",
			srcName:    "PartNumber",
			src:        sammtest.Prop{},
			tgtName:    "partnumber",
			tgt:        sammtest.Prop{},
			wantMethod: MethodLocalName,
		},
		{
			name:       "description",
			srcName:    "a",
			src:        sammtest.Prop{Description: "Total carbon footprint of the product in kg CO2e."},
			tgtName:    "b",
			tgt:        sammtest.Prop{Description: "The total carbon footprint of the product, in kg CO2e"},
			wantMethod: MethodDescriptionSimilarity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := flat(srcNS, map[string]sammtest.Prop{tt.srcName: tt.src}, tt.srcName)
			tgt := flat(tgtNS, map[string]sammtest.Prop{tt.tgtName: tt.tgt}, tt.tgtName)

			res := NewEngine(DefaultConfig()).Match(index(t, src), index(t, tgt))

			require.Len(t, res.Matches, 1)

			m := res.Matches[0]
			assert.Equal(t, tt.wantMethod, m.Method())
			assert.GreaterOrEqual(t, m.Confidence(), DefaultThreshold)
			assert.LessOrEqual(t, m.Confidence(), 1.0)
		})
	}
}

func TestEngine_DescriptionConfidenceRange(t *testing.T) {
	src := flat(srcNS, map[string]sammtest.Prop{
		"a": {Description: "Total carbon footprint of the product in kg CO2e."},
	}, "a")
	tgt := flat(tgtNS, map[string]sammtest.Prop{
		"b": {Description: "Total carbon footprint of the product in kg CO2e."},
	}, "b")

	res := NewEngine(DefaultConfig()).Match(index(t, src), index(t, tgt))

	require.Len(t, res.Matches, 1)
	assert.InDelta(t, 0.7, res.Matches[0].Confidence(), 1e-9)
}

func TestEngine_Bijection(t *testing.T) {
	props := map[string]sammtest.Prop{
		"a": {Characteristic: "urn:shared#Text"},
		"b": {Characteristic: "urn:shared#Text"},
		"c": {Characteristic: "urn:shared#Text"},
	}
	src := flat(srcNS, props, "a", "b", "c")
	tgt := flat(tgtNS, map[string]sammtest.Prop{
		"x": {Characteristic: "urn:shared#Text"},
		"y": {Characteristic: "urn:shared#Text"},
	}, "x", "y")

	res := NewEngine(DefaultConfig()).Match(index(t, src), index(t, tgt))

	assert.Equal(t, []string{"a->x", "b->y"}, targets(res.Matches))
	require.Len(t, res.UnmappedSource, 1)
	assert.Equal(t, "c", res.UnmappedSource[0].Property.Path)
	assert.Empty(t, res.UnmappedTarget)

	seen := make(map[int]bool)
	for _, m := range res.Matches {
		assert.False(t, seen[m.Target.Position], "target %s claimed twice", m.Target.Property.Path)
		seen[m.Target.Position] = true
	}
}

func TestEngine_GapSurfacing(t *testing.T) {
	src := flat(srcNS, map[string]sammtest.Prop{
		"kept":    {PreferredName: "Kept"},
		"dropped": {PreferredName: "Nothing alike"},
	}, "kept", "dropped")
	tgt := flat(tgtNS, map[string]sammtest.Prop{
		"kept":  {PreferredName: "Kept"},
		"other": {PreferredName: "Other"},
	}, "kept", "other")

	res := NewEngine(DefaultConfig()).Match(index(t, src), index(t, tgt))

	matched := make(map[string]int)
	for _, m := range res.Matches {
		matched[m.Source.Property.Path]++
	}

	for _, u := range res.UnmappedSource {
		matched[u.Property.Path]++
	}

	assert.Equal(t, map[string]int{"kept": 1, "dropped": 1}, matched)
	require.Len(t, res.UnmappedTarget, 1)
	assert.Equal(t, "other", res.UnmappedTarget[0].Property.Path)
	assert.Empty(t, res.Diagnostics.Warnings)
}

func TestEngine_Threshold(t *testing.T) {
	src := flat(srcNS, map[string]sammtest.Prop{"id": {}}, "id")
	tgt := flat(tgtNS, map[string]sammtest.Prop{"ID": {}}, "ID")

	cfg := DefaultConfig()
	cfg.Threshold = 0.75

	res := NewEngine(cfg).Match(index(t, src), index(t, tgt))

	assert.Empty(t, res.Matches)
	assert.Len(t, res.UnmappedSource, 1)

	res = NewEngine(DefaultConfig()).Match(index(t, src), index(t, tgt))
	require.Len(t, res.Matches, 1)

	for _, m := range res.Matches {
		assert.GreaterOrEqual(t, m.Confidence(), DefaultThreshold)
	}
}

func TestEngine_Overrides(t *testing.T) {
	src := flat(srcNS, map[string]sammtest.Prop{
		"first":  {Characteristic: "urn:shared#Text"},
		"second": {PreferredName: "Second"},
	}, "first", "second")
	tgt := flat(tgtNS, map[string]sammtest.Prop{
		"wanted": {Characteristic: "urn:shared#Text"},
		"spare":  {Characteristic: "urn:shared#Text"},
	}, "wanted", "spare")

	cfg := DefaultConfig()
	cfg.Overrides = map[string]string{
		srcNS + "second": "wanted",
		"ghost":          "spare",
		"first":          "nowhere",
	}

	res := NewEngine(cfg).Match(index(t, src), index(t, tgt))

	// "first" would take "wanted" by characteristic, but the override for
	// "second" claimed it up front; the unresolved override for "first"
	// falls through to the cascade.
	assert.Equal(t, []string{"first->spare", "second->wanted"}, targets(res.Matches))
	assert.Equal(t, ExplicitOverride{Key: srcNS + "second"}, res.Matches[1].Evidence)
	assert.InDelta(t, 1.0, res.Matches[1].Confidence(), 1e-9)

	unresolved := res.Diagnostics.WarningsOfKind(diagnostic.KindOverrideUnresolved)
	require.Len(t, unresolved, 2)
	assert.Equal(t, "first", unresolved[0].Property)
	assert.Equal(t, "ghost", unresolved[1].Property)
}

func TestEngine_AmbiguityReport(t *testing.T) {
	src := flat(srcNS, map[string]sammtest.Prop{"id": {PreferredName: "Identifier"}}, "id")
	tgt := flat(tgtNS, map[string]sammtest.Prop{
		"partId":    {PreferredName: "identifier"},
		"catenaxId": {PreferredName: "IDENTIFIER"},
	}, "partId", "catenaxId")

	res := NewEngine(DefaultConfig()).Match(index(t, src), index(t, tgt))
	require.Len(t, res.Matches, 1)
	assert.Equal(t, "partId", res.Matches[0].Target.Property.Path)
	assert.Empty(t, res.Diagnostics.Warnings)

	cfg := DefaultConfig()
	cfg.ReportAmbiguity = true

	res = NewEngine(cfg).Match(index(t, src), index(t, tgt))
	require.Len(t, res.Matches, 1)
	assert.Equal(t, "partId", res.Matches[0].Target.Property.Path)

	ambiguous := res.Diagnostics.WarningsOfKind(diagnostic.KindAmbiguousMatch)
	require.Len(t, ambiguous, 1)
	assert.Equal(t, []string{"partId", "catenaxId"}, ambiguous[0].Suggestions)
}

func TestEngine_AmbiguityReportListsTiesOnly(t *testing.T) {
	const text = "Total carbon footprint of the product in kg CO2e."

	src := flat(srcNS, map[string]sammtest.Prop{"a": {Description: text}}, "a")
	tgt := flat(tgtNS, map[string]sammtest.Prop{
		"near": {Description: "The total carbon footprint of the product, in kg CO2e"},
		"b":    {Description: text},
		"c":    {Description: text},
	}, "near", "b", "c")

	cfg := DefaultConfig()
	cfg.ReportAmbiguity = true

	res := NewEngine(cfg).Match(index(t, src), index(t, tgt))
	require.Len(t, res.Matches, 1)
	assert.Equal(t, "b", res.Matches[0].Target.Property.Path)

	ambiguous := res.Diagnostics.WarningsOfKind(diagnostic.KindAmbiguousMatch)
	require.Len(t, ambiguous, 1)
	assert.Equal(t, []string{"b", "c"}, ambiguous[0].Suggestions)
	assert.Equal(t, "2 targets tie at description_similarity, picked b by declaration order", ambiguous[0].Message)
}

func TestEngine_EmptyInputs(t *testing.T) {
	empty := index(t, flat(srcNS, nil))
	other := index(t, flat(tgtNS, map[string]sammtest.Prop{"a": {}}, "a"))

	res := NewEngine(DefaultConfig()).Match(empty, other)
	assert.Empty(t, res.Matches)
	assert.Empty(t, res.UnmappedSource)
	assert.Len(t, res.UnmappedTarget, 1)

	res = NewEngine(DefaultConfig()).Match(other, empty)
	assert.Empty(t, res.Matches)
	assert.Len(t, res.UnmappedSource, 1)
}

func TestEngine_Deterministic(t *testing.T) {
	idx := index(t, reflexiveFixture(3))
	engine := NewEngine(DefaultConfig())

	first := engine.Match(idx, idx)
	second := engine.Match(idx, idx)

	assert.Equal(t, targets(first.Matches), targets(second.Matches))
}
