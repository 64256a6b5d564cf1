package mapping

import (
	"sort"
)

type unitPair struct {
	from, to string
}

// UnitTable looks up conversion factors keyed by (source unit, target
// unit). Units are SAMM unit local names such as "kilometrePerHour".
type UnitTable struct {
	factors map[unitPair]float64
}

// DefaultUnits is the built-in conversion table.
func DefaultUnits() []UnitConversion {
	return []UnitConversion{
		{From: "kilometrePerHour", To: "metrePerSecond", Factor: 0.27778},
		{From: "metrePerSecond", To: "kilometrePerHour", Factor: 3.6},
		{From: "kilometre", To: "metre", Factor: 1000},
		{From: "metre", To: "centimetre", Factor: 100},
		{From: "metre", To: "millimetre", Factor: 1000},
		{From: "tonneMetricTon", To: "kilogram", Factor: 1000},
		{From: "kilogram", To: "gram", Factor: 1000},
		{From: "kilowattHour", To: "megajoule", Factor: 3.6},
		{From: "kilowattHour", To: "wattHour", Factor: 1000},
		{From: "hour", To: "minuteUnitOfTime", Factor: 60},
		{From: "minuteUnitOfTime", To: "secondUnitOfTime", Factor: 60},
		{From: "hour", To: "secondUnitOfTime", Factor: 3600},
		{From: "cubicMetre", To: "litre", Factor: 1000},
	}
}

// NewUnitTable creates a table holding conv. Later entries win.
func NewUnitTable(conv ...UnitConversion) *UnitTable {
	t := &UnitTable{factors: make(map[unitPair]float64, len(conv))}
	for _, c := range conv {
		t.factors[unitPair{c.From, c.To}] = c.Factor
	}

	return t
}

// DefaultUnitTable returns a table of DefaultUnits.
func DefaultUnitTable() *UnitTable {
	return NewUnitTable(DefaultUnits()...)
}

// With returns a copy of t extended with conv.
func (t *UnitTable) With(conv ...UnitConversion) *UnitTable {
	out := &UnitTable{factors: make(map[unitPair]float64, len(t.factors)+len(conv))}
	for k, v := range t.factors {
		out.factors[k] = v
	}

	for _, c := range conv {
		out.factors[unitPair{c.From, c.To}] = c.Factor
	}

	return out
}

// Factor returns the multiplier converting from -> to. A missing direct
// entry falls back to 1/factor of the inverse entry.
func (t *UnitTable) Factor(from, to string) (float64, bool) {
	if from == to {
		return 1, true
	}

	if f, ok := t.factors[unitPair{from, to}]; ok {
		return f, true
	}

	if f, ok := t.factors[unitPair{to, from}]; ok && f != 0 {
		return 1 / f, true
	}

	return 0, false
}

// Len returns the number of entries.
func (t *UnitTable) Len() int {
	return len(t.factors)
}

// Conversions lists the entries sorted by (from, to).
func (t *UnitTable) Conversions() []UnitConversion {
	out := make([]UnitConversion, 0, len(t.factors))
	for k, v := range t.factors {
		out = append(out, UnitConversion{From: k.from, To: k.to, Factor: v})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}

		return out[i].To < out[j].To
	})

	return out
}
