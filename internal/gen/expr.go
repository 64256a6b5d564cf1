package gen

import (
	"fmt"
	"strconv"
	"strings"

	"samm-mapper/internal/model"
	"samm-mapper/internal/plan"
)

// Expression roots. Inside a projection body "$" is the current element,
// so absolute paths placed there start at "$$".
const (
	contextRoot  = "$"
	documentRoot = "$$"

	// keepArray keeps a one-element sequence an array.
	keepArray = "[]"
)

// reserved words cannot be used unquoted as path steps.
var reserved = map[string]bool{
	"and": true, "or": true, "in": true,
	"true": true, "false": true, "null": true,
}

// QuoteKey returns key as a path step, back-quoting anything that is not a
// plain name.
func QuoteKey(key string) string {
	if isName(key) && !reserved[key] {
		return key
	}

	return "`" + key + "`"
}

func isName(s string) bool {
	if s == "" {
		return false
	}

	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}

	return true
}

// steps renders segments as a dotted step chain. With index set, every
// collection segment selects its first element.
func steps(segments []model.PathSegment, index bool) string {
	parts := make([]string, 0, len(segments))

	for _, seg := range segments {
		step := QuoteKey(seg.Name)
		if index && seg.Collection {
			step += "[0]"
		}

		parts = append(parts, step)
	}

	return strings.Join(parts, ".")
}

// PathExpr renders p as an absolute path expression such as "$.pcf.id".
// With unwrap set, collection segments are indexed with [0].
func PathExpr(p model.FieldPath, unwrap bool) string {
	return pathFrom(contextRoot, p, unwrap)
}

func pathFrom(base string, p model.FieldPath, unwrap bool) string {
	if p.IsEmpty() {
		return base
	}

	return base + "." + steps(p.Segments, unwrap)
}

// relative renders the segments of p from n on, relative to the current
// element.
func relative(p model.FieldPath, n int) string {
	if n >= p.Len() {
		return contextRoot
	}

	return steps(p.Segments[n:], false)
}

func formatFactor(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// applyValueSteps wraps x with the cast and unit steps, in plan order.
func applyValueSteps(x string, ss []plan.Step) string {
	for _, s := range ss {
		switch s.Kind {
		case plan.StepTypeCast:
			x = s.Operator + "(" + x + ")"
		case plan.StepUnitConversion:
			x = fmt.Sprintf("$round(%s * %s, %d)", x, formatFactor(s.Factor), s.Precision)
		}
	}

	return x
}

func hasValueSteps(ss []plan.Step) bool {
	for _, s := range ss {
		if s.Kind == plan.StepTypeCast || s.Kind == plan.StepUnitConversion {
			return true
		}
	}

	return false
}

func direction(ss []plan.Step) plan.Direction {
	for _, s := range ss {
		if s.Kind == plan.StepStructureTransform {
			return s.Direction
		}
	}

	return ""
}

// project maps the value steps over the elements of the deepest collection
// of p.
func project(base string, p model.FieldPath, ss []plan.Step) string {
	i := p.LastCollection()
	if i < 0 {
		return applyValueSteps(pathFrom(base, p, false), ss)
	}

	return pathFrom(base, p.Prefix(i+1), false) + ".(" + applyValueSteps(relative(p, i+1), ss) + ")"
}

// Fragment renders the standalone expression of e over the source document.
func Fragment(e plan.Entry) string {
	return render(e, contextRoot)
}

func render(e plan.Entry, base string) string {
	src := e.Match.Source.Path

	switch direction(e.Steps) {
	case plan.DirectionUnwrap:
		return applyValueSteps(pathFrom(base, src, true), e.Steps)
	case plan.DirectionWrap:
		return "[" + applyValueSteps(pathFrom(base, src, false), e.Steps) + "]"
	}

	multi := e.Match.Source.Property.MultiValued()

	x := applyValueSteps(pathFrom(base, src, false), e.Steps)
	if multi && hasValueSteps(e.Steps) {
		x = project(base, src, e.Steps)
	}

	if multi && e.Match.Target.Property.MultiValued() {
		x += keepArray
	}

	return x
}

// elementFragment renders e relative to an element of the source collection
// ending at segment index coll.
func elementFragment(e plan.Entry, coll int) string {
	return applyValueSteps(relative(e.Match.Source.Path, coll+1), e.Steps)
}
