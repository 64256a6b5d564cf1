package gen

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"text/template"
	"time"

	"github.com/charmbracelet/log"

	"samm-mapper/internal/diagnostic"
	"samm-mapper/internal/mapping"
	"samm-mapper/internal/model"
	"samm-mapper/internal/plan"
)

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// Collections selects how array-element matches under one target
	// collection are rendered.
	Collections mapping.CollectionStyle
	// SourceLabel and TargetLabel name the models in the header and the
	// report, e.g. their file names. Empty means the aspect URI.
	SourceLabel string
	TargetLabel string
	// Now stamps generated_at; nil means time.Now.
	Now func() time.Time
	// Logger receives debug output; nil discards it.
	Logger *log.Logger
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Collections: mapping.CollectionsParallel,
	}
}

// Generator renders a MappingResult.
type Generator struct {
	config GeneratorConfig
	log    *log.Logger
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	if !config.Collections.Valid() {
		config.Collections = mapping.CollectionsParallel
	}

	if config.Now == nil {
		config.Now = time.Now
	}

	logger := config.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Generator{config: config, log: logger}
}

// Output is everything generated for one mapping result.
type Output struct {
	// Fragments are the standalone expressions, parallel to result.Entries.
	Fragments []string
	Document  *Document
	// Expression is the document with its comment header.
	Expression string
	Report     *Report
	// Diagnostics are the findings of generation only; the report carries
	// them merged with the planning diagnostics.
	Diagnostics diagnostic.Diagnostics
}

var headerTemplate = template.Must(template.New("header").Parse(
	`/* Generated JSONata Transformation */
/* Source: {{.Source}} */
/* Target: {{.Target}} */
/* Generated: {{.GeneratedAt}} */

`))

type headerData struct {
	Source      string
	Target      string
	GeneratedAt string
}

// Generate renders result.
func (g *Generator) Generate(result *plan.MappingResult) (*Output, error) {
	if result == nil || result.Source == nil || result.Target == nil {
		return nil, fmt.Errorf("generate: incomplete mapping result")
	}

	out := &Output{
		Fragments: make([]string, len(result.Entries)),
		Document:  NewDocument(),
	}

	for i, e := range result.Entries {
		out.Fragments[i] = Fragment(e)
	}

	a := &assembler{
		g:     g,
		owner: make(map[*Node]string),
		diags: &out.Diagnostics,
	}

	a.assemble(out.Document.Root, result.Entries)

	body := out.Document.String()
	generatedAt := g.config.Now().UTC().Format(time.RFC3339)

	var buf bytes.Buffer

	err := headerTemplate.Execute(&buf, headerData{
		Source:      g.sourceLabel(result),
		Target:      g.targetLabel(result),
		GeneratedAt: generatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("rendering header: %w", err)
	}

	buf.WriteString(body)
	buf.WriteString("\n")
	out.Expression = buf.String()

	out.Report = g.buildReport(result, out, body, generatedAt)

	g.log.Debug("generated",
		"entries", len(result.Entries),
		"warnings", len(out.Diagnostics.Warnings),
		"infos", len(out.Diagnostics.Infos))

	return out, nil
}

func (g *Generator) sourceLabel(r *plan.MappingResult) string {
	if g.config.SourceLabel != "" {
		return g.config.SourceLabel
	}

	return r.Source.ID
}

func (g *Generator) targetLabel(r *plan.MappingResult) string {
	if g.config.TargetLabel != "" {
		return g.config.TargetLabel
	}

	return r.Target.ID
}

// assembler places fragments into the document.
type assembler struct {
	g     *Generator
	owner map[*Node]string
	diags *diagnostic.Diagnostics
}

// group collects array-element matches rendered as one sequence of objects.
type group struct {
	// target collection, as segment count of the target path
	targetLen int
	// source collection, as segment index in the source path
	sourceColl int
	sourcePath model.FieldPath
	entries    []int
}

func isCompositeEntry(e plan.Entry) bool {
	return e.Match.Target.Property.IsComposite() || e.Match.Source.Property.IsComposite()
}

func keys(p model.FieldPath) []string {
	out := make([]string, 0, p.Len())
	for _, seg := range p.Segments {
		out = append(out, seg.Name)
	}

	return out
}

func (a *assembler) assemble(doc *Node, entries []plan.Entry) {
	groups := make(map[int]*group)
	member := make(map[int]*group)

	if a.g.config.Collections == mapping.CollectionsObjects {
		a.groupElements(entries, groups, member)
	}

	var composite []int

	for i, e := range entries {
		if isCompositeEntry(e) {
			composite = append(composite, i)

			continue
		}

		if grp, ok := groups[i]; ok {
			a.placeGroup(doc, grp, entries)

			continue
		}

		if _, ok := member[i]; ok {
			continue
		}

		a.set(doc, keys(e.Match.Target.Path), e, e.Match.Label())
	}

	for _, i := range composite {
		e := entries[i]
		path := keys(e.Match.Target.Path)

		if n, ok := doc.Lookup(path...); ok && !n.IsEmpty() {
			a.diags.AddWarning(diagnostic.KindContainerExpanded, e.Match.Target.Property.Path,
				fmt.Sprintf("built from nested mappings, %s not copied as a whole", e.Match.Label()))

			continue
		}

		a.set(doc, path, e, e.Match.Label())
	}
}

// groupElements collects, per target collection, the array-element matches
// reading from one source collection. groups is keyed by the position of a
// group's first entry, member by the positions of all its entries.
func (a *assembler) groupElements(entries []plan.Entry, groups, member map[int]*group) {
	byTarget := make(map[string]*group)

	for i, e := range entries {
		if isCompositeEntry(e) {
			continue
		}

		tgt, src := e.Match.Target.Path, e.Match.Source.Path

		tc, sc := tgt.LastCollection(), src.LastCollection()
		if tc < 0 || tc == tgt.Len()-1 || sc < 0 {
			continue
		}

		key := tgt.Prefix(tc + 1).Notation()

		grp, ok := byTarget[key]
		if !ok {
			grp = &group{targetLen: tc + 1, sourceColl: sc, sourcePath: src.Prefix(sc + 1)}
			byTarget[key] = grp
			groups[i] = grp
		} else if !grp.sourcePath.Equals(src.Prefix(sc + 1)) {
			a.g.log.Debug("mixed source collections, keeping parallel",
				"target", key, "source", src.Notation())

			continue
		}

		grp.entries = append(grp.entries, i)
		member[i] = grp
	}
}

// placeGroup renders a group as one projection at the target collection.
func (a *assembler) placeGroup(doc *Node, grp *group, entries []plan.Entry) {
	first := entries[grp.entries[0]]
	collPath := keys(first.Match.Target.Path.Prefix(grp.targetLen))

	n, _ := a.container(doc, collPath, first.Match.Label())
	if !n.IsEmpty() {
		a.conflict(n, strings.Join(collPath, "."), first.Match.Label())
		n.reset()
	}

	n.Projection = PathExpr(grp.sourcePath, false)
	a.owner[n] = first.Match.Label()

	for _, i := range grp.entries {
		e := entries[i]
		rel := keys(e.Match.Target.Path)[grp.targetLen:]
		a.place(n, rel, elementFragment(e, grp.sourceColl), e.Match.Label())
	}
}

// container walks path from base, creating nodes. A leaf in the way is
// replaced by a container. It reports whether the walk entered a projection.
func (a *assembler) container(base *Node, path []string, label string) (*Node, bool) {
	n := base
	projected := false

	for i, key := range path {
		n = n.child(key)

		if n.IsLeaf() {
			a.conflict(n, strings.Join(path[:i+1], "."), label)
			n.reset()
		}

		if n.Projection != "" {
			projected = true
		}
	}

	return n, projected
}

// set places the expression of e at path below base. Below a projection the
// expression is anchored at the document root.
func (a *assembler) set(base *Node, path []string, e plan.Entry, label string) {
	if len(path) == 0 {
		return
	}

	parent, projected := a.container(base, path[:len(path)-1], label)

	anchor := contextRoot
	if projected {
		anchor = documentRoot
	}

	a.put(parent, path, render(e, anchor), label)
}

// place writes expr at path below base.
func (a *assembler) place(base *Node, path []string, expr, label string) {
	if len(path) == 0 {
		return
	}

	parent, _ := a.container(base, path[:len(path)-1], label)
	a.put(parent, path, expr, label)
}

// put writes expr into the child of parent named by the last key of path.
// Whatever was there is overwritten with a warning.
func (a *assembler) put(parent *Node, path []string, expr, label string) {
	n := parent.child(path[len(path)-1])

	if !n.IsEmpty() {
		a.conflict(n, strings.Join(path, "."), label)
		n.reset()
	}

	n.Expr = expr
	a.owner[n] = label
}

func (a *assembler) conflict(n *Node, path, label string) {
	prev, ok := a.owner[n]
	if !ok {
		prev = "nested mappings"
	}

	a.g.log.Debug("conflict", "path", path, "previous", prev, "winner", label)
	a.diags.AddWarning(diagnostic.KindGenerationConflict, path,
		fmt.Sprintf("%s overwrites %s", label, prev))
}
