package samm

import (
	"errors"
	"fmt"
)

// ErrMalformedList is returned when an RDF list is cyclic or lacks rdf:first.
var ErrMalformedList = errors.New("malformed rdf list")

// TermKind distinguishes IRIs, blank nodes and literals.
type TermKind int

const (
	TermIRI TermKind = iota
	TermBlank
	TermLiteral
)

// Term is one node of a statement.
type Term struct {
	Kind     TermKind
	Value    string // IRI, blank node label or literal lexical form
	Lang     string // language tag of literals
	Datatype string // datatype IRI of typed literals
}

// IRI returns an IRI term.
func IRI(value string) Term { return Term{Kind: TermIRI, Value: value} }

// Blank returns a blank node term.
func Blank(label string) Term { return Term{Kind: TermBlank, Value: label} }

// Literal returns a plain literal term.
func Literal(value string) Term { return Term{Kind: TermLiteral, Value: value} }

// LangLiteral returns a language-tagged literal term.
func LangLiteral(value, lang string) Term {
	return Term{Kind: TermLiteral, Value: value, Lang: lang, Datatype: RDFLangString}
}

// TypedLiteral returns a literal term with a datatype IRI.
func TypedLiteral(value, datatype string) Term {
	return Term{Kind: TermLiteral, Value: value, Datatype: datatype}
}

// IsIRI reports whether t is an IRI.
func (t Term) IsIRI() bool { return t.Kind == TermIRI }

// IsZero reports whether t is the zero Term.
func (t Term) IsZero() bool { return t == Term{} }

// String returns a Turtle-like rendering of the term.
func (t Term) String() string {
	switch t.Kind {
	case TermIRI:
		return "<" + t.Value + ">"
	case TermBlank:
		return "_:" + t.Value
	default:
		if t.Lang != "" {
			return fmt.Sprintf("%q@%s", t.Value, t.Lang)
		}

		if t.Datatype != "" {
			return fmt.Sprintf("%q^^<%s>", t.Value, t.Datatype)
		}

		return fmt.Sprintf("%q", t.Value)
	}
}

// Triple is a subject/predicate/object statement.
type Triple struct {
	Subject   Term
	Predicate Term
	Object    Term
}

// Graph is the read-only view of a parsed semantic graph consumed by the
// model builder.
type Graph interface {
	// Statements returns every statement whose subject is s, in insertion order.
	Statements(s Term) []Triple
	// Objects returns the objects of (s, predicate, ?) in insertion order.
	Objects(s Term, predicate string) []Term
	// SubjectsOfType returns the subjects typed with class, deduplicated.
	SubjectsOfType(class string) []Term
	// Types returns the rdf:type IRIs of s.
	Types(s Term) []string
	// List resolves an RDF collection starting at head.
	List(head Term) ([]Term, error)
}

// Value returns the first object of (s, predicate, ?).
func Value(g Graph, s Term, predicate string) (Term, bool) {
	objs := g.Objects(s, predicate)
	if len(objs) == 0 {
		return Term{}, false
	}

	return objs[0], true
}

// HasType reports whether s is typed with class.
func HasType(g Graph, s Term, class string) bool {
	for _, t := range g.Types(s) {
		if t == class {
			return true
		}
	}

	return false
}

// MemGraph is an in-memory, insertion-ordered triple store.
type MemGraph struct {
	triples   []Triple
	bySubject map[Term][]int
	seen      map[Triple]bool
}

// NewMemGraph creates a graph holding the given triples.
func NewMemGraph(triples ...Triple) *MemGraph {
	g := &MemGraph{
		bySubject: make(map[Term][]int),
		seen:      make(map[Triple]bool),
	}

	for _, t := range triples {
		g.Add(t)
	}

	return g
}

// Add inserts a statement. Duplicate statements are ignored.
func (g *MemGraph) Add(t Triple) {
	if g.seen[t] {
		return
	}

	g.seen[t] = true
	g.bySubject[t.Subject] = append(g.bySubject[t.Subject], len(g.triples))
	g.triples = append(g.triples, t)
}

// AddStatement is shorthand for Add with an IRI predicate.
func (g *MemGraph) AddStatement(s Term, predicate string, o Term) {
	g.Add(Triple{Subject: s, Predicate: IRI(predicate), Object: o})
}

// AddList adds an RDF collection holding items and returns its head.
// An empty list is rdf:nil. Blank node labels are derived from prefix.
func (g *MemGraph) AddList(prefix string, items ...Term) Term {
	head := IRI(RDFNil)

	for i := len(items) - 1; i >= 0; i-- {
		node := Blank(fmt.Sprintf("%s_%d", prefix, i))
		g.AddStatement(node, RDFFirst, items[i])
		g.AddStatement(node, RDFRest, head)
		head = node
	}

	return head
}

// Len returns the number of statements.
func (g *MemGraph) Len() int {
	return len(g.triples)
}

// Triples returns a copy of all statements in insertion order.
func (g *MemGraph) Triples() []Triple {
	out := make([]Triple, len(g.triples))
	copy(out, g.triples)

	return out
}

// Statements implements Graph.
func (g *MemGraph) Statements(s Term) []Triple {
	idx := g.bySubject[s]
	out := make([]Triple, 0, len(idx))

	for _, i := range idx {
		out = append(out, g.triples[i])
	}

	return out
}

// Objects implements Graph.
func (g *MemGraph) Objects(s Term, predicate string) []Term {
	var out []Term

	for _, i := range g.bySubject[s] {
		t := g.triples[i]
		if t.Predicate.Value == predicate {
			out = append(out, t.Object)
		}
	}

	return out
}

// SubjectsOfType implements Graph.
func (g *MemGraph) SubjectsOfType(class string) []Term {
	var out []Term

	seen := make(map[Term]bool)

	for _, t := range g.triples {
		if t.Predicate.Value != RDFType || t.Object.Value != class || t.Object.Kind != TermIRI {
			continue
		}

		if seen[t.Subject] {
			continue
		}

		seen[t.Subject] = true
		out = append(out, t.Subject)
	}

	return out
}

// Types implements Graph.
func (g *MemGraph) Types(s Term) []string {
	var out []string

	for _, o := range g.Objects(s, RDFType) {
		if o.Kind == TermIRI {
			out = append(out, o.Value)
		}
	}

	return out
}

// List implements Graph.
func (g *MemGraph) List(head Term) ([]Term, error) {
	var items []Term

	visited := make(map[Term]bool)
	node := head

	for !(node.Kind == TermIRI && node.Value == RDFNil) {
		if visited[node] {
			return nil, fmt.Errorf("%w: cycle at %s", ErrMalformedList, node)
		}

		visited[node] = true

		first, ok := Value(g, node, RDFFirst)
		if !ok {
			return nil, fmt.Errorf("%w: %s has no rdf:first", ErrMalformedList, node)
		}

		items = append(items, first)

		rest, ok := Value(g, node, RDFRest)
		if !ok {
			return nil, fmt.Errorf("%w: %s has no rdf:rest", ErrMalformedList, node)
		}

		node = rest
	}

	return items, nil
}
