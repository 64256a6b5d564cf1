package samm

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/knakk/rdf"
)

// ReadTurtle decodes a Turtle document into a MemGraph.
func ReadTurtle(r io.Reader) (*MemGraph, error) {
	dec := rdf.NewTripleDecoder(r, rdf.Turtle)

	triples, err := dec.DecodeAll()
	if err != nil {
		return nil, fmt.Errorf("decoding turtle: %w", err)
	}

	g := NewMemGraph()
	for _, t := range triples {
		g.Add(Triple{
			Subject:   convertTerm(t.Subj),
			Predicate: convertTerm(t.Pred),
			Object:    convertTerm(t.Obj),
		})
	}

	return g, nil
}

// LoadFile reads and decodes a Turtle file.
func LoadFile(path string) (*MemGraph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model file %s: %w", path, err)
	}

	g, err := ReadTurtle(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

func convertTerm(t rdf.Term) Term {
	switch t.Type() {
	case rdf.TermIRI:
		return IRI(t.String())
	case rdf.TermBlank:
		return Blank(t.String())
	default:
		lit, ok := t.(rdf.Literal)
		if !ok {
			return Literal(t.String())
		}

		if lang := lit.Lang(); lang != "" {
			return LangLiteral(lit.String(), lang)
		}

		return TypedLiteral(lit.String(), lit.DataType.String())
	}
}
