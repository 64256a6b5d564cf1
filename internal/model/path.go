package model

import (
	"errors"
	"fmt"
	"strings"
)

// PathSegment is one key of a document path.
type PathSegment struct {
	// Name is the JSON key.
	Name string

	// Collection marks a segment whose value is a sequence (e.g. "attestations[]").
	Collection bool
}

// FieldPath is a parsed document path like "pcf.attestations[].attestationType".
type FieldPath struct {
	Segments []PathSegment
}

// ParsePath parses dotted or notation form.
// Supports: "a", "a.b", "a[]", "a[].b".
func ParsePath(path string) (FieldPath, error) {
	if path == "" {
		return FieldPath{}, errors.New("empty path")
	}

	var segments []PathSegment

	for part := range strings.SplitSeq(path, ".") {
		if part == "" {
			return FieldPath{}, fmt.Errorf("invalid path %q: empty segment", path)
		}

		name, coll := strings.CutSuffix(part, "[]")
		if name == "" {
			return FieldPath{}, fmt.Errorf("invalid path %q: collection without key", path)
		}

		if strings.ContainsAny(name, "[]") {
			return FieldPath{}, fmt.Errorf("invalid path %q: unexpected bracket in %q", path, part)
		}

		segments = append(segments, PathSegment{Name: name, Collection: coll})
	}

	return FieldPath{Segments: segments}, nil
}

// PathOf builds the FieldPath of p from its ancestors.
func PathOf(p *Property) FieldPath {
	var chain []*Property
	for cur := p; cur != nil; cur = cur.Parent {
		chain = append(chain, cur)
	}

	segments := make([]PathSegment, 0, len(chain))
	for i := len(chain) - 1; i >= 0; i-- {
		segments = append(segments, PathSegment{Name: chain[i].Key(), Collection: chain[i].Collection})
	}

	return FieldPath{Segments: segments}
}

// String returns the dotted document path without collection markers.
func (p FieldPath) String() string {
	var sb strings.Builder

	for i, seg := range p.Segments {
		if i > 0 {
			sb.WriteString(".")
		}

		sb.WriteString(seg.Name)
	}

	return sb.String()
}

// Notation returns the path with "[]" after collection segments.
func (p FieldPath) Notation() string {
	var sb strings.Builder

	for i, seg := range p.Segments {
		if i > 0 {
			sb.WriteString(".")
		}

		sb.WriteString(seg.Name)

		if seg.Collection {
			sb.WriteString("[]")
		}
	}

	return sb.String()
}

// Len returns the number of segments.
func (p FieldPath) Len() int {
	return len(p.Segments)
}

// IsEmpty returns true if the path has no segments.
func (p FieldPath) IsEmpty() bool {
	return len(p.Segments) == 0
}

// Parent returns the path without its last segment.
func (p FieldPath) Parent() FieldPath {
	if len(p.Segments) == 0 {
		return p
	}

	return FieldPath{Segments: p.Segments[:len(p.Segments)-1]}
}

// Last returns the final segment.
func (p FieldPath) Last() PathSegment {
	if len(p.Segments) == 0 {
		return PathSegment{}
	}

	return p.Segments[len(p.Segments)-1]
}

// Prefix returns the first n segments.
func (p FieldPath) Prefix(n int) FieldPath {
	if n >= len(p.Segments) {
		return p
	}

	return FieldPath{Segments: p.Segments[:n]}
}

// LastCollection returns the index of the deepest collection segment, or -1.
func (p FieldPath) LastCollection() int {
	for i := len(p.Segments) - 1; i >= 0; i-- {
		if p.Segments[i].Collection {
			return i
		}
	}

	return -1
}

// Equals returns true if two paths are equal, collection markers included.
func (p FieldPath) Equals(other FieldPath) bool {
	if len(p.Segments) != len(other.Segments) {
		return false
	}

	for i, seg := range p.Segments {
		if seg != other.Segments[i] {
			return false
		}
	}

	return true
}
