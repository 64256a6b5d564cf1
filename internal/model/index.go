package model

// Entry is one flattened property.
type Entry struct {
	Property *Property
	// Position is the pre-order declaration index within the model.
	Position int
	Path     FieldPath
	// Depth is 0 for top-level properties.
	Depth int
}

// ID returns the property URI.
func (e Entry) ID() string {
	return e.Property.ID
}

// Index is the ordered, addressable view of a model.
type Index struct {
	Model   *Model
	Entries []Entry

	byPath map[string]int
	byID   map[string][]int
}

// NewIndex flattens m depth-first, parent before children.
func NewIndex(m *Model) *Index {
	idx := &Index{
		Model:  m,
		byPath: make(map[string]int),
		byID:   make(map[string][]int),
	}

	var visit func(props []*Property, depth int)

	visit = func(props []*Property, depth int) {
		for _, p := range props {
			pos := len(idx.Entries)
			idx.Entries = append(idx.Entries, Entry{
				Property: p,
				Position: pos,
				Path:     PathOf(p),
				Depth:    depth,
			})

			if _, dup := idx.byPath[p.Path]; !dup {
				idx.byPath[p.Path] = pos
			}

			idx.byID[p.ID] = append(idx.byID[p.ID], pos)

			visit(p.Children, depth+1)
		}
	}

	visit(m.Properties, 0)

	return idx
}

// Len returns the number of entries.
func (idx *Index) Len() int {
	return len(idx.Entries)
}

// ByPath returns the entry at a dotted document path.
func (idx *Index) ByPath(path string) (Entry, bool) {
	pos, ok := idx.byPath[path]
	if !ok {
		return Entry{}, false
	}

	return idx.Entries[pos], true
}

// ByID returns every entry of a property URI, in declaration order.
// A URI occurs more than once when its entity is reused.
func (idx *Index) ByID(id string) []Entry {
	positions := idx.byID[id]
	out := make([]Entry, 0, len(positions))

	for _, pos := range positions {
		out = append(out, idx.Entries[pos])
	}

	return out
}

// Lookup resolves a reference that is either a document path or a property
// URI; a URI resolves to its first occurrence.
func (idx *Index) Lookup(ref string) (Entry, bool) {
	if e, ok := idx.ByPath(ref); ok {
		return e, true
	}

	if fp, err := ParsePath(ref); err == nil {
		if e, ok := idx.ByPath(fp.String()); ok {
			return e, true
		}
	}

	if positions := idx.byID[ref]; len(positions) > 0 {
		return idx.Entries[positions[0]], true
	}

	return Entry{}, false
}
