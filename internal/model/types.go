package model

// CompositeType is the DataType of properties whose value is an entity.
const CompositeType = "composite"

// Property is one named, typed field of a model.
type Property struct {
	ID                 string
	LocalName          string
	PreferredName      string
	Description        string
	Characteristic     string
	CharacteristicKind string
	DataType           string
	Unit               string
	PayloadName        string
	ExampleValue       string
	Optional           bool

	// Collection is set when the characteristic is a collection kind.
	Collection     bool
	CollectionKind string
	// ArrayElement is set on every descendant of a collection property.
	ArrayElement bool

	// Path is the dotted document path, e.g. "pcf.dataQualityRating.technologicalDQR".
	Path string

	// Parent is a lookup-only back-reference; nil for top-level properties.
	Parent *Property
	// Composite indexes Model.Composites, or -1.
	Composite int
	Children  []*Property
}

// Key returns the JSON key of the property.
func (p *Property) Key() string {
	if p.PayloadName != "" {
		return p.PayloadName
	}

	return p.LocalName
}

// IsComposite reports whether the property wraps an entity.
func (p *Property) IsComposite() bool {
	return p.Composite >= 0
}

// MultiValued reports whether the property's value is a sequence in a
// document instance, either itself or through a collection ancestor.
func (p *Property) MultiValued() bool {
	return p.Collection || p.ArrayElement
}

// Composite is a shared entity declaration.
type Composite struct {
	ID            string
	LocalName     string
	PreferredName string
	Description   string
	Abstract      bool
	// PropertyIDs lists the entity's declared properties in order.
	PropertyIDs []string
}

// Model is the built aspect.
type Model struct {
	ID            string
	Name          string
	PreferredName string
	Description   string
	Version       string

	Properties []*Property
	Composites []Composite
}

// Walk visits every property in pre-order, declaration order.
// Returning false from fn skips the property's children.
func (m *Model) Walk(fn func(p *Property) bool) {
	var visit func(props []*Property)

	visit = func(props []*Property) {
		for _, p := range props {
			if fn(p) {
				visit(p.Children)
			}
		}
	}

	visit(m.Properties)
}

// Count returns the number of properties in the tree.
func (m *Model) Count() int {
	n := 0

	m.Walk(func(*Property) bool {
		n++

		return true
	})

	return n
}

// CompositeOf returns the composite referenced by p.
func (m *Model) CompositeOf(p *Property) (Composite, bool) {
	if p.Composite < 0 || p.Composite >= len(m.Composites) {
		return Composite{}, false
	}

	return m.Composites[p.Composite], true
}
