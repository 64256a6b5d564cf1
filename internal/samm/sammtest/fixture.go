// Package sammtest builds SAMM aspect graphs in memory for tests.
package sammtest

import (
	"fmt"

	"samm-mapper/internal/samm"
)

// Fixture accumulates SAMM statements for one model namespace.
type Fixture struct {
	G     *samm.MemGraph
	V     samm.Vocabulary
	NS    string
	lists int
}

// New creates a fixture whose resources live in namespace ns
// (e.g. "urn:samm:io.example.pcf:1.0.0#").
func New(ns string) *Fixture {
	return &Fixture{
		G:  samm.NewMemGraph(),
		V:  samm.NewVocabulary(samm.DefaultVersion),
		NS: ns,
	}
}

// IRI returns the full IRI of a local name in the fixture namespace.
func (f *Fixture) IRI(local string) string {
	return f.NS + local
}

// XSD returns the XML Schema IRI of a primitive type name.
func XSD(name string) string {
	return samm.XSDNamespace + name
}

// Ref is a reference to a property inside a samm:properties list.
type Ref struct {
	Name         string
	Optional     bool
	PayloadName  string
	NotInPayload bool
}

// P is a plain property reference.
func P(name string) Ref { return Ref{Name: name} }

// Opt marks the reference optional.
func (r Ref) Opt() Ref {
	r.Optional = true
	return r
}

// As sets a payload name for the reference.
func (r Ref) As(payload string) Ref {
	r.PayloadName = payload
	return r
}

// Hidden marks the reference samm:notInPayload.
func (r Ref) Hidden() Ref {
	r.NotInPayload = true
	return r
}

// Aspect declares the aspect root with its ordered properties.
func (f *Fixture) Aspect(name string, props ...Ref) samm.Term {
	return f.owner(name, f.V.Aspect, props)
}

// Entity declares an entity with its ordered properties.
func (f *Fixture) Entity(name string, props ...Ref) samm.Term {
	return f.owner(name, f.V.Entity, props)
}

func (f *Fixture) owner(name, class string, props []Ref) samm.Term {
	s := samm.IRI(f.IRI(name))
	f.G.AddStatement(s, samm.RDFType, samm.IRI(class))

	items := make([]samm.Term, 0, len(props))
	for _, r := range props {
		items = append(items, f.listItem(r))
	}

	f.lists++
	head := f.G.AddList(fmt.Sprintf("%s_props%d", name, f.lists), items...)
	f.G.AddStatement(s, f.V.Properties, head)

	return s
}

func (f *Fixture) listItem(r Ref) samm.Term {
	prop := samm.IRI(f.IRI(r.Name))
	if !r.Optional && r.PayloadName == "" && !r.NotInPayload {
		return prop
	}

	f.lists++
	node := samm.Blank(fmt.Sprintf("ref_%s_%d", r.Name, f.lists))
	f.G.AddStatement(node, f.V.PropertyRef, prop)

	if r.Optional {
		f.G.AddStatement(node, f.V.Optional, samm.TypedLiteral("true", XSD("boolean")))
	}

	if r.PayloadName != "" {
		f.G.AddStatement(node, f.V.PayloadName, samm.Literal(r.PayloadName))
	}

	if r.NotInPayload {
		f.G.AddStatement(node, f.V.NotInPayload, samm.TypedLiteral("true", XSD("boolean")))
	}

	return node
}

// Prop describes a samm:Property.
type Prop struct {
	PreferredName  string
	Description    string
	Characteristic string // local name in the fixture namespace or a full IRI
	DataType       string // optional data type declared on the property itself
	ExampleValue   string
}

// Property declares a property.
func (f *Fixture) Property(name string, p Prop) samm.Term {
	s := samm.IRI(f.IRI(name))
	f.G.AddStatement(s, samm.RDFType, samm.IRI(f.V.Property))

	if p.PreferredName != "" {
		f.G.AddStatement(s, f.V.PreferredName, samm.LangLiteral(p.PreferredName, "en"))
	}

	if p.Description != "" {
		f.G.AddStatement(s, f.V.Description, samm.LangLiteral(p.Description, "en"))
	}

	if p.Characteristic != "" {
		f.G.AddStatement(s, f.V.CharacteristicP, samm.IRI(f.resolve(p.Characteristic)))
	}

	if p.DataType != "" {
		f.G.AddStatement(s, f.V.DataType, samm.IRI(f.resolve(p.DataType)))
	}

	if p.ExampleValue != "" {
		f.G.AddStatement(s, f.V.ExampleValue, samm.Literal(p.ExampleValue))
	}

	return s
}

// Char describes a characteristic.
type Char struct {
	// Kind is the characteristic class local name in the SAMM characteristic
	// namespace ("List", "Measurement", "SingleEntity", ...). Empty means
	// samm:Characteristic.
	Kind string
	// DataType is an XSD IRI, a fixture-local entity name or a full IRI.
	DataType string
	// Unit is a unit local name in the SAMM unit namespace.
	Unit string
	// Base is the base characteristic of a Trait.
	Base string
	// Element is the element characteristic of a collection.
	Element string
}

// Characteristic declares a characteristic.
func (f *Fixture) Characteristic(name string, c Char) samm.Term {
	s := samm.IRI(f.IRI(name))

	class := f.V.MetaModel + "Characteristic"
	if c.Kind != "" {
		class = f.V.Characteristic + c.Kind
	}

	f.G.AddStatement(s, samm.RDFType, samm.IRI(class))

	if c.DataType != "" {
		f.G.AddStatement(s, f.V.DataType, samm.IRI(f.resolve(c.DataType)))
	}

	if c.Unit != "" {
		f.G.AddStatement(s, f.V.UnitP, samm.IRI(f.V.Unit+c.Unit))
	}

	if c.Base != "" {
		f.G.AddStatement(s, f.V.BaseCharacteristic, samm.IRI(f.resolve(c.Base)))
	}

	if c.Element != "" {
		f.G.AddStatement(s, f.V.ElementCharacteristic, samm.IRI(f.resolve(c.Element)))
	}

	return s
}

// Simple declares a property together with a dedicated characteristic of
// the given XSD type name.
func (f *Fixture) Simple(name, preferred, xsdType string) samm.Term {
	charName := "T_" + name
	f.Characteristic(charName, Char{DataType: XSD(xsdType)})

	return f.Property(name, Prop{PreferredName: preferred, Characteristic: charName})
}

// resolve turns a fixture-local name into an IRI; full IRIs pass through.
func (f *Fixture) resolve(name string) string {
	for i := 0; i < len(name); i++ {
		if name[i] == ':' {
			return name
		}
	}

	return f.IRI(name)
}
