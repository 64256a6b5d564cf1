package samm

import (
	"strings"
)

// Namespaces shared by every SAMM version.
const (
	RDFNamespace = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	XSDNamespace = "http://www.w3.org/2001/XMLSchema#"

	RDFType  = RDFNamespace + "type"
	RDFFirst = RDFNamespace + "first"
	RDFRest  = RDFNamespace + "rest"
	RDFNil   = RDFNamespace + "nil"

	// RDFLangString is the datatype of language-tagged literals.
	RDFLangString = RDFNamespace + "langString"
)

const sammPrefix = "urn:samm:org.eclipse.esmf.samm:"

// DefaultVersion is the SAMM meta-model version assumed when none is detected.
const DefaultVersion = "2.1.0"

// KnownVersions lists the meta-model versions probed by DetectGraphVersion,
// newest first.
var KnownVersions = []string{"2.2.0", "2.1.0", "2.0.0"}

// Vocabulary holds the SAMM IRIs of one meta-model version.
type Vocabulary struct {
	Version string

	MetaModel      string
	Characteristic string
	Unit           string

	// Classes
	Aspect         string
	Entity         string
	AbstractEntity string
	Property       string

	// Meta-model predicates
	Properties      string
	PropertyRef     string
	Optional        string
	PayloadName     string
	NotInPayload    string
	CharacteristicP string
	DataType        string
	PreferredName   string
	Description     string
	ExampleValue    string

	// Characteristic predicates
	UnitP                 string
	BaseCharacteristic    string
	ElementCharacteristic string

	// Collection characteristic classes
	Collection string
	List       string
	Set        string
	SortedSet  string
	TimeSeries string
}

// NewVocabulary returns the vocabulary for the given meta-model version.
func NewVocabulary(version string) Vocabulary {
	if version == "" {
		version = DefaultVersion
	}

	meta := sammPrefix + "meta-model:" + version + "#"
	char := sammPrefix + "characteristic:" + version + "#"
	unit := sammPrefix + "unit:" + version + "#"

	return Vocabulary{
		Version:        version,
		MetaModel:      meta,
		Characteristic: char,
		Unit:           unit,

		Aspect:         meta + "Aspect",
		Entity:         meta + "Entity",
		AbstractEntity: meta + "AbstractEntity",
		Property:       meta + "Property",

		Properties:      meta + "properties",
		PropertyRef:     meta + "property",
		Optional:        meta + "optional",
		PayloadName:     meta + "payloadName",
		NotInPayload:    meta + "notInPayload",
		CharacteristicP: meta + "characteristic",
		DataType:        meta + "dataType",
		PreferredName:   meta + "preferredName",
		Description:     meta + "description",
		ExampleValue:    meta + "exampleValue",

		UnitP:                 char + "unit",
		BaseCharacteristic:    char + "baseCharacteristic",
		ElementCharacteristic: char + "elementCharacteristic",

		Collection: char + "Collection",
		List:       char + "List",
		Set:        char + "Set",
		SortedSet:  char + "SortedSet",
		TimeSeries: char + "TimeSeries",
	}
}

// IsCollectionKind reports whether class is one of the collection
// characteristic classes.
func (v Vocabulary) IsCollectionKind(class string) bool {
	switch class {
	case v.Collection, v.List, v.Set, v.SortedSet, v.TimeSeries:
		return true
	default:
		return false
	}
}

// IsEntityClass reports whether class denotes a (possibly abstract) entity.
func (v Vocabulary) IsEntityClass(class string) bool {
	return class == v.Entity || class == v.AbstractEntity
}

// DetectVersion returns the SAMM meta-model version used by the first
// Aspect declaration among triples, or DefaultVersion.
func DetectVersion(triples []Triple) string {
	for _, t := range triples {
		if t.Predicate.Value != RDFType || t.Object.Kind != TermIRI {
			continue
		}

		obj := t.Object.Value
		if !strings.HasPrefix(obj, sammPrefix+"meta-model:") || !strings.HasSuffix(obj, "#Aspect") {
			continue
		}

		version := strings.TrimPrefix(obj, sammPrefix+"meta-model:")

		return strings.TrimSuffix(version, "#Aspect")
	}

	return DefaultVersion
}

// DetectGraphVersion probes g for an Aspect of each known meta-model
// version and returns the first one found, or DefaultVersion.
func DetectGraphVersion(g Graph) string {
	for _, version := range KnownVersions {
		if len(g.SubjectsOfType(NewVocabulary(version).Aspect)) > 0 {
			return version
		}
	}

	return DefaultVersion
}

// LocalName extracts the fragment or last path segment of an IRI.
// Examples:
//   - "urn:samm:io.catenax.pcf:7.0.0#pcf" -> "pcf"
//   - "http://www.w3.org/2001/XMLSchema#decimal" -> "decimal"
//   - "http://example.org/units/metre" -> "metre"
func LocalName(iri string) string {
	if i := strings.LastIndexByte(iri, '#'); i >= 0 {
		return iri[i+1:]
	}

	if i := strings.LastIndexByte(iri, '/'); i >= 0 {
		return iri[i+1:]
	}

	return iri
}
