package model

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"samm-mapper/internal/samm"
)

// DefaultMaxDepth bounds property nesting and characteristic chains.
const DefaultMaxDepth = 32

// BuilderConfig controls model building.
type BuilderConfig struct {
	// MaxDepth aborts expansion deeper than this many property levels.
	MaxDepth int
	// Version pins the SAMM meta-model version; empty means detect.
	Version string
	// Logger receives debug output; nil discards it.
	Logger *log.Logger
}

// DefaultBuilderConfig returns the default configuration.
func DefaultBuilderConfig() BuilderConfig {
	return BuilderConfig{MaxDepth: DefaultMaxDepth}
}

// Builder turns a SAMM graph into a Model.
type Builder struct {
	g   samm.Graph
	cfg BuilderConfig
	v   samm.Vocabulary
	log *log.Logger

	composites   []Composite
	compositeIdx map[string]int
}

// NewBuilder creates a builder over g.
func NewBuilder(g samm.Graph, cfg BuilderConfig) *Builder {
	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = DefaultMaxDepth
	}

	version := cfg.Version
	if version == "" {
		version = samm.DetectGraphVersion(g)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Builder{
		g:            g,
		cfg:          cfg,
		v:            samm.NewVocabulary(version),
		log:          logger,
		compositeIdx: make(map[string]int),
	}
}

// Build builds g with the default configuration.
func Build(g samm.Graph) (*Model, error) {
	return NewBuilder(g, DefaultBuilderConfig()).Build()
}

// propertyRef is one item of a samm:properties list.
type propertyRef struct {
	term        samm.Term
	optional    bool
	payloadName string
}

// characteristicInfo is what the builder needs from a characteristic chain.
type characteristicInfo struct {
	kind           string
	dataType       samm.Term
	unit           string
	collection     bool
	collectionKind string
}

// Build expands the single aspect of the graph.
func (b *Builder) Build() (*Model, error) {
	roots := b.g.SubjectsOfType(b.v.Aspect)

	switch len(roots) {
	case 0:
		return nil, &StructuralError{
			Kind:   KindMissingRoot,
			Detail: "no resource typed " + b.v.Aspect,
		}
	case 1:
	default:
		ids := make([]string, 0, len(roots))
		for _, r := range roots {
			ids = append(ids, r.Value)
		}

		return nil, &StructuralError{
			Kind:   KindDuplicateRoot,
			Detail: fmt.Sprintf("%d aspects declared: %s", len(roots), strings.Join(ids, ", ")),
		}
	}

	root := roots[0]

	m := &Model{
		ID:            root.Value,
		Name:          samm.LocalName(root.Value),
		PreferredName: b.text(root, b.v.PreferredName),
		Description:   b.text(root, b.v.Description),
		Version:       b.v.Version,
	}

	refs, err := b.propertyRefs(root, "")
	if err != nil {
		return nil, err
	}

	props, err := b.expand(refs, nil, "", make(map[string]bool), 1, false)
	if err != nil {
		return nil, err
	}

	m.Properties = props
	m.Composites = b.composites

	b.log.Debug("model built", "aspect", m.Name, "properties", m.Count(), "composites", len(m.Composites))

	return m, nil
}

func (b *Builder) expand(
	refs []propertyRef,
	parent *Property,
	parentPath string,
	visited map[string]bool,
	depth int,
	arrayElement bool,
) ([]*Property, error) {
	props := make([]*Property, 0, len(refs))

	for _, ref := range refs {
		p, err := b.expandProperty(ref, parent, parentPath, visited, depth, arrayElement)
		if err != nil {
			return nil, err
		}

		props = append(props, p)
	}

	return props, nil
}

func (b *Builder) expandProperty(
	ref propertyRef,
	parent *Property,
	parentPath string,
	visited map[string]bool,
	depth int,
	arrayElement bool,
) (*Property, error) {
	id := ref.term.Value

	p := &Property{
		ID:            id,
		LocalName:     samm.LocalName(id),
		PreferredName: b.text(ref.term, b.v.PreferredName),
		Description:   b.text(ref.term, b.v.Description),
		PayloadName:   ref.payloadName,
		Optional:      ref.optional,
		ArrayElement:  arrayElement,
		Parent:        parent,
		Composite:     -1,
	}

	p.Path = p.Key()
	if parentPath != "" {
		p.Path = parentPath + "." + p.Key()
	}

	if depth > b.cfg.MaxDepth {
		return nil, &StructuralError{
			Kind:     KindMaxDepthExceeded,
			Resource: id,
			Path:     p.Path,
			Detail:   fmt.Sprintf("nesting deeper than %d levels", b.cfg.MaxDepth),
		}
	}

	if ex, ok := samm.Value(b.g, ref.term, b.v.ExampleValue); ok {
		p.ExampleValue = ex.Value
	}

	dataType, hasType := samm.Value(b.g, ref.term, b.v.DataType)

	if char, ok := samm.Value(b.g, ref.term, b.v.CharacteristicP); ok {
		info, err := b.characteristic(char, p.Path)
		if err != nil {
			return nil, err
		}

		p.Characteristic = char.Value
		p.CharacteristicKind = info.kind
		p.Unit = info.unit
		p.Collection = info.collection
		p.CollectionKind = info.collectionKind

		if !hasType && !info.dataType.IsZero() {
			dataType, hasType = info.dataType, true
		}
	}

	if !hasType {
		return p, nil
	}

	if !b.isEntity(dataType) {
		p.DataType = samm.LocalName(dataType.Value)

		return p, nil
	}

	p.DataType = CompositeType

	if visited[dataType.Value] {
		return nil, &StructuralError{
			Kind:     KindCyclicComposite,
			Resource: dataType.Value,
			Path:     p.Path,
			Detail:   "entity references itself through " + p.Path,
		}
	}

	idx, err := b.composite(dataType, p.Path)
	if err != nil {
		return nil, err
	}

	p.Composite = idx

	refs, err := b.propertyRefs(dataType, p.Path)
	if err != nil {
		return nil, err
	}

	b.log.Debug("expanding entity", "entity", samm.LocalName(dataType.Value), "path", p.Path)

	visited[dataType.Value] = true

	children, err := b.expand(refs, p, p.Path, visited, depth+1, arrayElement || p.Collection)

	delete(visited, dataType.Value)

	if err != nil {
		return nil, err
	}

	p.Children = children

	return p, nil
}

// characteristic follows the base/element characteristic chain of c.
// Collection-ness comes from c and its Trait bases only; an element
// characteristic describes the items, not the property.
func (b *Builder) characteristic(c samm.Term, path string) (characteristicInfo, error) {
	var info characteristicInfo

	if types := b.g.Types(c); len(types) > 0 {
		info.kind = samm.LocalName(types[0])
	}

	seen := make(map[samm.Term]bool)
	viaElement := false

	for steps := 0; !c.IsZero(); steps++ {
		if steps > b.cfg.MaxDepth || seen[c] {
			return info, &StructuralError{
				Kind:     KindMaxDepthExceeded,
				Resource: c.Value,
				Path:     path,
				Detail:   "characteristic chain does not terminate",
			}
		}

		seen[c] = true

		if !viaElement && !info.collection {
			for _, t := range b.g.Types(c) {
				if b.v.IsCollectionKind(t) {
					info.collection = true
					info.collectionKind = samm.LocalName(t)

					break
				}
			}
		}

		if info.unit == "" {
			if u, ok := samm.Value(b.g, c, b.v.UnitP); ok {
				info.unit = samm.LocalName(u.Value)
			}
		}

		if info.dataType.IsZero() {
			if dt, ok := samm.Value(b.g, c, b.v.DataType); ok {
				info.dataType = dt
			}
		}

		if base, ok := samm.Value(b.g, c, b.v.BaseCharacteristic); ok {
			c = base

			continue
		}

		if !info.dataType.IsZero() {
			break
		}

		elem, ok := samm.Value(b.g, c, b.v.ElementCharacteristic)
		if !ok {
			break
		}

		c = elem
		viaElement = true
	}

	return info, nil
}

func (b *Builder) isEntity(t samm.Term) bool {
	for _, class := range b.g.Types(t) {
		if b.v.IsEntityClass(class) {
			return true
		}
	}

	return false
}

// composite returns the arena index of entity e, registering it first.
func (b *Builder) composite(e samm.Term, path string) (int, error) {
	if idx, ok := b.compositeIdx[e.Value]; ok {
		return idx, nil
	}

	refs, err := b.propertyRefs(e, path)
	if err != nil {
		return -1, err
	}

	c := Composite{
		ID:            e.Value,
		LocalName:     samm.LocalName(e.Value),
		PreferredName: b.text(e, b.v.PreferredName),
		Description:   b.text(e, b.v.Description),
		Abstract:      samm.HasType(b.g, e, b.v.AbstractEntity),
		PropertyIDs:   make([]string, 0, len(refs)),
	}

	for _, r := range refs {
		c.PropertyIDs = append(c.PropertyIDs, r.term.Value)
	}

	b.composites = append(b.composites, c)
	b.compositeIdx[e.Value] = len(b.composites) - 1

	return len(b.composites) - 1, nil
}

// propertyRefs reads the samm:properties list of s. Items marked
// samm:notInPayload are dropped.
func (b *Builder) propertyRefs(s samm.Term, path string) ([]propertyRef, error) {
	head, ok := samm.Value(b.g, s, b.v.Properties)
	if !ok {
		return nil, nil
	}

	items, err := b.g.List(head)
	if err != nil {
		return nil, &StructuralError{
			Kind:     KindInvalidList,
			Resource: s.Value,
			Path:     path,
			Detail:   "unreadable samm:properties",
			Err:      err,
		}
	}

	refs := make([]propertyRef, 0, len(items))

	for _, item := range items {
		if item.IsIRI() {
			refs = append(refs, propertyRef{term: item})

			continue
		}

		prop, ok := samm.Value(b.g, item, b.v.PropertyRef)
		if !ok {
			return nil, &StructuralError{
				Kind:     KindInvalidList,
				Resource: s.Value,
				Path:     path,
				Detail:   "property list item " + item.String() + " has no samm:property",
			}
		}

		if b.flag(item, b.v.NotInPayload) {
			continue
		}

		ref := propertyRef{term: prop, optional: b.flag(item, b.v.Optional)}
		if pn, ok := samm.Value(b.g, item, b.v.PayloadName); ok {
			ref.payloadName = pn.Value
		}

		refs = append(refs, ref)
	}

	return refs, nil
}

func (b *Builder) flag(s samm.Term, predicate string) bool {
	v, ok := samm.Value(b.g, s, predicate)

	return ok && strings.EqualFold(v.Value, "true")
}

// text returns the English literal of (s, predicate), else the first
// untagged one.
func (b *Builder) text(s samm.Term, predicate string) string {
	fallback := ""

	for _, o := range b.g.Objects(s, predicate) {
		if o.Kind != samm.TermLiteral {
			continue
		}

		if o.Lang == "en" {
			return o.Value
		}

		if o.Lang == "" && fallback == "" {
			fallback = o.Value
		}
	}

	return fallback
}
