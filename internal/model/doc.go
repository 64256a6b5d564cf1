// Package model builds the immutable hierarchical view of a SAMM aspect
// model and flattens it into an addressable property index.
//
// A Model owns its top-level properties; each property owns its children.
// Entities are stored once in the model's composite arena and referenced by
// index, so an entity reused from several branches is expanded separately
// per branch while its declaration is shared.
//
// Example:
//
//	g, err := samm.LoadFile("pcf.ttl")
//	if err != nil {
//		return err
//	}
//
//	m, err := model.NewBuilder(g, model.DefaultBuilderConfig()).Build()
//	if err != nil {
//		return err // *model.StructuralError
//	}
//
//	idx := model.NewIndex(m)
//	e, _ := idx.ByPath("pcf.dataQualityRating.technologicalDQR")
package model
