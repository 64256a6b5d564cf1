// Package samm is the boundary between the mapper and parsed semantic
// graphs.
//
// It defines the Graph interface the model builder consumes (statements,
// RDF list resolution and type lookup), the SAMM vocabulary IRIs, an
// in-memory triple store (MemGraph) and a Turtle reader backed by
// github.com/knakk/rdf.
//
// Key types:
//   - Term, Triple: subject/predicate/object statements
//   - Graph: read-only view used by model.Builder
//   - MemGraph: insertion-ordered triple store
//   - Vocabulary: SAMM meta-model IRIs for one meta-model version
package samm
