// Package pipeline wires the stages together: build both models, resolve
// matches and steps, generate the transformation.
//
// RunBatch processes independent model pairs concurrently. Every job gets
// its own configuration and stage instances; nothing is shared.
package pipeline
