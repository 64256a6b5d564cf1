// Package gen renders a planned mapping as a JSONata transformation and a
// mapping report.
//
// Every entry becomes a fragment over the source document:
//   - direct:              $.pcf.id
//   - type cast:           $number($.pcf.id)
//   - unit conversion:     $round($.speed * 0.27778, 2)
//   - unwrap:              $.pcf.attestations[0].attestationType
//   - wrap:                [$.pcf.id]
//   - element-wise steps:  $.pcf.attestations.($string(attestationType))[]
//
// Multi-valued to multi-valued fragments end in [] so a one-element source
// array stays an array.
//
// Fragments are assembled into a document keyed by target path. Leaves are
// placed first in source declaration order, then composite matches fill the
// nodes that are still empty.
//
// Key functions:
//   - NewGenerator(cfg).Generate: fragments, document, expression, report
//   - Fragment: the standalone expression of one entry
//   - WriteFiles: writes mapping_result.json and transformation.jsonata
package gen
