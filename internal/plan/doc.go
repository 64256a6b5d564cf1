// Package plan turns matches into a MappingResult: for every accepted match
// it decides the ordered value conversions the generated code must apply.
//
// Resolution pipeline:
//  1. Flatten both models into indices
//  2. Match properties (overrides first, then the cascade)
//  3. For each match, plan steps: type cast, then unit conversion, then
//     structural wrap/unwrap (outermost)
//  4. Summarize confidences and flag low-confidence matches
//
// Gaps never abort a run: a missing cast rule or unit factor becomes a
// warning and the value passes through unconverted.
package plan
