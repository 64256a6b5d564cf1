// Package match computes a one-to-one correspondence between the properties
// of two flattened models.
//
// Each source property is tried, in declaration order, against the targets
// nobody has claimed yet using a fixed cascade:
//
//  1. explicit override        1.0
//  2. characteristic match     0.9
//  3. preferred name match     0.8
//  4. local name match         0.7
//  5. description similarity   0.6..0.7
//
// The highest applicable level wins; within a level the first target in
// declaration order wins. A claimed target is never offered again.
//
// Key functions:
//   - Normalize: canonical form of display names
//   - Levenshtein, DiceCoefficient: description similarity building blocks
//   - NewEngine(...).Match: runs the cascade over two model indices
package match
