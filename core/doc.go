// Package core provides the fundamental value types of gridhood:
// grid positions under the Manhattan metric, and deduplicating,
// insertion-ordered position sets.
//
// What:
//
//   - Position — a comparable (Row, Column) value type with Manhattan
//     distance and translation.
//   - PositionSet — a mutable set of unique positions that remembers
//     insertion order; the accumulator every neighborhood union is
//     built in.
//
// Why:
//
//   - Positions are plain comparable structs: structural equality,
//     free map-key hashing, copy-by-value semantics.
//   - Insertion order makes set iteration deterministic, which keeps
//     examples and debugging reproducible without affecting set
//     semantics.
//
// Complexity:
//
//   - ManhattanDistance, Translate: O(1).
//   - PositionSet Add / Contains / Len: O(1) amortized; Clear: O(n);
//     Positions: O(n) copy.
//
// PositionSet is owned by a single caller and is not safe for
// concurrent use; Position values may be shared freely.
package core
