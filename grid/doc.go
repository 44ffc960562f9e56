// Package grid models the rectangular board a neighborhood calculation
// runs over: height × width cells plus an ordered list of designated
// "positive" cells.
//
// What:
//
//   - Grid — immutable dimensions and positive cells; New deep-copies
//     its input so the caller's buffer stays decoupled.
//   - IsValidPosition — the [0,height) × [0,width) bounds predicate.
//   - ValidatePositions — on-demand check that every stored positive
//     cell is in bounds.
//
// Why the split: construction validates structural invariants only
// (strictly positive dimensions); whether the positive cells actually
// fit inside the grid is a semantic question deferred to the consumer,
// so a Grid holding out-of-bounds positives can exist transiently and
// is rejected by the neighborhood calculator, not here. Positive cells
// are not deduplicated either — duplicates are legal and merely mean
// redundant downstream work.
//
// Complexity:
//
//   - New: O(P) time and memory for P positive cells.
//   - IsValidPosition, Height, Width, Diameter, CellCount: O(1).
//   - ValidatePositions: O(P).
//
// Errors:
//
//   - ErrInvalidDimensions: height or width not strictly positive.
package grid
