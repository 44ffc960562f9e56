// Package neighborhood computes, for a rectangular grid and its
// positive cells, the union of radius-N Manhattan balls ("diamonds")
// clipped to grid bounds — either the cell set itself or its size.
//
// What:
//
//   - Cells — the authoritative operation: the deduplicated union of
//     every positive cell's diamond, insertion-ordered.
//   - Count — Cells(...).Len() without keeping the set.
//   - WithinBounds — the boundary predicate the diamond walk clips
//     against.
//   - DiamondSize — closed form (r+1)² + r² for an unclipped diamond,
//     handy as an oracle when a full diamond is known to fit.
//
// Why:
//
//   - Coverage analysis: how much of a map do N-step patrols reach?
//   - Influence zones: union area of taxicab-range effects without
//     double counting overlap.
//   - Flood-fill budgeting: candidate volume before materializing a
//     full breadth-first expansion.
//
// Validation short-circuits in order: nil or degenerate grid →
// grid.ErrInvalidDimensions; negative threshold → ErrNegativeThreshold;
// a positive cell out of bounds → ErrPositionOutOfBounds; an invalid
// Option → ErrOptionViolation. A grid with no positive cells yields the
// empty set — a valid outcome, not an error.
//
// Saturation: when the threshold reaches the grid's own diameter,
// (height-1)+(width-1), a single positive cell's diamond already spans
// every cell, so the result is the whole grid without enumerating
// per-cell diamonds. The comparison is >= and requires at least one
// positive cell.
//
// Complexity:
//
//   - General path: O(P·N²) candidate generations for P positive cells
//     and threshold N, independent of grid area.
//   - Saturation path: O(height × width).
//
// Errors:
//
//   - grid.ErrInvalidDimensions: nil grid, or height/width not strictly positive.
//   - ErrNegativeThreshold: distance threshold below zero.
//   - ErrPositionOutOfBounds: a positive cell outside [0,height) × [0,width).
//   - ErrOptionViolation: an invalid Option was supplied.
package neighborhood
