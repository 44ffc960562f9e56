// Package gridhood answers one geometric question fast and exactly:
// given a rectangular grid and a set of designated "positive" cells,
// how many distinct cells lie within a Manhattan-distance threshold of
// at least one of them?
//
// 🚀 What is gridhood?
//
//	A small, deterministic library for diamond-neighborhood analysis:
//		• Core primitives: grid positions with Manhattan metric, deduplicating position sets
//		• Grid model: dimensions + positive cells, construction and bounds validation
//		• Neighborhood calculator: union of clipped Manhattan balls, counted or enumerated
//		• Saturation fast path: thresholds at or past the grid diameter resolve analytically
//
// ✨ Why choose gridhood?
//
//   - Exact semantics – validation order, edge cases and the saturation
//     shortcut are pinned down and tested, not improvised
//   - Pure Go – no cgo, no hidden deps, no I/O surface
//   - Deterministic – insertion-ordered results make examples and
//     debugging reproducible
//   - Extensible – hook into the walk (OnCell) without touching the core
//
// Everything is organized under three subpackages:
//
//	core/         — Position and PositionSet value types
//	grid/         — the Grid model and its validation rules
//	neighborhood/ — the union-counting algorithm and its options
//
// Quick ASCII example, one positive cell ◆ with threshold 2 on a 5×5 grid:
//
//	· · ▪ · ·
//	· ▪ ▪ ▪ ·
//	▪ ▪ ◆ ▪ ▪
//	· ▪ ▪ ▪ ·
//	· · ▪ · ·
//
//	13 cells in reach — (2+1)² + 2², the radius-2 diamond.
//
// Dive into the per-package docs for the full API, complexity notes and
// error contracts.
//
//	go get github.com/katalvlaran/gridhood
package gridhood
