package neighborhood

import (
	"github.com/katalvlaran/gridhood/core"
	"github.com/katalvlaran/gridhood/grid"
)

// WithinBounds reports whether p lies inside g. It computes the same
// predicate as grid.Grid.IsValidPosition and delegates to it; the
// diamond walk clips against "in bounds" as a concept of its own, kept
// as a named entry point distinct from grid validity.
// Complexity: O(1).
func WithinBounds(p core.Position, g *grid.Grid) bool {
	return g.IsValidPosition(p)
}
