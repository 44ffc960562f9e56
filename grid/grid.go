package grid

import (
	"fmt"

	"github.com/katalvlaran/gridhood/core"
)

// Grid is a rectangular board of height × width cells together with an
// ordered list of positive cells. It is immutable once built: New
// deep-copies the positive-cell slice, so the caller may reuse or
// mutate its buffer afterward without affecting the grid.
//
// Positive cells are not bounds-checked at construction; see
// ValidatePositions for the deferred semantic check.
type Grid struct {
	height        int
	width         int
	positiveCells []core.Position
}

// New constructs a Grid from dimensions and positive cells.
// Returns ErrInvalidDimensions when height <= 0 or width <= 0.
// Complexity: O(P) time and memory for P positive cells.
func New(height, width int, positiveCells []core.Position) (*Grid, error) {
	if height <= 0 || width <= 0 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrInvalidDimensions, height, width)
	}
	// Deep copy to prevent external mutation
	cells := make([]core.Position, len(positiveCells))
	copy(cells, positiveCells)

	return &Grid{height: height, width: width, positiveCells: cells}, nil
}

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// CellCount returns height × width, the total number of grid cells.
func (g *Grid) CellCount() int { return g.height * g.width }

// Diameter returns (height-1)+(width-1), the Manhattan distance between
// opposite corners. A Manhattan ball of radius >= Diameter() centered
// anywhere in bounds covers the whole grid.
func (g *Grid) Diameter() int { return (g.height - 1) + (g.width - 1) }

// IsValidPosition reports whether p lies within [0,height) × [0,width).
// Complexity: O(1).
func (g *Grid) IsValidPosition(p core.Position) bool {
	return p.Row >= 0 && p.Row < g.height && p.Column >= 0 && p.Column < g.width
}

// ValidatePositions reports whether every stored positive cell satisfies
// IsValidPosition. Pure; does not mutate the grid. Complexity: O(P).
func (g *Grid) ValidatePositions() bool {
	for _, p := range g.positiveCells {
		if !g.IsValidPosition(p) {
			return false
		}
	}
	return true
}

// PositiveCellCount returns the number of stored positive cells,
// duplicates included.
func (g *Grid) PositiveCellCount() int { return len(g.positiveCells) }

// PositiveCells returns a copy of the stored positive cells in their
// original order. Complexity: O(P).
func (g *Grid) PositiveCells() []core.Position {
	out := make([]core.Position, len(g.positiveCells))
	copy(out, g.positiveCells)
	return out
}
