package neighborhood

import (
	"fmt"

	"github.com/katalvlaran/gridhood/core"
	"github.com/katalvlaran/gridhood/grid"
)

// DiamondSize returns the number of cells in an unclipped Manhattan
// ball of the given radius: (radius+1)² + radius².
// DiamondSize(0) == 1, the center alone.
// Complexity: O(1).
func DiamondSize(radius int) int {
	return (radius+1)*(radius+1) + radius*radius
}

// Count returns the number of distinct grid cells lying within
// distanceThreshold of at least one positive cell of g.
// Defined as Cells(g, distanceThreshold, opts...).Len(); see Cells for
// errors and semantics.
func Count(g *grid.Grid, distanceThreshold int, opts ...Option) (int, error) {
	cells, err := Cells(g, distanceThreshold, opts...)
	if err != nil {
		return 0, err
	}
	return cells.Len(), nil
}

// Cells returns the union of the radius-distanceThreshold Manhattan
// balls around every positive cell of g, clipped to grid bounds, as an
// insertion-ordered set. Deterministic and side-effect-free on g; the
// caller owns the returned set.
//
// Validation short-circuits in order: nil or degenerate grid →
// grid.ErrInvalidDimensions; distanceThreshold < 0 →
// ErrNegativeThreshold; a positive cell out of bounds →
// ErrPositionOutOfBounds; an invalid Option → ErrOptionViolation.
//
// A grid with no positive cells yields the empty set. When
// distanceThreshold >= g.Diameter() and at least one positive cell
// exists, any one cell's diamond already spans the grid, so the result
// is every grid cell without per-cell enumeration.
//
// Complexity: O(P·N²) candidate generations for P positive cells and
// threshold N, plus O(1) amortized per insertion; O(height × width) on
// the saturation path.
func Cells(g *grid.Grid, distanceThreshold int, opts ...Option) (*core.PositionSet, error) {
	if g == nil || g.Height() <= 0 || g.Width() <= 0 {
		return nil, fmt.Errorf("neighborhood: nil or degenerate grid: %w", grid.ErrInvalidDimensions)
	}
	if distanceThreshold < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegativeThreshold, distanceThreshold)
	}
	if !g.ValidatePositions() {
		return nil, fmt.Errorf("%w: grid is %d×%d", ErrPositionOutOfBounds, g.Height(), g.Width())
	}

	// Build options and catch any invalid ones before doing work
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	positives := g.PositiveCells()
	if len(positives) == 0 {
		return core.NewPositionSet(), nil
	}
	result := core.NewPositionSetWithCapacity(resultCapacity(g, distanceThreshold, len(positives), o.expectedCells))

	// Saturation: once the threshold reaches the grid's own diameter,
	// any one positive cell's diamond covers every cell.
	if distanceThreshold >= g.Diameter() {
		for row := 0; row < g.Height(); row++ {
			for col := 0; col < g.Width(); col++ {
				insert(result, core.NewPosition(row, col), &o)
			}
		}
		return result, nil
	}

	for _, center := range positives {
		enumerateDiamond(result, center, distanceThreshold, g, &o)
	}

	return result, nil
}

// enumerateDiamond walks the Manhattan ball of the given radius around
// center, inserting every in-bounds candidate into result: for each
// deltaRow in [-radius, radius] the column span shrinks to the distance
// budget left after the row step.
func enumerateDiamond(result *core.PositionSet, center core.Position, radius int, g *grid.Grid, o *calcOptions) {
	for deltaRow := -radius; deltaRow <= radius; deltaRow++ {
		remaining := radius - abs(deltaRow)
		for deltaCol := -remaining; deltaCol <= remaining; deltaCol++ {
			candidate := center.Translate(deltaRow, deltaCol)
			if WithinBounds(candidate, g) {
				insert(result, candidate, o)
			}
		}
	}
}

// insert adds p to result and fires the OnCell hook when the insertion
// was new.
func insert(result *core.PositionSet, p core.Position, o *calcOptions) {
	if result.Add(p) {
		o.onCell(p)
	}
}

// resultCapacity estimates the final set size: the caller's explicit
// expectation when given, the whole grid on the saturation path,
// otherwise the positive cells' unclipped diamonds capped by grid area.
func resultCapacity(g *grid.Grid, threshold, positives, expected int) int {
	if expected > 0 {
		return expected
	}
	cells := g.CellCount()
	if threshold >= g.Diameter() {
		return cells
	}
	// per > cells/positives implies per*positives could exceed the grid
	// (or overflow); cap before multiplying.
	per := DiamondSize(threshold)
	if per > cells/positives {
		return cells
	}

	return per * positives
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
