package neighborhood_test

import (
	"testing"

	"github.com/katalvlaran/gridhood/core"
	"github.com/katalvlaran/gridhood/grid"
	"github.com/katalvlaran/gridhood/neighborhood"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertMatchesOracle brute-forces the expected membership over every
// grid cell: a cell belongs to the result iff its Manhattan distance to
// some positive cell is at most threshold.
func assertMatchesOracle(t *testing.T, g *grid.Grid, threshold int) {
	t.Helper()
	cells, err := neighborhood.Cells(g, threshold)
	require.NoError(t, err)

	positives := g.PositiveCells()
	want := 0
	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			p := core.NewPosition(row, col)
			inRange := false
			for _, c := range positives {
				if p.ManhattanDistance(c) <= threshold {
					inRange = true
					break
				}
			}
			if inRange {
				want++
			}
			if cells.Contains(p) != inRange {
				t.Fatalf("threshold %d: membership of %v = %v; oracle says %v",
					threshold, p, cells.Contains(p), inRange)
			}
		}
	}
	assert.Equal(t, want, cells.Len(), "threshold %d: set size must match oracle", threshold)
}

// TestProperty_SelfInclusion: every valid positive cell belongs to its
// own neighborhood at any threshold, so the count is at least one.
func TestProperty_SelfInclusion(t *testing.T) {
	corners := []core.Position{
		core.NewPosition(0, 0),
		core.NewPosition(8, 0),
		core.NewPosition(0, 8),
		core.NewPosition(8, 8),
		core.NewPosition(4, 4),
	}
	for _, p := range corners {
		for threshold := 0; threshold <= 6; threshold++ {
			g := mustGrid(t, 9, 9, p)
			cells, err := neighborhood.Cells(g, threshold)
			require.NoError(t, err)
			assert.True(t, cells.Contains(p), "positive %v must be in its own neighborhood at N=%d", p, threshold)
			assert.GreaterOrEqual(t, cells.Len(), 1)
		}
	}
}

// TestProperty_CompleteDiamond: a diamond that fits entirely inside the
// grid has exactly DiamondSize(N) cells, each within distance N.
func TestProperty_CompleteDiamond(t *testing.T) {
	center := core.NewPosition(5, 5)
	for threshold := 0; threshold <= 5; threshold++ {
		g := mustGrid(t, 11, 11, center)
		cells, err := neighborhood.Cells(g, threshold)
		require.NoError(t, err)
		assert.Equal(t, neighborhood.DiamondSize(threshold), cells.Len(),
			"full diamond at N=%d must match the closed form", threshold)
		assertMatchesOracle(t, g, threshold)
	}
}

// TestProperty_DiamondSizeClosedForm checks (r+1)²+r² against brute
// enumeration of an unclipped diamond.
func TestProperty_DiamondSizeClosedForm(t *testing.T) {
	for radius := 0; radius <= 8; radius++ {
		brute := 0
		for dr := -radius; dr <= radius; dr++ {
			for dc := -radius; dc <= radius; dc++ {
				if abs(dr)+abs(dc) <= radius {
					brute++
				}
			}
		}
		assert.Equal(t, brute, neighborhood.DiamondSize(radius), "radius %d", radius)
	}
}

// TestProperty_Uniqueness: the set never stores a cell twice, so
// Count, Len and the ordered slice always agree.
func TestProperty_Uniqueness(t *testing.T) {
	g := mustGrid(t, 11, 11,
		core.NewPosition(3, 3),
		core.NewPosition(4, 4), // heavy diamond overlap
		core.NewPosition(3, 3), // duplicate positive
	)
	cells, err := neighborhood.Cells(g, 3)
	require.NoError(t, err)
	n, err := neighborhood.Count(g, 3)
	require.NoError(t, err)

	ordered := cells.Positions()
	assert.Equal(t, n, cells.Len())
	assert.Len(t, ordered, n)

	seen := make(map[core.Position]struct{}, len(ordered))
	for _, p := range ordered {
		if _, dup := seen[p]; dup {
			t.Fatalf("cell %v appears twice in the result", p)
		}
		seen[p] = struct{}{}
	}
}

// TestProperty_DisjointAdditivity: non-intersecting diamonds add up exactly.
func TestProperty_DisjointAdditivity(t *testing.T) {
	a := core.NewPosition(3, 3)
	b := core.NewPosition(7, 7)
	const threshold = 2 // distance 8 > 2·2: disjoint

	countOf := func(positives ...core.Position) int {
		n, err := neighborhood.Count(mustGrid(t, 11, 11, positives...), threshold)
		require.NoError(t, err)
		return n
	}

	assert.Equal(t, countOf(a)+countOf(b), countOf(a, b),
		"disjoint diamonds must count additively")
}

// TestProperty_OverlappingUnion: intersecting diamonds count strictly
// below the sum of their parts.
func TestProperty_OverlappingUnion(t *testing.T) {
	a := core.NewPosition(3, 3)
	b := core.NewPosition(5, 5)
	const threshold = 2 // distance 4 == 2·2: diamonds share cells

	countOf := func(positives ...core.Position) int {
		n, err := neighborhood.Count(mustGrid(t, 11, 11, positives...), threshold)
		require.NoError(t, err)
		return n
	}

	assert.Less(t, countOf(a, b), countOf(a)+countOf(b),
		"overlapping diamonds must be counted once")
}

// TestProperty_SaturationEqualsGridArea sweeps thresholds at and past
// the diameter on assorted shapes.
func TestProperty_SaturationEqualsGridArea(t *testing.T) {
	shapes := []struct {
		height, width int
		positive      core.Position
	}{
		{11, 11, core.NewPosition(0, 0)},
		{1, 21, core.NewPosition(0, 20)},
		{4, 7, core.NewPosition(2, 3)},
		{1, 1, core.NewPosition(0, 0)},
	}
	for _, s := range shapes {
		g := mustGrid(t, s.height, s.width, s.positive)
		for _, threshold := range []int{g.Diameter(), g.Diameter() + 1, g.Diameter() + 100} {
			n, err := neighborhood.Count(g, threshold)
			require.NoError(t, err)
			assert.Equal(t, g.CellCount(), n,
				"%d×%d at N=%d must saturate to the full grid", s.height, s.width, threshold)
		}
	}
}

// TestProperty_ClippedShapesMatchOracle cross-checks edge-heavy layouts
// against the brute-force oracle.
func TestProperty_ClippedShapesMatchOracle(t *testing.T) {
	cases := []struct {
		name      string
		height    int
		width     int
		positives []core.Position
		threshold int
	}{
		{"EdgeClipped", 11, 11, []core.Position{core.NewPosition(5, 1)}, 3},
		{"CornerPair", 11, 11, []core.Position{core.NewPosition(0, 0), core.NewPosition(10, 10)}, 3},
		{"Strip1xK", 1, 21, []core.Position{core.NewPosition(0, 9)}, 3},
		{"StripKx1", 21, 1, []core.Position{core.NewPosition(9, 0), core.NewPosition(20, 0)}, 4},
		{"DenseOverlap", 6, 6, []core.Position{
			core.NewPosition(1, 1), core.NewPosition(2, 2), core.NewPosition(3, 3),
		}, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assertMatchesOracle(t, mustGrid(t, tc.height, tc.width, tc.positives...), tc.threshold)
		})
	}
}

// abs mirrors the unexported helper for oracle enumeration.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
