package core

import "fmt"

// Position is a cell coordinate on a rectangular grid. By convention
// (0,0) is the grid's bottom-left corner, Row grows upward and Column
// grows rightward; nothing in the library depends on that orientation.
//
// Position is a comparable value type: two positions with equal Row and
// Column are interchangeable, == is structural equality, and Position
// may be used directly as a map key.
type Position struct {
	Row    int
	Column int
}

// NewPosition returns the position at (row, column). Total, never fails.
func NewPosition(row, column int) Position {
	return Position{Row: row, Column: column}
}

// ManhattanDistance returns |p.Row-q.Row| + |p.Column-q.Column|.
// Symmetric in its arguments; zero if and only if p == q.
// Complexity: O(1).
func (p Position) ManhattanDistance(q Position) int {
	return abs(p.Row-q.Row) + abs(p.Column-q.Column)
}

// Translate returns the position shifted by (dRow, dCol); p itself is
// unchanged. Complexity: O(1).
func (p Position) Translate(dRow, dCol int) Position {
	return Position{Row: p.Row + dRow, Column: p.Column + dCol}
}

// String formats the position as "(row,column)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Column)
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
