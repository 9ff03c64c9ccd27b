// Package gridgraph provides the coordinate encoding between grid cells and
// linear indices (row-major: row*Cols + col).
package gridgraph

import (
	"fmt"
	"math"
)

// NewGrid constructs a Grid with the given dimensions.
// Returns ErrEmptyGrid if rows or cols is not positive, and ErrGridTooLarge
// if rows*cols does not fit in an int (Index would wrap).
// Complexity: O(1).
func NewGrid(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrEmptyGrid, rows, cols)
	}
	if rows > math.MaxInt/cols {
		return nil, fmt.Errorf("%w: got %d×%d", ErrGridTooLarge, rows, cols)
	}

	return &Grid{Rows: rows, Cols: cols}, nil
}

// InBounds reports whether (row, col) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Cols
}

// Size returns the number of cells, Rows × Cols.
func (g *Grid) Size() int {
	return g.Rows * g.Cols
}

// Index maps (row, col) to its row‑major index row*Cols + col.
// Returns ErrOutOfBounds for cells outside the grid.
// Complexity: O(1).
func (g *Grid) Index(row, col int) (int, error) {
	if !g.InBounds(row, col) {
		return 0, fmt.Errorf("%w: (%d,%d) in %d×%d grid", ErrOutOfBounds, row, col, g.Rows, g.Cols)
	}

	return row*g.Cols + col, nil
}

// Coordinate converts a row‑major index back to (row, col).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (row, col int) {
	return idx / g.Cols, idx % g.Cols
}
