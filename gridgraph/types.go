// Package gridgraph defines the Grid and VertexMap types.
package gridgraph

// Grid describes a Rows × Cols backyard. It is immutable once built.
// Cells are addressed as (row, col) with 0 ≤ row < Rows and 0 ≤ col < Cols.
type Grid struct {
	Rows, Cols int
}

// VertexMap assigns dense vertex ids to grid cells.
// ids maps a linear cell index to its vertex id; cells is the inverse.
type VertexMap struct {
	grid  *Grid
	ids   map[int]int
	cells []int
}
