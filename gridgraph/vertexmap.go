package gridgraph

import "fmt"

// NewVertexMap returns an empty VertexMap over g.
func NewVertexMap(g *Grid) *VertexMap {
	return &VertexMap{
		grid: g,
		ids:  make(map[int]int),
	}
}

// Add returns the vertex id of (row, col), assigning the next free id the first
// time the cell is seen. Returns ErrOutOfBounds for cells outside the grid.
// Complexity: O(1) amortized.
func (m *VertexMap) Add(row, col int) (int, error) {
	idx, err := m.grid.Index(row, col)
	if err != nil {
		return 0, err
	}
	if id, ok := m.ids[idx]; ok {
		return id, nil
	}
	id := len(m.cells)
	m.ids[idx] = id
	m.cells = append(m.cells, idx)

	return id, nil
}

// Cell resolves a vertex id back to its (row, col).
// Returns ErrUnknownVertex for ids never issued by Add.
func (m *VertexMap) Cell(id int) (row, col int, err error) {
	if id < 0 || id >= len(m.cells) {
		return 0, 0, fmt.Errorf("%w: %d (have %d)", ErrUnknownVertex, id, len(m.cells))
	}
	row, col = m.grid.Coordinate(m.cells[id])

	return row, col, nil
}

// Len returns the number of distinct cells seen so far, i.e. the vertex count.
func (m *VertexMap) Len() int {
	return len(m.cells)
}
