// Package gridgraph maps cells of a rectangular backyard grid onto the dense
// integer vertex ids consumed by the MST algorithms.
//
// What:
//
//   - Grid holds the dimensions (Rows × Cols) and converts (row, col) to a
//     row-major linear index row*Cols + col and back.
//   - VertexMap assigns vertex ids 0..k-1 to the cells actually mentioned by
//     the input, in first-seen order, and resolves ids back to cells.
//
// Why:
//
//   - A dig plan only names the cells that hold buried cars, usually far fewer
//     than Rows × Cols. Dense ids keep the disjoint-set forest as small as the
//     vertex set and guarantee every id lies in [0, vertexCount).
//
// Complexity:
//
//   - Grid.Index, Grid.Coordinate, Grid.InBounds: O(1).
//   - VertexMap.Add, VertexMap.Cell: O(1) amortized, Memory: O(k).
//
// Errors:
//
//   - ErrEmptyGrid: rows or cols is not positive.
//   - ErrGridTooLarge: rows*cols does not fit in an int.
//   - ErrOutOfBounds: a (row, col) pair lies outside the grid.
//   - ErrUnknownVertex: a vertex id was never issued by the VertexMap.
package gridgraph
