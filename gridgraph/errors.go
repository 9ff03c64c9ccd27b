package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates a grid without at least one row and one column.
	ErrEmptyGrid = errors.New("gridgraph: grid must have at least one row and one column")
	// ErrGridTooLarge indicates a grid whose cell count overflows int.
	ErrGridTooLarge = errors.New("gridgraph: grid has more cells than int can index")
	// ErrOutOfBounds indicates a cell outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: cell out of bounds")
	// ErrUnknownVertex indicates a vertex id that was never assigned.
	ErrUnknownVertex = errors.New("gridgraph: unknown vertex id")
)
