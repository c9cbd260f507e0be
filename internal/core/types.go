package core

// Size describes the dimensions of a grid.
type Size struct {
	Rows int
	Cols int
}

// Area returns the number of cells covered by the size.
func (s Size) Area() int { return s.Rows * s.Cols }

// CellReader is the read-only view a renderer consumes each frame.
type CellReader interface {
	Size() Size
	Get(row, col int) Cell
}
