package core

import (
	"crypto/md5"
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidSize is returned when a grid is requested with non-positive
	// dimensions.
	ErrInvalidSize = errors.New("grid dimensions must be positive")
	// ErrIndexOutOfBounds is carried by the panic raised when Get or Set is
	// called with a coordinate outside the grid.
	ErrIndexOutOfBounds = errors.New("index out of bounds")
)

// Cell is the state of a single grid position.
type Cell uint8

const (
	// Dead is the zero value so freshly allocated grids start empty.
	Dead Cell = iota
	Alive
)

// String implements fmt.Stringer.
func (c Cell) String() string {
	if c == Alive {
		return "alive"
	}
	return "dead"
}

// Grid stores a fixed-size rectangle of cells in row-major order.
type Grid struct {
	rows, cols int
	data       []Cell
}

// NewGrid allocates a rows x cols grid with every cell Dead.
func NewGrid(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, errors.Wrapf(ErrInvalidSize, "got %dx%d", rows, cols)
	}
	return &Grid{rows: rows, cols: cols, data: make([]Cell, Size{Rows: rows, Cols: cols}.Area())}, nil
}

// Blank returns a new all-Dead grid with the same dimensions as g.
func (g *Grid) Blank() *Grid {
	return &Grid{rows: g.rows, cols: g.cols, data: make([]Cell, g.Size().Area())}
}

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{Rows: g.rows, Cols: g.cols} }

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Contains reports whether (row, col) lies inside the grid.
func (g *Grid) Contains(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Index returns the linear slice index for (row, col).
func (g *Grid) Index(row, col int) int { return row*g.cols + col }

func (g *Grid) mustIndex(row, col int) int {
	if !g.Contains(row, col) {
		panic(errors.Wrapf(ErrIndexOutOfBounds, "cell (%d, %d) outside %dx%d grid", row, col, g.rows, g.cols))
	}
	return g.Index(row, col)
}

// Get returns the cell at (row, col). It panics when the coordinate is
// outside the grid.
func (g *Grid) Get(row, col int) Cell {
	return g.data[g.mustIndex(row, col)]
}

// Set overwrites the cell at (row, col). It panics when the coordinate is
// outside the grid.
func (g *Grid) Set(row, col int, c Cell) {
	g.data[g.mustIndex(row, col)] = c
}

// CountNeighbors counts the cells adjacent to (row, col) whose state equals
// target. Edges do not wrap: positions past the border are skipped. It panics
// when (row, col) itself is outside the grid.
func (g *Grid) CountNeighbors(row, col int, target Cell) int {
	g.mustIndex(row, col)
	count := 0
	for dr := -1; dr <= 1; dr++ {
		r := row + dr
		if r < 0 || r >= g.rows {
			continue
		}
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			c := col + dc
			if c < 0 || c >= g.cols {
				continue
			}
			if g.data[r*g.cols+c] == target {
				count++
			}
		}
	}
	return count
}

// Population returns the number of Alive cells.
func (g *Grid) Population() (count int) {
	for _, c := range g.data {
		if c == Alive {
			count++
		}
	}
	return
}

// Equal reports whether both grids have the same size and cell states.
func (g *Grid) Equal(o *Grid) bool {
	if o == nil || g.rows != o.rows || g.cols != o.cols {
		return false
	}
	for i, c := range g.data {
		if o.data[i] != c {
			return false
		}
	}
	return true
}

// Fingerprint returns an MD5 digest of the cell states in row-major order.
func (g *Grid) Fingerprint() string {
	h := md5.New()
	buf := make([]byte, len(g.data))
	for i, c := range g.data {
		buf[i] = byte(c)
	}
	h.Write(buf)
	return fmt.Sprintf("%x", h.Sum(nil))
}
