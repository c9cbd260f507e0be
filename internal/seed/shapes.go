package seed

import "gridlife/internal/core"

// Offset is a position relative to a placement origin.
type Offset struct {
	Row, Col int
}

// Shape is a finite set of Alive cells.
type Shape struct {
	Name  string
	Cells []Offset
}

// Bounds returns the smallest size that contains every cell of the shape.
func (s Shape) Bounds() core.Size {
	var b core.Size
	for _, o := range s.Cells {
		b.Rows = max(b.Rows, o.Row+1)
		b.Cols = max(b.Cols, o.Col+1)
	}
	return b
}

func row(r int, cols ...int) []Offset {
	out := make([]Offset, len(cols))
	for i, c := range cols {
		out[i] = Offset{Row: r, Col: c}
	}
	return out
}

func rows(parts ...[]Offset) []Offset {
	var out []Offset
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

var (
	// Glider travels one cell down and right every four generations.
	Glider = Shape{Name: "glider", Cells: rows(
		row(0, 1),
		row(1, 2),
		row(2, 0, 1, 2),
	)}

	// LightweightSpaceship travels horizontally with period 4.
	LightweightSpaceship = Shape{Name: "lwss", Cells: rows(
		row(0, 1, 2, 3, 4),
		row(1, 0, 4),
		row(2, 4),
		row(3, 3),
	)}

	// GosperGun emits a new glider every 30 generations.
	GosperGun = Shape{Name: "gosper-gun", Cells: rows(
		row(0, 24),
		row(1, 22, 24),
		row(2, 12, 13, 20, 21, 34, 35),
		row(3, 11, 15, 20, 21, 34, 35),
		row(4, 0, 1, 10, 16, 20, 21),
		row(5, 0, 1, 10, 14, 16, 17, 22, 24),
		row(6, 10, 16, 24),
		row(7, 11, 15),
		row(8, 12, 13),
	)}

	// Blinker is a horizontal period-2 oscillator.
	Blinker = Shape{Name: "blinker", Cells: row(0, 0, 1, 2)}

	// Block is the 2x2 still life.
	Block = Shape{Name: "block", Cells: rows(row(0, 0, 1), row(1, 0, 1))}
)

// Place sets every cell of s Alive relative to origin and returns how many
// cells were written. Cells that land outside the grid are skipped.
func Place(g *core.Grid, s Shape, origin Offset) int {
	n := 0
	for _, o := range s.Cells {
		r, c := origin.Row+o.Row, origin.Col+o.Col
		if !g.Contains(r, c) {
			continue
		}
		g.Set(r, c, core.Alive)
		n++
	}
	return n
}

// Random marks each cell Alive independently with probability density and
// returns how many cells were set.
func Random(g *core.Grid, rng *core.RNG, density float64) int {
	n := 0
	size := g.Size()
	for r := 0; r < size.Rows; r++ {
		for c := 0; c < size.Cols; c++ {
			if rng.Chance(density) {
				g.Set(r, c, core.Alive)
				n++
			}
		}
	}
	return n
}
