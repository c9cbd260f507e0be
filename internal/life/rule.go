package life

import "gridlife/internal/core"

// Next returns the successor of a cell given how many of its neighbors were
// alive in the prior generation: birth on exactly 3, survival on 2 or 3.
func Next(prior core.Cell, aliveNeighbors int) core.Cell {
	switch prior {
	case core.Alive:
		if aliveNeighbors < 2 || aliveNeighbors > 3 {
			return core.Dead
		}
		return core.Alive
	default:
		if aliveNeighbors == 3 {
			return core.Alive
		}
		return core.Dead
	}
}

// Step computes the generation after cur into a freshly allocated grid.
// cur is only read.
func Step(cur *core.Grid) *core.Grid {
	next := cur.Blank()
	rows, cols := cur.Rows(), cur.Cols()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if Next(cur.Get(r, c), cur.CountNeighbors(r, c, core.Alive)) == core.Alive {
				next.Set(r, c, core.Alive)
			}
		}
	}
	return next
}
