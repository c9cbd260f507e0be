package render

import (
	"image/color"

	"gridlife/internal/core"
)

// Palette maps cell states and grid lines to colors.
type Palette struct {
	Alive color.Color
	Dead  color.Color
	Line  color.Color
}

// DefaultPalette draws blue cells on white with black grid lines.
func DefaultPalette() Palette {
	return Palette{
		Alive: color.RGBA{R: 0, G: 0, B: 255, A: 255},
		Dead:  color.White,
		Line:  color.Black,
	}
}

// ImageSize returns the pixel dimensions needed to draw size at cellSize.
func ImageSize(size core.Size, cellSize int) (w, h int) {
	return size.Cols * cellSize, size.Rows * cellSize
}

func putRGBA(buf []byte, base int, c color.Color) {
	r, g, b, a := c.RGBA()
	buf[base+0] = uint8(r >> 8)
	buf[base+1] = uint8(g >> 8)
	buf[base+2] = uint8(b >> 8)
	buf[base+3] = uint8(a >> 8)
}

// fillCellsRGBA paints every cell as a cellSize square into buf, which must
// hold ImageSize(g.Size(), cellSize) RGBA pixels. With grid lines enabled the
// first pixel row and column of each square take the line color, insetting
// the cell.
func fillCellsRGBA(buf []byte, g core.CellReader, cellSize int, gridLines bool, pal Palette) {
	size := g.Size()
	w, _ := ImageSize(size, cellSize)
	for row := 0; row < size.Rows; row++ {
		for col := 0; col < size.Cols; col++ {
			fill := pal.Dead
			if g.Get(row, col) == core.Alive {
				fill = pal.Alive
			}
			x0, y0 := col*cellSize, row*cellSize
			for dy := 0; dy < cellSize; dy++ {
				for dx := 0; dx < cellSize; dx++ {
					c := fill
					if gridLines && (dx == 0 || dy == 0) {
						c = pal.Line
					}
					putRGBA(buf, ((y0+dy)*w+x0+dx)*4, c)
				}
			}
		}
	}
}
