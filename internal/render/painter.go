//go:build ebiten

package render

import (
	"gridlife/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter renders a cell grid into a single RGBA image.
type GridPainter struct {
	size     core.Size
	cellSize int
	pal      Palette
	img      *ebiten.Image
	buf      []byte
}

// NewGridPainter allocates a painter for grids of the given size.
func NewGridPainter(size core.Size, cellSize int, pal Palette) *GridPainter {
	w, h := ImageSize(size, cellSize)
	return &GridPainter{
		size:     size,
		cellSize: cellSize,
		pal:      pal,
		img:      ebiten.NewImage(w, h),
		buf:      make([]byte, 4*w*h),
	}
}

// Blit uploads the grid into the painter image and draws it at the origin.
func (gp *GridPainter) Blit(dst *ebiten.Image, g core.CellReader, gridLines bool) {
	if g.Size() != gp.size {
		return
	}
	fillCellsRGBA(gp.buf, g, gp.cellSize, gridLines, gp.pal)
	gp.img.WritePixels(gp.buf)
	dst.DrawImage(gp.img, &ebiten.DrawImageOptions{})
}

// Size returns the pixel dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return ImageSize(gp.size, gp.cellSize) }
