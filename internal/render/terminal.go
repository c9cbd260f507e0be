package render

import (
	"io"
	"strings"

	"gridlife/internal/core"

	"github.com/logrusorgru/aurora"
)

const (
	termAlive = "██"
	termDead  = "  "
	termLine  = "·"
)

// Terminal draws a grid as rows of text, two characters per cell.
type Terminal struct {
	au        aurora.Aurora
	gridLines bool
}

// NewTerminal returns a Terminal renderer. When colors is false no ANSI
// escapes are emitted.
func NewTerminal(colors, gridLines bool) *Terminal {
	return &Terminal{au: aurora.NewAurora(colors), gridLines: gridLines}
}

// SetGridLines toggles the dot separators between cells.
func (t *Terminal) SetGridLines(on bool) { t.gridLines = on }

// Render returns the textual frame for g.
func (t *Terminal) Render(g core.CellReader) string {
	size := g.Size()
	alive := t.au.Blue(termAlive).String()
	var b strings.Builder
	for row := 0; row < size.Rows; row++ {
		for col := 0; col < size.Cols; col++ {
			if t.gridLines && col > 0 {
				b.WriteString(t.au.BrightBlack(termLine).String())
			}
			if g.Get(row, col) == core.Alive {
				b.WriteString(alive)
			} else {
				b.WriteString(termDead)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Display writes the frame for g to w.
func (t *Terminal) Display(w io.Writer, g core.CellReader) error {
	_, err := io.WriteString(w, t.Render(g))
	return err
}

// ClearScreen moves the cursor home and clears the terminal.
func ClearScreen(w io.Writer) error {
	_, err := io.WriteString(w, "\x1b[H\x1b[2J")
	return err
}
