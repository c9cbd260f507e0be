//go:build ebiten

package ui

import (
	"image/color"

	"gridlife/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	hudPad        = 6
	hudLineHeight = 14
	hudWidth      = 160
)

// HUD draws the driver parameters in a translucent panel at the top-left.
type HUD struct {
	visible bool
	panel   *ebiten.Image
	bg      color.Color
	fg      color.Color
}

// NewHUD constructs a visible HUD.
func NewHUD() *HUD {
	return &HUD{
		visible: true,
		bg:      color.RGBA{A: 0xb0},
		fg:      color.White,
	}
}

// Toggle shows or hides the panel.
func (h *HUD) Toggle() { h.visible = !h.visible }

// Draw renders the snapshot onto screen.
func (h *HUD) Draw(screen *ebiten.Image, snap core.ParameterSnapshot, paused bool) {
	if !h.visible {
		return
	}
	lines := Lines(snap, paused)
	height := len(lines)*hudLineHeight + 2*hudPad
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(hudWidth, height)
		h.panel.Fill(h.bg)
	}
	screen.DrawImage(h.panel, &ebiten.DrawImageOptions{})
	face := basicfont.Face7x13
	for i, line := range lines {
		text.Draw(screen, line, face, hudPad, hudPad+(i+1)*hudLineHeight-3, h.fg)
	}
}
