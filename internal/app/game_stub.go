//go:build !ebiten

package app

import "github.com/pkg/errors"

// ErrHeadless is returned by the GUI entry points in builds without ebiten.
var ErrHeadless = errors.New("GUI requires building with the 'ebiten' tag")

// Game is a placeholder that satisfies the API expected by the GUI build.
type Game struct{}

// New reports that the ebiten build tag is required for GUI support.
func New(*Config) (*Game, error) { return nil, ErrHeadless }

// Reset always reports that the GUI build tag is missing.
func (g *Game) Reset() error { return ErrHeadless }

// Update always reports that the GUI build tag is missing.
func (g *Game) Update() error { return ErrHeadless }

// Draw is a no-op placeholder to satisfy the interface shape.
func (g *Game) Draw(any) {}

// Layout returns zeros in the headless build.
func (g *Game) Layout(int, int) (int, int) { return 0, 0 }
