//go:build ebiten

package app

import (
	"gridlife/internal/core"
	"gridlife/internal/life"
	"gridlife/internal/render"
	"gridlife/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a life.Driver to the ebiten.Game interface.
type Game struct {
	cfg     *Config
	driver  *life.Driver
	painter *render.GridPainter
	hud     *ui.HUD
	clock   *core.Clock

	paused   bool
	tickOnce bool
}

// New constructs a Game from a validated config.
func New(cfg *Config) (*Game, error) {
	d, err := cfg.NewDriver()
	if err != nil {
		return nil, err
	}
	return &Game{
		cfg:     cfg,
		driver:  d,
		painter: render.NewGridPainter(d.Current().Size(), cfg.CellSize, render.DefaultPalette()),
		hud:     ui.NewHUD(),
		clock:   core.NewClock(),
	}, nil
}

// Reset reseeds the grid from the config, keeping presentation flags.
func (g *Game) Reset() error {
	d, err := g.cfg.NewDriver()
	if err != nil {
		return err
	}
	d.SetShowGridLines(g.driver.ShowGridLines())
	g.driver = d
	g.tickOnce = false
	return nil
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.driver.SetShowGridLines(!g.driver.ShowGridLines())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.Reset(); err != nil {
			return err
		}
	}

	stepFrame(g.driver, g.clock.Delta(), g.paused, g.tickOnce)
	g.tickOnce = false
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.driver.Current(), g.driver.ShowGridLines())
	g.hud.Draw(screen, g.driver.Parameters(), g.paused)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.painter.Size()
}
