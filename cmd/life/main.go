//go:build ebiten

package main

import (
	"errors"
	"log"
	"os"

	"gridlife/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := app.Load("life", os.Args[1:])
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	game, err := app.New(cfg)
	if err != nil {
		log.Fatalf("start: %v", err)
	}

	ebiten.SetWindowTitle("Life: " + cfg.Pattern)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
