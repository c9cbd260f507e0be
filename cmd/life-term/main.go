package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"gridlife/internal/app"
	"gridlife/internal/core"
	"gridlife/internal/render"
)

func main() {
	cfg, err := app.Load("life-term", os.Args[1:])
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	driver, err := cfg.NewDriver()
	if err != nil {
		log.Fatalf("start: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	term := render.NewTerminal(true, driver.ShowGridLines())
	clock := core.NewClock()
	ticker := time.NewTicker(time.Second / time.Duration(cfg.TPS))
	defer ticker.Stop()

	draw := func() {
		if err := render.ClearScreen(os.Stdout); err != nil {
			log.Fatalf("draw: %v", err)
		}
		if err := term.Display(os.Stdout, driver.Current()); err != nil {
			log.Fatalf("draw: %v", err)
		}
		fmt.Printf("gen %d  pop %d  (Ctrl+C to quit)\n", driver.Generation(), driver.Current().Population())
	}

	draw()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if driver.Advance(clock.Delta()) {
				draw()
			}
		}
	}
}
