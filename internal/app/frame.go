package app

import (
	"time"

	"gridlife/internal/life"
)

// stepFrame advances d for one frame and reports whether a generation was
// taken. A running game follows the timer; a paused one only steps when a
// single tick was requested, so a frame never takes two generations.
func stepFrame(d *life.Driver, delta time.Duration, paused, tickOnce bool) bool {
	if !paused {
		return d.Advance(delta)
	}
	if tickOnce {
		d.StepNow()
		return true
	}
	return false
}
