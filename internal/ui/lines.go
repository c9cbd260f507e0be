package ui

import (
	"fmt"

	"gridlife/internal/core"
)

// Lines formats a parameter snapshot as HUD text, one line per parameter
// with a header per group.
func Lines(snap core.ParameterSnapshot, paused bool) []string {
	var out []string
	if paused {
		out = append(out, "[paused]")
	}
	for _, g := range snap.Groups {
		out = append(out, g.Name)
		for _, p := range g.Params {
			out = append(out, fmt.Sprintf("  %s: %s", p.Label, p.Value))
		}
	}
	return out
}
