package ui

import (
	"slices"
	"testing"

	"gridlife/internal/core"
)

func TestLines(t *testing.T) {
	snap := core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Simulation", Params: []core.Parameter{
			{Key: "generation", Label: "Generation", Value: "12"},
		}},
	}}
	want := []string{"Simulation", "  Generation: 12"}
	if got := Lines(snap, false); !slices.Equal(got, want) {
		t.Fatalf("Lines() = %q, want %q", got, want)
	}
	if got := Lines(snap, true); got[0] != "[paused]" {
		t.Fatalf("paused header missing: %q", got)
	}
}
