package life

import (
	"strconv"
	"time"

	"gridlife/internal/core"
)

// Config controls the grid dimensions and stepping cadence.
type Config struct {
	Rows          int
	Cols          int
	StepInterval  time.Duration
	ShowGridLines bool
}

// DefaultConfig returns the standard configuration: a 1200x600 display with
// 30 pixel cells, advancing five generations per second.
func DefaultConfig() Config {
	return Config{
		Rows:          20,
		Cols:          40,
		StepInterval:  200 * time.Millisecond,
		ShowGridLines: true,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable or out-of-range values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["rows"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Rows = parsed
		}
	}
	if v, ok := cfg["cols"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Cols = parsed
		}
	}
	if v, ok := cfg["interval"]; ok {
		if parsed, err := time.ParseDuration(v); err == nil && parsed > 0 {
			c.StepInterval = parsed
		}
	}
	if v, ok := cfg["grid"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.ShowGridLines = parsed
		}
	}
	return c
}

// NewGrid allocates the all-Dead grid described by the config, ready for
// seeding.
func (c Config) NewGrid() (*core.Grid, error) {
	return core.NewGrid(c.Rows, c.Cols)
}

// NewDriver wraps a seeded grid in a Driver using the config cadence.
func (c Config) NewDriver(g *core.Grid) (*Driver, error) {
	d, err := NewDriver(g, c.StepInterval)
	if err != nil {
		return nil, err
	}
	d.SetShowGridLines(c.ShowGridLines)
	return d, nil
}
