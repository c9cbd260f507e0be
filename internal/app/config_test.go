package app

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"gridlife/internal/core"
)

func TestDefaultsDeriveGrid(t *testing.T) {
	c := NewConfig()
	if err := c.Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}
	if s := c.GridSize(); s != (core.Size{Rows: 20, Cols: 40}) {
		t.Fatalf("grid size = %+v, want 20x40", s)
	}
	lc := c.Life()
	if lc.StepInterval != 200*time.Millisecond || !lc.ShowGridLines {
		t.Fatalf("life config = %+v", lc)
	}
}

func TestLoadParsesFlags(t *testing.T) {
	c, err := Load("life", []string{
		"--width", "300", "--height", "150", "--cell", "10",
		"--interval", "50ms", "--pattern", "glider", "--no-grid",
		"--row", "2", "--col", "3", "--seed", "9",
	})
	if err != nil {
		t.Fatal(err)
	}
	if s := c.GridSize(); s != (core.Size{Rows: 15, Cols: 30}) {
		t.Fatalf("grid size = %+v, want 15x30", s)
	}
	if c.Interval != 50*time.Millisecond || c.Pattern != "glider" || c.GridLines {
		t.Fatalf("config = %+v", c)
	}
	opts := c.SeedOptions()
	if opts.Origin.Row != 2 || opts.Origin.Col != 3 || opts.Seed != 9 {
		t.Fatalf("seed options = %+v", opts)
	}
}

func TestLoadFileThenFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "life.json")
	body := `{"cell_size": 20, "step_interval": "1s", "pattern": "lwss", "grid_lines": false}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load("life", []string{"--config", path, "--pattern", "blinker"})
	if err != nil {
		t.Fatal(err)
	}
	if c.CellSize != 20 || c.Interval != time.Second || c.GridLines {
		t.Fatalf("file values not applied: %+v", c)
	}
	if c.Pattern != "blinker" {
		t.Fatalf("pattern = %q, flag should win over file", c.Pattern)
	}
	if c.Width != 1200 {
		t.Fatalf("width = %d, want default 1200", c.Width)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(`{"step_interval": "soon"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected error for bad interval")
	}
}

func TestValidateRejects(t *testing.T) {
	cases := map[string]func(c *Config){
		"zero cell":      func(c *Config) { c.CellSize = 0 },
		"tiny display":   func(c *Config) { c.Width = 10 },
		"zero interval":  func(c *Config) { c.Interval = 0 },
		"zero tps":       func(c *Config) { c.TPS = 0 },
		"tps over 1e9":   func(c *Config) { c.TPS = int(time.Second) + 1 },
		"density over 1": func(c *Config) { c.Density = 1.5 },
	}
	for name, mutate := range cases {
		c := NewConfig()
		mutate(c)
		if err := c.Validate(); !errors.Is(err, ErrInvalidConfig) {
			t.Fatalf("%s: err = %v, want ErrInvalidConfig", name, err)
		}
	}
}

func TestNewDriverSeedsPattern(t *testing.T) {
	c := NewConfig()
	d, err := c.NewDriver()
	if err != nil {
		t.Fatal(err)
	}
	if got := d.Current().Population(); got != 36 {
		t.Fatalf("gosper gun population = %d, want 36", got)
	}
	if d.Generation() != 0 || !d.ShowGridLines() {
		t.Fatal("driver state not fresh")
	}

	c.Pattern = "nope"
	if _, err := c.NewDriver(); err == nil {
		t.Fatal("expected unknown pattern error")
	}
}
