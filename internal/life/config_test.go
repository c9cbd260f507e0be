package life

import (
	"testing"
	"time"
)

func TestFromMapOverrides(t *testing.T) {
	c := FromMap(map[string]string{
		"rows":     "12",
		"cols":     "34",
		"interval": "50ms",
		"grid":     "false",
	})
	if c.Rows != 12 || c.Cols != 34 {
		t.Fatalf("size = %dx%d, want 12x34", c.Rows, c.Cols)
	}
	if c.StepInterval != 50*time.Millisecond {
		t.Fatalf("interval = %v, want 50ms", c.StepInterval)
	}
	if c.ShowGridLines {
		t.Fatal("grid lines should be disabled")
	}
}

func TestFromMapKeepsDefaultsOnBadInput(t *testing.T) {
	c := FromMap(map[string]string{
		"rows":     "-3",
		"cols":     "wide",
		"interval": "0s",
		"grid":     "maybe",
	})
	if c != DefaultConfig() {
		t.Fatalf("config = %+v, want defaults", c)
	}
	if FromMap(nil) != DefaultConfig() {
		t.Fatal("nil map should yield defaults")
	}
}

func TestConfigBuildsDriver(t *testing.T) {
	c := DefaultConfig()
	g, err := c.NewGrid()
	if err != nil {
		t.Fatal(err)
	}
	if s := g.Size(); s.Rows != 20 || s.Cols != 40 {
		t.Fatalf("default grid = %+v, want 20x40", s)
	}
	d, err := c.NewDriver(g)
	if err != nil {
		t.Fatal(err)
	}
	if !d.ShowGridLines() || d.Interval() != c.StepInterval {
		t.Fatal("driver did not inherit config")
	}
}
