package app

import (
	"encoding/json"
	"os"
	"strings"
	"time"

	"gridlife/internal/core"
	"gridlife/internal/life"
	"gridlife/internal/seed"

	"github.com/integrii/flaggy"
	"github.com/pkg/errors"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config represents the command-line parameters for the application.
type Config struct {
	Width     int
	Height    int
	CellSize  int
	Interval  time.Duration
	GridLines bool
	Pattern   string
	OriginRow int
	OriginCol int
	Density   float64
	Seed      int64
	TPS       int

	File string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:     1200,
		Height:    600,
		CellSize:  30,
		Interval:  200 * time.Millisecond,
		GridLines: true,
		Pattern:   seed.GosperGun.Name,
		Density:   seed.DefaultDensity,
		Seed:      42,
		TPS:       60,
	}
}

// Bind attaches the configuration to the provided parser. hideGrid is set
// when --no-grid is passed.
func (c *Config) Bind(p *flaggy.Parser, hideGrid *bool) {
	p.String(&c.File, "c", "config", "JSON file with configuration overrides")
	p.Int(&c.Width, "", "width", "display width in pixels")
	p.Int(&c.Height, "", "height", "display height in pixels")
	p.Int(&c.CellSize, "", "cell", "cell size in pixels")
	p.Duration(&c.Interval, "i", "interval", "time between generations, e.g. 200ms")
	p.Bool(hideGrid, "", "no-grid", "draw cells without grid lines")
	p.String(&c.Pattern, "p", "pattern", "initial pattern: "+joinNames())
	p.Int(&c.OriginRow, "", "row", "pattern origin row")
	p.Int(&c.OriginCol, "", "col", "pattern origin column")
	p.Float64(&c.Density, "d", "density", "alive probability for the random pattern")
	p.Int64(&c.Seed, "s", "seed", "seed for the random pattern")
	p.Int(&c.TPS, "", "tps", "ticks per second")
}

func joinNames() string { return strings.Join(seed.Names(), "|") }

func parseInto(c *Config, name string, args []string) error {
	p := flaggy.NewParser(name)
	p.ShowHelpOnUnexpected = false
	hideGrid := false
	c.Bind(p, &hideGrid)
	if err := p.ParseArgs(args); err != nil {
		return errors.Wrap(err, "parse flags")
	}
	if hideGrid {
		c.GridLines = false
	}
	return nil
}

// Load builds a Config from defaults, then the file named by --config, then
// the remaining flags, and validates the result.
func Load(name string, args []string) (*Config, error) {
	c := NewConfig()
	if err := parseInto(c, name, args); err != nil {
		return nil, err
	}
	if c.File != "" {
		base, err := LoadConfig(c.File)
		if err != nil {
			return nil, err
		}
		if err := parseInto(base, name, args); err != nil {
			return nil, err
		}
		c = base
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

type fileConfig struct {
	Width     *int     `json:"width"`
	Height    *int     `json:"height"`
	CellSize  *int     `json:"cell_size"`
	Interval  *string  `json:"step_interval"`
	GridLines *bool    `json:"grid_lines"`
	Pattern   *string  `json:"pattern"`
	OriginRow *int     `json:"origin_row"`
	OriginCol *int     `json:"origin_col"`
	Density   *float64 `json:"density"`
	Seed      *int64   `json:"seed"`
	TPS       *int     `json:"tps"`
}

// LoadConfig reads JSON overrides from filename on top of the defaults.
func LoadConfig(filename string) (*Config, error) {
	c := NewConfig()
	c.File = filename

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}
	var fc fileConfig
	if err = json.Unmarshal(data, &fc); err != nil {
		return nil, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	setInt(&c.Width, fc.Width)
	setInt(&c.Height, fc.Height)
	setInt(&c.CellSize, fc.CellSize)
	setInt(&c.OriginRow, fc.OriginRow)
	setInt(&c.OriginCol, fc.OriginCol)
	setInt(&c.TPS, fc.TPS)
	if fc.Interval != nil {
		d, err := time.ParseDuration(*fc.Interval)
		if err != nil {
			return nil, errors.Wrapf(err, "[LoadConfig] bad step_interval in %+v", filename)
		}
		c.Interval = d
	}
	if fc.GridLines != nil {
		c.GridLines = *fc.GridLines
	}
	if fc.Pattern != nil {
		c.Pattern = *fc.Pattern
	}
	if fc.Density != nil {
		c.Density = *fc.Density
	}
	if fc.Seed != nil {
		c.Seed = *fc.Seed
	}
	return c, nil
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

// GridSize derives the grid dimensions from the display area and cell size.
func (c *Config) GridSize() core.Size {
	if c.CellSize <= 0 {
		return core.Size{}
	}
	return core.Size{Rows: c.Height / c.CellSize, Cols: c.Width / c.CellSize}
}

// Validate reports configuration errors before any simulation starts.
func (c *Config) Validate() error {
	if c.CellSize <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "cell size %d", c.CellSize)
	}
	if s := c.GridSize(); s.Rows <= 0 || s.Cols <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "%dx%d display holds no %dpx cells", c.Width, c.Height, c.CellSize)
	}
	if c.Interval <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "step interval %v", c.Interval)
	}
	if c.TPS <= 0 || c.TPS > int(time.Second) {
		return errors.Wrapf(ErrInvalidConfig, "tps %d", c.TPS)
	}
	if c.Density < 0 || c.Density > 1 {
		return errors.Wrapf(ErrInvalidConfig, "density %v outside [0, 1]", c.Density)
	}
	return nil
}

// Life returns the simulation config derived from c.
func (c *Config) Life() life.Config {
	s := c.GridSize()
	return life.Config{
		Rows:          s.Rows,
		Cols:          s.Cols,
		StepInterval:  c.Interval,
		ShowGridLines: c.GridLines,
	}
}

// SeedOptions returns the seeding options derived from c.
func (c *Config) SeedOptions() seed.Options {
	return seed.Options{
		Origin:  seed.Offset{Row: c.OriginRow, Col: c.OriginCol},
		Density: c.Density,
		Seed:    c.Seed,
	}
}

// NewDriver allocates a grid, seeds it with the configured pattern, and hands
// it to a fresh Driver.
func (c *Config) NewDriver() (*life.Driver, error) {
	lc := c.Life()
	g, err := lc.NewGrid()
	if err != nil {
		return nil, err
	}
	if _, err := seed.Apply(g, c.Pattern, c.SeedOptions()); err != nil {
		return nil, err
	}
	return lc.NewDriver(g)
}
