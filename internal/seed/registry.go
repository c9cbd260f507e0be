package seed

import (
	"sort"

	"gridlife/internal/core"

	"github.com/pkg/errors"
)

// ErrUnknownPattern is returned by Apply for names with no registered seeder.
var ErrUnknownPattern = errors.New("unknown pattern")

// RandomName selects the uniformly random fill.
const RandomName = "random"

// DefaultDensity is the probability of a cell starting Alive in a random fill.
const DefaultDensity = 1.0 / 3.0

// Options parameterizes a seeder.
type Options struct {
	Origin  Offset
	Density float64
	Seed    int64
}

// DefaultOptions places shapes at the top-left corner and uses the default
// random density.
func DefaultOptions() Options {
	return Options{Density: DefaultDensity, Seed: 42}
}

// Seeder writes Alive cells into an all-Dead grid and returns the count.
type Seeder func(g *core.Grid, opts Options) int

var seeders = map[string]Seeder{}

// Register adds a seeder under the provided name.
func Register(name string, s Seeder) {
	if name == "" || s == nil {
		return
	}
	seeders[name] = s
}

// RegisterShape registers a seeder that places shape at the options origin.
func RegisterShape(shape Shape) {
	Register(shape.Name, func(g *core.Grid, opts Options) int {
		return Place(g, shape, opts.Origin)
	})
}

// Names returns the registered pattern names in sorted order.
func Names() []string {
	names := make([]string, 0, len(seeders))
	for k := range seeders {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Apply seeds g with the named pattern.
func Apply(g *core.Grid, name string, opts Options) (int, error) {
	s, ok := seeders[name]
	if !ok {
		return 0, errors.Wrapf(ErrUnknownPattern, "%q", name)
	}
	return s(g, opts), nil
}

func init() {
	Register(RandomName, func(g *core.Grid, opts Options) int {
		return Random(g, core.NewRNG(opts.Seed), opts.Density)
	})
	for _, s := range []Shape{Glider, LightweightSpaceship, GosperGun, Blinker, Block} {
		RegisterShape(s)
	}
}
