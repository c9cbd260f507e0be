package life

import (
	"strconv"
	"time"

	"gridlife/internal/core"

	"github.com/pkg/errors"
)

// ErrNilGrid is returned when a Driver is constructed without a grid.
var ErrNilGrid = errors.New("initial grid is nil")

// Driver owns the live grid and advances it at a fixed cadence.
type Driver struct {
	current    *core.Grid
	timer      *core.FixedStep
	generation int
	showGrid   bool
}

// NewDriver takes ownership of initial. The caller must not mutate it
// afterwards.
func NewDriver(initial *core.Grid, interval time.Duration) (*Driver, error) {
	if initial == nil {
		return nil, ErrNilGrid
	}
	timer, err := core.NewFixedStep(interval)
	if err != nil {
		return nil, errors.Wrap(err, "life driver")
	}
	return &Driver{current: initial, timer: timer}, nil
}

// Current returns the live grid. Renderers must treat it as read-only.
func (d *Driver) Current() *core.Grid { return d.current }

// Generation returns the number of steps taken since construction.
func (d *Driver) Generation() int { return d.generation }

// Interval returns the time between generations.
func (d *Driver) Interval() time.Duration { return d.timer.Interval() }

// Elapsed returns the time accumulated toward the next generation.
func (d *Driver) Elapsed() time.Duration { return d.timer.Elapsed() }

// ShowGridLines reports whether renderers should inset cells.
func (d *Driver) ShowGridLines() bool { return d.showGrid }

// SetShowGridLines changes the grid-line presentation flag.
func (d *Driver) SetShowGridLines(on bool) { d.showGrid = on }

// Advance feeds delta into the step timer and performs at most one
// generation. It reports whether the grid changed hands.
func (d *Driver) Advance(delta time.Duration) bool {
	if !d.timer.Advance(delta) {
		return false
	}
	d.StepNow()
	return true
}

// StepNow performs one generation immediately, leaving the timer untouched.
func (d *Driver) StepNow() {
	d.current = Step(d.current)
	d.generation++
}

// Parameters reports the driver state for on-screen display.
func (d *Driver) Parameters() core.ParameterSnapshot {
	size := d.current.Size()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Simulation",
			Params: []core.Parameter{
				{Key: "generation", Label: "Generation", Value: strconv.Itoa(d.generation)},
				{Key: "population", Label: "Population", Value: strconv.Itoa(d.current.Population())},
				{Key: "interval", Label: "Step", Value: d.timer.Interval().String()},
			},
		},
		{
			Name: "Grid",
			Params: []core.Parameter{
				{Key: "rows", Label: "Rows", Value: strconv.Itoa(size.Rows)},
				{Key: "cols", Label: "Columns", Value: strconv.Itoa(size.Cols)},
				{Key: "grid_lines", Label: "Grid lines", Value: strconv.FormatBool(d.showGrid)},
			},
		},
	}}
}
