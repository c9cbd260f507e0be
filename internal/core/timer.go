package core

import (
	"time"

	"github.com/pkg/errors"
)

// ErrInvalidInterval is returned when a fixed step is configured with a
// non-positive interval.
var ErrInvalidInterval = errors.New("step interval must be positive")

// FixedStep accumulates elapsed time and releases at most one tick per call.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
}

// NewFixedStep constructs a FixedStep that ticks once per interval.
func NewFixedStep(interval time.Duration) (*FixedStep, error) {
	if interval <= 0 {
		return nil, errors.Wrapf(ErrInvalidInterval, "got %v", interval)
	}
	return &FixedStep{step: interval}, nil
}

// Interval returns the configured tick length.
func (f *FixedStep) Interval() time.Duration { return f.step }

// Elapsed returns the time accumulated since the last tick.
func (f *FixedStep) Elapsed() time.Duration { return f.accumulator }

// Advance adds delta to the accumulator and reports whether a tick is due.
// When it is, exactly one interval is subtracted; any further backlog stays
// in the accumulator for later calls. Negative deltas count as zero.
func (f *FixedStep) Advance(delta time.Duration) bool {
	if delta > 0 {
		f.accumulator += delta
	}
	if f.accumulator < f.step {
		return false
	}
	f.accumulator -= f.step
	return true
}

// Clock measures wall-clock time between successive Delta calls.
type Clock struct {
	last time.Time
	now  func() time.Time
}

// NewClock returns a Clock backed by time.Now.
func NewClock() *Clock { return &Clock{now: time.Now} }

// Delta returns the time since the previous call, or zero on the first call.
func (c *Clock) Delta() time.Duration {
	now := c.now()
	if c.last.IsZero() {
		c.last = now
	}
	d := now.Sub(c.last)
	c.last = now
	return d
}
