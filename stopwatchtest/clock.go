// Package stopwatchtest provides deterministic clocks for testing code that
// uses package stopwatch.
package stopwatchtest

import (
	"sync/atomic"

	"github.com/cwbudde/stopwatch"
)

// StepClock advances by a fixed step on every call to Now. Timing an empty
// function with it yields exactly one step.
type StepClock struct {
	ticks  atomic.Int64
	step   int64
	period stopwatch.Period
	calls  atomic.Int64
}

// NewStepClock returns a nanosecond StepClock whose first Now returns start.
func NewStepClock(start, step int64) *StepClock {
	c := &StepClock{step: step, period: stopwatch.Nanosecond}
	c.ticks.Store(start)

	return c
}

// Now returns the current instant and then advances the clock by one step.
func (c *StepClock) Now() stopwatch.Instant[*StepClock] {
	c.calls.Add(1)

	return stopwatch.FromTicks[*StepClock](c.ticks.Add(c.step) - c.step)
}

// Period returns the tick period, stopwatch.Nanosecond by default and for
// the zero StepClock.
func (c *StepClock) Period() stopwatch.Period {
	if c.period == (stopwatch.Period{}) {
		return stopwatch.Nanosecond
	}

	return c.period
}

// WithPeriod sets the tick period and returns c.
func (c *StepClock) WithPeriod(p stopwatch.Period) *StepClock {
	c.period = p

	return c
}

// Calls returns how many times Now has been called.
func (c *StepClock) Calls() int64 {
	return c.calls.Load()
}

// ManualClock only moves when told to. Its Now is safe for concurrent use.
type ManualClock struct {
	ticks atomic.Int64
}

// NewManualClock returns a nanosecond ManualClock set to start.
func NewManualClock(start int64) *ManualClock {
	c := &ManualClock{}
	c.ticks.Store(start)

	return c
}

// Now returns the current instant.
func (c *ManualClock) Now() stopwatch.Instant[*ManualClock] {
	return stopwatch.FromTicks[*ManualClock](c.ticks.Load())
}

// Period returns stopwatch.Nanosecond.
func (*ManualClock) Period() stopwatch.Period {
	return stopwatch.Nanosecond
}

// Set moves the clock to ticks, which may be in the past.
func (c *ManualClock) Set(ticks int64) {
	c.ticks.Store(ticks)
}

// Advance moves the clock forward by d and returns the new instant.
func (c *ManualClock) Advance(d stopwatch.Duration[*ManualClock]) stopwatch.Instant[*ManualClock] {
	return stopwatch.FromTicks[*ManualClock](c.ticks.Add(int64(d)))
}
