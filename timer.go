package stopwatch

import (
	"math"
	"time"
)

// Timer is an immutable deadline on clock C. It never fires on its own;
// callers poll Done or Remaining between steps of their work.
type Timer[C Clock[C]] struct {
	clock  C
	expiry Instant[C]
}

// NewTimer returns a timer on the system wall clock that expires d from now.
func NewTimer(d time.Duration) Timer[SystemClock] {
	var clock SystemClock

	return NewTimerWith(clock, Duration[SystemClock](clock.Period().Ticks(d)))
}

// NewTimerWith returns a timer that expires d after clock.Now().
func NewTimerWith[C Clock[C]](clock C, d Duration[C]) Timer[C] {
	return NewTimerAt(clock, clock.Now(), d)
}

// NewTimerAt returns a timer that expires d after now. Building several
// timers from one snapshot keeps their expiries in the order of their
// durations. An expiry beyond the range of Instant saturates, so
// NewTimerAt(clock, now, math.MaxInt64) never expires in practice.
func NewTimerAt[C Clock[C]](clock C, now Instant[C], d Duration[C]) Timer[C] {
	expiry := now.Add(d)

	switch {
	case d > 0 && expiry.Before(now):
		expiry = FromTicks[C](math.MaxInt64)
	case d < 0 && expiry.After(now):
		expiry = FromTicks[C](math.MinInt64)
	}

	return Timer[C]{clock: clock, expiry: expiry}
}

// Expiry returns the instant at which the timer expires.
func (t Timer[C]) Expiry() Instant[C] {
	return t.expiry
}

// Done reports whether the timer has expired.
func (t Timer[C]) Done() bool {
	return t.DoneAt(t.clock.Now())
}

// DoneAt reports whether the timer has expired as of now.
func (t Timer[C]) DoneAt(now Instant[C]) bool {
	return now.Compare(t.expiry) >= 0
}

// Remaining returns the time left until expiry. It is negative once the
// timer has expired.
func (t Timer[C]) Remaining() Duration[C] {
	return t.RemainingAt(t.clock.Now())
}

// RemainingAt returns the time left until expiry as of now. The result
// saturates instead of wrapping, so its sign always agrees with DoneAt.
func (t Timer[C]) RemainingAt(now Instant[C]) Duration[C] {
	d := t.expiry.Sub(now)

	switch c := now.Compare(t.expiry); {
	case c < 0 && d <= 0:
		return math.MaxInt64
	case c > 0 && d >= 0:
		return math.MinInt64
	}

	return d
}
