package stopwatch

import (
	"math"
	"math/bits"
	"time"
)

// Clock is the constraint satisfied by clock types. C is the clock type
// itself, which ties every Instant and Duration to the clock that produced it.
//
// Now should never return an earlier instant than a previous call. This is
// best effort: CycleClock can go backwards when the goroutine migrates
// between cores whose counters are not synchronized.
type Clock[C any] interface {
	Now() Instant[C]
	Period() Period
}

// Duration is a signed tick count measured by clock C.
type Duration[C any] int64

// Ticks returns d as a plain tick count.
func (d Duration[C]) Ticks() int64 {
	return int64(d)
}

// Instant is a point in time of clock C, stored as ticks since the clock's
// epoch.
type Instant[C any] struct {
	ticks int64
}

// FromTicks returns the instant ticks after the epoch of clock C. Clock
// implementations outside this package use it to build their Now result.
func FromTicks[C any](ticks int64) Instant[C] {
	return Instant[C]{ticks: ticks}
}

// Ticks returns the number of ticks since the clock's epoch.
func (t Instant[C]) Ticks() int64 {
	return t.ticks
}

// Add returns t+d.
func (t Instant[C]) Add(d Duration[C]) Instant[C] {
	return Instant[C]{ticks: t.ticks + int64(d)}
}

// Sub returns t-u. Counter wraparound yields the wrapped difference.
func (t Instant[C]) Sub(u Instant[C]) Duration[C] {
	return Duration[C](t.ticks - u.ticks)
}

// Compare returns -1, 0 or +1 as t is before, equal to or after u.
func (t Instant[C]) Compare(u Instant[C]) int {
	switch {
	case t.ticks < u.ticks:
		return -1
	case t.ticks > u.ticks:
		return 1
	default:
		return 0
	}
}

// Before reports whether t is before u.
func (t Instant[C]) Before(u Instant[C]) bool {
	return t.ticks < u.ticks
}

// After reports whether t is after u.
func (t Instant[C]) After(u Instant[C]) bool {
	return t.ticks > u.ticks
}

// Period is the length of one clock tick, Num/Den seconds. The zero Period
// converts every value to zero.
type Period struct {
	Num int64
	Den int64
}

// Common periods.
var (
	Second     = Period{Num: 1, Den: 1}
	Nanosecond = Period{Num: 1, Den: int64(time.Second)}
)

// Std converts a tick count to a time.Duration, truncating towards zero and
// saturating at the limits of time.Duration.
func (p Period) Std(ticks int64) time.Duration {
	return time.Duration(scale(ticks, p.Num*int64(time.Second), p.Den))
}

// Ticks converts d to a tick count, truncating towards zero.
func (p Period) Ticks(d time.Duration) int64 {
	return scale(int64(d), p.Den, p.Num*int64(time.Second))
}

// scale returns v*num/den truncated towards zero, using a 128-bit
// intermediate product. Results outside the int64 range saturate.
func scale(v, num, den int64) int64 {
	if den == 0 {
		return 0
	}

	neg := (v < 0) != ((num < 0) != (den < 0))

	hi, lo := bits.Mul64(abs(v), abs(num))
	ud := abs(den)

	limit := uint64(math.MaxInt64)
	if neg {
		limit++
	}

	if hi >= ud {
		return saturate(neg)
	}

	q, _ := bits.Div64(hi, lo, ud)
	if q > limit {
		return saturate(neg)
	}

	if neg {
		return int64(-q) //nolint:gosec
	}

	return int64(q) //nolint:gosec
}

func abs(v int64) uint64 {
	if v < 0 {
		return uint64(-v) //nolint:gosec
	}

	return uint64(v)
}

func saturate(neg bool) int64 {
	if neg {
		return math.MinInt64
	}

	return math.MaxInt64
}

// reduce returns the fraction num/den in lowest terms, halving both sides
// until den*mul fits in an int64. The halving only drops low-order bits.
func reduce(num, den, mul int64) (int64, int64) {
	if g := gcd(num, den); g > 1 {
		num /= g
		den /= g
	}

	for den > math.MaxInt64/mul {
		num >>= 1
		den >>= 1
	}

	return num, den * mul
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}

	if a < 0 {
		return -a
	}

	return a
}

// SystemClock reads the wall clock via time.Now, in nanoseconds since the
// Unix epoch. The wall clock can be stepped by the operating system; prefer
// MonotonicClock for measuring intervals.
type SystemClock struct{}

// Now returns the current wall-clock time.
func (SystemClock) Now() Instant[SystemClock] {
	return FromTicks[SystemClock](time.Now().UnixNano())
}

// Period returns Nanosecond.
func (SystemClock) Period() Period {
	return Nanosecond
}

var processStart = time.Now()

// MonotonicClock counts nanoseconds since package initialization using Go's
// monotonic clock reading, which never steps backwards.
type MonotonicClock struct{}

// Now returns the time elapsed since package initialization.
func (MonotonicClock) Now() Instant[MonotonicClock] {
	return FromTicks[MonotonicClock](int64(time.Since(processStart)))
}

// Period returns Nanosecond.
func (MonotonicClock) Period() Period {
	return Nanosecond
}
