package stopwatch

import (
	"time"

	"github.com/cwbudde/stopwatch/internal/cpu"
)

// CycleClock reads the x86-64 time-stamp counter with RDTSCP. One tick is one
// counter increment, so durations are uncalibrated: they compare with each
// other but say nothing about seconds without CalibrateCycles.
//
// Reading it on an amd64 processor without RDTSCP faults; see
// CycleClockSupported. On other architectures it falls back to monotonic
// nanoseconds.
type CycleClock struct{}

// Now returns the current counter value.
func (CycleClock) Now() Instant[CycleClock] {
	return FromTicks[CycleClock](int64(cpu.ReadCycleCounter())) //nolint:gosec
}

// Period returns Second: one tick per raw counter increment, uncalibrated.
func (CycleClock) Period() Period {
	return Second
}

// CycleClockSupported reports whether CycleClock reads the hardware counter
// on this machine.
func CycleClockSupported() bool {
	return cpu.HasCycleCounter()
}

// CalibrateCycles estimates the wall-clock length of one CycleClock tick by
// spinning for window (clamped to between 1ms and 1s). The estimate is only
// meaningful on processors with an invariant counter and while the calling
// goroutine stays on one core.
func CalibrateCycles(window time.Duration) Period {
	cycles, nanos := cpu.Calibrate(window)
	if cycles <= 0 || nanos <= 0 {
		return Second
	}

	return calibratedPeriod(cycles, nanos)
}

// calibratedPeriod returns nanos / (cycles * 1e9) seconds per cycle.
func calibratedPeriod(cycles, nanos int64) Period {
	g := gcd(nanos, int64(time.Second))
	num, mul := nanos/g, int64(time.Second)/g

	num, den := reduce(num, cycles, mul)
	if num == 0 {
		return Second
	}

	return Period{Num: num, Den: den}
}
