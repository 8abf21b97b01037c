package cpu

import (
	"math"
	"runtime"
	"testing"
	"time"
)

// TestCycleCounterDiagnostics logs what the counter looks like on this
// machine: back-to-back read overhead and a short calibration.
func TestCycleCounterDiagnostics(t *testing.T) {
	t.Logf("%s/%s, RDTSCP=%v", runtime.GOOS, runtime.GOARCH, HasCycleCounter())

	requireCounter(t)

	// Smallest gap between two consecutive reads is the fixed cost every
	// measurement carries.
	overhead := uint64(math.MaxUint64)
	for range 10_000 {
		start := ReadCycleCounter()
		if d := CyclesSince(start); d < overhead {
			overhead = d
		}
	}

	t.Logf("read overhead: %d ticks", overhead)

	cycles, nanos := Calibrate(5 * time.Millisecond)
	t.Logf("calibration: %d ticks in %d ns (%.3f ticks/ns)", cycles, nanos, float64(cycles)/float64(nanos))
}
