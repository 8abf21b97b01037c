// Package cpu isolates the raw hardware cycle-counter read behind a small,
// safe API. Nothing outside this package touches the instruction directly.
package cpu

import "time"

// ReadCycleCounter returns the processor's time-stamp counter as read by one
// RDTSCP instruction, the EDX:EAX halves combined into a single value.
//
// The read is an assembly routine, so the compiler can neither inline it nor
// move loads, stores or calls across it. On targets without the assembly
// routine it returns monotonic nanoseconds instead (see HasCycleCounter).
//
// Calling it on an amd64 processor without RDTSCP faults. Check
// HasCycleCounter first when that is possible.
func ReadCycleCounter() uint64 {
	return readCycleCounter()
}

// CyclesSince returns the number of cycles elapsed since start. The result
// wraps if the counter went backwards, e.g. after a migration between cores
// whose counters are not synchronized.
func CyclesSince(start uint64) uint64 {
	return ReadCycleCounter() - start
}

// HasCycleCounter reports whether ReadCycleCounter is backed by the hardware
// instruction on this machine.
func HasCycleCounter() bool {
	return hasCycleCounter()
}

// Calibration window bounds.
const (
	MinCalibrationWindow = time.Millisecond
	MaxCalibrationWindow = time.Second
)

// Calibrate busy-waits for roughly window and returns the cycles counted and
// the wall-clock nanoseconds that elapsed meanwhile. The window is clamped to
// [MinCalibrationWindow, MaxCalibrationWindow].
//
// The ratio is only meaningful on processors with an invariant counter, and
// the caller is responsible for keeping the goroutine on one core.
func Calibrate(window time.Duration) (cycles, nanos int64) {
	window = min(max(window, MinCalibrationWindow), MaxCalibrationWindow)

	start := time.Now()
	startCycles := ReadCycleCounter()

	for time.Since(start) < window {
		// Spin
	}

	cycles = int64(CyclesSince(startCycles)) //nolint:gosec
	nanos = time.Since(start).Nanoseconds()

	return cycles, nanos
}
