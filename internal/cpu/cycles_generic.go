//go:build !amd64

package cpu

import "time"

var epoch = time.Now()

// readCycleCounter falls back to the monotonic clock on targets without an
// RDTSCP routine. Returns nanoseconds since package initialization.
func readCycleCounter() uint64 {
	return uint64(time.Since(epoch).Nanoseconds()) //nolint:gosec
}

func hasCycleCounter() bool {
	return false
}
