// Package stopwatch measures how long units of work take.
//
// Clocks are type parameters rather than interface values, so the clock read
// around the measured function compiles to a direct call for value clocks:
//
//	d := stopwatch.Time(work)                        // CycleClock, raw cycles
//	w := stopwatch.TimeWith(stopwatch.SystemClock{}, work)
//	s := stopwatch.Sample(101, work)                 // sorted ascending
//	median := s[len(s)/2]
//
// Durations and instants carry their clock as a type parameter, so values
// from different clocks cannot be mixed. CycleClock durations are raw,
// uncalibrated cycle counts; use CalibrateCycles to relate them to wall time.
//
// Nothing here pins goroutines to a core or compensates for frequency
// scaling. Callers who need stable cycle counts should lock the goroutine to
// its thread and pin that thread themselves.
package stopwatch
