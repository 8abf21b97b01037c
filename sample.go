package stopwatch

import (
	"fmt"
	"slices"
)

// Time returns the number of cycles fn takes to run once. See TimeWith.
func Time(fn func()) Duration[CycleClock] {
	return TimeWith(CycleClock{}, fn)
}

// TimeWith calls fn once and returns the time it took on clock. If fn
// panics, the panic propagates unchanged and no duration is produced.
func TimeWith[C Clock[C]](clock C, fn func()) Duration[C] {
	start := clock.Now()
	fn()

	return clock.Now().Sub(start)
}

// TimeFunc is TimeWith for functions that report failure by returning an
// error. The error is returned as is, with a zero duration.
func TimeFunc[C Clock[C]](clock C, fn func() error) (Duration[C], error) {
	start := clock.Now()

	err := fn()
	if err != nil {
		return 0, err
	}

	return clock.Now().Sub(start), nil
}

// Sample times fn n times in cycles. See SampleWith.
func Sample(n int, fn func()) []Duration[CycleClock] {
	return SampleWith(CycleClock{}, n, fn)
}

// SampleWith times n sequential calls of fn on clock and returns the
// durations sorted in ascending order. The order of equal durations is
// unspecified. n == 0 returns an empty slice without calling fn, and a
// negative n panics with an error wrapping ErrInvalidCount.
//
// A panic in fn aborts the remaining calls and propagates unchanged.
func SampleWith[C Clock[C]](clock C, n int, fn func()) []Duration[C] {
	if n < 0 {
		panic(fmt.Errorf("%w: %d", ErrInvalidCount, n))
	}

	samples := make([]Duration[C], n)
	for i := range samples {
		samples[i] = TimeWith(clock, fn)
	}

	slices.Sort(samples)

	return samples
}

// SampleFunc is SampleWith for functions that return an error. The first
// error stops sampling and is returned unchanged with a nil slice.
func SampleFunc[C Clock[C]](clock C, n int, fn func() error) ([]Duration[C], error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, n)
	}

	samples := make([]Duration[C], n)
	for i := range samples {
		d, err := TimeFunc(clock, fn)
		if err != nil {
			return nil, err
		}

		samples[i] = d
	}

	slices.Sort(samples)

	return samples, nil
}
