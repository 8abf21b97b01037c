package stopwatch

import "errors"

// ErrInvalidCount is returned (or, from SampleWith, panicked with) when a
// sample count is negative.
var ErrInvalidCount = errors.New("stopwatch: invalid sample count")
