package stopwatch_test

import (
	"fmt"
	"time"

	"github.com/cwbudde/stopwatch"
	"github.com/cwbudde/stopwatch/stopwatchtest"
)

func ExampleSampleWith() {
	clock := stopwatchtest.NewStepClock(0, 3)

	samples := stopwatch.SampleWith(clock, 5, func() {})
	fmt.Println(len(samples), samples[len(samples)/2])
	// Output: 5 3
}

func ExampleNewTimerWith() {
	clock := stopwatchtest.NewManualClock(0)
	timer := stopwatch.NewTimerWith(clock, 100)

	for step := 0; !timer.Done(); step++ {
		clock.Advance(40)
		fmt.Println("step", step, "remaining", timer.Remaining())
	}
	// Output:
	// step 0 remaining 60
	// step 1 remaining 20
	// step 2 remaining -20
}

func ExampleSample() {
	if !stopwatch.CycleClockSupported() {
		return
	}

	samples := stopwatch.Sample(101, func() { time.Sleep(time.Microsecond) })
	median := samples[len(samples)/2]

	period := stopwatch.CalibrateCycles(10 * time.Millisecond)
	fmt.Println("median:", period.Std(median.Ticks()))
}
