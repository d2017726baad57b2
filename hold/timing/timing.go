package timing

import (
	"context"
	"time"
)

// Clock provides the current time. Implementations must be monotonic.
type Clock interface {
	Now() time.Time
}

// Timer is a handle to one scheduled callback.
type Timer interface {
	// Stop prevents the callback from running. It returns false if the
	// callback already ran or was already stopped.
	Stop() bool
}

// Scheduler runs callbacks later on the same goroutine that owns the timebase.
type Scheduler interface {
	// AfterFunc runs fn once, d after the call.
	AfterFunc(d time.Duration, fn func()) Timer

	// RequestFrame runs fn once, on the next display frame.
	RequestFrame(fn func()) Timer
}

// Timebase is the clock and scheduler pair a hold controller runs on.
type Timebase interface {
	Clock
	Scheduler
}

// Runner is a Timebase that also drives its own callbacks until cancelled.
type Runner interface {
	Timebase
	Run(ctx context.Context) error
}

// DefaultFrameRate is the frame cadence used when none is configured.
const DefaultFrameRate = 60

// FrameDuration returns the duration of a single frame at the given rate.
// Non-positive rates fall back to DefaultFrameRate.
func FrameDuration(rate int) time.Duration {
	if rate <= 0 {
		rate = DefaultFrameRate
	}
	return time.Second / time.Duration(rate)
}
