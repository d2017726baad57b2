package hold

import "time"

// Type is the discriminator of a hold notification.
type Type string

const (
	HoldStart Type = "hold-start" // Hold began, times are zero
	HoldEnd   Type = "hold-end"   // Hold ended, times are final
	Holding   Type = "holding"    // Periodic tick while the hold continues
)

// Event is delivered to hold listeners.
type Event struct {
	Type Type

	// DeltaTime is the time since the previous tick of this hold.
	DeltaTime time.Duration

	// ElapsedTime is the time since the hold started.
	ElapsedTime time.Duration

	// OriginalEvent is the input event that triggered the transition. Ticks
	// carry the event that started the hold. It is nil for a hold ended by
	// disabling the controller.
	OriginalEvent any

	// Target is the controller that dispatched the event.
	Target *Controller
}

// DeltaMilliseconds returns DeltaTime in fractional milliseconds.
func (e Event) DeltaMilliseconds() float64 {
	return float64(e.DeltaTime) / float64(time.Millisecond)
}

// ElapsedMilliseconds returns ElapsedTime in fractional milliseconds.
func (e Event) ElapsedMilliseconds() float64 {
	return float64(e.ElapsedTime) / float64(time.Millisecond)
}
