// Package hold detects sustained press-and-hold interactions and reports
// them as a stream of events.
//
// A Controller owns the hold state machine. Start moves it from idle to
// holding and emits HoldStart; while holding it emits Holding on every tick,
// either once per frame or at a fixed interval; End emits HoldEnd and cancels
// the pending tick. ElementHold and KeyboardKeyHold wrap a Controller and feed
// it from an input.Source:
//
//	hub := input.NewHub()
//	loop := timing.NewLoop(60)
//	space := hold.NewKeyboardKeyHold(loop, hub, "Space", 0)
//	space.AddEventListener(hold.Holding, hold.Listen(func(e hold.Event) {
//		camera.Dolly(e.DeltaMilliseconds())
//	}))
//
// Everything in this package runs on the timebase's goroutine; nothing is
// locked.
package hold
