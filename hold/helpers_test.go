package hold

import (
	"time"

	"github.com/valerio/go-holdevent/hold/timing"
)

var epoch = time.Unix(1_700_000_000, 0)

const testFrameRate = 50 // 20ms frames

// recorder collects every event a controller emits.
type recorder struct {
	events []Event
}

func record(c *Controller) *recorder {
	r := &recorder{}
	l := Listen(func(e Event) { r.events = append(r.events, e) })
	c.AddEventListener(HoldStart, l)
	c.AddEventListener(Holding, l)
	c.AddEventListener(HoldEnd, l)
	return r
}

func (r *recorder) types() []Type {
	out := make([]Type, len(r.events))
	for i, e := range r.events {
		out[i] = e.Type
	}
	return out
}

func (r *recorder) count(typ Type) int {
	n := 0
	for _, e := range r.events {
		if e.Type == typ {
			n++
		}
	}
	return n
}

func (r *recorder) last() Event {
	return r.events[len(r.events)-1]
}

func (r *recorder) reset() {
	r.events = nil
}

func newManual() *timing.Manual {
	return timing.NewManual(epoch, testFrameRate)
}
