package hold

import (
	"time"

	"github.com/valerio/go-holdevent/hold/input"
	"github.com/valerio/go-holdevent/hold/timing"
)

// ElementHold turns pointer presses on one element into holds. The hold
// lasts while at least one pointer that pressed the element stays down.
type ElementHold struct {
	*Controller

	active map[int64]struct{}
	detach []func()
}

// NewElementHold binds a hold to pointer presses on el.
func NewElementHold(tb timing.Timebase, src input.Source, el input.Element, interval time.Duration) *ElementHold {
	h := &ElementHold{
		Controller: NewController(tb, interval),
		active:     make(map[int64]struct{}),
	}

	h.detach = []func(){
		src.OnPointerDown(el, h.onPointerDown),
		src.OnPointerUp(h.onPointerUp),
		src.OnBlur(h.onBlur),
	}
	return h
}

// ActivePointers returns how many pointers currently keep the hold alive.
func (h *ElementHold) ActivePointers() int {
	return len(h.active)
}

// Close detaches the hold from its input source. The controller keeps its
// listeners and state.
func (h *ElementHold) Close() {
	for _, off := range h.detach {
		off()
	}
	h.detach = nil
}

func (h *ElementHold) onPointerDown(ev input.PointerEvent) {
	h.active[ev.PointerID] = struct{}{}
	// every press triggers start, extra presses are absorbed by the controller
	h.Start(ev)
}

func (h *ElementHold) onPointerUp(ev input.PointerEvent) {
	if _, ok := h.active[ev.PointerID]; !ok {
		return
	}
	delete(h.active, ev.PointerID)
	if len(h.active) == 0 {
		h.End(ev)
	}
}

func (h *ElementHold) onBlur(ev input.FocusEvent) {
	clear(h.active)
	h.End(ev)
}
