package input

import "github.com/valerio/go-holdevent/hold/dispatch"

// Source delivers raw input to subscribers. Each On* method returns a func
// that removes the subscription.
type Source interface {
	// OnPointerDown subscribes to presses that land on el.
	OnPointerDown(el Element, fn func(PointerEvent)) func()
	// OnPointerUp subscribes to releases anywhere, since a pointer may be released outside the element it pressed.
	OnPointerUp(fn func(PointerEvent)) func()
	OnKeyDown(fn func(KeyEvent)) func()
	OnKeyUp(fn func(KeyEvent)) func()
	OnBlur(fn func(FocusEvent)) func()
}

// Hub is the Source backends feed platform input into.
// Like the rest of the hold packages it must only be used from the event loop goroutine.
type Hub struct {
	pointers *dispatch.Dispatcher[Kind, PointerEvent]
	keys     *dispatch.Dispatcher[Kind, KeyEvent]
	focus    *dispatch.Dispatcher[Kind, FocusEvent]
}

func NewHub() *Hub {
	return &Hub{
		pointers: dispatch.New[Kind, PointerEvent](),
		keys:     dispatch.New[Kind, KeyEvent](),
		focus:    dispatch.New[Kind, FocusEvent](),
	}
}

func (h *Hub) OnPointerDown(el Element, fn func(PointerEvent)) func() {
	l := dispatch.Listen(func(ev PointerEvent) {
		if el.Contains(ev.X, ev.Y) {
			fn(ev)
		}
	})
	h.pointers.Add(PointerDown, l)
	return func() { h.pointers.Remove(PointerDown, l) }
}

func (h *Hub) OnPointerUp(fn func(PointerEvent)) func() {
	l := dispatch.Listen(fn)
	h.pointers.Add(PointerUp, l)
	return func() { h.pointers.Remove(PointerUp, l) }
}

func (h *Hub) OnKeyDown(fn func(KeyEvent)) func() {
	l := dispatch.Listen(fn)
	h.keys.Add(KeyDown, l)
	return func() { h.keys.Remove(KeyDown, l) }
}

func (h *Hub) OnKeyUp(fn func(KeyEvent)) func() {
	l := dispatch.Listen(fn)
	h.keys.Add(KeyUp, l)
	return func() { h.keys.Remove(KeyUp, l) }
}

func (h *Hub) OnBlur(fn func(FocusEvent)) func() {
	l := dispatch.Listen(fn)
	h.focus.Add(Blur, l)
	return func() { h.focus.Remove(Blur, l) }
}

func (h *Hub) PointerDown(ev PointerEvent) {
	h.pointers.Dispatch(PointerDown, ev)
}

func (h *Hub) PointerUp(ev PointerEvent) {
	h.pointers.Dispatch(PointerUp, ev)
}

func (h *Hub) KeyDown(ev KeyEvent) {
	h.keys.Dispatch(KeyDown, ev)
}

func (h *Hub) KeyUp(ev KeyEvent) {
	h.keys.Dispatch(KeyUp, ev)
}

func (h *Hub) Blur(ev FocusEvent) {
	h.focus.Dispatch(Blur, ev)
}

// ListenerCount returns the number of active subscriptions.
func (h *Hub) ListenerCount() int {
	return h.pointers.Total() + h.keys.Total() + h.focus.Total()
}
