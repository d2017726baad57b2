package dispatch

// Listener wraps a callback so it can be registered and removed by identity.
// Go funcs are not comparable, so the pointer returned by Listen is the handle.
type Listener[E any] struct {
	fn func(E)
}

// Listen creates a new listener handle for fn.
func Listen[E any](fn func(E)) *Listener[E] {
	return &Listener[E]{fn: fn}
}

// Dispatcher keeps ordered listener lists per event type and calls them synchronously.
// It is not safe for concurrent use; callers own the goroutine it runs on.
type Dispatcher[K comparable, E any] struct {
	listeners map[K][]*Listener[E]
}

func New[K comparable, E any]() *Dispatcher[K, E] {
	return &Dispatcher[K, E]{
		listeners: make(map[K][]*Listener[E]),
	}
}

// Add registers l for typ. Registering the same listener twice for a type is a no-op.
func (d *Dispatcher[K, E]) Add(typ K, l *Listener[E]) {
	if l == nil || d.Has(typ, l) {
		return
	}
	d.listeners[typ] = append(d.listeners[typ], l)
}

// Remove unregisters l for typ, if present.
func (d *Dispatcher[K, E]) Remove(typ K, l *Listener[E]) {
	list := d.listeners[typ]
	for i, existing := range list {
		if existing != l {
			continue
		}
		list = append(list[:i], list[i+1:]...)
		if len(list) == 0 {
			delete(d.listeners, typ)
		} else {
			d.listeners[typ] = list
		}
		return
	}
}

// Has reports whether l is registered for typ.
func (d *Dispatcher[K, E]) Has(typ K, l *Listener[E]) bool {
	for _, existing := range d.listeners[typ] {
		if existing == l {
			return true
		}
	}
	return false
}

// Len returns the number of listeners registered for typ.
func (d *Dispatcher[K, E]) Len(typ K) int {
	return len(d.listeners[typ])
}

// Total returns the number of listeners across all types.
func (d *Dispatcher[K, E]) Total() int {
	n := 0
	for _, list := range d.listeners {
		n += len(list)
	}
	return n
}

// Dispatch calls every listener registered for typ, in registration order.
// The list is snapshotted first: changes made by listeners apply to the next dispatch.
// Panics raised by listeners are not recovered.
func (d *Dispatcher[K, E]) Dispatch(typ K, evt E) {
	list := d.listeners[typ]
	if len(list) == 0 {
		return
	}
	snapshot := make([]*Listener[E], len(list))
	copy(snapshot, list)

	for _, l := range snapshot {
		l.fn(evt)
	}
}
