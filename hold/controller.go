package hold

import (
	"log/slog"
	"time"

	"github.com/valerio/go-holdevent/hold/dispatch"
	"github.com/valerio/go-holdevent/hold/timing"
)

// Listener is a registered hold callback. Keep the pointer to remove it later.
type Listener = dispatch.Listener[Event]

// Listen wraps fn so it can be passed to AddEventListener and RemoveEventListener.
func Listen(fn func(Event)) *Listener {
	return dispatch.Listen(fn)
}

// Controller tracks one hold at a time and emits hold-start, holding and
// hold-end events. Start and End are triggers: they are ignored while the
// controller is disabled or already in the requested state.
//
// A Controller is driven from the goroutine that runs its timebase.
type Controller struct {
	listeners *dispatch.Dispatcher[Type, Event]
	timebase  timing.Timebase
	interval  time.Duration

	enabled bool
	holding bool
	ending  bool

	deltaTime   time.Duration
	elapsedTime time.Duration
	lastTick    time.Time
	origin      any

	// pending is the single outstanding tick while holding
	pending timing.Timer
}

// NewController creates an enabled, idle controller. A positive interval
// ticks at that fixed delay; zero or negative ticks once per frame.
func NewController(tb timing.Timebase, interval time.Duration) *Controller {
	return &Controller{
		listeners: dispatch.New[Type, Event](),
		timebase:  tb,
		interval:  interval,
		enabled:   true,
	}
}

func (c *Controller) AddEventListener(typ Type, l *Listener) {
	c.listeners.Add(typ, l)
}

func (c *Controller) RemoveEventListener(typ Type, l *Listener) {
	c.listeners.Remove(typ, l)
}

// ListenerCount returns the number of listeners registered for typ.
func (c *Controller) ListenerCount(typ Type) int {
	return c.listeners.Len(typ)
}

func (c *Controller) Enabled() bool {
	return c.enabled
}

// SetEnabled toggles the controller. Disabling during a hold ends it
// immediately; enabling never starts one.
func (c *Controller) SetEnabled(enabled bool) {
	if c.enabled == enabled {
		return
	}
	if !enabled && c.holding {
		c.end(nil)
	}
	c.enabled = enabled
}

func (c *Controller) Holding() bool {
	return c.holding
}

// Interval returns the tick delay, zero meaning per frame.
func (c *Controller) Interval() time.Duration {
	if c.interval < 0 {
		return 0
	}
	return c.interval
}

// Start begins a hold caused by origin.
func (c *Controller) Start(origin any) {
	if !c.enabled || c.holding {
		return
	}

	c.deltaTime = 0
	c.elapsedTime = 0
	c.lastTick = c.timebase.Now()
	c.origin = origin
	c.holding = true

	slog.Debug("Hold started", "interval", c.Interval())
	c.emit(HoldStart, origin)

	// a hold-start listener may have ended or restarted the hold already
	if !c.holding || c.pending != nil {
		return
	}
	c.pending = c.schedule(c.tick)
}

// End finishes the current hold, caused by origin.
func (c *Controller) End(origin any) {
	if !c.enabled || !c.holding {
		return
	}
	c.end(origin)
}

func (c *Controller) end(origin any) {
	// hold-end listeners may disable the controller, which must not end twice
	if c.ending {
		return
	}
	c.ending = true
	defer func() { c.ending = false }()

	c.advance()

	slog.Debug("Hold ended", "elapsed", c.elapsedTime)
	c.emit(HoldEnd, origin)

	if c.pending != nil {
		c.pending.Stop()
		c.pending = nil
	}
	c.holding = false
	c.origin = nil
}

func (c *Controller) tick() {
	c.pending = c.schedule(c.tick)

	c.advance()
	c.emit(Holding, c.origin)
}

func (c *Controller) advance() {
	now := c.timebase.Now()
	c.deltaTime = now.Sub(c.lastTick)
	c.elapsedTime += c.deltaTime
	c.lastTick = now
}

func (c *Controller) schedule(fn func()) timing.Timer {
	if c.interval > 0 {
		return c.timebase.AfterFunc(c.interval, fn)
	}
	return c.timebase.RequestFrame(fn)
}

func (c *Controller) emit(typ Type, origin any) {
	c.listeners.Dispatch(typ, Event{
		Type:          typ,
		DeltaTime:     c.deltaTime,
		ElapsedTime:   c.elapsedTime,
		OriginalEvent: origin,
		Target:        c,
	})
}
