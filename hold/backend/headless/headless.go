package headless

import (
	"log/slog"
	"time"

	"github.com/valerio/go-holdevent/hold/backend"
	"github.com/valerio/go-holdevent/hold/input"
)

// Backend replays a script into the hub. It is meant to run on a virtual
// timebase so every run of the same script produces the same events.
type Backend struct {
	config backend.BackendConfig
	script *Script
	start  time.Time
	next   int
	frames int
	done   bool
}

func New(script *Script) *Backend {
	return &Backend{script: script}
}

func (h *Backend) Init(config backend.BackendConfig) error {
	h.config = config
	h.next = 0
	h.frames = 0
	h.done = false

	slog.Info("Running headless mode",
		"steps", len(h.script.Steps),
		"duration", h.script.Duration())
	return nil
}

// Update applies every step due by now and requests quit once the script and its tail have run.
func (h *Backend) Update(now time.Time) error {
	if h.frames == 0 {
		h.start = now
	}
	h.frames++
	elapsed := now.Sub(h.start)

	for h.next < len(h.script.Steps) && h.script.Steps[h.next].At <= elapsed {
		h.apply(h.script.Steps[h.next], now)
		h.next++
	}

	// Log progress periodically
	if h.frames%60 == 0 {
		slog.Debug("Frame progress", "frames", h.frames, "elapsed", elapsed)
	}

	if !h.done && h.next == len(h.script.Steps) && elapsed >= h.script.Duration() {
		h.done = true
		slog.Info("Headless execution completed", "frames", h.frames, "elapsed", elapsed)
		h.config.Callbacks.Quit()
	}
	return nil
}

func (h *Backend) Cleanup() error {
	return nil
}

func (h *Backend) apply(step Step, now time.Time) {
	hub := h.config.Hub
	slog.Debug("Script step", "at", step.At, "event", step.Event, "pointer", step.Pointer, "code", step.Code)

	switch step.Event {
	case input.PointerDown.String():
		hub.PointerDown(input.PointerEvent{PointerID: step.Pointer, X: step.X, Y: step.Y, Target: h.targetAt(step.X, step.Y), Timestamp: now})
	case input.PointerUp.String():
		hub.PointerUp(input.PointerEvent{PointerID: step.Pointer, X: step.X, Y: step.Y, Target: h.targetAt(step.X, step.Y), Timestamp: now})
	case input.KeyDown.String():
		hub.KeyDown(input.KeyEvent{Code: step.Code, Repeat: step.Repeat, Target: step.target(), Timestamp: now})
	case input.KeyUp.String():
		hub.KeyUp(input.KeyEvent{Code: step.Code, Target: step.target(), Timestamp: now})
	case input.Blur.String():
		hub.Blur(input.FocusEvent{Timestamp: now})
	}
}

func (h *Backend) targetAt(x, y int) input.Target {
	if r, ok := backend.RegionAt(h.config.Regions, x, y); ok {
		return r.Target()
	}
	return input.Target{}
}
