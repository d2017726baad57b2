package backend

import (
	"log/slog"
	"time"

	"github.com/valerio/go-holdevent/hold/input"
)

// Backend is a platform that produces input and shows hold state.
// Backends are responsible for:
// - Polling platform events (keyboard, mouse, touch, window focus)
// - Translating them into input.Hub calls
// - Rendering the configured regions and the current hold status
type Backend interface {
	// Init configures the backend. This is a required step before calling Update.
	Init(config BackendConfig) error

	// Update is called once per frame on the event loop goroutine with the
	// loop's current time. Backends should:
	// 1. Poll for pending platform events without blocking
	// 2. Feed them to config.Hub
	// 3. Render regions and status
	Update(now time.Time) error

	// Cleanup resources when shutting down
	Cleanup() error
}

// BackendConfig holds configuration for backends
type BackendConfig struct {
	Title             string
	Hub               *input.Hub
	Regions           []input.Region // Drawn on screen, first match wins for focus
	Status            StatusProvider
	KeyReleaseTimeout time.Duration // Terminals only report presses, keys unseen this long are released
	LogLevel          slog.Level
	Callbacks         BackendCallbacks
}

// BackendCallbacks allows backends to communicate with the app
type BackendCallbacks struct {
	// Backend requests shutdown (e.g., window close)
	OnQuit func()

	// Backend requests all holds be enabled or disabled
	OnToggleEnabled func()
}

// HoldStatus is a snapshot of one hold for display.
type HoldStatus struct {
	Name    string
	Enabled bool
	Holding bool
	Elapsed time.Duration // Of the current hold, or the last one when idle
	Ticks   int
	Holds   int // Completed holds
}

// StatusProvider exposes hold state to backends.
type StatusProvider interface {
	Status() []HoldStatus
}

// RegionAt returns the first region containing the point.
func RegionAt(regions []input.Region, x, y int) (input.Region, bool) {
	for _, r := range regions {
		if r.Contains(x, y) {
			return r, true
		}
	}
	return input.Region{}, false
}

// Quit invokes OnQuit if set.
func (c BackendCallbacks) Quit() {
	if c.OnQuit != nil {
		c.OnQuit()
	}
}

// ToggleEnabled invokes OnToggleEnabled if set.
func (c BackendCallbacks) ToggleEnabled() {
	if c.OnToggleEnabled != nil {
		c.OnToggleEnabled()
	}
}
