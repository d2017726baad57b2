//go:build sdl2

package sdl2

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/valerio/go-holdevent/hold/backend"
	"github.com/valerio/go-holdevent/hold/input"
	"github.com/veandco/go-sdl2/sdl"
)

const (
	// Regions are laid out in terminal-like cells, each drawn as a square of cellSize pixels
	cellSize     = 16
	windowWidth  = 40 * cellSize
	windowHeight = 30 * cellSize

	// Touch fingers get pointer ids above the mouse buttons
	touchPointerBase = 1000
)

// Backend implements the Backend interface using SDL2 bindings
// Note: building this requires SDL2 development libraries installed.
// Default builds skip this and use a stub, see build tags (sdl2)
type Backend struct {
	window    *sdl.Window
	renderer  *sdl.Renderer
	running   bool
	callbacks backend.BackendCallbacks
	config    backend.BackendConfig

	focused *input.Region // Text region receiving key events, if any
	title   string        // Last window title, updated only on change
}

// New creates a new SDL2 backend
func New() *Backend {
	return &Backend{}
}

// Init initializes the SDL2 backend
func (s *Backend) Init(config backend.BackendConfig) error {
	s.config = config
	s.callbacks = config.Callbacks
	s.focused = nil

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return fmt.Errorf("failed to initialize SDL2: %w", err)
	}

	window, err := sdl.CreateWindow(
		config.Title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		windowWidth,
		windowHeight,
		sdl.WINDOW_SHOWN,
	)
	if err != nil {
		sdl.Quit()
		return fmt.Errorf("failed to create window: %w", err)
	}
	s.window = window

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return fmt.Errorf("failed to create renderer: %w", err)
	}
	s.renderer = renderer

	s.running = true
	slog.Info("SDL2 backend initialized", "regions", len(config.Regions))
	return nil
}

// Update processes pending SDL events and redraws the regions
func (s *Backend) Update(now time.Time) error {
	if !s.running {
		return nil
	}

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		s.handleEvent(event, now)
	}

	if !s.running {
		return nil
	}

	s.render()
	return nil
}

// Cleanup cleans up SDL2 resources
func (s *Backend) Cleanup() error {
	slog.Info("Cleaning up SDL2 backend")

	if s.renderer != nil {
		s.renderer.Destroy()
	}
	if s.window != nil {
		s.window.Destroy()
	}
	sdl.Quit()

	return nil
}

func (s *Backend) handleEvent(event sdl.Event, now time.Time) {
	hub := s.config.Hub

	switch e := event.(type) {
	case *sdl.QuitEvent:
		s.running = false
		s.callbacks.Quit()

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_FOCUS_LOST {
			slog.Debug("Window lost focus")
			hub.Blur(input.FocusEvent{Timestamp: now})
		}

	case *sdl.KeyboardEvent:
		s.handleKey(e, now)

	case *sdl.MouseButtonEvent:
		// Touches also arrive as fingers, skip the synthesized mouse copy
		if e.Which == sdl.TOUCH_MOUSEID {
			return
		}
		x, y := int(e.X)/cellSize, int(e.Y)/cellSize
		pe := input.PointerEvent{
			PointerID: int64(e.Button),
			X:         x,
			Y:         y,
			Target:    s.targetAt(x, y),
			Timestamp: now,
		}
		switch e.Type {
		case sdl.MOUSEBUTTONDOWN:
			if e.Button == sdl.BUTTON_LEFT {
				s.focusAt(x, y)
			}
			hub.PointerDown(pe)
		case sdl.MOUSEBUTTONUP:
			hub.PointerUp(pe)
		}

	case *sdl.TouchFingerEvent:
		w, h := s.window.GetSize()
		x := int(e.X*float32(w)) / cellSize
		y := int(e.Y*float32(h)) / cellSize
		pe := input.PointerEvent{
			PointerID: touchPointerBase + int64(e.FingerID),
			X:         x,
			Y:         y,
			Target:    s.targetAt(x, y),
			Timestamp: now,
		}
		switch e.Type {
		case sdl.FINGERDOWN:
			hub.PointerDown(pe)
		case sdl.FINGERUP:
			hub.PointerUp(pe)
		}
	}
}

func (s *Backend) handleKey(e *sdl.KeyboardEvent, now time.Time) {
	if e.Type == sdl.KEYDOWN && e.Repeat == 0 {
		switch e.Keysym.Sym {
		case sdl.K_ESCAPE:
			s.running = false
			s.callbacks.Quit()
			return
		case sdl.K_TAB:
			s.callbacks.ToggleEnabled()
			return
		}
	}

	code, ok := scancodeCode(e.Keysym.Scancode)
	if !ok {
		return
	}

	ke := input.KeyEvent{
		Code:      code,
		Repeat:    e.Repeat != 0,
		Target:    s.focusTarget(),
		Timestamp: now,
	}
	switch e.Type {
	case sdl.KEYDOWN:
		s.config.Hub.KeyDown(ke)
	case sdl.KEYUP:
		s.config.Hub.KeyUp(ke)
	}
}

func (s *Backend) focusAt(x, y int) {
	r, ok := backend.RegionAt(s.config.Regions, x, y)
	if ok && r.Target().AcceptsText() {
		s.focused = &r
		return
	}
	s.focused = nil
}

func (s *Backend) focusTarget() input.Target {
	if s.focused == nil {
		return input.Target{}
	}
	return s.focused.Target()
}

func (s *Backend) targetAt(x, y int) input.Target {
	if r, ok := backend.RegionAt(s.config.Regions, x, y); ok {
		return r.Target()
	}
	return input.Target{}
}

func (s *Backend) render() {
	var statuses []backend.HoldStatus
	if s.config.Status != nil {
		statuses = s.config.Status.Status()
	}

	s.renderer.SetDrawColor(0, 0, 0, 255)
	s.renderer.Clear()

	for _, r := range s.config.Regions {
		rect := &sdl.Rect{
			X: int32(r.X * cellSize),
			Y: int32(r.Y * cellSize),
			W: int32(r.Width * cellSize),
			H: int32(r.Height * cellSize),
		}
		if s.regionActive(r, statuses) {
			s.renderer.SetDrawColor(0, 100, 0, 255)
			s.renderer.FillRect(rect)
			s.renderer.SetDrawColor(0, 255, 0, 255)
		} else {
			s.renderer.SetDrawColor(255, 255, 255, 255)
		}
		s.renderer.DrawRect(rect)
	}
	s.renderer.Present()

	// No font rendering, hold progress goes to the window title
	title := s.config.Title
	for _, st := range statuses {
		if st.Holding {
			title = fmt.Sprintf("%s - %s %.0fms", title, st.Name, float64(st.Elapsed)/float64(time.Millisecond))
		}
	}
	if title != s.title {
		s.window.SetTitle(title)
		s.title = title
	}
}

func (s *Backend) regionActive(r input.Region, statuses []backend.HoldStatus) bool {
	if s.focused != nil && s.focused.Name == r.Name {
		return true
	}
	for _, st := range statuses {
		if st.Name == r.Name && st.Holding {
			return true
		}
	}
	return false
}
