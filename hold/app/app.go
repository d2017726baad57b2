// Package app wires a backend's input into hold controllers that share one
// timebase, and exposes their progress back to the backend for display.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/valerio/go-holdevent/hold"
	"github.com/valerio/go-holdevent/hold/backend"
	"github.com/valerio/go-holdevent/hold/backend/headless"
	"github.com/valerio/go-holdevent/hold/backend/sdl2"
	"github.com/valerio/go-holdevent/hold/backend/terminal"
	"github.com/valerio/go-holdevent/hold/config"
	"github.com/valerio/go-holdevent/hold/input"
	"github.com/valerio/go-holdevent/hold/timing"
)

// App owns the timebase, the input hub and every hold built from the configuration.
type App struct {
	cfg     *config.Config
	runner  timing.Runner
	hub     *input.Hub
	backend backend.Backend

	pointer *hold.ElementHold
	keys    []*hold.KeyboardKeyHold
	holds   []*trackedHold

	err error // First backend update failure, ends the run
}

// trackedHold counts the events of one controller for status display
type trackedHold struct {
	name    string
	ctrl    *hold.Controller
	ticks   int
	holds   int
	elapsed time.Duration
}

// NewBackend creates the backend selected by cfg.Backend.
func NewBackend(cfg *config.Config) (backend.Backend, error) {
	switch cfg.Backend {
	case config.BackendTerminal:
		return terminal.New(), nil
	case config.BackendSDL2:
		return sdl2.New(), nil
	case config.BackendHeadless:
		script, err := headless.LoadScript(cfg.Script)
		if err != nil {
			return nil, err
		}
		return headless.New(script), nil
	}
	return nil, fmt.Errorf("%w: %q", config.ErrUnknownBackend, cfg.Backend)
}

// New builds the holds described by cfg. Headless runs use a virtual
// timebase so a script always produces the same hold events.
func New(cfg *config.Config, b backend.Backend) *App {
	a := &App{
		cfg:     cfg,
		hub:     input.NewHub(),
		backend: b,
	}

	if cfg.Backend == config.BackendHeadless {
		a.runner = timing.NewManual(time.Now(), cfg.FrameRate)
	} else {
		a.runner = timing.NewLoop(cfg.FrameRate)
	}

	interval := cfg.Interval()
	button := cfg.ButtonRegion()
	a.pointer = hold.NewElementHold(a.runner, a.hub, button, interval)
	a.track(button.Name, a.pointer.Controller)

	for _, code := range cfg.Keys {
		k := hold.NewKeyboardKeyHold(a.runner, a.hub, code, interval)
		if k.Inert() {
			continue
		}
		a.keys = append(a.keys, k)
		a.track("key "+code, k.Controller)
	}

	slog.Debug("Holds configured",
		"holds", len(a.holds),
		"interval", interval,
		"frame_rate", cfg.FrameRate)
	return a
}

// Run initializes the backend and drives it once per frame until ctx is
// cancelled or the backend asks to quit.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	err := a.backend.Init(backend.BackendConfig{
		Title:             "holdevent",
		Hub:               a.hub,
		Regions:           []input.Region{a.cfg.ButtonRegion(), a.cfg.TextFieldRegion()},
		Status:            a,
		KeyReleaseTimeout: a.cfg.KeyReleaseTimeout(),
		LogLevel:          a.cfg.Level(),
		Callbacks: backend.BackendCallbacks{
			OnQuit:          cancel,
			OnToggleEnabled: a.ToggleEnabled,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to initialize backend: %w", err)
	}
	defer func() {
		if err := a.backend.Cleanup(); err != nil {
			slog.Warn("Backend cleanup failed", "error", err)
		}
	}()

	var frame timing.Timer
	var onFrame func()
	onFrame = func() {
		if err := a.backend.Update(a.runner.Now()); err != nil {
			a.err = fmt.Errorf("backend update failed: %w", err)
			cancel()
			return
		}
		frame = a.runner.RequestFrame(onFrame)
	}
	frame = a.runner.RequestFrame(onFrame)

	slog.Info("Running", "backend", a.cfg.Backend)
	runErr := a.runner.Run(ctx)
	frame.Stop()
	a.shutdown()

	if runErr != nil {
		return runErr
	}
	return a.err
}

// Status implements backend.StatusProvider.
func (a *App) Status() []backend.HoldStatus {
	out := make([]backend.HoldStatus, 0, len(a.holds))
	for _, t := range a.holds {
		out = append(out, backend.HoldStatus{
			Name:    t.name,
			Enabled: t.ctrl.Enabled(),
			Holding: t.ctrl.Holding(),
			Elapsed: t.elapsed,
			Ticks:   t.ticks,
			Holds:   t.holds,
		})
	}
	return out
}

// ToggleEnabled flips every hold between enabled and disabled. Disabling
// ends any hold in progress.
func (a *App) ToggleEnabled() {
	enabled := !a.pointer.Enabled()
	for _, t := range a.holds {
		t.ctrl.SetEnabled(enabled)
	}
	slog.Info("Holds toggled", "enabled", enabled)
}

func (a *App) track(name string, ctrl *hold.Controller) {
	t := &trackedHold{name: name, ctrl: ctrl}
	l := hold.Listen(t.observe)
	ctrl.AddEventListener(hold.HoldStart, l)
	ctrl.AddEventListener(hold.Holding, l)
	ctrl.AddEventListener(hold.HoldEnd, l)
	a.holds = append(a.holds, t)
}

func (t *trackedHold) observe(ev hold.Event) {
	switch ev.Type {
	case hold.HoldStart:
		t.ticks = 0
		t.elapsed = 0
		slog.Info("Hold started", "hold", t.name)
	case hold.Holding:
		t.ticks++
		t.elapsed = ev.ElapsedTime
		slog.Debug("Holding", "hold", t.name,
			"elapsed_ms", ev.ElapsedMilliseconds(),
			"delta_ms", ev.DeltaMilliseconds())
	case hold.HoldEnd:
		t.holds++
		t.elapsed = ev.ElapsedTime
		slog.Info("Hold ended", "hold", t.name,
			"elapsed_ms", ev.ElapsedMilliseconds(),
			"ticks", t.ticks)
	}
}

// shutdown detaches input and ends holds still in progress
func (a *App) shutdown() {
	a.pointer.Close()
	for _, k := range a.keys {
		k.Close()
	}
	for _, t := range a.holds {
		t.ctrl.SetEnabled(false)
	}
}
