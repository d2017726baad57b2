package terminal

import (
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/valerio/go-holdevent/hold/backend"
	"github.com/valerio/go-holdevent/hold/backend/terminal/render"
	"github.com/valerio/go-holdevent/hold/input"
)

const (
	minTermWidth  = 40
	minTermHeight = 16
	logCapacity   = 100

	// Terminals never report key-up, a key unseen for this long is released.
	// Slightly longer than the usual initial key repeat delay.
	defaultKeyReleaseTimeout = 500 * time.Millisecond
)

// pointerButtons are the mouse buttons tracked as pointers, the pointer id is the button number
var pointerButtons = []struct {
	id   int64
	mask tcell.ButtonMask
}{
	{1, tcell.Button1},
	{2, tcell.Button2},
	{3, tcell.Button3},
}

const trackedButtons = tcell.Button1 | tcell.Button2 | tcell.Button3

// Backend implements the Backend interface using tcell for terminal input and rendering
type Backend struct {
	screen    tcell.Screen
	running   bool
	logBuffer *render.LogBuffer
	config    backend.BackendConfig

	keyStates map[string]time.Time // Last time each key code was reported
	buttons   tcell.ButtonMask     // Buttons held as of the last mouse event
	focused   *input.Region        // Text region receiving key events, if any
}

// New creates a new terminal backend
func New() *Backend {
	return &Backend{}
}

// NewWithScreen creates a terminal backend drawing on the given screen,
// e.g. tcell.NewSimulationScreen in tests.
func NewWithScreen(screen tcell.Screen) *Backend {
	return &Backend{screen: screen}
}

// Init initializes the terminal backend
func (t *Backend) Init(config backend.BackendConfig) error {
	t.config = config
	if t.config.KeyReleaseTimeout <= 0 {
		t.config.KeyReleaseTimeout = defaultKeyReleaseTimeout
	}
	t.keyStates = make(map[string]time.Time)
	t.buttons = tcell.ButtonNone
	t.focused = nil

	if t.screen == nil {
		screen, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("failed to initialize terminal: %w", err)
		}
		t.screen = screen
	}

	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	t.screen.EnableMouse()
	t.screen.EnableFocus()
	t.running = true

	// Logs go to a ring buffer shown on screen, stderr belongs to the terminal
	t.logBuffer = render.NewLogBuffer(logCapacity)
	slog.SetDefault(slog.New(render.NewLogBufferHandler(t.logBuffer, config.LogLevel)))

	slog.Info("Terminal backend initialized",
		"regions", len(config.Regions),
		"key_release_timeout", t.config.KeyReleaseTimeout)

	t.screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	t.screen.Clear()
	return nil
}

// Update drains pending terminal events into the hub, releases keys that
// stopped repeating and redraws the screen.
func (t *Backend) Update(now time.Time) error {
	for t.screen.HasPendingEvent() {
		switch ev := t.screen.PollEvent().(type) {
		case *tcell.EventKey:
			t.processKeyEvent(ev, now)
		case *tcell.EventMouse:
			t.processMouseEvent(ev, now)
		case *tcell.EventFocus:
			t.processFocusEvent(ev, now)
		case *tcell.EventResize:
			t.screen.Sync()
		}
	}

	t.releaseExpiredKeys(now)

	if !t.running {
		return nil
	}

	t.render()
	t.screen.Show()
	return nil
}

// Cleanup cleans up terminal resources
func (t *Backend) Cleanup() error {
	if t.screen != nil {
		slog.Info("Cleaning up terminal backend")
		t.screen.Fini()
	}
	return nil
}

func (t *Backend) processKeyEvent(ev *tcell.EventKey, now time.Time) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		t.running = false
		t.config.Callbacks.Quit()
		return
	case tcell.KeyTab:
		t.config.Callbacks.ToggleEnabled()
		return
	}

	code, ok := keyCode(ev)
	if !ok {
		slog.Debug("Unmapped key", "key", ev.Name())
		return
	}

	_, repeat := t.keyStates[code]
	t.keyStates[code] = now
	if !repeat {
		slog.Debug("Key press", "code", code)
	}
	t.config.Hub.KeyDown(input.KeyEvent{
		Code:      code,
		Repeat:    repeat,
		Target:    t.focusTarget(),
		Timestamp: now,
	})
}

func (t *Backend) releaseExpiredKeys(now time.Time) {
	var expired []string
	for code, last := range t.keyStates {
		if now.Sub(last) >= t.config.KeyReleaseTimeout {
			expired = append(expired, code)
		}
	}
	slices.Sort(expired)

	for _, code := range expired {
		delete(t.keyStates, code)
		slog.Debug("Key release", "code", code)
		t.config.Hub.KeyUp(input.KeyEvent{
			Code:      code,
			Target:    t.focusTarget(),
			Timestamp: now,
		})
	}
}

func (t *Backend) processMouseEvent(ev *tcell.EventMouse, now time.Time) {
	x, y := ev.Position()
	mask := ev.Buttons() & trackedButtons

	for _, b := range pointerButtons {
		was := t.buttons&b.mask != 0
		is := mask&b.mask != 0
		if was == is {
			continue
		}

		pe := input.PointerEvent{
			PointerID: b.id,
			X:         x,
			Y:         y,
			Target:    t.targetAt(x, y),
			Timestamp: now,
		}
		if is {
			if b.mask == tcell.Button1 {
				t.focusAt(x, y)
			}
			t.config.Hub.PointerDown(pe)
		} else {
			t.config.Hub.PointerUp(pe)
		}
	}
	t.buttons = mask
}

func (t *Backend) processFocusEvent(ev *tcell.EventFocus, now time.Time) {
	if ev.Focused {
		slog.Debug("Terminal focused")
		return
	}

	slog.Debug("Terminal lost focus")
	// Whatever was held is gone with the focus, no key-up or pointer-up follows
	clear(t.keyStates)
	t.buttons = tcell.ButtonNone
	t.config.Hub.Blur(input.FocusEvent{Timestamp: now})
}

func (t *Backend) focusAt(x, y int) {
	r, ok := backend.RegionAt(t.config.Regions, x, y)
	if ok && r.Target().AcceptsText() {
		if t.focused == nil || t.focused.Name != r.Name {
			slog.Info("Focused", "region", r.Name)
		}
		t.focused = &r
		return
	}
	if t.focused != nil {
		slog.Info("Focus cleared", "region", t.focused.Name)
	}
	t.focused = nil
}

func (t *Backend) focusTarget() input.Target {
	if t.focused == nil {
		return input.Target{}
	}
	return t.focused.Target()
}

func (t *Backend) targetAt(x, y int) input.Target {
	if r, ok := backend.RegionAt(t.config.Regions, x, y); ok {
		return r.Target()
	}
	return input.Target{}
}

func (t *Backend) render() {
	termWidth, termHeight := t.screen.Size()
	t.screen.Clear()

	if termWidth < minTermWidth || termHeight < minTermHeight {
		style := tcell.StyleDefault.Foreground(tcell.ColorRed)
		msg := fmt.Sprintf("Terminal too small! Need at least %dx%d", minTermWidth, minTermHeight)
		t.drawText(0, termHeight/2, termWidth, style, msg)
		return
	}

	titleStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	t.drawText(1, 0, termWidth-1, titleStyle, " "+t.config.Title+" ")

	var statuses []backend.HoldStatus
	if t.config.Status != nil {
		statuses = t.config.Status.Status()
	}

	bottom := 1
	for _, r := range t.config.Regions {
		t.drawRegion(r, t.regionActive(r, statuses))
		bottom = max(bottom, r.Y+r.Height)
	}

	statusY := bottom + 1
	t.drawStatus(statusY, termWidth, statuses)

	logsY := statusY + len(statuses) + 1
	t.drawLogs(1, logsY, termWidth-2, termHeight)

	helpStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	t.drawText(0, termHeight-1, termWidth, helpStyle,
		" Hold the button or a key | click the text field to type | TAB=toggle enabled ESC=exit ")
}

func (t *Backend) regionActive(r input.Region, statuses []backend.HoldStatus) bool {
	if t.focused != nil && t.focused.Name == r.Name {
		return true
	}
	for _, s := range statuses {
		if s.Name == r.Name && s.Holding {
			return true
		}
	}
	return false
}

func (t *Backend) drawRegion(r input.Region, active bool) {
	if r.Width < 2 || r.Height < 2 {
		return
	}

	borderStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	fillStyle := tcell.StyleDefault
	if active {
		borderStyle = borderStyle.Foreground(tcell.ColorGreen)
		fillStyle = fillStyle.Background(tcell.ColorDarkGreen)
	}

	right, bottom := r.X+r.Width-1, r.Y+r.Height-1
	for x := r.X + 1; x < right; x++ {
		t.screen.SetContent(x, r.Y, '─', nil, borderStyle)
		t.screen.SetContent(x, bottom, '─', nil, borderStyle)
	}
	for y := r.Y + 1; y < bottom; y++ {
		t.screen.SetContent(r.X, y, '│', nil, borderStyle)
		t.screen.SetContent(right, y, '│', nil, borderStyle)
		for x := r.X + 1; x < right; x++ {
			t.screen.SetContent(x, y, ' ', nil, fillStyle)
		}
	}
	t.screen.SetContent(r.X, r.Y, '┌', nil, borderStyle)
	t.screen.SetContent(right, r.Y, '┐', nil, borderStyle)
	t.screen.SetContent(r.X, bottom, '└', nil, borderStyle)
	t.screen.SetContent(right, bottom, '┘', nil, borderStyle)

	t.drawText(r.X+1, r.Y+r.Height/2, r.Width-2, fillStyle, r.Name)
}

func (t *Backend) drawStatus(startY, width int, statuses []backend.HoldStatus) {
	idleStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	holdStyle := tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	offStyle := tcell.StyleDefault.Foreground(tcell.ColorRed)

	for i, s := range statuses {
		style, state := idleStyle, "idle"
		switch {
		case !s.Enabled:
			style, state = offStyle, "disabled"
		case s.Holding:
			style, state = holdStyle, "holding"
		}
		line := fmt.Sprintf("%-14s %-8s elapsed %8.1fms ticks %d",
			s.Name, state, float64(s.Elapsed)/float64(time.Millisecond), s.Ticks)
		t.drawText(1, startY+i, width-1, style, line)
	}
}

func (t *Backend) drawLogs(startX, startY, width, termHeight int) {
	availableHeight := termHeight - startY - 1
	if width <= 0 || availableHeight <= 0 {
		return
	}

	debugStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	infoStyle := tcell.StyleDefault.Foreground(tcell.ColorBlue)
	warnStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	errStyle := tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)

	for i, entry := range t.logBuffer.GetRecent(availableHeight) {
		style := infoStyle
		switch {
		case entry.Level >= slog.LevelError:
			style = errStyle
		case entry.Level >= slog.LevelWarn:
			style = warnStyle
		case entry.Level < slog.LevelInfo:
			style = debugStyle
		}
		t.drawText(startX, startY+i, width, style, render.FormatLogEntry(entry))
	}
}

// drawText writes text on one row, truncating with an ellipsis past width
func (t *Backend) drawText(x, y, width int, style tcell.Style, text string) {
	runes := []rune(text)
	if width <= 0 {
		return
	}
	if len(runes) > width {
		if width > 3 {
			runes = append(runes[:width-3], '.', '.', '.')
		} else {
			runes = runes[:width]
		}
	}
	for i, ch := range runes {
		t.screen.SetContent(x+i, y, ch, nil, style)
	}
}
