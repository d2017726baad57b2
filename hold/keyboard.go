package hold

import (
	"log/slog"
	"time"

	"github.com/valerio/go-holdevent/hold/input"
	"github.com/valerio/go-holdevent/hold/timing"
)

// KeyboardKeyHold turns one key held down into a hold.
type KeyboardKeyHold struct {
	*Controller

	code   string
	detach []func()
}

// NewKeyboardKeyHold binds a hold to the key with the given code, e.g. "Space".
// An invalid code is logged and leaves the hold inert: it never listens to
// src and never emits events.
func NewKeyboardKeyHold(tb timing.Timebase, src input.Source, code string, interval time.Duration) *KeyboardKeyHold {
	h := &KeyboardKeyHold{
		Controller: NewController(tb, interval),
		code:       code,
	}

	if !input.ValidCode(code) {
		slog.Error("KeyboardKeyHold: code must be a physical key code such as \"Space\" or \"KeyA\"", "code", code)
		return h
	}

	h.detach = []func(){
		src.OnKeyDown(h.onKeyDown),
		src.OnKeyUp(h.onKeyUp),
		src.OnBlur(h.onBlur),
	}
	return h
}

// Code returns the key code the hold is bound to.
func (h *KeyboardKeyHold) Code() string {
	return h.code
}

// Inert reports whether the hold was created with an invalid code.
func (h *KeyboardKeyHold) Inert() bool {
	return !input.ValidCode(h.code)
}

// Close detaches the hold from its input source.
func (h *KeyboardKeyHold) Close() {
	for _, off := range h.detach {
		off()
	}
	h.detach = nil
}

func (h *KeyboardKeyHold) onKeyDown(ev input.KeyEvent) {
	if ev.Target.AcceptsText() {
		return
	}
	if ev.Code != h.code {
		return
	}
	h.Start(ev)
}

func (h *KeyboardKeyHold) onKeyUp(ev input.KeyEvent) {
	if ev.Code != h.code {
		return
	}
	h.End(ev)
}

func (h *KeyboardKeyHold) onBlur(ev input.FocusEvent) {
	h.End(ev)
}
