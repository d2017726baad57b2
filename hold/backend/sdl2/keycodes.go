//go:build sdl2

package sdl2

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
)

// scancodeNames maps SDL scancodes (physical keys) to KeyboardEvent.code names
var scancodeNames = buildScancodeNames()

func buildScancodeNames() map[sdl.Scancode]string {
	names := map[sdl.Scancode]string{
		sdl.SCANCODE_SPACE:        "Space",
		sdl.SCANCODE_RETURN:       "Enter",
		sdl.SCANCODE_BACKSPACE:    "Backspace",
		sdl.SCANCODE_DELETE:       "Delete",
		sdl.SCANCODE_INSERT:       "Insert",
		sdl.SCANCODE_HOME:         "Home",
		sdl.SCANCODE_END:          "End",
		sdl.SCANCODE_PAGEUP:       "PageUp",
		sdl.SCANCODE_PAGEDOWN:     "PageDown",
		sdl.SCANCODE_UP:           "ArrowUp",
		sdl.SCANCODE_DOWN:         "ArrowDown",
		sdl.SCANCODE_LEFT:         "ArrowLeft",
		sdl.SCANCODE_RIGHT:        "ArrowRight",
		sdl.SCANCODE_LSHIFT:       "ShiftLeft",
		sdl.SCANCODE_RSHIFT:       "ShiftRight",
		sdl.SCANCODE_LCTRL:        "ControlLeft",
		sdl.SCANCODE_RCTRL:        "ControlRight",
		sdl.SCANCODE_LALT:         "AltLeft",
		sdl.SCANCODE_RALT:         "AltRight",
		sdl.SCANCODE_MINUS:        "Minus",
		sdl.SCANCODE_EQUALS:       "Equal",
		sdl.SCANCODE_LEFTBRACKET:  "BracketLeft",
		sdl.SCANCODE_RIGHTBRACKET: "BracketRight",
		sdl.SCANCODE_SEMICOLON:    "Semicolon",
		sdl.SCANCODE_APOSTROPHE:   "Quote",
		sdl.SCANCODE_COMMA:        "Comma",
		sdl.SCANCODE_PERIOD:       "Period",
		sdl.SCANCODE_SLASH:        "Slash",
		sdl.SCANCODE_BACKSLASH:    "Backslash",
		sdl.SCANCODE_GRAVE:        "Backquote",
	}

	// Letters and function keys are contiguous in the USB HID usage table
	for i := 0; i < 26; i++ {
		names[sdl.Scancode(sdl.SCANCODE_A)+sdl.Scancode(i)] = "Key" + string(rune('A'+i))
	}
	for i := 0; i < 12; i++ {
		names[sdl.Scancode(sdl.SCANCODE_F1)+sdl.Scancode(i)] = fmt.Sprintf("F%d", i+1)
	}
	// Digit row runs 1..9 then 0
	for i := 1; i <= 9; i++ {
		names[sdl.Scancode(sdl.SCANCODE_1)+sdl.Scancode(i-1)] = fmt.Sprintf("Digit%d", i)
	}
	names[sdl.SCANCODE_0] = "Digit0"

	return names
}

func scancodeCode(sc sdl.Scancode) (string, bool) {
	code, ok := scancodeNames[sc]
	return code, ok
}
