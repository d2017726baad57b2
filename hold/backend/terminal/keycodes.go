package terminal

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// tcellKeyCodeMap converts tcell special keys to KeyboardEvent.code names
var tcellKeyCodeMap = map[tcell.Key]string{
	tcell.KeyEnter:      "Enter",
	tcell.KeyUp:         "ArrowUp",
	tcell.KeyDown:       "ArrowDown",
	tcell.KeyLeft:       "ArrowLeft",
	tcell.KeyRight:      "ArrowRight",
	tcell.KeyBackspace:  "Backspace",
	tcell.KeyBackspace2: "Backspace",
	tcell.KeyDelete:     "Delete",
	tcell.KeyInsert:     "Insert",
	tcell.KeyHome:       "Home",
	tcell.KeyEnd:        "End",
	tcell.KeyPgUp:       "PageUp",
	tcell.KeyPgDn:       "PageDown",
	tcell.KeyF1:         "F1",
	tcell.KeyF2:         "F2",
	tcell.KeyF3:         "F3",
	tcell.KeyF4:         "F4",
	tcell.KeyF5:         "F5",
	tcell.KeyF6:         "F6",
	tcell.KeyF7:         "F7",
	tcell.KeyF8:         "F8",
	tcell.KeyF9:         "F9",
	tcell.KeyF10:        "F10",
	tcell.KeyF11:        "F11",
	tcell.KeyF12:        "F12",
}

// tcellRuneCodeMap converts punctuation runes to the code of the physical key on a US layout
var tcellRuneCodeMap = map[rune]string{
	' ':  "Space",
	'-':  "Minus",
	'=':  "Equal",
	'[':  "BracketLeft",
	']':  "BracketRight",
	';':  "Semicolon",
	'\'': "Quote",
	',':  "Comma",
	'.':  "Period",
	'/':  "Slash",
	'\\': "Backslash",
	'`':  "Backquote",
}

// keyCode returns the KeyboardEvent.code for a tcell key event.
// Letters map to KeyA..KeyZ regardless of case, digits to Digit0..Digit9.
func keyCode(ev *tcell.EventKey) (string, bool) {
	if ev.Key() != tcell.KeyRune {
		code, ok := tcellKeyCodeMap[ev.Key()]
		return code, ok
	}

	r := ev.Rune()
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		return "Key" + string(unicode.ToUpper(r)), true
	case r >= '0' && r <= '9':
		return "Digit" + string(r), true
	}
	code, ok := tcellRuneCodeMap[r]
	return code, ok
}
