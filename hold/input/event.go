package input

import "time"

// Kind identifies a raw input notification.
type Kind int

const (
	PointerDown Kind = iota // Pointer pressed on an element
	PointerUp               // Pointer released anywhere
	KeyDown                 // Key pressed (may repeat while held)
	KeyUp                   // Key released
	Blur                    // Application lost focus
)

func (k Kind) String() string {
	switch k {
	case PointerDown:
		return "pointer-down"
	case PointerUp:
		return "pointer-up"
	case KeyDown:
		return "key-down"
	case KeyUp:
		return "key-up"
	case Blur:
		return "blur"
	default:
		return "unknown"
	}
}

// PointerEvent is a press or release of one pointer (mouse button, finger, pen).
type PointerEvent struct {
	PointerID int64
	X, Y      int
	Target    Target
	Timestamp time.Time
}

// KeyEvent is a press or release of one physical key, identified by its
// layout independent code ("Space", "KeyW", "ArrowUp").
type KeyEvent struct {
	Code      string
	Repeat    bool
	Target    Target
	Timestamp time.Time
}

// FocusEvent signals the application lost focus.
type FocusEvent struct {
	Timestamp time.Time
}
