package input

import "strings"

// ElementKind is the type of UI element an input event originated from.
type ElementKind int

const (
	KindNone ElementKind = iota
	KindButton
	KindInput
	KindSelect
	KindTextArea
	KindOther
)

var kindNames = map[ElementKind]string{
	KindNone:     "none",
	KindButton:   "button",
	KindInput:    "input",
	KindSelect:   "select",
	KindTextArea: "textarea",
	KindOther:    "other",
}

func (k ElementKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseKind converts a lowercase kind name back to an ElementKind.
func ParseKind(name string) (ElementKind, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return KindNone, true
	}
	for k, n := range kindNames {
		if n == name {
			return k, true
		}
	}
	return KindNone, false
}

// Target describes the element an input event was delivered to.
type Target struct {
	Name            string
	Kind            ElementKind
	ContentEditable bool
}

// AcceptsText reports whether the target captures typing, in which case
// keyboard holds must not start.
func (t Target) AcceptsText() bool {
	switch t.Kind {
	case KindInput, KindSelect, KindTextArea:
		return true
	}
	return t.ContentEditable
}

// Element is anything a pointer can be pressed on.
type Element interface {
	Contains(x, y int) bool
}

// Region is a rectangular element in cell or pixel coordinates.
type Region struct {
	Name            string
	X, Y            int
	Width, Height   int
	Kind            ElementKind
	ContentEditable bool
}

func (r Region) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Target returns the event target for input delivered to this region.
func (r Region) Target() Target {
	return Target{Name: r.Name, Kind: r.Kind, ContentEditable: r.ContentEditable}
}
