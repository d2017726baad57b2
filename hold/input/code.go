package input

import "regexp"

var codePattern = regexp.MustCompile(`^[A-Z][A-Za-z0-9]*$`)

// ValidCode reports whether code is a plain physical key code such as
// "Space", "KeyA", "Digit1", "ArrowLeft" or "F12".
func ValidCode(code string) bool {
	return codePattern.MatchString(code)
}
