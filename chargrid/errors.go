package chargrid

import "fmt"

// RuneError reports a rune the grid cannot place: control characters
// and zero-width runes.
type RuneError struct {
	Rune rune
}

func (e *RuneError) Error() string {
	return fmt.Sprintf("chargrid: unplaceable rune %q", e.Rune)
}
