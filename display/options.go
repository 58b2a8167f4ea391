package display

import (
	"time"

	"github.com/lixenwraith/termpixel/terminal"
)

// Option configures a Driver at construction.
type Option func(*Driver)

// WithTickInterval sets the minimum interval between redraws and the
// input batching window. Default 16ms.
func WithTickInterval(d time.Duration) Option {
	return func(drv *Driver) {
		if d > 0 {
			drv.tick = d
		}
	}
}

// WithColorMode overrides environment-based color mode detection.
func WithColorMode(mode terminal.ColorMode) Option {
	return func(drv *Driver) {
		drv.mode = mode
		drv.modeSet = true
	}
}

// WithBackground sets the color unlit pixels render with.
func WithBackground(c terminal.RGB) Option {
	return func(drv *Driver) {
		drv.background = c
	}
}

// WithBackend substitutes the terminal backend. Used by tests.
func WithBackend(b terminal.Backend) Option {
	return func(drv *Driver) {
		drv.backend = b
	}
}
