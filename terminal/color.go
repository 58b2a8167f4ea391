package terminal

import (
	"os"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ColorMode indicates terminal color capability
type ColorMode uint8

const (
	ColorMode256       ColorMode = iota // xterm-256 palette
	ColorModeTrueColor                  // 24-bit RGB
)

// RGB represents a 24-bit color
type RGB struct {
	R, G, B uint8
}

// RGBBlack is the zero value black color
var RGBBlack = RGB{0, 0, 0}

// Colorful converts to a go-colorful color for color-space math.
func (c RGB) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

// FromColorful converts a go-colorful color to a clamped RGB triple.
func FromColorful(c colorful.Color) RGB {
	c = c.Clamped()
	return RGB{
		R: uint8(c.R*255 + 0.5),
		G: uint8(c.G*255 + 0.5),
		B: uint8(c.B*255 + 0.5),
	}
}

// Color cube values for the 6x6x6 palette (indices 16-231)
// Levels: 0, 95, 135, 175, 215, 255
var cubeValues = [6]uint8{0, 95, 135, 175, 215, 255}

// palette holds the xterm palette entries 16-255 in Lab space.
// The 16 system colors are excluded; their values vary per terminal theme.
var palette [240]colorful.Color

func init() {
	for i := 0; i < 216; i++ {
		palette[i] = RGB{
			R: cubeValues[i/36],
			G: cubeValues[i/6%6],
			B: cubeValues[i%6],
		}.Colorful()
	}
	// Grayscale ramp 232-255: luminance 8, 18, ..., 238
	for i := 0; i < 24; i++ {
		v := uint8(8 + 10*i)
		palette[216+i] = RGB{R: v, G: v, B: v}.Colorful()
	}
}

// RGBTo256 converts RGB to the nearest 256-color palette index (16-255).
// Nearest is perceptual (CIE-Lab distance). Only called on color
// transitions, not per cell, so the linear scan is acceptable.
func RGBTo256(c RGB) uint8 {
	target := c.Colorful()
	best := 0
	bestDist := target.DistanceLab(palette[0])
	for i := 1; i < len(palette); i++ {
		d := target.DistanceLab(palette[i])
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	return uint8(best + 16)
}

// DetectColorMode determines terminal color capability from environment
func DetectColorMode() ColorMode {
	// 1. Check COLORTERM (highest priority, set by modern terminals)
	colorterm := os.Getenv("COLORTERM")
	if colorterm == "truecolor" || colorterm == "24bit" {
		return ColorModeTrueColor
	}

	// 2. Check terminal-specific env vars
	if os.Getenv("KITTY_WINDOW_ID") != "" ||
		os.Getenv("KONSOLE_VERSION") != "" ||
		os.Getenv("ITERM_SESSION_ID") != "" ||
		os.Getenv("ALACRITTY_WINDOW_ID") != "" ||
		os.Getenv("ALACRITTY_LOG") != "" ||
		os.Getenv("WEZTERM_PANE") != "" {
		return ColorModeTrueColor
	}

	// 3. Check TERM for known true color terminals
	term := strings.ToLower(os.Getenv("TERM"))
	if strings.Contains(term, "truecolor") ||
		strings.Contains(term, "24bit") ||
		strings.Contains(term, "direct") {
		return ColorModeTrueColor
	}

	// 4. Default to 256-color
	return ColorMode256
}
