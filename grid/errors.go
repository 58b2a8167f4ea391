package grid

import (
	"fmt"

	"github.com/lixenwraith/termpixel/pixel"
)

// CoordError reports a pixel access outside the grid bounds.
type CoordError struct {
	X, Y          int
	Width, Height int
}

func (e *CoordError) Error() string {
	return fmt.Sprintf("grid: coordinate (%d,%d) outside %dx%d", e.X, e.Y, e.Width, e.Height)
}

// DimensionError reports pixel dimensions a resolution cannot tile.
type DimensionError struct {
	WidthPx, HeightPx int
	Resolution        pixel.Resolution
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("grid: %dx%d pixels not divisible into %dx%d %s cells",
		e.WidthPx, e.HeightPx, e.Resolution.Width(), e.Resolution.Height(), e.Resolution)
}
