package grid

import (
	"github.com/lixenwraith/termpixel/pixel"
)

// Dynamic is a grid that can be resized after construction, typically
// tracking the terminal size.
type Dynamic struct {
	Static
}

// NewDynamic creates a resizable grid with the same validation as New.
func NewDynamic(res pixel.Resolution, widthPx, heightPx int) (*Dynamic, error) {
	s, err := New(res, widthPx, heightPx)
	if err != nil {
		return nil, err
	}
	return &Dynamic{Static: *s}, nil
}

// Resize changes the pixel dimensions. Cell state in the overlapping
// region is preserved; newly exposed area is background. Dimensions
// must satisfy the same divisibility as New; on error the grid is
// unchanged.
func (g *Dynamic) Resize(widthPx, heightPx int) error {
	cw, ch := g.res.Width(), g.res.Height()
	if widthPx <= 0 || heightPx <= 0 || widthPx%cw != 0 || heightPx%ch != 0 {
		return &DimensionError{WidthPx: widthPx, HeightPx: heightPx, Resolution: g.res}
	}

	wCells := widthPx / cw
	hCells := heightPx / ch
	cells := make([]Cell, wCells*hCells)
	for i := range cells {
		cells[i] = Cell{Mask: 0, Fg: g.background, Bg: g.background}
	}

	copyW := min(wCells, g.widthCells)
	copyH := min(hCells, g.heightCell)
	for y := 0; y < copyH; y++ {
		copy(cells[y*wCells:y*wCells+copyW], g.cells[y*g.widthCells:y*g.widthCells+copyW])
	}

	g.widthPx = widthPx
	g.heightPx = heightPx
	g.widthCells = wCells
	g.heightCell = hCells
	g.cells = cells
	return nil
}
