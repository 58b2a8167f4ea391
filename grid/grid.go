// Package grid stores sub-character pixel state and maps pixel
// coordinates onto character cells.
package grid

import (
	"github.com/lixenwraith/termpixel/pixel"
	"github.com/lixenwraith/termpixel/terminal"
)

// Cell is the per-character state: which sub-pixels are lit and the
// two color slots the resolution renders with.
type Cell struct {
	Mask   uint16
	Fg, Bg terminal.RGB
}

// Static is a pixel grid with dimensions fixed at construction.
// Pixel coordinates are x right, y down, origin top-left.
type Static struct {
	res        pixel.Resolution
	widthPx    int
	heightPx   int
	widthCells int
	heightCell int
	background terminal.RGB
	cells      []Cell
}

// New creates a grid. Pixel dimensions must be positive and divisible
// by the resolution's cell dimensions; otherwise *DimensionError.
func New(res pixel.Resolution, widthPx, heightPx int) (*Static, error) {
	cw, ch := res.Width(), res.Height()
	if widthPx <= 0 || heightPx <= 0 || widthPx%cw != 0 || heightPx%ch != 0 {
		return nil, &DimensionError{WidthPx: widthPx, HeightPx: heightPx, Resolution: res}
	}
	g := &Static{
		res:        res,
		widthPx:    widthPx,
		heightPx:   heightPx,
		widthCells: widthPx / cw,
		heightCell: heightPx / ch,
		background: terminal.RGBBlack,
	}
	g.cells = make([]Cell, g.widthCells*g.heightCell)
	g.Clear()
	return g, nil
}

// Resolution returns the grid's pixel packing scheme.
func (g *Static) Resolution() pixel.Resolution { return g.res }

func (g *Static) WidthPx() int     { return g.widthPx }
func (g *Static) HeightPx() int    { return g.heightPx }
func (g *Static) WidthCells() int  { return g.widthCells }
func (g *Static) HeightCells() int { return g.heightCell }

// Background returns the color unlit pixels render with.
func (g *Static) Background() terminal.RGB { return g.background }

// SetBackground changes the background color. Slots still showing the
// previous background are repainted; explicitly colored slots keep
// their color.
func (g *Static) SetBackground(c terminal.RGB) {
	old := g.background
	g.background = c
	for i := range g.cells {
		if g.cells[i].Bg == old {
			g.cells[i].Bg = c
		}
		if g.cells[i].Mask == 0 && g.cells[i].Fg == old {
			g.cells[i].Fg = c
		}
	}
}

// Clear unsets every pixel and repaints both slots with the background.
func (g *Static) Clear() {
	for i := range g.cells {
		g.cells[i] = Cell{Mask: 0, Fg: g.background, Bg: g.background}
	}
}

// Fill lights every pixel with the given color.
func (g *Static) Fill(c terminal.RGB) {
	full := uint16(g.res.Domain() - 1)
	bg := c
	if g.res != pixel.Half {
		bg = g.background
	}
	for i := range g.cells {
		g.cells[i] = Cell{Mask: full, Fg: c, Bg: bg}
	}
}

func (g *Static) locate(x, y int) (idx int, bit uint, ok bool) {
	if x < 0 || y < 0 || x >= g.widthPx || y >= g.heightPx {
		return 0, 0, false
	}
	cw, ch := g.res.Width(), g.res.Height()
	idx = (y/ch)*g.widthCells + x/cw
	bit = g.res.BitIndex(x%cw, y%ch)
	return idx, bit, true
}

// SetPixel lights the pixel at (x, y) with the given color. Out of
// bounds returns *CoordError without mutating state.
//
// Color slots: Half assigns by row (top row to the fg slot, bottom row
// to the bg slot). Other resolutions have a single fg slot per cell;
// each write overwrites it, so the latest color wins for every lit
// pixel in the cell. Per-sub-pixel colors go through SetCell.
func (g *Static) SetPixel(x, y int, c terminal.RGB) error {
	idx, bit, ok := g.locate(x, y)
	if !ok {
		return &CoordError{X: x, Y: y, Width: g.widthPx, Height: g.heightPx}
	}
	cell := &g.cells[idx]

	if g.res == pixel.Half {
		if bit == 0 {
			cell.Fg = c
		} else {
			cell.Bg = c
		}
		cell.Mask |= 1 << bit
		return nil
	}

	cell.Fg = c
	cell.Mask |= 1 << bit
	return nil
}

// UnsetPixel turns the pixel at (x, y) off, exposing the background.
func (g *Static) UnsetPixel(x, y int) error {
	idx, bit, ok := g.locate(x, y)
	if !ok {
		return &CoordError{X: x, Y: y, Width: g.widthPx, Height: g.heightPx}
	}
	cell := &g.cells[idx]
	cell.Mask &^= 1 << bit

	if g.res == pixel.Half {
		if bit == 0 {
			cell.Fg = g.background
		} else {
			cell.Bg = g.background
		}
	} else if cell.Mask == 0 {
		cell.Fg = g.background
	}
	return nil
}

// On reports whether the pixel at (x, y) is lit.
func (g *Static) On(x, y int) (bool, error) {
	idx, bit, ok := g.locate(x, y)
	if !ok {
		return false, &CoordError{X: x, Y: y, Width: g.widthPx, Height: g.heightPx}
	}
	return g.cells[idx].Mask&(1<<bit) != 0, nil
}

// Pixel returns the color the pixel at (x, y) currently shows: its
// slot color when lit, the cell background otherwise.
func (g *Static) Pixel(x, y int) (terminal.RGB, error) {
	idx, bit, ok := g.locate(x, y)
	if !ok {
		return terminal.RGB{}, &CoordError{X: x, Y: y, Width: g.widthPx, Height: g.heightPx}
	}
	cell := g.cells[idx]

	if g.res == pixel.Half {
		if bit == 0 {
			return cell.Fg, nil
		}
		return cell.Bg, nil
	}
	if cell.Mask&(1<<bit) != 0 {
		return cell.Fg, nil
	}
	return cell.Bg, nil
}

// SetCell writes one full cell from per-sub-pixel colors, flattening
// them into a mask and fg/bg pair. Cell coordinates, not pixel
// coordinates.
func (g *Static) SetCell(cx, cy int, colors []terminal.RGB) error {
	if cx < 0 || cy < 0 || cx >= g.widthCells || cy >= g.heightCell {
		return &CoordError{X: cx, Y: cy, Width: g.widthCells, Height: g.heightCell}
	}
	mask, fg, bg := g.res.Flatten(colors)
	g.cells[cy*g.widthCells+cx] = Cell{Mask: mask, Fg: fg, Bg: bg}
	return nil
}

// Cells returns the backing cell slice, row-major. Shared, not a copy.
func (g *Static) Cells() []Cell { return g.cells }

// Size returns the grid dimensions in character cells.
func (g *Static) Size() (int, int) { return g.widthCells, g.heightCell }

// CellAt composes the cell at (cx, cy) into its terminal form.
func (g *Static) CellAt(cx, cy int) (rune, terminal.RGB, terminal.RGB) {
	c := g.cells[cy*g.widthCells+cx]
	return g.res.Compose(c.Mask, c.Fg, c.Bg)
}
