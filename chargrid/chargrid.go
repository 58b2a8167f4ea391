// Package chargrid is a character-cell surface for text overlays,
// rendered through the same instruction stream as pixel grids. Wide
// runes occupy two columns.
package chargrid

import (
	"unicode"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/termpixel/grid"
	"github.com/lixenwraith/termpixel/terminal"
)

// Cell is one character position. A zero Rune marks the continuation
// column of a wide rune.
type Cell struct {
	Rune   rune
	Fg, Bg terminal.RGB
}

// Grid is a fixed-size character surface.
type Grid struct {
	width, height int
	background    terminal.RGB
	cells         []Cell
}

// New creates a character grid. Dimensions are in cells.
func New(width, height int) *Grid {
	g := &Grid{
		width:      width,
		height:     height,
		background: terminal.RGBBlack,
		cells:      make([]Cell, width*height),
	}
	g.Clear()
	return g
}

// SetBackground changes the color blank cells render with. Cells still
// showing the previous background are repainted.
func (g *Grid) SetBackground(c terminal.RGB) {
	old := g.background
	g.background = c
	for i := range g.cells {
		if g.cells[i].Bg == old {
			g.cells[i].Bg = c
		}
	}
}

// Clear blanks every cell.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = Cell{Rune: ' ', Fg: g.background, Bg: g.background}
	}
}

// clearPair restores a wide rune's pair when either half is overwritten.
func (g *Grid) clearPair(x, y int) {
	i := y*g.width + x
	c := g.cells[i]
	if c.Rune == 0 && x > 0 {
		g.cells[i-1] = Cell{Rune: ' ', Fg: g.background, Bg: g.background}
	}
	if x+1 < g.width && runewidth.RuneWidth(c.Rune) == 2 {
		g.cells[i+1] = Cell{Rune: ' ', Fg: g.background, Bg: g.background}
	}
}

// Set places a rune at (x, y). Control runes and zero-width runes are
// rejected. A wide rune needs two columns; it is rejected at the last
// column. Overwriting either half of an existing wide rune blanks the
// other half.
func (g *Grid) Set(x, y int, r rune, fg, bg terminal.RGB) error {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return &grid.CoordError{X: x, Y: y, Width: g.width, Height: g.height}
	}
	w := runewidth.RuneWidth(r)
	if r == 0 || unicode.IsControl(r) || w == 0 {
		return &RuneError{Rune: r}
	}
	if w == 2 && x+1 >= g.width {
		return &grid.CoordError{X: x + 1, Y: y, Width: g.width, Height: g.height}
	}

	g.clearPair(x, y)
	if w == 2 {
		g.clearPair(x+1, y)
	}

	i := y*g.width + x
	g.cells[i] = Cell{Rune: r, Fg: fg, Bg: bg}
	if w == 2 {
		g.cells[i+1] = Cell{Rune: 0, Fg: fg, Bg: bg}
	}
	return nil
}

// WriteString writes s starting at (x, y), advancing by rune width.
// Writing stops at the right edge or on the first rejected rune.
// Returns the column after the last written rune.
func (g *Grid) WriteString(x, y int, s string, fg, bg terminal.RGB) int {
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if err := g.Set(x, y, r, fg, bg); err != nil {
			return x
		}
		x += w
	}
	return x
}

// Size returns the grid dimensions in cells.
func (g *Grid) Size() (int, int) { return g.width, g.height }

// CellAt composes the cell at (x, y) for the renderer. Continuation
// cells report glyph 0 and are skipped by the renderer.
func (g *Grid) CellAt(x, y int) (rune, terminal.RGB, terminal.RGB) {
	c := g.cells[y*g.width+x]
	return c.Rune, c.Fg, c.Bg
}
