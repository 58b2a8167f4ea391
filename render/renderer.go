// Package render diffs display content against the last rendered frame
// and emits a coalesced instruction stream for the terminal.
package render

import (
	"github.com/lixenwraith/termpixel/terminal"
)

// Source is anything the renderer can draw: a cell-addressable surface
// that composes each cell into a glyph and color pair.
//
// A glyph of 0 marks a continuation cell (second column of a wide
// rune); the renderer tracks but never emits it.
type Source interface {
	Size() (widthCells, heightCells int)
	CellAt(x, y int) (glyph rune, fg, bg terminal.RGB)
}

// Instruction is one cell write. Instructions come out in row-major
// order. MoveCursor is set on the first instruction of each contiguous
// run; within a run the terminal cursor advances by itself. SetColor
// is set when fg or bg differ from the previously emitted instruction.
type Instruction struct {
	X, Y       int
	Glyph      rune
	Fg, Bg     terminal.RGB
	MoveCursor bool
	SetColor   bool
}

type frameCell struct {
	glyph  rune
	fg, bg terminal.RGB
}

// Renderer retains the last rendered frame and produces the minimal
// instruction stream to bring the terminal up to date.
type Renderer struct {
	width, height int
	front         []frameCell
	valid         bool
	out           []Instruction
}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Invalidate forces the next Render to redraw every cell.
func (r *Renderer) Invalidate() {
	r.valid = false
}

// Render diffs the source against the retained frame. The first call,
// any call after Invalidate, and any call after a source size change
// redraw fully; otherwise only changed cells are emitted, and an
// unchanged source yields an empty stream. The returned slice is
// reused by the next Render.
func (r *Renderer) Render(src Source) []Instruction {
	w, h := src.Size()
	if w != r.width || h != r.height {
		r.width, r.height = w, h
		r.front = make([]frameCell, w*h)
		r.valid = false
	}

	full := !r.valid
	r.out = r.out[:0]

	// prevEmitted tracks run continuity and color state across the
	// emitted stream, not across grid cells.
	prevIdx := -2
	var prevFg, prevBg terminal.RGB
	emitted := false

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*w + x
			glyph, fg, bg := src.CellAt(x, y)
			cur := frameCell{glyph: glyph, fg: fg, bg: bg}

			if !full && cur == r.front[i] {
				continue
			}
			r.front[i] = cur

			if glyph == 0 {
				// Continuation cell: covered by the wide rune to its
				// left, nothing to emit. Breaks the current run.
				continue
			}

			ins := Instruction{X: x, Y: y, Glyph: glyph, Fg: fg, Bg: bg}
			if !emitted || i != prevIdx+1 || x == 0 {
				ins.MoveCursor = true
			}
			if !emitted || fg != prevFg || bg != prevBg {
				ins.SetColor = true
			}
			r.out = append(r.out, ins)

			prevIdx = i
			prevFg, prevBg = fg, bg
			emitted = true
		}
	}

	r.valid = true
	return r.out
}
