package chargrid

import (
	"errors"
	"testing"

	"github.com/lixenwraith/termpixel/grid"
	"github.com/lixenwraith/termpixel/terminal"
)

var (
	white = terminal.RGB{R: 255, G: 255, B: 255}
	black = terminal.RGBBlack
)

func TestSetAndCellAt(t *testing.T) {
	g := New(4, 2)

	if err := g.Set(1, 0, 'A', white, black); err != nil {
		t.Fatal(err)
	}
	r, fg, _ := g.CellAt(1, 0)
	if r != 'A' || fg != white {
		t.Errorf("CellAt(1,0) = %q %v, want 'A' white", r, fg)
	}

	// Untouched cells are blank spaces.
	r, _, _ = g.CellAt(0, 0)
	if r != ' ' {
		t.Errorf("Blank cell = %q, want space", r)
	}
}

func TestSetRejectsControlRunes(t *testing.T) {
	g := New(4, 2)

	var re *RuneError
	for _, r := range []rune{'\n', '\t', '\x1b', 0} {
		if err := g.Set(0, 0, r, white, black); !errors.As(err, &re) {
			t.Errorf("Set(%q) error = %v, want *RuneError", r, err)
		}
	}
}

func TestSetBounds(t *testing.T) {
	g := New(4, 2)

	var ce *grid.CoordError
	for _, p := range [][2]int{{-1, 0}, {4, 0}, {0, 2}} {
		if err := g.Set(p[0], p[1], 'x', white, black); !errors.As(err, &ce) {
			t.Errorf("Set(%d,%d) error = %v, want *CoordError", p[0], p[1], err)
		}
	}
}

func TestWideRuneOccupiesTwoColumns(t *testing.T) {
	g := New(4, 1)

	if err := g.Set(0, 0, '世', white, black); err != nil {
		t.Fatal(err)
	}
	r, _, _ := g.CellAt(0, 0)
	if r != '世' {
		t.Errorf("CellAt(0,0) = %q, want wide rune", r)
	}
	r, _, _ = g.CellAt(1, 0)
	if r != 0 {
		t.Errorf("Continuation cell = %q, want glyph 0", r)
	}

	// A wide rune cannot start at the last column.
	var ce *grid.CoordError
	if err := g.Set(3, 0, '世', white, black); !errors.As(err, &ce) {
		t.Errorf("Wide rune at last column error = %v, want *CoordError", err)
	}
}

func TestOverwritingWideRuneBlanksPair(t *testing.T) {
	g := New(4, 1)
	g.Set(0, 0, '世', white, black)

	// Overwriting the continuation blanks the lead cell.
	if err := g.Set(1, 0, 'x', white, black); err != nil {
		t.Fatal(err)
	}
	r, _, _ := g.CellAt(0, 0)
	if r != ' ' {
		t.Errorf("Lead cell after overwrite = %q, want space", r)
	}
	r, _, _ = g.CellAt(1, 0)
	if r != 'x' {
		t.Errorf("Overwritten cell = %q, want 'x'", r)
	}

	// Overwriting the lead blanks the continuation.
	g.Clear()
	g.Set(0, 0, '世', white, black)
	g.Set(0, 0, 'y', white, black)
	r, _, _ = g.CellAt(1, 0)
	if r != ' ' {
		t.Errorf("Continuation after lead overwrite = %q, want space", r)
	}
}

func TestWriteString(t *testing.T) {
	g := New(8, 1)

	next := g.WriteString(1, 0, "a世b", white, black)
	if next != 5 {
		t.Errorf("WriteString returned %d, want 5", next)
	}

	want := []rune{' ', 'a', '世', 0, 'b', ' ', ' ', ' '}
	for x, wr := range want {
		r, _, _ := g.CellAt(x, 0)
		if r != wr {
			t.Errorf("CellAt(%d,0) = %q, want %q", x, r, wr)
		}
	}

	// Writing past the edge stops cleanly.
	next = g.WriteString(6, 0, "xyz", white, black)
	if next != 8 {
		t.Errorf("Clipped WriteString returned %d, want 8", next)
	}
}

func TestSetBackgroundRepaintsBlanks(t *testing.T) {
	g := New(2, 1)
	gray := terminal.RGB{R: 40, G: 40, B: 40}

	g.Set(0, 0, 'x', white, black)
	g.SetBackground(gray)

	_, _, bg := g.CellAt(1, 0)
	if bg != gray {
		t.Errorf("Blank cell bg = %v, want gray", bg)
	}
	_, _, bg = g.CellAt(0, 0)
	if bg != gray {
		// 'x' was set with bg black, equal to the old background, so it
		// repaints too.
		t.Errorf("Cell bg = %v, want gray", bg)
	}
}
