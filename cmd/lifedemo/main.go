// Conway's Game of Life on a braille-resolution grid. Quit with q or
// Escape, reseed with r.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/termpixel/display"
	"github.com/lixenwraith/termpixel/pixel"
	"github.com/lixenwraith/termpixel/terminal"
)

type world struct {
	w, h  int
	cells []uint8 // 0 dead, otherwise age capped at 255
	next  []uint8
}

func newWorld(w, h int) *world {
	wd := &world{w: w, h: h, cells: make([]uint8, w*h), next: make([]uint8, w*h)}
	wd.seed()
	return wd
}

func (wd *world) seed() {
	for i := range wd.cells {
		if rand.Intn(4) == 0 {
			wd.cells[i] = 1
		} else {
			wd.cells[i] = 0
		}
	}
}

func (wd *world) neighbors(x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			// Toroidal wrap
			nx := (x + dx + wd.w) % wd.w
			ny := (y + dy + wd.h) % wd.h
			if wd.cells[ny*wd.w+nx] != 0 {
				n++
			}
		}
	}
	return n
}

func (wd *world) step() {
	for y := 0; y < wd.h; y++ {
		for x := 0; x < wd.w; x++ {
			i := y*wd.w + x
			n := wd.neighbors(x, y)
			age := wd.cells[i]
			switch {
			case age != 0 && (n == 2 || n == 3):
				if age < 255 {
					age++
				}
				wd.next[i] = age
			case age == 0 && n == 3:
				wd.next[i] = 1
			default:
				wd.next[i] = 0
			}
		}
	}
	wd.cells, wd.next = wd.next, wd.cells
}

// ageColor shifts hue with age so stable structures drift from green
// toward blue.
func ageColor(age uint8) terminal.RGB {
	hue := 120 + float64(age)*0.5
	if hue > 250 {
		hue = 250
	}
	return terminal.FromColorful(colorful.Hsv(hue, 0.9, 1.0))
}

func run() error {
	d := display.New(pixel.Braille, display.WithTickInterval(50*time.Millisecond))
	if err := d.Initialize(); err != nil {
		return err
	}

	wd := newWorld(d.Grid().WidthPx(), d.Grid().HeightPx())

	return d.Update(func(d *display.Driver, events []terminal.Event) display.Status {
		for _, ev := range events {
			switch ev.Type {
			case terminal.EventKey:
				switch {
				case ev.Key == terminal.KeyEscape:
					return display.Break
				case ev.Key == terminal.KeyRune && ev.Rune == 'q':
					return display.Break
				case ev.Key == terminal.KeyRune && ev.Rune == 'r':
					wd.seed()
				}
			case terminal.EventResize:
				wd = newWorld(ev.Width, ev.Height)
			}
		}

		wd.step()

		g := d.Grid()
		g.Clear()
		for y := 0; y < wd.h; y++ {
			for x := 0; x < wd.w; x++ {
				if age := wd.cells[y*wd.w+x]; age != 0 {
					g.SetPixel(x, y, ageColor(age))
				}
			}
		}
		return display.Continue
	})
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
