// Package pixel maps packed sub-pixel bitmasks to Unicode glyphs.
//
// A resolution describes how many sub-pixels one character cell packs and
// which glyph scheme renders them. Resolutions form a closed set; each
// carries a total encode table over all of its bit patterns.
package pixel

import (
	"fmt"

	"github.com/lixenwraith/termpixel/terminal"
)

// Resolution identifies a sub-pixel packing scheme.
type Resolution uint8

const (
	// Full packs 1x1: one sub-pixel per cell, rendered as a full block.
	Full Resolution = iota
	// Half packs 1x2 using half blocks. The top sub-pixel colors the
	// foreground, the bottom the background, giving two independent
	// colors per cell.
	Half
	// Quad packs 2x2 using quadrant blocks. All 16 patterns exist.
	Quad
	// Sextant packs 2x3 using Symbols for Legacy Computing.
	Sextant
	// Octant packs 2x4 using the Legacy Computing Supplement octants.
	Octant
	// Braille packs 2x4 using braille dot patterns (U+2800 block).
	Braille
)

// Capability declares what a resolution can express per cell.
type Capability struct {
	Width  int // sub-pixels packed horizontally
	Height int // sub-pixels packed vertically

	// MaxColors is the number of simultaneously distinguishable
	// sub-pixel colors in one cell.
	MaxColors int

	// IndependentBg reports whether the cell background can be set
	// independently of the sub-pixel colors. False for Half, whose
	// background slot is the lower sub-pixel.
	IndependentBg bool
}

var capabilities = [...]Capability{
	Full:    {Width: 1, Height: 1, MaxColors: 1, IndependentBg: true},
	Half:    {Width: 1, Height: 2, MaxColors: 2, IndependentBg: false},
	Quad:    {Width: 2, Height: 2, MaxColors: 1, IndependentBg: true},
	Sextant: {Width: 2, Height: 3, MaxColors: 1, IndependentBg: true},
	Octant:  {Width: 2, Height: 4, MaxColors: 1, IndependentBg: true},
	Braille: {Width: 2, Height: 4, MaxColors: 1, IndependentBg: true},
}

var names = [...]string{
	Full:    "full",
	Half:    "half",
	Quad:    "quad",
	Sextant: "sextant",
	Octant:  "octant",
	Braille: "braille",
}

// Resolutions lists every supported resolution.
func Resolutions() []Resolution {
	return []Resolution{Full, Half, Quad, Sextant, Octant, Braille}
}

func (r Resolution) String() string {
	if int(r) < len(names) {
		return names[r]
	}
	return fmt.Sprintf("resolution(%d)", uint8(r))
}

// Capability returns the capability set of the resolution.
func (r Resolution) Capability() Capability {
	return capabilities[r]
}

// Width returns sub-pixels per cell horizontally.
func (r Resolution) Width() int { return capabilities[r].Width }

// Height returns sub-pixels per cell vertically.
func (r Resolution) Height() int { return capabilities[r].Height }

// PixelsPerCell returns the number of sub-pixels in one cell.
func (r Resolution) PixelsPerCell() int {
	c := capabilities[r]
	return c.Width * c.Height
}

// Domain returns the number of valid bitmasks, 1 << (W*H).
func (r Resolution) Domain() int {
	return 1 << r.PixelsPerCell()
}

// BitIndex returns the bit position of a sub-pixel within a cell.
// The canonical ordering for every resolution is bit = x + y*W with the
// least significant bit at the top-left, row-major. The encode tables
// are indexed by masks built with this ordering.
func (r Resolution) BitIndex(dx, dy int) uint {
	return uint(dx) + uint(dy)*uint(capabilities[r].Width)
}

// Encode maps a sub-pixel bitmask to its glyph. Encode is total over
// [0, Domain); a mask outside the domain is a programming defect
// upstream and panics.
func (r Resolution) Encode(mask uint16) rune {
	if int(mask) >= r.Domain() {
		panic(fmt.Sprintf("pixel: mask %#x outside %s domain %d", mask, r, r.Domain()))
	}
	switch r {
	case Full:
		return fullGlyphs[mask]
	case Half:
		return halfGlyphs[mask]
	case Quad:
		return quadGlyphs[mask]
	case Sextant:
		return sextantGlyphs[mask]
	case Octant:
		return octantGlyphs[mask]
	case Braille:
		return brailleGlyphs[mask]
	}
	panic(fmt.Sprintf("pixel: unknown resolution %d", uint8(r)))
}

// Compose produces the terminal representation of one cell: the glyph
// plus the foreground and background colors to draw it with.
//
// Half is the special case: both sub-pixels are expressed through color
// slots, so the glyph is always the upper half block with the top slot
// as foreground and the bottom slot as background.
func (r Resolution) Compose(mask uint16, fg, bg terminal.RGB) (rune, terminal.RGB, terminal.RGB) {
	if r == Half {
		return '▀', fg, bg
	}
	return r.Encode(mask), fg, bg
}
