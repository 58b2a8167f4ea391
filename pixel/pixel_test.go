package pixel

import (
	"testing"

	"github.com/lixenwraith/termpixel/terminal"
)

func TestEncodeTotal(t *testing.T) {
	for _, res := range Resolutions() {
		for mask := 0; mask < res.Domain(); mask++ {
			g := res.Encode(uint16(mask))
			if g == 0 {
				t.Errorf("%s: mask %#x has no glyph", res, mask)
			}
		}
	}
}

func TestEncodeSpotChecks(t *testing.T) {
	tests := []struct {
		res  Resolution
		mask uint16
		want rune
	}{
		{Full, 0, ' '},
		{Full, 1, '█'},
		{Half, 1, '▀'},
		{Half, 2, '▄'},
		{Half, 3, '█'},
		{Quad, 0, ' '},
		{Quad, 5, '▌'},  // left column
		{Quad, 10, '▐'}, // right column
		{Quad, 3, '▀'},  // top row
		{Quad, 15, '█'},
		{Sextant, 21, '▌'},
		{Sextant, 42, '▐'},
		{Sextant, 63, '█'},
		{Octant, 15, '▀'},
		{Octant, 85, '▌'},
		{Octant, 170, '▐'},
		{Octant, 255, '█'},
		{Braille, 0, '⠀'},
		{Braille, 255, '⣿'},
	}
	for _, tt := range tests {
		if got := tt.res.Encode(tt.mask); got != tt.want {
			t.Errorf("%s.Encode(%d) = %q, want %q", tt.res, tt.mask, got, tt.want)
		}
	}
}

// Braille glyphs follow a fixed dot layout: each sub-pixel position
// maps to one dot bit in the U+2800 block.
func TestBrailleDotMapping(t *testing.T) {
	dotBits := [8]rune{0x01, 0x08, 0x02, 0x10, 0x04, 0x20, 0x40, 0x80}
	for mask := 0; mask < 256; mask++ {
		want := rune(0x2800)
		for bit := 0; bit < 8; bit++ {
			if mask&(1<<bit) != 0 {
				want |= dotBits[bit]
			}
		}
		if got := Braille.Encode(uint16(mask)); got != want {
			t.Fatalf("Braille.Encode(%d) = %U, want %U", mask, got, want)
		}
	}
}

func TestEncodePanicsOutOfDomain(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for out-of-domain mask")
		}
	}()
	Quad.Encode(16)
}

func TestBitIndex(t *testing.T) {
	tests := []struct {
		res    Resolution
		dx, dy int
		want   uint
	}{
		{Quad, 0, 0, 0},
		{Quad, 1, 0, 1},
		{Quad, 0, 1, 2},
		{Quad, 1, 1, 3},
		{Sextant, 1, 2, 5},
		{Octant, 1, 3, 7},
		{Half, 0, 1, 1},
	}
	for _, tt := range tests {
		if got := tt.res.BitIndex(tt.dx, tt.dy); got != tt.want {
			t.Errorf("%s.BitIndex(%d,%d) = %d, want %d", tt.res, tt.dx, tt.dy, got, tt.want)
		}
	}
}

func TestComposeHalf(t *testing.T) {
	red := terminal.RGB{R: 255}
	blue := terminal.RGB{B: 255}

	for _, mask := range []uint16{0, 1, 2, 3} {
		glyph, fg, bg := Half.Compose(mask, red, blue)
		if glyph != '▀' {
			t.Errorf("Half.Compose(%d) glyph = %q, want '▀'", mask, glyph)
		}
		if fg != red || bg != blue {
			t.Errorf("Half.Compose(%d) did not pass slots through", mask)
		}
	}
}

func TestComposeEncodes(t *testing.T) {
	red := terminal.RGB{R: 255}
	glyph, fg, bg := Octant.Compose(255, red, terminal.RGBBlack)
	if glyph != '█' {
		t.Errorf("Octant.Compose(255) glyph = %q, want '█'", glyph)
	}
	if fg != red || bg != terminal.RGBBlack {
		t.Error("Octant.Compose changed colors")
	}
}

func TestCanonicalSparse(t *testing.T) {
	// Quad-sized table with only the column and corner patterns mapped.
	table := make([]rune, 16)
	table[0] = ' '
	table[5] = '▌'
	table[10] = '▐'
	table[15] = '█'

	tests := []struct {
		mask uint16
		want uint16
	}{
		{5, 5},  // mapped, unchanged
		{7, 5},  // distance 1 to both 5 and 15; lowest wins
		{2, 0},  // distance 1 to both 0 and 10; lowest wins
		{13, 5}, // distance 1 to both 5 and 15; lowest wins
	}
	for _, tt := range tests {
		if got := canonical(tt.mask, table); got != tt.want {
			t.Errorf("canonical(%d) = %d, want %d", tt.mask, got, tt.want)
		}
	}

	if got := EncodeWith(7, table); got != '▌' {
		t.Errorf("EncodeWith(7) = %q, want '▌'", got)
	}
}

func TestGroupAnchors(t *testing.T) {
	black := terminal.RGBBlack
	white := terminal.RGB{R: 255, G: 255, B: 255}
	groups := Group([]terminal.RGB{black, white, black})

	if groups[0] == groups[1] {
		t.Error("Expected black and white in different groups")
	}
	if groups[0] != groups[2] {
		t.Error("Expected both blacks in the same group")
	}
}

func TestFlatten(t *testing.T) {
	red := terminal.RGB{R: 255}
	blue := terminal.RGB{B: 255}

	// Top row red, bottom row blue on a quad cell.
	mask, fg, bg := Quad.Flatten([]terminal.RGB{red, red, blue, blue})

	// One group holds the reds, the other the blues; orientation of
	// fg/bg depends on which anchor came first.
	switch mask {
	case 0b1100:
		if fg != blue || bg != red {
			t.Errorf("Flatten colors = %v/%v, want blue/red", fg, bg)
		}
	case 0b0011:
		if fg != red || bg != blue {
			t.Errorf("Flatten colors = %v/%v, want red/blue", fg, bg)
		}
	default:
		t.Errorf("Flatten mask = %04b, want 1100 or 0011", mask)
	}
}

func TestFlattenPanicsOnCount(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for wrong color count")
		}
	}()
	Quad.Flatten([]terminal.RGB{{}, {}})
}

func TestMix(t *testing.T) {
	got := Mix(terminal.RGB{R: 255}, terminal.RGB{B: 255})
	want := terminal.RGB{R: 127, B: 127}
	if got != want {
		t.Errorf("Mix = %v, want %v", got, want)
	}
}

func TestDistanceOrdering(t *testing.T) {
	red := terminal.RGB{R: 255}
	darkRed := terminal.RGB{R: 128}
	blue := terminal.RGB{B: 255}

	if Distance(red, darkRed) >= Distance(red, blue) {
		t.Error("Expected dark red closer to red than blue")
	}
	if Distance(red, red) != 0 {
		t.Error("Expected zero distance to self")
	}
}
