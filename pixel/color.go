package pixel

import (
	"github.com/lixenwraith/termpixel/terminal"
	"github.com/lucasb-eyer/go-colorful"
)

// Distance returns the perceptual distance between two colors in Lab
// space. Only comparisons between returned values are meaningful.
func Distance(a, b terminal.RGB) float64 {
	return a.Colorful().DistanceLab(b.Colorful())
}

// Mix averages two colors component-wise. Used when lit sub-pixels of
// different colors collapse into one foreground slot.
func Mix(a, b terminal.RGB) terminal.RGB {
	return mix([]terminal.RGB{a, b})
}

func mix(colors []terminal.RGB) terminal.RGB {
	if len(colors) == 0 {
		return terminal.RGBBlack
	}
	var r, g, b int
	for _, c := range colors {
		r += int(c.R)
		g += int(c.G)
		b += int(c.B)
	}
	n := len(colors)
	return terminal.RGB{R: uint8(r / n), G: uint8(g / n), B: uint8(b / n)}
}

// Group splits colors into two groups anchored on the most distant
// pair. Every color joins the anchor it is nearer to; true marks the
// group of the second anchor.
func Group(colors []terminal.RGB) []bool {
	cs := make([]colorful.Color, len(colors))
	for i, c := range colors {
		cs[i] = c.Colorful()
	}

	var a1, a2 int
	max := -1.0
	for i := range cs {
		for j := i + 1; j < len(cs); j++ {
			if d := cs[i].DistanceLab(cs[j]); d > max {
				max = d
				a1, a2 = i, j
			}
		}
	}

	groups := make([]bool, len(colors))
	for i := range cs {
		if cs[a1].DistanceLab(cs[i]) > cs[a2].DistanceLab(cs[i]) {
			groups[i] = true
		}
	}
	return groups
}

// Flatten collapses one color per sub-pixel into a mask plus fg/bg
// pair: the colors are grouped into two clusters, lit bits mark the
// cluster of the second anchor, and each slot averages its cluster.
// colors must hold exactly PixelsPerCell entries in bit order.
func (r Resolution) Flatten(colors []terminal.RGB) (uint16, terminal.RGB, terminal.RGB) {
	if len(colors) != r.PixelsPerCell() {
		panic("pixel: color count does not match sub-pixels per cell")
	}

	groups := Group(colors)
	var mask uint16
	var fgColors, bgColors []terminal.RGB
	for i, lit := range groups {
		if lit {
			mask |= 1 << uint(i)
			fgColors = append(fgColors, colors[i])
		} else {
			bgColors = append(bgColors, colors[i])
		}
	}
	return mask, mix(fgColors), mix(bgColors)
}
