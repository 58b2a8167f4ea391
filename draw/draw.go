// Package draw provides shape primitives that plot onto pixel grids.
// Coordinates are float64 pixel positions; samples are rounded to the
// nearest pixel and out-of-bounds samples are clipped silently.
package draw

import (
	"math"

	"github.com/lixenwraith/termpixel/terminal"
)

// Canvas is the plotting surface. *grid.Static and *grid.Dynamic
// satisfy it.
type Canvas interface {
	SetPixel(x, y int, c terminal.RGB) error
}

// Drawable is a shape that can plot itself onto a canvas.
type Drawable interface {
	Draw(cv Canvas, c terminal.RGB)
}

func plot(cv Canvas, x, y float64, c terminal.RGB) {
	if x <= -0.5 || y <= -0.5 {
		return
	}
	// Out-of-bounds plots clip.
	_ = cv.SetPixel(int(math.Round(x)), int(math.Round(y)), c)
}

// Line is a segment between two endpoints.
type Line struct {
	X1, Y1, X2, Y2 float64
}

// Draw steps along the longer axis one pixel at a time (DDA).
func (l Line) Draw(cv Canvas, c terminal.RGB) {
	dx := l.X2 - l.X1
	dy := l.Y2 - l.Y1

	steps := math.Max(math.Abs(dx), math.Abs(dy))
	if steps == 0 {
		plot(cv, l.X1, l.Y1, c)
		return
	}
	xInc := dx / steps
	yInc := dy / steps

	x, y := l.X1, l.Y1
	n := int(math.Round(steps))
	for i := 0; i <= n; i++ {
		plot(cv, x, y, c)
		x += xInc
		y += yInc
	}
}

// Transform returns the line with both endpoints mapped through f.
func (l Line) Transform(f func(x, y float64) (float64, float64)) Line {
	x1, y1 := f(l.X1, l.Y1)
	x2, y2 := f(l.X2, l.Y2)
	return Line{X1: x1, Y1: y1, X2: x2, Y2: y2}
}

// Rect is an axis-aligned rectangle between two corners.
type Rect struct {
	X1, Y1, X2, Y2 float64
	Filled         bool
}

func (r Rect) Draw(cv Canvas, c terminal.RGB) {
	if r.Filled {
		x1 := int(math.Round(r.X1))
		x2 := int(math.Round(r.X2))
		if x1 > x2 {
			x1, x2 = x2, x1
		}
		for x := x1; x <= x2; x++ {
			Line{X1: float64(x), Y1: r.Y1, X2: float64(x), Y2: r.Y2}.Draw(cv, c)
		}
		return
	}
	Line{X1: r.X1, Y1: r.Y1, X2: r.X2, Y2: r.Y1}.Draw(cv, c)
	Line{X1: r.X1, Y1: r.Y2, X2: r.X2, Y2: r.Y2}.Draw(cv, c)
	Line{X1: r.X1, Y1: r.Y1, X2: r.X1, Y2: r.Y2}.Draw(cv, c)
	Line{X1: r.X2, Y1: r.Y1, X2: r.X2, Y2: r.Y2}.Draw(cv, c)
}

// Transform returns the rectangle with both corners mapped through f.
func (r Rect) Transform(f func(x, y float64) (float64, float64)) Rect {
	x1, y1 := f(r.X1, r.Y1)
	x2, y2 := f(r.X2, r.Y2)
	return Rect{X1: x1, Y1: y1, X2: x2, Y2: y2, Filled: r.Filled}
}

// Ellipse is an axis-aligned ellipse around a center point.
type Ellipse struct {
	CX, CY, RX, RY float64
	Filled         bool

	// Points is the number of circumference samples for the outline;
	// 0 means 32.
	Points int
}

func (e Ellipse) Draw(cv Canvas, c terminal.RGB) {
	if e.Filled {
		if e.RY == 0 {
			Line{X1: e.CX - e.RX, Y1: e.CY, X2: e.CX + e.RX, Y2: e.CY}.Draw(cv, c)
			return
		}
		ry := int(math.Round(e.RY))
		for dy := -ry; dy <= ry; dy++ {
			fy := float64(dy)
			span := e.RX * math.Sqrt(math.Max(0, 1-(fy*fy)/(e.RY*e.RY)))
			Line{
				X1: e.CX - span, Y1: e.CY + fy,
				X2: e.CX + span, Y2: e.CY + fy,
			}.Draw(cv, c)
		}
		return
	}

	points := e.Points
	if points <= 0 {
		points = 32
	}
	lastX := e.CX + e.RX
	lastY := e.CY
	for i := 1; i <= points; i++ {
		angle := 2 * math.Pi / float64(points) * float64(i)
		x := e.CX + e.RX*math.Cos(angle)
		y := e.CY + e.RY*math.Sin(angle)
		Line{X1: lastX, Y1: lastY, X2: x, Y2: y}.Draw(cv, c)
		lastX, lastY = x, y
	}
}

// Transform returns the ellipse with its center mapped through f. The
// radii scale by the transform's displacement of the radius endpoints.
func (e Ellipse) Transform(f func(x, y float64) (float64, float64)) Ellipse {
	cx, cy := f(e.CX, e.CY)
	rxX, _ := f(e.CX+e.RX, e.CY)
	_, ryY := f(e.CX, e.CY+e.RY)
	return Ellipse{
		CX: cx, CY: cy,
		RX: math.Abs(rxX - cx), RY: math.Abs(ryY - cy),
		Filled: e.Filled, Points: e.Points,
	}
}
