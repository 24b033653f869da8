// Package grid draws a flat reference grid in screen space.  It knows
// nothing about the ball; its lines are handed to the document as underlay.
package grid

import (
	"math"

	"github.com/jbeda/geom"

	"boing/internal/svgdoc"
)

// Grid is a lattice of vertical and horizontal lines spaced Spacing apart,
// passing through Origin and clipped to Extent.
type Grid struct {
	Extent      geom.Rect
	Origin      geom.Coord
	Spacing     float64
	Color       string
	StrokeWidth float64
}

// Lines returns the vertical lines left to right followed by the horizontal
// lines top to bottom.  A non-positive spacing or an empty extent yields no
// lines.
func (g Grid) Lines() []*svgdoc.Line {
	if !(g.Spacing > 0) || g.Extent.Max.X < g.Extent.Min.X || g.Extent.Max.Y < g.Extent.Min.Y {
		return nil
	}
	var r []*svgdoc.Line
	for _, x := range ticks(g.Extent.Min.X, g.Extent.Max.X, g.Origin.X, g.Spacing) {
		r = append(r, g.line(geom.Coord{X: x, Y: g.Extent.Min.Y}, geom.Coord{X: x, Y: g.Extent.Max.Y}))
	}
	for _, y := range ticks(g.Extent.Min.Y, g.Extent.Max.Y, g.Origin.Y, g.Spacing) {
		r = append(r, g.line(geom.Coord{X: g.Extent.Min.X, Y: y}, geom.Coord{X: g.Extent.Max.X, Y: y}))
	}
	return r
}

// Primitives is Lines in the form the document takes.
func (g Grid) Primitives() []svgdoc.Primitive {
	lines := g.Lines()
	r := make([]svgdoc.Primitive, len(lines))
	for i, l := range lines {
		r[i] = l
	}
	return r
}

// MaxLines bounds the lines drawn along either axis.  An axis that would need
// more draws none.
const MaxLines = 100_000

// Counts is how many vertical and horizontal lines the grid spans.  A count
// above MaxLines means that axis is too dense to draw.
func (g Grid) Counts() (vertical, horizontal int) {
	if !(g.Spacing > 0) || g.Extent.Max.X < g.Extent.Min.X || g.Extent.Max.Y < g.Extent.Min.Y {
		return 0, 0
	}
	_, vertical = tickRange(g.Extent.Min.X, g.Extent.Max.X, g.Origin.X, g.Spacing)
	_, horizontal = tickRange(g.Extent.Min.Y, g.Extent.Max.Y, g.Origin.Y, g.Spacing)
	return vertical, horizontal
}

func (g Grid) line(a, b geom.Coord) *svgdoc.Line {
	return &svgdoc.Line{A: a, B: b, Stroke: g.Color, StrokeWidth: g.StrokeWidth}
}

// tickRange finds the first integer k with origin + k*step in [lo, hi] and
// how many consecutive k follow it.  The count saturates at MaxLines+1.
func tickRange(lo, hi, origin, step float64) (first float64, n int) {
	const eps = 1e-9
	first = math.Ceil((lo-origin)/step - eps)
	last := math.Floor((hi-origin)/step + eps)
	switch span := last - first + 1; {
	case math.IsNaN(span) || span < 1:
		return 0, 0
	case span > MaxLines:
		return first, MaxLines + 1
	default:
		return first, int(span)
	}
}

// ticks lists origin + k*step for every integer k landing in [lo, hi].
func ticks(lo, hi, origin, step float64) []float64 {
	first, n := tickRange(lo, hi, origin, step)
	if n > MaxLines {
		return nil
	}
	r := make([]float64, n)
	for i := range r {
		r[i] = origin + (first+float64(i))*step
	}
	return r
}
