package grid

import (
	"math"
	"testing"

	"github.com/jbeda/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func canvas(w, h float64) geom.Rect {
	return geom.Rect{Min: geom.Coord{X: 0, Y: 0}, Max: geom.Coord{X: w, Y: h}}
}

func TestTicks(t *testing.T) {
	assert.Equal(t, []float64{0, 25, 50, 75, 100}, ticks(0, 100, 0, 25))
	assert.Equal(t, []float64{10, 35, 60, 85}, ticks(0, 100, 10, 25))
	assert.Equal(t, []float64{-15, 10, 35}, ticks(-20, 40, 10, 25))
	assert.Equal(t, []float64{5}, ticks(5, 5, 0, 5))
	assert.Empty(t, ticks(1, 4, 0, 5))
}

func TestLines(t *testing.T) {
	g := Grid{Extent: canvas(100, 50), Spacing: 25, Color: "#a000a0", StrokeWidth: 1}
	lines := g.Lines()
	require.Len(t, lines, 5+3)

	// Verticals first, spanning the full height.
	for i, l := range lines[:5] {
		assert.Equal(t, float64(25*i), l.A.X)
		assert.Equal(t, l.A.X, l.B.X)
		assert.Equal(t, 0.0, l.A.Y)
		assert.Equal(t, 50.0, l.B.Y)
		assert.Equal(t, "#a000a0", l.Stroke)
		assert.Equal(t, 1.0, l.StrokeWidth)
	}
	for i, l := range lines[5:] {
		assert.Equal(t, float64(25*i), l.A.Y)
		assert.Equal(t, 0.0, l.A.X)
		assert.Equal(t, 100.0, l.B.X)
	}
	assert.Len(t, g.Primitives(), len(lines))
}

func TestLinesOrigin(t *testing.T) {
	g := Grid{Extent: canvas(100, 100), Origin: geom.Coord{X: 50, Y: 60}, Spacing: 40}
	var xs, ys []float64
	for _, l := range g.Lines() {
		if l.A.X == l.B.X {
			xs = append(xs, l.A.X)
		} else {
			ys = append(ys, l.A.Y)
		}
	}
	assert.Equal(t, []float64{10, 50, 90}, xs)
	assert.Equal(t, []float64{20, 60, 100}, ys)
}

func TestLinesDegenerate(t *testing.T) {
	assert.Empty(t, Grid{Extent: canvas(100, 100)}.Lines())
	assert.Empty(t, Grid{Extent: canvas(100, 100), Spacing: -5}.Lines())
	inverted := geom.Rect{Min: geom.Coord{X: 10, Y: 10}, Max: geom.Coord{X: 0, Y: 0}}
	assert.Empty(t, Grid{Extent: inverted, Spacing: 5}.Lines())
}

func TestTicksFarOrigin(t *testing.T) {
	// Far from the extent the lattice is coarser than float64 can step
	// through one k at a time.
	got := ticks(0, 500, 1e20, 25)
	assert.Len(t, got, 1)

	assert.Empty(t, ticks(0, 500, math.Inf(1), 25))
	assert.Empty(t, ticks(0, 500, math.NaN(), 25))
}

func TestTicksTooDense(t *testing.T) {
	assert.Nil(t, ticks(0, 500, 0, 1e-20))
	assert.Len(t, ticks(0, MaxLines-1, 0, 1), MaxLines)
	assert.Nil(t, ticks(0, MaxLines, 0, 1))
}

func TestCounts(t *testing.T) {
	g := Grid{Extent: canvas(100, 50), Spacing: 25}
	v, h := g.Counts()
	assert.Equal(t, 5, v)
	assert.Equal(t, 3, h)

	g.Spacing = 1e-20
	v, h = g.Counts()
	assert.Greater(t, v, MaxLines)
	assert.Greater(t, h, MaxLines)
	assert.Empty(t, g.Lines())

	v, h = Grid{Extent: canvas(100, 50)}.Counts()
	assert.Zero(t, v)
	assert.Zero(t, h)
}
