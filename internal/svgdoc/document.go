package svgdoc

import (
	"io"

	"github.com/jbeda/geom"
)

// Primitive is anything that can draw itself into an SVG document.
type Primitive interface {
	Draw(svg *SVG)
}

// Polygon is a filled polygon with a stroke.
type Polygon struct {
	Points      []geom.Coord
	Fill        string
	Stroke      string
	StrokeWidth float64
}

func (p *Polygon) Draw(svg *SVG) {
	svg.Polygon(p.Points,
		Attr("fill", p.Fill),
		Attr("stroke", p.Stroke),
		Attr("stroke-width", num(p.StrokeWidth)))
}

// Line is a stroked segment.
type Line struct {
	A, B        geom.Coord
	Stroke      string
	StrokeWidth float64
}

func (l *Line) Draw(svg *SVG) {
	svg.Line(l.A, l.B,
		Attr("stroke", l.Stroke),
		Attr("stroke-width", num(l.StrokeWidth)))
}

// Document is a complete picture.  It draws bottom to top: the background
// (when Background is non-empty), then Underlay, then Polygons.
type Document struct {
	Width, Height float64
	Background    string
	Underlay      []Primitive
	Polygons      []*Polygon
}

// Len is the number of primitives the document emits.
func (d *Document) Len() int {
	n := len(d.Underlay) + len(d.Polygons)
	if d.Background != "" {
		n++
	}
	return n
}

// WriteTo serializes the document.  It implements io.WriterTo.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	svg := NewSVG(w)
	svg.Start(d.Width, d.Height)
	if d.Background != "" {
		bounds := geom.Rect{Min: geom.Coord{X: 0, Y: 0}, Max: geom.Coord{X: d.Width, Y: d.Height}}
		svg.Rect(bounds, Attr("fill", d.Background))
	}
	for _, p := range d.Underlay {
		p.Draw(svg)
	}
	for _, p := range d.Polygons {
		p.Draw(svg)
	}
	svg.End()
	return svg.Written(), svg.Err()
}
