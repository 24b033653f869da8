// Package svgdoc writes flat vector documents made of filled polygons and
// stroked lines.
package svgdoc

import (
	"fmt"
	"io"
	"strings"

	"github.com/jbeda/geom"
)

////////////////////////////////////////////////////////////////////////////
// SVG serialization helper
//
// Coordinates are printed with three decimals so that two renders of the
// same scene are byte identical.

type SVG struct {
	writer io.Writer
	n      int64
	err    error
}

func NewSVG(w io.Writer) *SVG {
	return &SVG{writer: w}
}

// printf stops writing after the first error, which Err reports.
func (svg *SVG) printf(format string, a ...interface{}) {
	if svg.err != nil {
		return
	}
	n, err := fmt.Fprintf(svg.writer, format, a...)
	svg.n += int64(n)
	svg.err = err
}

// Err is the first write error, if any.
func (svg *SVG) Err() error { return svg.err }

// Written is the number of bytes written so far.
func (svg *SVG) Written() int64 { return svg.n }

// Attr formats a single name='value' attribute.
func Attr(name, value string) string {
	return name + "='" + escape(value) + "'"
}

var attrEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", "'", "&apos;", `"`, "&quot;")

func escape(s string) string { return attrEscaper.Replace(s) }

// extraparams passes name=value attributes through and wraps anything else
// in a style attribute.
func extraparams(s []string) string {
	ep := ""
	for i := 0; i < len(s); i++ {
		if strings.Index(s[i], "=") > 0 {
			ep += s[i] + " "
		} else if len(s[i]) > 0 {
			ep += Attr("style", s[i]) + " "
		}
	}
	return ep
}

func num(f float64) string {
	return fmt.Sprintf("%.3f", f)
}

func (svg *SVG) Start(width, height float64, s ...string) {
	svg.printf(`<?xml version="1.0"?>
<svg version="1.1"
     width="%s" height="%s" viewBox="0 0 %s %s"
     xmlns="http://www.w3.org/2000/svg" %s>
`, num(width), num(height), num(width), num(height), extraparams(s))
}

func (svg *SVG) End() {
	svg.printf("</svg>\n")
}

func (svg *SVG) Rect(r geom.Rect, s ...string) {
	svg.printf("<rect x='%s' y='%s' width='%s' height='%s' %s/>\n",
		num(r.Min.X), num(r.Min.Y), num(r.Width()), num(r.Height()), extraparams(s))
}

func (svg *SVG) Line(p1 geom.Coord, p2 geom.Coord, s ...string) {
	svg.printf("<line x1='%s' y1='%s' x2='%s' y2='%s' %s/>\n",
		num(p1.X), num(p1.Y), num(p2.X), num(p2.Y), extraparams(s))
}

func (svg *SVG) Polygon(points []geom.Coord, s ...string) {
	pts := make([]string, len(points))
	for i, p := range points {
		pts[i] = num(p.X) + "," + num(p.Y)
	}
	svg.printf("<polygon points='%s' %s/>\n", strings.Join(pts, " "), extraparams(s))
}
