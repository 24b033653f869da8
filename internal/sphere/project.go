package sphere

import (
	"github.com/jbeda/geom"
	"gonum.org/v1/gonum/spatial/r3"
)

// Projected is a visible face flattened to screen coordinates.
type Projected struct {
	geom.Triangle
	Face Face
}

// Projector is an orthographic camera looking along ViewDir.  Screen y grows
// downward, so world +Z maps to decreasing y.
type Projector struct {
	Center geom.Coord
}

// Point drops depth and moves v onto the screen around Center.
func (p Projector) Point(v r3.Vec) geom.Coord {
	return geom.Coord{X: p.Center.X + v.X, Y: p.Center.Y - v.Z}
}

// Project flattens each face, keeping the order of faces.
func (p Projector) Project(world []r3.Vec, faces []Face) []Projected {
	r := make([]Projected, len(faces))
	for i, f := range faces {
		r[i] = Projected{
			Triangle: geom.Triangle{
				A: p.Point(world[f.V[0]]),
				B: p.Point(world[f.V[1]]),
				C: p.Point(world[f.V[2]]),
			},
			Face: f,
		}
	}
	return r
}

// SignedArea is the shoelace area of the screen triangle.  Faces turned
// toward the viewer come out negative because screen y grows downward.
func (p *Projected) SignedArea() float64 {
	a, b, c := p.A, p.B, p.C
	return ((b.X-a.X)*(c.Y-a.Y) - (c.X-a.X)*(b.Y-a.Y)) / 2
}
