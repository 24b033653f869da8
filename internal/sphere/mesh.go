// Package sphere builds, orients, culls and projects the faceted checkered
// ball.
//
// The pipeline is NewMesh -> Transform.ApplyAll -> Visible -> Projector.Project.
// Every stage returns fresh values; nothing is mutated after construction.
package sphere

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// ErrTessellation is returned by NewMesh for band or gore counts that can't
// close a sphere.
var ErrTessellation = errors.New("invalid tessellation")

const (
	MinBands = 2
	MinGores = 3
)

// Checker is the two-color value of a face.
type Checker uint8

const (
	Red Checker = iota
	White
)

func (c Checker) String() string {
	if c == Red {
		return "red"
	}
	return "white"
}

// CheckerAt is red when band+gore is even and white otherwise.
func CheckerAt(band, gore int) Checker {
	if (band+gore)%2 == 0 {
		return Red
	}
	return White
}

// Vertex is an object space point tagged with the ring (latitude) and
// longitude index that generated it.  Poles carry Lon 0.
type Vertex struct {
	Pos r3.Vec
	Lat int
	Lon int
}

// Face is a triangle referencing three vertices by index.  V is wound
// counterclockwise as seen from outside the sphere.
type Face struct {
	V     [3]int
	Band  int
	Gore  int
	Color Checker
}

// Mesh is a lat/long tessellated sphere.
type Mesh struct {
	Bands    int
	Gores    int
	Radius   float64
	Vertices []Vertex
	Faces    []Face
}

// VertexCount is the number of vertices of a mesh with single, shared poles.
func VertexCount(bands, gores int) int {
	return (bands-1)*gores + 2
}

// FaceCount is the number of triangles in a mesh.  Polar cells are fans
// contributing one triangle each, every other cell contributes two.
func FaceCount(bands, gores int) int {
	return 2 * gores * (bands - 1)
}

// NewMesh tessellates a sphere of the given radius into bands latitude
// strips (pole to pole) and gores longitude wedges.
func NewMesh(bands, gores int, radius float64) (*Mesh, error) {
	if bands < MinBands {
		return nil, fmt.Errorf("%w: bands = %d, need at least %d", ErrTessellation, bands, MinBands)
	}
	if gores < MinGores {
		return nil, fmt.Errorf("%w: gores = %d, need at least %d", ErrTessellation, gores, MinGores)
	}
	if !(radius > 0) {
		return nil, fmt.Errorf("%w: radius = %v, must be positive", ErrTessellation, radius)
	}

	m := &Mesh{
		Bands:    bands,
		Gores:    gores,
		Radius:   radius,
		Vertices: make([]Vertex, 0, VertexCount(bands, gores)),
		Faces:    make([]Face, 0, FaceCount(bands, gores)),
	}

	m.Vertices = append(m.Vertices, Vertex{Pos: r3.Vec{Z: radius}, Lat: 0})
	for k := 1; k < bands; k++ {
		lat := degToRads(90 - float64(k)*180/float64(bands))
		for j := 0; j < gores; j++ {
			lon := degToRads(float64(j) * 360 / float64(gores))
			m.Vertices = append(m.Vertices, Vertex{
				Pos: sphToCart(lat, lon, radius),
				Lat: k,
				Lon: j,
			})
		}
	}
	m.Vertices = append(m.Vertices, Vertex{Pos: r3.Vec{Z: -radius}, Lat: bands})

	for b := 0; b < bands; b++ {
		for g := 0; g < gores; g++ {
			nw := m.index(b, g)
			ne := m.index(b, g+1)
			sw := m.index(b+1, g)
			se := m.index(b+1, g+1)
			color := CheckerAt(b, g)

			// In the south cap sw and se are both the pole.
			if b != bands-1 {
				m.Faces = append(m.Faces, Face{V: [3]int{sw, se, ne}, Band: b, Gore: g, Color: color})
			}
			// In the north cap nw and ne are both the pole.
			if b != 0 {
				m.Faces = append(m.Faces, Face{V: [3]int{sw, ne, nw}, Band: b, Gore: g, Color: color})
			}
		}
	}
	return m, nil
}

// index maps a (ring, longitude) pair to its slot in Vertices.  Longitude
// wraps, so gore+1 of the last gore is gore 0.
func (m *Mesh) index(ring, lon int) int {
	switch ring {
	case 0:
		return 0
	case m.Bands:
		return len(m.Vertices) - 1
	}
	return 1 + (ring-1)*m.Gores + lon%m.Gores
}

// Positions returns the object space positions in vertex order.
func (m *Mesh) Positions() []r3.Vec {
	ps := make([]r3.Vec, len(m.Vertices))
	for i, v := range m.Vertices {
		ps[i] = v.Pos
	}
	return ps
}

func sphToCart(lat, lon, r float64) r3.Vec {
	cl := math.Cos(lat)
	return r3.Vec{
		X: r * cl * math.Cos(lon),
		Y: r * cl * math.Sin(lon),
		Z: r * math.Sin(lat),
	}
}
