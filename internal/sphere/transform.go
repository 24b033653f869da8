package sphere

import "gonum.org/v1/gonum/spatial/r3"

// Transform is the composed orientation Tilt·Spin.  It is immutable and may
// be applied to any number of vertices.
type Transform struct {
	m *r3.Mat
}

// NewTransform spins the ball about its own polar axis first and then tilts
// it about the view axis.  Doing it the other way round would spin about the
// already tilted axis.
func NewTransform(spinDeg, tiltDeg float64) Transform {
	return Transform{m: matMul(rotY(tiltDeg), rotZ(spinDeg))}
}

// Apply maps one object space point into world space.
func (t Transform) Apply(v r3.Vec) r3.Vec {
	return t.m.MulVec(v)
}

// ApplyAll returns the world space positions of vs, in the same order.
func (t Transform) ApplyAll(vs []Vertex) []r3.Vec {
	world := make([]r3.Vec, len(vs))
	for i, v := range vs {
		world[i] = t.Apply(v.Pos)
	}
	return world
}
