package sphere

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

////////////////////////////////////////////////////////////////////////////
// World frame
//
// Right handed.  +X points screen-right, +Y points into the screen and +Z
// points screen-up.  The camera sits in front of the screen looking along +Y.

var (
	AxisX = r3.Vec{X: 1}
	AxisY = r3.Vec{Y: 1}
	AxisZ = r3.Vec{Z: 1}

	// ViewDir is the direction the orthographic camera looks in.
	ViewDir = AxisY
)

func degToRads(d float64) float64 {
	return d * math.Pi / 180.0
}

// rotZ is the right-handed rotation by deg degrees about +Z, the polar axis.
func rotZ(deg float64) *r3.Mat {
	s, c := math.Sincos(degToRads(deg))
	return r3.NewMat([]float64{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	})
}

// rotY is the right-handed rotation by deg degrees about +Y.  Positive
// angles carry +Z toward +X.
func rotY(deg float64) *r3.Mat {
	s, c := math.Sincos(degToRads(deg))
	return r3.NewMat([]float64{
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	})
}

// matMul returns a·b.
func matMul(a, b *r3.Mat) *r3.Mat {
	vals := make([]float64, 9)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var sum float64
			for k := 0; k < 3; k++ {
				sum += a.At(i, k) * b.At(k, j)
			}
			vals[i*3+j] = sum
		}
	}
	return r3.NewMat(vals)
}

// triangleNormal is (b-a)×(c-a).  It is not normalized; its length is twice
// the triangle's area.
func triangleNormal(a, b, c r3.Vec) r3.Vec {
	return r3.Cross(r3.Sub(b, a), r3.Sub(c, a))
}
