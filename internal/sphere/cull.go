package sphere

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// ErrDegenerateFace means a face has repeated vertices or zero area.  A
// correctly built mesh never has one.
var ErrDegenerateFace = errors.New("degenerate face")

// FaceNormal is the outward normal of f in the given vertex positions,
// first edge × second edge in winding order.
func FaceNormal(pos []r3.Vec, f Face) r3.Vec {
	return triangleNormal(pos[f.V[0]], pos[f.V[1]], pos[f.V[2]])
}

// Visible returns the faces of a closed convex mesh that face the camera,
// in input order.  A face survives only when its normal has a strictly
// negative component along ViewDir; edge-on faces are dropped.
func Visible(world []r3.Vec, faces []Face) ([]Face, error) {
	r := make([]Face, 0, len(faces)/2+1)
	for i, f := range faces {
		if err := checkFace(world, f); err != nil {
			return nil, fmt.Errorf("face %d (band %d, gore %d): %w", i, f.Band, f.Gore, err)
		}
		if r3.Dot(FaceNormal(world, f), ViewDir) < 0 {
			r = append(r, f)
		}
	}
	return r, nil
}

func checkFace(pos []r3.Vec, f Face) error {
	a, b, c := f.V[0], f.V[1], f.V[2]
	if a == b || b == c || a == c {
		return fmt.Errorf("%w: repeated vertex index in %v", ErrDegenerateFace, f.V)
	}
	for _, v := range f.V {
		if v < 0 || v >= len(pos) {
			return fmt.Errorf("%w: vertex index %d out of range", ErrDegenerateFace, v)
		}
	}
	if pos[a] == pos[b] || pos[b] == pos[c] || pos[a] == pos[c] {
		return fmt.Errorf("%w: coincident vertices in %v", ErrDegenerateFace, f.V)
	}
	if r3.Norm(FaceNormal(pos, f)) == 0 {
		return fmt.Errorf("%w: zero area", ErrDegenerateFace)
	}
	return nil
}
