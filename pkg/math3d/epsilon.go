// Package math3d provides the affine geometry core for the ray tracer:
// points, vectors, 4x4 homogeneous matrices, and rays, unified under a
// single epsilon-tolerant equality convention.
package math3d

import "math"

// Epsilon is the absolute tolerance used for every geometric comparison
// in the package: point/vector equality, matrix equality, and the
// boundary tests in the shape intersection routines.
const Epsilon = 1.0e-5

// FloatEqual reports whether a and b are within Epsilon of each other.
func FloatEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}
