package math3d

// Point is a location in 3-space; its homogeneous w-component is
// implicitly 1. Point arithmetic is kept distinct from Vector
// arithmetic so that point-point yields a Vector and point+vector
// yields a Point, matching the algebra a transform matrix expects.
type Point struct {
	X, Y, Z float64
}

// P3 creates a new Point.
func P3(x, y, z float64) Point {
	return Point{x, y, z}
}

// Origin returns the Point at (0, 0, 0).
func Origin() Point {
	return Point{}
}

// Add returns the point obtained by displacing p by v.
func (p Point) Add(v Vector) Point {
	return Point{p.X + v.X, p.Y + v.Y, p.Z + v.Z}
}

// Sub returns the vector from q to p (p - q).
func (p Point) Sub(q Point) Vector {
	return Vector{p.X - q.X, p.Y - q.Y, p.Z - q.Z}
}

// SubVector returns the point obtained by displacing p by -v.
func (p Point) SubVector(v Vector) Point {
	return Point{p.X - v.X, p.Y - v.Y, p.Z - v.Z}
}

// Equal reports whether p and q are equal within Epsilon.
func (p Point) Equal(q Point) bool {
	return FloatEqual(p.X, q.X) && FloatEqual(p.Y, q.Y) && FloatEqual(p.Z, q.Z)
}
