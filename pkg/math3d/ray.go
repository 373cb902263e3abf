package math3d

// Ray is a half-line cast from Origin along Direction.
type Ray struct {
	Origin    Point
	Direction Vector
}

// NewRay creates a Ray.
func NewRay(origin Point, direction Vector) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// PositionAt returns the point origin + direction*t.
func (r Ray) PositionAt(t float64) Point {
	return r.Origin.Add(r.Direction.Scale(t))
}

// Transform returns the ray obtained by transforming origin and
// direction by m (origin as a point, direction as a vector).
func (r Ray) Transform(m Matrix4) Ray {
	return Ray{
		Origin:    m.MulPoint(r.Origin),
		Direction: m.MulVector(r.Direction),
	}
}
