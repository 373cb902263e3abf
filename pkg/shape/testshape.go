package shape

import "github.com/jumballaya/raytracer/pkg/math3d"

// TestShape records the last ray it was asked to intersect and never
// produces an intersection. It exists only so tests can verify that
// Object.Intersect correctly maps a world ray into local space before
// handing it to the shape.
type TestShape struct {
	LastRay math3d.Ray
}

// NewTestShape creates an Object wrapping a TestShape.
func NewTestShape() *Object {
	return newObject(&TestShape{})
}

func (t *TestShape) Kind() Kind { return KindTestShape }

func (t *TestShape) LocalIntersect(r math3d.Ray, _ *Object, _ *Intersections) {
	t.LastRay = r
}

func (t *TestShape) LocalNormalAt(p math3d.Point, _ *Intersection) math3d.Vector {
	return math3d.V3(p.X, p.Y, p.Z)
}
