package shape

import "github.com/jumballaya/raytracer/pkg/math3d"

// Plane is the infinite xz-plane at local y=0.
type Plane struct{}

// NewPlane creates an Object wrapping a Plane.
func NewPlane() *Object {
	return newObject(&Plane{})
}

func (p *Plane) Kind() Kind { return KindPlane }

func (p *Plane) LocalIntersect(r math3d.Ray, owner *Object, xs *Intersections) {
	if absF(r.Direction.Y) < math3d.Epsilon {
		return
	}
	t := -r.Origin.Y / r.Direction.Y
	xs.Push(NewIntersection(t, owner))
}

func (p *Plane) LocalNormalAt(_ math3d.Point, _ *Intersection) math3d.Vector {
	return math3d.V3(0, 1, 0)
}

func absF(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
