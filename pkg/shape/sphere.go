package shape

import (
	"math"

	"github.com/jumballaya/raytracer/pkg/math3d"
)

// Sphere is the unit sphere centered at the local-space origin.
type Sphere struct{}

// NewSphere creates an Object wrapping a unit Sphere.
func NewSphere() *Object {
	return newObject(&Sphere{})
}

func (s *Sphere) Kind() Kind { return KindSphere }

func (s *Sphere) LocalIntersect(r math3d.Ray, owner *Object, xs *Intersections) {
	sphereToRay := r.Origin.Sub(math3d.Origin())

	a := r.Direction.Dot(r.Direction)
	b := 2 * r.Direction.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - 1

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return
	}

	sqrtDisc := math.Sqrt(discriminant)
	t1 := (-b - sqrtDisc) / (2 * a)
	t2 := (-b + sqrtDisc) / (2 * a)

	xs.Push(NewIntersection(t1, owner))
	xs.Push(NewIntersection(t2, owner))
}

func (s *Sphere) LocalNormalAt(p math3d.Point, _ *Intersection) math3d.Vector {
	return p.Sub(math3d.Origin())
}
