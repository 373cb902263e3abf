package shape

import (
	"math"

	"github.com/jumballaya/raytracer/pkg/math3d"
)

// Cube is the axis-aligned box spanning [-1,1] on every axis.
type Cube struct{}

// NewCube creates an Object wrapping a Cube.
func NewCube() *Object {
	return newObject(&Cube{})
}

func (c *Cube) Kind() Kind { return KindCube }

func checkAxis(origin, direction float64) (tmin, tmax float64) {
	tminNumerator := -1 - origin
	tmaxNumerator := 1 - origin

	if absF(direction) >= math3d.Epsilon {
		tmin = tminNumerator / direction
		tmax = tmaxNumerator / direction
	} else {
		tmin = tminNumerator * math.Inf(1)
		tmax = tmaxNumerator * math.Inf(1)
	}

	if tmin > tmax {
		tmin, tmax = tmax, tmin
	}
	return tmin, tmax
}

func (c *Cube) LocalIntersect(r math3d.Ray, owner *Object, xs *Intersections) {
	xtmin, xtmax := checkAxis(r.Origin.X, r.Direction.X)
	ytmin, ytmax := checkAxis(r.Origin.Y, r.Direction.Y)
	ztmin, ztmax := checkAxis(r.Origin.Z, r.Direction.Z)

	tmin := math.Max(xtmin, math.Max(ytmin, ztmin))
	tmax := math.Min(xtmax, math.Min(ytmax, ztmax))

	if tmin > tmax || tmax < 0 {
		return
	}

	xs.Push(NewIntersection(tmin, owner))
	xs.Push(NewIntersection(tmax, owner))
}

func (c *Cube) LocalNormalAt(p math3d.Point, _ *Intersection) math3d.Vector {
	maxc := math.Max(absF(p.X), math.Max(absF(p.Y), absF(p.Z)))

	switch maxc {
	case absF(p.X):
		return math3d.V3(p.X, 0, 0)
	case absF(p.Y):
		return math3d.V3(0, p.Y, 0)
	default:
		return math3d.V3(0, 0, p.Z)
	}
}
