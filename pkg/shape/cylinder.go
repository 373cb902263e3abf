package shape

import (
	"math"

	"github.com/jumballaya/raytracer/pkg/math3d"
)

// Cylinder is a unit-radius tube around the local y-axis, open on the
// interval (Min, Max) unless Closed caps it with flat disks.
type Cylinder struct {
	Min, Max float64
	Closed   bool
}

// NewCylinder creates an Object wrapping a Cylinder truncated to
// (min, max) on the y-axis, optionally capped.
func NewCylinder(min, max float64, closed bool) *Object {
	return newObject(&Cylinder{Min: min, Max: max, Closed: closed})
}

func (c *Cylinder) Kind() Kind { return KindCylinder }

func (c *Cylinder) LocalIntersect(r math3d.Ray, owner *Object, xs *Intersections) {
	a := r.Direction.X*r.Direction.X + r.Direction.Z*r.Direction.Z

	if absF(a) >= math3d.Epsilon {
		b := 2*r.Origin.X*r.Direction.X + 2*r.Origin.Z*r.Direction.Z
		cc := r.Origin.X*r.Origin.X + r.Origin.Z*r.Origin.Z - 1

		disc := b*b - 4*a*cc
		if disc < 0 {
			return
		}

		sq := math.Sqrt(disc)
		t0 := (-b - sq) / (2 * a)
		t1 := (-b + sq) / (2 * a)
		if t0 > t1 {
			t0, t1 = t1, t0
		}

		y0 := r.Origin.Y + t0*r.Direction.Y
		if c.Min < y0 && y0 < c.Max {
			xs.Push(NewIntersection(t0, owner))
		}
		y1 := r.Origin.Y + t1*r.Direction.Y
		if c.Min < y1 && y1 < c.Max {
			xs.Push(NewIntersection(t1, owner))
		}
	}

	c.intersectCaps(r, owner, xs)
}

// checkCap reports whether the ray's xz intersection at parameter t
// lies within the disc of the given radius, for cap testing on both
// cylinder (radius 1) and cone (radius |y| of the cap).
func checkCap(r math3d.Ray, t, radius float64) bool {
	x := r.Origin.X + t*r.Direction.X
	z := r.Origin.Z + t*r.Direction.Z
	return (x*x + z*z) <= radius*radius
}

func (c *Cylinder) intersectCaps(r math3d.Ray, owner *Object, xs *Intersections) {
	if !c.Closed || absF(r.Direction.Y) < math3d.Epsilon {
		return
	}

	t := (c.Min - r.Origin.Y) / r.Direction.Y
	if checkCap(r, t, 1) {
		xs.Push(NewIntersection(t, owner))
	}

	t = (c.Max - r.Origin.Y) / r.Direction.Y
	if checkCap(r, t, 1) {
		xs.Push(NewIntersection(t, owner))
	}
}

func (c *Cylinder) LocalNormalAt(p math3d.Point, _ *Intersection) math3d.Vector {
	dist := p.X*p.X + p.Z*p.Z

	if dist < 1 && p.Y >= c.Max-math3d.Epsilon {
		return math3d.V3(0, 1, 0)
	}
	if dist < 1 && p.Y <= c.Min+math3d.Epsilon {
		return math3d.V3(0, -1, 0)
	}

	return math3d.V3(p.X, 0, p.Z)
}
