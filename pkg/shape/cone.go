package shape

import (
	"math"

	"github.com/jumballaya/raytracer/pkg/math3d"
)

// Cone is a double-napped cone around the local y-axis, truncated to
// (Min, Max) and optionally capped like Cylinder.
type Cone struct {
	Min, Max float64
	Closed   bool
}

// NewCone creates an Object wrapping a Cone truncated to (min, max) on
// the y-axis, optionally capped.
func NewCone(min, max float64, closed bool) *Object {
	return newObject(&Cone{Min: min, Max: max, Closed: closed})
}

func (c *Cone) Kind() Kind { return KindCone }

func (c *Cone) LocalIntersect(r math3d.Ray, owner *Object, xs *Intersections) {
	a := r.Direction.X*r.Direction.X - r.Direction.Y*r.Direction.Y + r.Direction.Z*r.Direction.Z
	b := 2*r.Origin.X*r.Direction.X - 2*r.Origin.Y*r.Direction.Y + 2*r.Origin.Z*r.Direction.Z
	cc := r.Origin.X*r.Origin.X - r.Origin.Y*r.Origin.Y + r.Origin.Z*r.Origin.Z

	switch {
	case absF(a) < math3d.Epsilon && absF(b) < math3d.Epsilon:
		// Ray is parallel to both cone halves and misses the surface entirely.
	case absF(a) < math3d.Epsilon:
		t := -cc / (2 * b)
		c.pushIfInBand(r, owner, xs, t)
	default:
		disc := b*b - 4*a*cc
		if disc < 0 {
			break
		}
		sq := math.Sqrt(disc)
		t0 := (-b - sq) / (2 * a)
		t1 := (-b + sq) / (2 * a)
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		c.pushIfInBand(r, owner, xs, t0)
		c.pushIfInBand(r, owner, xs, t1)
	}

	c.intersectCaps(r, owner, xs)
}

func (c *Cone) pushIfInBand(r math3d.Ray, owner *Object, xs *Intersections, t float64) {
	y := r.Origin.Y + t*r.Direction.Y
	if c.Min < y && y < c.Max {
		xs.Push(NewIntersection(t, owner))
	}
}

func (c *Cone) intersectCaps(r math3d.Ray, owner *Object, xs *Intersections) {
	if !c.Closed || absF(r.Direction.Y) < math3d.Epsilon {
		return
	}

	t := (c.Min - r.Origin.Y) / r.Direction.Y
	if checkCap(r, t, absF(c.Min)) {
		xs.Push(NewIntersection(t, owner))
	}

	t = (c.Max - r.Origin.Y) / r.Direction.Y
	if checkCap(r, t, absF(c.Max)) {
		xs.Push(NewIntersection(t, owner))
	}
}

func (c *Cone) LocalNormalAt(p math3d.Point, _ *Intersection) math3d.Vector {
	dist := p.X*p.X + p.Z*p.Z

	if dist < 1 && p.Y >= c.Max-math3d.Epsilon {
		return math3d.V3(0, 1, 0)
	}
	if dist < 1 && p.Y <= c.Min+math3d.Epsilon {
		return math3d.V3(0, -1, 0)
	}

	y := math.Sqrt(dist)
	if p.Y > 0 {
		y = -y
	}
	return math3d.V3(p.X, y, p.Z)
}
