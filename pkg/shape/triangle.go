package shape

import "github.com/jumballaya/raytracer/pkg/math3d"

// Triangle is a flat triangle with a precomputed edge pair and normal,
// cached at construction since they never change.
type Triangle struct {
	P1, P2, P3 math3d.Point
	E1, E2     math3d.Vector
	Normal     math3d.Vector
}

// NewTriangle creates an Object wrapping a flat Triangle.
func NewTriangle(p1, p2, p3 math3d.Point) *Object {
	e1 := p2.Sub(p1)
	e2 := p3.Sub(p1)
	t := &Triangle{
		P1: p1, P2: p2, P3: p3,
		E1: e1, E2: e2,
		Normal: e2.Cross(e1).Normalize(),
	}
	return newObject(t)
}

func (t *Triangle) Kind() Kind { return KindTriangle }

// mollerTrumbore intersects r against the triangle (p1,e1,e2) and
// reports (t, u, v, ok); ok is false on a miss.
func mollerTrumbore(r math3d.Ray, p1 math3d.Point, e1, e2 math3d.Vector) (t, u, v float64, ok bool) {
	dirCrossE2 := r.Direction.Cross(e2)
	det := e1.Dot(dirCrossE2)
	if absF(det) < math3d.Epsilon {
		return 0, 0, 0, false
	}

	f := 1.0 / det
	p1ToOrigin := r.Origin.Sub(p1)
	u = f * p1ToOrigin.Dot(dirCrossE2)
	if u < 0 || u > 1 {
		return 0, 0, 0, false
	}

	originCrossE1 := p1ToOrigin.Cross(e1)
	v = f * r.Direction.Dot(originCrossE1)
	if v < 0 || u+v > 1 {
		return 0, 0, 0, false
	}

	t = f * e2.Dot(originCrossE1)
	return t, u, v, true
}

func (t *Triangle) LocalIntersect(r math3d.Ray, owner *Object, xs *Intersections) {
	tt, u, v, ok := mollerTrumbore(r, t.P1, t.E1, t.E2)
	if !ok {
		return
	}
	xs.Push(NewIntersectionUV(tt, owner, u, v))
}

func (t *Triangle) LocalNormalAt(_ math3d.Point, _ *Intersection) math3d.Vector {
	return t.Normal
}
