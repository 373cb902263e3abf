package shape

import "github.com/jumballaya/raytracer/pkg/math3d"

// SmoothTriangle is a Triangle with per-vertex normals, interpolated
// at the hit point via the intersection's barycentric (u, v).
type SmoothTriangle struct {
	P1, P2, P3 math3d.Point
	N1, N2, N3 math3d.Vector
	E1, E2     math3d.Vector
}

// NewSmoothTriangle creates an Object wrapping a SmoothTriangle.
func NewSmoothTriangle(p1, p2, p3 math3d.Point, n1, n2, n3 math3d.Vector) *Object {
	st := &SmoothTriangle{
		P1: p1, P2: p2, P3: p3,
		N1: n1, N2: n2, N3: n3,
		E1: p2.Sub(p1),
		E2: p3.Sub(p1),
	}
	return newObject(st)
}

func (t *SmoothTriangle) Kind() Kind { return KindSmoothTriangle }

func (t *SmoothTriangle) LocalIntersect(r math3d.Ray, owner *Object, xs *Intersections) {
	tt, u, v, ok := mollerTrumbore(r, t.P1, t.E1, t.E2)
	if !ok {
		return
	}
	xs.Push(NewIntersectionUV(tt, owner, u, v))
}

func (t *SmoothTriangle) LocalNormalAt(_ math3d.Point, hit *Intersection) math3d.Vector {
	n := t.N2.Scale(hit.U).
		Add(t.N3.Scale(hit.V)).
		Add(t.N1.Scale(1 - hit.U - hit.V))
	return n.Normalize()
}
