package shape

import "math"

// Intersection records where along a ray it crossed an Object's
// surface. U and V are the barycentric coordinates of the point within
// the triangle for Triangle and SmoothTriangle hits (only
// SmoothTriangle's normal reads them); every other variant leaves them
// at zero.
type Intersection struct {
	T      float64
	Object *Object
	U, V   float64
}

// NewIntersection creates an Intersection with u=v=0.
func NewIntersection(t float64, o *Object) Intersection {
	return Intersection{T: t, Object: o}
}

// NewIntersectionUV creates an Intersection carrying barycentric
// coordinates, for Triangle and SmoothTriangle hits.
func NewIntersectionUV(t float64, o *Object, u, v float64) Intersection {
	return Intersection{T: t, Object: o, U: u, V: v}
}

// Intersections is an ordered, ascending-by-t sequence of Intersection.
// NaN sorts after every finite value, which keeps it unreachable as
// "the hit" and bounds the blast radius of any NaN that leaks out of a
// degenerate intersection test.
type Intersections struct {
	items []Intersection
}

// NewIntersections returns a sorted Intersections buffer holding xs
// (empty when none are given).
func NewIntersections(xs ...Intersection) *Intersections {
	ix := &Intersections{}
	for _, x := range xs {
		ix.Push(x)
	}
	return ix
}

// Reset clears the buffer for reuse, avoiding a fresh allocation per ray.
func (ix *Intersections) Reset() {
	ix.items = ix.items[:0]
}

// Len returns the number of intersections.
func (ix *Intersections) Len() int {
	return len(ix.items)
}

// At returns the intersection at index i.
func (ix *Intersections) At(i int) Intersection {
	return ix.items[i]
}

// All returns the full ordered slice. Callers must not mutate it.
func (ix *Intersections) All() []Intersection {
	return ix.items
}

func lessT(a, b float64) bool {
	aNaN, bNaN := math.IsNaN(a), math.IsNaN(b)
	if aNaN && bNaN {
		return false
	}
	if aNaN {
		return false
	}
	if bNaN {
		return true
	}
	return a < b
}

// Push inserts x in its sorted position by ascending t.
func (ix *Intersections) Push(x Intersection) {
	i := len(ix.items)
	ix.items = append(ix.items, x)
	for i > 0 && lessT(x.T, ix.items[i-1].T) {
		ix.items[i] = ix.items[i-1]
		i--
	}
	ix.items[i] = x
}

// Hit returns the first intersection with t > 0, and whether one exists.
func (ix *Intersections) Hit() (Intersection, bool) {
	for _, x := range ix.items {
		if x.T > 0 {
			return x, true
		}
	}
	return Intersection{}, false
}

// HitIndex returns the index of the hit within All(), or -1 if there is none.
func (ix *Intersections) HitIndex() int {
	for i, x := range ix.items {
		if x.T > 0 {
			return i
		}
	}
	return -1
}
