package shape

import (
	"math"
	"testing"

	"github.com/jumballaya/raytracer/pkg/math3d"
)

func newCylinder(min, max float64, closed bool) *Object {
	return newObject(&Cylinder{Min: min, Max: max, Closed: closed})
}

func newCone(min, max float64, closed bool) *Object {
	return newObject(&Cone{Min: min, Max: max, Closed: closed})
}

func TestCylinderIntersectMisses(t *testing.T) {
	cyl := newCylinder(math.Inf(-1), math.Inf(1), false)
	cases := []struct {
		origin    math3d.Point
		direction math3d.Vector
	}{
		{math3d.P3(1, 0, 0), math3d.V3(0, 1, 0)},
		{math3d.P3(0, 0, 0), math3d.V3(0, 1, 0)},
		{math3d.P3(0, 0, -5), math3d.V3(1, 1, 1)},
	}
	for _, c := range cases {
		r := math3d.NewRay(c.origin, c.direction.Normalize())
		if xs := cyl.Intersect(r); xs.Len() != 0 {
			t.Errorf("ray %v,%v: got %d intersections, want 0", c.origin, c.direction, xs.Len())
		}
	}
}

func TestCylinderIntersectHitsWall(t *testing.T) {
	cyl := newCylinder(math.Inf(-1), math.Inf(1), false)
	cases := []struct {
		origin, direction math3d.Point
		t0, t1             float64
	}{
		{math3d.P3(1, 0, -5), math3d.P3(0, 0, 1), 5, 5},
		{math3d.P3(0, 0, -5), math3d.P3(0, 0, 1), 4, 6},
		{math3d.P3(0.5, 0, -5), math3d.P3(0.1, 1, 1), 6.80798, 7.08872},
	}
	for _, c := range cases {
		dir := math3d.V3(c.direction.X, c.direction.Y, c.direction.Z).Normalize()
		r := math3d.NewRay(c.origin, dir)
		xs := cyl.Intersect(r)
		if xs.Len() != 2 {
			t.Fatalf("ray from %v: got %d intersections, want 2", c.origin, xs.Len())
		}
		if !math3d.FloatEqual(xs.At(0).T, c.t0) || !math3d.FloatEqual(xs.At(1).T, c.t1) {
			t.Errorf("ray from %v: got t=(%v,%v), want (%v,%v)", c.origin, xs.At(0).T, xs.At(1).T, c.t0, c.t1)
		}
	}
}

func TestCylinderTruncatedIntersectCount(t *testing.T) {
	cyl := newCylinder(1, 2, false)
	cases := []struct {
		origin, direction math3d.Point
		count              int
	}{
		{math3d.P3(0, 1.5, 0), math3d.P3(0.1, 1, 0), 0},
		{math3d.P3(0, 3, -5), math3d.P3(0, 0, 1), 0},
		{math3d.P3(0, 0, -5), math3d.P3(0, 0, 1), 0},
		{math3d.P3(0, 2, -5), math3d.P3(0, 0, 1), 0},
		{math3d.P3(0, 1, -5), math3d.P3(0, 0, 1), 0},
		{math3d.P3(0, 1.5, -2), math3d.P3(0, 0, 1), 2},
	}
	for _, c := range cases {
		dir := math3d.V3(c.direction.X, c.direction.Y, c.direction.Z).Normalize()
		r := math3d.NewRay(c.origin, dir)
		xs := cyl.Intersect(r)
		if xs.Len() != c.count {
			t.Errorf("ray from %v: got %d intersections, want %d", c.origin, xs.Len(), c.count)
		}
	}
}

func TestCylinderClosedIntersectsCaps(t *testing.T) {
	cyl := newCylinder(1, 2, true)
	cases := []struct {
		origin, direction math3d.Point
		count              int
	}{
		{math3d.P3(0, 3, 0), math3d.P3(0, -1, 0), 2},
		{math3d.P3(0, 3, -2), math3d.P3(0, -1, 2), 2},
		{math3d.P3(0, 4, -2), math3d.P3(0, -1, 1), 2},
		{math3d.P3(0, 0, -2), math3d.P3(0, 1, 2), 2},
		{math3d.P3(0, -1, -2), math3d.P3(0, 1, 1), 2},
	}
	for _, c := range cases {
		dir := math3d.V3(c.direction.X, c.direction.Y, c.direction.Z).Normalize()
		r := math3d.NewRay(c.origin, dir)
		xs := cyl.Intersect(r)
		if xs.Len() != c.count {
			t.Errorf("ray from %v: got %d intersections, want %d", c.origin, xs.Len(), c.count)
		}
	}
}

func TestConeIntersectWall(t *testing.T) {
	cone := newCone(math.Inf(-1), math.Inf(1), false)
	cases := []struct {
		origin, direction math3d.Point
		t0, t1             float64
	}{
		{math3d.P3(0, 0, -5), math3d.P3(0, 0, 1), 5, 5},
		{math3d.P3(0, 0, -5), math3d.P3(1, 1, 1), 8.66025, 8.66025},
		{math3d.P3(1, 1, -5), math3d.P3(-0.5, -1, 1), 4.55006, 49.44994},
	}
	for _, c := range cases {
		dir := math3d.V3(c.direction.X, c.direction.Y, c.direction.Z).Normalize()
		r := math3d.NewRay(c.origin, dir)
		xs := cone.Intersect(r)
		if xs.Len() != 2 {
			t.Fatalf("ray from %v: got %d intersections, want 2", c.origin, xs.Len())
		}
		if !math3d.FloatEqual(xs.At(0).T, c.t0) || !math3d.FloatEqual(xs.At(1).T, c.t1) {
			t.Errorf("ray from %v: got t=(%v,%v), want (%v,%v)", c.origin, xs.At(0).T, xs.At(1).T, c.t0, c.t1)
		}
	}
}

func TestConeIntersectParallelToHalf(t *testing.T) {
	cone := newCone(math.Inf(-1), math.Inf(1), false)
	r := math3d.NewRay(math3d.P3(0, 0, -1), math3d.V3(0, 1, 1).Normalize())
	xs := cone.Intersect(r)
	if xs.Len() != 1 || !math3d.FloatEqual(xs.At(0).T, 0.35355) {
		t.Errorf("got %v, want single hit at t=0.35355", xs.All())
	}
}

func TestConeClosedIntersectsCaps(t *testing.T) {
	cone := newCone(-0.5, 0.5, true)
	cases := []struct {
		origin, direction math3d.Point
		count              int
	}{
		{math3d.P3(0, 0, -5), math3d.P3(0, 1, 0), 0},
		{math3d.P3(0, 0, -0.25), math3d.P3(0, 1, 1), 2},
		{math3d.P3(0, 0, -0.25), math3d.P3(0, 1, 0), 4},
	}
	for _, c := range cases {
		dir := math3d.V3(c.direction.X, c.direction.Y, c.direction.Z).Normalize()
		r := math3d.NewRay(c.origin, dir)
		xs := cone.Intersect(r)
		if xs.Len() != c.count {
			t.Errorf("ray from %v: got %d intersections, want %d", c.origin, xs.Len(), c.count)
		}
	}
}
