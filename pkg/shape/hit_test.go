package shape

import (
	"math"
	"testing"

	"github.com/jumballaya/raytracer/pkg/material"
	"github.com/jumballaya/raytracer/pkg/math3d"
)

func glassSphere(index float64) *Object {
	return NewSphere().WithMaterial(
		material.Default().WithTransparency(1).WithRefractiveIndex(index),
	)
}

func TestRefractiveIndexStacking(t *testing.T) {
	a := glassSphere(1.5).Scale(2, 2, 2)
	b := glassSphere(2.0).Translate(0, 0, -0.25)
	c := glassSphere(2.5).Translate(0, 0, 0.25)

	r := math3d.NewRay(math3d.P3(0, 0, -4), math3d.V3(0, 0, 1))
	xs := NewIntersections(
		NewIntersection(2, a),
		NewIntersection(2.75, b),
		NewIntersection(3.25, c),
		NewIntersection(4.75, b),
		NewIntersection(5.25, c),
		NewIntersection(6, a),
	)

	want := [][2]float64{
		{1.0, 1.5},
		{1.5, 2.0},
		{2.0, 2.5},
		{2.5, 2.5},
		{2.5, 1.5},
		{1.5, 1.0},
	}

	for i, w := range want {
		comp := PrepareComputations(xs, i, r)
		if !math3d.FloatEqual(comp.N1, w[0]) || !math3d.FloatEqual(comp.N2, w[1]) {
			t.Errorf("index %d: got n1=%v n2=%v, want n1=%v n2=%v", i, comp.N1, comp.N2, w[0], w[1])
		}
	}
}

func TestSchlickAtPerpendicularViewing(t *testing.T) {
	s := glassSphere(1.5)
	r := math3d.NewRay(math3d.P3(0, 0, 0), math3d.V3(0, 1, 0))
	xs := NewIntersections(
		NewIntersection(-1, s),
		NewIntersection(1, s),
	)
	comp := PrepareComputations(xs, 1, r)
	reflectance := comp.Schlick()
	if !math3d.FloatEqual(reflectance, 0.04) {
		t.Errorf("schlick = %v, want 0.04", reflectance)
	}
}

func TestSchlickUnderTotalInternalReflection(t *testing.T) {
	s := glassSphere(material.RefractiveGlass)
	r := math3d.NewRay(math3d.P3(0, 0, math.Sqrt(2)/2), math3d.V3(0, 1, 0))
	xs := NewIntersections(
		NewIntersection(-math.Sqrt(2)/2, s),
		NewIntersection(math.Sqrt(2)/2, s),
	)
	comp := PrepareComputations(xs, 1, r)
	reflectance := comp.Schlick()
	if reflectance != 1.0 {
		t.Errorf("schlick = %v, want exactly 1.0", reflectance)
	}
}

func TestPrepareComputationsOverPointAndUnderPoint(t *testing.T) {
	s := glassSphere(material.RefractiveGlass).Translate(0, 0, 1)
	r := math3d.NewRay(math3d.P3(0, 0, -5), math3d.V3(0, 0, 1))
	xs := NewIntersections(NewIntersection(5, s))

	comp := PrepareComputations(xs, 0, r)
	if comp.OverPoint.Z >= -math3d.Epsilon/2 {
		t.Errorf("over_point.z = %v, want < -epsilon/2", comp.OverPoint.Z)
	}
	if comp.UnderPoint.Z <= math3d.Epsilon/2 {
		t.Errorf("under_point.z = %v, want > epsilon/2", comp.UnderPoint.Z)
	}
}

func TestPrepareComputationsFlipsNormalWhenInside(t *testing.T) {
	s := NewSphere()
	r := math3d.NewRay(math3d.P3(0, 0, 0), math3d.V3(0, 0, 1))
	xs := NewIntersections(NewIntersection(1, s))

	comp := PrepareComputations(xs, 0, r)
	if !comp.Inside {
		t.Errorf("expected Inside=true")
	}
	if !comp.Normal.Equal(math3d.V3(0, 0, -1)) {
		t.Errorf("normal = %v, want (0,0,-1)", comp.Normal)
	}
}
