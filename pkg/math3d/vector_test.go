package math3d

import (
	"math"
	"testing"
)

func TestPointSubPointIsVector(t *testing.T) {
	p1 := P3(3, 2, 1)
	p2 := P3(5, 6, 7)
	got := p1.Sub(p2)
	want := V3(-2, -4, -6)
	if !got.Equal(want) {
		t.Errorf("p1-p2 = %v, want %v", got, want)
	}
}

func TestPointAddVectorIsPoint(t *testing.T) {
	p := P3(3, 2, 1)
	v := V3(5, 6, 7)
	got := p.Add(v)
	want := P3(8, 8, 8)
	if !got.Equal(want) {
		t.Errorf("p+v = %v, want %v", got, want)
	}
}

func TestNormalizeUnitLength(t *testing.T) {
	v := V3(1, 2, 3)
	n := v.Normalize()
	m := n.Magnitude()
	if !FloatEqual(m, 1) {
		t.Errorf("|normalize(v)| = %v, want 1", m)
	}
}

func TestReflectAt45Degrees(t *testing.T) {
	v := V3(1, -1, 0)
	n := V3(0, 1, 0)
	got := v.Reflect(n)
	want := V3(1, 1, 0)
	if !got.Equal(want) {
		t.Errorf("reflect = %v, want %v", got, want)
	}
}

func TestReflectOffSlantedSurface(t *testing.T) {
	v := V3(0, -1, 0)
	n := V3(math.Sqrt2/2, math.Sqrt2/2, 0)
	got := v.Reflect(n)
	want := V3(1, 0, 0)
	if !got.Equal(want) {
		t.Errorf("reflect = %v, want %v", got, want)
	}
}

func TestCrossProductAnticommutes(t *testing.T) {
	a := V3(1, 2, 3)
	b := V3(2, 3, 4)
	ab := a.Cross(b)
	ba := b.Cross(a)
	if !ab.Equal(ba.Negate()) {
		t.Errorf("a x b = %v, -(b x a) = %v", ab, ba.Negate())
	}
}
