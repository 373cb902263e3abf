package math3d

import (
	"math"
	"testing"
)

func TestMatrixMulIdentity(t *testing.T) {
	m := Translate(1, 2, 3).Mul(RotateX(0.5))
	got := m.Mul(Identity4())
	if !got.Equal(m) {
		t.Errorf("m*I = %v, want %v", got, m)
	}
}

func TestInverseUndoesMultiplication(t *testing.T) {
	m := Translate(5, -3, 2).Mul(RotateY(0.7)).Mul(Scale(2, 3, 4))
	p := P3(1, 2, 3)

	moved := m.MulPoint(p)
	back := m.Inverse().MulPoint(moved)

	if !back.Equal(p) {
		t.Errorf("(M*M^-1)*P = %v, want %v", back, p)
	}
}

func TestInversePanicsOnSingular(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected Inverse to panic on a singular matrix")
		}
	}()
	singular := Matrix4{
		{0, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
	singular.Inverse()
}

func TestRotateXMovesYTowardZ(t *testing.T) {
	p := P3(0, 1, 0)
	got := RotateX(math.Pi / 2).MulPoint(p)
	want := P3(0, 0, 1)
	if !got.Equal(want) {
		t.Errorf("RotateX(pi/2)*(0,1,0) = %v, want %v", got, want)
	}
}

func TestShearMovesXInProportionToY(t *testing.T) {
	p := P3(2, 3, 4)
	got := Shear(1, 0, 0, 0, 0, 0).MulPoint(p)
	want := P3(5, 3, 4)
	if !got.Equal(want) {
		t.Errorf("shear(xy=1)*(2,3,4) = %v, want %v", got, want)
	}
}

func TestViewTransformLooksDownNegativeZ(t *testing.T) {
	from := P3(0, 0, 0)
	to := P3(0, 0, -1)
	up := V3(0, 1, 0)

	got := View(from, to, up)
	if !got.Equal(Identity4()) {
		t.Errorf("View looking down -z from origin = %v, want identity", got)
	}
}

func TestViewTransformArbitrary(t *testing.T) {
	from := P3(1, 3, 2)
	to := P3(4, -2, 8)
	up := V3(1, 1, 0)

	got := View(from, to, up)
	want := Matrix4{
		{-0.50709, 0.50709, 0.67612, -2.36643},
		{0.76772, 0.60609, 0.12122, -2.82843},
		{-0.35857, 0.59761, -0.71714, 0.00000},
		{0.00000, 0.00000, 0.00000, 1.00000},
	}
	if !got.Equal(want) {
		t.Errorf("View(from,to,up) = %v, want %v", got, want)
	}
}

func TestMulVectorIgnoresTranslation(t *testing.T) {
	m := Translate(5, 6, 7)
	v := V3(1, 2, 3)
	got := m.MulVector(v)
	if !got.Equal(v) {
		t.Errorf("translation applied to a vector: got %v, want %v", got, v)
	}
}
