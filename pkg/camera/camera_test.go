package camera

import (
	"math"
	"testing"

	"github.com/jumballaya/raytracer/pkg/math3d"
)

func TestPixelSizeForHorizontalCanvas(t *testing.T) {
	c := New(200, 125, math.Pi/2)
	if !math3d.FloatEqual(c.pixelSize, 0.01) {
		t.Errorf("pixel_size = %v, want 0.01", c.pixelSize)
	}
}

func TestPixelSizeForVerticalCanvas(t *testing.T) {
	c := New(125, 200, math.Pi/2)
	if !math3d.FloatEqual(c.pixelSize, 0.01) {
		t.Errorf("pixel_size = %v, want 0.01", c.pixelSize)
	}
}

func TestRayThroughCenterOfCanvas(t *testing.T) {
	c := New(201, 101, math.Pi/2)
	r := c.RayForPixel(100, 50)

	if !r.Origin.Equal(math3d.Origin()) {
		t.Errorf("origin = %v, want (0,0,0)", r.Origin)
	}
	if !r.Direction.Equal(math3d.V3(0, 0, -1)) {
		t.Errorf("direction = %v, want (0,0,-1)", r.Direction)
	}
}

func TestRayThroughCornerOfCanvas(t *testing.T) {
	c := New(201, 101, math.Pi/2)
	r := c.RayForPixel(0, 0)

	if !r.Origin.Equal(math3d.Origin()) {
		t.Errorf("origin = %v, want (0,0,0)", r.Origin)
	}
	want := math3d.V3(0.66519, 0.33259, -0.66851)
	if !r.Direction.Equal(want) {
		t.Errorf("direction = %v, want %v", r.Direction, want)
	}
}

func TestRayWhenCameraIsTransformed(t *testing.T) {
	c := New(201, 101, math.Pi/2)
	c.SetTransform(math3d.RotateY(math.Pi / 4).Mul(math3d.Translate(0, -2, 5)))
	r := c.RayForPixel(100, 50)

	wantOrigin := math3d.P3(0, 2, -5)
	wantDir := math3d.V3(math.Sqrt2/2, 0, -math.Sqrt2/2)

	if !r.Origin.Equal(wantOrigin) {
		t.Errorf("origin = %v, want %v", r.Origin, wantOrigin)
	}
	if !r.Direction.Equal(wantDir) {
		t.Errorf("direction = %v, want %v", r.Direction, wantDir)
	}
}

func TestViewTransformDefaultOrientationIsIdentity(t *testing.T) {
	c := New(160, 120, math.Pi/3)
	c.ViewTransform(math3d.Origin(), math3d.P3(0, 0, -1), math3d.V3(0, 1, 0))
	if !c.Transform().Equal(math3d.Identity4()) {
		t.Errorf("view transform = %v, want identity", c.Transform())
	}
}
