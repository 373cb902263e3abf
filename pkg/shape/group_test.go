package shape

import (
	"math"
	"testing"

	"github.com/jumballaya/raytracer/pkg/math3d"
)

func TestGroupIntersectForwardsToChildren(t *testing.T) {
	s1 := NewSphere()
	s2 := NewSphere().Translate(0, 0, -3)
	s3 := NewSphere().Translate(5, 0, 0)

	g := NewGroup(math3d.Identity4(), s1, s2, s3)

	r := math3d.NewRay(math3d.P3(0, 0, -5), math3d.V3(0, 0, 1))
	xs := g.Intersect(r)

	if xs.Len() != 4 {
		t.Fatalf("got %d intersections, want 4", xs.Len())
	}
}

func TestGroupIntersectRespectsGroupTransform(t *testing.T) {
	s := NewSphere().Translate(5, 0, 0)
	g := NewGroup(math3d.Scale(2, 2, 2), s)

	r := math3d.NewRay(math3d.P3(10, 0, -10), math3d.V3(0, 0, 1))
	xs := g.Intersect(r)

	if xs.Len() != 2 {
		t.Errorf("got %d intersections, want 2", xs.Len())
	}
}

func TestNestedGroupTransformedNormal(t *testing.T) {
	s := NewSphere().Translate(5, 0, 0)
	g1 := NewGroup(math3d.RotateY(math.Pi/2), NewGroup(math3d.Scale(1, 2, 3), s))

	var inner *Object
	var walk func(o *Object)
	walk = func(o *Object) {
		if grp, ok := o.Shape.(*Group); ok {
			for _, c := range grp.Children {
				walk(c)
			}
			return
		}
		if _, ok := o.Shape.(*Sphere); ok {
			inner = o
		}
	}
	walk(g1)

	if inner == nil {
		t.Fatalf("did not find inner sphere")
	}

	var hit Intersection
	n := inner.NormalAt(math3d.P3(math.Sqrt(3), 2/math.Sqrt(3), -5-1/math.Sqrt(3)), &hit)
	want := math3d.V3(0.28571, 0.42857, -0.85714)
	if !n.Equal(want) {
		t.Errorf("normal = %v, want %v", n, want)
	}
}

func TestGroupPrunesEmptySubgroups(t *testing.T) {
	empty := NewGroup(math3d.Identity4())
	g := NewGroup(math3d.Identity4(), empty, NewSphere())

	grp := g.Shape.(*Group)
	if len(grp.Children) != 1 {
		t.Errorf("got %d children after pruning, want 1", len(grp.Children))
	}
}
