package shape

import (
	"math"

	"github.com/jumballaya/raytracer/pkg/math3d"
)

// HitComputation is the derived record built from an (intersections,
// index, ray) triple: the geometric quantities every shading and
// recursion step needs, computed once per hit rather than re-derived
// at each use site.
type HitComputation struct {
	T      float64
	Object *Object

	Point      math3d.Point
	OverPoint  math3d.Point
	UnderPoint math3d.Point

	Eye     math3d.Vector
	Normal  math3d.Vector
	Reflect math3d.Vector

	Inside bool

	N1, N2 float64
	CosI   float64
}

// PrepareComputations builds the HitComputation for xs.At(index),
// walking the full intersection list in order to resolve the
// entering/exiting refractive indices n1 and n2.
func PrepareComputations(xs *Intersections, index int, ray math3d.Ray) HitComputation {
	hit := xs.At(index)

	var comp HitComputation
	comp.T = hit.T
	comp.Object = hit.Object
	comp.Point = ray.PositionAt(hit.T)
	comp.Eye = ray.Direction.Negate()
	comp.Normal = hit.Object.NormalAt(comp.Point, &hit)

	if comp.Normal.Dot(comp.Eye) < 0 {
		comp.Inside = true
		comp.Normal = comp.Normal.Negate()
	}

	comp.Reflect = ray.Direction.Reflect(comp.Normal)
	comp.OverPoint = comp.Point.Add(comp.Normal.Scale(math3d.Epsilon))
	comp.UnderPoint = comp.Point.SubVector(comp.Normal.Scale(math3d.Epsilon))
	comp.CosI = comp.Eye.Dot(comp.Normal)

	comp.N1, comp.N2 = refractiveIndices(xs, index)

	return comp
}

// refractiveIndices walks the sorted intersection list, maintaining a
// "containers" stack of objects the ray currently considers itself
// inside, and reads off n1/n2 at the target index. Stack membership is
// tested by pointer identity: two distinct glass spheres with
// identical material parameters are not the same medium.
func refractiveIndices(xs *Intersections, index int) (n1, n2 float64) {
	type stack []*Object
	var containers stack

	contains := func(s stack, o *Object) int {
		for i, c := range s {
			if c == o {
				return i
			}
		}
		return -1
	}

	for i := 0; i < xs.Len(); i++ {
		x := xs.At(i)

		if i == index {
			if len(containers) == 0 {
				n1 = 1.0
			} else {
				n1 = containers[len(containers)-1].Material.RefractiveIndex
			}
		}

		if pos := contains(containers, x.Object); pos >= 0 {
			containers = append(containers[:pos], containers[pos+1:]...)
		} else {
			containers = append(containers, x.Object)
		}

		if i == index {
			if len(containers) == 0 {
				n2 = 1.0
			} else {
				n2 = containers[len(containers)-1].Material.RefractiveIndex
			}
			break
		}
	}

	return n1, n2
}

// Schlick returns the Schlick approximation of the Fresnel
// reflectance for comp.
func (comp HitComputation) Schlick() float64 {
	cos := comp.CosI

	if comp.N1 > comp.N2 {
		n := comp.N1 / comp.N2
		sin2t := n * n * (1 - cos*cos)
		if sin2t > 1 {
			return 1
		}
		cosT := math.Sqrt(1 - sin2t)
		cos = cosT
	}

	r0 := (comp.N1 - comp.N2) / (comp.N1 + comp.N2)
	r0 *= r0
	return r0 + (1-r0)*pow5(1-cos)
}

func pow5(v float64) float64 {
	v2 := v * v
	return v2 * v2 * v
}
