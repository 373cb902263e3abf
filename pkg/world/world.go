// Package world ties objects and lights together into a scene and
// implements the recursive ray-to-color shading pipeline: direct
// lighting, shadow testing, and bounded-depth reflection/refraction.
package world

import (
	"math"

	"github.com/jumballaya/raytracer/pkg/canvas"
	"github.com/jumballaya/raytracer/pkg/light"
	"github.com/jumballaya/raytracer/pkg/material"
	"github.com/jumballaya/raytracer/pkg/math3d"
	"github.com/jumballaya/raytracer/pkg/shape"
)

// DefaultRecursionDepth bounds reflected/refracted ray recursion; past
// it, a contribution evaluates to black instead of recursing further.
const DefaultRecursionDepth = 5

// World is the scene container: a flat list of objects (possibly
// groups) and lights. It owns both; objects own their materials,
// materials own their patterns.
type World struct {
	Objects []*shape.Object
	Lights  []light.Point
}

// New returns an empty world.
func New() *World {
	return &World{}
}

// Default returns the reference two-sphere, one-light world used
// throughout end-to-end scenarios.
func Default() *World {
	w := New()
	w.AddLight(light.NewPoint(math3d.P3(-10, 10, -10), canvas.White))

	outer := shape.NewSphere().WithMaterial(
		material.Default().
			WithColor(canvas.NewColor(0.8, 1.0, 0.6)).
			WithDiffuse(0.7).
			WithSpecular(0.2),
	)
	inner := shape.NewSphere().Scale(0.5, 0.5, 0.5)

	w.AddObject(outer)
	w.AddObject(inner)
	return w
}

// AddObject adds o to the world.
func (w *World) AddObject(o *shape.Object) {
	w.Objects = append(w.Objects, o)
}

// AddLight adds l to the world.
func (w *World) AddLight(l light.Point) {
	w.Lights = append(w.Lights, l)
}

// Intersect intersects ray against every object in the world and
// returns the sorted hit list.
func (w *World) Intersect(ray math3d.Ray) *shape.Intersections {
	xs := shape.NewIntersections()
	for _, o := range w.Objects {
		o.IntersectInto(ray, xs)
	}
	return xs
}

// ColorAt casts ray into the world and returns the resulting color,
// recursing into reflection/refraction up to remaining bounces.
func (w *World) ColorAt(ray math3d.Ray, remaining int) canvas.Color {
	xs := w.Intersect(ray)
	idx := xs.HitIndex()
	if idx < 0 {
		return canvas.Black
	}
	comp := shape.PrepareComputations(xs, idx, ray)
	return w.ShadeHit(comp, remaining)
}

// ShadeHit combines direct lighting from every light with reflected
// and refracted contributions, weighting the two by Schlick
// reflectance when the surface is both reflective and transparent.
func (w *World) ShadeHit(comp shape.HitComputation, remaining int) canvas.Color {
	m := comp.Object.Material

	var surface canvas.Color
	for _, l := range w.Lights {
		shadowed := w.IsShadowed(comp.OverPoint)
		surface = surface.Add(light.Lighting(m, comp.Object.InvTransform(), l, comp.OverPoint, comp.Eye, comp.Normal, shadowed))
	}

	reflected := w.ReflectedColor(comp, remaining)
	refracted := w.RefractedColor(comp, remaining)

	if m.Reflective > 0 && m.Transparency > 0 {
		r := comp.Schlick()
		return surface.Add(reflected.Scale(r)).Add(refracted.Scale(1 - r))
	}

	return surface.Add(reflected).Add(refracted)
}

// ReflectedColor casts the reflection ray from comp and scales the
// recursive result by the surface's reflectivity; black if the
// surface isn't reflective or the recursion budget is exhausted.
func (w *World) ReflectedColor(comp shape.HitComputation, remaining int) canvas.Color {
	if remaining <= 0 || comp.Object.Material.Reflective == 0 {
		return canvas.Black
	}
	reflectRay := math3d.NewRay(comp.OverPoint, comp.Reflect)
	color := w.ColorAt(reflectRay, remaining-1)
	return color.Scale(comp.Object.Material.Reflective)
}

// RefractedColor casts the refraction ray from comp and scales the
// recursive result by the surface's transparency; black under total
// internal reflection, zero transparency, or exhausted recursion.
func (w *World) RefractedColor(comp shape.HitComputation, remaining int) canvas.Color {
	m := comp.Object.Material
	if remaining <= 0 || m.Transparency == 0 {
		return canvas.Black
	}

	nRatio := comp.N1 / comp.N2
	cosI := comp.CosI
	sin2t := nRatio * nRatio * (1 - cosI*cosI)
	if sin2t > 1 {
		return canvas.Black
	}

	cosT := math.Sqrt(1 - sin2t)
	direction := comp.Normal.Scale(nRatio*cosI - cosT).Sub(comp.Eye.Scale(nRatio))
	refractRay := math3d.NewRay(comp.UnderPoint, direction)

	color := w.ColorAt(refractRay, remaining-1)
	return color.Scale(m.Transparency)
}

// IsShadowed reports whether point is shadowed from the world's first
// light. Only the first light is consulted, matching the reference
// behavior; multi-light shadowing is left to callers that need it.
func (w *World) IsShadowed(point math3d.Point) bool {
	if len(w.Lights) == 0 {
		return false
	}
	l := w.Lights[0]

	v := l.Position.Sub(point)
	distance := v.Magnitude()
	direction := v.Normalize()

	ray := math3d.NewRay(point, direction)
	xs := w.Intersect(ray)
	hit, ok := xs.Hit()
	return ok && hit.T < distance
}
