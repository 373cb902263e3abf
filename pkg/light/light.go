// Package light implements scene light sources and the Phong lighting
// model used to shade a hit point.
package light

import (
	"math"

	"github.com/jumballaya/raytracer/pkg/canvas"
	"github.com/jumballaya/raytracer/pkg/material"
	"github.com/jumballaya/raytracer/pkg/math3d"
)

// Point is a point light source: intensity radiates uniformly from a
// single position with no attenuation or falloff.
type Point struct {
	Position  math3d.Point
	Intensity canvas.Color
}

// NewPoint creates a point light.
func NewPoint(position math3d.Point, intensity canvas.Color) Point {
	return Point{Position: position, Intensity: intensity}
}

// Lighting computes the Phong shading contribution of l at point,
// given the surface's material, eye and normal vectors, and whether
// point lies in shadow. objectInvTransform is the owning object's
// inverse transform, needed to sample the material's pattern in
// object space.
func Lighting(m material.Material, objectInvTransform math3d.Matrix4, l Point, point math3d.Point, eye, normal math3d.Vector, inShadow bool) canvas.Color {
	effectiveColor := m.Pattern.AtObject(objectInvTransform, point).Mul(l.Intensity)
	ambient := effectiveColor.Scale(m.Ambient)

	if inShadow {
		return ambient
	}

	lightVec := l.Position.Sub(point).Normalize()
	lightDotNormal := lightVec.Dot(normal)

	var diffuse, specular canvas.Color

	if lightDotNormal >= 0 {
		diffuse = effectiveColor.Scale(m.Diffuse * lightDotNormal)

		reflect := lightVec.Negate().Reflect(normal)
		reflectDotEye := reflect.Dot(eye)
		if reflectDotEye > 0 {
			factor := math.Pow(reflectDotEye, m.Shininess)
			specular = l.Intensity.Scale(m.Specular * factor)
		}
	}

	return ambient.Add(diffuse).Add(specular)
}
