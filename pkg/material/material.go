// Package material holds the shading parameters attached to an Object,
// along with the well-known refractive indices used to set up glass-
// and water-like surfaces.
package material

import (
	"github.com/jumballaya/raytracer/pkg/canvas"
	"github.com/jumballaya/raytracer/pkg/pattern"
)

// Refractive indices of common media, for convenient material setup.
const (
	RefractiveVacuum  = 1.0
	RefractiveAir     = 1.00029
	RefractiveWater   = 1.333
	RefractiveGlass   = 1.52
	RefractiveDiamond = 2.417
)

// Material carries the Phong shading coefficients plus the pattern
// sampled for the surface's base color.
type Material struct {
	Pattern         pattern.Pattern
	Ambient         float64
	Diffuse         float64
	Specular        float64
	Shininess       float64
	Reflective      float64
	Transparency    float64
	RefractiveIndex float64
}

// Default returns the material defaults used throughout the scene
// driver API: solid white with a sharp specular highlight, no
// reflection, no transparency.
func Default() Material {
	return Material{
		Pattern:         pattern.Solid(canvas.White),
		Ambient:         0.1,
		Diffuse:         0.9,
		Specular:        0.9,
		Shininess:       200,
		Reflective:      0,
		Transparency:    0,
		RefractiveIndex: RefractiveVacuum,
	}
}

func (m Material) WithPattern(p pattern.Pattern) Material  { m.Pattern = p; return m }
func (m Material) WithAmbient(v float64) Material          { m.Ambient = v; return m }
func (m Material) WithDiffuse(v float64) Material          { m.Diffuse = v; return m }
func (m Material) WithSpecular(v float64) Material         { m.Specular = v; return m }
func (m Material) WithShininess(v float64) Material        { m.Shininess = v; return m }
func (m Material) WithReflective(v float64) Material       { m.Reflective = v; return m }
func (m Material) WithTransparency(v float64) Material     { m.Transparency = v; return m }
func (m Material) WithRefractiveIndex(v float64) Material  { m.RefractiveIndex = v; return m }

// WithColor is shorthand for WithPattern(pattern.Solid(c)).
func (m Material) WithColor(c canvas.Color) Material {
	m.Pattern = pattern.Solid(c)
	return m
}
