// Package canvas provides the RGB pixel grid the renderer paints into
// and the unbounded floating-point Color arithmetic used throughout
// shading.
package canvas

import (
	"math"

	"github.com/jumballaya/raytracer/pkg/math3d"
)

// Color is an unbounded RGB triple. Values outside [0,1] are legal
// intermediate results (e.g. summed light contributions); they are
// only clamped at serialization time.
type Color struct {
	R, G, B float64
}

// White, Black, and a handful of named colors used by default materials
// and tests.
var (
	Black = Color{0, 0, 0}
	White = Color{1, 1, 1}
	Red   = Color{1, 0, 0}
	Green = Color{0, 1, 0}
	Blue  = Color{0, 0, 1}
)

// NewColor creates a Color.
func NewColor(r, g, b float64) Color {
	return Color{r, g, b}
}

// Add returns the component-wise sum a + b.
func (a Color) Add(b Color) Color {
	return Color{a.R + b.R, a.G + b.G, a.B + b.B}
}

// Sub returns the component-wise difference a - b.
func (a Color) Sub(b Color) Color {
	return Color{a.R - b.R, a.G - b.G, a.B - b.B}
}

// Mul returns the component-wise (Hadamard) product a * b.
func (a Color) Mul(b Color) Color {
	return Color{a.R * b.R, a.G * b.G, a.B * b.B}
}

// Scale returns the scalar product a * s.
func (a Color) Scale(s float64) Color {
	return Color{a.R * s, a.G * s, a.B * s}
}

// Equal reports whether a and b are equal within math3d.Epsilon.
func (a Color) Equal(b Color) bool {
	return math3d.FloatEqual(a.R, b.R) && math3d.FloatEqual(a.G, b.G) && math3d.FloatEqual(a.B, b.B)
}

// clampScale clamps a channel to [0,1] then scales to [0,255],
// truncating (not rounding) to match the PPM encoder's bit-exact
// contract.
func clampScale(c float64) uint8 {
	if c < 0 {
		c = 0
	}
	if c > 1 {
		c = 1
	}
	return uint8(math.Floor(c * 255))
}

// Bytes returns the clamped, 8-bit (R, G, B) representation of the color.
func (a Color) Bytes() (r, g, b uint8) {
	return clampScale(a.R), clampScale(a.G), clampScale(a.B)
}
