// Package pattern implements procedural color fields sampled in a
// pattern-local coordinate space: solid, stripe, gradient, ring,
// checker, and Perlin-noise variants, each carrying its own invertible
// transform.
package pattern

import (
	"math"

	"github.com/jumballaya/raytracer/pkg/canvas"
	"github.com/jumballaya/raytracer/pkg/math3d"
)

// Kind tags the closed set of pattern variants.
type Kind int

const (
	KindSolid Kind = iota
	KindStripe
	KindGradient
	KindRing
	KindChecker
	KindNoise
	KindTest
)

// Pattern maps a point in its own local space to a Color. Every
// variant fits this one struct; Kind selects which AtLocal branch
// runs, following the closed-set tagged-union convention used for
// Shape.
type Pattern struct {
	kind      Kind
	a, b      canvas.Color
	transform math3d.Matrix4
	invTransform math3d.Matrix4
	threshold float64 // noise only
}

// Solid returns a pattern that always yields c.
func Solid(c canvas.Color) Pattern {
	return newPattern(KindSolid, c, canvas.Black, 0)
}

// Stripe returns a pattern alternating a/b along the local x axis.
func Stripe(a, b canvas.Color) Pattern {
	return newPattern(KindStripe, a, b, 0)
}

// Gradient returns a pattern linearly interpolating a to b along local x.
func Gradient(a, b canvas.Color) Pattern {
	return newPattern(KindGradient, a, b, 0)
}

// Ring returns a pattern alternating a/b by distance from the local y axis.
func Ring(a, b canvas.Color) Pattern {
	return newPattern(KindRing, a, b, 0)
}

// Checker returns a pattern alternating a/b in a 3D checkerboard.
func Checker(a, b canvas.Color) Pattern {
	return newPattern(KindChecker, a, b, 0)
}

// Noise returns a pattern that selects a or b by thresholding Perlin
// noise sampled at the local point.
func Noise(a, b canvas.Color, threshold float64) Pattern {
	p := newPattern(KindNoise, a, b, threshold)
	return p
}

// Test returns a pattern that reports its sample point as a color,
// used only to verify transform composition in tests.
func Test() Pattern {
	return newPattern(KindTest, canvas.Black, canvas.White, 0)
}

func newPattern(k Kind, a, b canvas.Color, threshold float64) Pattern {
	return Pattern{
		kind:         k,
		a:            a,
		b:            b,
		transform:    math3d.Identity4(),
		invTransform: math3d.Identity4(),
		threshold:    threshold,
	}
}

// WithTransform returns a copy of p with its transform set to m
// (pattern-local -> object-local); the inverse, which maps object
// points into pattern space, is cached immediately.
func (p Pattern) WithTransform(m math3d.Matrix4) Pattern {
	p.transform = m
	p.invTransform = m.Inverse()
	return p
}

// Transform returns the pattern's transform.
func (p Pattern) Transform() math3d.Matrix4 {
	return p.transform
}

// Translate, Scale, RotateX/Y/Z, Shear chain fluently, mirroring the
// same methods on Object. Camera has no such methods; its transform is
// set whole through SetTransform or ViewTransform.
func (p Pattern) Translate(x, y, z float64) Pattern {
	return p.WithTransform(math3d.Translate(x, y, z).Mul(p.transform))
}

func (p Pattern) Scale(x, y, z float64) Pattern {
	return p.WithTransform(math3d.Scale(x, y, z).Mul(p.transform))
}

func (p Pattern) RotateX(r float64) Pattern {
	return p.WithTransform(math3d.RotateX(r).Mul(p.transform))
}

func (p Pattern) RotateY(r float64) Pattern {
	return p.WithTransform(math3d.RotateY(r).Mul(p.transform))
}

func (p Pattern) RotateZ(r float64) Pattern {
	return p.WithTransform(math3d.RotateZ(r).Mul(p.transform))
}

func (p Pattern) Shear(xy, xz, yx, yz, zx, zy float64) Pattern {
	return p.WithTransform(math3d.Shear(xy, xz, yx, yz, zx, zy).Mul(p.transform))
}

// AtLocal evaluates the pattern at a point already expressed in
// pattern-local space (i.e. after both the object's and the pattern's
// inverse transforms have been applied by the caller).
func (p Pattern) AtLocal(point math3d.Point) canvas.Color {
	switch p.kind {
	case KindSolid:
		return p.a
	case KindStripe:
		if math.Mod(math.Floor(math.Abs(point.X)), 2) == 0 {
			return p.a
		}
		return p.b
	case KindGradient:
		return p.a.Add(p.b.Sub(p.a).Scale(point.X))
	case KindRing:
		d := math.Sqrt(point.X*point.X + point.Z*point.Z)
		if math.Mod(math.Floor(d), 2) == 0 {
			return p.a
		}
		return p.b
	case KindChecker:
		sum := math.Floor(point.X) + math.Floor(point.Y) + math.Floor(point.Z)
		if math.Mod(math.Abs(sum), 2) == 0 {
			return p.a
		}
		return p.b
	case KindNoise:
		if perlinNoise(point.X, point.Y, point.Z) > p.threshold {
			return p.a
		}
		return p.b
	case KindTest:
		return canvas.NewColor(point.X, point.Y, point.Z)
	default:
		return p.a
	}
}

// AtObject evaluates the pattern for a hit on a shape whose
// inverse-transform maps world space to object-local space: the
// pattern's own inverse transform is applied AFTER the object's, per
// the fixed pattern-space convention (some historical revisions of
// this algorithm omitted the pattern transform; that is a defect, not
// an alternate behavior).
func (p Pattern) AtObject(objectInvTransform math3d.Matrix4, worldPoint math3d.Point) canvas.Color {
	objectPoint := objectInvTransform.MulPoint(worldPoint)
	patternPoint := p.invTransform.MulPoint(objectPoint)
	return p.AtLocal(patternPoint)
}
