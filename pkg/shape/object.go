package shape

import (
	"github.com/jumballaya/raytracer/pkg/canvas"
	"github.com/jumballaya/raytracer/pkg/material"
	"github.com/jumballaya/raytracer/pkg/math3d"
	"github.com/jumballaya/raytracer/pkg/pattern"
)

// Object attaches a Material and cached transform matrices to a Shape.
// transform is the only mutator of the three matrix fields: SetTransform
// keeps invTransform and invTransposeTransform in sync so every caller
// can rely on them being current.
type Object struct {
	Shape    Shape
	Material material.Material

	transform             math3d.Matrix4
	invTransform          math3d.Matrix4
	invTransposeTransform math3d.Matrix4
}

func newObject(s Shape) *Object {
	o := &Object{Shape: s, Material: material.Default()}
	o.SetTransform(math3d.Identity4())
	return o
}

// SetTransform installs m as the object's transform and recomputes the
// two derived inverse matrices.
func (o *Object) SetTransform(m math3d.Matrix4) {
	o.transform = m
	o.invTransform = m.Inverse()
	o.invTransposeTransform = o.invTransform.Transpose()
}

// Transform returns the object's transform.
func (o *Object) Transform() math3d.Matrix4 { return o.transform }

// InvTransform returns the cached inverse transform.
func (o *Object) InvTransform() math3d.Matrix4 { return o.invTransform }

// InvTransposeTransform returns the cached inverse-transpose transform.
func (o *Object) InvTransposeTransform() math3d.Matrix4 { return o.invTransposeTransform }

// Translate, Scale, RotateX/Y/Z, and Shear return a new Object whose
// transform is the new operation composed onto the existing one
// (Mnew*Mold), following the same convention as Pattern's methods.
// Camera has no such methods; its transform is set whole.
func (o *Object) clone() *Object {
	c := *o
	return &c
}

func (o *Object) Translate(x, y, z float64) *Object {
	c := o.clone()
	c.SetTransform(math3d.Translate(x, y, z).Mul(o.transform))
	return c
}

func (o *Object) Scale(x, y, z float64) *Object {
	c := o.clone()
	c.SetTransform(math3d.Scale(x, y, z).Mul(o.transform))
	return c
}

func (o *Object) RotateX(r float64) *Object {
	c := o.clone()
	c.SetTransform(math3d.RotateX(r).Mul(o.transform))
	return c
}

func (o *Object) RotateY(r float64) *Object {
	c := o.clone()
	c.SetTransform(math3d.RotateY(r).Mul(o.transform))
	return c
}

func (o *Object) RotateZ(r float64) *Object {
	c := o.clone()
	c.SetTransform(math3d.RotateZ(r).Mul(o.transform))
	return c
}

func (o *Object) Shear(xy, xz, yx, yz, zx, zy float64) *Object {
	c := o.clone()
	c.SetTransform(math3d.Shear(xy, xz, yx, yz, zx, zy).Mul(o.transform))
	return c
}

// WithMaterial returns a new Object carrying m.
func (o *Object) WithMaterial(m material.Material) *Object {
	c := o.clone()
	c.Material = m
	return c
}

// WithPattern, WithAmbient, WithDiffuse, WithSpecular, WithShininess,
// WithReflective, and WithTransparency are fluent material setters,
// each returning a new Object with the one parameter changed.
func (o *Object) WithPattern(p pattern.Pattern) *Object {
	return o.WithMaterial(o.Material.WithPattern(p))
}

func (o *Object) WithColor(c canvas.Color) *Object {
	return o.WithMaterial(o.Material.WithColor(c))
}

func (o *Object) WithAmbient(v float64) *Object {
	return o.WithMaterial(o.Material.WithAmbient(v))
}

func (o *Object) WithDiffuse(v float64) *Object {
	return o.WithMaterial(o.Material.WithDiffuse(v))
}

func (o *Object) WithSpecular(v float64) *Object {
	return o.WithMaterial(o.Material.WithSpecular(v))
}

func (o *Object) WithShininess(v float64) *Object {
	return o.WithMaterial(o.Material.WithShininess(v))
}

func (o *Object) WithReflective(v float64) *Object {
	return o.WithMaterial(o.Material.WithReflective(v))
}

func (o *Object) WithTransparency(v float64) *Object {
	return o.WithMaterial(o.Material.WithTransparency(v))
}

func (o *Object) WithRefractiveIndex(v float64) *Object {
	return o.WithMaterial(o.Material.WithRefractiveIndex(v))
}

// Intersect is the trampoline described in the shape design: unless
// the shape is a Group (whose children already carry the composed
// world transform), the ray is first mapped into local space via the
// cached inverse transform, then dispatched to the shape's own
// LocalIntersect.
func (o *Object) Intersect(ray math3d.Ray) *Intersections {
	xs := NewIntersections()
	o.IntersectInto(ray, xs)
	return xs
}

// IntersectInto is Intersect but appends into a caller-supplied,
// reusable Intersections buffer, avoiding a fresh allocation per ray
// in the render hot path.
func (o *Object) IntersectInto(ray math3d.Ray, xs *Intersections) {
	if g, ok := o.Shape.(*Group); ok {
		for _, child := range g.Children {
			child.IntersectInto(ray, xs)
		}
		return
	}
	localRay := ray.Transform(o.invTransform)
	o.Shape.LocalIntersect(localRay, o, xs)
}

// NormalAt returns the world-space surface normal at worldPoint, given
// the Intersection that produced it (needed only by SmoothTriangle).
func (o *Object) NormalAt(worldPoint math3d.Point, hit *Intersection) math3d.Vector {
	localPoint := o.invTransform.MulPoint(worldPoint)
	localNormal := o.Shape.LocalNormalAt(localPoint, hit)
	worldNormal := o.invTransposeTransform.MulVector(localNormal)
	return worldNormal.Normalize()
}
