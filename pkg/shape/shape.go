// Package shape implements the closed set of shape primitives the ray
// tracer intersects against — Sphere, Plane, Cube, Cylinder, Cone,
// Triangle, SmoothTriangle, Group, and TestShape — together with the
// Object wrapper that attaches a Material and cached transform
// matrices to each one, and the Intersection/Intersections records
// produced by casting a Ray against an Object.
package shape

import "github.com/jumballaya/raytracer/pkg/math3d"

// Kind tags the closed set of shape variants. Intersection and normal
// calls dispatch through the Shape interface; Object.Intersect picks
// out Group with a direct type assertion.
type Kind int

const (
	KindSphere Kind = iota
	KindPlane
	KindCube
	KindCylinder
	KindCone
	KindTriangle
	KindSmoothTriangle
	KindGroup
	KindTestShape
)

// Shape is the uniform interface every variant implements. Intersect
// and normal computations always happen in the shape's local space;
// Object.Intersect/NormalAt handle the world<->local transform.
type Shape interface {
	Kind() Kind

	// LocalIntersect appends to xs every intersection of localRay (already
	// expressed in the shape's local space) against this shape.
	LocalIntersect(localRay math3d.Ray, owner *Object, xs *Intersections)

	// LocalNormalAt returns the local-space surface normal at localPoint.
	// hit is supplied (and only used) for SmoothTriangle's barycentric
	// interpolation; it may be nil for every other variant.
	LocalNormalAt(localPoint math3d.Point, hit *Intersection) math3d.Vector
}
