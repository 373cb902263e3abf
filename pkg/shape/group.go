package shape

import "github.com/jumballaya/raytracer/pkg/math3d"

// Group is an internal node holding an ordered sequence of children.
// By the time a Group is built its children's stored transforms
// already incorporate every ancestor transform (see NewGroup), so
// Object.Intersect skips the usual world->local step for groups and
// simply forwards the ray to each child unchanged.
type Group struct {
	Children []*Object
}

// NewGroup builds a canonical group from transform and children:
// transform is pushed down into every leaf descendant's stored
// transform (composing with whatever those descendants already carry,
// which matters when a child is itself an already-built Group), and
// any subgroup left with zero children after that is pruned.
func NewGroup(transform math3d.Matrix4, children ...*Object) *Object {
	for _, c := range children {
		pushTransform(c, transform)
	}
	children = pruneEmptyGroups(children)

	g := &Group{Children: children}
	obj := newObject(g)
	obj.SetTransform(transform)
	return obj
}

// pushTransform composes acc onto every leaf descendant of o. Groups
// are transparent to this walk: only leaves (and the bookkeeping
// transform of intermediate groups, which is never consulted at
// intersect time) are updated.
func pushTransform(o *Object, acc math3d.Matrix4) {
	if g, ok := o.Shape.(*Group); ok {
		for _, child := range g.Children {
			pushTransform(child, acc)
		}
		o.SetTransform(acc.Mul(o.Transform()))
		return
	}
	o.SetTransform(acc.Mul(o.Transform()))
}

func pruneEmptyGroups(children []*Object) []*Object {
	out := make([]*Object, 0, len(children))
	for _, c := range children {
		if g, ok := c.Shape.(*Group); ok {
			g.Children = pruneEmptyGroups(g.Children)
			if len(g.Children) == 0 {
				continue
			}
		}
		out = append(out, c)
	}
	return out
}

func (g *Group) Kind() Kind { return KindGroup }

// LocalIntersect is never invoked: Object.Intersect special-cases
// Group and forwards the ray to each child directly.
func (g *Group) LocalIntersect(_ math3d.Ray, _ *Object, _ *Intersections) {}

// LocalNormalAt is never invoked on a Group.
func (g *Group) LocalNormalAt(_ math3d.Point, _ *Intersection) math3d.Vector {
	panic("shape: normal_at called on a Group")
}
