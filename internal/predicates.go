package internal

import (
	"github.com/golang/geo/r2"
)

// Geometric predicates. These are pure functions over point coordinates, and
// every one of them is a sign test on a 2D cross product, so results are
// exact for small integer and half-integer coordinates.

// Cross product of (b-a) and (c-a). Negative for a clockwise turn a->b->c.
func Orientation(a, b, c *Point) float64 {
	return b.Vec().Sub(a.Vec()).Cross(c.Vec().Sub(a.Vec()))
}

// Is the turn a->b->c clockwise? Collinear triples count as clockwise, so
// callers must not rely on this to distinguish the degenerate case.
func IsClockwise(a, b, c *Point) bool {
	return Orientation(a, b, c) <= 0
}

// Is the turn a->b->c strictly counterclockwise? This is the negation of
// IsClockwise.
func IsCounterclockwise(a, b, c *Point) bool {
	return !IsClockwise(a, b, c)
}

func IsCollinear(a, b, c *Point) bool {
	return Orientation(a, b, c) == 0
}

func samePosition(a, b *Point) bool {
	return a.X == b.X && a.Y == b.Y
}

type Circle struct {
	Center        r2.Point
	SquaredRadius float64
}

// Is the point strictly inside the circle?
func (c Circle) Contains(p *Point) bool {
	d := p.Vec().Sub(c.Center)
	return d.Dot(d) < c.SquaredRadius
}

// Compute the circle through three points. Coincident corners are a
// degenerate input, and abort the triangulation. For three distinct collinear
// points there is no circle, and ok is false.
func Circumcircle(a, b, c *Point) (circle Circle, ok bool) {
	if samePosition(a, b) || samePosition(a, c) || samePosition(b, c) {
		degeneratef("circumcircle of coincident corners %v, %v, %v", a, b, c)
	}

	ab := b.Vec().Sub(a.Vec())
	ac := c.Vec().Sub(a.Vec())
	d := 2 * ab.Cross(ac)
	if d == 0 {
		return Circle{}, false
	}

	abSq := ab.Dot(ab)
	acSq := ac.Dot(ac)
	// Offset of the center from a
	offset := r2.Point{
		X: (ac.Y*abSq - ab.Y*acSq) / d,
		Y: (ab.X*acSq - ac.X*abSq) / d,
	}
	return Circle{
		Center:        a.Vec().Add(offset),
		SquaredRadius: offset.Dot(offset),
	}, true
}

// Check two edges for intersection. Touching at a shared endpoint does not
// count, and neither does a collinear overlap; only proper crossings do.
func SegmentsIntersect(e1, e2 Edge) bool {
	for _, p := range []*Point{e1.A, e1.B} {
		for _, q := range []*Point{e2.A, e2.B} {
			if p == q || samePosition(p, q) {
				return false
			}
		}
	}

	return oppositeSides(Orientation(e1.A, e1.B, e2.A), Orientation(e1.A, e1.B, e2.B)) &&
		oppositeSides(Orientation(e2.A, e2.B, e1.A), Orientation(e2.A, e2.B, e1.B))
}

func oppositeSides(o1, o2 float64) bool {
	return (o1 < 0 && o2 > 0) || (o1 > 0 && o2 < 0)
}

// Check whether the edge properly crosses any edge in the set.
func IntersectsAny(edge Edge, edges EdgeSet) bool {
	for constrained := range edges {
		if SegmentsIntersect(edge, constrained) {
			return true
		}
	}
	return false
}

// Check whether a point lies in the wedge at apex that is swept clockwise from
// corner1 to corner2. The ray towards corner1 is excluded, the ray towards
// corner2 is included. The wedge must be convex; this holds when the wedge is
// one of the three sections of a triangle split at an interior apex.
func PointInWedge(p, apex, corner1, corner2 *Point) bool {
	/*
		        c2
		       /
		  p   /
		     /
		c1--apex
	*/
	if !IsClockwise(corner1, corner2, apex) {
		assertf("wedge %v -> %v at %v is not clockwise", corner1, corner2, apex)
	}
	return Orientation(apex, corner1, p) < 0 && Orientation(apex, corner2, p) >= 0
}

// The same as above, but with only two sections: is the point on the left of
// the directed line corner1->corner2 (or on it)?
func PointLeftOf(p, corner1, corner2 *Point) bool {
	/*
		     p
		c1------c2
	*/
	return Orientation(corner1, corner2, p) >= 0
}

// Does the point lie strictly between a and b on the segment ab? The point is
// assumed to be collinear with a and b.
func betweenOnSegment(p, a, b *Point) bool {
	ab := b.Vec().Sub(a.Vec())
	ap := p.Vec().Sub(a.Vec())
	dot := ab.Dot(ap)
	return dot > 0 && dot < ab.Dot(ab)
}
