package internal

import (
	"fmt"

	"github.com/golang/geo/r2"
)

type Point struct {
	X float64
	Y float64
}

// Note that all points involved with the triangulation are pointers. Two
// points with equal coordinates are still different points, and the output
// triangles reference the caller's points directly. We never modify a point
// value, since some applications require exact equality.

// Vec converts the point to a vector for arithmetic.
func (p *Point) Vec() r2.Point {
	return r2.Point{X: p.X, Y: p.Y}
}

func (p *Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Lexicographic (x, y) order. This is the canonical insertion order.
func (p *Point) Less(otherPoint *Point) bool {
	if p.X == otherPoint.X {
		return p.Y < otherPoint.Y
	}
	return p.X < otherPoint.X
}

// An undirected edge between two points. Constrained edges are given as a
// list of these.
type Edge struct {
	A, B *Point
}

func (e Edge) String() string {
	return fmt.Sprintf("%v-%v", e.A, e.B)
}

// Output triangle. Corners are clockwise. Neighbors[i] is the triangle across
// the edge opposite corner i, or nil if that edge is on the boundary of the
// result.
type Triangle struct {
	A, B, C   *Point
	Neighbors [3]*Triangle
}

func (t *Triangle) Corner(i int) *Point {
	switch CircularIndex(i, 3) {
	case 0:
		return t.A
	case 1:
		return t.B
	}
	return t.C
}

func (t *Triangle) HasCorner(p *Point) bool {
	return t.A == p || t.B == p || t.C == p
}

func (t *Triangle) String() string {
	return fmt.Sprintf("Triangle<%v, %v, %v>", t.A, t.B, t.C)
}

type TriangleList []*Triangle

type PointSet map[*Point]struct{}

func (s PointSet) Add(p *Point) {
	s[p] = struct{}{}
}

func (s PointSet) Contains(p *Point) bool {
	_, ok := s[p]
	return ok
}

// A set of undirected edges keyed by point identity.
type EdgeSet map[Edge]struct{}

// Normalize the edge so that the lexicographically smaller point comes first.
// Points with identical coordinates are rejected before an EdgeSet is ever
// built, so this ordering is total over the points we store.
func normalizeEdge(a, b *Point) Edge {
	if b.Less(a) {
		return Edge{b, a}
	}
	return Edge{a, b}
}

func NewEdgeSet(edges []Edge) EdgeSet {
	set := make(EdgeSet, len(edges))
	for _, e := range edges {
		set.Add(e.A, e.B)
	}
	return set
}

func (s EdgeSet) Add(a, b *Point) {
	s[normalizeEdge(a, b)] = struct{}{}
}

func (s EdgeSet) Contains(a, b *Point) bool {
	_, ok := s[normalizeEdge(a, b)]
	return ok
}
