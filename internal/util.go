package internal

import "math"

const Epsilon = 1e-9

// To compensate for imprecision in floats, comparisons in tests and validation
// are tolerance based. The triangulation itself never uses this; its
// predicates are exact sign tests.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

// Signed area of a triangle. Clockwise triangles have negative area.
func (t *Triangle) SignedArea() float64 {
	return SignedArea(t.A, t.B, t.C)
}

func SignedArea(a, b, c *Point) float64 {
	return b.Vec().Sub(a.Vec()).Cross(c.Vec().Sub(a.Vec())) / 2
}

func (t *Triangle) Area() float64 {
	return math.Abs(t.SignedArea())
}

func (list TriangleList) Area() float64 {
	var area float64
	for _, t := range list {
		area += t.Area()
	}
	return area
}

// Stack of triangle handles, used for the flood fill during trimming.
type HandleStack []TriangleHandle

func (s *HandleStack) Push(h TriangleHandle) {
	*s = append(*s, h)
}

func (s *HandleStack) Pop() TriangleHandle {
	if len(*s) == 0 {
		return NoTriangle
	}
	h := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return h
}

func (s *HandleStack) Empty() bool {
	return len(*s) == 0
}
