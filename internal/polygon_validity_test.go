package internal

// This contains no actual tests. It is just a helper for testing triangulation
// validity.

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to check that a triangulation is valid. The rules are:
// 1. Every corner is one of the input points.
// 2. Every triangle is clockwise, and no triangle has zero area.
// 3. Every constrained edge is an edge of some triangle.
// 4. Each directed edge belongs to at most one triangle, so triangles don't
// overlap, and each undirected edge to at most two.
// 5. Neighbor links are symmetric and cross the edge opposite their slot.
func AssertValidTriangulation(t *testing.T, points []*Point, constraints []Edge, triangles TriangleList) {
	inputPoints := make(PointSet)
	for _, p := range points {
		inputPoints.Add(p)
	}

	type directedEdge struct{ from, to *Point }
	directed := make(map[directedEdge]*Triangle)
	edges := make(EdgeSet)
	for _, tri := range triangles {
		for i := 0; i < 3; i++ {
			require.True(t, inputPoints.Contains(tri.Corner(i)), "corner %v of %v is not an input point", tri.Corner(i), tri)
		}
		require.Less(t, tri.SignedArea(), 0.0, "triangle is not clockwise, or has no area: %v", tri)

		for i := 0; i < 3; i++ {
			e := directedEdge{tri.Corner(i), tri.Corner(i + 1)}
			other, duplicate := directed[e]
			require.False(t, duplicate, "directed edge %v-%v belongs to both %v and %v", e.from, e.to, tri, other)
			directed[e] = tri
			edges.Add(e.from, e.to)
		}
	}

	for _, e := range constraints {
		require.True(t, edges.Contains(e.A, e.B), "constrained edge %v is missing", e)
	}

	for _, tri := range triangles {
		for i, neighbor := range tri.Neighbors {
			a, b := tri.Corner(i+1), tri.Corner(i+2)
			// The neighbor across a-b has the same edge, running b-a
			expected := directed[directedEdge{b, a}]
			require.Equal(t, expected, neighbor, "neighbor %d of %v", i, tri)
			if neighbor == nil {
				continue
			}
			back := false
			for _, n := range neighbor.Neighbors {
				if n == tri {
					back = true
				}
			}
			require.True(t, back, "neighbor %v of %v does not point back", neighbor, tri)
		}
	}
}

// Check the Delaunay condition between every pair of neighbors, except across
// constrained edges: the far corner of the neighbor may not be strictly inside
// the triangle's circumcircle. The comparison is relative to the circle size,
// so that cocircular points don't fail due to rounding.
func AssertLocallyDelaunay(t *testing.T, triangles TriangleList, constraints []Edge) {
	constrained := NewEdgeSet(constraints)
	for _, tri := range triangles {
		circle, ok := Circumcircle(tri.A, tri.B, tri.C)
		require.True(t, ok, "flat triangle %v", tri)
		for i, neighbor := range tri.Neighbors {
			if neighbor == nil || constrained.Contains(tri.Corner(i+1), tri.Corner(i+2)) {
				continue
			}
			far := farCorner(neighbor, tri)
			offset := far.Vec().Sub(circle.Center)
			assert.False(t,
				offset.Dot(offset) < circle.SquaredRadius*(1-1e-9),
				"%v is inside the circumcircle of %v", far, tri,
			)
		}
	}
}

// The corner of neighbor that is not shared with tri
func farCorner(neighbor, tri *Triangle) *Point {
	for i := 0; i < 3; i++ {
		if !tri.HasCorner(neighbor.Corner(i)) {
			return neighbor.Corner(i)
		}
	}
	return nil
}

// Convex hull by the monotone chain algorithm, clockwise.
func convexHull(points []*Point) []*Point {
	sorted := make([]*Point, len(points))
	copy(sorted, points)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Less(sorted[j]) })

	var hull []*Point
	for pass := 0; pass < 2; pass++ {
		start := len(hull)
		for _, p := range sorted {
			for len(hull) >= start+2 && Orientation(hull[len(hull)-2], hull[len(hull)-1], p) >= 0 {
				hull = hull[:len(hull)-1]
			}
			hull = append(hull, p)
		}
		hull = hull[:len(hull)-1]
		// Reverse for the other chain
		for i, j := 0, len(sorted)-1; i < j; i, j = i+1, j-1 {
			sorted[i], sorted[j] = sorted[j], sorted[i]
		}
	}
	return hull
}

func hullArea(points []*Point) float64 {
	hull := convexHull(points)
	var area float64
	for i, a := range hull {
		b := hull[CircularIndex(i+1, len(hull))]
		area += a.X*b.Y - b.X*a.Y
	}
	return math.Abs(area) / 2
}

// Check that the triangles cover exactly the region enclosed by the rings by
// sampling a grid over the bounding box. Samples too close to a ring edge are
// ambiguous and skipped.
func validateRegionBySampling(t *testing.T, triangles TriangleList, rings Rings) {
	b := newDrawBounds()
	for _, p := range rings.Points() {
		b.extend(p)
	}
	xPadding := (b.maxX - b.minX) * 0.1
	yPadding := (b.maxY - b.minY) * 0.1
	minX, minY := b.minX-xPadding, b.minY-yPadding
	maxX, maxY := b.maxX+xPadding, b.maxY+yPadding
	step := math.Max(maxX-minX, maxY-minY) / 50

	edges := rings.Edges()
	for y := minY; y <= maxY; y += step {
		for x := minX; x <= maxX; x += step {
			p := &Point{X: x, Y: y}
			if nearAnyEdge(p, edges, step/100) {
				continue
			}
			actual := triangles.ContainsPoint(p)
			if rings.ContainsPoint(p) {
				assert.True(t, actual, "point %v should be covered", p)
			} else {
				assert.False(t, actual, "point %v should not be covered", p)
			}
		}
	}
}

func nearAnyEdge(p *Point, edges []Edge, tolerance float64) bool {
	for _, e := range edges {
		if distanceToSegment(p, e) < tolerance {
			return true
		}
	}
	return false
}

func distanceToSegment(p *Point, e Edge) float64 {
	a, b := e.A.Vec(), e.B.Vec()
	ab := b.Sub(a)
	t := p.Vec().Sub(a).Dot(ab) / ab.Dot(ab)
	t = math.Max(0, math.Min(1, t))
	return p.Vec().Sub(a.Add(ab.Mul(t))).Norm()
}

func (list TriangleList) ContainsPoint(p *Point) bool {
	for _, tri := range list {
		if Orientation(tri.A, tri.B, p) <= 0 &&
			Orientation(tri.B, tri.C, p) <= 0 &&
			Orientation(tri.C, tri.A, p) <= 0 {
			return true
		}
	}
	return false
}
