// A constrained Delaunay triangulation package for Go.
//
// This package converts a set of points into triangles whose circumcircles
// contain no other point. Constrained edges can be given, which are forced into
// the result, and a set of rings can be triangulated as a polygon region,
// which may be non-convex and may contain holes. Output triangles reference the
// caller's points directly.
package cdt

import (
	"github.com/osuushi/cdt/internal"
	"github.com/pkg/errors"
)

type Point = internal.Point
type Edge = internal.Edge
type Triangle = internal.Triangle

var (
	// Returned for coincident points, and for points that are not finite.
	ErrDegenerateGeometry = internal.ErrDegenerateGeometry
	// Returned for constrained edges that are malformed, cross each other, or
	// pass through another point.
	ErrInvalidConstraint = internal.ErrInvalidConstraint
)

// Compute the Delaunay triangulation of the points, covering their convex
// hull. Points are identified by pointer, and no two may have the same
// coordinates.
//
// The order of the points is irrelevant. Fewer than three points, or points
// that are all collinear, give no triangles.
func Triangulate(points []*Point) ([]*Triangle, error) {
	return run(points, internal.Options{})
}

// Like Triangulate, but every edge is guaranteed to appear in the result.
// Edges must connect two of the given points, and must not cross each other.
// The result is Delaunay everywhere except across the given edges.
func TriangulateConstrained(points []*Point, edges []Edge) ([]*Triangle, error) {
	return run(points, internal.Options{Constraints: edges})
}

// Take a set of rings and triangulate the region they enclose. Each ring is a
// closed sequence of points, and its consecutive points become constrained
// edges. Rings must not cross each other or themselves. A ring inside another
// ring is a hole, a ring inside that is filled again, and so on. Winding
// direction doesn't matter.
//
// The edges of the rings are returned alongside the triangles.
func TriangulatePolygon(rings ...[]*Point) ([]*Triangle, []Edge, error) {
	var points []*Point
	var edges []Edge
	seen := make(internal.PointSet)
	for i, ring := range rings {
		if len(ring) < 3 {
			return nil, nil, errors.Wrapf(ErrDegenerateGeometry, "ring %d has only %d points", i, len(ring))
		}
		for j, p := range ring {
			// Rings may share a point
			if !seen.Contains(p) {
				seen.Add(p)
				points = append(points, p)
			}
			edges = append(edges, Edge{A: p, B: ring[internal.CircularIndex(j+1, len(ring))]})
		}
	}

	triangles, err := run(points, internal.Options{Constraints: edges, Trim: internal.TrimRegion})
	if err != nil {
		return nil, nil, err
	}
	return triangles, edges, nil
}

func run(points []*Point, options internal.Options) (result []*Triangle, err error) {
	defer func() {
		recoveredErr := internal.HandleTriangulatePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	triangulator, err := internal.NewTriangulator(points, options)
	if err != nil {
		return nil, err
	}
	return []*Triangle(triangulator.Run()), nil
}
