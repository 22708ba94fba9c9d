package internal

import (
	"math"
	"sort"

	"github.com/pkg/errors"
)

// A point tracked by the triangulation. Until it is inserted, Container is
// the triangle known to contain it. Once it is a corner, Container is stale
// and unused.
type Vertex struct {
	Point     *Point
	Container TriangleHandle
	// Synthetic corner of the bootstrap triangle
	Boundary bool
}

func (v *Vertex) String() string {
	return v.Point.String()
}

// Wrap the caller's points into vertices, sorted into canonical insertion
// order. Coincident points are rejected, since the triangulation cannot give
// them distinct corners.
func newVertices(points []*Point) ([]*Vertex, error) {
	vertices := make([]*Vertex, len(points))
	for i, p := range points {
		if p == nil {
			return nil, errors.Wrapf(ErrDegenerateGeometry, "point %d is nil", i)
		}
		if !isFinite(p.X) || !isFinite(p.Y) {
			return nil, errors.Wrapf(ErrDegenerateGeometry, "point %d is not finite: %v", i, p)
		}
		vertices[i] = &Vertex{Point: p, Container: NoTriangle}
	}

	sort.SliceStable(vertices, func(i, j int) bool {
		return vertices[i].Point.Less(vertices[j].Point)
	})

	for i := 1; i < len(vertices); i++ {
		if samePosition(vertices[i-1].Point, vertices[i].Point) {
			return nil, errors.Wrapf(ErrDegenerateGeometry, "duplicate point %v", vertices[i].Point)
		}
	}
	return vertices, nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
