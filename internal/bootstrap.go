package internal

import (
	"math"

	"github.com/osuushi/cdt/internal/dbg"
)

// Perturbation of the boundary points, relative to the largest coordinate.
// It reduces the chance that an input point is collinear with two boundary
// points, or with a boundary point and another input point. The value is
// arbitrary.
const boundaryEpsilon = 0.000372

// Create the three synthetic boundary vertices, and the single triangle
// spanning them which initially contains every input vertex. The boundary
// points are placed at four times the largest absolute coordinate, so the
// triangle certainly surrounds everything.
func (tr *Triangulator) bootstrap() {
	// The clockwise bootstrap triangle, with the input inside:
	/*
		        b0
		       /  \
		      / in \
		     /      b1
		    /    /
		   b2 /
	*/
	maxCoord := 0.0
	for _, v := range tr.vertices {
		maxCoord = math.Max(maxCoord, math.Abs(v.Point.X))
		maxCoord = math.Max(maxCoord, math.Abs(v.Point.Y))
	}
	if maxCoord == 0 {
		// Nothing, or only the origin. Any size will do.
		maxCoord = 1
	}

	epsilon := boundaryEpsilon * maxCoord
	maxCoord *= 4
	points := [3]*Point{
		{X: epsilon, Y: maxCoord - epsilon},
		{X: maxCoord + epsilon, Y: -epsilon},
		{X: -maxCoord - epsilon, Y: -maxCoord + epsilon},
	}
	for i, p := range points {
		tr.boundary[i] = &Vertex{Point: p, Boundary: true}
	}

	h := tr.mesh.InsertTriangle(tr.boundary[0], tr.boundary[1], tr.boundary[2])
	for _, v := range tr.boundary {
		v.Container = h
	}
	seed := tr.mesh.Get(h)
	seed.Remaining = make([]*Vertex, len(tr.vertices))
	copy(seed.Remaining, tr.vertices)
	for _, v := range tr.vertices {
		v.Container = h
	}
	dbg.Printf("bootstrap triangle %s at %v, %v, %v", dbg.Boundary(h), points[0], points[1], points[2])
}

// Is this one of the synthetic vertices?
func (tr *Triangulator) IsBoundary(p *Point) bool {
	for _, v := range tr.boundary {
		if v.Point == p {
			return true
		}
	}
	return false
}

func (tr *Triangulator) BoundaryPoints() [3]*Point {
	return [3]*Point{tr.boundary[0].Point, tr.boundary[1].Point, tr.boundary[2].Point}
}
