package internal

import (
	"github.com/osuushi/cdt/internal/dbg"
	"github.com/pkg/errors"
)

// The triangulation runs in four stages, all synchronous and owning the mesh
// exclusively:
//
// 1. Bootstrap: one huge triangle of synthetic boundary vertices containing
// every input point.
// 2. Insertion: every vertex, in canonical order, splits the triangle
// containing it, followed by local Delaunay repair.
// 3. Constraint recovery: any constrained edge that insertion did not produce
// is forced by flipping the edges that cross it.
// 4. Trim: triangles outside the domain are removed.

type TrimMode int

const (
	// Keep the convex hull of the input: drop every triangle that has a
	// boundary vertex as a corner.
	TrimHull TrimMode = iota
	// Keep the region enclosed by the constrained edges: flood fill from the
	// outside, crossing constrained edges flips between outside and inside.
	TrimRegion
)

func (mode TrimMode) String() string {
	switch mode {
	case TrimHull:
		return "hull"
	case TrimRegion:
		return "region"
	}
	return "unknown"
}

type Options struct {
	Constraints []Edge
	Trim        TrimMode
}

type Triangulator struct {
	mesh *Mesh
	// User vertices in insertion order
	vertices    []*Vertex
	boundary    [3]*Vertex
	constraints EdgeSet
	// The same constraints, deduplicated, in the order they were given
	constraintOrder []Edge
	trim            TrimMode

	flips int
}

type trianglePair struct {
	first, second TriangleHandle
}

func NewTriangulator(points []*Point, options Options) (*Triangulator, error) {
	vertices, err := newVertices(points)
	if err != nil {
		return nil, err
	}

	known := make(PointSet, len(points))
	for _, p := range points {
		known.Add(p)
	}
	for i, e := range options.Constraints {
		if e.A == nil || e.B == nil {
			return nil, errors.Wrapf(ErrInvalidConstraint, "constrained edge %d has a nil endpoint", i)
		}
		if e.A == e.B {
			return nil, errors.Wrapf(ErrInvalidConstraint, "constrained edge %d connects %v to itself", i, e.A)
		}
		if !known.Contains(e.A) || !known.Contains(e.B) {
			return nil, errors.Wrapf(ErrInvalidConstraint, "constrained edge %v references a point that is not in the input", e)
		}
	}

	tr := &Triangulator{
		mesh:        NewMesh(),
		vertices:    vertices,
		constraints: make(EdgeSet, len(options.Constraints)),
		trim:        options.Trim,
	}
	for _, e := range options.Constraints {
		if !tr.constraints.Contains(e.A, e.B) {
			tr.constraints.Add(e.A, e.B)
			tr.constraintOrder = append(tr.constraintOrder, e)
		}
	}
	tr.bootstrap()
	return tr, nil
}

func (tr *Triangulator) Mesh() *Mesh {
	return tr.mesh
}

// Run every stage and return the surviving triangles.
func (tr *Triangulator) Run() TriangleList {
	dbg.Printf(dbg.Heading("Inserting %d points"), len(tr.vertices))
	tr.InsertAll()
	dbg.Printf(dbg.Heading("Recovering %d constraints"), len(tr.constraintOrder))
	tr.RecoverConstraints()
	dbg.Printf(dbg.Heading("Trimming (%s)"), tr.trim)
	tr.Trim()
	return tr.Result()
}

func (tr *Triangulator) InsertAll() {
	for _, v := range tr.vertices {
		tr.InsertPoint(v)
		// Remove currently condemned triangles. This can't happen during repair,
		// since the repair worklist still polls their flags.
		swept := tr.mesh.Sweep()
		dbg.Printf("inserted %s, swept %d, %d triangles", dbg.Live(v.Point), swept, tr.mesh.Len())

		if dbg.Enabled {
			if err := tr.mesh.Validate(); err != nil {
				assertf("after inserting %v: %v", v, err)
			}
		}
		if dbg.DrawEnabled {
			tr.mesh.dbgDraw(50)
		}
	}
}

// Convert the live mesh into output triangles, with neighbors linked.
func (tr *Triangulator) Result() TriangleList {
	handles := tr.mesh.Handles()
	converted := make(map[TriangleHandle]*Triangle, len(handles))
	result := make(TriangleList, 0, len(handles))
	for _, h := range handles {
		t := tr.mesh.Get(h)
		if t.Condemned {
			continue
		}
		if t.HasBoundaryCorner() {
			assertf("triangle %v %s survived trimming with a boundary corner", h, describe(t))
		}
		triangle := &Triangle{A: t.Position(0), B: t.Position(1), C: t.Position(2)}
		converted[h] = triangle
		result = append(result, triangle)
	}

	for h, triangle := range converted {
		for i, neighbor := range tr.mesh.Get(h).Adjacent {
			// Missing from the map for NoTriangle, which leaves the slot nil
			triangle.Neighbors[i] = converted[neighbor]
		}
	}
	return result
}

func (tr *Triangulator) meshEdges() EdgeSet {
	edges := make(EdgeSet)
	for _, h := range tr.mesh.Handles() {
		t := tr.mesh.Get(h)
		if t.Condemned {
			continue
		}
		for i := 0; i < 3; i++ {
			edges.Add(t.Position(i), t.Position(i+1))
		}
	}
	return edges
}
