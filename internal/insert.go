package internal

import "github.com/osuushi/cdt/internal/dbg"

// Insert a vertex into the mesh. The vertex must still be remaining in the
// triangle its Container points at. That triangle is split into three.
// Child i is (c[i], c[i+1], v), so v is always corner 2 and the child's edge
// opposite v is the parent's edge opposite c[i+2].
func (tr *Triangulator) InsertPoint(v *Vertex) {
	// The parent splits into three children around v:
	/*
		           c0
		          /|\
		         / | \
		        / 2|0 \
		       /  /v\  \
		      / /  1  \ \
		     c2---------c1
	*/
	m := tr.mesh
	parentHandle := v.Container
	parent := m.Get(parentHandle)
	parent.RemoveRemaining(v)
	if !IsClockwise(parent.Position(0), parent.Position(1), parent.Position(2)) {
		assertf("container %v %s of %v is not clockwise", parentHandle, describe(parent), v)
	}

	corners := parent.Corners
	parentAdjacent := parent.Adjacent
	remaining := parent.Remaining

	children := [3]TriangleHandle{
		m.InsertTriangle(corners[0], corners[1], v),
		m.InsertTriangle(corners[1], corners[2], v),
		m.InsertTriangle(corners[2], corners[0], v),
	}

	// Children are adjacent to each other around v, and each one takes over
	// one of the parent's outer neighbors.
	for i := range children {
		other := parentAdjacent[CircularIndex(i+2, 3)]
		m.SetAdjacent(children[i], 0, children[CircularIndex(i+1, 3)])
		m.SetAdjacent(children[i], 1, children[CircularIndex(i+2, 3)])
		m.SetAdjacent(children[i], 2, other)
		m.ReplaceNeighbor(other, parentHandle, children[i])
	}

	// Move each remaining vertex into the child whose wedge around v contains it.
	for _, r := range remaining {
		var target TriangleHandle
		switch {
		case PointInWedge(r.Point, v.Point, corners[0].Point, corners[1].Point):
			target = children[0]
		case PointInWedge(r.Point, v.Point, corners[1].Point, corners[2].Point):
			target = children[1]
		default:
			target = children[2]
		}
		transferVertex(m, r, target)
	}

	// v is a corner now, not a remaining vertex
	v.Container = NoTriangle
	m.Erase(parentHandle)
	dbg.Printf("split %s into %s, %s, %s at %v",
		dbg.Condemned(parentHandle), dbg.Live(children[0]), dbg.Live(children[1]), dbg.Live(children[2]), v)

	// Only the parent's outer edges can violate the Delaunay condition. Those
	// are opposite v in each child.
	for _, child := range children {
		if m.IsCondemned(child) {
			continue
		}
		if neighbor := m.Adjacent(child, 2); neighbor.Valid() {
			tr.Repair(child, neighbor)
		}
	}
}

// Make the vertex remaining in the target triangle. The caller is responsible
// for dropping it from its old container.
func transferVertex(m *Mesh, v *Vertex, target TriangleHandle) {
	v.Container = target
	t := m.Get(target)
	t.Remaining = append(t.Remaining, v)
}
