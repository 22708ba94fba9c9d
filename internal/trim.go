package internal

import "github.com/osuushi/cdt/internal/dbg"

// Remove the triangles outside the domain, according to the trim mode. The
// survivors' adjacency slots facing removed triangles are cleared, so the
// mesh stays consistent.
func (tr *Triangulator) Trim() {
	m := tr.mesh
	switch tr.trim {
	case TrimHull:
		for _, h := range m.Handles() {
			if m.Get(h).HasBoundaryCorner() {
				m.Condemn(h)
			}
		}
	case TrimRegion:
		tr.condemnOutside()
	default:
		fatalf("unknown trim mode %v", tr.trim)
	}

	for _, h := range m.Handles() {
		if !m.IsCondemned(h) {
			continue
		}
		for _, neighbor := range m.Get(h).Adjacent {
			if neighbor.Valid() && !m.IsCondemned(neighbor) {
				m.ReplaceNeighbor(neighbor, h, NoTriangle)
			}
		}
	}
	removed := m.Sweep()
	dbg.Printf("trimmed %d triangles (%v), %d left", removed, tr.trim, m.Len())
}

// Flood fill the mesh starting from a triangle touching the bootstrap
// triangle's corners, which is certainly outside. Crossing a constrained edge
// goes one level deeper into the nesting of rings. Even depths are outside
// (the exterior, or a hole), odd depths are inside, and even depths get
// condemned.
//
// The fill proceeds one depth at a time, so that a triangle reachable at a
// shallower depth is never assigned a deeper one.
func (tr *Triangulator) condemnOutside() {
	m := tr.mesh
	start := NoTriangle
	for _, h := range m.Handles() {
		if m.Get(h).HasBoundaryCorner() {
			start = h
			break
		}
	}
	if !start.Valid() {
		assertf("no triangle touches the boundary")
	}

	depths := map[TriangleHandle]int{start: 0}
	current := HandleStack{start}
	for depth := 0; !current.Empty(); depth++ {
		var deeper HandleStack
		for !current.Empty() {
			h := current.Pop()
			t := m.Get(h)
			for i, neighbor := range t.Adjacent {
				if !neighbor.Valid() {
					continue
				}
				if _, seen := depths[neighbor]; seen {
					continue
				}
				a, b := t.EdgeOpposite(i)
				if tr.constraints.Contains(a.Point, b.Point) {
					deeper.Push(neighbor)
					continue
				}
				depths[neighbor] = depth
				current.Push(neighbor)
			}
		}

		for !deeper.Empty() {
			h := deeper.Pop()
			if _, seen := depths[h]; seen {
				continue
			}
			depths[h] = depth + 1
			current.Push(h)
		}
	}

	for h, depth := range depths {
		if depth%2 == 0 {
			m.Condemn(h)
		}
	}
}
