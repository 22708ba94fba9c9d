package internal

import "github.com/osuushi/cdt/internal/dbg"

// Force every constrained edge into the mesh. Insertion produces most of them
// already, since repair flips away any edge crossing a constraint whenever
// the quad around it is convex. Each constraint that is still missing is
// recovered by flipping the edges crossing it, and afterwards the mesh is
// brought back to the Delaunay condition everywhere except across
// constrained edges.
func (tr *Triangulator) RecoverConstraints() {
	if len(tr.constraints) == 0 {
		return
	}

	present := tr.meshEdges()
	recovered := 0
	for _, e := range tr.constraintOrder {
		if present.Contains(e.A, e.B) {
			continue
		}
		recovered += tr.recoverConstraint(e)
		present = tr.meshEdges()
		if !present.Contains(e.A, e.B) {
			constraintf("constrained edge %v could not be recovered, it passes through another point", e)
		}
	}

	if recovered > 0 {
		restored := tr.repairUntilStable(func(a, b *Vertex) bool {
			return !tr.constraints.Contains(a.Point, b.Point)
		})
		dbg.Printf("recovered constraints with %d flips, restored with %d more", recovered, restored)
	}
}

type vertexPair [2]*Vertex

// Flip the edges crossing e until none are left. Edges are taken from a
// queue. An edge whose quad is not convex can't be flipped yet, and goes to
// the back of the queue, as does a new diagonal that still crosses e. There
// is always some crossing edge with a convex quad, so this makes progress.
// Returns the number of flips.
func (tr *Triangulator) recoverConstraint(e Edge) int {
	m := tr.mesh
	queue := tr.crossingEdges(e)
	limit := 10*(len(queue)+1)*(len(queue)+1) + m.Len()
	flips := 0
	for steps := 0; len(queue) > 0; steps++ {
		if steps > limit {
			constraintf("gave up recovering constrained edge %v", e)
		}
		edge := queue[0]
		queue = queue[1:]

		firstHandle, secondHandle, ok := tr.findEdge(edge[0], edge[1])
		if !ok {
			continue
		}
		if tr.constraints.Contains(edge[0].Point, edge[1].Point) {
			constraintf("constrained edges %v and %v-%v cross", e, edge[0], edge[1])
		}

		first := m.Get(firstHandle)
		second := m.Get(secondHandle)
		arr := arrangeCorners(first, second)
		sc1 := first.Corners[arr.shared1.first]
		sc2 := first.Corners[arr.shared2.first]
		dcf := first.Corners[arr.disjoint.first]
		dcs := second.Corners[arr.disjoint.second]
		if !convexQuad(sc1, sc2, dcf, dcs) {
			queue = append(queue, edge)
			continue
		}

		tr.flip(firstHandle, secondHandle, arr)
		m.Sweep()
		flips++
		if SegmentsIntersect(Edge{dcf.Point, dcs.Point}, e) {
			queue = append(queue, vertexPair{dcf, dcs})
		}
	}
	return flips
}

// Every mesh edge properly crossing e, in arena order.
func (tr *Triangulator) crossingEdges(e Edge) []vertexPair {
	seen := make(EdgeSet)
	var crossing []vertexPair
	for _, h := range tr.mesh.Handles() {
		t := tr.mesh.Get(h)
		if t.Condemned {
			continue
		}
		for i := 0; i < 3; i++ {
			a, b := t.Corners[i], t.Corners[CircularIndex(i+1, 3)]
			if seen.Contains(a.Point, b.Point) {
				continue
			}
			seen.Add(a.Point, b.Point)
			if SegmentsIntersect(Edge{a.Point, b.Point}, e) {
				crossing = append(crossing, vertexPair{a, b})
			}
		}
	}
	return crossing
}

// Find the two live triangles sharing the edge a-b.
func (tr *Triangulator) findEdge(a, b *Vertex) (TriangleHandle, TriangleHandle, bool) {
	for _, h := range tr.mesh.Handles() {
		t := tr.mesh.Get(h)
		if t.Condemned {
			continue
		}
		i, j := t.IndexOf(a), t.IndexOf(b)
		if i < 0 || j < 0 {
			continue
		}
		if neighbor := t.Adjacent[3-i-j]; neighbor.Valid() {
			return h, neighbor, true
		}
	}
	return NoTriangle, NoTriangle, false
}

// Repair every adjacent pair whose shared edge is suspect, over and over until
// a whole round flips nothing. Returns the number of flips.
func (tr *Triangulator) repairUntilStable(suspect func(a, b *Vertex) bool) int {
	m := tr.mesh
	flipsBefore := tr.flips
	maxRounds := m.Len()*m.Len() + 1
	for round := 0; round < maxRounds; round++ {
		flipped := false
		for _, h := range m.Handles() {
			if m.IsCondemned(h) {
				continue
			}
			t := m.Get(h)
			for i, neighbor := range t.Adjacent {
				if !neighbor.Valid() {
					continue
				}
				if a, b := t.EdgeOpposite(i); !suspect(a, b) {
					continue
				}
				if tr.Repair(h, neighbor) {
					flipped = true
					// t is condemned now
					break
				}
			}
		}
		m.Sweep()
		if !flipped {
			break
		}
	}
	return tr.flips - flipsBefore
}
