package internal

import "github.com/osuushi/cdt/internal/dbg"

// Index of the same vertex in both triangles of an adjacent pair.
type cornerPair struct {
	first, second int
}

// How two adjacent triangles line up. shared1 and shared2 are the corners of
// the common edge, ordered so that shared1 -> shared2 -> disjoint.first is
// clockwise in the first triangle. disjoint holds the corner of each triangle
// that is not on the common edge.
type arrangement struct {
	shared1, shared2 cornerPair
	disjoint         cornerPair
}

// Line up two adjacent triangles. Since both triangles are clockwise, the
// shared edge runs in opposite directions in each, so for the right rotation
// j, corner (j+i)%3 of the first matches corner 2-i of the second for exactly
// two values of i.
func arrangeCorners(first, second *MeshTriangle) arrangement {
	for j := 0; j < 3; j++ {
		var matches [3]bool
		matchCount := 0
		for i := 0; i < 3; i++ {
			matches[i] = first.Corners[(j+i)%3] == second.Corners[2-i]
			if matches[i] {
				matchCount++
			}
		}
		if matchCount != 2 {
			continue
		}

		var result arrangement
		sharedFound := false
		for i := 0; i < 3; i++ {
			pair := cornerPair{first: (j + i) % 3, second: 2 - i}
			switch {
			case !matches[i]:
				result.disjoint = pair
			case !sharedFound:
				result.shared1 = pair
				sharedFound = true
			default:
				result.shared2 = pair
			}
		}
		// Corners are stored in clockwise order, so this is decided by index.
		// Asking the orientation predicate instead would be ambiguous for flat
		// triangles.
		if CircularIndex(result.shared1.first+1, 3) != result.shared2.first {
			result.shared1, result.shared2 = result.shared2, result.shared1
		}
		return result
	}
	assertf("triangles %s and %s are not adjacent", describe(first), describe(second))
	panic("unreachable")
}

// Restore the Delaunay condition starting from one adjacent pair. Every flip
// makes the four outer edges of the flipped quad suspect, so those pairs are
// queued in turn. Pairs whose triangles were superseded before their turn
// are skipped. Returns whether anything was flipped.
func (tr *Triangulator) Repair(first, second TriangleHandle) bool {
	flipped := false
	worklist := []trianglePair{{first, second}}
	for len(worklist) > 0 {
		last := len(worklist) - 1
		pair := worklist[last]
		worklist = worklist[:last]

		newFirst, newSecond, ok := tr.ensureLocalDelaunay(pair.first, pair.second)
		if !ok {
			continue
		}
		flipped = true
		for _, h := range [2]TriangleHandle{newFirst, newSecond} {
			for _, slot := range [2]int{1, 2} {
				if neighbor := tr.mesh.Adjacent(h, slot); neighbor.Valid() {
					worklist = append(worklist, trianglePair{h, neighbor})
				}
			}
		}
	}
	return flipped
}

// Flip the shared edge of two adjacent triangles if the pair violates the
// Delaunay condition, or if the shared edge is in the way of a constrained or
// boundary edge. Returns the two replacement triangles if a flip happened.
func (tr *Triangulator) ensureLocalDelaunay(firstHandle, secondHandle TriangleHandle) (TriangleHandle, TriangleHandle, bool) {
	m := tr.mesh
	if m.IsCondemned(firstHandle) || m.IsCondemned(secondHandle) {
		return NoTriangle, NoTriangle, false
	}
	first := m.Get(firstHandle)
	second := m.Get(secondHandle)
	arr := arrangeCorners(first, second)

	sc1 := first.Corners[arr.shared1.first]
	sc2 := first.Corners[arr.shared2.first]
	dcf := first.Corners[arr.disjoint.first]
	dcs := second.Corners[arr.disjoint.second]

	// An edge is enforced if it touches the bootstrap triangle's corners, or
	// crosses a constrained edge. Either way, it must end up in the mesh.
	disjointEnforced := dcf.Boundary || dcs.Boundary ||
		IntersectsAny(Edge{dcf.Point, dcs.Point}, tr.constraints)
	sharedEnforced := sc1.Boundary || sc2.Boundary ||
		IntersectsAny(Edge{sc1.Point, sc2.Point}, tr.constraints)

	switch {
	case disjointEnforced && !sharedEnforced:
		return NoTriangle, NoTriangle, false
	case sharedEnforced && !disjointEnforced:
		// Flipping a concave quad would create overlapping triangles
		if !convexQuad(sc1, sc2, dcf, dcs) {
			return NoTriangle, NoTriangle, false
		}
	default:
		if !violatesDelaunay(first, second, sc1, sc2, dcf, dcs) {
			return NoTriangle, NoTriangle, false
		}
	}

	newFirst, newSecond := tr.flip(firstHandle, secondHandle, arr)
	return newFirst, newSecond, true
}

// Can the diagonal sc1-sc2 be flipped to dcf-dcs? Only if the quad is strictly
// convex: sc1 and sc2 must lie strictly on opposite sides of the new diagonal.
func convexQuad(sc1, sc2, dcf, dcs *Vertex) bool {
	return IsCounterclockwise(dcf.Point, dcs.Point, sc1.Point) &&
		IsCounterclockwise(dcs.Point, dcf.Point, sc2.Point)
}

// The symmetric in-circle test: each triangle's circumcircle must contain the
// other's disjoint corner strictly. Requiring both makes the decision stable
// under rounding, so the pair can't be flipped back and forth.
func violatesDelaunay(first, second *MeshTriangle, sc1, sc2, dcf, dcs *Vertex) bool {
	firstCircle, firstOk := Circumcircle(first.Position(0), first.Position(1), first.Position(2))
	secondCircle, secondOk := Circumcircle(second.Position(0), second.Position(1), second.Position(2))
	if !firstOk || !secondOk {
		// A flat triangle, left behind when a vertex landed exactly on an edge.
		// It has to go if its disjoint corner lies inside the shared edge.
		return (!firstOk && betweenOnSegment(dcf.Point, sc1.Point, sc2.Point)) ||
			(!secondOk && betweenOnSegment(dcs.Point, sc1.Point, sc2.Point))
	}
	return firstCircle.Contains(dcs.Point) && secondCircle.Contains(dcf.Point)
}

// Replace the pair with the two triangles on the other diagonal of their quad.
// Both old triangles are condemned rather than erased, so that queued pairs
// referring to them can be recognized and skipped.
func (tr *Triangulator) flip(firstHandle, secondHandle TriangleHandle, arr arrangement) (TriangleHandle, TriangleHandle) {
	// The shared diagonal sc1-sc2 is replaced by dcf-dcs:
	/*
		        sc1                       sc1
		       / | \                     /   \
		      /  |  \                   / nf  \
		   dcf first dcs     ->      dcf-------dcs
		      \  |second                \ ns  /
		       \ | /                     \   /
		        sc2                       sc2
	*/
	m := tr.mesh
	first := m.Get(firstHandle)
	second := m.Get(secondHandle)

	sc1 := first.Corners[arr.shared1.first]
	sc2 := first.Corners[arr.shared2.first]
	dcf := first.Corners[arr.disjoint.first]
	dcs := second.Corners[arr.disjoint.second]

	newFirst := m.InsertTriangle(sc1, dcs, dcf)
	newSecond := m.InsertTriangle(sc2, dcf, dcs)
	dbg.Printf("flip %s/%s -> %s/%s", dbg.Condemned(firstHandle), dbg.Condemned(secondHandle), dbg.Live(newFirst), dbg.Live(newSecond))

	// The new diagonal splits the remaining vertices of both old triangles.
	for _, old := range [2]*MeshTriangle{first, second} {
		for _, v := range old.Remaining {
			if PointLeftOf(v.Point, dcf.Point, dcs.Point) {
				transferVertex(m, v, newFirst)
			} else {
				transferVertex(m, v, newSecond)
			}
		}
		old.Remaining = nil
	}

	// Each outer edge of the quad is opposite one shared corner in an old
	// triangle, and opposite one disjoint corner in a new triangle.
	tr.moveAdjacency(firstHandle, arr.shared1.first, newSecond, 2)
	tr.moveAdjacency(firstHandle, arr.shared2.first, newFirst, 1)
	tr.moveAdjacency(secondHandle, arr.shared1.second, newSecond, 1)
	tr.moveAdjacency(secondHandle, arr.shared2.second, newFirst, 2)
	m.SetAdjacent(newFirst, 0, newSecond)
	m.SetAdjacent(newSecond, 0, newFirst)

	m.Condemn(firstHandle)
	m.Condemn(secondHandle)
	tr.flips++
	return newFirst, newSecond
}

// Hand the neighbor across one edge of an old triangle over to a new one.
func (tr *Triangulator) moveAdjacency(oldHandle TriangleHandle, oldSlot int, newHandle TriangleHandle, newSlot int) {
	m := tr.mesh
	other := m.Adjacent(oldHandle, oldSlot)
	m.SetAdjacent(newHandle, newSlot, other)
	m.ReplaceNeighbor(other, oldHandle, newHandle)
}
