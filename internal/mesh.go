package internal

import (
	"fmt"

	"github.com/osuushi/cdt/internal/dbg"
	"github.com/pkg/errors"
)

// The mesh is an arena owning every triangle. Triangles refer to each other
// (adjacency) and vertices refer to triangles (their container) through
// handles rather than pointers. A handle stays valid across insertions of
// other triangles, and becomes stale as soon as its triangle is erased. Slots
// are recycled, so a handle carries the generation of the slot it was issued
// for, and a stale handle is detected by a generation mismatch.

type TriangleHandle struct {
	index      int
	generation uint32
}

// The "no neighbor" handle. Adjacency slots on the outside of the mesh, and
// vertices that are not inside any triangle, hold this.
var NoTriangle = TriangleHandle{index: -1}

func (h TriangleHandle) Valid() bool {
	return h.index >= 0
}

func (h TriangleHandle) String() string {
	if !h.Valid() {
		return dbg.Name(nil)
	}
	return dbg.Name(h)
}

// A triangle as stored in the mesh. Corners are clockwise, and Adjacent[i] is
// the triangle on the other side of the edge opposite Corners[i].
type MeshTriangle struct {
	Corners  [3]*Vertex
	Adjacent [3]TriangleHandle
	// Vertices that are not inserted yet, but lie inside this triangle
	Remaining []*Vertex
	// Superseded by a split or flip, and waiting to be swept
	Condemned bool
}

func (t *MeshTriangle) Position(i int) *Point {
	return t.Corners[CircularIndex(i, 3)].Point
}

// Index of the corner holding this vertex, or -1
func (t *MeshTriangle) IndexOf(v *Vertex) int {
	for i, corner := range t.Corners {
		if corner == v {
			return i
		}
	}
	return -1
}

func (t *MeshTriangle) HasBoundaryCorner() bool {
	for _, corner := range t.Corners {
		if corner.Boundary {
			return true
		}
	}
	return false
}

// The two endpoints of the edge opposite corner i, in clockwise order.
func (t *MeshTriangle) EdgeOpposite(i int) (*Vertex, *Vertex) {
	return t.Corners[CircularIndex(i+1, 3)], t.Corners[CircularIndex(i+2, 3)]
}

func (t *MeshTriangle) RemoveRemaining(v *Vertex) {
	for i, remaining := range t.Remaining {
		if remaining == v {
			last := len(t.Remaining) - 1
			t.Remaining[i] = t.Remaining[last]
			t.Remaining = t.Remaining[:last]
			return
		}
	}
	assertf("vertex %v is not remaining in its container", v)
}

type meshSlot struct {
	triangle   MeshTriangle
	generation uint32
	occupied   bool
}

type Mesh struct {
	slots []*meshSlot
	free  []int
	live  int
	// Condemned since the last sweep
	condemned []TriangleHandle
}

func NewMesh() *Mesh {
	return &Mesh{}
}

// Add a triangle with no neighbors and return its handle.
func (m *Mesh) InsertTriangle(c0, c1, c2 *Vertex) TriangleHandle {
	var index int
	if n := len(m.free); n > 0 {
		index = m.free[n-1]
		m.free = m.free[:n-1]
	} else {
		index = len(m.slots)
		m.slots = append(m.slots, &meshSlot{})
	}

	slot := m.slots[index]
	slot.occupied = true
	slot.triangle = MeshTriangle{
		Corners:  [3]*Vertex{c0, c1, c2},
		Adjacent: [3]TriangleHandle{NoTriangle, NoTriangle, NoTriangle},
	}
	m.live++
	return TriangleHandle{index: index, generation: slot.generation}
}

// Physically remove a triangle. The caller must already have rewired every
// adjacency that pointed at it.
func (m *Mesh) Erase(h TriangleHandle) {
	if !m.Exists(h) {
		assertf("erasing stale triangle handle %v", h)
	}
	slot := m.slots[h.index]
	slot.occupied = false
	slot.generation++
	slot.triangle = MeshTriangle{}
	m.free = append(m.free, h.index)
	m.live--
}

// Does the handle refer to a triangle that has not been erased? Condemned
// triangles still exist.
func (m *Mesh) Exists(h TriangleHandle) bool {
	if h.index < 0 || h.index >= len(m.slots) {
		return false
	}
	slot := m.slots[h.index]
	return slot.occupied && slot.generation == h.generation
}

// Access a triangle. The handle must exist.
func (m *Mesh) Get(h TriangleHandle) *MeshTriangle {
	if !m.Exists(h) {
		assertf("access through stale triangle handle %v", h)
	}
	return &m.slots[h.index].triangle
}

func (m *Mesh) Adjacent(h TriangleHandle, slot int) TriangleHandle {
	return m.Get(h).Adjacent[slot]
}

func (m *Mesh) SetAdjacent(h TriangleHandle, slot int, neighbor TriangleHandle) {
	m.Get(h).Adjacent[slot] = neighbor
}

// Replace other's back reference to oldTriangle with newTriangle (which may be
// NoTriangle). If other is NoTriangle, there is nothing to update.
func (m *Mesh) ReplaceNeighbor(other, oldTriangle, newTriangle TriangleHandle) {
	if !other.Valid() {
		return
	}
	t := m.Get(other)
	for i, neighbor := range t.Adjacent {
		if neighbor == oldTriangle {
			t.Adjacent[i] = newTriangle
			return
		}
	}
	assertf("triangle %v is not adjacent to %v", other, oldTriangle)
}

func (m *Mesh) Condemn(h TriangleHandle) {
	t := m.Get(h)
	if !t.Condemned {
		t.Condemned = true
		m.condemned = append(m.condemned, h)
	}
}

// True for condemned triangles, and for handles whose triangle is gone.
func (m *Mesh) IsCondemned(h TriangleHandle) bool {
	return !m.Exists(h) || m.slots[h.index].triangle.Condemned
}

// Erase every condemned triangle, and return how many there were. This only
// visits triangles condemned since the last sweep, not the whole arena.
func (m *Mesh) Sweep() int {
	count := 0
	for _, h := range m.condemned {
		if m.Exists(h) {
			m.Erase(h)
			count++
		}
	}
	m.condemned = m.condemned[:0]
	return count
}

// Handles of all triangles that have not been erased, in arena order.
func (m *Mesh) Handles() []TriangleHandle {
	handles := make([]TriangleHandle, 0, m.live)
	for index, slot := range m.slots {
		if slot.occupied {
			handles = append(handles, TriangleHandle{index: index, generation: slot.generation})
		}
	}
	return handles
}

// Number of triangles that have not been erased.
func (m *Mesh) Len() int {
	return m.live
}

// Check the structural invariants of the mesh:
// 1. Every live triangle is clockwise.
// 2. Adjacency is symmetric, and never points at a condemned or erased triangle.
// 3. Adjacent triangles share the two corners of the edge between them.
// 4. Every remaining vertex points back at the triangle holding it.
func (m *Mesh) Validate() error {
	for _, h := range m.Handles() {
		t := m.Get(h)
		if t.Condemned {
			continue
		}
		if !IsClockwise(t.Position(0), t.Position(1), t.Position(2)) {
			return errors.Errorf("triangle %v %s is not clockwise", h, describe(t))
		}
		for i, neighbor := range t.Adjacent {
			if !neighbor.Valid() {
				continue
			}
			if m.IsCondemned(neighbor) {
				return errors.Errorf("triangle %v points at dead neighbor %v", h, neighbor)
			}
			other := m.Get(neighbor)
			backReference := false
			for _, back := range other.Adjacent {
				if back == h {
					backReference = true
				}
			}
			if !backReference {
				return errors.Errorf("neighbor %v of triangle %v does not point back", neighbor, h)
			}
			a, b := t.EdgeOpposite(i)
			if other.IndexOf(a) < 0 || other.IndexOf(b) < 0 {
				return errors.Errorf("triangles %v and %v are adjacent but do not share edge %v-%v", h, neighbor, a, b)
			}
		}
		for _, v := range t.Remaining {
			if v.Container != h {
				return errors.Errorf("remaining vertex %v of %v points at %v", v, h, v.Container)
			}
		}
	}
	return nil
}

func describe(t *MeshTriangle) string {
	return fmt.Sprintf("<%v, %v, %v>", t.Position(0), t.Position(1), t.Position(2))
}
