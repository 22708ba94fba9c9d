package cdt

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Smoke tests. The internals are already tested.
func TestTriangulate(t *testing.T) {
	points := []*Point{
		{X: 1, Y: -1},
		{X: 1, Y: 1},
		{X: -1, Y: 1},
		{X: -1, Y: -1},
	}

	triangles, err := Triangulate(points)
	assert.NoError(t, err)
	assert.Len(t, triangles, 2)
}

func TestTriangulate_Degenerate(t *testing.T) {
	points := []*Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 0}}
	triangles, err := Triangulate(points)
	assert.True(t, errors.Is(err, ErrDegenerateGeometry))
	assert.Nil(t, triangles)
}

func TestTriangulateConstrained(t *testing.T) {
	a, b, c, d := &Point{X: 0, Y: 0}, &Point{X: 4, Y: 1}, &Point{X: 8, Y: 0}, &Point{X: 4, Y: -1}
	// The Delaunay diagonal of this flat rhombus is b-d, so a-c has to be
	// forced in.
	triangles, err := TriangulateConstrained([]*Point{a, b, c, d}, []Edge{{A: a, B: c}})
	require.NoError(t, err)
	require.Len(t, triangles, 2)
	for _, tri := range triangles {
		assert.True(t, tri.HasCorner(a) && tri.HasCorner(c), "%v does not use the constrained edge", tri)
	}

	_, err = TriangulateConstrained([]*Point{a, b, c, d}, []Edge{{A: a, B: c}, {A: b, B: d}})
	assert.True(t, errors.Is(err, ErrInvalidConstraint))
}

func TestTriangulatePolygon(t *testing.T) {
	outer := []*Point{{X: 0, Y: 0}, {X: 0, Y: 10}, {X: 10, Y: 10}, {X: 10, Y: 0}}
	hole := []*Point{{X: 3, Y: 3}, {X: 7, Y: 3}, {X: 7, Y: 7}, {X: 3, Y: 7}}

	triangles, edges, err := TriangulatePolygon(outer, hole)
	require.NoError(t, err)
	assert.Len(t, triangles, 8)
	assert.Len(t, edges, 8)

	var area float64
	for _, tri := range triangles {
		area += tri.Area()
	}
	assert.InDelta(t, 84.0, area, 1e-9)

	t.Run("short ring", func(t *testing.T) {
		_, _, err := TriangulatePolygon(outer, hole[:2])
		assert.True(t, errors.Is(err, ErrDegenerateGeometry))
	})

	t.Run("shared point", func(t *testing.T) {
		// Two triangles touching at a corner
		shared := &Point{X: 5, Y: 5}
		left := []*Point{{X: 0, Y: 0}, {X: 0, Y: 10}, shared}
		right := []*Point{shared, {X: 10, Y: 10}, {X: 10, Y: 0}}
		triangles, _, err := TriangulatePolygon(left, right)
		require.NoError(t, err)
		assert.Len(t, triangles, 2)
	})
}
