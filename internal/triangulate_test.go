package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Triangulate the region enclosed by the rings, and check it against the
// rings themselves.
func triangulateRegion(t *testing.T, rings Rings) TriangleList {
	points := rings.Points()
	constraints := rings.Edges()
	result := triangulate(t, points, Options{Constraints: constraints, Trim: TrimRegion})
	AssertValidTriangulation(t, points, constraints, result)
	validateRegionBySampling(t, result, rings)
	assert.InEpsilon(t, rings.Area(), result.Area(), 1e-9)
	return result
}

// Region with nested rings, where the even-odd area is the alternating sum
// rather than the plain sum.
func nestedArea(rings Rings) float64 {
	var area float64
	for i, ring := range rings {
		ringArea := Rings{ring}.Area()
		if i%2 == 0 {
			area += ringArea
		} else {
			area -= ringArea
		}
	}
	return area
}

func TestTriangulate_Spiral(t *testing.T) {
	shape := LoadFixture("spiral")
	triangulateRegion(t, shape)
}

func TestTriangulate_LShape(t *testing.T) {
	shape := LoadFixture("lshape")
	result := triangulateRegion(t, shape)
	assert.Len(t, result, 4)
}

func TestTriangulate_Comb(t *testing.T) {
	shape := LoadFixture("comb")
	result := triangulateRegion(t, shape)
	assert.Len(t, result, len(shape[0])-2)
}

func TestTriangulate_Star(t *testing.T) {
	shape := SimpleStar()
	result := triangulateRegion(t, shape)
	assert.Len(t, result, 8)
}

// The remaining shapes have holes, so the area check is done separately.

func triangulateNested(t *testing.T, rings Rings) TriangleList {
	points := rings.Points()
	constraints := rings.Edges()
	result := triangulate(t, points, Options{Constraints: constraints, Trim: TrimRegion})
	AssertValidTriangulation(t, points, constraints, result)
	validateRegionBySampling(t, result, rings)
	return result
}

func TestTriangulate_Frame(t *testing.T) {
	shape := LoadFixture("frame")
	require.Len(t, shape, 2)
	result := triangulateNested(t, shape)
	assert.InDelta(t, 84.0, result.Area(), Epsilon)
	assert.Len(t, result, 8)
}

func TestTriangulate_SquareWithHole(t *testing.T) {
	shape := SquareWithHole()
	result := triangulateNested(t, shape)
	assert.InDelta(t, nestedArea(shape), result.Area(), Epsilon)
	assert.False(t, result.ContainsPoint(&Point{0, 0}))
}

func TestTriangulate_StarOutline(t *testing.T) {
	shape := StarOutline()
	result := triangulateNested(t, shape)
	assert.InDelta(t, nestedArea(shape), result.Area(), 1e-6)
}

func TestTriangulate_StarStripes(t *testing.T) {
	shape := StarStripes()
	result := triangulateNested(t, shape)
	assert.InDelta(t, nestedArea(shape), result.Area(), 1e-6)
}

func TestTriangulate_MultiLayeredHoles(t *testing.T) {
	shape := MultiLayeredHoles()
	result := triangulateNested(t, shape)
	// The holes and islands are disjoint from each other, so each hole's
	// area is removed and each island's is added back.
	expected := Rings{shape[0]}.Area()
	for i := 1; i < len(shape); i += 2 {
		expected -= Rings{shape[i]}.Area()
		expected += Rings{shape[i+1]}.Area()
	}
	assert.InDelta(t, expected, result.Area(), 1e-6)
}
