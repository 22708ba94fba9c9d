package internal

import (
	"embed"
	"log"
	"math"
	"math/rand"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures and outputs rings. This is not a full (or
// even correct) svg parser. It finds every polygon in the SVG and converts each
// one into a ring of points. If anything goes wrong, it panics.
//
// Fixtures are available by name in this fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

// A set of closed rings. Nested rings are holes, by even-odd.
type Rings [][]*Point

func LoadFixture(name string) Rings {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) == 0 {
		log.Fatalf("No polygons found in fixture %q", name)
	}

	var rings Rings
	for _, polygonEl := range polygons {
		pointStrings := strings.Fields(polygonEl.Attributes["points"])
		points := make([]*Point, 0, len(pointStrings))
		for _, pointString := range pointStrings {
			coordinates := strings.Split(pointString, ",")
			if len(coordinates) != 2 {
				log.Fatalf("Invalid point string %q", pointString)
			}
			x, err := strconv.ParseFloat(coordinates[0], 64)
			if err != nil {
				log.Fatalf("Invalid x value %q: %v", coordinates[0], err)
			}
			y, err := strconv.ParseFloat(coordinates[1], 64)
			if err != nil {
				log.Fatalf("Invalid y value %q: %v", coordinates[1], err)
			}
			points = append(points, &Point{x, y})
		}
		rings = append(rings, points)
	}
	return rings
}

func (rings Rings) Points() []*Point {
	var points []*Point
	for _, ring := range rings {
		points = append(points, ring...)
	}
	return points
}

// Each ring's consecutive points, closing back to the first.
func (rings Rings) Edges() []Edge {
	var edges []Edge
	for _, ring := range rings {
		for i, p := range ring {
			edges = append(edges, Edge{p, ring[CircularIndex(i+1, len(ring))]})
		}
	}
	return edges
}

// Even-odd containment, by casting a ray in the +x direction
func (rings Rings) ContainsPoint(p *Point) bool {
	inside := false
	for _, ring := range rings {
		for i, a := range ring {
			b := ring[CircularIndex(i+1, len(ring))]
			if (a.Y > p.Y) != (b.Y > p.Y) {
				x := a.X + (p.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
				if p.X < x {
					inside = !inside
				}
			}
		}
	}
	return inside
}

func (rings Rings) Area() float64 {
	var area float64
	for _, ring := range rings {
		var ringArea float64
		for i, a := range ring {
			b := ring[CircularIndex(i+1, len(ring))]
			ringArea += a.X*b.Y - b.X*a.Y
		}
		area += math.Abs(ringArea) / 2
	}
	return area
}

// Some ad hoc code specified fixtures

func star(x, y, outerRadius, innerRadius float64) []*Point {
	var points []*Point
	for i := 0; i < 10; i++ {
		radius := outerRadius
		if i%2 == 1 {
			radius = innerRadius
		}
		angle := 2 * math.Pi * float64(i) / 10
		points = append(points, &Point{X: x + radius*math.Cos(angle), Y: y + radius*math.Sin(angle)})
	}
	return points
}

func SimpleStar() Rings {
	return Rings{star(0, 0, 5, 2)}
}

func SquareWithHole() Rings {
	outerPoints := []*Point{
		{X: -5, Y: -5},
		{X: 5, Y: -5},
		{X: 5, Y: 5},
		{X: -5, Y: 5},
	}

	holePoints := []*Point{
		{X: -2, Y: -2},
		{X: -2, Y: 2},
		{X: 2, Y: 2},
		{X: 2, Y: -2},
	}

	return Rings{outerPoints, holePoints}
}

func StarOutline() Rings {
	const filledOuterRadius = 10
	const filledInnerRadius = 5
	return Rings{
		star(0, 0, filledOuterRadius, filledInnerRadius),
		star(0, 0, filledOuterRadius-2, filledInnerRadius-2),
	}
}

func StarStripes() Rings {
	// Multiple inset stars, each one a hole in the last
	var rings Rings
	const outerRadius = 10
	const n = 20
	var scale float64 = 1
	const indentScale = 0.7
	const gapScale = 0.9

	for i := 0; i < n; i++ {
		r := outerRadius * scale
		rings = append(rings, star(0, 0, r, r*indentScale))
		scale *= gapScale
	}
	return rings
}

func MultiLayeredHoles() Rings {
	// Multiple holes which contain filled shapes inside.
	return Rings{
		// Outer star
		star(0, 0, 10, 7),
		// Top hole and inner
		star(1.5, 5, 3, 2),
		star(1.5, 5, 2, 1),
		// Bottom hole and inner
		star(1.8, -5, 3, 2),
		star(1.8, -5, 2, 1),
		// Left hole and inner
		star(-3, 0, 4, 2),
		star(-3, 0, 3, 1),
	}
}

// A jittered grid of points. Every point is distinct, and the random source is
// seeded so failures can be reproduced.
func RandomCloud(seed int64, n int) []*Point {
	random := rand.New(rand.NewSource(seed))
	seen := make(map[Point]struct{}, n)
	points := make([]*Point, 0, n)
	for len(points) < n {
		p := Point{X: random.Float64()*200 - 100, Y: random.Float64()*200 - 100}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		points = append(points, &Point{p.X, p.Y})
	}
	return points
}

// Integer lattice, which is full of collinear and cocircular points.
func Grid(width, height int) []*Point {
	points := make([]*Point, 0, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			points = append(points, &Point{X: float64(x), Y: float64(y)})
		}
	}
	return points
}
