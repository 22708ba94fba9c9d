package main

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/cdt"
	geojson "github.com/paulmach/go.geojson"
	"github.com/pkg/errors"
)

// Everything read from an input file. Points with equal coordinates are
// merged into one, so that rings can share corners.
type Shape struct {
	// Loose points, not part of any ring or path
	Points []*cdt.Point
	// Closed rings. Their edges are constrained, and in polygon mode they bound
	// the region.
	Rings [][]*cdt.Point
	// Open polylines. Their edges are constrained.
	Paths [][]*cdt.Point

	interned map[cdt.Point]*cdt.Point
}

func newShape() *Shape {
	return &Shape{interned: make(map[cdt.Point]*cdt.Point)}
}

func (s *Shape) point(x, y float64) *cdt.Point {
	key := cdt.Point{X: x, Y: y}
	if p, ok := s.interned[key]; ok {
		return p
	}
	p := &cdt.Point{X: x, Y: y}
	s.interned[key] = p
	return p
}

// Every distinct point, in the order first seen.
func (s *Shape) AllPoints() []*cdt.Point {
	seen := make(map[*cdt.Point]bool)
	var points []*cdt.Point
	add := func(list []*cdt.Point) {
		for _, p := range list {
			if !seen[p] {
				seen[p] = true
				points = append(points, p)
			}
		}
	}
	add(s.Points)
	for _, ring := range s.Rings {
		add(ring)
	}
	for _, path := range s.Paths {
		add(path)
	}
	return points
}

// Edges of all rings and paths
func (s *Shape) Edges() []cdt.Edge {
	var edges []cdt.Edge
	for _, ring := range s.Rings {
		for i, p := range ring {
			edges = append(edges, cdt.Edge{A: p, B: ring[(i+1)%len(ring)]})
		}
	}
	for _, path := range s.Paths {
		for i := 1; i < len(path); i++ {
			edges = append(edges, cdt.Edge{A: path[i-1], B: path[i]})
		}
	}
	return edges
}

func readShape(in io.Reader, format string) (*Shape, error) {
	switch format {
	case "text":
		return readText(in)
	case "geojson":
		return readGeoJSON(in)
	case "svg":
		return readSVG(in)
	}
	return nil, errors.Errorf("unknown format %q", format)
}

func readText(in io.Reader) (*Shape, error) {
	shape := newShape()
	// Scan lines
	scanner := bufio.NewScanner(in)
	var ring []*cdt.Point
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())

		// If it's empty, and we collected any points, this is the end of the ring
		if line == "" {
			if len(ring) > 0 {
				shape.Rings = append(shape.Rings, ring)
				ring = nil
			}
			continue
		}

		x, y, err := parsePoint(strings.Fields(line))
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		ring = append(ring, shape.point(x, y))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	// Handle trailing ring if any
	if len(ring) > 0 {
		shape.Rings = append(shape.Rings, ring)
	}
	return shape, nil
}

func parsePoint(parts []string) (x, y float64, err error) {
	if len(parts) != 2 {
		return 0, 0, errors.Errorf("expected two coordinates, got %d", len(parts))
	}
	x, err = strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return 0, 0, errors.Wrap(err, "invalid x value")
	}
	y, err = strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return 0, 0, errors.Wrap(err, "invalid y value")
	}
	return x, y, nil
}

// Reads a FeatureCollection. Points become loose points, line strings become
// paths, and polygons become rings.
func readGeoJSON(in io.Reader) (*Shape, error) {
	data, err := io.ReadAll(in)
	if err != nil {
		return nil, err
	}
	collection, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, errors.Wrap(err, "parsing geojson")
	}

	shape := newShape()
	for i, feature := range collection.Features {
		if err := shape.addGeometry(feature.Geometry); err != nil {
			return nil, errors.Wrapf(err, "feature %d", i)
		}
	}
	return shape, nil
}

func (s *Shape) addGeometry(g *geojson.Geometry) error {
	if g == nil {
		return errors.New("missing geometry")
	}
	switch g.Type {
	case geojson.GeometryPoint:
		s.Points = append(s.Points, s.position(g.Point))
	case geojson.GeometryMultiPoint:
		s.Points = append(s.Points, s.positions(g.MultiPoint)...)
	case geojson.GeometryLineString:
		s.Paths = append(s.Paths, s.positions(g.LineString))
	case geojson.GeometryMultiLineString:
		for _, line := range g.MultiLineString {
			s.Paths = append(s.Paths, s.positions(line))
		}
	case geojson.GeometryPolygon:
		s.addPolygon(g.Polygon)
	case geojson.GeometryMultiPolygon:
		for _, polygon := range g.MultiPolygon {
			s.addPolygon(polygon)
		}
	case geojson.GeometryCollection:
		for _, child := range g.Geometries {
			if err := s.addGeometry(child); err != nil {
				return err
			}
		}
	default:
		return errors.Errorf("unsupported geometry type %q", g.Type)
	}
	return nil
}

// GeoJSON rings repeat their first position at the end
func (s *Shape) addPolygon(rings [][][]float64) {
	for _, positions := range rings {
		ring := s.positions(positions)
		if len(ring) > 1 && ring[0] == ring[len(ring)-1] {
			ring = ring[:len(ring)-1]
		}
		s.Rings = append(s.Rings, ring)
	}
}

func (s *Shape) position(position []float64) *cdt.Point {
	return s.point(position[0], position[1])
}

func (s *Shape) positions(positions [][]float64) []*cdt.Point {
	points := make([]*cdt.Point, len(positions))
	for i, position := range positions {
		points[i] = s.position(position)
	}
	return points
}

// Reads every <polygon> as a ring and every <polyline> as a path. Transforms
// are not applied.
func readSVG(in io.Reader) (*Shape, error) {
	root, err := svgparser.Parse(in, true)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	shape := newShape()
	for _, el := range root.FindAll("polygon") {
		ring, err := shape.parsePointList(el.Attributes["points"])
		if err != nil {
			return nil, err
		}
		shape.Rings = append(shape.Rings, ring)
	}
	for _, el := range root.FindAll("polyline") {
		path, err := shape.parsePointList(el.Attributes["points"])
		if err != nil {
			return nil, err
		}
		shape.Paths = append(shape.Paths, path)
	}
	return shape, nil
}

// Parse a points attribute, like "0,0 10,0 10,10"
func (s *Shape) parsePointList(attribute string) ([]*cdt.Point, error) {
	var points []*cdt.Point
	for _, pointString := range strings.Fields(attribute) {
		x, y, err := parsePoint(strings.Split(pointString, ","))
		if err != nil {
			return nil, errors.Wrapf(err, "point %q", pointString)
		}
		points = append(points, s.point(x, y))
	}
	return points, nil
}
