package main

import (
	"io"
	"math"
	"os"

	svg "github.com/ajstarks/svgo/float"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/cdt"
	"github.com/osuushi/cdt/internal"
	"github.com/osuushi/cdt/internal/dbg"
	geojson "github.com/paulmach/go.geojson"
	"github.com/pkg/errors"
)

// Padding around SVG output, in pixels
const svgPadding = 20

// Draw the triangles as an SVG, with y pointing up. Constrained edges are
// drawn on top.
func writeSVG(w io.Writer, r *result, scale float64) error {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, t := range r.Triangles {
		for i := 0; i < 3; i++ {
			p := t.Corner(i)
			minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
			minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
		}
	}
	if len(r.Triangles) == 0 {
		minX, minY, maxX, maxY = 0, 0, 0, 0
	}

	toX := func(x float64) float64 { return (x-minX)*scale + svgPadding }
	toY := func(y float64) float64 { return (maxY-y)*scale + svgPadding }

	s := svg.New(w)
	s.Start((maxX-minX)*scale+2*svgPadding, (maxY-minY)*scale+2*svgPadding)
	s.Gstyle("fill:#6a5acd;fill-opacity:0.5;stroke:#0f0;stroke-width:1")
	for _, t := range r.Triangles {
		s.Polygon(
			[]float64{toX(t.A.X), toX(t.B.X), toX(t.C.X)},
			[]float64{toY(t.A.Y), toY(t.B.Y), toY(t.C.Y)},
		)
	}
	s.Gend()
	for _, e := range r.Edges {
		s.Line(toX(e.A.X), toY(e.A.Y), toX(e.B.X), toY(e.B.Y), "stroke:#ff8000;stroke-width:3")
	}
	s.End()
	return nil
}

// A FeatureCollection with one polygon per triangle, and one line string per
// constrained edge. Each triangle carries its index and the indexes of its
// neighbors, with -1 for none.
func writeGeoJSON(w io.Writer, r *result) error {
	indexes := make(map[*cdt.Triangle]int, len(r.Triangles))
	for i, t := range r.Triangles {
		indexes[t] = i
	}

	collection := geojson.NewFeatureCollection()
	for i, t := range r.Triangles {
		ring := [][]float64{
			{t.A.X, t.A.Y},
			{t.B.X, t.B.Y},
			{t.C.X, t.C.Y},
			{t.A.X, t.A.Y},
		}
		neighbors := make([]int, 3)
		for j, n := range t.Neighbors {
			neighbors[j] = -1
			if n != nil {
				neighbors[j] = indexes[n]
			}
		}
		f := geojson.NewPolygonFeature([][][]float64{ring})
		f.SetProperty("index", i)
		f.SetProperty("neighbors", neighbors)
		collection.AddFeature(f)
	}
	for _, e := range r.Edges {
		f := geojson.NewLineStringFeature([][]float64{{e.A.X, e.A.Y}, {e.B.X, e.B.Y}})
		f.SetProperty("constrained", true)
		collection.AddFeature(f)
	}

	data, err := collection.MarshalJSON()
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// Render to PNG. Without a path, the image goes to a temporary file so that it
// can still be shown in the terminal.
func writePNG(path string, r *result, scale float64, labels, show bool) error {
	if path == "" {
		f, err := os.CreateTemp("", "cdt-*.png")
		if err != nil {
			return err
		}
		f.Close()
		path = f.Name()
		defer os.Remove(path)
	}

	c := internal.RenderTriangles(r.Triangles, r.Edges, scale, labels)
	if err := c.SavePNG(path); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	dbg.Printf("Wrote %s", path)

	if show {
		return imgcat.CatFile(path, os.Stdout)
	}
	return nil
}
