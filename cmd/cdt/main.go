package main

import (
	"fmt"
	"os"

	"github.com/osuushi/cdt"
	"github.com/osuushi/cdt/internal/dbg"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Triangulate points read from a file (or stdin) and write the result in a
// few formats, for poking at the triangulator by hand.
//
// The text format is newline separated points in the form "x y", with each
// ring separated by an extra newline. Rings are closed implicitly.

var (
	mode = kingpin.Flag("mode", "What to triangulate. delaunay ignores ring edges, constrained forces them in over the hull, polygon keeps only the region the rings enclose.").
		Short('m').Default("polygon").Enum("delaunay", "constrained", "polygon")
	format = kingpin.Flag("format", "Input format.").
		Short('f').Default("text").Enum("text", "geojson", "svg")
	svgPath     = kingpin.Flag("svg", "Write the triangles to an SVG file.").String()
	pngPath     = kingpin.Flag("png", "Write the triangles to a PNG file.").String()
	geojsonPath = kingpin.Flag("geojson", "Write the triangles to a GeoJSON file.").String()
	scale       = kingpin.Flag("scale", "Pixels per unit for SVG and PNG output.").Default("10").Float64()
	showImage   = kingpin.Flag("imgcat", "Print the result in the terminal (iTerm only).").Bool()
	labels      = kingpin.Flag("labels", "Label triangles with readable names in PNG output.").Bool()
	verbose     = kingpin.Flag("verbose", "Trace insertions, flips and trims.").Short('v').Bool()
	drawSteps   = kingpin.Flag("draw-steps", "Print the mesh in the terminal after every insertion (iTerm only).").Bool()
	inputFile   = kingpin.Arg("input", "Input file. Reads stdin if omitted.").File()
)

func main() {
	kingpin.CommandLine.HelpFlag.Short('h')
	kingpin.Parse()

	dbg.Enabled = *verbose
	dbg.DrawEnabled = *drawSteps

	in := os.Stdin
	if *inputFile != nil {
		in = *inputFile
		defer in.Close()
	}

	shape, err := readShape(in, *format)
	kingpin.FatalIfError(err, "could not read input")
	fmt.Printf("Read %d points in %d rings and %d paths\n", len(shape.Points), len(shape.Rings), len(shape.Paths))

	result, err := triangulate(shape, *mode)
	kingpin.FatalIfError(err, "triangulation failed")
	fmt.Printf("Triangulated into %d triangles with %d constrained edges\n", len(result.Triangles), len(result.Edges))

	kingpin.FatalIfError(writeOutputs(result), "could not write output")
}

type result struct {
	Triangles []*cdt.Triangle
	Edges     []cdt.Edge
}

func triangulate(shape *Shape, mode string) (*result, error) {
	switch mode {
	case "delaunay":
		triangles, err := cdt.Triangulate(shape.AllPoints())
		return &result{Triangles: triangles}, err
	case "constrained":
		edges := shape.Edges()
		triangles, err := cdt.TriangulateConstrained(shape.AllPoints(), edges)
		return &result{Triangles: triangles, Edges: edges}, err
	case "polygon":
		if len(shape.Points) > 0 || len(shape.Paths) > 0 {
			return nil, errors.New("polygon mode only takes rings")
		}
		triangles, edges, err := cdt.TriangulatePolygon(shape.Rings...)
		return &result{Triangles: triangles, Edges: edges}, err
	}
	return nil, errors.Errorf("unknown mode %q", mode)
}

func writeOutputs(r *result) error {
	if *svgPath != "" {
		if err := writeFile(*svgPath, func(f *os.File) error {
			return writeSVG(f, r, *scale)
		}); err != nil {
			return err
		}
	}

	if *geojsonPath != "" {
		if err := writeFile(*geojsonPath, func(f *os.File) error {
			return writeGeoJSON(f, r)
		}); err != nil {
			return err
		}
	}

	if *pngPath != "" || *showImage {
		return writePNG(*pngPath, r, *scale, *labels, *showImage)
	}
	return nil
}

func writeFile(path string, write func(f *os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	if err := write(f); err != nil {
		f.Close()
		return errors.Wrapf(err, "writing %s", path)
	}
	return f.Close()
}
