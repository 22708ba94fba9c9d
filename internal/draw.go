package internal

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/cdt/internal/dbg"
	"golang.org/x/image/font/gofont/goregular"
)

// Padding around the drawing, so that edges on the hull are visible
const dbgDrawPadding = 100

var labelFont = mustParseFont(goregular.TTF)

func mustParseFont(ttf []byte) *truetype.Font {
	f, err := truetype.Parse(ttf)
	if err != nil {
		panic(err)
	}
	return f
}

type drawBounds struct {
	minX, minY, maxX, maxY float64
}

func newDrawBounds() drawBounds {
	return drawBounds{
		minX: math.Inf(1),
		minY: math.Inf(1),
		maxX: math.Inf(-1),
		maxY: math.Inf(-1),
	}
}

func (b *drawBounds) extend(p *Point) {
	b.minX = math.Min(b.minX, p.X)
	b.minY = math.Min(b.minY, p.Y)
	b.maxX = math.Max(b.maxX, p.X)
	b.maxY = math.Max(b.maxY, p.Y)
}

func (b drawBounds) empty() bool {
	return b.minX > b.maxX
}

// Set up a context where drawing happens in point coordinates, with the
// origin at the bottom left.
func newDrawContext(b drawBounds, scale float64) *gg.Context {
	if b.empty() {
		b = drawBounds{}
	}
	width := int(scale*(b.maxX-b.minX)) + dbgDrawPadding*2
	height := int(scale*(b.maxY-b.minY)) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	c.Scale(scale, scale)
	c.Translate(-b.minX, -b.minY)
	return c
}

func traceTriangle(c *gg.Context, a, b, d *Point) {
	c.MoveTo(a.X, a.Y)
	c.LineTo(b.X, b.Y)
	c.LineTo(d.X, d.Y)
	c.ClosePath()
}

// Draw a label centered on a point given in drawing coordinates. Text has to
// be drawn in native coordinates, or it comes out upside down.
func drawLabel(c *gg.Context, label string, x, y float64) {
	x, y = c.TransformPoint(x, y)
	c.Push()
	c.Identity()
	c.SetRGB(1, 1, 1)
	c.DrawStringAnchored(label, x, y, 0.5, 0.5)
	c.Pop()
}

// Render a finished triangulation. Constrained edges are drawn on top in a
// separate color. With labels, each triangle gets its debug name.
func RenderTriangles(triangles TriangleList, constraints []Edge, scale float64, labels bool) *gg.Context {
	b := newDrawBounds()
	for _, t := range triangles {
		b.extend(t.A)
		b.extend(t.B)
		b.extend(t.C)
	}
	c := newDrawContext(b, scale)
	c.SetFontFace(truetype.NewFace(labelFont, &truetype.Options{Size: 12}))
	c.SetLineWidth(1)

	for _, t := range triangles {
		traceTriangle(c, t.A, t.B, t.C)
		c.SetRGBA(0.3, 0.2, 1, 0.5)
		c.FillPreserve()
		c.SetRGB(0, 1, 0)
		c.Stroke()
	}

	c.SetLineWidth(3)
	c.SetRGB(1, 0.5, 0)
	for _, e := range constraints {
		c.MoveTo(e.A.X, e.A.Y)
		c.LineTo(e.B.X, e.B.Y)
		c.Stroke()
	}

	if labels {
		for _, t := range triangles {
			drawLabel(c, dbg.Name(t), (t.A.X+t.B.X+t.C.X)/3, (t.A.Y+t.B.Y+t.C.Y)/3)
		}
	}
	return c
}

// Helper to draw the in-progress mesh and print it in the terminal (iTerm
// only) for debugging. The view is framed on the inserted vertices, so the
// triangles reaching out to the boundary are cut off.
func (m *Mesh) dbgDraw(scale float64) {
	b := newDrawBounds()
	handles := m.Handles()
	for _, h := range handles {
		for _, corner := range m.Get(h).Corners {
			if !corner.Boundary {
				b.extend(corner.Point)
			}
		}
	}

	c := newDrawContext(b, scale)
	c.SetFontFace(truetype.NewFace(labelFont, &truetype.Options{Size: 10}))
	c.SetLineWidth(2)
	for _, h := range handles {
		t := m.Get(h)
		traceTriangle(c, t.Position(0), t.Position(1), t.Position(2))
		switch {
		case t.Condemned:
			c.SetRGBA(1, 0, 0, 0.5)
		case t.HasBoundaryCorner():
			c.SetRGBA(0, 1, 1, 0.2)
		default:
			c.SetRGBA(0.3, 0.2, 1, 0.5)
		}
		c.FillPreserve()
		c.SetRGB(0, 1, 0)
		c.Stroke()
	}
	for _, h := range handles {
		t := m.Get(h)
		if t.HasBoundaryCorner() {
			continue
		}
		p0, p1, p2 := t.Position(0), t.Position(1), t.Position(2)
		drawLabel(c, dbg.Name(h), (p0.X+p1.X+p2.X)/3, (p0.Y+p1.Y+p2.Y)/3)
	}

	c.SavePNG("/tmp/cdt_mesh.png")
	imgcat.CatFile("/tmp/cdt_mesh.png", os.Stdout)
}
