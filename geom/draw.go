package geom

import (
	"math"
	"os"

	"github.com/bloodandiron/euclib/dbg"
	"github.com/fogleman/gg"
	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
)

// Debug rendering for eyeballing hulls while developing. Not part of the
// geometry contract.

const drawPadding = 100

// A PolygonList groups polygons so they can be rendered into one image.
type PolygonList[T Scalar] []Polygon2[T]

// DrawPNG renders the non-null polygons to a PNG at the given path. The
// image is flipped so y grows upward, matching how the plot scripts from
// cmd/euplot display the same geometry.
func (pl PolygonList[T]) DrawPNG(path string, scale float64) error {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	drawable := 0
	for _, poly := range pl {
		if poly.IsNull() {
			continue
		}
		drawable++
		box := poly.BoundingBox()
		minX = math.Min(minX, float64(box.Left()))
		maxX = math.Max(maxX, float64(box.Right()))
		minY = math.Min(minY, float64(box.Top()))
		maxY = math.Max(maxY, float64(box.Bottom()))
	}
	if drawable == 0 {
		return errors.New("no drawable polygons")
	}

	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	c.SetLineWidth(2)
	for _, poly := range pl {
		if poly.IsNull() {
			continue
		}
		verts := poly.Vertices()
		c.MoveTo(float64(verts[0].X()), float64(verts[0].Y()))
		for _, v := range verts[1:] {
			c.LineTo(float64(v.X()), float64(v.Y()))
		}
		c.ClosePath()
	}
	c.SetRGB(0, 0.5, 0)
	c.FillPreserve()
	c.SetRGB(0, 1, 1)
	c.Stroke()

	// Mark the hull vertices so purged points are visible by absence.
	for _, poly := range pl {
		if poly.IsNull() {
			continue
		}
		for _, v := range poly.Vertices() {
			c.DrawCircle(float64(v.X()), float64(v.Y()), 3/scale)
		}
	}
	c.SetRGB(1, 1, 0)
	c.Fill()

	return c.SavePNG(path)
}

// Draw renders to a scratch file and displays it inline on terminals that
// understand the imgcat protocol.
func (pl PolygonList[T]) Draw(scale float64) error {
	const path = "/tmp/euclib_hulls.png"
	if err := pl.DrawPNG(path, scale); err != nil {
		return err
	}
	imgcat.CatFile(path, os.Stdout)
	return nil
}

// DbgName returns a stable readable name for this polygon instance, colored
// by state so null polygons stand out in a trace.
func (p *Polygon2[T]) DbgName() string {
	name := dbg.Name(p)
	if p.IsNull() {
		return aurora.Red(name).String()
	}
	return aurora.Green(name).String()
}
