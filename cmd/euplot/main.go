// Command euplot exercises the geometry library against a pseudo-random
// scene and writes a gnuplot script showing the input and the result of one
// numbered scenario. Rerunning with the same seed reproduces the same
// scene, which is how hull bugs found by eyeball get turned into fixtures.
//
//	euplot --test 5 --seed 1337 && gnuplot plot.out
package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/logrusorgru/aurora"
	"github.com/pkg/profile"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/bloodandiron/euclib"
	"github.com/bloodandiron/euclib/dbg"
	. "github.com/bloodandiron/euclib/geom"
)

var (
	seedFlag    = kingpin.Flag("seed", "PRNG seed. Negative means use the current time.").Short('s').Default("-1").Int64()
	testFlag    = kingpin.Flag("test", "Scenario number to run (0-7).").Short('t').Default("5").Int()
	outFlag     = kingpin.Flag("out", "Path of the gnuplot script to write.").Short('o').Default("plot.out").String()
	pointsFlag  = kingpin.Flag("points", "Points generated per polygon.").Default("10").Int()
	maxFlag     = kingpin.Flag("max", "Upper bound of generated coordinates.").Default("10").Float64()
	verboseFlag = kingpin.Flag("verbose", "Dump the generated primitives before plotting.").Short('v').Bool()
	renderFlag  = kingpin.Flag("render", "Render the hulls to a PNG and show it inline.").Bool()
	profileFlag = kingpin.Flag("profile", "Write a CPU profile for the run.").Bool()
)

// A scene is the fixed cast of primitives every scenario picks from, built
// in one deterministic pass over the generator so a seed reproduces all of
// it regardless of which scenario runs.
type scene struct {
	origin euclib.Point2f
	about  euclib.Point2f
	over   euclib.Line2f
	ang    float64
	poly1  euclib.Polygon2f
	poly2  euclib.Polygon2f
	rect1  euclib.Rect2f
	rect2  euclib.Rect2f
	seg1   euclib.Segment2f
	seg2   euclib.Segment2f
	line1  euclib.Line2f
	line2  euclib.Line2f
}

func buildScene(rng *rand.Rand, maxv float64, numPoints int) scene {
	gen := func() float32 {
		return float32(rng.Float64() * maxv)
	}

	var s scene
	s.origin = NewPoint2[float32](0, 0)
	s.about = NewPoint2(gen(), gen())
	s.over = NewLine2(s.about, NewPoint2(gen(), gen()))
	s.ang = float64(gen()) * 18

	for i := 0; i < numPoints; i++ {
		s.poly1.AddPoints(NewPoint2(gen(), gen()))
	}
	for i := 0; i < numPoints; i++ {
		s.poly2.AddPoints(NewPoint2(gen(), gen()))
	}

	s.rect1 = RectWithSize(NewPoint2(gen()/2, gen()/2), gen()/2, gen()/2)
	s.rect2 = RectWithSize(NewPoint2(gen()/2, gen()/2), gen()/2, gen()/2)

	s.seg1 = NewSegment2(NewPoint2(gen(), gen()), NewPoint2(gen(), gen()))
	s.seg2 = NewSegment2(NewPoint2(gen(), gen()), NewPoint2(gen(), gen()))
	s.line1 = MakeLine(s.seg1)
	s.line2 = MakeLine(s.seg2)
	return s
}

func main() {
	kingpin.Parse()

	if *profileFlag {
		defer profile.Start(profile.CPUProfile).Stop()
	}

	seed := *seedFlag
	if seed < 0 {
		seed = time.Now().Unix()
	}
	rng := rand.New(rand.NewSource(seed))
	maxv := *maxFlag
	s := buildScene(rng, maxv, *pointsFlag)

	if *verboseFlag {
		dumpScene(s)
	}

	out, err := os.Create(*outFlag)
	if err != nil {
		log.Fatalf("creating %s: %v", *outFlag, err)
	}
	defer out.Close()
	w := bufio.NewWriter(out)

	fmt.Fprintf(w, "set xrange [%g:%g]\n", -1.5*maxv, 1.5*maxv)
	fmt.Fprintf(w, "set yrange [%g:%g]\n", -1.5*maxv, 1.5*maxv)
	fmt.Fprint(w, "unset mouse\nset size square\n")

	switch *testFlag {
	case 0:
		testPolygonPointOverlap(w, s, seed)
	case 1:
		testLineTranslate(w, s, seed)
	case 2:
		testSegmentTranslate(w, s, seed)
	case 3:
		testPolygonTranslate(w, s, seed)
	case 4:
		testSegmentRotate(w, s, seed)
	case 5:
		testPolygonRotate(w, s, seed)
	case 6:
		testPolygonMirror(w, s, seed)
	case 7:
		testPolygonLineOverlap(w, s, seed)
	default:
		log.Fatalf("unknown test %d, valid tests are 0-7", *testFlag)
	}

	fmt.Fprint(w, "pause -1 'press enter to continue'\n")
	if err := w.Flush(); err != nil {
		log.Fatalf("writing %s: %v", *outFlag, err)
	}
	fmt.Printf("%s wrote %s (seed %d, test %d)\n",
		aurora.Green("euplot:"), *outFlag, seed, *testFlag)

	if *renderFlag {
		hulls := PolygonList[float32]{s.poly1, s.poly2}
		if err := hulls.Draw(20); err != nil {
			fmt.Println(aurora.Red(fmt.Sprintf("render failed: %v", err)))
		}
	}
}

func dumpScene(s scene) {
	fmt.Println(aurora.Cyan("generated scene:"))
	fmt.Print(dbg.Dump(s.about))
	fmt.Print(dbg.Dump(s.over))
	fmt.Print(dbg.Dump(s.poly1))
	fmt.Print(dbg.Dump(s.poly2))
	fmt.Print(dbg.Dump(s.rect1))
	fmt.Print(dbg.Dump(s.rect2))
	fmt.Print(dbg.Dump(s.seg1))
	fmt.Print(dbg.Dump(s.seg2))
	fmt.Print(dbg.Dump(s.line1))
	fmt.Print(dbg.Dump(s.line2))
	fmt.Printf("%s %s and %s\n", aurora.Cyan("polygons:"), s.poly1.DbgName(), s.poly2.DbgName())
	fmt.Printf("%s %g\n", aurora.Cyan("angle:"), s.ang)
}

func writeStyles(w io.Writer) {
	fmt.Fprint(w, "set style line 1 pointtype 7 linecolor rgb 'black'\n")
	fmt.Fprint(w, "set style line 2 pointtype 7 linecolor rgb 'red'\n")
	fmt.Fprint(w, "set style line 3 pointtype 7 linecolor rgb 'green'\n")
}

// Inline data blocks. Each helper writes one gnuplot dataset terminated by
// the "e" sentinel line.

func pointBlock(w io.Writer, pts ...Point2[float32]) {
	for _, pt := range pts {
		fmt.Fprintf(w, "%g %g\n", pt.X(), pt.Y())
	}
	fmt.Fprint(w, "e\n")
}

func segmentBlock(w io.Writer, seg Segment2[float32]) {
	pointBlock(w, seg.Pt1, seg.Pt2)
}

// polygonBlock closes the loop by repeating the first vertex.
func polygonBlock(w io.Writer, poly Polygon2[float32]) {
	verts := poly.Vertices()
	if len(verts) > 0 {
		verts = append(verts, verts[0])
	}
	pointBlock(w, verts...)
}

func rectBlock(w io.Writer, rc Rect2[float32]) {
	pointBlock(w, rc.TopLeft(), rc.TopRight(), rc.BottomRight(), rc.BottomLeft(), rc.TopLeft())
}

// lineBody renders a line as the right side of a gnuplot function, like
// "0.5*x + 2". Vertical lines have no function form.
func lineBody(l Line2[float32]) (string, bool) {
	if l.IsNull() || Equal(l.Pt1.X(), l.Pt2.X()) {
		return "", false
	}
	x1, y1 := float64(l.Pt1.X()), float64(l.Pt1.Y())
	x2, y2 := float64(l.Pt2.X()), float64(l.Pt2.Y())
	m := (y2 - y1) / (x2 - x1)
	return fmt.Sprintf("%g*x + %g", m, y1-m*x1), true
}

func testPolygonPointOverlap(w io.Writer, s scene, seed int64) {
	loc := s.poly1.OverlapPoint(s.about)
	fmt.Printf("Intersection at %v\n", loc)

	fmt.Fprintf(w, "set title 'seed = %d polygon-point intersection' font 'Arial,12'\n", seed)
	writeStyles(w)
	fmt.Fprint(w, "plot '-' ls 1 with points notitle, ")
	fmt.Fprint(w, "'-' ls 2 with linespoints notitle, ")
	fmt.Fprint(w, "'-' ls 3 with linespoints notitle\n")

	pointBlock(w, s.about)
	rectBlock(w, s.poly1.BoundingBox())
	polygonBlock(w, s.poly1)
}

func testLineTranslate(w io.Writer, s scene, seed int64) {
	dx, dy := s.about.X()/2, s.about.Y()/2
	loc := s.over.Translate(dx, dy)

	fmt.Fprintf(w, "set title 'seed = %d\tx = %g, y = %g' font 'Arial,12'\n", seed, dx, dy)
	writeStyles(w)

	fBody, fOK := lineBody(loc)
	gBody, gOK := lineBody(s.over)
	if !fOK || !gOK {
		fmt.Println(aurora.Red("cannot plot a vertical line as a function, plotting endpoints instead"))
		fmt.Fprint(w, "plot '-' ls 1 with linespoints notitle, ")
		fmt.Fprint(w, "'-' ls 2 with linespoints notitle, ")
		fmt.Fprint(w, "'-' ls 3 with linespoints notitle\n")
		rectBlock(w, RectWithSize(s.about, dx, dy))
		pointBlock(w, s.over.Pt1, s.over.Pt2)
		pointBlock(w, loc.Pt1, loc.Pt2)
		return
	}
	fmt.Fprintf(w, "f(x) = %s\n", fBody)
	fmt.Fprintf(w, "g(x) = %s\n", gBody)
	fmt.Fprint(w, "plot '-' ls 1 with linespoints notitle, f(x), g(x)\n")
	rectBlock(w, RectWithSize(s.about, dx, dy))
}

func testSegmentTranslate(w io.Writer, s scene, seed int64) {
	dx, dy := s.about.X()/2, s.about.Y()/2
	loc := s.seg1.Translate(dx, dy)

	fmt.Fprintf(w, "set title 'seed = %d\tx = %g, y = %g' font 'Arial,12'\n", seed, dx, dy)
	writeStyles(w)
	fmt.Fprint(w, "plot '-' ls 1 with linespoints notitle, ")
	fmt.Fprint(w, "'-' ls 2 with linespoints notitle, ")
	fmt.Fprint(w, "'-' ls 3 with linespoints notitle\n")

	rectBlock(w, RectWithSize(s.seg1.Pt1, dx, dy))
	segmentBlock(w, s.seg1)
	segmentBlock(w, loc)
}

func testPolygonTranslate(w io.Writer, s scene, seed int64) {
	dx, dy := s.about.X()/2, s.about.Y()/2
	loc := s.poly1.Translate(dx, dy)

	corner, err := euclib.VertexAt(s.poly1, 0)
	if err != nil {
		fmt.Println(aurora.Red(fmt.Sprintf("cannot plot: %v", err)))
		return
	}

	fmt.Fprintf(w, "set title 'seed = %d\tx = %g, y = %g' font 'Arial,12'\n", seed, dx, dy)
	writeStyles(w)
	fmt.Fprint(w, "plot '-' ls 1 with linespoints notitle, ")
	fmt.Fprint(w, "'-' ls 2 with linespoints notitle, ")
	fmt.Fprint(w, "'-' ls 3 with linespoints notitle\n")

	rectBlock(w, RectWithSize(corner, dx, dy))
	polygonBlock(w, s.poly1)
	polygonBlock(w, loc)
}

func testSegmentRotate(w io.Writer, s scene, seed int64) {
	loc := s.seg1.Rotate(s.about, s.ang, true)
	circ := NewSegment2(s.about, s.seg1.Pt1)
	circ2 := NewSegment2(s.about, s.seg1.Pt2)

	fmt.Fprint(w, "set parametric\n")
	fmt.Fprintf(w, "set title 'seed = %d\tangle = %g' font 'Arial,12'\n", seed, s.ang)
	writeStyles(w)
	fmt.Fprintf(w, "plot [0:2*pi] %g*sin(t)+%g,%g*cos(t)+%g ls 1 notitle,",
		circ.Length(), s.about.X(), circ.Length(), s.about.Y())
	fmt.Fprintf(w, "%g*sin(t)+%g,%g*cos(t)+%g ls 1 notitle,",
		circ2.Length(), s.about.X(), circ2.Length(), s.about.Y())
	fmt.Fprint(w, "'-' ls 1 with points notitle, ")
	fmt.Fprint(w, "'-' ls 2 with linespoints notitle, ")
	fmt.Fprint(w, "'-' ls 3 with linespoints notitle\n")

	pointBlock(w, s.origin, s.about)
	segmentBlock(w, s.seg1)
	segmentBlock(w, loc)
}

func testPolygonRotate(w io.Writer, s scene, seed int64) {
	loc := s.poly1.Rotate(s.about, s.ang, true)

	mid, err := euclib.VertexAt(s.poly1, s.poly1.Size()/2)
	if err != nil {
		fmt.Println(aurora.Red(fmt.Sprintf("cannot plot: %v", err)))
		return
	}
	circ := NewSegment2(s.about, mid)

	fmt.Fprint(w, "set parametric\n")
	fmt.Fprintf(w, "set title 'seed = %d\tangle = %g' font 'Arial,12'\n", seed, s.ang)
	writeStyles(w)
	fmt.Fprintf(w, "plot [0:2*pi] %g*sin(t)+%g,%g*cos(t)+%g ls 1 notitle,",
		circ.Length(), s.about.X(), circ.Length(), s.about.Y())
	fmt.Fprint(w, "'-' ls 1 with points notitle, ")
	fmt.Fprint(w, "'-' ls 2 with linespoints notitle, ")
	fmt.Fprint(w, "'-' ls 3 with linespoints notitle\n")

	pointBlock(w, s.origin, s.about)
	polygonBlock(w, s.poly1)
	polygonBlock(w, loc)
}

func testPolygonMirror(w io.Writer, s scene, seed int64) {
	loc := s.poly1.Mirror(s.over)
	if loc.IsNull() {
		fmt.Println(aurora.Red("mirror gave a null polygon"))
	}

	fmt.Fprintf(w, "set title 'seed = %d polygon mirror' font 'Arial,12'\n", seed)
	writeStyles(w)
	if body, ok := lineBody(s.over); ok {
		fmt.Fprintf(w, "f(x) = %s\n", body)
		fmt.Fprint(w, "plot '-' ls 2 with linespoints notitle, ")
		fmt.Fprint(w, "'-' ls 3 with linespoints notitle, f(x)\n")
	} else {
		fmt.Fprint(w, "plot '-' ls 2 with linespoints notitle, ")
		fmt.Fprint(w, "'-' ls 3 with linespoints notitle\n")
	}

	polygonBlock(w, s.poly1)
	polygonBlock(w, loc)
}

func testPolygonLineOverlap(w io.Writer, s scene, seed int64) {
	hit := s.poly1.OverlapLine(s.line1)
	if hit.IsNull() {
		fmt.Println("No intersection")
	} else {
		fmt.Printf("Line %v crosses the hull\n", hit)
	}

	fmt.Fprintf(w, "set title 'seed = %d polygon-line intersection' font 'Arial,12'\n", seed)
	writeStyles(w)
	body, ok := lineBody(s.line1)
	if ok {
		fmt.Fprintf(w, "f(x) = %s\n", body)
	}
	fmt.Fprint(w, "plot '-' ls 1 with linespoints notitle, ")
	fmt.Fprint(w, "'-' ls 1 with linespoints notitle, ")
	if ok {
		fmt.Fprint(w, "'-' ls 3 with linespoints notitle, f(x)\n")
	} else {
		fmt.Fprint(w, "'-' ls 3 with linespoints notitle, ")
		fmt.Fprint(w, "'-' ls 2 with linespoints notitle\n")
	}

	rectBlock(w, s.rect1)
	rectBlock(w, s.rect2)
	polygonBlock(w, s.poly1)
	if !ok {
		segmentBlock(w, s.seg1)
	}
}
