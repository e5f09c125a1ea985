package geom

import (
	"embed"
	"log"
	"strconv"
	"strings"
	"testing"

	"github.com/JoshVarga/svgparser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//go:embed fixtures
var fixtureFS embed.FS

// LoadFixture reads an SVG fixture by name and returns the vertices of its
// polygon elements as one flat point list.
func LoadFixture(name string) []Point2[float64] {
	file, err := fixtureFS.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("could not open fixture %q: %v", name, err)
	}
	defer file.Close()

	root, err := svgparser.Parse(file, true)
	if err != nil {
		log.Fatalf("could not parse fixture %q: %v", name, err)
	}

	var points []Point2[float64]
	for _, element := range root.FindAll("polygon") {
		for _, pair := range strings.Fields(element.Attributes["points"]) {
			coords := strings.Split(pair, ",")
			if len(coords) != 2 {
				log.Fatalf("fixture %q has a malformed point %q", name, pair)
			}
			x, err := strconv.ParseFloat(coords[0], 64)
			if err != nil {
				log.Fatalf("fixture %q has a bad coordinate: %v", name, err)
			}
			y, err := strconv.ParseFloat(coords[1], 64)
			if err != nil {
				log.Fatalf("fixture %q has a bad coordinate: %v", name, err)
			}
			points = append(points, NewPoint2(x, y))
		}
	}
	return points
}

func TestFixtureHulls(t *testing.T) {
	cases := []struct {
		name     string
		hullSize int
	}{
		// The star's four spike tips enclose its four inner vertices.
		{"star", 4},
		// The blob is already convex, so every vertex survives.
		{"blob", 6},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			points := LoadFixture(c.name)
			require.NotEmpty(t, points)

			poly := NewPolygon2(points...)
			assert.Equal(t, c.hullSize, poly.Size())
			AssertValidHull(t, poly, points)
		})
	}
}

func TestFixtureTransformsKeepValidity(t *testing.T) {
	points := LoadFixture("star")
	poly := NewPolygon2(points...)

	rotated := poly.Rotate(NewPoint2(100.0, 100.0), 30, true)
	require.Equal(t, poly.Size(), rotated.Size())
	AssertValidHull(t, rotated, rotated.Vertices())

	mirrored := poly.Mirror(NewLine2(NewPoint2(0.0, 0.0), NewPoint2(0.0, 1.0)))
	require.Equal(t, poly.Size(), mirrored.Size())
	AssertValidHull(t, mirrored, mirrored.Vertices())
}
