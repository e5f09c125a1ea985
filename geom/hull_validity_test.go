package geom

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// AssertValidHull checks a polygon against the properties every convex hull
// must have, given the points that were inserted into it:
//
// 1. The polygon is valid, with at least three vertices.
// 2. Every hull vertex is one of the input points.
// 3. Every input point lies inside the hull or on its boundary.
// 4. The hull is strictly convex. Walking the vertex cycle, every turn is a
//    left turn, which also rules out duplicate and collinear vertices.
// 5. The first vertex is the anchor, smallest y and then smallest x.
// 6. The bounding box is exactly the extent of the hull vertices.
func AssertValidHull[T Scalar](t *testing.T, poly Polygon2[T], inputs []Point2[T]) {
	require.False(t, poly.IsNull(), "hull must be valid")
	require.GreaterOrEqual(t, poly.Size(), 3)

	verts := poly.Vertices()

	for _, v := range verts {
		found := false
		for _, in := range inputs {
			if v.Equals(in) {
				found = true
				break
			}
		}
		require.True(t, found, "hull vertex %v is not an input point", v)
	}

	for _, in := range inputs {
		if in.IsNull() {
			continue
		}
		require.False(t, poly.OverlapPoint(in).IsNull(),
			"input point %v fell outside the hull", in)
	}

	for i := range verts {
		o := verts[i]
		a := verts[CircularIndex(i+1, len(verts))]
		b := verts[CircularIndex(i+2, len(verts))]
		require.Equal(t, 1, turnDirection(o, a, b),
			"hull must turn left at every vertex, got %v %v %v", o, a, b)
	}

	anchor := verts[0]
	for _, v := range verts[1:] {
		require.False(t, LessThan(v.Y(), anchor.Y()),
			"anchor %v must have the smallest y, found %v", anchor, v)
		if Equal(v.Y(), anchor.Y()) {
			require.False(t, LessThan(v.X(), anchor.X()),
				"anchor %v must be leftmost among the lowest, found %v", anchor, v)
		}
	}

	l, r := verts[0].X(), verts[0].X()
	top, bottom := verts[0].Y(), verts[0].Y()
	for _, v := range verts[1:] {
		if LessThan(v.X(), l) {
			l = v.X()
		}
		if GreaterThan(v.X(), r) {
			r = v.X()
		}
		if LessThan(v.Y(), top) {
			top = v.Y()
		}
		if GreaterThan(v.Y(), bottom) {
			bottom = v.Y()
		}
	}
	require.True(t, poly.BoundingBox().Equals(NewRect2(l, r, top, bottom)),
		"bounding box %v must tightly wrap the hull", poly.BoundingBox())
}
