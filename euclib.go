// 2D computational-geometry primitives for Go, generic over the numeric
// element type.
//
// The package provides points and vectors, line segments and infinite
// lines, axis aligned rectangles, and convex polygons whose hull is built
// incrementally with a Graham scan. Integer element types compare exactly,
// float element types compare with a relative tolerance, and every
// primitive shares one null convention for absent or degenerate geometry.
//
// The geometry itself lives in the geom subpackage. This package adds
// concrete aliases for the common instantiations and entry points that
// convert the internal contract panics into returned errors.
package euclib

import "github.com/bloodandiron/euclib/geom"

// Concrete instantiations for the element types callers reach for most.
// Vectors are the same type as points under a different name.

type Point2i = geom.Point2[int32]
type Point2u = geom.Point2[uint32]
type Point2f = geom.Point2[float32]
type Point2d = geom.Point2[float64]

type Vector2i = geom.Point2[int32]
type Vector2u = geom.Point2[uint32]
type Vector2f = geom.Point2[float32]
type Vector2d = geom.Point2[float64]

type Point3f = geom.Point3[float32]
type Point3d = geom.Point3[float64]
type Point4f = geom.Point4[float32]
type Point4d = geom.Point4[float64]

type Segment2i = geom.Segment2[int32]
type Segment2u = geom.Segment2[uint32]
type Segment2f = geom.Segment2[float32]
type Segment2d = geom.Segment2[float64]

type Line2i = geom.Line2[int32]
type Line2u = geom.Line2[uint32]
type Line2f = geom.Line2[float32]
type Line2d = geom.Line2[float64]

type Rect2i = geom.Rect2[int32]
type Rect2u = geom.Rect2[uint32]
type Rect2f = geom.Rect2[float32]
type Rect2d = geom.Rect2[float64]

type Polygon2i = geom.Polygon2[int32]
type Polygon2u = geom.Polygon2[uint32]
type Polygon2f = geom.Polygon2[float32]
type Polygon2d = geom.Polygon2[float64]

// ConvexHull builds a polygon from the convex hull of the given points.
// Null points are dropped, and fewer than three surviving hull vertices
// give a null polygon rather than an error. The error return surfaces
// contract violations that the geom package reports by panicking.
func ConvexHull[T geom.Scalar](points ...geom.Point2[T]) (poly geom.Polygon2[T], err error) {
	defer func() {
		recoveredErr := geom.HandleGeomPanicRecover(recover())
		if recoveredErr != nil {
			poly = geom.NullPolygon2[T]()
			err = recoveredErr
		}
	}()
	return geom.NewPolygon2(points...), nil
}

// MakePoint2 builds a point from up to two coordinates, returning an error
// instead of panicking when more are supplied.
func MakePoint2[T geom.Scalar](values ...T) (pt geom.Point2[T], err error) {
	defer func() {
		recoveredErr := geom.HandleGeomPanicRecover(recover())
		if recoveredErr != nil {
			pt = geom.NullPoint2[T]()
			err = recoveredErr
		}
	}()
	return geom.NewPoint2(values...), nil
}

// VertexAt returns the i'th hull vertex of a polygon, converting the out of
// range panic into an error.
func VertexAt[T geom.Scalar](poly geom.Polygon2[T], i int) (pt geom.Point2[T], err error) {
	defer func() {
		recoveredErr := geom.HandleGeomPanicRecover(recover())
		if recoveredErr != nil {
			pt = geom.NullPoint2[T]()
			err = recoveredErr
		}
	}()
	return poly.At(i), nil
}
