// Package geom provides 2D geometry primitives generic over a numeric
// element type: points, segments, lines, axis aligned rectangles, and convex
// polygons built by an incremental Graham scan.
//
// Integer instantiations compare exactly and float instantiations compare
// with a relative tolerance, so a single code path serves both. Every
// primitive shares one null convention. A reserved sentinel value in any
// coordinate marks the whole value as null, and operations on null geometry
// produce null geometry rather than errors.
//
// All primitives are value types. Transforms and queries return new values;
// only the coordinate setters and polygon insertion mutate their receiver,
// and those take pointer receivers to say so.
package geom
