package geom

import "math"

// Transforms follow value semantics like everything else. They run their
// arithmetic in float64, convert back to T with RoundNearest, and preserve
// nullity, so transforming null geometry gives null geometry of the same
// kind.
//
// Angles are taken in degrees. With y growing downward, the standard
// rotation matrix turns geometry clockwise on screen, so that is the
// direction the clockwise flag selects.

func radians(degrees float64, clockwise bool) float64 {
	rad := degrees * math.Pi / 180
	if !clockwise {
		rad = -rad
	}
	return rad
}

// Translate returns the point shifted by the given offsets.
func (p Point2[T]) Translate(dx, dy T) Point2[T] {
	if p.IsNull() {
		return NullPoint2[T]()
	}
	return NewPoint2(p.X()+dx, p.Y()+dy)
}

// Rotate returns the point rotated about another point by the given angle
// in degrees.
func (p Point2[T]) Rotate(about Point2[T], degrees float64, clockwise bool) Point2[T] {
	if p.IsNull() || about.IsNull() {
		return NullPoint2[T]()
	}
	rad := radians(degrees, clockwise)
	sin, cos := math.Sincos(rad)
	cx, cy := float64(about.X()), float64(about.Y())
	dx := float64(p.X()) - cx
	dy := float64(p.Y()) - cy
	return NewPoint2(
		RoundNearest[T](cx+dx*cos-dy*sin),
		RoundNearest[T](cy+dx*sin+dy*cos),
	)
}

// Mirror returns the point reflected across the infinite line. A null or
// degenerate mirror line gives the null point.
func (p Point2[T]) Mirror(over Line2[T]) Point2[T] {
	if p.IsNull() || over.IsNull() || over.Pt1.Equals(over.Pt2) {
		return NullPoint2[T]()
	}
	ax, ay := float64(over.Pt1.X()), float64(over.Pt1.Y())
	dx := float64(over.Pt2.X()) - ax
	dy := float64(over.Pt2.Y()) - ay
	px := float64(p.X()) - ax
	py := float64(p.Y()) - ay
	t := (px*dx + py*dy) / (dx*dx + dy*dy)
	projX := ax + t*dx
	projY := ay + t*dy
	return NewPoint2(
		RoundNearest[T](2*projX-float64(p.X())),
		RoundNearest[T](2*projY-float64(p.Y())),
	)
}

func (s Segment2[T]) Translate(dx, dy T) Segment2[T] {
	return Segment2[T]{Pt1: s.Pt1.Translate(dx, dy), Pt2: s.Pt2.Translate(dx, dy)}
}

func (s Segment2[T]) Rotate(about Point2[T], degrees float64, clockwise bool) Segment2[T] {
	return Segment2[T]{
		Pt1: s.Pt1.Rotate(about, degrees, clockwise),
		Pt2: s.Pt2.Rotate(about, degrees, clockwise),
	}
}

func (s Segment2[T]) Mirror(over Line2[T]) Segment2[T] {
	return Segment2[T]{Pt1: s.Pt1.Mirror(over), Pt2: s.Pt2.Mirror(over)}
}

func (l Line2[T]) Translate(dx, dy T) Line2[T] {
	return Line2[T]{Pt1: l.Pt1.Translate(dx, dy), Pt2: l.Pt2.Translate(dx, dy)}
}

func (l Line2[T]) Rotate(about Point2[T], degrees float64, clockwise bool) Line2[T] {
	return Line2[T]{
		Pt1: l.Pt1.Rotate(about, degrees, clockwise),
		Pt2: l.Pt2.Rotate(about, degrees, clockwise),
	}
}

func (l Line2[T]) Mirror(over Line2[T]) Line2[T] {
	return Line2[T]{Pt1: l.Pt1.Mirror(over), Pt2: l.Pt2.Mirror(over)}
}

// transformHull maps a vertex transform over the hull and rebuilds the
// polygon from the results. Vertices that come back null are dropped by the
// rebuild, so a transform with a null reference nulls the whole polygon
// through the ordinary insertion path.
func transformHull[T Scalar](p Polygon2[T], fn func(Point2[T]) Point2[T]) Polygon2[T] {
	if p.IsNull() {
		return NullPolygon2[T]()
	}
	moved := make([]Point2[T], len(p.hull))
	for i, pt := range p.hull {
		moved[i] = fn(pt)
	}
	return NewPolygon2(moved...)
}

func (p Polygon2[T]) Translate(dx, dy T) Polygon2[T] {
	return transformHull(p, func(pt Point2[T]) Point2[T] {
		return pt.Translate(dx, dy)
	})
}

func (p Polygon2[T]) Rotate(about Point2[T], degrees float64, clockwise bool) Polygon2[T] {
	return transformHull(p, func(pt Point2[T]) Point2[T] {
		return pt.Rotate(about, degrees, clockwise)
	})
}

func (p Polygon2[T]) Mirror(over Line2[T]) Polygon2[T] {
	return transformHull(p, func(pt Point2[T]) Point2[T] {
		return pt.Mirror(over)
	})
}

// OverlapPoint reports containment. It returns the point itself when it
// lies inside the hull or on its boundary, and the null point otherwise.
// The hull order guarantees every interior point is a left turn, or
// collinear, from every directed edge.
func (p Polygon2[T]) OverlapPoint(pt Point2[T]) Point2[T] {
	if p.IsNull() || pt.IsNull() {
		return NullPoint2[T]()
	}
	n := len(p.hull)
	for i := 0; i < n; i++ {
		a := p.hull[i]
		b := p.hull[CircularIndex(i+1, n)]
		if turnDirection(a, b, pt) < 0 {
			return NullPoint2[T]()
		}
	}
	return pt
}

// OverlapLine reports whether the infinite line passes through the hull. It
// returns the line itself when any hull vertex lies on it or when vertices
// fall on both sides of it, and the null line otherwise.
func (p Polygon2[T]) OverlapLine(line Line2[T]) Line2[T] {
	if p.IsNull() || line.IsNull() || line.Pt1.Equals(line.Pt2) {
		return NullLine2[T]()
	}
	sawLeft, sawRight := false, false
	for _, v := range p.hull {
		switch turnDirection(line.Pt1, line.Pt2, v) {
		case 0:
			return line
		case 1:
			sawLeft = true
		case -1:
			sawRight = true
		}
		if sawLeft && sawRight {
			return line
		}
	}
	return NullLine2[T]()
}
