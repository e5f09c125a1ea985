package geom

import (
	"math"
	"slices"
	"strings"

	"github.com/pkg/errors"
)

// ErrAreaUnsupported is returned by Polygon2.Area, which is deliberately
// unimplemented.
var ErrAreaUnsupported = errors.New("polygon area is not implemented")

// Large point sets are folded into the hull in fixed size batches, so the
// scan works over the surviving hull plus one batch at a time instead of
// sorting the entire set at once.
const hullBatchSize = 100

// A Polygon2 is a convex polygon, the convex hull of every point inserted
// into it. It keeps its hull vertices in the canonical order the scan
// produces (anchor first, then counterclockwise by angle) along with a
// cached bounding box that is recomputed on every insertion.
//
// A polygon with fewer than three hull vertices is null. It still remembers
// the points it has accepted, so inserting more points later can bring it
// back to a valid hull, but every query treats it as empty until then.
type Polygon2[T Scalar] struct {
	hull []Point2[T]
	bbox Rect2[T]
}

// NewPolygon2 builds a polygon from the convex hull of the given points.
// Null points are dropped. Fewer than three surviving hull vertices leave
// the polygon null.
func NewPolygon2[T Scalar](points ...Point2[T]) Polygon2[T] {
	p := NullPolygon2[T]()
	p.AddPoints(points...)
	return p
}

func NullPolygon2[T Scalar]() Polygon2[T] {
	return Polygon2[T]{bbox: NullRect2[T]()}
}

// AddPoints inserts points into the polygon, dropping null ones, and
// rebuilds the hull and bounding box. Insertion is the only way a polygon
// changes state.
func (p *Polygon2[T]) AddPoints(points ...Point2[T]) {
	// A copied polygon shares its hull's backing array, and the scan below
	// swaps and sorts in place. Grow into a fresh slice so inserting into
	// one copy cannot reorder the vertices of another.
	work := make([]Point2[T], len(p.hull), len(p.hull)+len(points))
	copy(work, p.hull)
	p.hull = work

	pending := 0
	for _, pt := range points {
		if pt.IsNull() {
			continue
		}
		p.hull = append(p.hull, pt)
		pending++
		if pending == hullBatchSize {
			p.grahamHull()
			pending = 0
		}
	}
	p.grahamHull()
	p.calcBoundingBox()
}

// Size returns the number of hull vertices, zero for a null polygon.
func (p Polygon2[T]) Size() int {
	if len(p.hull) < 3 {
		return 0
	}
	return len(p.hull)
}

// At returns the i'th hull vertex in canonical order. The index must be
// less than Size.
func (p Polygon2[T]) At(i int) Point2[T] {
	if i < 0 || i >= p.Size() {
		fatalf("hull index %d out of range for size %d", i, p.Size())
	}
	return p.hull[i]
}

// Vertices returns a copy of the hull vertex sequence, nil for a null
// polygon.
func (p Polygon2[T]) Vertices() []Point2[T] {
	if p.IsNull() {
		return nil
	}
	out := make([]Point2[T], len(p.hull))
	copy(out, p.hull)
	return out
}

func (p Polygon2[T]) IsNull() bool {
	return len(p.hull) < 3
}

// BoundingBox returns the tight axis aligned box around the hull, or the
// null rect for a null polygon.
func (p Polygon2[T]) BoundingBox() Rect2[T] {
	if p.IsNull() {
		return NullRect2[T]()
	}
	return p.bbox
}

func (p Polygon2[T]) Width() T {
	return p.BoundingBox().Width()
}

func (p Polygon2[T]) Height() T {
	return p.BoundingBox().Height()
}

// Area is unsupported and reports ErrAreaUnsupported alongside a zero
// result.
func (p Polygon2[T]) Area() (float64, error) {
	return 0, ErrAreaUnsupported
}

// Perimeter returns the summed length of the hull edges, zero for a null
// polygon.
func (p Polygon2[T]) Perimeter() float64 {
	if p.IsNull() {
		return 0
	}
	var perim float64
	for i := range p.hull {
		next := p.hull[CircularIndex(i+1, len(p.hull))]
		perim += NewSegment2(p.hull[i], next).Length()
	}
	return perim
}

// Equals compares two polygons. The bounding boxes give a cheap reject, and
// since both hulls come out of the same deterministic sort and scan, the
// vertex sequences of equal polygons line up index by index with no need
// for a rotation invariant comparison.
func (p Polygon2[T]) Equals(other Polygon2[T]) bool {
	if !p.BoundingBox().Equals(other.BoundingBox()) {
		return false
	}
	if p.IsNull() || other.IsNull() {
		return p.IsNull() && other.IsNull()
	}
	if len(p.hull) != len(other.hull) {
		return false
	}
	for i := range p.hull {
		if !p.hull[i].Equals(other.hull[i]) {
			return false
		}
	}
	return true
}

func (p Polygon2[T]) String() string {
	if p.IsNull() {
		return "(null polygon)"
	}
	parts := make([]string, len(p.hull))
	for i, pt := range p.hull {
		parts[i] = pt.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// turnDirection classifies the turn taken at a when walking o, a, b. It
// returns 1 for a left turn, -1 for a right turn, and 0 when the three
// points are collinear within tolerance. The cross product is evaluated in
// float64 but classified with the epsilon of T, so integer instantiations
// get an exact sign while float ones tolerate their own rounding noise.
func turnDirection[T Scalar](o, a, b Point2[T]) int {
	lhs := (float64(a.X()) - float64(o.X())) * (float64(b.Y()) - float64(o.Y()))
	rhs := (float64(a.Y()) - float64(o.Y())) * (float64(b.X()) - float64(o.X()))
	eps := float64(Epsilon[T]())
	if math.Abs(lhs-rhs) <= eps*(math.Abs(lhs)+math.Abs(rhs)+1) {
		return 0
	}
	if lhs > rhs {
		return 1
	}
	return -1
}

func distanceSq[T Scalar](a, b Point2[T]) float64 {
	dx := float64(b.X()) - float64(a.X())
	dy := float64(b.Y()) - float64(a.Y())
	return dx*dx + dy*dy
}

// grahamHull replaces the working point set with its convex hull.
//
// The anchor is the lowest point, leftmost on a tie, which is guaranteed to
// be a hull vertex. The remaining points are sorted by polar angle around
// it, and on equal angles the nearer point sorts first, so that when a ray
// holds several collinear points the scan meets them nearest to farthest
// and pops each one as the next arrives. The scan itself keeps a stack of
// hull candidates and pops whenever the top stops being a strict left turn,
// which purges right turns and collinear points alike, duplicates included.
//
// Fewer than three input points leave the working set untouched. If the
// scan itself purges the set below three vertices, the survivors stay as
// the working set of a now null polygon.
func (p *Polygon2[T]) grahamHull() {
	if len(p.hull) < 3 {
		return
	}

	pts := p.hull
	best := 0
	for i, pt := range pts {
		if LessThan(pt.Y(), pts[best].Y()) {
			best = i
		} else if Equal(pt.Y(), pts[best].Y()) && LessThan(pt.X(), pts[best].X()) {
			best = i
		}
	}
	pts[0], pts[best] = pts[best], pts[0]
	anchor := pts[0]

	ax, ay := float64(anchor.X()), float64(anchor.Y())
	slices.SortFunc(pts[1:], func(l, r Point2[T]) int {
		langle := math.Atan2(float64(l.Y())-ay, float64(l.X())-ax)
		rangle := math.Atan2(float64(r.Y())-ay, float64(r.X())-ax)
		if Equal(langle, rangle) {
			ld, rd := distanceSq(anchor, l), distanceSq(anchor, r)
			switch {
			case ld < rd:
				return -1
			case ld > rd:
				return 1
			default:
				return 0
			}
		}
		if langle < rangle {
			return -1
		}
		return 1
	})

	stack := pointStack[T]{pts[0], pts[1]}
	for _, next := range pts[2:] {
		for len(stack) >= 2 && turnDirection(stack[len(stack)-2], stack.Peek(), next) <= 0 {
			stack.Pop()
		}
		stack.Push(next)
	}

	p.hull = stack
}

// calcBoundingBox recomputes the cached box as the component-wise min and
// max over the hull, using the tolerant comparisons so a float hull does
// not grow the box over rounding noise.
func (p *Polygon2[T]) calcBoundingBox() {
	if len(p.hull) < 3 {
		p.bbox = NullRect2[T]()
		return
	}
	l, r := p.hull[0].X(), p.hull[0].X()
	t, b := p.hull[0].Y(), p.hull[0].Y()
	for _, pt := range p.hull[1:] {
		if LessThan(pt.X(), l) {
			l = pt.X()
		}
		if GreaterThan(pt.X(), r) {
			r = pt.X()
		}
		if LessThan(pt.Y(), t) {
			t = pt.Y()
		}
		if GreaterThan(pt.Y(), b) {
			b = pt.Y()
		}
	}
	p.bbox = NewRect2(l, r, t, b)
}
