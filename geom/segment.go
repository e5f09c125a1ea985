package geom

import (
	"fmt"
	"math"
)

// A Segment2 is the bounded piece of line between two endpoints. It carries
// no invariant of its own. Nullity is inherited from the endpoints, so a
// segment with either endpoint null is a null segment.
type Segment2[T Scalar] struct {
	Pt1, Pt2 Point2[T]
}

func NewSegment2[T Scalar](pt1, pt2 Point2[T]) Segment2[T] {
	return Segment2[T]{Pt1: pt1, Pt2: pt2}
}

func NullSegment2[T Scalar]() Segment2[T] {
	return Segment2[T]{Pt1: NullPoint2[T](), Pt2: NullPoint2[T]()}
}

// Length returns the Euclidean distance between the endpoints, or NaN for a
// null segment.
func (s Segment2[T]) Length() float64 {
	if s.IsNull() {
		return math.NaN()
	}
	dx := float64(s.Pt2.X()) - float64(s.Pt1.X())
	dy := float64(s.Pt2.Y()) - float64(s.Pt1.Y())
	return math.Hypot(dx, dy)
}

func (s Segment2[T]) IsNull() bool {
	return s.Pt1.IsNull() || s.Pt2.IsNull()
}

// Equals treats all null segments as equal to each other, no matter which
// endpoint made them null.
func (s Segment2[T]) Equals(other Segment2[T]) bool {
	if s.IsNull() || other.IsNull() {
		return s.IsNull() && other.IsNull()
	}
	return s.Pt1.Equals(other.Pt1) && s.Pt2.Equals(other.Pt2)
}

func (s Segment2[T]) String() string {
	if s.IsNull() {
		return "(null segment)"
	}
	return fmt.Sprintf("%v - %v", s.Pt1, s.Pt2)
}

// A Line2 is the unbounded line through two points. Transforms that need a
// reference line, mirroring in particular, take one of these rather than a
// segment so the bounded extent is explicitly irrelevant.
type Line2[T Scalar] struct {
	Pt1, Pt2 Point2[T]
}

func NewLine2[T Scalar](pt1, pt2 Point2[T]) Line2[T] {
	return Line2[T]{Pt1: pt1, Pt2: pt2}
}

func NullLine2[T Scalar]() Line2[T] {
	return Line2[T]{Pt1: NullPoint2[T](), Pt2: NullPoint2[T]()}
}

// MakeLine extends a segment to the infinite line through its endpoints.
func MakeLine[T Scalar](s Segment2[T]) Line2[T] {
	return Line2[T]{Pt1: s.Pt1, Pt2: s.Pt2}
}

func (l Line2[T]) IsNull() bool {
	return l.Pt1.IsNull() || l.Pt2.IsNull()
}

func (l Line2[T]) Equals(other Line2[T]) bool {
	if l.IsNull() || other.IsNull() {
		return l.IsNull() && other.IsNull()
	}
	return l.Pt1.Equals(other.Pt1) && l.Pt2.Equals(other.Pt2)
}

func (l Line2[T]) String() string {
	if l.IsNull() {
		return "(null line)"
	}
	return fmt.Sprintf("%v - %v", l.Pt1, l.Pt2)
}
