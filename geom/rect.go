package geom

import "fmt"

// A Rect2 is an axis aligned rectangle stored as its four bounds. The
// coordinate system follows screen convention, y grows downward, so top is
// the smaller y value and bottom the larger one.
//
// A rect whose bounds are inverted (left past right, or top past bottom) or
// that holds a sentinel in any field is null, and every constructor and
// setter normalizes such a rect to all-sentinel immediately. That keeps the
// null test cheap and makes all null rects identical.
type Rect2[T Scalar] struct {
	l, r, t, b T
}

func NewRect2[T Scalar](left, right, top, bottom T) Rect2[T] {
	rect := Rect2[T]{l: left, r: right, t: top, b: bottom}
	rect.normalize()
	return rect
}

// RectWithSize builds a rect from its top left corner and an extent. A null
// corner gives a null rect, as does a negative extent, since that inverts
// the bounds.
func RectWithSize[T Scalar](corner Point2[T], width, height T) Rect2[T] {
	if corner.IsNull() {
		return NullRect2[T]()
	}
	return NewRect2(corner.X(), corner.X()+width, corner.Y(), corner.Y()+height)
}

func NullRect2[T Scalar]() Rect2[T] {
	invalid := Invalid[T]()
	return Rect2[T]{l: invalid, r: invalid, t: invalid, b: invalid}
}

func (rc *Rect2[T]) normalize() {
	fields := [4]T{rc.l, rc.r, rc.t, rc.b}
	if anyInvalid(fields[:]) || GreaterThan(rc.l, rc.r) || GreaterThan(rc.t, rc.b) {
		*rc = NullRect2[T]()
	}
}

func (rc Rect2[T]) IsNull() bool {
	fields := [4]T{rc.l, rc.r, rc.t, rc.b}
	return anyInvalid(fields[:])
}

func (rc Rect2[T]) Left() T   { return rc.l }
func (rc Rect2[T]) Right() T  { return rc.r }
func (rc Rect2[T]) Top() T    { return rc.t }
func (rc Rect2[T]) Bottom() T { return rc.b }

func (rc *Rect2[T]) SetLeft(v T) {
	rc.l = v
	rc.normalize()
}

func (rc *Rect2[T]) SetRight(v T) {
	rc.r = v
	rc.normalize()
}

func (rc *Rect2[T]) SetTop(v T) {
	rc.t = v
	rc.normalize()
}

func (rc *Rect2[T]) SetBottom(v T) {
	rc.b = v
	rc.normalize()
}

func (rc Rect2[T]) Width() T {
	if rc.IsNull() {
		return 0
	}
	return rc.r - rc.l
}

func (rc Rect2[T]) Height() T {
	if rc.IsNull() {
		return 0
	}
	return rc.b - rc.t
}

func (rc Rect2[T]) Area() T {
	return rc.Width() * rc.Height()
}

func (rc Rect2[T]) Perimeter() T {
	return 2 * (rc.Width() + rc.Height())
}

// Corner accessors. On a null rect the sentinel fields flow into the point
// constructor and come back out as the null point.

func (rc Rect2[T]) TopLeft() Point2[T]     { return NewPoint2(rc.l, rc.t) }
func (rc Rect2[T]) TopRight() Point2[T]    { return NewPoint2(rc.r, rc.t) }
func (rc Rect2[T]) BottomLeft() Point2[T]  { return NewPoint2(rc.l, rc.b) }
func (rc Rect2[T]) BottomRight() Point2[T] { return NewPoint2(rc.r, rc.b) }

// Edge accessors return the four boundary lines.

func (rc Rect2[T]) LeftEdge() Line2[T]   { return NewLine2(rc.TopLeft(), rc.BottomLeft()) }
func (rc Rect2[T]) RightEdge() Line2[T]  { return NewLine2(rc.TopRight(), rc.BottomRight()) }
func (rc Rect2[T]) TopEdge() Line2[T]    { return NewLine2(rc.TopLeft(), rc.TopRight()) }
func (rc Rect2[T]) BottomEdge() Line2[T] { return NewLine2(rc.BottomLeft(), rc.BottomRight()) }

// Equals holds when all four bounds match, or when both rects are null. It
// does not matter how each became null.
func (rc Rect2[T]) Equals(other Rect2[T]) bool {
	if rc.IsNull() || other.IsNull() {
		return rc.IsNull() && other.IsNull()
	}
	return Equal(rc.l, other.l) && Equal(rc.r, other.r) &&
		Equal(rc.t, other.t) && Equal(rc.b, other.b)
}

func (rc Rect2[T]) String() string {
	if rc.IsNull() {
		return "(null rect)"
	}
	return fmt.Sprintf("[l=%v r=%v t=%v b=%v]", rc.l, rc.r, rc.t, rc.b)
}
