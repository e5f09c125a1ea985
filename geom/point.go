package geom

import "fmt"

// Points double as vectors. There is no separate vector type, the root
// package just aliases the same instantiations under vector names.
//
// The null convention: a coordinate holding the Invalid sentinel marks the
// whole point as null, and every construction or mutation path collapses the
// remaining coordinates to the sentinel too, so a point is either fully valid
// or fully null. Sentinel detection is a raw comparison rather than a
// tolerance one. Tolerance comparison of two infinities works out to
// NaN <= NaN, which is false, exactly the wrong answer here.

func anyInvalid[T Scalar](coords []T) bool {
	invalid := Invalid[T]()
	for _, c := range coords {
		if c == invalid {
			return true
		}
	}
	return false
}

func collapseInvalid[T Scalar](coords []T) {
	if !anyInvalid(coords) {
		return
	}
	invalid := Invalid[T]()
	for i := range coords {
		coords[i] = invalid
	}
}

// Initialize a coordinate array from a constructor's value list. Omitted
// trailing coordinates stay zero. Supplying more values than the dimension
// holds is a contract violation, not bad data.
func fillCoords[T Scalar](dst, values []T) {
	if len(values) > len(dst) {
		fatalf("too many coordinates: got %d for dimension %d", len(values), len(dst))
	}
	copy(dst, values)
	collapseInvalid(dst)
}

// Coordinate-wise equality. Sentinels are handled raw before the tolerance
// comparison sees them: two sentinels match, and a sentinel against a valid
// coordinate never does. For float types the sentinel is infinity, and
// feeding that to the relative tolerance gives Inf <= Inf, which would call
// a null coordinate equal to anything.
func coordsEqual[T Scalar](a, b []T) bool {
	invalid := Invalid[T]()
	for i := range a {
		if a[i] == invalid || b[i] == invalid {
			if a[i] != b[i] {
				return false
			}
			continue
		}
		if NotEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

func dotCoords[T Scalar](a, b []T) T {
	var sum T
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

// A Point2 is a 2D point or vector. The zero value is the origin.
type Point2[T Scalar] struct {
	data [2]T
}

// NewPoint2 builds a point from up to two coordinates, zero-filling the
// rest. A sentinel coordinate nulls the whole point.
func NewPoint2[T Scalar](values ...T) Point2[T] {
	var p Point2[T]
	fillCoords(p.data[:], values)
	return p
}

// NullPoint2 returns the null point, the canonical "no such point" value.
func NullPoint2[T Scalar]() Point2[T] {
	invalid := Invalid[T]()
	return Point2[T]{data: [2]T{invalid, invalid}}
}

func (p Point2[T]) Dim() int { return 2 }

func (p Point2[T]) X() T { return p.data[0] }
func (p Point2[T]) Y() T { return p.data[1] }

// At returns the i'th coordinate. The index must be in range, this is the
// bounds-checked access the setters share.
func (p Point2[T]) At(i int) T {
	if i < 0 || i >= len(p.data) {
		fatalf("coordinate index %d out of range for dimension %d", i, len(p.data))
	}
	return p.data[i]
}

func (p *Point2[T]) SetX(v T) { p.Set(0, v) }
func (p *Point2[T]) SetY(v T) { p.Set(1, v) }

// Set stores a coordinate and re-checks the null invariant, so writing a
// sentinel through here nulls the point just like constructing with one.
func (p *Point2[T]) Set(i int, v T) {
	if i < 0 || i >= len(p.data) {
		fatalf("coordinate index %d out of range for dimension %d", i, len(p.data))
	}
	p.data[i] = v
	collapseInvalid(p.data[:])
}

func (p Point2[T]) IsNull() bool {
	return anyInvalid(p.data[:])
}

// Equals treats two null points as equal. A null point never equals a valid
// one.
func (p Point2[T]) Equals(other Point2[T]) bool {
	return coordsEqual(p.data[:], other.data[:])
}

func (p Point2[T]) Add(other Point2[T]) Point2[T] {
	if p.IsNull() || other.IsNull() {
		return NullPoint2[T]()
	}
	return NewPoint2(p.data[0]+other.data[0], p.data[1]+other.data[1])
}

func (p Point2[T]) Sub(other Point2[T]) Point2[T] {
	if p.IsNull() || other.IsNull() {
		return NullPoint2[T]()
	}
	return NewPoint2(p.data[0]-other.data[0], p.data[1]-other.data[1])
}

func (p Point2[T]) Dot(other Point2[T]) T {
	return dotCoords(p.data[:], other.data[:])
}

// Cross returns the scalar 2D cross product, the z component of the 3D cross
// of the two vectors lifted into the plane. Its sign gives the turn
// direction from p to other.
func (p Point2[T]) Cross(other Point2[T]) T {
	return p.data[0]*other.data[1] - p.data[1]*other.data[0]
}

func (p Point2[T]) String() string {
	if p.IsNull() {
		return "(null)"
	}
	return fmt.Sprintf("(%v, %v)", p.data[0], p.data[1])
}

// A Point3 is a 3D point or vector. The zero value is the origin.
type Point3[T Scalar] struct {
	data [3]T
}

func NewPoint3[T Scalar](values ...T) Point3[T] {
	var p Point3[T]
	fillCoords(p.data[:], values)
	return p
}

func NullPoint3[T Scalar]() Point3[T] {
	invalid := Invalid[T]()
	return Point3[T]{data: [3]T{invalid, invalid, invalid}}
}

func (p Point3[T]) Dim() int { return 3 }

func (p Point3[T]) X() T { return p.data[0] }
func (p Point3[T]) Y() T { return p.data[1] }
func (p Point3[T]) Z() T { return p.data[2] }

func (p Point3[T]) At(i int) T {
	if i < 0 || i >= len(p.data) {
		fatalf("coordinate index %d out of range for dimension %d", i, len(p.data))
	}
	return p.data[i]
}

func (p *Point3[T]) SetX(v T) { p.Set(0, v) }
func (p *Point3[T]) SetY(v T) { p.Set(1, v) }
func (p *Point3[T]) SetZ(v T) { p.Set(2, v) }

func (p *Point3[T]) Set(i int, v T) {
	if i < 0 || i >= len(p.data) {
		fatalf("coordinate index %d out of range for dimension %d", i, len(p.data))
	}
	p.data[i] = v
	collapseInvalid(p.data[:])
}

func (p Point3[T]) IsNull() bool {
	return anyInvalid(p.data[:])
}

func (p Point3[T]) Equals(other Point3[T]) bool {
	return coordsEqual(p.data[:], other.data[:])
}

func (p Point3[T]) Dot(other Point3[T]) T {
	return dotCoords(p.data[:], other.data[:])
}

// Cross returns the right-handed vector cross product.
func (p Point3[T]) Cross(other Point3[T]) Point3[T] {
	if p.IsNull() || other.IsNull() {
		return NullPoint3[T]()
	}
	return NewPoint3(
		p.data[1]*other.data[2]-p.data[2]*other.data[1],
		p.data[2]*other.data[0]-p.data[0]*other.data[2],
		p.data[0]*other.data[1]-p.data[1]*other.data[0],
	)
}

func (p Point3[T]) String() string {
	if p.IsNull() {
		return "(null)"
	}
	return fmt.Sprintf("(%v, %v, %v)", p.data[0], p.data[1], p.data[2])
}

// A Point4 is a 4D point or vector, the homogeneous-coordinate companion of
// Point3. The zero value is the origin.
type Point4[T Scalar] struct {
	data [4]T
}

func NewPoint4[T Scalar](values ...T) Point4[T] {
	var p Point4[T]
	fillCoords(p.data[:], values)
	return p
}

func NullPoint4[T Scalar]() Point4[T] {
	invalid := Invalid[T]()
	return Point4[T]{data: [4]T{invalid, invalid, invalid, invalid}}
}

func (p Point4[T]) Dim() int { return 4 }

func (p Point4[T]) X() T { return p.data[0] }
func (p Point4[T]) Y() T { return p.data[1] }
func (p Point4[T]) Z() T { return p.data[2] }
func (p Point4[T]) W() T { return p.data[3] }

func (p Point4[T]) At(i int) T {
	if i < 0 || i >= len(p.data) {
		fatalf("coordinate index %d out of range for dimension %d", i, len(p.data))
	}
	return p.data[i]
}

func (p *Point4[T]) SetX(v T) { p.Set(0, v) }
func (p *Point4[T]) SetY(v T) { p.Set(1, v) }
func (p *Point4[T]) SetZ(v T) { p.Set(2, v) }
func (p *Point4[T]) SetW(v T) { p.Set(3, v) }

func (p *Point4[T]) Set(i int, v T) {
	if i < 0 || i >= len(p.data) {
		fatalf("coordinate index %d out of range for dimension %d", i, len(p.data))
	}
	p.data[i] = v
	collapseInvalid(p.data[:])
}

func (p Point4[T]) IsNull() bool {
	return anyInvalid(p.data[:])
}

func (p Point4[T]) Equals(other Point4[T]) bool {
	return coordsEqual(p.data[:], other.data[:])
}

func (p Point4[T]) Dot(other Point4[T]) T {
	return dotCoords(p.data[:], other.data[:])
}

func (p Point4[T]) String() string {
	if p.IsNull() {
		return "(null)"
	}
	return fmt.Sprintf("(%v, %v, %v, %v)", p.data[0], p.data[1], p.data[2], p.data[3])
}
