package geom

import "math"

// Scalar is the closed set of element types a primitive can be instantiated
// with. Integer types compare exactly. Float types compare with a relative
// tolerance, because after a few transforms two values that are meant to be
// the same coordinate will rarely share a bit pattern.
type Scalar interface {
	int8 | int16 | int32 | int64 |
		uint8 | uint16 | uint32 | uint64 |
		float32 | float64
}

// Epsilon returns the machine precision gap of T, or zero for integer types.
// A zero epsilon is what switches every comparison below to exact mode.
func Epsilon[T Scalar]() T {
	var eps T
	switch p := any(&eps).(type) {
	case *float32:
		*p = 0x1p-23
	case *float64:
		*p = 0x1p-52
	}
	return eps
}

// Invalid returns the sentinel marking a coordinate as null: positive
// infinity where T can represent it, otherwise the maximum value of T.
func Invalid[T Scalar]() T {
	var v T
	switch p := any(&v).(type) {
	case *int8:
		*p = math.MaxInt8
	case *int16:
		*p = math.MaxInt16
	case *int32:
		*p = math.MaxInt32
	case *int64:
		*p = math.MaxInt64
	case *uint8:
		*p = math.MaxUint8
	case *uint16:
		*p = math.MaxUint16
	case *uint32:
		*p = math.MaxUint32
	case *uint64:
		*p = math.MaxUint64
	case *float32:
		*p = float32(math.Inf(1))
	case *float64:
		*p = math.Inf(1)
	}
	return v
}

// Inexact reports whether T compares with a tolerance.
func Inexact[T Scalar]() bool {
	return Epsilon[T]() != 0
}

// Equal is the one equality used throughout the package. For floats it holds
// when |a-b| <= eps*(|a|+|b|+1), a relative tolerance that scales with the
// magnitude of the operands. The +1 keeps it from collapsing to zero near the
// origin, where coordinates are most often exactly zero.
func Equal[T Scalar](a, b T) bool {
	eps := float64(Epsilon[T]())
	if eps == 0 {
		return a == b
	}
	fa, fb := float64(a), float64(b)
	return math.Abs(fa-fb) <= eps*(math.Abs(fa)+math.Abs(fb)+1)
}

// LessThan holds when a is less than b by more than the tolerance. Values
// within tolerance of each other are neither less than nor greater than one
// another, which keeps Equal and LessThan mutually consistent.
func LessThan[T Scalar](a, b T) bool {
	eps := float64(Epsilon[T]())
	if eps == 0 {
		return a < b
	}
	fa, fb := float64(a), float64(b)
	return fb-fa > eps*(math.Abs(fa)+math.Abs(fb)+1)
}

func NotEqual[T Scalar](a, b T) bool {
	return !Equal(a, b)
}

func GreaterThan[T Scalar](a, b T) bool {
	return LessThan(b, a)
}

func LessThanEq[T Scalar](a, b T) bool {
	return !LessThan(b, a)
}

func GreaterThanEq[T Scalar](a, b T) bool {
	return !LessThan(a, b)
}

// RoundNearest converts a float64 intermediate back to T, rounding to the
// nearest representable value. Go's conversion to an integer type truncates
// toward zero, so nudging the value half a unit away from zero first turns
// that truncation into round-to-nearest. Float targets convert directly.
func RoundNearest[T Scalar](v float64) T {
	if Inexact[T]() {
		return T(v)
	}
	if v < 0 {
		v -= 0.5
	} else {
		v += 0.5
	}
	return T(v)
}
