package geom

// Often we want to walk a vertex sequence as a circular buffer. This gives
// the modular index for length n, but unlike the raw modulo operator, it only
// gives positive values.
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

// Stack of points used by the hull scan. Since it is a named slice type, the
// scan can also index into it directly to reach the point under the top.
type pointStack[T Scalar] []Point2[T]

func (s *pointStack[T]) Push(p Point2[T]) {
	*s = append(*s, p)
}

func (s *pointStack[T]) Pop() Point2[T] {
	if len(*s) == 0 {
		return NullPoint2[T]()
	}
	p := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return p
}

func (s *pointStack[T]) Peek() Point2[T] {
	if len(*s) == 0 {
		return NullPoint2[T]()
	}
	return (*s)[len(*s)-1]
}

func (s *pointStack[T]) Empty() bool {
	return len(*s) == 0
}
