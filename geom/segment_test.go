package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSegment2Length(t *testing.T) {
	s := NewSegment2(NewPoint2(0.0, 0.0), NewPoint2(3.0, 4.0))
	assert.Equal(t, 5.0, s.Length())

	degenerate := NewSegment2(NewPoint2(2.0, 2.0), NewPoint2(2.0, 2.0))
	assert.Equal(t, 0.0, degenerate.Length())

	t.Run("integer segment measures in float", func(t *testing.T) {
		s := NewSegment2(NewPoint2[int32](0, 0), NewPoint2[int32](1, 1))
		assert.True(t, Equal(math.Sqrt2, s.Length()))
	})

	t.Run("null segment has no length", func(t *testing.T) {
		s := NewSegment2(NullPoint2[float64](), NewPoint2(3.0, 4.0))
		assert.True(t, math.IsNaN(s.Length()))
	})
}

func TestSegment2Null(t *testing.T) {
	valid := NewSegment2(NewPoint2(0.0, 0.0), NewPoint2(1.0, 1.0))
	assert.False(t, valid.IsNull())

	t.Run("either endpoint nulls the segment", func(t *testing.T) {
		assert.True(t, NewSegment2(NullPoint2[float64](), NewPoint2(1.0, 1.0)).IsNull())
		assert.True(t, NewSegment2(NewPoint2(1.0, 1.0), NullPoint2[float64]()).IsNull())
		assert.True(t, NullSegment2[float64]().IsNull())
	})

	t.Run("all null segments are equal", func(t *testing.T) {
		nullFirst := NewSegment2(NullPoint2[float64](), NewPoint2(1.0, 1.0))
		nullSecond := NewSegment2(NewPoint2(9.0, 9.0), NullPoint2[float64]())
		assert.True(t, nullFirst.Equals(nullSecond))
		assert.True(t, nullSecond.Equals(NullSegment2[float64]()))
	})

	t.Run("null never equals valid", func(t *testing.T) {
		assert.False(t, valid.Equals(NullSegment2[float64]()))
		assert.False(t, NullSegment2[float64]().Equals(valid))
	})
}

func TestSegment2Equals(t *testing.T) {
	a := NewSegment2(NewPoint2(0.1+0.2, 0.0), NewPoint2(1.0, 1.0))
	b := NewSegment2(NewPoint2(0.3, 0.0), NewPoint2(1.0, 1.0))
	assert.True(t, a.Equals(b))

	// Endpoint order matters, a segment is directed by construction.
	flipped := NewSegment2(b.Pt2, b.Pt1)
	assert.False(t, a.Equals(flipped))
}

func TestSegment2String(t *testing.T) {
	s := NewSegment2(NewPoint2[int32](1, 2), NewPoint2[int32](3, 4))
	assert.Equal(t, "(1, 2) - (3, 4)", s.String())
	assert.Equal(t, "(null segment)", NullSegment2[int32]().String())
}

func TestLine2(t *testing.T) {
	t.Run("MakeLine carries the endpoints over", func(t *testing.T) {
		s := NewSegment2(NewPoint2(1.0, 2.0), NewPoint2(3.0, 4.0))
		l := MakeLine(s)
		assert.True(t, l.Pt1.Equals(s.Pt1))
		assert.True(t, l.Pt2.Equals(s.Pt2))
		assert.False(t, l.IsNull())
	})

	t.Run("null endpoint nulls the line", func(t *testing.T) {
		l := NewLine2(NewPoint2(1.0, 2.0), NullPoint2[float64]())
		assert.True(t, l.IsNull())
		assert.True(t, l.Equals(NullLine2[float64]()))
		assert.True(t, MakeLine(NullSegment2[float64]()).IsNull())
	})

	t.Run("equality", func(t *testing.T) {
		a := NewLine2(NewPoint2(0.0, 0.0), NewPoint2(1.0, 1.0))
		b := NewLine2(NewPoint2(0.0, 0.0), NewPoint2(1.0, 1.0))
		c := NewLine2(NewPoint2(0.0, 0.0), NewPoint2(2.0, 1.0))
		assert.True(t, a.Equals(b))
		assert.False(t, a.Equals(c))
	})

	t.Run("string", func(t *testing.T) {
		l := NewLine2(NewPoint2[int32](0, 0), NewPoint2[int32](1, 1))
		assert.Equal(t, "(0, 0) - (1, 1)", l.String())
		assert.Equal(t, "(null line)", NullLine2[int32]().String())
	})
}
