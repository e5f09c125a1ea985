package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCircularIndex(t *testing.T) {
	n := 5
	expectedIndexes := []int{3, 4, 0, 1, 2, 3, 4, 0, 1, 2, 3, 4}
	for i := -2; i < len(expectedIndexes)-2; i++ {
		assert.Equal(t, expectedIndexes[i+2], CircularIndex(i, n))
	}
}

func TestPointStack(t *testing.T) {
	var stack pointStack[float64]
	assert.True(t, stack.Empty())

	a := NewPoint2(1.0, 2.0)
	b := NewPoint2(3.0, 4.0)
	c := NewPoint2(5.0, 6.0)

	stack.Push(a)
	stack.Push(b)
	assert.False(t, stack.Empty())
	assert.True(t, stack.Peek().Equals(b))
	assert.Equal(t, 2, len(stack))

	stack.Push(c)
	assert.True(t, stack.Pop().Equals(c))
	assert.True(t, stack.Pop().Equals(b))
	assert.True(t, stack.Pop().Equals(a))
	assert.True(t, stack.Empty())

	t.Run("popping an empty stack yields null", func(t *testing.T) {
		assert.True(t, stack.Pop().IsNull())
		assert.True(t, stack.Peek().IsNull())
	})
}
