package container

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStack_LIFO(t *testing.T) {
	s := NewStack[string]()
	s.Push("a")
	s.Push("b")
	s.Push("c")

	require.Equal(t, 3, s.Len())

	top, ok := s.Peek()
	require.True(t, ok)
	assert.Equal(t, "c", top)

	for _, want := range []string{"c", "b", "a"} {
		got, err := s.Pop()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	assert.Equal(t, 0, s.Len())
}

func TestStack_PopEmpty(t *testing.T) {
	s := NewStack[int]()

	_, err := s.Pop()
	assert.ErrorIs(t, err, ErrEmptyContainer)

	_, ok := s.Peek()
	assert.False(t, ok)
}

func TestFIFOQueue_FIFO(t *testing.T) {
	q := NewFIFOQueue[string]()
	q.Extend("a", "b", "c")

	require.Equal(t, 3, q.Len())

	front, ok := q.Peek()
	require.True(t, ok)
	assert.Equal(t, "a", front)

	for _, want := range []string{"a", "b", "c"} {
		got, err := q.Pop()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	assert.Equal(t, 0, q.Len())
}

func TestFIFOQueue_PopEmpty(t *testing.T) {
	q := NewFIFOQueue[int]()

	_, err := q.Pop()
	assert.ErrorIs(t, err, ErrEmptyContainer)
}

func TestContainer_InterchangeableStrategies(t *testing.T) {
	// The same driver runs against any Container; only the discipline differs.
	drain := func(c Container[int]) []int {
		c.Extend(1, 2, 3)
		var out []int
		for c.Len() > 0 {
			v, err := c.Pop()
			require.NoError(t, err)
			out = append(out, v)
		}
		return out
	}

	assert.Equal(t, []int{3, 2, 1}, drain(NewStack[int]()))
	assert.Equal(t, []int{1, 2, 3}, drain(NewFIFOQueue[int]()))
	assert.Equal(t, []int{1, 2, 3}, drain(NewPriority(Ascending, func(v int) int { return v })))
	assert.Equal(t, []int{3, 2, 1}, drain(NewPriority(Descending, func(v int) int { return v })))
}
