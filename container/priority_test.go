package container

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriorityContainer_AscendingPopsMinimum(t *testing.T) {
	pc := NewPriority(Ascending, func(v int) int { return v })
	pc.Extend(4, 1, 3, 2)

	var got []int
	for pc.Len() > 0 {
		v, err := pc.Pop()
		require.NoError(t, err)
		got = append(got, v)
	}

	assert.Equal(t, []int{1, 2, 3, 4}, got)
}

func TestPriorityContainer_DescendingPopsMaximum(t *testing.T) {
	pc := NewPriority(Descending, func(v int) int { return v })
	pc.Extend(4, 1, 3, 2)

	var got []int
	for pc.Len() > 0 {
		v, err := pc.Pop()
		require.NoError(t, err)
		got = append(got, v)
	}

	assert.Equal(t, []int{4, 3, 2, 1}, got)
}

func TestPriorityContainer_PopAlwaysReturnsCurrentOptimum(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	pc := NewPriority(Ascending, func(v int) int { return v })

	held := 0
	minHeld := int(^uint(0) >> 1)
	for i := 0; i < 500; i++ {
		if held == 0 || rng.Intn(3) > 0 {
			v := rng.Intn(100)
			pc.Push(v)
			held++
			if v < minHeld {
				minHeld = v
			}
			continue
		}

		v, err := pc.Pop()
		require.NoError(t, err)
		assert.Equal(t, minHeld, v)
		held--

		// Recompute the minimum of what remains.
		minHeld = int(^uint(0) >> 1)
		for _, e := range pc.Entries() {
			if e.Priority < minHeld {
				minHeld = e.Priority
			}
		}
	}
}

type job struct {
	Priority int
	Name     string
}

func TestPriorityContainer_StableAmongEqualPriorities(t *testing.T) {
	pc := NewPriority(Ascending, func(j job) int { return j.Priority })

	pc.Push(job{5, "first-five"})
	pc.Push(job{3, "three"})
	pc.Push(job{5, "second-five"})
	pc.Push(job{1, "one"})

	var got []string
	for pc.Len() > 0 {
		j, err := pc.Pop()
		require.NoError(t, err)
		got = append(got, j.Name)
	}

	// Priorities pop as [1 3 5 5]; the two fives keep their push order.
	assert.Equal(t, []string{"one", "three", "first-five", "second-five"}, got)
}

func TestPriorityContainer_StableAmongEqualPriorities_Descending(t *testing.T) {
	pc := NewPriority(Descending, func(j job) int { return j.Priority })

	pc.Push(job{5, "first-five"})
	pc.Push(job{3, "three"})
	pc.Push(job{5, "second-five"})
	pc.Push(job{9, "nine"})

	var got []string
	for pc.Len() > 0 {
		j, err := pc.Pop()
		require.NoError(t, err)
		got = append(got, j.Name)
	}

	// Equal priorities stay in push order under Descending as well.
	assert.Equal(t, []string{"nine", "first-five", "second-five", "three"}, got)
}

func TestPriorityContainer_PushWithPriority(t *testing.T) {
	pc := NewPriority[int, string](Ascending, nil)
	pc.PushWithPriority(2, "b")
	pc.PushWithPriority(1, "a")

	e, err := pc.PopEntry()
	require.NoError(t, err)
	assert.Equal(t, 1, e.Priority)
	assert.Equal(t, "a", e.Item)
}

func TestPriorityContainer_PushWithoutScorerPanics(t *testing.T) {
	pc := NewPriority[int, string](Ascending, nil)

	assert.Panics(t, func() {
		pc.Push("a")
	})
}

func TestPriorityContainer_PopEmpty(t *testing.T) {
	pc := NewPriority(Ascending, func(v int) int { return v })

	_, err := pc.Pop()
	assert.ErrorIs(t, err, ErrEmptyContainer)

	_, ok := pc.Peek()
	assert.False(t, ok)
}

func TestPriorityContainer_Remove(t *testing.T) {
	pc := NewPriority(Ascending, func(v string) int { return len(v) })
	pc.Extend("aa", "b", "ccc")

	pc.Remove("aa")

	var got []string
	for pc.Len() > 0 {
		v, err := pc.Pop()
		require.NoError(t, err)
		got = append(got, v)
	}

	assert.Equal(t, []string{"b", "ccc"}, got)
}

func TestPriorityContainer_RemoveMissingIsNoop(t *testing.T) {
	pc := NewPriority(Ascending, func(v string) int { return len(v) })
	pc.Extend("aa", "b", "ccc")

	before := pc.Entries()
	pc.Remove("never-pushed")

	assert.Equal(t, before, pc.Entries())
	assert.Equal(t, 3, pc.Len())
}

func TestPriorityContainer_ExtendFromRoundTrip(t *testing.T) {
	score := func(v string) int { return len(v) }

	src := NewPriority(Ascending, score)
	src.Extend("aaaa", "b", "cc", "ddd")

	dst := NewPriority(Ascending, score)
	dst.ExtendFrom(src)

	require.Equal(t, src.Len(), dst.Len())

	for src.Len() > 0 {
		want, err := src.Pop()
		require.NoError(t, err)
		got, err := dst.Pop()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestPriorityContainer_ExtendFromRescores(t *testing.T) {
	src := NewPriority(Ascending, func(v int) int { return v })
	src.Extend(1, 2, 3)

	// Destination scores by the negated value, so the pop order flips.
	dst := NewPriority(Ascending, func(v int) int { return -v })
	dst.ExtendFrom(src)

	var got []int
	for dst.Len() > 0 {
		v, err := dst.Pop()
		require.NoError(t, err)
		got = append(got, v)
	}

	assert.Equal(t, []int{3, 2, 1}, got)
	assert.Equal(t, 3, src.Len(), "source must not be drained")
}

func TestPriorityContainer_PeekEntry(t *testing.T) {
	pc := NewPriority(Descending, func(v int) int { return v })
	pc.Extend(1, 5, 3)

	e, ok := pc.PeekEntry()
	require.True(t, ok)
	assert.Equal(t, 5, e.Priority)
	assert.Equal(t, 3, pc.Len(), "peek must not remove")
}

func TestPriorityContainer_EntriesIsACopy(t *testing.T) {
	pc := NewPriority(Ascending, func(v int) int { return v })
	pc.Extend(2, 1)

	entries := pc.Entries()
	entries[0] = Entry[int, int]{Priority: 99, Item: 99}

	v, err := pc.Pop()
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}
