package algokit

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgMax(t *testing.T) {
	got, err := ArgMax([]string{"bb", "a", "dddd", "ccc"}, func(s string) int { return len(s) })
	require.NoError(t, err)
	assert.Equal(t, "dddd", got)
}

func TestArgMax_FirstWinsOnTies(t *testing.T) {
	got, err := ArgMax([]string{"aa", "bb", "cc"}, func(s string) int { return len(s) })
	require.NoError(t, err)
	assert.Equal(t, "aa", got)
}

func TestArgMin(t *testing.T) {
	got, err := ArgMin([]int{4, -2, 7, 0}, func(v int) int { return v })
	require.NoError(t, err)
	assert.Equal(t, -2, got)
}

func TestArgMax_Empty(t *testing.T) {
	_, err := ArgMax(nil, func(v int) int { return v })
	assert.ErrorIs(t, err, ErrEmptySequence)

	_, err = ArgMin([]int{}, func(v int) int { return v })
	assert.ErrorIs(t, err, ErrEmptySequence)
}

func TestArgMaxRandomTie_ReturnsAnOptimum(t *testing.T) {
	rng := rand.New(rand.NewSource(5))

	items := []string{"xx", "y", "zz", "w"}
	for i := 0; i < 100; i++ {
		got, err := ArgMaxRandomTie(items, func(s string) int { return len(s) }, rng)
		require.NoError(t, err)
		assert.Contains(t, []string{"xx", "zz"}, got)
	}
}

func TestArgMaxRandomTie_UniformOverTies(t *testing.T) {
	rng := rand.New(rand.NewSource(13))

	items := []string{"aa", "bb", "cc"}
	counts := make(map[string]int)

	const n = 3000
	for i := 0; i < n; i++ {
		got, err := ArgMaxRandomTie(items, func(s string) int { return len(s) }, rng)
		require.NoError(t, err)
		counts[got]++
	}

	require.Len(t, counts, 3)
	for item, count := range counts {
		assert.InDelta(t, 1.0/3.0, float64(count)/n, 0.05, "item %s", item)
	}
}

func TestArgMinRandomTie(t *testing.T) {
	rng := rand.New(rand.NewSource(21))

	items := []int{3, 1, 5, 1, 9}
	seen := make(map[int]bool)
	for i := 0; i < 200; i++ {
		got, err := ArgMinRandomTie(items, func(v int) int { return v }, rng)
		require.NoError(t, err)
		assert.Equal(t, 1, got)
		seen[got] = true
	}
	assert.Len(t, seen, 1)
}

func TestArgMaxRandomTie_NilSourceUsesGlobal(t *testing.T) {
	got, err := ArgMaxRandomTie([]int{1, 2, 2}, func(v int) int { return v }, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, got)
}
