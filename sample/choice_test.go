package sample

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeightedChoice_Validation(t *testing.T) {
	_, _, err := WeightedChoice([]Choice[string]{})
	assert.ErrorIs(t, err, ErrNoItems)

	_, _, err = WeightedChoice([]Choice[string]{{Item: "a", Weight: -1}})
	assert.ErrorIs(t, err, ErrInvalidWeight)

	_, _, err = WeightedChoice([]Choice[string]{
		{Item: "a", Weight: 0},
		{Item: "b", Weight: 0},
	})
	assert.ErrorIs(t, err, ErrDegenerateDistribution)
}

func TestWeightedChoice_ReturnsItemAndWeight(t *testing.T) {
	item, weight, err := WeightedChoice([]Choice[string]{{Item: "only", Weight: 2.5}})
	require.NoError(t, err)
	assert.Equal(t, "only", item)
	assert.Equal(t, 2.5, weight)
}

func TestWeightedChoice_ZeroWeightNeverChosen(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	choices := []Choice[string]{
		{Item: "never", Weight: 0},
		{Item: "always", Weight: 1},
		{Item: "never-either", Weight: 0},
	}

	for i := 0; i < 1000; i++ {
		item, weight, err := WeightedChoice(choices, WithSource(rng))
		require.NoError(t, err)
		assert.Equal(t, "always", item)
		assert.Equal(t, 1.0, weight)
	}
}

func TestWeightedChoice_Frequencies(t *testing.T) {
	rng := rand.New(rand.NewSource(9))

	choices := []Choice[string]{
		{Item: "a", Weight: 1},
		{Item: "b", Weight: 3},
	}

	const n = 4000
	b := 0
	for i := 0; i < n; i++ {
		item, _, err := WeightedChoice(choices, WithSource(rng))
		require.NoError(t, err)
		if item == "b" {
			b++
		}
	}

	assert.InDelta(t, 0.75, float64(b)/n, 0.04)
}
