package algokit

import (
	"cmp"
	"errors"
	"math/rand"
)

var (
	// ErrEmptySequence is returned when an argmax/argmin helper is given no items.
	ErrEmptySequence = errors.New("empty sequence")
)

// ArgMax returns the item with the highest score. Ties resolve to the first
// such item in sequence order.
func ArgMax[T any, P cmp.Ordered](items []T, score func(T) P) (T, error) {
	var best T
	if len(items) == 0 {
		return best, ErrEmptySequence
	}

	best = items[0]
	bestScore := score(best)

	for _, item := range items[1:] {
		if s := score(item); s > bestScore {
			best, bestScore = item, s
		}
	}

	return best, nil
}

// ArgMin returns the item with the lowest score. Ties resolve to the first
// such item in sequence order.
func ArgMin[T any, P cmp.Ordered](items []T, score func(T) P) (T, error) {
	var best T
	if len(items) == 0 {
		return best, ErrEmptySequence
	}

	best = items[0]
	bestScore := score(best)

	for _, item := range items[1:] {
		if s := score(item); s < bestScore {
			best, bestScore = item, s
		}
	}

	return best, nil
}

// ArgMaxRandomTie returns an item with the highest score, choosing uniformly
// at random among tied items. If r is nil, the global random source is used.
func ArgMaxRandomTie[T any, P cmp.Ordered](items []T, score func(T) P, r *rand.Rand) (T, error) {
	var best T
	if len(items) == 0 {
		return best, ErrEmptySequence
	}

	best = items[0]
	bestScore := score(best)
	ties := 1

	// Reservoir-style tie break: the k-th tied item replaces the current
	// winner with probability 1/k, which is uniform over all tied items.
	for _, item := range items[1:] {
		s := score(item)
		switch {
		case s > bestScore:
			best, bestScore = item, s
			ties = 1
		case s == bestScore:
			ties++
			if intn(r, ties) == 0 {
				best = item
			}
		}
	}

	return best, nil
}

// ArgMinRandomTie returns an item with the lowest score, choosing uniformly
// at random among tied items. If r is nil, the global random source is used.
func ArgMinRandomTie[T any, P cmp.Ordered](items []T, score func(T) P, r *rand.Rand) (T, error) {
	var best T
	if len(items) == 0 {
		return best, ErrEmptySequence
	}

	best = items[0]
	bestScore := score(best)
	ties := 1

	for _, item := range items[1:] {
		s := score(item)
		switch {
		case s < bestScore:
			best, bestScore = item, s
			ties = 1
		case s == bestScore:
			ties++
			if intn(r, ties) == 0 {
				best = item
			}
		}
	}

	return best, nil
}

func intn(r *rand.Rand, n int) int {
	if r != nil {
		return r.Intn(n)
	}
	return rand.Intn(n) // nolint gosec
}
