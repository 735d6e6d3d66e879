// Package combi implements small combinatorics helpers: k-subsets and
// cartesian products. Both enumerate eagerly; they are meant for the modest
// candidate sets decision algorithms iterate over, not for combinatorial
// explosion.
package combi

// Combinations returns all k-element subsets of items, each in the items'
// original order, enumerated in lexicographic index order. Returns nil when
// k is negative or exceeds len(items); returns a single empty subset for
// k == 0.
func Combinations[T any](items []T, k int) [][]T {
	if k < 0 || k > len(items) {
		return nil
	}
	if k == 0 {
		return [][]T{{}}
	}

	var out [][]T
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}

	for {
		subset := make([]T, k)
		for i, j := range idx {
			subset[i] = items[j]
		}
		out = append(out, subset)

		// Advance the rightmost index that can still move.
		i := k - 1
		for i >= 0 && idx[i] == len(items)-k+i {
			i--
		}
		if i < 0 {
			return out
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

// Product returns the cartesian product of the given sets in odometer order:
// the last set varies fastest. Returns a single empty tuple when called with
// no sets, and nil when any set is empty.
func Product[T any](sets ...[]T) [][]T {
	total := 1
	for _, set := range sets {
		if len(set) == 0 {
			return nil
		}
		total *= len(set)
	}

	out := make([][]T, 0, total)
	idx := make([]int, len(sets))

	for {
		tuple := make([]T, len(sets))
		for i, j := range idx {
			tuple[i] = sets[i][j]
		}
		out = append(out, tuple)

		i := len(sets) - 1
		for i >= 0 {
			idx[i]++
			if idx[i] < len(sets[i]) {
				break
			}
			idx[i] = 0
			i--
		}
		if i < 0 {
			return out
		}
	}
}
