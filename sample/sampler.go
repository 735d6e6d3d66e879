package sample

import "sort"

// Sampler draws items from a fixed weighted distribution.
//
// The cumulative-weight table is built once at construction; the item
// sequence is captured by copy, so callers may mutate their input slices
// afterward. Rebuild the sampler to change the distribution.
//
// Sampler is not safe for concurrent use.
type Sampler[T any] struct {
	items []T
	cum   []float64
	opts  options
}

// New creates a Sampler over items with the given parallel non-negative
// weights.
//
// Errors: ErrNoItems for an empty sequence, ErrLengthMismatch when the
// slices differ in length, *InvalidWeightError for a negative weight and
// ErrDegenerateDistribution when every weight is zero.
func New[T any](items []T, weights []float64, opts ...Option) (*Sampler[T], error) {
	if len(items) == 0 {
		return nil, ErrNoItems
	}
	if len(items) != len(weights) {
		return nil, ErrLengthMismatch
	}

	s := &Sampler[T]{
		items: make([]T, len(items)),
		cum:   make([]float64, len(weights)),
	}
	copy(s.items, items)

	for _, opt := range opts {
		opt(&s.opts)
	}

	sum := 0.0
	for i, w := range weights {
		if w < 0 {
			return nil, &InvalidWeightError{Index: i, Weight: w}
		}
		sum += w
		s.cum[i] = sum
	}
	if sum == 0 {
		return nil, ErrDegenerateDistribution
	}

	return s, nil
}

// Draw returns one item, selected with probability proportional to its
// weight. O(log n).
func (s *Sampler[T]) Draw() T {
	total := s.cum[len(s.cum)-1]
	r := s.opts.uniform() * total

	// First index whose cumulative weight exceeds r. Zero-weight items have
	// zero-length cumulative intervals and are never selected.
	i := sort.Search(len(s.cum), func(i int) bool { return s.cum[i] > r })
	if i >= len(s.cum) {
		// Floating rounding pushed r past the last cumulative sum. Clamp to
		// the last positively weighted index so zero-weight items stay
		// undrawable.
		i = len(s.cum) - 1
		for i > 0 && s.cum[i] == s.cum[i-1] {
			i--
		}
	}

	return s.items[i]
}

// DrawN returns n independent draws with replacement.
func (s *Sampler[T]) DrawN(n int) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = s.Draw()
	}
	return out
}

// Len returns the number of candidate items.
func (s *Sampler[T]) Len() int { return len(s.items) }

// Total returns the sum of all weights.
func (s *Sampler[T]) Total() float64 { return s.cum[len(s.cum)-1] }
