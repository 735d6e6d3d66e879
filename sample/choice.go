package sample

// Choice is an (item, weight) pair for WeightedChoice.
type Choice[T any] struct {
	Item   T
	Weight float64
}

// WeightedChoice draws one choice with probability proportional to its
// weight, returning the selected item and its weight. It scans the pairs
// once and keeps no state, which suits one-off selections; use Sampler when
// drawing repeatedly from the same distribution.
//
// Errors: ErrNoItems for an empty sequence, *InvalidWeightError for a
// negative weight and ErrDegenerateDistribution when every weight is zero.
func WeightedChoice[T any](choices []Choice[T], opts ...Option) (T, float64, error) {
	var zero T
	if len(choices) == 0 {
		return zero, 0, ErrNoItems
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	total := 0.0
	for i, c := range choices {
		if c.Weight < 0 {
			return zero, 0, &InvalidWeightError{Index: i, Weight: c.Weight}
		}
		total += c.Weight
	}
	if total == 0 {
		return zero, 0, ErrDegenerateDistribution
	}

	r := o.uniform() * total

	acc := 0.0
	for _, c := range choices {
		acc += c.Weight
		if acc > r {
			return c.Item, c.Weight, nil
		}
	}

	// Floating rounding left r at or past the accumulated total; fall back
	// to the last positively weighted choice.
	for i := len(choices) - 1; i >= 0; i-- {
		if choices[i].Weight > 0 {
			return choices[i].Item, choices[i].Weight, nil
		}
	}

	return zero, 0, ErrDegenerateDistribution
}
