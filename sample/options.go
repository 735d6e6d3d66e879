package sample

import "math/rand"

type options struct {
	source *rand.Rand
}

// Option configures the random source used by Sampler and WeightedChoice.
type Option func(*options)

// WithSource injects the random source used for draws. Inject a seeded
// source for reproducible sampling; if no source is supplied, the global
// math/rand source is used.
func WithSource(r *rand.Rand) Option {
	return func(o *options) {
		o.source = r
	}
}

// uniform returns a uniform variate in [0, 1) from the configured source.
func (o *options) uniform() float64 {
	if o.source != nil {
		return o.source.Float64()
	}
	return rand.Float64() // nolint gosec
}
