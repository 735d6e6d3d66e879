package mdp

import (
	"math/rand"

	"github.com/hupe1980/algokit"
)

type options struct {
	logger           *algokit.Logger
	maxIterations    int
	evaluationSweeps int
	source           *rand.Rand
}

// Option configures the solvers.
type Option func(*options)

// WithLogger injects the structured logger used for iteration and
// convergence logging. Defaults to a no-op logger.
func WithLogger(l *algokit.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = algokit.NoopLogger()
		}
		o.logger = l
	}
}

// WithMaxIterations caps the number of solver iterations. Defaults to 1000.
func WithMaxIterations(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxIterations = n
		}
	}
}

// WithEvaluationSweeps sets the number of Bellman sweeps per policy
// evaluation step in PolicyIteration. Defaults to 20.
func WithEvaluationSweeps(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.evaluationSweeps = n
		}
	}
}

// WithSource injects the random source used for tie breaking, random initial
// policies and trajectory sampling. If no source is supplied, the global
// math/rand source is used.
func WithSource(r *rand.Rand) Option {
	return func(o *options) {
		o.source = r
	}
}

func applyOptions(opts []Option) options {
	o := options{
		logger:           algokit.NoopLogger(),
		maxIterations:    1000,
		evaluationSweeps: 20,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func intn(r *rand.Rand, n int) int {
	if r != nil {
		return r.Intn(n)
	}
	return rand.Intn(n) // nolint gosec
}
