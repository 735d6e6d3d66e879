package mdp

import (
	"context"
	"errors"
	"math"

	"github.com/hupe1980/algokit"
	"github.com/hupe1980/algokit/container"
	"github.com/hupe1980/algokit/sample"
)

// ErrIncompletePolicy is returned by Simulate when a non-terminal state has
// no policy entry.
var ErrIncompletePolicy = errors.New("mdp: policy has no action for state")

// Outcome is one stochastic successor of a (state, action) pair.
type Outcome[S comparable] struct {
	Prob  float64
	State S
}

// MDP describes a Markov decision process. Actions must return an empty
// sequence for terminal states; Transition probabilities for any
// (state, action) pair must sum to one.
type MDP[S comparable, A comparable] interface {
	// States returns every state of the process.
	States() []S

	// Actions returns the actions available in s; empty for terminal states.
	Actions(s S) []A

	// Reward returns the reward collected on entering s.
	Reward(s S) float64

	// Transition returns the successor distribution of taking a in s.
	Transition(s S, a A) []Outcome[S]

	// Discount returns the discount factor in (0, 1].
	Discount() float64
}

// ExpectedUtility returns the expected utility of taking action a in state s
// under the utility function u.
func ExpectedUtility[S comparable, A comparable](m MDP[S, A], u map[S]float64, s S, a A) float64 {
	total := 0.0
	for _, o := range m.Transition(s, a) {
		total += o.Prob * u[o.State]
	}
	return total
}

// ValueIteration solves m by iterating the Bellman update until the largest
// utility change drops below the convergence threshold derived from eps, or
// until the iteration budget is exhausted.
func ValueIteration[S comparable, A comparable](ctx context.Context, m MDP[S, A], eps float64, opts ...Option) (map[S]float64, error) {
	o := applyOptions(opts)
	logger := o.logger.WithAlgorithm("value-iteration")

	gamma := m.Discount()
	threshold := eps
	if gamma < 1 {
		threshold = eps * (1 - gamma) / gamma
	}

	states := m.States()
	u := make(map[S]float64, len(states))

	for iter := 1; iter <= o.maxIterations; iter++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		next := make(map[S]float64, len(states))
		delta := 0.0

		for _, s := range states {
			best := 0.0
			for i, a := range m.Actions(s) {
				q := ExpectedUtility(m, u, s, a)
				if i == 0 || q > best {
					best = q
				}
			}

			nu := m.Reward(s) + gamma*best
			next[s] = nu

			if d := math.Abs(nu - u[s]); d > delta {
				delta = d
			}
		}

		u = next
		logger.LogIteration(ctx, iter, delta)

		if delta <= threshold {
			logger.LogConvergence(ctx, iter, delta)
			return u, nil
		}
	}

	logger.WarnContext(ctx, "iteration budget exhausted",
		"max_iterations", o.maxIterations,
	)
	return u, nil
}

// BestPolicy derives the greedy policy for the utility function u, breaking
// ties between equally good actions uniformly at random. Terminal states get
// no policy entry.
func BestPolicy[S comparable, A comparable](m MDP[S, A], u map[S]float64, opts ...Option) map[S]A {
	o := applyOptions(opts)

	policy := make(map[S]A)
	for _, s := range m.States() {
		actions := m.Actions(s)
		if len(actions) == 0 {
			continue
		}

		best, err := algokit.ArgMaxRandomTie(actions, func(a A) float64 {
			return ExpectedUtility(m, u, s, a)
		}, o.source)
		if err != nil {
			continue
		}
		policy[s] = best
	}

	return policy
}

// PolicyIteration solves m by alternating truncated policy evaluation with
// greedy policy improvement, starting from a uniformly random policy. It
// returns the converged policy together with its utility function.
func PolicyIteration[S comparable, A comparable](ctx context.Context, m MDP[S, A], opts ...Option) (map[S]A, map[S]float64, error) {
	o := applyOptions(opts)
	logger := o.logger.WithAlgorithm("policy-iteration")

	states := m.States()
	u := make(map[S]float64, len(states))
	policy := make(map[S]A)

	for _, s := range states {
		if actions := m.Actions(s); len(actions) > 0 {
			policy[s] = actions[intn(o.source, len(actions))]
		}
	}

	for iter := 1; iter <= o.maxIterations; iter++ {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}

		u = evaluatePolicy(m, policy, u, o.evaluationSweeps)

		unchanged := true
		for _, s := range states {
			actions := m.Actions(s)
			if len(actions) == 0 {
				continue
			}

			best, err := algokit.ArgMaxRandomTie(actions, func(a A) float64 {
				return ExpectedUtility(m, u, s, a)
			}, o.source)
			if err != nil {
				continue
			}

			if ExpectedUtility(m, u, s, best) > ExpectedUtility(m, u, s, policy[s]) {
				policy[s] = best
				unchanged = false
			}
		}

		logger.LogIteration(ctx, iter, 0)

		if unchanged {
			logger.LogConvergence(ctx, iter, 0)
			return policy, u, nil
		}
	}

	logger.WarnContext(ctx, "iteration budget exhausted",
		"max_iterations", o.maxIterations,
	)
	return policy, u, nil
}

// evaluatePolicy runs a fixed number of Bellman sweeps for a fixed policy.
func evaluatePolicy[S comparable, A comparable](m MDP[S, A], policy map[S]A, u map[S]float64, sweeps int) map[S]float64 {
	gamma := m.Discount()
	states := m.States()

	for k := 0; k < sweeps; k++ {
		next := make(map[S]float64, len(states))
		for _, s := range states {
			expected := 0.0
			if a, ok := policy[s]; ok {
				expected = ExpectedUtility(m, u, s, a)
			}
			next[s] = m.Reward(s) + gamma*expected
		}
		u = next
	}

	return u
}

// Simulate rolls out policy from start for at most steps transitions,
// drawing each successor from the transition distribution. The returned
// trajectory includes start and stops early at terminal states.
func Simulate[S comparable, A comparable](m MDP[S, A], policy map[S]A, start S, steps int, opts ...Option) ([]S, error) {
	o := applyOptions(opts)

	trajectory := []S{start}
	s := start

	for i := 0; i < steps; i++ {
		if len(m.Actions(s)) == 0 {
			break // terminal
		}

		a, ok := policy[s]
		if !ok {
			return trajectory, ErrIncompletePolicy
		}

		outcomes := m.Transition(s, a)
		choices := make([]sample.Choice[S], len(outcomes))
		for j, out := range outcomes {
			choices[j] = sample.Choice[S]{Item: out.State, Weight: out.Prob}
		}

		next, _, err := sample.WeightedChoice(choices, sample.WithSource(o.source))
		if err != nil {
			return trajectory, err
		}

		s = next
		trajectory = append(trajectory, s)
	}

	return trajectory, nil
}

// RankStates returns the given states ordered by utility, best first. States
// of equal utility keep their input order.
func RankStates[S comparable](states []S, u map[S]float64) []S {
	pc := container.NewPriority(container.Descending, func(s S) float64 {
		return u[s]
	})
	pc.Extend(states...)

	out := make([]S, 0, pc.Len())
	for pc.Len() > 0 {
		s, err := pc.Pop()
		if err != nil {
			break
		}
		out = append(out, s)
	}

	return out
}
