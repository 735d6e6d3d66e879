// Package algokit provides small generic containers and helpers for search
// and decision algorithms.
//
// Algokit is an embeddable toolkit for frontier management, memoized scoring
// and randomized sampling. It is deliberately small: the pieces with real
// algorithmic subtlety (stable binary-search insertion, cumulative-weight
// sampling, cache-key correctness) live here, everything else stays with the
// caller.
//
// # Quick Start
//
// Priority frontier:
//
//	pc := container.NewPriority(container.Ascending, func(n Node) int { return n.Cost })
//	pc.Push(start)
//	for pc.Len() > 0 {
//	    n, _ := pc.Pop()
//	    // expand n ...
//	}
//
// Memoized scoring:
//
//	score := memo.New(expensiveHeuristic)
//	pc := container.NewPriority(container.Ascending, score.Evaluate)
//
// Weighted sampling:
//
//	s, _ := sample.New([]string{"a", "b", "c"}, []float64{1, 2, 3})
//	picked := s.Draw()
//
// # Packages
//
//   - container — Stack, FIFOQueue and the binary-search PriorityContainer
//   - memo      — unbounded memoization cache plus a concurrent layer
//   - sample    — weighted sampler and single-shot weighted choice
//   - combi     — k-subsets and cartesian products
//   - mdp       — example consumer: grid-world MDP solvers
//
// # Concurrency Model
//
// All core containers are single-threaded by design: each instance is owned
// by exactly one goroutine. The only concurrency-aware type is memo.Shared,
// an explicit opt-in layer for sharing a memo table across goroutines.
//
// # Randomness
//
// Everything randomized accepts an injectable *rand.Rand so tests can pin a
// seed; nothing reads the global source unless no source is supplied.
package algokit
