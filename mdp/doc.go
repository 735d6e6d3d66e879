// Package mdp implements Markov decision process solvers as the canonical
// consumer of the algokit containers: value iteration and policy iteration
// over a generic MDP interface, plus a stochastic grid world.
//
// The solvers only need a utility map keyed by state, per-state action
// enumeration and argmax-with-random-tie-break — everything else (memoized
// transition models, weighted successor sampling, utility ranking) is
// borrowed from the algokit packages.
package mdp
