// Package sample implements weighted random selection.
//
// Sampler pre-computes a cumulative-weight table once and answers each draw
// with a binary search against a uniform variate, which makes repeated draws
// from the same distribution O(log n). WeightedChoice is the single-shot
// form: one linear accumulate-and-compare scan, no table retained.
//
// Both reject negative weights and all-zero distributions at construction or
// call time, and both accept an injectable *rand.Rand so tests can pin a
// seed.
package sample
