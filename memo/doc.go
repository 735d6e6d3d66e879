// Package memo implements memoization caches for pure scoring functions.
//
// Cache is the single-threaded core: an unbounded memo table keyed by the
// call argument. Keyed adapts non-comparable argument types via a derived
// key, and Key2 composes two values into one cache key. Shared is the only
// concurrency-aware type, an opt-in layer for sharing a memo table across
// goroutines.
//
// All caches assume the wrapped function is pure and deterministic; wrapping
// a side-effecting function breaks the memoization contract.
package memo
