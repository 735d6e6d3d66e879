package memo

import (
	"sync"
	"sync/atomic"

	"golang.org/x/sync/singleflight"
)

// Shared is a string-keyed memo table safe for concurrent use. Concurrent
// misses for the same key are collapsed into a single invocation of the
// wrapped function; all callers receive the same result.
//
// Shared layers synchronization on top of the memoization contract without
// changing it: the wrapped function must still be pure and deterministic,
// and the table only grows. Unlike Cache, the wrapped function may fail;
// failed computations are not cached and are retried on the next call.
type Shared[V any] struct {
	fn      func(key string) (V, error)
	mu      sync.RWMutex
	entries map[string]V
	group   singleflight.Group

	hits   atomic.Int64
	misses atomic.Int64
}

// NewShared creates a Shared cache around fn.
func NewShared[V any](fn func(key string) (V, error)) *Shared[V] {
	return &Shared[V]{
		fn:      fn,
		entries: make(map[string]V),
	}
}

// Evaluate returns the cached result for key, computing and storing it on
// the first call. Concurrent callers missing on the same key share one
// in-flight computation.
func (s *Shared[V]) Evaluate(key string) (V, error) {
	s.mu.RLock()
	v, ok := s.entries[key]
	s.mu.RUnlock()
	if ok {
		s.hits.Add(1)
		return v, nil
	}

	res, err, _ := s.group.Do(key, func() (any, error) {
		// Re-check under the group: a previous flight may have stored the
		// value between our read miss and this call.
		s.mu.RLock()
		v, ok := s.entries[key]
		s.mu.RUnlock()
		if ok {
			s.hits.Add(1)
			return v, nil
		}
		s.misses.Add(1)

		v, err := s.fn(key)
		if err != nil {
			return v, err
		}

		s.mu.Lock()
		s.entries[key] = v
		s.mu.Unlock()

		return v, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}

	return res.(V), nil
}

// Len returns the number of memoized entries.
func (s *Shared[V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Stats returns the hit and miss counters.
func (s *Shared[V]) Stats() (hits, misses int64) {
	return s.hits.Load(), s.misses.Load()
}
