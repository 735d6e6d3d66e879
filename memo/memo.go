package memo

// Cache wraps a pure function with an unbounded memo table keyed by the call
// argument. The table only grows: at most one entry per distinct key, no
// eviction, no TTL.
//
// Cache is not safe for concurrent use; see Shared for a concurrent layer.
type Cache[K comparable, V any] struct {
	fn      func(K) V
	entries map[K]V

	hits   int64
	misses int64
}

// New creates a Cache around fn.
func New[K comparable, V any](fn func(K) V) *Cache[K, V] {
	return &Cache[K, V]{
		fn:      fn,
		entries: make(map[K]V),
	}
}

// Evaluate returns the cached result for k, computing and storing it on the
// first call. fn runs at most once per distinct key.
func (c *Cache[K, V]) Evaluate(k K) V {
	if v, ok := c.entries[k]; ok {
		c.hits++
		return v
	}
	c.misses++

	v := c.fn(k)
	c.entries[k] = v
	return v
}

// Len returns the number of memoized entries.
func (c *Cache[K, V]) Len() int { return len(c.entries) }

// Stats returns the hit and miss counters.
func (c *Cache[K, V]) Stats() (hits, misses int64) {
	return c.hits, c.misses
}

// Key2 composes two comparable values into a single cache key, e.g. a
// (problem, item) pair for context-dependent scoring.
type Key2[K1, K2 comparable] struct {
	A K1
	B K2
}

// Keyed memoizes a function whose argument type is not comparable, using a
// caller-supplied key derivation. The key function must be injective over
// the arguments actually used, otherwise distinct arguments alias the same
// cache entry.
type Keyed[A any, K comparable, V any] struct {
	fn      func(A) V
	key     func(A) K
	entries map[K]V

	hits   int64
	misses int64
}

// NewKeyed creates a Keyed cache around fn with the given key derivation.
func NewKeyed[A any, K comparable, V any](fn func(A) V, key func(A) K) *Keyed[A, K, V] {
	return &Keyed[A, K, V]{
		fn:      fn,
		key:     key,
		entries: make(map[K]V),
	}
}

// Evaluate returns the cached result for a, computing and storing it on the
// first call with an equivalent key.
func (c *Keyed[A, K, V]) Evaluate(a A) V {
	k := c.key(a)
	if v, ok := c.entries[k]; ok {
		c.hits++
		return v
	}
	c.misses++

	v := c.fn(a)
	c.entries[k] = v
	return v
}

// Len returns the number of memoized entries.
func (c *Keyed[A, K, V]) Len() int { return len(c.entries) }

// Stats returns the hit and miss counters.
func (c *Keyed[A, K, V]) Stats() (hits, misses int64) {
	return c.hits, c.misses
}
