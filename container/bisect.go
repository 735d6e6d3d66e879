package container

import "cmp"

// Order selects the sort direction of a PriorityContainer.
type Order int

const (
	// Ascending keeps the minimum priority at the front; Pop returns it.
	Ascending Order = iota

	// Descending keeps the maximum priority at the front; Pop returns it.
	Descending
)

// before reports whether priority a sorts strictly before priority b under
// the given order.
func before[P cmp.Ordered](a, b P, order Order) bool {
	if order == Descending {
		return a > b
	}
	return a < b
}

// searchFirst returns the smallest index i such that entries[i].Priority is
// not ordered strictly before p, i.e. the start of the equal range or the
// insertion point when no equal entry exists. entries must be sorted under
// order. O(log n).
func searchFirst[P cmp.Ordered, T any](entries []Entry[P, T], p P, order Order) int {
	lo, hi := 0, len(entries)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if before(entries[mid].Priority, p, order) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// searchLast returns the largest index i such that p is not ordered strictly
// before entries[i].Priority, i.e. the end of the equal range. Returns -1
// when every entry sorts strictly after p. entries must be sorted under
// order. O(log n).
func searchLast[P cmp.Ordered, T any](entries []Entry[P, T], p P, order Order) int {
	lo, hi := 0, len(entries)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if before(p, entries[mid].Priority, order) {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo - 1
}

// locate returns the half-open range [lo, hi) of entries whose priority
// equals p. When no entry matches, lo == hi and both give the insertion
// point immediately after the nearest entry sorting before p. New entries
// always insert at hi, so insertion order among equal priorities is
// preserved for both orderings.
func locate[P cmp.Ordered, T any](entries []Entry[P, T], p P, order Order) (lo, hi int) {
	return searchFirst(entries, p, order), searchLast(entries, p, order) + 1
}
