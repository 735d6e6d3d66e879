package container

import "cmp"

// Entry is a (priority, item) pair held by a PriorityContainer.
type Entry[P cmp.Ordered, T any] struct {
	Priority P // Priority orders the entry within the container.
	Item     T // Item is the opaque payload; compared only by equality for Remove.
}

// PriorityContainer holds entries sorted by priority under its Order.
// Insertion locates its position by binary search, so the sequence is sorted
// at all times between operations; among entries of equal priority, relative
// insertion order is preserved (FIFO) for both orderings.
//
// The scorer passed to NewPriority computes the priority of items given to
// Push, Extend and ExtendFrom. Wrap the scorer with a memo.Cache to make
// repeated scoring of equal items cheap.
type PriorityContainer[P cmp.Ordered, T comparable] struct {
	order   Order
	score   func(T) P
	entries []Entry[P, T]
}

// NewPriority creates an empty PriorityContainer with the given order and
// scorer. The scorer may be nil when only PushWithPriority is used; Push
// with a nil scorer panics.
func NewPriority[P cmp.Ordered, T comparable](order Order, score func(T) P) *PriorityContainer[P, T] {
	return &PriorityContainer[P, T]{
		order: order,
		score: score,
	}
}

// Push inserts an item with priority computed by the container's scorer.
// O(log n) search plus O(n) shift.
func (pc *PriorityContainer[P, T]) Push(item T) {
	if pc.score == nil {
		panic("container: Push on PriorityContainer without a scorer")
	}
	pc.PushWithPriority(pc.score(item), item)
}

// PushWithPriority inserts an item with an explicit priority.
func (pc *PriorityContainer[P, T]) PushWithPriority(priority P, item T) {
	i := searchLast(pc.entries, priority, pc.order) + 1

	pc.entries = append(pc.entries, Entry[P, T]{})
	copy(pc.entries[i+1:], pc.entries[i:])
	pc.entries[i] = Entry[P, T]{Priority: priority, Item: item}
}

// Pop removes and returns the front item: the minimum priority for
// Ascending, the maximum for Descending.
func (pc *PriorityContainer[P, T]) Pop() (T, error) {
	e, err := pc.PopEntry()
	return e.Item, err
}

// PopEntry removes and returns the front entry together with its priority.
func (pc *PriorityContainer[P, T]) PopEntry() (Entry[P, T], error) {
	if len(pc.entries) == 0 {
		return Entry[P, T]{}, ErrEmptyContainer
	}

	e := pc.entries[0]
	pc.entries[0] = Entry[P, T]{} // Zero out for GC
	pc.entries = pc.entries[1:]

	return e, nil
}

// Peek returns the front item without removing it.
func (pc *PriorityContainer[P, T]) Peek() (T, bool) {
	if len(pc.entries) == 0 {
		var zero T
		return zero, false
	}
	return pc.entries[0].Item, true
}

// PeekEntry returns the front entry without removing it.
func (pc *PriorityContainer[P, T]) PeekEntry() (Entry[P, T], bool) {
	if len(pc.entries) == 0 {
		return Entry[P, T]{}, false
	}
	return pc.entries[0], true
}

// Remove deletes the first entry whose item equals the given value, scanning
// in front-to-back order. Removing an absent item is a no-op, not an error.
// O(n).
func (pc *PriorityContainer[P, T]) Remove(item T) {
	for i, e := range pc.entries {
		if e.Item == item {
			copy(pc.entries[i:], pc.entries[i+1:])
			pc.entries[len(pc.entries)-1] = Entry[P, T]{}
			pc.entries = pc.entries[:len(pc.entries)-1]
			return
		}
	}
}

// Extend pushes each item in order, computing every priority with this
// container's scorer.
func (pc *PriorityContainer[P, T]) Extend(items ...T) {
	for _, item := range items {
		pc.Push(item)
	}
}

// ExtendFrom pushes the item of every entry held by src, front to back.
// Priorities are recomputed with this container's scorer, never copied from
// src, so extending into a differently-scored container stays correct.
// src is not modified.
func (pc *PriorityContainer[P, T]) ExtendFrom(src *PriorityContainer[P, T]) {
	for _, e := range src.entries {
		pc.Push(e.Item)
	}
}

// Len returns the number of entries held.
func (pc *PriorityContainer[P, T]) Len() int { return len(pc.entries) }

// Entries returns a copy of the held entries in front-to-back order.
func (pc *PriorityContainer[P, T]) Entries() []Entry[P, T] {
	out := make([]Entry[P, T], len(pc.entries))
	copy(out, pc.entries)
	return out
}
