package container

import "errors"

// ErrEmptyContainer is returned by Pop on an empty container.
var ErrEmptyContainer = errors.New("container: empty container")

// Compile time checks to ensure all containers satisfy the Container interface.
var (
	_ Container[int] = (*Stack[int])(nil)
	_ Container[int] = (*FIFOQueue[int])(nil)
	_ Container[int] = (*PriorityContainer[int, int])(nil)
)

// Container is the shared surface of Stack, FIFOQueue and PriorityContainer.
// Pop returns ErrEmptyContainer when the container holds no items; callers
// that cannot tolerate the error should check Len first.
type Container[T comparable] interface {
	// Push adds an item to the container.
	Push(item T)

	// Pop removes and returns the next item under the container's discipline.
	Pop() (T, error)

	// Peek returns the next item without removing it.
	Peek() (T, bool)

	// Extend pushes each item in order.
	Extend(items ...T)

	// Len returns the number of items held.
	Len() int
}

// Stack is a LIFO container backed by a slice.
type Stack[T comparable] struct {
	items []T
}

// NewStack creates an empty Stack.
func NewStack[T comparable]() *Stack[T] {
	return &Stack[T]{}
}

// Push adds an item on top of the stack.
func (s *Stack[T]) Push(item T) {
	s.items = append(s.items, item)
}

// Pop removes and returns the most recently pushed item.
func (s *Stack[T]) Pop() (T, error) {
	var zero T
	n := len(s.items)
	if n == 0 {
		return zero, ErrEmptyContainer
	}

	item := s.items[n-1]
	s.items[n-1] = zero // Zero out for GC
	s.items = s.items[:n-1]

	return item, nil
}

// Peek returns the most recently pushed item without removing it.
func (s *Stack[T]) Peek() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}
	return s.items[len(s.items)-1], true
}

// Extend pushes each item in order.
func (s *Stack[T]) Extend(items ...T) {
	s.items = append(s.items, items...)
}

// Len returns the number of items on the stack.
func (s *Stack[T]) Len() int { return len(s.items) }

// FIFOQueue is a first-in first-out container backed by a slice.
type FIFOQueue[T comparable] struct {
	items []T
}

// NewFIFOQueue creates an empty FIFOQueue.
func NewFIFOQueue[T comparable]() *FIFOQueue[T] {
	return &FIFOQueue[T]{}
}

// Push adds an item to the back of the queue.
func (q *FIFOQueue[T]) Push(item T) {
	q.items = append(q.items, item)
}

// Pop removes and returns the item at the front of the queue.
func (q *FIFOQueue[T]) Pop() (T, error) {
	var zero T
	if len(q.items) == 0 {
		return zero, ErrEmptyContainer
	}

	item := q.items[0]
	q.items[0] = zero // Avoid holding a reference in the backing array
	q.items = q.items[1:]

	return item, nil
}

// Peek returns the item at the front of the queue without removing it.
func (q *FIFOQueue[T]) Peek() (T, bool) {
	if len(q.items) == 0 {
		var zero T
		return zero, false
	}
	return q.items[0], true
}

// Extend pushes each item in order.
func (q *FIFOQueue[T]) Extend(items ...T) {
	q.items = append(q.items, items...)
}

// Len returns the number of items in the queue.
func (q *FIFOQueue[T]) Len() int { return len(q.items) }
