// Package container implements the frontier containers used by search and
// decision algorithms: a LIFO Stack, a FIFOQueue and a PriorityContainer.
//
// All three satisfy the Container interface, so algorithm code can switch
// search strategies by swapping the container. PriorityContainer keeps its
// entries sorted at all times via binary-search insertion; among entries of
// equal priority, insertion order is preserved for both orderings.
//
// Containers are not safe for concurrent use. Each instance is owned by a
// single goroutine.
package container
