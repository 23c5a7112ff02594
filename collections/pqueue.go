// SPDX-License-Identifier: Apache-2.0

package collections

import (
	"iter"

	"github.com/wundergraph/go-glcd/arena"
)

// PriorityQueue is a binary heap. The comparator decides the order: an
// element a for which cmp(a, b) < 0 is dequeued before b, so a min-heap and
// a max-heap differ only by the comparator's sign.
type PriorityQueue[T any] struct {
	arena arena.Arena
	heap  arena.Slice[T]
	cmp   CompareFunc[T]
}

// NewPriorityQueue creates an empty queue with room for capacity elements.
// A zero capacity selects DefaultCapacity.
func NewPriorityQueue[T any](a arena.Arena, capacity int, cmp CompareFunc[T]) (*PriorityQueue[T], error) {
	if a == nil || cmp == nil || capacity < 0 {
		return nil, ErrInvalidParams
	}
	if capacity == 0 {
		capacity = DefaultCapacity
	}
	heap, err := arena.MakeSlice[T](a, 0, capacity)
	if err != nil {
		return nil, noMemory(err)
	}
	return &PriorityQueue[T]{arena: a, heap: heap, cmp: cmp}, nil
}

// Free releases the queue's storage. The queue must not be used afterwards.
func (pq *PriorityQueue[T]) Free() error {
	err := arena.FreeSlice(pq.arena, pq.heap)
	pq.heap = arena.Slice[T]{}
	return err
}

// Enqueue adds elem in O(log n).
func (pq *PriorityQueue[T]) Enqueue(elem T) error {
	heap, err := arena.Append(pq.arena, pq.heap, elem)
	if err != nil {
		return noMemory(err)
	}
	pq.heap = heap
	pq.up(heap.Len() - 1)
	return nil
}

// Dequeue removes and returns the first element in O(log n).
func (pq *PriorityQueue[T]) Dequeue() (T, error) {
	var zero T
	n := pq.heap.Len()
	if n == 0 {
		return zero, ErrEmpty
	}
	items := pq.heap.Items()
	top := items[0]
	items[0] = items[n-1]
	items[n-1] = zero
	pq.heap = pq.heap.Resize(n - 1)
	pq.down(0)
	return top, nil
}

// Peek returns the first element without removing it, in O(1).
func (pq *PriorityQueue[T]) Peek() (T, error) {
	if pq.heap.Len() == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return pq.heap.Items()[0], nil
}

// Get returns the element at index in heap-array order.
func (pq *PriorityQueue[T]) Get(index int) (T, error) {
	if index < 0 || index >= pq.heap.Len() {
		var zero T
		return zero, ErrOutOfBounds
	}
	return pq.heap.Items()[index], nil
}

// Len returns the number of queued elements.
func (pq *PriorityQueue[T]) Len() int {
	return pq.heap.Len()
}

// IsEmpty reports whether the queue has no elements.
func (pq *PriorityQueue[T]) IsEmpty() bool {
	return pq.heap.Len() == 0
}

// Clear drops every element but keeps the reserved capacity.
func (pq *PriorityQueue[T]) Clear() {
	pq.heap = pq.heap.Resize(0)
}

// All yields the elements in heap-array order, which is not priority order.
func (pq *PriorityQueue[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, item := range pq.heap.Items() {
			if !yield(i, item) {
				return
			}
		}
	}
}

func (pq *PriorityQueue[T]) up(i int) {
	items := pq.heap.Items()
	for i > 0 {
		parent := (i - 1) / 2
		if pq.cmp(items[i], items[parent]) >= 0 {
			return
		}
		items[i], items[parent] = items[parent], items[i]
		i = parent
	}
}

func (pq *PriorityQueue[T]) down(i int) {
	items := pq.heap.Items()
	n := len(items)
	for {
		first := i
		left, right := 2*i+1, 2*i+2
		if left < n && pq.cmp(items[left], items[first]) < 0 {
			first = left
		}
		if right < n && pq.cmp(items[right], items[first]) < 0 {
			first = right
		}
		if first == i {
			return
		}
		items[i], items[first] = items[first], items[i]
		i = first
	}
}
