// SPDX-License-Identifier: Apache-2.0

package collections

import (
	"iter"
	"slices"

	"github.com/wundergraph/go-glcd/arena"
)

// Vector is a resizable array with O(1) indexed access.
type Vector[T any] struct {
	arena arena.Arena
	data  arena.Slice[T]
}

// NewVector creates a vector with room for capacity elements.
// A zero capacity selects DefaultCapacity.
func NewVector[T any](a arena.Arena, capacity int) (*Vector[T], error) {
	if a == nil || capacity < 0 {
		return nil, ErrInvalidParams
	}
	if capacity == 0 {
		capacity = DefaultCapacity
	}
	data, err := arena.MakeSlice[T](a, 0, capacity)
	if err != nil {
		return nil, noMemory(err)
	}
	return &Vector[T]{arena: a, data: data}, nil
}

// Free releases the vector's storage. The vector must not be used afterwards.
func (v *Vector[T]) Free() error {
	err := arena.FreeSlice(v.arena, v.data)
	v.data = arena.Slice[T]{}
	return err
}

// PushBack appends elem and returns its index.
func (v *Vector[T]) PushBack(elem T) (int, error) {
	data, err := arena.Append(v.arena, v.data, elem)
	if err != nil {
		return 0, noMemory(err)
	}
	v.data = data
	return data.Len() - 1, nil
}

// PushFront inserts elem at index 0. This is O(n).
func (v *Vector[T]) PushFront(elem T) error {
	return v.Insert(0, elem)
}

// Insert places elem at index, shifting later elements up.
// index may equal Len, which appends.
func (v *Vector[T]) Insert(index int, elem T) error {
	if index < 0 || index > v.data.Len() {
		return ErrOutOfBounds
	}
	data, err := arena.Grow(v.arena, v.data, 1)
	if err != nil {
		return noMemory(err)
	}
	data = data.Resize(data.Len() + 1)
	items := data.Items()
	copy(items[index+1:], items[index:])
	items[index] = elem
	v.data = data
	return nil
}

// PopBack removes and returns the last element.
func (v *Vector[T]) PopBack() (T, error) {
	var zero T
	n := v.data.Len()
	if n == 0 {
		return zero, ErrEmpty
	}
	elem := v.data.Items()[n-1]
	v.data.Items()[n-1] = zero
	v.data = v.data.Resize(n - 1)
	return elem, nil
}

// PopFront removes and returns the first element. This is O(n).
func (v *Vector[T]) PopFront() (T, error) {
	if v.data.Len() == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return v.RemoveAt(0)
}

// RemoveAt removes and returns the element at index.
func (v *Vector[T]) RemoveAt(index int) (T, error) {
	var zero T
	n := v.data.Len()
	if index < 0 || index >= n {
		return zero, ErrOutOfBounds
	}
	items := v.data.Items()
	elem := items[index]
	copy(items[index:], items[index+1:])
	items[n-1] = zero
	v.data = v.data.Resize(n - 1)
	return elem, nil
}

// Get returns a copy of the element at index.
func (v *Vector[T]) Get(index int) (T, error) {
	if index < 0 || index >= v.data.Len() {
		var zero T
		return zero, ErrOutOfBounds
	}
	return v.data.Items()[index], nil
}

// Ref returns a pointer to the element at index, valid until the vector grows.
func (v *Vector[T]) Ref(index int) (*T, error) {
	if index < 0 || index >= v.data.Len() {
		return nil, ErrOutOfBounds
	}
	return &v.data.Items()[index], nil
}

// Last returns a copy of the last element.
func (v *Vector[T]) Last() (T, error) {
	if v.data.Len() == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return v.data.Items()[v.data.Len()-1], nil
}

// LastRef returns a pointer to the last element.
func (v *Vector[T]) LastRef() (*T, error) {
	if v.data.Len() == 0 {
		return nil, ErrEmpty
	}
	return &v.data.Items()[v.data.Len()-1], nil
}

// Clear drops every element but keeps the reserved capacity.
func (v *Vector[T]) Clear() {
	v.data = v.data.Resize(0)
}

// Len returns the number of elements.
func (v *Vector[T]) Len() int {
	return v.data.Len()
}

// Cap returns the number of elements that fit without growing.
func (v *Vector[T]) Cap() int {
	return v.data.Cap()
}

// IsEmpty reports whether the vector has no elements.
func (v *Vector[T]) IsEmpty() bool {
	return v.data.Len() == 0
}

// Sort sorts the elements in place. The sort is stable.
func (v *Vector[T]) Sort(cmp CompareFunc[T]) error {
	if cmp == nil {
		return ErrInvalidParams
	}
	slices.SortStableFunc(v.data.Items(), cmp)
	return nil
}

// Search returns the index of the first element equal to elem under cmp.
func (v *Vector[T]) Search(elem T, cmp CompareFunc[T]) (int, error) {
	if cmp == nil {
		return 0, ErrInvalidParams
	}
	for i, item := range v.data.Items() {
		if cmp(item, elem) == 0 {
			return i, nil
		}
	}
	return 0, ErrNotFound
}

// All yields index/element pairs in order.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, item := range v.data.Items() {
			if !yield(i, item) {
				return
			}
		}
	}
}
