// SPDX-License-Identifier: Apache-2.0

package arena

import (
	"unsafe"
)

const growThreshold = 256

// Slice is a typed array whose capacity is reserved in an Arena.
//
// The arena accounts for cap*sizeof(T) bytes so that allocation failures
// surface exactly where a fixed pool would run out; the elements themselves
// live in a Go slice of the same capacity, which keeps pointer-carrying
// element types visible to the garbage collector.
type Slice[T any] struct {
	block Block
	items []T
}

// Items returns the elements in [0, Len()).
func (s Slice[T]) Items() []T {
	return s.items
}

// Len returns the number of elements.
func (s Slice[T]) Len() int {
	return len(s.items)
}

// Cap returns the number of elements the reserved span can hold.
func (s Slice[T]) Cap() int {
	return cap(s.items)
}

// Block returns the arena handle backing the slice.
func (s Slice[T]) Block() Block {
	return s.block
}

// Resize changes the length within the current capacity.
// It panics if n is negative or greater than Cap.
func (s Slice[T]) Resize(n int) Slice[T] {
	if n < 0 || n > cap(s.items) {
		panic("arena: resize out of range")
	}
	s.items = s.items[:n]
	return s
}

func sizeOf[T any]() int {
	var x T
	return max(int(unsafe.Sizeof(x)), 1)
}

// MakeSlice creates a slice of type T with a given length and capacity,
// reserving its backing span in the provided Arena.
// A zero capacity reserves nothing and yields an empty slice.
func MakeSlice[T any](a Arena, len, cap int) (Slice[T], error) {
	if len < 0 || cap < len {
		return Slice[T]{}, ErrInvalidSize
	}
	if cap == 0 {
		return Slice[T]{}, nil
	}
	b, err := a.Alloc(sizeOf[T]() * cap)
	if err != nil {
		return Slice[T]{}, err
	}
	return Slice[T]{block: b, items: make([]T, len, cap)}, nil
}

// Append appends elements to the slice, growing its reservation if needed.
// On error the input slice is still valid and unchanged.
func Append[T any](a Arena, s Slice[T], data ...T) (Slice[T], error) {
	s, err := Grow(a, s, len(data))
	if err != nil {
		return s, err
	}
	s.items = append(s.items, data...)
	return s, nil
}

// Grow makes room for at least extra more elements without changing Len.
func Grow[T any](a Arena, s Slice[T], extra int) (Slice[T], error) {
	newLen := len(s.items) + extra
	newCap := cap(s.items)
	if newLen <= newCap {
		return s, nil
	}

	if newCap > 0 {
		for newLen > newCap {
			if newCap < growThreshold {
				newCap *= 2
			} else {
				newCap += newCap / 4
			}
		}
	} else {
		newCap = extra
	}

	b, err := a.Realloc(s.block, sizeOf[T]()*newCap)
	if err != nil {
		return s, err
	}
	items := make([]T, len(s.items), newCap)
	copy(items, s.items)
	return Slice[T]{block: b, items: items}, nil
}

// Shrink releases the reservation beyond Len.
func Shrink[T any](a Arena, s Slice[T]) (Slice[T], error) {
	if len(s.items) == cap(s.items) {
		return s, nil
	}
	if len(s.items) == 0 {
		return Slice[T]{}, FreeSlice(a, s)
	}
	b, err := a.Realloc(s.block, sizeOf[T]()*len(s.items))
	if err != nil {
		return s, err
	}
	return Slice[T]{block: b, items: s.items[:len(s.items):len(s.items)]}, nil
}

// FreeSlice releases the span backing s. Freeing an empty slice is a no-op.
func FreeSlice[T any](a Arena, s Slice[T]) error {
	if s.block.IsNil() {
		return nil
	}
	return a.Free(s.block)
}
