// SPDX-License-Identifier: Apache-2.0

package collections

import (
	"iter"
	"unsafe"

	"github.com/wundergraph/go-glcd/arena"
)

type listNode[T any] struct {
	value      T
	prev, next *listNode[T]
	block      arena.Block
}

// List is a doubly linked list with a tail pointer. Every node reserves its
// own span in the arena, so pushes fail with ErrNoMemory when the pool is
// exhausted. Indexed access walks from the nearer end and is O(n).
type List[T any] struct {
	arena      arena.Arena
	head, tail *listNode[T]
	size       int
}

// NewList creates an empty list.
func NewList[T any](a arena.Arena) (*List[T], error) {
	if a == nil {
		return nil, ErrInvalidParams
	}
	return &List[T]{arena: a}, nil
}

// Free releases every node. The list must not be used afterwards.
func (l *List[T]) Free() error {
	return l.release()
}

func (l *List[T]) newNode(elem T) (*listNode[T], error) {
	var n listNode[T]
	b, err := l.arena.Alloc(int(unsafe.Sizeof(n)))
	if err != nil {
		return nil, noMemory(err)
	}
	return &listNode[T]{value: elem, block: b}, nil
}

// PushBack appends elem.
func (l *List[T]) PushBack(elem T) error {
	n, err := l.newNode(elem)
	if err != nil {
		return err
	}
	l.linkAfter(l.tail, n)
	return nil
}

// PushFront prepends elem.
func (l *List[T]) PushFront(elem T) error {
	n, err := l.newNode(elem)
	if err != nil {
		return err
	}
	l.linkAfter(nil, n)
	return nil
}

// InsertAt places elem at index. index may equal Len, which appends.
func (l *List[T]) InsertAt(index int, elem T) error {
	if index < 0 || index > l.size {
		return ErrOutOfBounds
	}
	n, err := l.newNode(elem)
	if err != nil {
		return err
	}
	if index == 0 {
		l.linkAfter(nil, n)
	} else {
		l.linkAfter(l.nodeAt(index-1), n)
	}
	return nil
}

// PopBack removes and returns the last element.
func (l *List[T]) PopBack() (T, error) {
	if l.tail == nil {
		var zero T
		return zero, ErrEmpty
	}
	return l.unlink(l.tail)
}

// PopFront removes and returns the first element.
func (l *List[T]) PopFront() (T, error) {
	if l.head == nil {
		var zero T
		return zero, ErrEmpty
	}
	return l.unlink(l.head)
}

// RemoveAt removes and returns the element at index.
func (l *List[T]) RemoveAt(index int) (T, error) {
	if index < 0 || index >= l.size {
		var zero T
		return zero, ErrOutOfBounds
	}
	return l.unlink(l.nodeAt(index))
}

// Get returns a copy of the element at index.
func (l *List[T]) Get(index int) (T, error) {
	if index < 0 || index >= l.size {
		var zero T
		return zero, ErrOutOfBounds
	}
	return l.nodeAt(index).value, nil
}

// Ref returns a pointer to the element at index. The pointer stays valid
// until that element is removed.
func (l *List[T]) Ref(index int) (*T, error) {
	if index < 0 || index >= l.size {
		return nil, ErrOutOfBounds
	}
	return &l.nodeAt(index).value, nil
}

// Last returns a copy of the last element.
func (l *List[T]) Last() (T, error) {
	if l.tail == nil {
		var zero T
		return zero, ErrEmpty
	}
	return l.tail.value, nil
}

// LastRef returns a pointer to the last element.
func (l *List[T]) LastRef() (*T, error) {
	if l.tail == nil {
		return nil, ErrEmpty
	}
	return &l.tail.value, nil
}

// Search returns the index of the first element equal to elem under cmp.
func (l *List[T]) Search(elem T, cmp CompareFunc[T]) (int, error) {
	if cmp == nil {
		return 0, ErrInvalidParams
	}
	i := 0
	for n := l.head; n != nil; n = n.next {
		if cmp(n.value, elem) == 0 {
			return i, nil
		}
		i++
	}
	return 0, ErrNotFound
}

// Clear removes every element and gives the node spans back to the arena.
func (l *List[T]) Clear() {
	_ = l.release()
}

// Len returns the number of elements.
func (l *List[T]) Len() int {
	return l.size
}

// IsEmpty reports whether the list has no elements.
func (l *List[T]) IsEmpty() bool {
	return l.size == 0
}

// All yields index/element pairs from front to back. Removing the element
// currently being visited is allowed.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for n := l.head; n != nil; {
			next := n.next
			if !yield(i, n.value) {
				return
			}
			n = next
			i++
		}
	}
}

// Refs yields pointers to the elements from front to back.
func (l *List[T]) Refs() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for n := l.head; n != nil; {
			next := n.next
			if !yield(&n.value) {
				return
			}
			n = next
		}
	}
}

func (l *List[T]) release() error {
	var firstErr error
	for n := l.head; n != nil; {
		next := n.next
		if err := l.arena.Free(n.block); err != nil && firstErr == nil {
			firstErr = err
		}
		n.prev, n.next = nil, nil
		n = next
	}
	l.head, l.tail, l.size = nil, nil, 0
	return firstErr
}

func (l *List[T]) nodeAt(index int) *listNode[T] {
	if index < l.size/2 {
		n := l.head
		for ; index > 0; index-- {
			n = n.next
		}
		return n
	}
	n := l.tail
	for i := l.size - 1; i > index; i-- {
		n = n.prev
	}
	return n
}

// linkAfter inserts n after at; a nil at means at the front.
func (l *List[T]) linkAfter(at, n *listNode[T]) {
	if at == nil {
		n.next = l.head
		if l.head != nil {
			l.head.prev = n
		}
		l.head = n
	} else {
		n.prev = at
		n.next = at.next
		if at.next != nil {
			at.next.prev = n
		}
		at.next = n
	}
	if n.next == nil {
		l.tail = n
	}
	l.size++
}

func (l *List[T]) unlink(n *listNode[T]) (T, error) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}
	l.size--
	n.prev, n.next = nil, nil
	return n.value, l.arena.Free(n.block)
}
