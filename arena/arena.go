// SPDX-License-Identifier: Apache-2.0

package arena

import (
	"errors"
)

// Alignment is the granularity of every reservation. Display and font data
// are read a word at a time, so spans always start and end on 4 bytes.
const Alignment = 4

var (
	// ErrNilPool is returned by New when no backing pool is supplied.
	ErrNilPool = errors.New("arena: nil pool")
	// ErrPoolTooSmall is returned by New when the pool cannot hold a single aligned span.
	ErrPoolTooSmall = errors.New("arena: pool too small")
	// ErrInvalidSize is returned when a non-positive size is requested.
	ErrInvalidSize = errors.New("arena: invalid size")
	// ErrNoMemory is returned when no free span is large enough.
	ErrNoMemory = errors.New("arena: out of memory")
	// ErrUnknownBlock is returned when a handle does not match a live allocation.
	ErrUnknownBlock = errors.New("arena: unknown block")
)

// Block is a handle to a reserved span of the pool.
// Handles are plain (offset, size) pairs, so relocating an allocation only
// changes the handle and never invalidates pointers stored elsewhere.
type Block struct {
	Offset int
	// Size is the reserved length, rounded up to Alignment.
	Size int
}

// IsNil reports whether b refers to no allocation.
func (b Block) IsNil() bool {
	return b.Size == 0
}

// End returns the offset one past the last byte of the span.
func (b Block) End() int {
	return b.Offset + b.Size
}

// Arena is an interface that describes a fixed-pool memory allocator.
type Arena interface {
	// Alloc reserves at least size bytes and returns the handle of the span.
	// The span is zeroed. ErrNoMemory is returned when no free span fits.
	Alloc(size int) (Block, error)

	// Free releases a span previously returned by Alloc or Realloc.
	Free(b Block) error

	// Realloc resizes a span. A nil block behaves as Alloc and a zero size
	// behaves as Free. Shrinking happens in place; growing tries the adjacent
	// free span before relocating. On error the original block is untouched.
	Realloc(b Block, size int) (Block, error)

	// Bytes returns the memory of a live span, or nil for an unknown handle.
	// The slice is valid until the span is freed or relocated.
	Bytes(b Block) []byte

	// Reset drops every allocation. All handles become invalid.
	Reset()

	// Len returns the number of bytes currently reserved.
	Len() int

	// Cap returns the usable size of the pool.
	Cap() int

	// Peak returns the high-water mark of Len. It is not cleared by Reset.
	Peak() int

	// Available returns the number of free bytes, possibly fragmented.
	Available() int

	// LargestFree returns the size of the largest free span, which bounds the
	// largest allocation that can currently succeed.
	LargestFree() int
}

func alignUp(n int) int {
	return (n + Alignment - 1) &^ (Alignment - 1)
}
