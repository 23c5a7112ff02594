// SPDX-License-Identifier: Apache-2.0

package arena

import (
	"sync"
)

type concurrentArena struct {
	mtx sync.Mutex
	a   Arena
}

// NewConcurrentArena serializes every call to a behind one mutex. It is meant
// for pools an application shares between its foreground loop and ticker
// goroutines; a Manager that owns its arena does not need it.
//
// A nil a yields an arena whose allocations fail with ErrNilPool.
func NewConcurrentArena(a Arena) Arena {
	return &concurrentArena{a: a}
}

// do runs fn under the lock, or returns zero when there is no inner arena.
func do[T any](c *concurrentArena, zero T, fn func(Arena) T) T {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	if c.a == nil {
		return zero
	}
	return fn(c.a)
}

type blockResult struct {
	b   Block
	err error
}

func (c *concurrentArena) Alloc(size int) (Block, error) {
	r := do(c, blockResult{err: ErrNilPool}, func(a Arena) blockResult {
		b, err := a.Alloc(size)
		return blockResult{b, err}
	})
	return r.b, r.err
}

func (c *concurrentArena) Free(b Block) error {
	return do(c, ErrNilPool, func(a Arena) error { return a.Free(b) })
}

func (c *concurrentArena) Realloc(b Block, size int) (Block, error) {
	r := do(c, blockResult{err: ErrNilPool}, func(a Arena) blockResult {
		nb, err := a.Realloc(b, size)
		return blockResult{nb, err}
	})
	return r.b, r.err
}

// Bytes returns the span's memory. Access to the returned slice is not
// guarded; goroutines sharing a span synchronise on their own.
func (c *concurrentArena) Bytes(b Block) []byte {
	return do[[]byte](c, nil, func(a Arena) []byte { return a.Bytes(b) })
}

func (c *concurrentArena) Reset() {
	do(c, struct{}{}, func(a Arena) struct{} {
		a.Reset()
		return struct{}{}
	})
}

func (c *concurrentArena) Len() int {
	return do(c, 0, Arena.Len)
}

func (c *concurrentArena) Cap() int {
	return do(c, 0, Arena.Cap)
}

func (c *concurrentArena) Peak() int {
	return do(c, 0, Arena.Peak)
}

func (c *concurrentArena) Available() int {
	return do(c, 0, Arena.Available)
}

func (c *concurrentArena) LargestFree() int {
	return do(c, 0, Arena.LargestFree)
}
