// SPDX-License-Identifier: Apache-2.0

package arena

import (
	"sort"
)

// PoisonByte is written over every freed span so that stale reads of released
// memory are recognisable.
const PoisonByte = 0xDD

// FitStrategy selects which free span serves an allocation.
type FitStrategy uint8

const (
	// FirstFit takes the lowest-addressed span that is large enough.
	FirstFit FitStrategy = iota
	// BestFit takes the smallest span that is large enough.
	BestFit
)

type span struct {
	off  int
	size int
}

type poolArena struct {
	pool   []byte
	free   []span      // sorted by offset, never adjacent
	live   map[int]int // offset -> reserved size
	used   int
	peak   int
	fit    FitStrategy
	poison bool
}

// Option represents a configuration option for a pool arena.
type Option func(*poolArena)

// WithFitStrategy sets the placement policy used by Alloc.
func WithFitStrategy(s FitStrategy) Option {
	return func(a *poolArena) {
		a.fit = s
	}
}

// WithPoison enables or disables overwriting freed spans with PoisonByte.
func WithPoison(enabled bool) Option {
	return func(a *poolArena) {
		a.poison = enabled
	}
}

// New creates an arena over the caller-supplied pool. The pool never grows;
// trailing bytes that do not fill a whole alignment unit are not used.
func New(pool []byte, opts ...Option) (Arena, error) {
	if pool == nil {
		return nil, ErrNilPool
	}
	usable := len(pool) &^ (Alignment - 1)
	if usable == 0 {
		return nil, ErrPoolTooSmall
	}

	a := &poolArena{
		pool:   pool[:usable:usable],
		live:   make(map[int]int),
		fit:    FirstFit,
		poison: true,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.Reset()
	return a, nil
}

// Alloc satisfies the Arena interface.
func (a *poolArena) Alloc(size int) (Block, error) {
	if size <= 0 {
		return Block{}, ErrInvalidSize
	}
	n := alignUp(size)

	i := a.findFit(n)
	if i < 0 {
		return Block{}, ErrNoMemory
	}

	off := a.free[i].off
	a.take(i, n)
	a.reserve(off, n)

	// Compiles down to a memclr of the span.
	b := a.pool[off : off+n]
	for j := range b {
		b[j] = 0
	}
	return Block{Offset: off, Size: n}, nil
}

// Free satisfies the Arena interface.
func (a *poolArena) Free(b Block) error {
	if !a.isLive(b) {
		return ErrUnknownBlock
	}
	delete(a.live, b.Offset)
	a.used -= b.Size
	a.release(b.Offset, b.Size)
	return nil
}

// Realloc satisfies the Arena interface.
func (a *poolArena) Realloc(b Block, size int) (Block, error) {
	if b.IsNil() {
		return a.Alloc(size)
	}
	if !a.isLive(b) {
		return Block{}, ErrUnknownBlock
	}
	if size == 0 {
		return Block{}, a.Free(b)
	}
	if size < 0 {
		return Block{}, ErrInvalidSize
	}

	n := alignUp(size)
	switch {
	case n == b.Size:
		return b, nil
	case n < b.Size:
		// Shrink in place and give the tail back.
		a.live[b.Offset] = n
		a.used -= b.Size - n
		a.release(b.Offset+n, b.Size-n)
		return Block{Offset: b.Offset, Size: n}, nil
	}

	extra := n - b.Size
	if i := a.freeAt(b.End()); i >= 0 && a.free[i].size >= extra {
		a.take(i, extra)
		a.live[b.Offset] = n
		a.used += extra
		a.bumpPeak()
		grown := a.pool[b.End() : b.Offset+n]
		for j := range grown {
			grown[j] = 0
		}
		return Block{Offset: b.Offset, Size: n}, nil
	}

	nb, err := a.Alloc(n)
	if err != nil {
		return Block{}, err
	}
	copy(a.pool[nb.Offset:nb.End()], a.pool[b.Offset:b.End()])
	if err := a.Free(b); err != nil {
		return Block{}, err
	}
	return nb, nil
}

// Bytes satisfies the Arena interface.
func (a *poolArena) Bytes(b Block) []byte {
	if !a.isLive(b) {
		return nil
	}
	return a.pool[b.Offset:b.End():b.End()]
}

// Reset satisfies the Arena interface.
func (a *poolArena) Reset() {
	clear(a.live)
	a.used = 0
	a.free = append(a.free[:0], span{off: 0, size: len(a.pool)})
}

// Len satisfies the Arena interface.
func (a *poolArena) Len() int {
	return a.used
}

// Cap satisfies the Arena interface.
func (a *poolArena) Cap() int {
	return len(a.pool)
}

// Peak satisfies the Arena interface.
func (a *poolArena) Peak() int {
	return a.peak
}

// Available satisfies the Arena interface.
func (a *poolArena) Available() int {
	var total int
	for _, s := range a.free {
		total += s.size
	}
	return total
}

// LargestFree satisfies the Arena interface.
func (a *poolArena) LargestFree() int {
	var largest int
	for _, s := range a.free {
		largest = max(largest, s.size)
	}
	return largest
}

func (a *poolArena) isLive(b Block) bool {
	if b.IsNil() {
		return false
	}
	size, ok := a.live[b.Offset]
	return ok && size == b.Size
}

func (a *poolArena) findFit(n int) int {
	best := -1
	for i, s := range a.free {
		if s.size < n {
			continue
		}
		if a.fit == FirstFit {
			return i
		}
		if best < 0 || s.size < a.free[best].size {
			best = i
		}
	}
	return best
}

// freeAt returns the index of the free span starting exactly at off.
func (a *poolArena) freeAt(off int) int {
	i := sort.Search(len(a.free), func(i int) bool { return a.free[i].off >= off })
	if i < len(a.free) && a.free[i].off == off {
		return i
	}
	return -1
}

// take carves n bytes off the front of free span i.
func (a *poolArena) take(i, n int) {
	if a.free[i].size == n {
		a.free = append(a.free[:i], a.free[i+1:]...)
		return
	}
	a.free[i].off += n
	a.free[i].size -= n
}

func (a *poolArena) reserve(off, n int) {
	a.live[off] = n
	a.used += n
	a.bumpPeak()
}

func (a *poolArena) bumpPeak() {
	if a.used > a.peak {
		a.peak = a.used
	}
}

// release returns [off, off+n) to the free index, merging with neighbours.
func (a *poolArena) release(off, n int) {
	if a.poison {
		b := a.pool[off : off+n]
		for j := range b {
			b[j] = PoisonByte
		}
	}

	i := sort.Search(len(a.free), func(i int) bool { return a.free[i].off > off })

	mergePrev := i > 0 && a.free[i-1].off+a.free[i-1].size == off
	mergeNext := i < len(a.free) && off+n == a.free[i].off

	switch {
	case mergePrev && mergeNext:
		a.free[i-1].size += n + a.free[i].size
		a.free = append(a.free[:i], a.free[i+1:]...)
	case mergePrev:
		a.free[i-1].size += n
	case mergeNext:
		a.free[i].off = off
		a.free[i].size += n
	default:
		a.free = append(a.free, span{})
		copy(a.free[i+1:], a.free[i:])
		a.free[i] = span{off: off, size: n}
	}
}
