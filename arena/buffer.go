// SPDX-License-Identifier: Apache-2.0

package arena

import (
	"io"
)

// Buffer is a bytes.Buffer-like struct whose storage is a single arena span.
// It implements io.Writer and io.ByteWriter. Unlike bytes.Buffer a failed
// growth is reported as ErrNoMemory instead of panicking, and the written
// bytes stay in place until the buffer grows past its reservation.
type Buffer struct {
	arena Arena
	block Block
	n     int
}

var (
	_ io.Writer       = (*Buffer)(nil)
	_ io.ByteWriter   = (*Buffer)(nil)
	_ io.StringWriter = (*Buffer)(nil)
)

// NewArenaBuffer creates a new Buffer backed by the given arena.
// Nothing is reserved until the first write.
func NewArenaBuffer(arena Arena) *Buffer {
	return &Buffer{arena: arena}
}

// Grow makes room for at least n more bytes with a single reservation.
func (b *Buffer) Grow(n int) error {
	if n < 0 {
		return ErrInvalidSize
	}
	need := b.n + n
	if need <= b.block.Size {
		return nil
	}

	newCap := b.block.Size
	if newCap > 0 {
		for need > newCap {
			if newCap < growThreshold {
				newCap *= 2
			} else {
				newCap += newCap / 4
			}
		}
	} else {
		newCap = need
	}

	nb, err := b.arena.Realloc(b.block, newCap)
	if err != nil {
		return err
	}
	b.block = nb
	return nil
}

// Write implements io.Writer interface.
// It writes len(p) bytes from p to the buffer.
func (b *Buffer) Write(p []byte) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}
	if err := b.Grow(len(p)); err != nil {
		return 0, err
	}
	copy(b.arena.Bytes(b.block)[b.n:], p)
	b.n += len(p)
	return len(p), nil
}

// WriteByte writes a single byte to the buffer.
func (b *Buffer) WriteByte(c byte) error {
	if err := b.Grow(1); err != nil {
		return err
	}
	b.arena.Bytes(b.block)[b.n] = c
	b.n++
	return nil
}

// WriteString writes a string to the buffer.
func (b *Buffer) WriteString(s string) (n int, err error) {
	if len(s) == 0 {
		return 0, nil
	}
	if err := b.Grow(len(s)); err != nil {
		return 0, err
	}
	copy(b.arena.Bytes(b.block)[b.n:], s)
	b.n += len(s)
	return len(s), nil
}

// Bytes returns a slice of length b.Len() holding the buffer contents.
// The slice aliases arena memory and is valid until the next write that
// grows the buffer, or until Release.
func (b *Buffer) Bytes() []byte {
	if b.n == 0 {
		return []byte{}
	}
	return b.arena.Bytes(b.block)[:b.n]
}

// Slice returns a copy of bytes [from, to) as a string.
func (b *Buffer) Slice(from, to int) string {
	if from < 0 || to > b.n || from > to {
		panic("arena: slice out of range")
	}
	if from == to {
		return ""
	}
	return string(b.arena.Bytes(b.block)[from:to])
}

// String returns the contents of the buffer as a string.
func (b *Buffer) String() string {
	return b.Slice(0, b.n)
}

// Len returns the number of bytes written.
func (b *Buffer) Len() int {
	return b.n
}

// Cap returns the size of the reserved span.
func (b *Buffer) Cap() int {
	return b.block.Size
}

// Block returns the arena handle backing the buffer.
func (b *Buffer) Block() Block {
	return b.block
}

// Reset resets the buffer to be empty but keeps its reservation.
func (b *Buffer) Reset() {
	b.n = 0
}

// Truncate discards all but the first n bytes from the buffer.
// It panics if n is negative or greater than the length of the buffer.
func (b *Buffer) Truncate(n int) {
	if n < 0 || n > b.n {
		panic("arena: truncation out of range")
	}
	b.n = n
}

// Shrink gives the unused tail of the reservation back to the arena.
func (b *Buffer) Shrink() error {
	if b.block.IsNil() || alignUp(b.n) == b.block.Size {
		return nil
	}
	nb, err := b.arena.Realloc(b.block, b.n)
	if err != nil {
		return err
	}
	b.block = nb
	return nil
}

// Release frees the reservation. The buffer is empty and reusable afterwards.
func (b *Buffer) Release() error {
	b.n = 0
	if b.block.IsNil() {
		return nil
	}
	err := b.arena.Free(b.block)
	b.block = Block{}
	return err
}
