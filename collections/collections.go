// SPDX-License-Identifier: Apache-2.0

// Package collections provides generic containers whose storage is reserved
// in an arena.Arena.
//
// Elements are copied in and out by value. A container never owns what its
// elements point to: when an element embeds its own allocation the caller
// frees it before removing the element.
package collections

import (
	"errors"
	"fmt"

	"github.com/wundergraph/go-glcd/arena"
)

// DefaultCapacity is used when a container is created with a zero capacity.
const DefaultCapacity = 10

var (
	// ErrInvalidParams is returned for a missing arena or comparator.
	ErrInvalidParams = errors.New("collections: invalid parameters")
	// ErrOutOfBounds is returned for an index outside the container.
	ErrOutOfBounds = errors.New("collections: index out of bounds")
	// ErrNoMemory is returned when the arena cannot provide more storage.
	ErrNoMemory = errors.New("collections: no memory")
	// ErrNotFound is returned when a search has no match.
	ErrNotFound = errors.New("collections: not found")
	// ErrEmpty is returned when removing from or peeking into an empty container.
	ErrEmpty = errors.New("collections: empty collection")
)

// CompareFunc orders two elements. A negative result means a comes before b.
type CompareFunc[T any] func(a, b T) int

func noMemory(err error) error {
	if errors.Is(err, arena.ErrNoMemory) {
		return fmt.Errorf("%w: %w", ErrNoMemory, err)
	}
	return err
}
