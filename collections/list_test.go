// SPDX-License-Identifier: Apache-2.0

package collections

import (
	"cmp"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewList(t *testing.T) {
	_, err := NewList[int](nil)
	require.ErrorIs(t, err, ErrInvalidParams)

	l, err := NewList[int](newTestArena(t, 256))
	require.NoError(t, err)
	require.True(t, l.IsEmpty())
	require.Equal(t, 0, l.Len())
}

func TestListPushPop(t *testing.T) {
	a := newTestArena(t, 1024)
	l, err := NewList[int](a)
	require.NoError(t, err)

	require.NoError(t, l.PushBack(2))
	require.NoError(t, l.PushBack(3))
	require.NoError(t, l.PushFront(1))
	require.Equal(t, []int{1, 2, 3}, collect(l.All()))
	require.Greater(t, a.Len(), 0)

	v, err := l.PopFront()
	require.NoError(t, err)
	require.Equal(t, 1, v)
	v, err = l.PopBack()
	require.NoError(t, err)
	require.Equal(t, 3, v)
	v, err = l.PopBack()
	require.NoError(t, err)
	require.Equal(t, 2, v)

	require.True(t, l.IsEmpty())
	require.Equal(t, 0, a.Len())

	_, err = l.PopBack()
	require.ErrorIs(t, err, ErrEmpty)
	_, err = l.PopFront()
	require.ErrorIs(t, err, ErrEmpty)
	_, err = l.Last()
	require.ErrorIs(t, err, ErrEmpty)
	_, err = l.LastRef()
	require.ErrorIs(t, err, ErrEmpty)
}

func TestListIndexing(t *testing.T) {
	a := newTestArena(t, 2048)
	l, err := NewList[int](a)
	require.NoError(t, err)
	for i := range 6 {
		require.NoError(t, l.PushBack(i*10))
	}

	for i := range 6 {
		v, err := l.Get(i)
		require.NoError(t, err)
		require.Equal(t, i*10, v)
	}
	_, err = l.Get(6)
	require.ErrorIs(t, err, ErrOutOfBounds)
	_, err = l.Ref(-1)
	require.ErrorIs(t, err, ErrOutOfBounds)

	ref, err := l.Ref(4)
	require.NoError(t, err)
	*ref = 41
	last, err := l.LastRef()
	require.NoError(t, err)
	*last = 51

	require.NoError(t, l.InsertAt(0, -10))
	require.NoError(t, l.InsertAt(3, 15))
	require.NoError(t, l.InsertAt(l.Len(), 60))
	require.ErrorIs(t, l.InsertAt(l.Len()+1, 70), ErrOutOfBounds)
	require.Equal(t, []int{-10, 0, 10, 15, 20, 30, 41, 51, 60}, collect(l.All()))

	removed, err := l.RemoveAt(3)
	require.NoError(t, err)
	require.Equal(t, 15, removed)
	removed, err = l.RemoveAt(l.Len() - 1)
	require.NoError(t, err)
	require.Equal(t, 60, removed)
	_, err = l.RemoveAt(l.Len())
	require.ErrorIs(t, err, ErrOutOfBounds)

	tail, err := l.Last()
	require.NoError(t, err)
	require.Equal(t, 51, tail)
	require.Equal(t, []int{-10, 0, 10, 20, 30, 41, 51}, collect(l.All()))
}

func TestListSearch(t *testing.T) {
	l, err := NewList[string](newTestArena(t, 1024))
	require.NoError(t, err)
	for _, s := range []string{"red", "green", "blue"} {
		require.NoError(t, l.PushBack(s))
	}

	idx, err := l.Search("blue", cmp.Compare[string])
	require.NoError(t, err)
	require.Equal(t, 2, idx)

	_, err = l.Search("cyan", cmp.Compare[string])
	require.ErrorIs(t, err, ErrNotFound)
	_, err = l.Search("red", nil)
	require.ErrorIs(t, err, ErrInvalidParams)
}

func TestListClearReleasesNodes(t *testing.T) {
	a := newTestArena(t, 1024)
	l, err := NewList[int64](a)
	require.NoError(t, err)
	for i := range 5 {
		require.NoError(t, l.PushBack(int64(i)))
	}
	require.Greater(t, a.Len(), 0)

	l.Clear()
	require.True(t, l.IsEmpty())
	require.Equal(t, 0, a.Len())

	require.NoError(t, l.PushBack(7))
	require.NoError(t, l.Free())
	require.Equal(t, 0, a.Len())
}

func TestListOutOfMemory(t *testing.T) {
	a := newTestArena(t, 64)
	l, err := NewList[int64](a)
	require.NoError(t, err)

	var pushed int
	for {
		if err := l.PushBack(int64(pushed)); err != nil {
			require.ErrorIs(t, err, ErrNoMemory)
			break
		}
		pushed++
	}
	require.Equal(t, pushed, l.Len())
	require.ErrorIs(t, l.PushFront(0), ErrNoMemory)
	require.ErrorIs(t, l.InsertAt(0, 0), ErrNoMemory)
	require.Equal(t, pushed, l.Len())
}

func TestListRemoveWhileIterating(t *testing.T) {
	l, err := NewList[int](newTestArena(t, 1024))
	require.NoError(t, err)
	for i := range 5 {
		require.NoError(t, l.PushBack(i))
	}

	var seen []int
	for i, v := range l.All() {
		seen = append(seen, v)
		if v == 1 {
			_, err := l.RemoveAt(i)
			require.NoError(t, err)
		}
	}
	require.Equal(t, []int{0, 1, 2, 3, 4}, seen)
	require.Equal(t, 4, l.Len())

	var doubled []int
	for p := range l.Refs() {
		*p *= 2
		doubled = append(doubled, *p)
	}
	require.Equal(t, []int{0, 4, 6, 8}, doubled)
}
