// SPDX-License-Identifier: Apache-2.0

package glcd

import (
	"errors"

	"github.com/wundergraph/go-glcd/gfx"
)

// DefaultQueueSize is used by NewQueue for a non-positive size.
const DefaultQueueSize = 64

// Intent is a deferred render-list mutation.
type Intent interface {
	apply(m *Manager) error
}

// AddIntent adds Object. Done, when set, receives the result.
type AddIntent struct {
	Object  Object
	Options []AddOption
	Done    func(ObjectID, error)
}

// RemoveIntent removes an object.
type RemoveIntent struct {
	ID               ObjectID
	RedrawUnderneath bool
}

// MoveIntent moves an object so its box starts at To.
type MoveIntent struct {
	ID               ObjectID
	To               gfx.Point
	RedrawUnderneath bool
}

// VisibilityIntent shows or hides an object.
type VisibilityIntent struct {
	ID               ObjectID
	Visible          bool
	RedrawUnderneath bool
}

func (i AddIntent) apply(m *Manager) error {
	id, err := m.Add(i.Object, i.Options...)
	if i.Done != nil {
		i.Done(id, err)
	}
	return err
}

func (i RemoveIntent) apply(m *Manager) error {
	return m.Remove(i.ID, i.RedrawUnderneath)
}

func (i MoveIntent) apply(m *Manager) error {
	return m.Move(i.ID, i.To, i.RedrawUnderneath)
}

func (i VisibilityIntent) apply(m *Manager) error {
	return m.SetVisibility(i.ID, i.Visible, i.RedrawUnderneath)
}

// Queue hands intents from any goroutine to the goroutine that owns a
// Manager. Post never blocks; Drain must only be called by the owner.
type Queue struct {
	m  *Manager
	ch chan Intent
}

// NewQueue creates a queue holding at most size pending intents.
func NewQueue(m *Manager, size int) *Queue {
	if size <= 0 {
		size = DefaultQueueSize
	}
	return &Queue{m: m, ch: make(chan Intent, size)}
}

// Post enqueues an intent, or returns ErrQueueFull.
func (q *Queue) Post(i Intent) error {
	if i == nil {
		return ErrNullParams
	}
	select {
	case q.ch <- i:
		return nil
	default:
		Logger().Warn("glcd: intent dropped", "intent", i)
		return ErrQueueFull
	}
}

// Drain applies the intents pending when it was called, in the order they
// were posted, and returns their joined errors. Intents posted while it runs
// are left for the next call.
func (q *Queue) Drain() error {
	var errs []error
	for range len(q.ch) {
		select {
		case i := <-q.ch:
			if err := i.apply(q.m); err != nil {
				errs = append(errs, err)
			}
		default:
			return errors.Join(errs...)
		}
	}
	return errors.Join(errs...)
}

// Len returns the number of pending intents.
func (q *Queue) Len() int {
	return len(q.ch)
}
