// SPDX-License-Identifier: Apache-2.0

package glcd

import (
	"errors"
	"fmt"

	"github.com/wundergraph/go-glcd/arena"
	"github.com/wundergraph/go-glcd/gfx"
)

type span struct {
	off, n int
}

// entry is a component as stored in the arena. Strings of Text and Button
// shapes are moved into the object's text buffer.
type entry struct {
	comp Component
	bbox gfx.BBox
	text span
}

type renderObject struct {
	id      ObjectID
	entries arena.Slice[entry]
	text    *arena.Buffer
	bbox    gfx.BBox
	visible bool
}

func (o *renderObject) textOf(e *entry) string {
	if e.text.n == 0 {
		return ""
	}
	return o.text.Slice(e.text.off, e.text.off+e.text.n)
}

func (o *renderObject) release(a arena.Arena) error {
	err := arena.FreeSlice(a, o.entries)
	o.entries = arena.Slice[entry]{}
	return errors.Join(err, o.text.Release())
}

// drawObject paints every component of o that is at least partly on screen.
func (m *Manager) drawObject(d gfx.Display, o *renderObject) error {
	var errs []error
	for i := range o.entries.Items() {
		e := &o.entries.Items()[i]
		if err := m.drawEntry(d, e, o.textOf(e)); err != nil {
			errs = append(errs, fmt.Errorf("object %d component %d: %w", o.id, i, err))
		}
	}
	return errors.Join(errs...)
}

func (m *Manager) drawEntry(d gfx.Display, e *entry, text string) error {
	if !e.bbox.Overlaps(m.screen()) {
		return nil
	}
	c := e.comp
	switch s := c.Shape.(type) {
	case Line:
		gfx.DrawLine(d, s.From, s.To, s.Color)
	case Rect:
		gfx.DrawRect(d, e.bbox, s.Edge, s.Fill)
	case Circle:
		gfx.DrawCircle(d, s.Center, s.Radius, s.Edge, s.Fill)
	case Image:
		return gfx.DrawImage(d, s.Bitmap, c.Pos)
	case Text:
		f, err := m.font(s.Font)
		if err != nil {
			return err
		}
		return gfx.PrintString(d, text, c.Pos, gfx.TextStyle{
			Font:        f,
			Color:       s.Color,
			Background:  s.Background,
			CharSpacing: s.CharSpacing,
			LineSpacing: s.LineSpacing,
		})
	case Button:
		f, err := m.font(s.Label.Font)
		if err != nil {
			return err
		}
		gfx.DrawRect(d, e.bbox, s.Edge, s.Fill)
		return gfx.PrintString(d, text, c.Pos.Add(gfx.Pt(1+s.Padding.Left, 1+s.Padding.Top)), gfx.TextStyle{
			Font:        f,
			Color:       s.Label.Color,
			Background:  gfx.None,
			CharSpacing: s.Label.CharSpacing,
			LineSpacing: s.Label.LineSpacing,
		})
	}
	return nil
}

// repaint fills the on-screen part of box with the background and replays
// the visible objects overlapping it, in paint order, clipped to it.
func (m *Manager) repaint(box gfx.BBox) error {
	r, ok := box.Intersect(m.screen())
	if !ok {
		return nil
	}
	gfx.FillRect(m.display, r, m.background)
	return m.replay(r)
}

// replay redraws, clipped to box, every visible object overlapping it.
func (m *Manager) replay(box gfx.BBox) error {
	clip := gfx.Clip(m.display, box)
	var errs []error
	for _, o := range m.objects.All() {
		if !o.visible || !o.bbox.Overlaps(box) {
			continue
		}
		if err := m.drawObject(clip, o); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
