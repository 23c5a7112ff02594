// SPDX-License-Identifier: Apache-2.0

package glcd

import (
	"cmp"
	"errors"
	"fmt"

	"github.com/wundergraph/go-glcd/arena"
	"github.com/wundergraph/go-glcd/collections"
	"github.com/wundergraph/go-glcd/font"
	"github.com/wundergraph/go-glcd/gfx"
)

// Manager owns the render list of one display.
type Manager struct {
	display  gfx.Display
	readable bool
	arena    arena.Arena
	fonts    *font.Manager

	objects *collections.List[*renderObject]
	freeIDs *collections.PriorityQueue[ObjectID]
	nextID  ObjectID

	background  gfx.Color
	orientation gfx.Orientation
	batch       int
}

// New creates a Manager drawing onto d, a panel in its native orientation,
// and reserving object storage in a.
func New(d gfx.Display, a arena.Arena, opts ...Option) (*Manager, error) {
	if d == nil || a == nil {
		return nil, ErrNullParams
	}
	cfg := config{background: gfx.Black}
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.orientation.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidOrientation, cfg.orientation)
	}
	if cfg.background == gfx.None {
		return nil, fmt.Errorf("%w: background cannot be transparent", ErrNullParams)
	}
	if cfg.fonts == nil {
		cfg.fonts = font.NewDefaultManager()
	}

	objects, err := collections.NewList[*renderObject](a)
	if err != nil {
		return nil, err
	}
	freeIDs, err := collections.NewPriorityQueue[ObjectID](a, 0, cmp.Compare[ObjectID])
	if err != nil {
		return nil, err
	}
	_, readable := d.(gfx.PixelReader)

	m := &Manager{
		display:     gfx.Rotate(d, cfg.orientation),
		readable:    readable,
		arena:       a,
		fonts:       cfg.fonts,
		objects:     objects,
		freeIDs:     freeIDs,
		background:  cfg.background,
		orientation: cfg.orientation,
	}
	if cfg.clear {
		gfx.FillRect(m.display, m.screen(), m.background)
	}
	return m, nil
}

// Fonts returns the font table used for text metrics and drawing.
func (m *Manager) Fonts() *font.Manager {
	return m.fonts
}

// Display returns the logical display the Manager draws onto.
func (m *Manager) Display() gfx.Display {
	return m.display
}

// Add registers obj and, unless DontMarkVisible is given or a batch is
// open, draws it. The components are copied; obj may be reused afterwards.
// If drawing fails the object is removed again and its box repainted.
func (m *Manager) Add(obj Object, opts ...AddOption) (ObjectID, error) {
	if err := validateObject(obj); err != nil {
		return -1, err
	}
	var flags AddOption
	for _, o := range opts {
		flags |= o
	}

	o, err := m.store(obj)
	if err != nil {
		if errors.Is(err, ErrNoMemory) {
			Logger().Warn("glcd: no memory for object", "components", len(obj.Components), "available", m.arena.Available())
		}
		return -1, err
	}
	if _, ok := o.bbox.Intersect(m.screen()); !ok {
		_ = o.release(m.arena)
		return -1, fmt.Errorf("%w: %v", ErrCoordsOutOfBounds, o.bbox)
	}
	if err := m.objects.PushBack(o); err != nil {
		_ = o.release(m.arena)
		Logger().Warn("glcd: no memory for render list node", "available", m.arena.Available())
		return -1, err
	}

	o.id = m.allocID()
	o.visible = flags&DontMarkVisible == 0
	Logger().Debug("glcd: object added", "id", o.id, "components", o.entries.Len(), "bbox", o.bbox, "visible", o.visible)

	if o.visible && m.batch == 0 {
		if err := m.drawObject(m.display, o); err != nil {
			drawErr := fmt.Errorf("%w: %w", ErrDuringRender, err)
			return -1, errors.Join(drawErr, m.Remove(o.id, true))
		}
	}
	return o.id, nil
}

// store copies obj into the arena and computes its boxes. On failure
// nothing stays reserved.
func (m *Manager) store(obj Object) (*renderObject, error) {
	entries, err := arena.MakeSlice[entry](m.arena, len(obj.Components), len(obj.Components))
	if err != nil {
		return nil, err
	}
	o := &renderObject{entries: entries, text: arena.NewArenaBuffer(m.arena)}

	texts := make([]string, len(obj.Components))
	textLen := 0
	for i, c := range obj.Components {
		texts[i], _ = textOf(c.Shape)
		textLen += len(texts[i])
	}
	if err := o.text.Grow(textLen); err != nil {
		_ = o.release(m.arena)
		return nil, err
	}

	items := o.entries.Items()
	for i, c := range obj.Components {
		s := texts[i]
		e := entry{comp: c, text: span{off: o.text.Len(), n: len(s)}}
		e.comp.Shape = withoutText(c.Shape)
		if _, err := o.text.WriteString(s); err != nil {
			_ = o.release(m.arena)
			return nil, err
		}
		b, err := m.componentBBox(c, s)
		if err != nil {
			_ = o.release(m.arena)
			return nil, err
		}
		e.bbox = b
		if i == 0 {
			o.bbox = b
		} else {
			o.bbox = o.bbox.Union(b)
		}
		items[i] = e
	}
	return o, nil
}

func (m *Manager) allocID() ObjectID {
	if id, err := m.freeIDs.Dequeue(); err == nil {
		return id
	}
	id := m.nextID
	m.nextID++
	return id
}

func (m *Manager) releaseID(id ObjectID) {
	if err := m.freeIDs.Enqueue(id); err != nil {
		Logger().Warn("glcd: object id not recycled", "id", id, "error", err)
	}
}

// find returns the list index and object registered under id.
func (m *Manager) find(id ObjectID) (int, *renderObject, error) {
	for i, o := range m.objects.All() {
		if o.id == id {
			return i, o, nil
		}
	}
	return -1, nil, fmt.Errorf("%w: %d", ErrInvalidObject, id)
}

// Remove unregisters an object and frees its storage. With
// redrawUnderneath a visible object is erased by repainting its box.
func (m *Manager) Remove(id ObjectID, redrawUnderneath bool) error {
	i, o, err := m.find(id)
	if err != nil {
		return err
	}
	if _, err := m.objects.RemoveAt(i); err != nil {
		return err
	}
	relErr := o.release(m.arena)
	m.releaseID(id)
	Logger().Debug("glcd: object removed", "id", id, "bbox", o.bbox)

	if o.visible && redrawUnderneath {
		if err := m.repaint(o.bbox); err != nil {
			return errors.Join(relErr, fmt.Errorf("%w: %w", ErrDuringUnrender, err))
		}
	}
	return relErr
}

// SetVisibility shows or hides an object. Showing draws it on top of the
// current screen. Hiding with redrawUnderneath repaints its box.
func (m *Manager) SetVisibility(id ObjectID, visible, redrawUnderneath bool) error {
	_, o, err := m.find(id)
	if err != nil {
		return err
	}
	if o.visible == visible {
		return nil
	}
	o.visible = visible
	Logger().Debug("glcd: visibility changed", "id", id, "visible", visible)

	if visible {
		if m.batch > 0 {
			return nil
		}
		if err := m.drawObject(m.display, o); err != nil {
			return fmt.Errorf("%w: %w", ErrDuringRender, err)
		}
		return nil
	}
	if redrawUnderneath {
		if err := m.repaint(o.bbox); err != nil {
			return fmt.Errorf("%w: %w", ErrDuringUnrender, err)
		}
	}
	return nil
}

// IsVisible reports whether an object is marked visible.
func (m *Manager) IsVisible(id ObjectID) (bool, error) {
	_, o, err := m.find(id)
	if err != nil {
		return false, err
	}
	return o.visible, nil
}

// Move translates an object so that the top-left corner of its box lands
// on pos. With redrawUnderneath the old box is repaired and the new box is
// replayed, so the object keeps its place in the paint order; otherwise the
// object is simply drawn at its new position. Hidden objects move without
// drawing.
func (m *Manager) Move(id ObjectID, pos gfx.Point, redrawUnderneath bool) error {
	_, o, err := m.find(id)
	if err != nil {
		return err
	}
	delta := pos.Sub(o.bbox.Min)
	if delta == (gfx.Point{}) {
		return nil
	}
	old, moved := o.bbox, o.bbox.Translate(delta)
	if _, ok := moved.Intersect(m.screen()); !ok {
		return fmt.Errorf("%w: %v", ErrCoordsOutOfBounds, moved)
	}

	items := o.entries.Items()
	for i := range items {
		items[i].comp = translate(items[i].comp, delta)
		items[i].bbox = items[i].bbox.Translate(delta)
	}
	o.bbox = moved
	Logger().Debug("glcd: object moved", "id", id, "from", old.Min, "to", moved.Min)

	if !o.visible {
		return nil
	}
	if !redrawUnderneath {
		if m.batch > 0 {
			return nil
		}
		if err := m.drawObject(m.display, o); err != nil {
			return fmt.Errorf("%w: %w", ErrDuringRender, err)
		}
		return nil
	}
	if err := m.repaint(old); err != nil {
		return fmt.Errorf("%w: %w", ErrDuringUnrender, err)
	}
	if r, ok := moved.Intersect(m.screen()); ok && m.batch == 0 {
		if err := m.replay(r); err != nil {
			return fmt.Errorf("%w: %w", ErrDuringRender, err)
		}
	}
	return nil
}

// Render draws every visible object in paint order.
func (m *Manager) Render() error {
	var errs []error
	for _, o := range m.objects.All() {
		if !o.visible {
			continue
		}
		if err := m.drawObject(m.display, o); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("%w: %w", ErrDuringRender, err)
	}
	return nil
}

// RenderTemporary draws obj without registering it. It can only be erased
// by Clear or by repainting the background and calling Render.
func (m *Manager) RenderTemporary(obj Object) error {
	boxes, _, err := m.objectBBox(obj)
	if err != nil {
		return err
	}
	var errs []error
	for i, c := range obj.Components {
		text, _ := textOf(c.Shape)
		if err := m.drawEntry(m.display, &entry{comp: c, bbox: boxes[i]}, text); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("%w: %w", ErrDuringRender, err)
	}
	return nil
}

// GetBBox returns the cached box of a registered object. Parts of it may
// lie off-screen.
func (m *Manager) GetBBox(id ObjectID) (gfx.BBox, error) {
	_, o, err := m.find(id)
	if err != nil {
		return gfx.BBox{}, err
	}
	return o.bbox, nil
}

// CalcBBoxForObject returns the box obj would have if it were added.
func (m *Manager) CalcBBoxForObject(obj Object) (gfx.BBox, error) {
	_, box, err := m.objectBBox(obj)
	return box, err
}

// Clear unregisters every object and paints the screen with the
// background color. Object IDs start over from zero.
func (m *Manager) Clear() error {
	var errs []error
	for _, o := range m.objects.All() {
		errs = append(errs, o.release(m.arena))
	}
	m.objects.Clear()
	m.freeIDs.Clear()
	m.nextID = 0
	gfx.FillRect(m.display, m.screen(), m.background)
	Logger().Debug("glcd: render list cleared")
	return errors.Join(errs...)
}

// SetBackgroundColor changes the color used to erase. With redraw the
// screen is repainted and every visible object drawn again.
func (m *Manager) SetBackgroundColor(c gfx.Color, redraw bool) error {
	if c == gfx.None {
		return fmt.Errorf("%w: background cannot be transparent", ErrNullParams)
	}
	m.background = c
	if !redraw {
		return nil
	}
	gfx.FillRect(m.display, m.screen(), c)
	return m.Render()
}

// Background returns the current background color.
func (m *Manager) Background() gfx.Color {
	return m.background
}

// Orientation returns the rotation the Manager was created with.
func (m *Manager) Orientation() gfx.Orientation {
	return m.orientation
}

// Size returns the logical screen size.
func (m *Manager) Size() (w, h int) {
	return m.display.Size()
}

// Width returns the logical screen width.
func (m *Manager) Width() int {
	w, _ := m.display.Size()
	return w
}

// Height returns the logical screen height.
func (m *Manager) Height() int {
	_, h := m.display.Size()
	return h
}

// Center returns the middle pixel of the screen.
func (m *Manager) Center() gfx.Point {
	w, h := m.display.Size()
	return gfx.Pt(w/2, h/2)
}

// PointColor reads a pixel back from the display.
func (m *Manager) PointColor(p gfx.Point) (gfx.Color, error) {
	pr, ok := m.display.(gfx.PixelReader)
	if !ok || !m.readable {
		return gfx.None, fmt.Errorf("glcd: reading pixels: %w", errors.ErrUnsupported)
	}
	if !m.screen().Contains(p) {
		return gfx.None, fmt.Errorf("%w: %v", ErrCoordsOutOfBounds, p)
	}
	return pr.Pixel(p.X, p.Y), nil
}

// DebugRenderBBox outlines an object's box.
func (m *Manager) DebugRenderBBox(id ObjectID, c gfx.Color) error {
	box, err := m.GetBBox(id)
	if err != nil {
		return err
	}
	gfx.DrawRect(m.display, box, c, gfx.None)
	return nil
}

// Batch runs fn with immediate drawing suspended, then renders the whole
// list once. Batches nest; only the outermost one renders.
func (m *Manager) Batch(fn func() error) error {
	m.batch++
	err := fn()
	m.batch--
	if m.batch > 0 {
		return err
	}
	return errors.Join(err, m.Render())
}

// Len returns the number of registered objects.
func (m *Manager) Len() int {
	return m.objects.Len()
}

func (m *Manager) screen() gfx.BBox {
	return gfx.Bounds(m.display)
}
