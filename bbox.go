// SPDX-License-Identifier: Apache-2.0

package glcd

import (
	"fmt"

	"github.com/wundergraph/go-glcd/font"
	"github.com/wundergraph/go-glcd/gfx"
)

func validateObject(obj Object) error {
	switch n := len(obj.Components); {
	case n == 0:
		return fmt.Errorf("%w: no components", ErrInvalidObject)
	case n > MaxComponents:
		return fmt.Errorf("%w: %d components, at most %d", ErrTooManyComponents, n, MaxComponents)
	}
	return nil
}

// componentBBox computes the box of c. text is the string of a Text or
// Button component, which may live outside the shape.
func (m *Manager) componentBBox(c Component, text string) (gfx.BBox, error) {
	switch s := c.Shape.(type) {
	case nil:
		return gfx.BBox{}, fmt.Errorf("%w: component without shape", ErrNullParams)
	case Line:
		return gfx.Box(s.From.X, s.From.Y, s.To.X, s.To.Y), nil
	case Rect:
		if s.Width <= 0 || s.Height <= 0 {
			return gfx.BBox{}, fmt.Errorf("%w: rect %dx%d", ErrInvalidObject, s.Width, s.Height)
		}
		return gfx.Sized(c.Pos, s.Width, s.Height), nil
	case Circle:
		if s.Radius < 0 {
			return gfx.BBox{}, fmt.Errorf("%w: circle radius %d", ErrInvalidObject, s.Radius)
		}
		r := s.Radius
		return gfx.Box(s.Center.X-r, s.Center.Y-r, s.Center.X+r, s.Center.Y+r), nil
	case Image:
		if s.Bitmap == nil || s.Bitmap.Pixels == nil {
			return gfx.BBox{}, fmt.Errorf("%w: image without pixels", ErrNullParams)
		}
		if err := s.Bitmap.Validate(); err != nil {
			return gfx.BBox{}, fmt.Errorf("%w: %w", ErrInvalidObject, err)
		}
		return s.Bitmap.Bounds(c.Pos), nil
	case Text:
		f, err := m.font(s.Font)
		if err != nil {
			return gfx.BBox{}, fmt.Errorf("%w: %w", ErrDuringBBoxCalc, err)
		}
		w, h := gfx.MeasureString(f, text, s.CharSpacing, s.LineSpacing)
		return gfx.Sized(c.Pos, w, h), nil
	case Button:
		p := s.Padding
		if p.Top < 0 || p.Right < 0 || p.Bottom < 0 || p.Left < 0 {
			return gfx.BBox{}, fmt.Errorf("%w: negative padding", ErrInvalidObject)
		}
		f, err := m.font(s.Label.Font)
		if err != nil {
			return gfx.BBox{}, fmt.Errorf("%w: %w", ErrDuringBBoxCalc, err)
		}
		w, h := gfx.MeasureString(f, text, s.Label.CharSpacing, s.Label.LineSpacing)
		// One pixel of border on each side.
		return gfx.Sized(c.Pos, p.Left+w+p.Right+2, p.Top+h+p.Bottom+2), nil
	}
	return gfx.BBox{}, fmt.Errorf("%w: unknown shape %T", ErrInvalidObject, c.Shape)
}

// objectBBox returns the per-component boxes of obj and their union.
func (m *Manager) objectBBox(obj Object) ([]gfx.BBox, gfx.BBox, error) {
	if err := validateObject(obj); err != nil {
		return nil, gfx.BBox{}, err
	}
	boxes := make([]gfx.BBox, len(obj.Components))
	var union gfx.BBox
	for i, c := range obj.Components {
		text, _ := textOf(c.Shape)
		b, err := m.componentBBox(c, text)
		if err != nil {
			return nil, gfx.BBox{}, err
		}
		boxes[i] = b
		if i == 0 {
			union = b
		} else {
			union = union.Union(b)
		}
	}
	return boxes, union, nil
}

func (m *Manager) font(id font.ID) (*font.Font, error) {
	return m.fonts.Get(id)
}
