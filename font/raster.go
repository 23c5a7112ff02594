// SPDX-License-Identifier: Apache-2.0

package font

import (
	"fmt"
	"image"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

type rasterConfig struct {
	name      string
	fixed     bool
	threshold uint32
}

// RasterOption configures FromFace.
type RasterOption func(*rasterConfig)

// WithName sets the descriptor's name.
func WithName(name string) RasterOption {
	return func(c *rasterConfig) {
		c.name = name
	}
}

// WithFixedMetrics produces a monospaced descriptor without per-glyph
// tables. Glyphs keep their position inside the full character cell.
func WithFixedMetrics() RasterOption {
	return func(c *rasterConfig) {
		c.fixed = true
	}
}

// WithThreshold sets the 8-bit coverage above which a mask pixel is lit.
// The default is 0x80.
func WithThreshold(t uint8) RasterOption {
	return func(c *rasterConfig) {
		c.threshold = uint32(t) * 0x101
	}
}

type cell struct {
	rows    []uint32
	advance int
}

// FromFace rasterizes the ASCII glyphs of face into a bitmap descriptor.
func FromFace(face xfont.Face, opts ...RasterOption) (*Font, error) {
	if face == nil {
		return nil, fmt.Errorf("%w: nil face", ErrInvalidFont)
	}
	cfg := rasterConfig{threshold: 0x8080}
	for _, opt := range opts {
		opt(&cfg)
	}

	m := face.Metrics()
	ascent, descent := m.Ascent.Ceil(), m.Descent.Ceil()
	height := ascent + descent
	if height <= 0 {
		return nil, fmt.Errorf("%w: face has no height", ErrInvalidFont)
	}

	var cells [NumGlyphs]cell
	maxWidth := 1
	for i := range cells {
		c, err := rasterize(face, rune(FirstChar+i), ascent, height, cfg.threshold)
		if err != nil {
			return nil, err
		}
		cells[i] = c
		maxWidth = max(maxWidth, c.advance)
	}

	f := &Font{
		Name:          cfg.name,
		Data:          make([]uint32, NumGlyphs*height),
		MaxCharWidth:  maxWidth,
		MaxCharHeight: height,
	}
	if cfg.fixed {
		for i, c := range cells {
			copy(f.Data[i*height:], c.rows)
		}
		return f, nil
	}

	f.CharWidths = make([]uint16, NumGlyphs)
	f.CharHeights = make([]uint16, NumGlyphs)
	f.BaselineOffsets = make([]uint16, NumGlyphs)
	f.MaxBaselineOffset = descent
	for i, c := range cells {
		f.CharWidths[i] = uint16(c.advance)
		top, bottom := inkRows(c.rows)
		if top > bottom {
			continue
		}
		// Glyph rows run from the first inked row down to the baseline or
		// the last inked row, whichever is lower.
		end := max(bottom+1, ascent)
		f.CharHeights[i] = uint16(end - top)
		f.BaselineOffsets[i] = uint16(max(0, bottom+1-ascent))
		copy(f.Data[i*height:], c.rows[top:end])
	}
	return f, nil
}

func rasterize(face xfont.Face, r rune, ascent, height int, threshold uint32) (cell, error) {
	dr, mask, maskp, adv, ok := face.Glyph(fixed.P(0, ascent), r)
	if !ok {
		return cell{}, fmt.Errorf("%w: face has no glyph for %q", ErrInvalidFont, r)
	}
	c := cell{rows: make([]uint32, height), advance: adv.Ceil()}
	bounds := image.Rect(0, 0, MaxWidth, height).Intersect(dr)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			_, _, _, a := mask.At(maskp.X+x-dr.Min.X, maskp.Y+y-dr.Min.Y).RGBA()
			if a >= threshold {
				c.rows[y] |= 1 << (31 - x)
				c.advance = max(c.advance, x+1)
			}
		}
	}
	c.advance = min(max(c.advance, 1), MaxWidth)
	return c, nil
}

func inkRows(rows []uint32) (top, bottom int) {
	top, bottom = len(rows), -1
	for y, row := range rows {
		if row != 0 {
			top = min(top, y)
			bottom = y
		}
	}
	return top, bottom
}
