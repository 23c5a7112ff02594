// SPDX-License-Identifier: Apache-2.0

// Package font describes bitmap fonts for the ASCII range 32..126 and keeps
// them in a fixed-size table addressed by small integer IDs.
package font

import (
	"errors"
	"fmt"
)

const (
	// FirstChar is the first character a font provides a glyph for.
	FirstChar = 32
	// LastChar is the last character a font provides a glyph for.
	LastChar = 126
	// NumGlyphs is the number of glyphs in every font.
	NumGlyphs = LastChar - FirstChar + 1
	// MaxWidth is the widest glyph a row word can hold.
	MaxWidth = 32
	// Replacement is drawn for characters outside FirstChar..LastChar.
	Replacement = '?'
)

// ErrInvalidFont is returned when a descriptor is inconsistent.
var ErrInvalidFont = errors.New("font: invalid descriptor")

// Font is an immutable bitmap font.
//
// Data holds MaxCharHeight rows per glyph, glyphs in character order. Each
// row is a word whose most significant bit is the leftmost pixel. When the
// per-glyph tables are present a glyph uses the first CharHeights[i] rows of
// its block, and BaselineOffsets[i] tells how far it reaches below the
// baseline. Without tables every glyph is MaxCharWidth x MaxCharHeight.
type Font struct {
	Name string
	Data []uint32

	MaxCharWidth  int
	MaxCharHeight int

	CharWidths        []uint16
	CharHeights       []uint16
	BaselineOffsets   []uint16
	MaxBaselineOffset int
}

// Validate checks that the glyph data and the optional tables agree with
// the declared maxima.
func (f *Font) Validate() error {
	if f == nil {
		return fmt.Errorf("%w: nil font", ErrInvalidFont)
	}
	if f.MaxCharWidth <= 0 || f.MaxCharWidth > MaxWidth {
		return fmt.Errorf("%w: max char width %d", ErrInvalidFont, f.MaxCharWidth)
	}
	if f.MaxCharHeight <= 0 {
		return fmt.Errorf("%w: max char height %d", ErrInvalidFont, f.MaxCharHeight)
	}
	if len(f.Data) < NumGlyphs*f.MaxCharHeight {
		return fmt.Errorf("%w: %d data rows, want %d", ErrInvalidFont, len(f.Data), NumGlyphs*f.MaxCharHeight)
	}
	if f.MaxBaselineOffset < 0 || f.MaxBaselineOffset > f.MaxCharHeight {
		return fmt.Errorf("%w: max baseline offset %d", ErrInvalidFont, f.MaxBaselineOffset)
	}
	tables := []struct {
		name  string
		table []uint16
		limit int
	}{
		{"widths", f.CharWidths, f.MaxCharWidth},
		{"heights", f.CharHeights, f.MaxCharHeight},
		{"baseline offsets", f.BaselineOffsets, f.MaxBaselineOffset},
	}
	for _, t := range tables {
		if t.table == nil {
			continue
		}
		if len(t.table) != NumGlyphs {
			return fmt.Errorf("%w: %s table has %d entries", ErrInvalidFont, t.name, len(t.table))
		}
		for i, v := range t.table {
			if int(v) > t.limit {
				return fmt.Errorf("%w: %s[%q] = %d exceeds %d", ErrInvalidFont, t.name, rune(FirstChar+i), v, t.limit)
			}
		}
	}
	// Every glyph must fit between the top of the line and the lowest
	// descender, or it would be drawn outside the measured text box.
	for ch := byte(FirstChar); ch <= LastChar; ch++ {
		if top := f.GlyphTop(ch); top < 0 {
			_, h, b := f.Metrics(ch)
			return fmt.Errorf("%w: glyph %q of height %d with baseline offset %d rises %d rows above the line", ErrInvalidFont, rune(ch), h, b, -top)
		}
	}
	return nil
}

// Proportional reports whether the font carries per-glyph widths.
func (f *Font) Proportional() bool {
	return f.CharWidths != nil
}

// Metrics returns the width, height and baseline offset of ch's glyph.
// Missing tables fall back to MaxCharWidth, MaxCharHeight and 0.
func (f *Font) Metrics(ch byte) (width, height, baseline int) {
	i := glyphIndex(ch)
	width, height = f.MaxCharWidth, f.MaxCharHeight
	if f.CharWidths != nil {
		width = int(f.CharWidths[i])
	}
	if f.CharHeights != nil {
		height = int(f.CharHeights[i])
	}
	if f.BaselineOffsets != nil {
		baseline = int(f.BaselineOffsets[i])
	}
	return width, height, baseline
}

// Glyph returns the MaxCharHeight rows of ch's glyph block.
func (f *Font) Glyph(ch byte) []uint32 {
	off := glyphIndex(ch) * f.MaxCharHeight
	return f.Data[off : off+f.MaxCharHeight]
}

// GlyphTop returns the offset from the top of a text line to the first
// row of ch's glyph.
func (f *Font) GlyphTop(ch byte) int {
	_, h, b := f.Metrics(ch)
	return f.MaxCharHeight - f.MaxBaselineOffset + b - h
}

// LineHeight is the height of one line of text, without spacing.
func (f *Font) LineHeight() int {
	return f.MaxCharHeight
}

func glyphIndex(ch byte) int {
	if ch < FirstChar || ch > LastChar {
		ch = Replacement
	}
	return int(ch) - FirstChar
}
