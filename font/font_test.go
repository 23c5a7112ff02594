// SPDX-License-Identifier: Apache-2.0

package font

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func monoFont(w, h int) *Font {
	return &Font{
		Name:          "mono",
		Data:          make([]uint32, NumGlyphs*h),
		MaxCharWidth:  w,
		MaxCharHeight: h,
	}
}

func TestFontValidate(t *testing.T) {
	require.NoError(t, monoFont(8, 16).Validate())

	var nilFont *Font
	require.ErrorIs(t, nilFont.Validate(), ErrInvalidFont)
	require.ErrorIs(t, monoFont(0, 16).Validate(), ErrInvalidFont)
	require.ErrorIs(t, monoFont(33, 16).Validate(), ErrInvalidFont)
	require.ErrorIs(t, monoFont(8, 0).Validate(), ErrInvalidFont)

	short := monoFont(8, 16)
	short.Data = short.Data[:10]
	require.ErrorIs(t, short.Validate(), ErrInvalidFont)

	badTable := monoFont(8, 16)
	badTable.CharWidths = make([]uint16, NumGlyphs-1)
	require.ErrorIs(t, badTable.Validate(), ErrInvalidFont)

	tooWide := monoFont(8, 16)
	tooWide.CharWidths = make([]uint16, NumGlyphs)
	tooWide.CharWidths[5] = 9
	require.ErrorIs(t, tooWide.Validate(), ErrInvalidFont)

	badBaseline := monoFont(8, 16)
	badBaseline.BaselineOffsets = make([]uint16, NumGlyphs)
	badBaseline.BaselineOffsets[0] = 1
	require.ErrorIs(t, badBaseline.Validate(), ErrInvalidFont)
}

func TestFontValidateRejectsGlyphsAboveLine(t *testing.T) {
	f := monoFont(4, 4)
	f.MaxBaselineOffset = 2
	f.CharHeights = make([]uint16, NumGlyphs)
	f.BaselineOffsets = make([]uint16, NumGlyphs)
	require.NoError(t, f.Validate())

	// Two rows above the baseline leave room for a 2-row glyph only.
	f.CharHeights['A'-FirstChar] = 2
	require.NoError(t, f.Validate())
	require.Equal(t, 0, f.GlyphTop('A'))

	f.CharHeights['A'-FirstChar] = 4
	require.ErrorIs(t, f.Validate(), ErrInvalidFont)

	// The same glyph is fine once it reaches below the baseline.
	f.BaselineOffsets['A'-FirstChar] = 2
	require.NoError(t, f.Validate())
	require.Equal(t, 0, f.GlyphTop('A'))

	require.NoError(t, SystemFont().Validate())
}

func TestFontMetricsFallback(t *testing.T) {
	f := monoFont(8, 16)
	w, h, b := f.Metrics('A')
	require.Equal(t, 8, w)
	require.Equal(t, 16, h)
	require.Equal(t, 0, b)
	require.Equal(t, 0, f.GlyphTop('A'))
	require.False(t, f.Proportional())
}

func TestFontMetricsTables(t *testing.T) {
	f := monoFont(8, 16)
	f.CharWidths = make([]uint16, NumGlyphs)
	f.CharHeights = make([]uint16, NumGlyphs)
	f.BaselineOffsets = make([]uint16, NumGlyphs)
	f.MaxBaselineOffset = 3
	f.CharWidths['g'-FirstChar] = 6
	f.CharHeights['g'-FirstChar] = 10
	f.BaselineOffsets['g'-FirstChar] = 3
	require.NoError(t, f.Validate())

	w, h, b := f.Metrics('g')
	require.Equal(t, 6, w)
	require.Equal(t, 10, h)
	require.Equal(t, 3, b)
	require.Equal(t, 6, f.GlyphTop('g'))
	require.True(t, f.Proportional())
}

func TestFontOutOfRangeUsesReplacement(t *testing.T) {
	f := monoFont(8, 2)
	q := int('?'-FirstChar) * 2
	f.Data[q] = 0xF0000000

	require.Equal(t, f.Glyph('?'), f.Glyph(0x7F))
	require.Equal(t, f.Glyph('?'), f.Glyph('\t'))
	require.Equal(t, uint32(0xF0000000), f.Glyph(200)[0])
}

func TestFold(t *testing.T) {
	require.Equal(t, "Citta", Fold("Città"))
	require.Equal(t, "naive ?", Fold("naïve ☃"))
	require.Equal(t, "line1\nline2", Fold("line1\nline2"))
	require.Equal(t, "a?b", Fold("a\tb"))
	require.Equal(t, "", Fold(""))
}
