// SPDX-License-Identifier: Apache-2.0

package gfx

import (
	"errors"

	"github.com/wundergraph/go-glcd/font"
)

// ErrNoFont is returned when text is drawn without a font.
var ErrNoFont = errors.New("gfx: no font")

// TextStyle describes how a string is drawn.
type TextStyle struct {
	Font       *font.Font
	Color      Color
	Background Color
	// CharSpacing is added between glyphs, LineSpacing between lines.
	// Both may be negative.
	CharSpacing int
	LineSpacing int
}

// PutChar draws one glyph whose line box starts at at and returns the
// horizontal advance. A bg other than None fills the glyph's cell first.
func PutChar(d Display, f *font.Font, ch byte, at Point, fg, bg Color) (int, error) {
	if f == nil {
		return 0, ErrNoFont
	}
	w, _, _ := f.Metrics(ch)
	if bg != None {
		FillRect(d, Sized(at, w, f.LineHeight()), bg)
	}
	putGlyph(d, f, ch, at, fg)
	return w, nil
}

func putGlyph(d Display, f *font.Font, ch byte, at Point, c Color) {
	if c == None {
		return
	}
	w, h, _ := f.Metrics(ch)
	top := at.Y + f.GlyphTop(ch)
	rows := f.Glyph(ch)
	for r := range h {
		row := rows[r]
		if row == 0 {
			continue
		}
		for x := range w {
			if row&(1<<(31-x)) != 0 {
				SetPixel(d, Point{at.X + x, top + r}, c)
			}
		}
	}
}

// PrintString draws s starting at the top-left corner at. Lines break only
// at '\n'. A Background other than None fills the whole measured text box.
func PrintString(d Display, s string, at Point, st TextStyle) error {
	if st.Font == nil {
		return ErrNoFont
	}
	if st.Background != None {
		w, h := MeasureString(st.Font, s, st.CharSpacing, st.LineSpacing)
		FillRect(d, Sized(at, w, h), st.Background)
	}
	p := at
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch == '\n' {
			p.X = at.X
			p.Y += st.Font.LineHeight() + st.LineSpacing
			continue
		}
		putGlyph(d, st.Font, ch, p, st.Color)
		w, _, _ := st.Font.Metrics(ch)
		p.X += w + st.CharSpacing
	}
	return nil
}

// MeasureString returns the size of the box PrintString covers.
func MeasureString(f *font.Font, s string, charSpacing, lineSpacing int) (w, h int) {
	lines, line, glyphs := 1, 0, 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			w = max(w, line)
			lines++
			line, glyphs = 0, 0
			continue
		}
		cw, _, _ := f.Metrics(s[i])
		if glyphs > 0 {
			line += charSpacing
		}
		line += cw
		glyphs++
	}
	w = max(w, line, 0)
	h = max(lines*f.LineHeight()+(lines-1)*lineSpacing, 0)
	return w, h
}
