// SPDX-License-Identifier: Apache-2.0

// Package termdisplay shows a pixel display in a terminal through tcell.
//
// Every character cell holds two vertically stacked pixels: the upper
// half block takes the top pixel as its foreground and the bottom pixel as
// its background. A shadow copy of the pixels is kept so that writing one
// pixel can repaint its cell, and so the display can be read back.
package termdisplay

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/wundergraph/go-glcd/gfx"
)

// HalfBlock is the rune drawn in every cell.
const HalfBlock = '▀'

// ErrInvalidSize is returned for a display without pixels.
var ErrInvalidSize = errors.New("termdisplay: invalid size")

// Screen is the part of tcell.Screen the display writes to.
type Screen interface {
	SetContent(x, y int, mainc rune, combc []rune, style tcell.Style)
	Show()
}

// Display is a gfx.Display backed by terminal cells. Pixel (x, y) lives in
// cell (Origin.X + x, Origin.Y + y/2).
type Display struct {
	screen Screen
	origin gfx.Point
	w, h   int
	pix    []gfx.Color
}

// Option configures a Display.
type Option func(*Display)

// WithOrigin places the top-left pixel at a cell other than (0, 0).
func WithOrigin(cell gfx.Point) Option {
	return func(d *Display) {
		d.origin = cell
	}
}

// New creates a w x h pixel display on s, initially black.
func New(s Screen, w, h int, opts ...Option) (*Display, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: no screen", ErrInvalidSize)
	}
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, w, h)
	}
	d := &Display{screen: s, w: w, h: h, pix: make([]gfx.Color, w*h)}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Fit returns the largest pixel size a screen of cols x rows cells can
// show.
func Fit(cols, rows int) (w, h int) {
	return cols, rows * 2
}

func (d *Display) Size() (int, int) {
	return d.w, d.h
}

func (d *Display) SetPixel(x, y int, c gfx.Color) {
	if x < 0 || y < 0 || x >= d.w || y >= d.h || c == gfx.None {
		return
	}
	d.pix[y*d.w+x] = c
	d.paint(x, y/2)
}

// FillRect implements gfx.Filler, repainting each touched cell once.
func (d *Display) FillRect(b gfx.BBox, c gfx.Color) {
	b, ok := b.Intersect(gfx.Screen(d.w, d.h))
	if !ok || c == gfx.None {
		return
	}
	for y := b.Min.Y; y <= b.Max.Y; y++ {
		row := d.pix[y*d.w:]
		for x := b.Min.X; x <= b.Max.X; x++ {
			row[x] = c
		}
	}
	for row := b.Min.Y / 2; row <= b.Max.Y/2; row++ {
		for x := b.Min.X; x <= b.Max.X; x++ {
			d.paint(x, row)
		}
	}
}

// Pixel implements gfx.PixelReader.
func (d *Display) Pixel(x, y int) gfx.Color {
	if x < 0 || y < 0 || x >= d.w || y >= d.h {
		return gfx.None
	}
	return d.pix[y*d.w+x]
}

// Show flushes the cells to the terminal.
func (d *Display) Show() {
	d.screen.Show()
}

// Redraw repaints every cell from the shadow pixels, after the terminal was
// cleared or resized.
func (d *Display) Redraw() {
	for row := range (d.h + 1) / 2 {
		for x := range d.w {
			d.paint(x, row)
		}
	}
}

func (d *Display) paint(x, row int) {
	top := d.pix[2*row*d.w+x]
	bottom := gfx.Black
	if y := 2*row + 1; y < d.h {
		bottom = d.pix[y*d.w+x]
	}
	d.screen.SetContent(d.origin.X+x, d.origin.Y+row, HalfBlock, nil, CellStyle(top, bottom))
}

// CellStyle is the style of a cell showing top above bottom.
func CellStyle(top, bottom gfx.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(TermColor(top)).Background(TermColor(bottom))
}

// TermColor converts an RGB565 color to a true-color terminal color. None
// maps to the terminal's default color.
func TermColor(c gfx.Color) tcell.Color {
	if c == gfx.None {
		return tcell.ColorDefault
	}
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}
