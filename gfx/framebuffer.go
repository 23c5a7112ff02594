// SPDX-License-Identifier: Apache-2.0

package gfx

import (
	"image"
	"image/color"
	"slices"
)

// Framebuffer is an in-memory RGB565 Display. It also implements
// image.Image so a frame can be encoded or compared.
type Framebuffer struct {
	Pix    []uint16
	Width  int
	Height int
}

var (
	_ Display     = (*Framebuffer)(nil)
	_ Filler      = (*Framebuffer)(nil)
	_ PixelReader = (*Framebuffer)(nil)
	_ image.Image = (*Framebuffer)(nil)
)

// NewFramebuffer returns a black w x h framebuffer.
func NewFramebuffer(w, h int) *Framebuffer {
	return &Framebuffer{Pix: make([]uint16, w*h), Width: w, Height: h}
}

func (f *Framebuffer) Size() (int, int) {
	return f.Width, f.Height
}

func (f *Framebuffer) SetPixel(x, y int, c Color) {
	if c == None || x < 0 || y < 0 || x >= f.Width || y >= f.Height {
		return
	}
	f.Pix[y*f.Width+x] = uint16(c)
}

func (f *Framebuffer) FillRect(b BBox, c Color) {
	r, ok := b.Intersect(Screen(f.Width, f.Height))
	if !ok || c == None {
		return
	}
	for y := r.Min.Y; y <= r.Max.Y; y++ {
		row := f.Pix[y*f.Width+r.Min.X : y*f.Width+r.Max.X+1]
		for i := range row {
			row[i] = uint16(c)
		}
	}
}

// Pixel returns the color at (x, y), or None outside the buffer.
func (f *Framebuffer) Pixel(x, y int) Color {
	if x < 0 || y < 0 || x >= f.Width || y >= f.Height {
		return None
	}
	return Color(f.Pix[y*f.Width+x])
}

// Fill paints the whole buffer.
func (f *Framebuffer) Fill(c Color) {
	f.FillRect(Screen(f.Width, f.Height), c)
}

func (f *Framebuffer) ColorModel() color.Model {
	return Model
}

func (f *Framebuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.Width, f.Height)
}

func (f *Framebuffer) At(x, y int) color.Color {
	return f.Pixel(x, y)
}

// Clone returns an independent copy.
func (f *Framebuffer) Clone() *Framebuffer {
	return &Framebuffer{Pix: slices.Clone(f.Pix), Width: f.Width, Height: f.Height}
}

// Equal reports whether both buffers have the same size and pixels.
func (f *Framebuffer) Equal(o *Framebuffer) bool {
	return f.Width == o.Width && f.Height == o.Height && slices.Equal(f.Pix, o.Pix)
}

// Diff returns the coordinates where f and o differ. Buffers of different
// sizes are compared over their common area.
func (f *Framebuffer) Diff(o *Framebuffer) []Point {
	var out []Point
	for y := range min(f.Height, o.Height) {
		for x := range min(f.Width, o.Width) {
			if f.Pix[y*f.Width+x] != o.Pix[y*o.Width+x] {
				out = append(out, Point{x, y})
			}
		}
	}
	return out
}
