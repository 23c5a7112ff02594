// SPDX-License-Identifier: Apache-2.0

package gfx

// Display is the pixel sink every primitive draws into. Writes are visible
// immediately; there is no implied off-screen buffer.
type Display interface {
	// Size returns the addressable width and height.
	Size() (w, h int)
	// SetPixel paints one pixel. Callers never pass None or coordinates
	// outside Size.
	SetPixel(x, y int, c Color)
}

// Filler is implemented by displays with a fast rectangle fill. The box is
// already clipped to the display.
type Filler interface {
	FillRect(b BBox, c Color)
}

// PixelReader is implemented by displays that can read pixels back.
type PixelReader interface {
	Pixel(x, y int) Color
}

// Bounds returns the box covering d.
func Bounds(d Display) BBox {
	w, h := d.Size()
	return Screen(w, h)
}

// Clipped is a Display that drops every write outside Box.
type Clipped struct {
	Display Display
	Box     BBox
}

// Clip restricts writes to d to the part of box that lies on screen.
func Clip(d Display, box BBox) *Clipped {
	if c, ok := d.(*Clipped); ok {
		inner, ok := c.Box.Intersect(box)
		if !ok {
			inner = BBox{Min: Point{0, 0}, Max: Point{-1, -1}}
		}
		return &Clipped{Display: c.Display, Box: inner}
	}
	return &Clipped{Display: d, Box: box}
}

func (c *Clipped) Size() (int, int) {
	return c.Display.Size()
}

func (c *Clipped) SetPixel(x, y int, col Color) {
	if c.Box.Contains(Point{x, y}) {
		c.Display.SetPixel(x, y, col)
	}
}

func (c *Clipped) FillRect(b BBox, col Color) {
	if r, ok := b.Intersect(c.Box); ok {
		fill(c.Display, r, col)
	}
}

// Rotated maps a logical screen onto a panel mounted in Orientation.
type Rotated struct {
	Display     Display
	Orientation Orientation
}

// Rotate wraps d so that callers draw in o's logical coordinates. Portrait
// returns d unchanged.
func Rotate(d Display, o Orientation) Display {
	if o == Portrait || !o.Valid() {
		return d
	}
	return &Rotated{Display: d, Orientation: o}
}

func (r *Rotated) Size() (int, int) {
	w, h := r.Display.Size()
	if r.Orientation.Swapped() {
		return h, w
	}
	return w, h
}

func (r *Rotated) native(x, y int) (int, int) {
	w, h := r.Display.Size()
	switch r.Orientation {
	case Landscape:
		return w - 1 - y, x
	case PortraitFlipped:
		return w - 1 - x, h - 1 - y
	case LandscapeFlipped:
		return y, h - 1 - x
	}
	return x, y
}

func (r *Rotated) SetPixel(x, y int, c Color) {
	nx, ny := r.native(x, y)
	r.Display.SetPixel(nx, ny, c)
}

func (r *Rotated) FillRect(b BBox, c Color) {
	x0, y0 := r.native(b.Min.X, b.Min.Y)
	x1, y1 := r.native(b.Max.X, b.Max.Y)
	fill(r.Display, Box(x0, y0, x1, y1), c)
}

// Pixel reads through to the panel. It returns None when the panel cannot
// be read.
func (r *Rotated) Pixel(x, y int) Color {
	pr, ok := r.Display.(PixelReader)
	if !ok {
		return None
	}
	return pr.Pixel(r.native(x, y))
}

func fill(d Display, b BBox, c Color) {
	if f, ok := d.(Filler); ok {
		f.FillRect(b, c)
		return
	}
	for y := b.Min.Y; y <= b.Max.Y; y++ {
		for x := b.Min.X; x <= b.Max.X; x++ {
			d.SetPixel(x, y, c)
		}
	}
}
