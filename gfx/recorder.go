// SPDX-License-Identifier: Apache-2.0

package gfx

// Write is one recorded pixel write.
type Write struct {
	X, Y  int
	Color Color
}

// Recorder forwards writes to a Display and keeps a log of them. It does not
// implement Filler, so fills are recorded pixel by pixel.
type Recorder struct {
	Display Display
	Writes  []Write
}

// NewRecorder wraps d.
func NewRecorder(d Display) *Recorder {
	return &Recorder{Display: d}
}

func (r *Recorder) Size() (int, int) {
	return r.Display.Size()
}

func (r *Recorder) SetPixel(x, y int, c Color) {
	r.Writes = append(r.Writes, Write{x, y, c})
	r.Display.SetPixel(x, y, c)
}

// Pixel reads through when the wrapped display supports it.
func (r *Recorder) Pixel(x, y int) Color {
	if pr, ok := r.Display.(PixelReader); ok {
		return pr.Pixel(x, y)
	}
	return None
}

// Reset drops the log and returns what it held.
func (r *Recorder) Reset() []Write {
	w := r.Writes
	r.Writes = nil
	return w
}
