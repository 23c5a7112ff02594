// SPDX-License-Identifier: Apache-2.0

package gfx

import (
	"errors"
	"fmt"
)

// ErrInvalidImage is returned for an image whose pixel buffer does not match
// its size.
var ErrInvalidImage = errors.New("gfx: invalid image")

// Image is a bitmap in panel format. Each word holds an RGB565 pixel in its
// low 16 bits; with HasAlpha the next 8 bits are an alpha value (RGB8565)
// and pixels with alpha 0 are skipped. Any other alpha draws opaque.
type Image struct {
	Pixels   []uint32
	Width    int
	Height   int
	HasAlpha bool
}

// Validate checks that Pixels holds Width*Height entries.
func (img *Image) Validate() error {
	if img == nil || img.Pixels == nil {
		return fmt.Errorf("%w: no pixels", ErrInvalidImage)
	}
	if img.Width <= 0 || img.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidImage, img.Width, img.Height)
	}
	if len(img.Pixels) < img.Width*img.Height {
		return fmt.Errorf("%w: %d pixels for %dx%d", ErrInvalidImage, len(img.Pixels), img.Width, img.Height)
	}
	return nil
}

// At returns the color of a pixel, or None when it is transparent.
func (img *Image) At(x, y int) Color {
	px := img.Pixels[y*img.Width+x]
	if img.HasAlpha && px>>16&0xFF == 0 {
		return None
	}
	return Color(px & 0xFFFF)
}

// Bounds returns the box the image covers when its top-left corner is at.
func (img *Image) Bounds(at Point) BBox {
	return Sized(at, img.Width, img.Height)
}

// DrawImage copies img with its top-left corner at. Parts outside the
// display are cropped.
func DrawImage(d Display, img *Image, at Point) error {
	if err := img.Validate(); err != nil {
		return err
	}
	r, ok := img.Bounds(at).Intersect(Bounds(d))
	if !ok {
		return nil
	}
	for y := r.Min.Y; y <= r.Max.Y; y++ {
		for x := r.Min.X; x <= r.Max.X; x++ {
			if c := img.At(x-at.X, y-at.Y); c != None {
				d.SetPixel(x, y, c)
			}
		}
	}
	return nil
}
