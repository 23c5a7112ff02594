// SPDX-License-Identifier: Apache-2.0

// Package bitmap converts decoded images into panel-format gfx.Image values.
package bitmap

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"

	// Registered decoders.
	_ "image/png"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"

	"github.com/wundergraph/go-glcd/gfx"
)

// ErrEmptyImage is returned for an image without pixels.
var ErrEmptyImage = errors.New("bitmap: empty image")

type alphaMode uint8

const (
	alphaAuto alphaMode = iota
	alphaOn
	alphaOff
)

type config struct {
	width, height int
	alpha         alphaMode
	scaler        draw.Scaler
}

// Option configures a conversion.
type Option func(*config)

// WithSize scales the image to w x h before converting it. A zero
// dimension keeps the aspect ratio of the source.
func WithSize(w, h int) Option {
	return func(c *config) {
		c.width, c.height = w, h
	}
}

// WithAlpha forces RGB8565 output on or off. By default alpha is kept
// only when the source is not opaque.
func WithAlpha(enabled bool) Option {
	return func(c *config) {
		if enabled {
			c.alpha = alphaOn
		} else {
			c.alpha = alphaOff
		}
	}
}

// WithScaler selects the interpolator used by WithSize. The default is
// draw.ApproxBiLinear.
func WithScaler(s draw.Scaler) Option {
	return func(c *config) {
		c.scaler = s
	}
}

// FromImage converts src into RGB565, or RGB8565 when alpha is kept.
func FromImage(src image.Image, opts ...Option) (*gfx.Image, error) {
	cfg := config{scaler: draw.ApproxBiLinear}
	for _, opt := range opts {
		opt(&cfg)
	}
	b := src.Bounds()
	if b.Empty() {
		return nil, ErrEmptyImage
	}

	w, h := targetSize(b.Dx(), b.Dy(), cfg.width, cfg.height)
	rgba := image.NewNRGBA(image.Rect(0, 0, w, h))
	if w == b.Dx() && h == b.Dy() {
		draw.Draw(rgba, rgba.Bounds(), src, b.Min, draw.Src)
	} else {
		cfg.scaler.Scale(rgba, rgba.Bounds(), src, b, draw.Src, nil)
	}

	hasAlpha := cfg.alpha == alphaOn
	if cfg.alpha == alphaAuto {
		if o, ok := src.(interface{ Opaque() bool }); ok {
			hasAlpha = !o.Opaque()
		} else {
			hasAlpha = !rgba.Opaque()
		}
	}

	img := &gfx.Image{
		Pixels:   make([]uint32, w*h),
		Width:    w,
		Height:   h,
		HasAlpha: hasAlpha,
	}
	for y := range h {
		for x := range w {
			c := rgba.NRGBAAt(x, y)
			px := uint32(gfx.RGB(c.R, c.G, c.B))
			if hasAlpha {
				px |= uint32(c.A) << 16
			}
			img.Pixels[y*w+x] = px
		}
	}
	return img, nil
}

// Decode reads a PNG or BMP stream and converts it.
func Decode(r io.Reader, opts ...Option) (*gfx.Image, error) {
	src, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("bitmap: decode: %w", err)
	}
	img, err := FromImage(src, opts...)
	if err != nil {
		return nil, fmt.Errorf("bitmap: convert %s: %w", format, err)
	}
	return img, nil
}

// Load decodes the image file at path.
func Load(path string, opts ...Option) (*gfx.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f, opts...)
}

func targetSize(sw, sh, w, h int) (int, int) {
	switch {
	case w <= 0 && h <= 0:
		return sw, sh
	case w <= 0:
		return max(1, sw*h/sh), h
	case h <= 0:
		return w, max(1, sh*w/sw)
	}
	return w, h
}
