// SPDX-License-Identifier: Apache-2.0

package gfx

import (
	"image/color"
)

// Color is an RGB565 value in the low 16 bits. None is the only value with
// higher bits set and means "do not paint".
type Color uint32

// None is the transparent sentinel accepted wherever a color is optional.
const None Color = 0x10000

// Palette of the reference panel.
const (
	White   Color = 0xFFFF
	Black   Color = 0x0000
	Grey    Color = 0xF7DE
	Blue    Color = 0x001F
	Blue2   Color = 0x051F
	Red     Color = 0xF800
	Magenta Color = 0xF81F
	Green   Color = 0x07E0
	Cyan    Color = 0x7FFF
	Yellow  Color = 0xFFE0
)

// RGB packs an 8-bit per channel color into RGB565.
func RGB(r, g, b uint8) Color {
	return Color(uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3))
}

// IsNone reports whether c is the transparent sentinel.
func (c Color) IsNone() bool {
	return c == None
}

// RGB565 returns the packed 16-bit value.
func (c Color) RGB565() uint16 {
	return uint16(c)
}

// RGBA implements color.Color. None is fully transparent.
func (c Color) RGBA() (r, g, b, a uint32) {
	if c == None {
		return 0, 0, 0, 0
	}
	r5 := uint32(c>>11) & 0x1F
	g6 := uint32(c>>5) & 0x3F
	b5 := uint32(c) & 0x1F
	r = (r5<<3 | r5>>2) * 0x101
	g = (g6<<2 | g6>>4) * 0x101
	b = (b5<<3 | b5>>2) * 0x101
	return r, g, b, 0xFFFF
}

// FromColor converts any color to RGB565. Fully transparent colors map to
// None; partial alpha is ignored.
func FromColor(c color.Color) Color {
	if c, ok := c.(Color); ok {
		return c
	}
	r, g, b, a := c.RGBA()
	if a == 0 {
		return None
	}
	return RGB(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

// Model converts colors to Color.
var Model = color.ModelFunc(func(c color.Color) color.Color {
	return FromColor(c)
})
