// SPDX-License-Identifier: Apache-2.0

package glcd

import (
	"github.com/wundergraph/go-glcd/font"
	"github.com/wundergraph/go-glcd/gfx"
)

type config struct {
	orientation gfx.Orientation
	background  gfx.Color
	fonts       *font.Manager
	clear       bool
}

// Option configures a Manager.
type Option func(*config)

// WithOrientation rotates the logical screen relative to the panel.
// The default is gfx.Portrait.
func WithOrientation(o gfx.Orientation) Option {
	return func(c *config) {
		c.orientation = o
	}
}

// WithBackground sets the color painted under removed and hidden objects.
// The default is gfx.Black.
func WithBackground(col gfx.Color) Option {
	return func(c *config) {
		c.background = col
	}
}

// WithFonts sets the font table. The default is font.NewDefaultManager().
func WithFonts(fonts *font.Manager) Option {
	return func(c *config) {
		c.fonts = fonts
	}
}

// WithClear paints the whole screen with the background color on creation.
func WithClear() Option {
	return func(c *config) {
		c.clear = true
	}
}
