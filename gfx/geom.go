// SPDX-License-Identifier: Apache-2.0

package gfx

import (
	"fmt"
	"image"
)

// Point is a pixel coordinate. The origin is the top-left corner and y
// grows downward.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y int) Point {
	return Point{x, y}
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// BBox is an axis-aligned box. Both corners are inside the box.
type BBox struct {
	Min, Max Point
}

// Box returns the box spanned by two corners given in any order.
func Box(x0, y0, x1, y1 int) BBox {
	return BBox{
		Min: Point{min(x0, x1), min(y0, y1)},
		Max: Point{max(x0, x1), max(y0, y1)},
	}
}

// Sized returns the box of a w x h area whose top-left corner is p.
// Sizes below one pixel are raised to one.
func Sized(p Point, w, h int) BBox {
	return BBox{Min: p, Max: Point{p.X + max(w, 1) - 1, p.Y + max(h, 1) - 1}}
}

// Screen returns the box covering a w x h display.
func Screen(w, h int) BBox {
	return BBox{Max: Point{w - 1, h - 1}}
}

// Width returns the number of columns in b.
func (b BBox) Width() int {
	return b.Max.X - b.Min.X + 1
}

// Height returns the number of rows in b.
func (b BBox) Height() int {
	return b.Max.Y - b.Min.Y + 1
}

// Union returns the smallest box containing b and o.
func (b BBox) Union(o BBox) BBox {
	return BBox{
		Min: Point{min(b.Min.X, o.Min.X), min(b.Min.Y, o.Min.Y)},
		Max: Point{max(b.Max.X, o.Max.X), max(b.Max.Y, o.Max.Y)},
	}
}

// Intersect returns the overlap of b and o and whether there is one.
func (b BBox) Intersect(o BBox) (BBox, bool) {
	r := BBox{
		Min: Point{max(b.Min.X, o.Min.X), max(b.Min.Y, o.Min.Y)},
		Max: Point{min(b.Max.X, o.Max.X), min(b.Max.Y, o.Max.Y)},
	}
	if r.Min.X > r.Max.X || r.Min.Y > r.Max.Y {
		return BBox{}, false
	}
	return r, true
}

// Overlaps reports whether b and o share at least one pixel.
func (b BBox) Overlaps(o BBox) bool {
	_, ok := b.Intersect(o)
	return ok
}

// Contains reports whether p lies inside b.
func (b BBox) Contains(p Point) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// Translate moves b by d.
func (b BBox) Translate(d Point) BBox {
	return BBox{Min: b.Min.Add(d), Max: b.Max.Add(d)}
}

// Rect converts b to an image.Rectangle, whose Max is exclusive.
func (b BBox) Rect() image.Rectangle {
	return image.Rect(b.Min.X, b.Min.Y, b.Max.X+1, b.Max.Y+1)
}

func (b BBox) String() string {
	return fmt.Sprintf("%v-%v", b.Min, b.Max)
}

// Orientation is the clockwise rotation, in degrees, of the logical screen
// relative to the panel.
type Orientation int

const (
	Portrait         Orientation = 0
	Landscape        Orientation = 90
	PortraitFlipped  Orientation = 180
	LandscapeFlipped Orientation = 270
)

// Valid reports whether o is one of the four supported rotations.
func (o Orientation) Valid() bool {
	switch o {
	case Portrait, Landscape, PortraitFlipped, LandscapeFlipped:
		return true
	}
	return false
}

// Swapped reports whether o exchanges width and height.
func (o Orientation) Swapped() bool {
	return o == Landscape || o == LandscapeFlipped
}

// Size of the reference panel in its native portrait orientation.
const (
	NativeWidth  = 240
	NativeHeight = 320
)
