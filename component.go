// SPDX-License-Identifier: Apache-2.0

package glcd

import (
	"github.com/wundergraph/go-glcd/font"
	"github.com/wundergraph/go-glcd/gfx"
)

// MaxComponents is the largest number of components an object may hold.
const MaxComponents = 12

// Shape is one of Line, Rect, Circle, Image, Text or Button.
type Shape interface {
	shape()
}

// Line is drawn between two inclusive endpoints. It ignores
// Component.Pos.
type Line struct {
	From, To gfx.Point
	Color    gfx.Color
}

// Rect is a Width x Height rectangle whose top-left corner is
// Component.Pos.
type Rect struct {
	Width, Height int
	Edge, Fill    gfx.Color
}

// Circle is centered on Center. It ignores Component.Pos.
type Circle struct {
	Center     gfx.Point
	Radius     int
	Edge, Fill gfx.Color
}

// Image draws Bitmap with its top-left corner at Component.Pos.
type Image struct {
	Bitmap *gfx.Image
}

// Text draws a string whose first line box starts at Component.Pos. Lines
// break only at '\n'. Accented letters lose their accents and other
// characters a font cannot draw become '?'.
type Text struct {
	Text        string
	Font        font.ID
	Color       gfx.Color
	Background  gfx.Color
	CharSpacing int
	LineSpacing int
}

// ButtonLabel is the text drawn inside a Button.
type ButtonLabel struct {
	Text        string
	Font        font.ID
	Color       gfx.Color
	CharSpacing int
	LineSpacing int
}

// Padding is the space between a button's border and its label.
type Padding struct {
	Top, Right, Bottom, Left int
}

// Button is a bordered rectangle sized to fit its padded label.
type Button struct {
	Label   ButtonLabel
	Edge    gfx.Color
	Fill    gfx.Color
	Padding Padding
}

func (Line) shape()   {}
func (Rect) shape()   {}
func (Circle) shape() {}
func (Image) shape()  {}
func (Text) shape()   {}
func (Button) shape() {}

// Component is one drawable part of an object.
type Component struct {
	Pos   gfx.Point
	Shape Shape
}

// Object is what gets added to a Manager: 1 to MaxComponents components that
// always move and change visibility together.
type Object struct {
	Components []Component
}

// NewObject bundles components into an Object.
func NewObject(components ...Component) Object {
	return Object{Components: components}
}

// ObjectID identifies a registered object. IDs of removed objects are
// handed out again, lowest first.
type ObjectID int32

// AddOption modifies Add.
type AddOption uint8

const (
	// DontMarkVisible registers the object hidden; nothing is drawn.
	DontMarkVisible AddOption = 1 << iota
)

// textOf returns the string of a Text or Button, folded to what a font
// can draw.
func textOf(s Shape) (string, bool) {
	switch s := s.(type) {
	case Text:
		return font.Fold(s.Text), true
	case Button:
		return font.Fold(s.Label.Text), true
	}
	return "", false
}

func withoutText(s Shape) Shape {
	switch s := s.(type) {
	case Text:
		s.Text = ""
		return s
	case Button:
		s.Label.Text = ""
		return s
	}
	return s
}

// translate moves a component by d.
func translate(c Component, d gfx.Point) Component {
	c.Pos = c.Pos.Add(d)
	switch s := c.Shape.(type) {
	case Line:
		s.From, s.To = s.From.Add(d), s.To.Add(d)
		c.Shape = s
	case Circle:
		s.Center = s.Center.Add(d)
		c.Shape = s
	}
	return c
}
