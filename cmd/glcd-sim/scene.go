// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	glcd "github.com/wundergraph/go-glcd"
	"github.com/wundergraph/go-glcd/bitmap"
	"github.com/wundergraph/go-glcd/font"
	"github.com/wundergraph/go-glcd/gfx"
)

const ballRadius = 6

type scene struct {
	title  glcd.ObjectID
	button glcd.ObjectID
	ball   glcd.ObjectID
	bounds gfx.BBox // where the ball's box may travel
}

func titleFont(size float64) (*font.Font, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: size, DPI: 72})
	if err != nil {
		return nil, err
	}
	defer face.Close()
	return font.FromFace(face, font.WithName("goregular"))
}

// gradient is a small opaque image fed through the bitmap converter.
func gradient(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.Set(x, y, color.RGBA{R: uint8(255 * x / w), G: uint8(255 * y / h), B: 0x80, A: 0xFF})
		}
	}
	return img
}

func buildScene(m *glcd.Manager) (*scene, error) {
	tf, err := titleFont(14)
	if err != nil {
		return nil, fmt.Errorf("title font: %w", err)
	}
	fontID, err := m.Fonts().Add(tf)
	if err != nil {
		return nil, err
	}
	logo, err := bitmap.FromImage(gradient(32, 16), bitmap.WithSize(16, 0))
	if err != nil {
		return nil, err
	}

	s := &scene{}
	w, h := m.Size()
	err = m.Batch(func() error {
		var err error
		s.title, err = m.Add(glcd.NewObject(
			glcd.Component{Pos: gfx.Pt(2, 2), Shape: glcd.Image{Bitmap: logo}},
			glcd.Component{Pos: gfx.Pt(4+logo.Width, 2), Shape: glcd.Text{
				Text:       "glcd",
				Font:       fontID,
				Color:      gfx.White,
				Background: gfx.None,
			}},
		))
		if err != nil {
			return err
		}
		box, err := m.GetBBox(s.title)
		if err != nil {
			return err
		}

		s.button, err = m.Add(glcd.NewObject(glcd.Component{
			Pos: gfx.Pt(2, h-20),
			Shape: glcd.Button{
				Label:   glcd.ButtonLabel{Text: "Esc quits", Font: font.System, Color: gfx.White},
				Edge:    gfx.White,
				Fill:    gfx.Blue2,
				Padding: glcd.Padding{Top: 1, Right: 3, Bottom: 1, Left: 3},
			},
		}))
		if err != nil {
			return err
		}

		c := gfx.Pt(w/2, h/2)
		s.ball, err = m.Add(glcd.NewObject(
			glcd.Component{Shape: glcd.Circle{Center: c, Radius: ballRadius, Edge: gfx.Yellow, Fill: gfx.Red}},
			glcd.Component{Shape: glcd.Line{From: c.Sub(gfx.Pt(ballRadius, 0)), To: c.Add(gfx.Pt(ballRadius, 0)), Color: gfx.Yellow}},
		))
		if err != nil {
			return err
		}
		s.bounds = gfx.Box(0, box.Max.Y+1, w-2*ballRadius-1, h-2*ballRadius-1)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}
