// SPDX-License-Identifier: Apache-2.0

package gfx

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClip(t *testing.T) {
	fb := NewFramebuffer(20, 20)
	c := Clip(fb, Box(5, 5, 9, 9))

	FillRect(c, Box(0, 0, 19, 19), Red)
	for y := range 20 {
		for x := range 20 {
			want := Black
			if x >= 5 && x <= 9 && y >= 5 && y <= 9 {
				want = Red
			}
			require.Equal(t, want, fb.Pixel(x, y), "pixel (%d,%d)", x, y)
		}
	}

	nested := Clip(c, Box(8, 8, 30, 30))
	require.Equal(t, Box(8, 8, 9, 9), nested.Box)
	require.Same(t, fb, nested.Display)

	empty := Clip(c, Box(15, 15, 16, 16))
	DrawLine(empty, Pt(0, 15), Pt(19, 15), Blue)
	require.Equal(t, Black, fb.Pixel(15, 15))
}

func TestRotate(t *testing.T) {
	fb := NewFramebuffer(NativeWidth, NativeHeight)
	require.Same(t, Display(fb), Rotate(fb, Portrait))

	cases := []struct {
		o      Orientation
		w, h   int
		native Point
	}{
		{Landscape, NativeHeight, NativeWidth, Pt(NativeWidth-1-2, 1)},
		{PortraitFlipped, NativeWidth, NativeHeight, Pt(NativeWidth-1-1, NativeHeight-1-2)},
		{LandscapeFlipped, NativeHeight, NativeWidth, Pt(2, NativeHeight-1-1)},
	}
	for _, tc := range cases {
		fb.Fill(Black)
		d := Rotate(fb, tc.o)
		w, h := d.Size()
		require.Equal(t, tc.w, w)
		require.Equal(t, tc.h, h)

		SetPixel(d, Pt(1, 2), Cyan)
		require.Equal(t, Cyan, fb.Pixel(tc.native.X, tc.native.Y), "orientation %d", tc.o)
		require.Equal(t, Cyan, d.(PixelReader).Pixel(1, 2))

		// The logical corners map onto the panel corners.
		FillRect(d, Bounds(d), Green)
		require.Empty(t, fb.Diff(filled(NativeWidth, NativeHeight, Green)))
	}
}

func filled(w, h int, c Color) *Framebuffer {
	fb := NewFramebuffer(w, h)
	fb.Fill(c)
	return fb
}

func TestFramebuffer(t *testing.T) {
	fb := NewFramebuffer(4, 3)
	fb.SetPixel(1, 1, Red)
	fb.SetPixel(-1, 0, Red)
	fb.SetPixel(4, 0, Red)
	fb.SetPixel(0, 0, None)

	require.Equal(t, Red, fb.Pixel(1, 1))
	require.Equal(t, None, fb.Pixel(9, 9))
	require.Equal(t, Red, fb.At(1, 1))
	require.Equal(t, 4, fb.Bounds().Dx())

	cl := fb.Clone()
	require.True(t, fb.Equal(cl))
	cl.SetPixel(3, 2, Blue)
	require.False(t, fb.Equal(cl))
	require.Equal(t, []Point{{3, 2}}, fb.Diff(cl))
}

func TestRecorder(t *testing.T) {
	fb := NewFramebuffer(8, 8)
	rec := NewRecorder(fb)

	DrawRect(rec, Box(1, 1, 3, 3), Red, Blue)
	writes := rec.Reset()
	require.Len(t, writes, 1+12)
	require.Empty(t, rec.Writes)
	require.Equal(t, Blue, rec.Pixel(2, 2))
	require.Equal(t, Red, rec.Pixel(1, 1))
}
