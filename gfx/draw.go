// SPDX-License-Identifier: Apache-2.0

// Package gfx rasterizes lines, rectangles, circles, images and text onto a
// Display. Every primitive clips against the display and skips None.
package gfx

// SetPixel paints p unless it is off-screen or c is None.
func SetPixel(d Display, p Point, c Color) {
	if c == None {
		return
	}
	w, h := d.Size()
	if p.X < 0 || p.Y < 0 || p.X >= w || p.Y >= h {
		return
	}
	d.SetPixel(p.X, p.Y, c)
}

// DrawLine draws a one pixel wide line between two inclusive endpoints.
func DrawLine(d Display, from, to Point, c Color) {
	if c == None {
		return
	}
	if from.Y == to.Y {
		FillRect(d, Box(from.X, from.Y, to.X, to.Y), c)
		return
	}
	if from.X == to.X {
		FillRect(d, Box(from.X, from.Y, to.X, to.Y), c)
		return
	}

	dx, dy := abs(to.X-from.X), -abs(to.Y-from.Y)
	sx, sy := sign(to.X-from.X), sign(to.Y-from.Y)
	e := dx + dy
	for p := from; ; {
		SetPixel(d, p, c)
		if p == to {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			p.X += sx
		}
		if e2 <= dx {
			e += dx
			p.Y += sy
		}
	}
}

// FillRect paints every pixel of b.
func FillRect(d Display, b BBox, c Color) {
	if c == None {
		return
	}
	if r, ok := b.Intersect(Bounds(d)); ok {
		fill(d, r, c)
	}
}

// DrawRect paints the interior of b with fill and its one pixel border with
// edge. Either color may be None.
func DrawRect(d Display, b BBox, edge, fill Color) {
	if fill != None {
		if edge == None {
			FillRect(d, b, fill)
		} else if b.Width() > 2 && b.Height() > 2 {
			FillRect(d, BBox{Min: b.Min.Add(Pt(1, 1)), Max: b.Max.Sub(Pt(1, 1))}, fill)
		}
	}
	if edge == None {
		return
	}
	FillRect(d, Box(b.Min.X, b.Min.Y, b.Max.X, b.Min.Y), edge)
	FillRect(d, Box(b.Min.X, b.Max.Y, b.Max.X, b.Max.Y), edge)
	FillRect(d, Box(b.Min.X, b.Min.Y, b.Min.X, b.Max.Y), edge)
	FillRect(d, Box(b.Max.X, b.Min.Y, b.Max.X, b.Max.Y), edge)
}

// DrawCircle draws a circle with the midpoint algorithm. The interior is
// painted with fill, the outline with edge.
func DrawCircle(d Display, center Point, radius int, edge, fill Color) {
	if radius < 0 {
		return
	}
	if radius == 0 {
		SetPixel(d, center, firstColor(edge, fill))
		return
	}

	if fill != None {
		// Without an outline the fill covers the outline pixels too.
		inset := 0
		if edge != None {
			inset = 1
		}
		midpoint(radius, func(x, y int) {
			span(d, center.X-x+inset, center.X+x-inset, center.Y+y, fill)
			span(d, center.X-x+inset, center.X+x-inset, center.Y-y, fill)
			span(d, center.X-y+inset, center.X+y-inset, center.Y+x, fill)
			span(d, center.X-y+inset, center.X+y-inset, center.Y-x, fill)
		})
	}
	// The outline goes on last so no fill span can cover it.
	if edge != None {
		midpoint(radius, func(x, y int) {
			for _, p := range [...]Point{
				{x, y}, {y, x}, {-y, x}, {-x, y},
				{-x, -y}, {-y, -x}, {y, -x}, {x, -y},
			} {
				SetPixel(d, center.Add(p), edge)
			}
		})
	}
}

// midpoint visits the first-octant points of a circle of radius r.
func midpoint(r int, visit func(x, y int)) {
	x, y := r, 0
	e := 1 - r
	for x >= y {
		visit(x, y)
		y++
		if e < 0 {
			e += 2*y + 1
		} else {
			x--
			e += 2*(y-x) + 1
		}
	}
}

func span(d Display, x0, x1, y int, c Color) {
	if x0 > x1 {
		return
	}
	FillRect(d, BBox{Min: Point{x0, y}, Max: Point{x1, y}}, c)
}

func firstColor(cs ...Color) Color {
	for _, c := range cs {
		if c != None {
			return c
		}
	}
	return None
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}
