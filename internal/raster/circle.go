package raster

import (
	"math"

	"ppmcanvas/internal/pixbuf"
)

// Circle draws the outline of a circle of radius r centered at (cx, cy)
// using the midpoint circle algorithm with 8-way symmetry. A radius of
// zero plots the center; a negative radius draws nothing. Pixels off the
// canvas are skipped.
func Circle(dst *pixbuf.Buffer, cx, cy, r int, c pixbuf.RGB) {
	if r < 0 {
		return
	}
	if r == 0 {
		plot(dst, cx, cy, c)
		return
	}

	x, y := 0, -r
	for x < -y {
		// Midpoint test: x*x + (y+0.5)^2 > r*r, kept in integers.
		if x*x+y*y+y >= r*r {
			y++
		}

		plot(dst, cx+x, cy+y, c)
		plot(dst, cx-x, cy+y, c)
		plot(dst, cx+x, cy-y, c)
		plot(dst, cx-x, cy-y, c)
		plot(dst, cx+y, cy+x, c)
		plot(dst, cx+y, cy-x, c)
		plot(dst, cx-y, cy+x, c)
		plot(dst, cx-y, cy-x, c)

		x++
	}
}

// FilledCircle draws a solid disk of radius r centered at (cx, cy) by
// filling a horizontal span per scanline. A pixel is covered when
// dx*dx+dy*dy <= r*r. Same clipping policy as Circle.
func FilledCircle(dst *pixbuf.Buffer, cx, cy, r int, c pixbuf.RGB) {
	if r < 0 {
		return
	}
	for dy := -r; dy <= r; dy++ {
		half := int(math.Sqrt(float64(r*r - dy*dy)))
		for dx := -half; dx <= half; dx++ {
			plot(dst, cx+dx, cy+dy, c)
		}
	}
}
