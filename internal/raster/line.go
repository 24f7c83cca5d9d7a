package raster

import (
	"math"

	"ppmcanvas/internal/pixbuf"
)

// plot writes one pixel, silently skipping coordinates off the canvas.
// A line may legitimately run past the edge; clipping is not an error.
func plot(dst *pixbuf.Buffer, x, y int, c pixbuf.RGB) {
	if x < 0 || x >= dst.Width() || y < 0 || y >= dst.Height() {
		return
	}
	dst.Pix()[y*dst.Width()+x] = c
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// LineDDA draws a line from (x0,y0) to (x1,y1) with the Digital
// Differential Analyzer: float increments along the dominant axis,
// rounding each intermediate coordinate. Both endpoints are inclusive.
func LineDDA(dst *pixbuf.Buffer, x0, y0, x1, y1 int, c pixbuf.RGB) {
	dx := x1 - x0
	dy := y1 - y0

	steps := max(abs(dx), abs(dy))
	if steps == 0 {
		plot(dst, x0, y0, c)
		return
	}

	xInc := float64(dx) / float64(steps)
	yInc := float64(dy) / float64(steps)
	for i := 0; i <= steps; i++ {
		x := math.Round(float64(x0) + float64(i)*xInc)
		y := math.Round(float64(y0) + float64(i)*yInc)
		plot(dst, int(x), int(y), c)
	}
}

// LineBresenham draws a line from (x0,y0) to (x1,y1) with Bresenham's
// integer algorithm. Step signs are normalized so all octants work, the
// loop runs along whichever axis has the larger delta, and a doubled
// error term decides when the minor axis advances. Both endpoints are
// inclusive; the major axis emits exactly one pixel per step.
//
// Intermediate pixels can differ from LineDDA on the same endpoints.
// Both are valid approximations of the line.
func LineBresenham(dst *pixbuf.Buffer, x0, y0, x1, y1 int, c pixbuf.RGB) {
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}

	x, y := x0, y0
	if dx >= dy {
		d := 2*dy - dx
		for i := 0; i <= dx; i++ {
			plot(dst, x, y, c)
			if d >= 0 {
				y += sy
				d -= 2 * dx
			}
			d += 2 * dy
			x += sx
		}
	} else {
		d := 2*dx - dy
		for i := 0; i <= dy; i++ {
			plot(dst, x, y, c)
			if d >= 0 {
				x += sx
				d -= 2 * dy
			}
			d += 2 * dx
			y += sy
		}
	}
}
