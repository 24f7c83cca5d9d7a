package main

import (
	"flag"
	"fmt"
	"os"

	"ppmcanvas/internal/pixbuf"
	"ppmcanvas/internal/ppm"
	"ppmcanvas/internal/raster"
)

// Renders a demo scene exercising both line algorithms and the circle
// rasterizer, then writes it out as binary PPM.
func main() {
	width := flag.Int("width", 512, "Image width in pixels")
	height := flag.Int("height", 512, "Image height in pixels")
	out := flag.String("out", "demo.ppm", "Output file")

	flag.Parse()

	buf, err := pixbuf.New(*width, *height)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	buf.Fill(pixbuf.Silver)
	buf.Checkerboard(32, pixbuf.White)

	w, h := *width, *height

	// Diagonals: DDA one way, Bresenham the other.
	raster.LineDDA(buf, 0, 0, w-1, h-1, pixbuf.Red)
	raster.LineBresenham(buf, 0, h-1, w-1, 0, pixbuf.Blue)

	// Axis-aligned cross through the center.
	raster.LineBresenham(buf, 0, h/2, w-1, h/2, pixbuf.Olive)
	raster.LineBresenham(buf, w/2, 0, w/2, h-1, pixbuf.Olive)

	// A shallow and a steep line off the corner.
	raster.LineDDA(buf, 0, 0, w-1, h/4, pixbuf.Magenta)
	raster.LineDDA(buf, 0, 0, w/4, h-1, pixbuf.Cyan)

	r := min(w, h) / 4
	raster.Circle(buf, w/2, h/2, r, pixbuf.Black)
	raster.FilledCircle(buf, w/2, h/2, r/3, pixbuf.Yellow)

	if err := ppm.WriteFile(*out, buf); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %dx%d image to %s\n", w, h, *out)
}
