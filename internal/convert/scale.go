package convert

import (
	"image"

	"golang.org/x/image/draw"

	"ppmcanvas/internal/pixbuf"
)

// Downsample scales a buffer down to width x height with CatmullRom
// filtering. Buffers already at or below the target size are returned
// unchanged. RGB pixels are opaque, so no alpha premultiplication is
// needed.
func Downsample(b *pixbuf.Buffer, width, height int) (*pixbuf.Buffer, error) {
	if b.Width() <= width && b.Height() <= height {
		return b, nil
	}

	src := ToImage(b)
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return FromImage(dst)
}

// FitSize returns width and height scaled so the longer side equals size,
// preserving aspect ratio. Dimensions never drop below one pixel.
func FitSize(width, height, size int) (int, int) {
	if width >= height {
		h := height * size / width
		if h < 1 {
			h = 1
		}
		return size, h
	}
	w := width * size / height
	if w < 1 {
		w = 1
	}
	return w, size
}
