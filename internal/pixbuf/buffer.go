package pixbuf

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDimension = errors.New("invalid dimension")
	ErrOutOfBounds      = errors.New("coordinate out of bounds")
)

// RGB is a single pixel with 8 bits per channel and no alpha.
type RGB struct {
	R, G, B uint8
}

// Buffer holds pixels as a flat row-major slice for cache locality.
// Pixel (x, y) lives at index y*width+x.
type Buffer struct {
	width  int
	height int
	pix    []RGB
}

// New allocates a buffer with every pixel set to Black.
func New(width, height int) (*Buffer, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("pixbuf: %dx%d: %w", width, height, ErrInvalidDimension)
	}
	return &Buffer{
		width:  width,
		height: height,
		pix:    make([]RGB, width*height),
	}, nil
}

func (b *Buffer) Width() int  { return b.width }
func (b *Buffer) Height() int { return b.height }

// Pix returns the backing pixel slice, row-major, top to bottom.
func (b *Buffer) Pix() []RGB { return b.pix }

// At returns the pixel at (x, y).
func (b *Buffer) At(x, y int) (RGB, error) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return RGB{}, fmt.Errorf("pixbuf: (%d,%d) outside %dx%d image: %w", x, y, b.width, b.height, ErrOutOfBounds)
	}
	return b.pix[y*b.width+x], nil
}

// Set overwrites the pixel at (x, y). Writes outside the buffer are
// rejected, not clamped; callers that want clipping do it themselves.
func (b *Buffer) Set(x, y int, c RGB) error {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return fmt.Errorf("pixbuf: (%d,%d) outside %dx%d image: %w", x, y, b.width, b.height, ErrOutOfBounds)
	}
	b.pix[y*b.width+x] = c
	return nil
}

// Fill sets every pixel to c.
func (b *Buffer) Fill(c RGB) {
	for i := range b.pix {
		b.pix[i] = c
	}
}

// Checkerboard overlays square tiles of c wherever (x/tile + y/tile) is
// even. Tiles smaller than one pixel are ignored.
func (b *Buffer) Checkerboard(tile int, c RGB) {
	if tile < 1 {
		return
	}
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			if (x/tile+y/tile)%2 == 0 {
				b.pix[y*b.width+x] = c
			}
		}
	}
}
