package convert

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	_ "image/jpeg"

	_ "github.com/ftrvxmtrx/tga"

	"github.com/HugoSmits86/nativewebp"

	"ppmcanvas/internal/pixbuf"
	"ppmcanvas/internal/ppm"
)

// ToImage converts a buffer to NRGBA with opaque alpha.
func ToImage(b *pixbuf.Buffer) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.Width(), b.Height()))
	for i, px := range b.Pix() {
		j := i * 4
		img.Pix[j] = px.R
		img.Pix[j+1] = px.G
		img.Pix[j+2] = px.B
		img.Pix[j+3] = 255
	}
	return img
}

// FromImage flattens any image into an RGB buffer, dropping alpha.
func FromImage(img image.Image) (*pixbuf.Buffer, error) {
	bounds := img.Bounds()
	b, err := pixbuf.New(bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, fmt.Errorf("convert: %w", err)
	}
	pix := b.Pix()
	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			pix[i] = pixbuf.RGB{R: c.R, G: c.G, B: c.B}
			i++
		}
	}
	return b, nil
}

// LoadImage reads a PPM, PNG, JPEG, or TGA file into a buffer. PPM goes
// through the internal codec; everything else through image.Decode.
func LoadImage(path string) (*pixbuf.Buffer, error) {
	if strings.EqualFold(filepath.Ext(path), ".ppm") {
		return ppm.ReadFile(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("convert: open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("convert: decode %s: %w", path, err)
	}
	return FromImage(img)
}

// WritePNG writes a buffer to a PNG file.
func WritePNG(path string, b *pixbuf.Buffer) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("convert: create %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, ToImage(b)); err != nil {
		return fmt.Errorf("convert: PNG encode %s: %w", path, err)
	}
	return nil
}

// WriteWebP writes a buffer to a lossless WebP file.
func WriteWebP(path string, b *pixbuf.Buffer) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("convert: create %s: %w", path, err)
	}
	defer f.Close()

	if err := nativewebp.Encode(f, ToImage(b), nil); err != nil {
		return fmt.Errorf("convert: WebP encode %s: %w", path, err)
	}
	return nil
}
