package ppm

import (
	"fmt"
	"os"

	"ppmcanvas/internal/pixbuf"
)

// ReadFile reads and decodes a PPM file.
func ReadFile(path string) (*pixbuf.Buffer, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ppm: read %s: %w", path, err)
	}
	b, err := Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("ppm: decode %s: %w", path, err)
	}
	return b, nil
}

// WriteFile encodes a buffer and writes it to disk.
func WriteFile(path string, b *pixbuf.Buffer) error {
	if err := os.WriteFile(path, Encode(b), 0644); err != nil {
		return fmt.Errorf("ppm: write %s: %w", path, err)
	}
	return nil
}
