package main

import (
	"fmt"
	"os"

	"ppmcanvas/internal/ppm"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: ppminfo <file.ppm>")
		os.Exit(1)
	}
	path := os.Args[1]

	raw, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	buf, err := ppm.Decode(raw)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	pixelBytes := buf.Width() * buf.Height() * 3
	fmt.Printf("Size: %dx%d, maxval 255\n", buf.Width(), buf.Height())
	fmt.Printf("Pixel data: %d bytes, header: %d bytes, file: %d bytes\n",
		pixelBytes, len(raw)-pixelBytes, len(raw))
}
