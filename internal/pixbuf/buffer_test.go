package pixbuf

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	b, err := New(3, 2)
	if err != nil {
		t.Fatalf("New(3, 2): %v", err)
	}
	if b.Width() != 3 || b.Height() != 2 {
		t.Errorf("got %dx%d, want 3x2", b.Width(), b.Height())
	}
	if len(b.Pix()) != 6 {
		t.Errorf("got %d pixels, want 6", len(b.Pix()))
	}
	for i, px := range b.Pix() {
		if px != Black {
			t.Errorf("pixel %d = %v, want Black", i, px)
		}
	}
}

func TestNewInvalidDimension(t *testing.T) {
	for _, tc := range [][2]int{{0, 5}, {5, 0}, {0, 0}, {-1, 5}} {
		if _, err := New(tc[0], tc[1]); !errors.Is(err, ErrInvalidDimension) {
			t.Errorf("New(%d, %d) = %v, want ErrInvalidDimension", tc[0], tc[1], err)
		}
	}
}

func TestSetAt(t *testing.T) {
	b, _ := New(4, 3)
	if err := b.Set(2, 1, Red); err != nil {
		t.Fatalf("Set(2, 1): %v", err)
	}

	got, err := b.At(2, 1)
	if err != nil {
		t.Fatalf("At(2, 1): %v", err)
	}
	if got != Red {
		t.Errorf("At(2, 1) = %v, want Red", got)
	}

	// (x, y) maps to linear offset y*width+x.
	if b.Pix()[1*4+2] != Red {
		t.Errorf("pixel not at row-major offset y*width+x")
	}
}

func TestOutOfBounds(t *testing.T) {
	b, _ := New(4, 3)
	coords := [][2]int{{4, 0}, {0, 3}, {-1, 0}, {0, -1}, {100, 100}}

	for _, tc := range coords {
		if _, err := b.At(tc[0], tc[1]); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("At(%d, %d) = %v, want ErrOutOfBounds", tc[0], tc[1], err)
		}
		if err := b.Set(tc[0], tc[1], White); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Set(%d, %d) = %v, want ErrOutOfBounds", tc[0], tc[1], err)
		}
	}

	// Rejected writes must not touch the buffer.
	for i, px := range b.Pix() {
		if px != Black {
			t.Errorf("pixel %d = %v after rejected writes, want Black", i, px)
		}
	}
}

func TestFill(t *testing.T) {
	b, _ := New(3, 3)
	b.Fill(Cyan)
	for i, px := range b.Pix() {
		if px != Cyan {
			t.Errorf("pixel %d = %v, want Cyan", i, px)
		}
	}
}

func TestCheckerboard(t *testing.T) {
	b, _ := New(4, 4)
	b.Fill(White)
	b.Checkerboard(2, Black)

	cases := []struct {
		x, y int
		want RGB
	}{
		{0, 0, Black},
		{1, 1, Black},
		{2, 0, White},
		{0, 2, White},
		{2, 2, Black},
		{3, 3, Black},
		{3, 1, White},
	}
	for _, tc := range cases {
		got, _ := b.At(tc.x, tc.y)
		if got != tc.want {
			t.Errorf("At(%d, %d) = %v, want %v", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestCheckerboardBadTile(t *testing.T) {
	b, _ := New(2, 2)
	b.Checkerboard(0, White)
	for i, px := range b.Pix() {
		if px != Black {
			t.Errorf("pixel %d = %v, want untouched Black", i, px)
		}
	}
}
