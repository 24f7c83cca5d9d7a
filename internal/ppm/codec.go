package ppm

import (
	"errors"
	"fmt"

	"ppmcanvas/internal/pixbuf"
)

var (
	ErrBadMagicNumber    = errors.New("bad magic number")
	ErrMalformedHeader   = errors.New("malformed header")
	ErrUnsupportedMaxval = errors.New("unsupported maxval")
	ErrTruncatedData     = errors.New("truncated pixel data")
)

// Only 8-bit channels are supported.
const maxval = 255

// Dimensions larger than this are rejected as malformed rather than
// risking an overflowed allocation.
const maxDimension = 1 << 24

// Encode serializes a buffer as binary PPM (P6): the ASCII header
// "P6\n<width> <height>\n255\n" followed by width*height*3 raw bytes,
// one R,G,B triple per pixel, row-major, top to bottom.
func Encode(b *pixbuf.Buffer) []byte {
	header := fmt.Sprintf("P6\n%d %d\n%d\n", b.Width(), b.Height(), maxval)
	out := make([]byte, 0, len(header)+b.Width()*b.Height()*3)
	out = append(out, header...)
	for _, px := range b.Pix() {
		out = append(out, px.R, px.G, px.B)
	}
	return out
}

// Decode parses binary PPM (P6) data into a new buffer.
func Decode(data []byte) (*pixbuf.Buffer, error) {
	if len(data) < 2 || data[0] != 'P' || data[1] != '6' {
		return nil, fmt.Errorf("ppm: %w", ErrBadMagicNumber)
	}

	r := &reader{data: data, off: 2}
	if r.off < len(r.data) && !isSpace(r.data[r.off]) {
		return nil, fmt.Errorf("ppm: magic not followed by whitespace: %w", ErrMalformedHeader)
	}

	width, err := r.readField("width")
	if err != nil {
		return nil, err
	}
	height, err := r.readField("height")
	if err != nil {
		return nil, err
	}
	depth, err := r.readField("maxval")
	if err != nil {
		return nil, err
	}
	if depth != maxval {
		return nil, fmt.Errorf("ppm: maxval %d: %w", depth, ErrUnsupportedMaxval)
	}

	// Exactly one whitespace byte separates maxval from the payload.
	if r.off >= len(r.data) || !isSpace(r.data[r.off]) {
		return nil, fmt.Errorf("ppm: missing separator before pixel data: %w", ErrMalformedHeader)
	}
	r.off++

	need := width * height * 3
	if len(r.data)-r.off < need {
		return nil, fmt.Errorf("ppm: want %d pixel bytes, have %d: %w", need, len(r.data)-r.off, ErrTruncatedData)
	}

	b, err := pixbuf.New(width, height)
	if err != nil {
		return nil, fmt.Errorf("ppm: %w", err)
	}
	pix := b.Pix()
	payload := r.data[r.off:]
	for i := range pix {
		pix[i] = pixbuf.RGB{R: payload[i*3], G: payload[i*3+1], B: payload[i*3+2]}
	}
	return b, nil
}

// reader walks the header with an explicit cursor, one token at a time.
type reader struct {
	data []byte
	off  int
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// skipSpace consumes whitespace between header tokens. A '#' reached this
// way starts a comment running to end of line.
func (r *reader) skipSpace() {
	for r.off < len(r.data) {
		c := r.data[r.off]
		switch {
		case isSpace(c):
			r.off++
		case c == '#':
			for r.off < len(r.data) && r.data[r.off] != '\n' {
				r.off++
			}
		default:
			return
		}
	}
}

// readField skips leading whitespace and comments, then reads one positive
// decimal header field. The token must end at whitespace or end of input;
// in particular a '#' inside a token is malformed, not a comment.
func (r *reader) readField(name string) (int, error) {
	r.skipSpace()

	start := r.off
	v := 0
	for r.off < len(r.data) && isDigit(r.data[r.off]) {
		v = v*10 + int(r.data[r.off]-'0')
		if v > maxDimension {
			return 0, fmt.Errorf("ppm: %s too large: %w", name, ErrMalformedHeader)
		}
		r.off++
	}
	if r.off == start {
		return 0, fmt.Errorf("ppm: missing %s: %w", name, ErrMalformedHeader)
	}
	if r.off < len(r.data) && !isSpace(r.data[r.off]) {
		return 0, fmt.Errorf("ppm: %s is not a decimal integer: %w", name, ErrMalformedHeader)
	}
	if v == 0 {
		return 0, fmt.Errorf("ppm: %s must be positive: %w", name, ErrMalformedHeader)
	}
	return v, nil
}
