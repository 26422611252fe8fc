package bmp

import (
	"fmt"
	"image"
	"math"
)

// BytesPerPixel is fixed: only 24 bit (B, G, R) bitmaps are handled.
const BytesPerPixel = 3

// Orientation is the order in which rows are stored in the pixel array.
type Orientation int

const (
	BottomUp Orientation = iota // positive height: first stored row is the bottom of the picture
	TopDown                     // negative height: first stored row is the top of the picture
)

func (o Orientation) String() string {
	if o == TopDown {
		return "top-down"
	}
	return "bottom-up"
}

// Pixel holds one pixel in on-disk channel order.
type Pixel struct {
	B, G, R byte
}

// Surface is a row-padded 24 bit pixel buffer. Row 0 is the first row as
// stored in the file; Orientation says which end of the picture that is.
type Surface struct {
	Width       int
	Height      int
	Stride      int // Total bytes in a row (incl. padding), always a multiple of 4
	Pix         []byte
	Orientation Orientation
}

// Stride returns the padded row length for a 24 bit row of width pixels.
func Stride(width int) int {
	return (width*BytesPerPixel + 3) &^ 3
}

// NewSurface creates a zero-filled surface.
func NewSurface(width, height int) (*Surface, error) {
	return NewFilledSurface(width, height, 0)
}

// NewFilledSurface creates a surface with every byte (padding included) set to fill.
func NewFilledSurface(width, height int, fill byte) (*Surface, error) {
	if width <= 0 {
		return nil, fmt.Errorf("%w: width must be greater than 0, got %d", ErrDimensions, width)
	} else if height <= 0 {
		return nil, fmt.Errorf("%w: height must be greater than 0, got %d", ErrDimensions, height)
	}

	// Checked by division so that huge sizes cannot wrap around
	if width > (math.MaxInt32-3)/BytesPerPixel || height > math.MaxInt32/Stride(width) {
		return nil, fmt.Errorf("%w: %dx%d image is too large", ErrDimensions, width, height)
	}
	stride := Stride(width)

	pix := make([]byte, stride*height)
	if fill != 0 {
		for i := range pix {
			pix[i] = fill
		}
	}

	return &Surface{Width: width, Height: height, Stride: stride, Pix: pix}, nil
}

// In reports whether (x, y) addresses a pixel of s.
func (s *Surface) In(x, y int) bool {
	return x >= 0 && x < s.Width && y >= 0 && y < s.Height
}

// Offset returns the index in Pix of the first (blue) byte of pixel (x, y).
// It panics if (x, y) is outside the surface.
func (s *Surface) Offset(x, y int) int {
	if !s.In(x, y) {
		panic(fmt.Sprintf("bmp: pixel (%d,%d) out of range [0,%d)x[0,%d)", x, y, s.Width, s.Height))
	}
	return y*s.Stride + x*BytesPerPixel
}

func (s *Surface) At(x, y int) Pixel {
	i := s.Offset(x, y)
	return Pixel{B: s.Pix[i], G: s.Pix[i+1], R: s.Pix[i+2]}
}

func (s *Surface) Set(x, y int, p Pixel) {
	i := s.Offset(x, y)
	s.Pix[i], s.Pix[i+1], s.Pix[i+2] = p.B, p.G, p.R
}

// Row returns row y including its padding bytes. The slice aliases Pix.
func (s *Surface) Row(y int) []byte {
	if y < 0 || y >= s.Height {
		panic(fmt.Sprintf("bmp: row %d out of range [0,%d)", y, s.Height))
	}
	return s.Pix[y*s.Stride : (y+1)*s.Stride]
}

// CopyPixel copies pixel (sx, sy) of src to (x, y) of s.
func (s *Surface) CopyPixel(x, y int, src *Surface, sx, sy int) {
	d, o := s.Offset(x, y), src.Offset(sx, sy)
	copy(s.Pix[d:d+BytesPerPixel], src.Pix[o:o+BytesPerPixel])
}

// Returns a Copy of the surface
func (s *Surface) Clone() *Surface {
	dup := *s
	dup.Pix = make([]byte, len(s.Pix))
	copy(dup.Pix, s.Pix)
	return &dup
}

// Image converts the surface to an opaque RGBA image, top row first.
func (s *Surface) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, s.Width, s.Height))
	for y := 0; y < s.Height; y++ {
		row := s.displayRow(y)
		for x := 0; x < s.Width; x++ {
			p := s.At(x, row)
			i := img.PixOffset(x, y)
			img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = p.R, p.G, p.B, 0xff
		}
	}
	return img
}

// displayRow maps a row counted from the top of the picture to a stored row.
func (s *Surface) displayRow(y int) int {
	if s.Orientation == BottomUp {
		return s.Height - y - 1
	}
	return y
}
