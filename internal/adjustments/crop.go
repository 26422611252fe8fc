package adjustments

import (
	"fmt"

	"github.com/anas-shakeel/bmptool/internal/bmp"
)

// Crops a region of the surface. x and y address stored rows and columns,
// the same coordinates every other transform uses.
func Crop(s *bmp.Surface, x, y, width, height int) (*bmp.Surface, error) {
	// Validate bounds
	if x < 0 || y < 0 {
		return nil, fmt.Errorf("%w: crop origin (%d,%d) is negative", ErrParameter, x, y)
	} else if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: crop size %dx%d is empty", ErrParameter, width, height)
	} else if x >= s.Width || width > s.Width-x {
		return nil, fmt.Errorf("%w: width out of bounds", ErrParameter)
	} else if y >= s.Height || height > s.Height-y {
		return nil, fmt.Errorf("%w: height out of bounds", ErrParameter)
	}

	dst, err := bmp.NewSurface(width, height)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParameter, err)
	}
	dst.Orientation = s.Orientation

	for row := 0; row < height; row++ {
		o := s.Offset(x, row+y)
		copy(dst.Row(row), s.Pix[o:o+width*bmp.BytesPerPixel])
	}

	return dst, nil
}
