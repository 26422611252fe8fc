package adjustments

import (
	"fmt"
	"math"

	"github.com/anas-shakeel/bmptool/internal/bmp"
)

// Scale resamples the surface to percent of its size (nearest-neighbor).
// New dimensions are truncated; a result smaller than one pixel is rejected.
func Scale(s *bmp.Surface, percent int) (*bmp.Surface, error) {
	if percent <= 0 {
		return nil, fmt.Errorf("%w: scale must be a positive percentage, got %d", ErrParameter, percent)
	}
	if percent > math.MaxInt32/max(s.Width, s.Height) {
		return nil, fmt.Errorf("%w: scaling %dx%d by %d%% is too large", ErrParameter, s.Width, s.Height, percent)
	}

	newWidth := s.Width * percent / 100
	newHeight := s.Height * percent / 100
	if newWidth == 0 || newHeight == 0 {
		return nil, fmt.Errorf("%w: scaling %dx%d by %d%% leaves an empty %dx%d image",
			ErrParameter, s.Width, s.Height, percent, newWidth, newHeight)
	}

	dst, err := bmp.NewSurface(newWidth, newHeight)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParameter, err)
	}
	dst.Orientation = s.Orientation

	for y := 0; y < newHeight; y++ {
		srcY := y * s.Height / newHeight
		for x := 0; x < newWidth; x++ {
			dst.CopyPixel(x, y, s, x*s.Width/newWidth, srcY)
		}
	}

	return dst, nil
}
