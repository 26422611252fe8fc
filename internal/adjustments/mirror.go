package adjustments

import (
	"fmt"
	"strings"

	"github.com/anas-shakeel/bmptool/internal/bmp"
)

type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

func (a Axis) String() string {
	if a == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// ParseAxis accepts h, -h, horizontal, v, -v and vertical (any case).
func ParseAxis(token string) (Axis, error) {
	switch strings.ToLower(token) {
	case "h", "-h", "horizontal":
		return Horizontal, nil
	case "v", "-v", "vertical":
		return Vertical, nil
	}
	return 0, fmt.Errorf("%w: mirror axis %q, use h or v", ErrParameter, token)
}

// Mirrors the surface in-place along axis
func Mirror(s *bmp.Surface, axis Axis) error {
	switch axis {
	case Horizontal:
		MirrorHorizontal(s)
	case Vertical:
		MirrorVertical(s)
	default:
		return fmt.Errorf("%w: mirror axis %d", ErrParameter, axis)
	}
	return nil
}

// Swaps every pixel x with width-1-x. The center column of an odd width is left alone.
func MirrorHorizontal(s *bmp.Surface) {
	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width / 2; x++ {
			left, right := s.At(x, y), s.At(s.Width-1-x, y)
			s.Set(x, y, right)
			s.Set(s.Width-1-x, y, left)
		}
	}
}

// Swaps whole padded rows; padding bytes travel with their row.
func MirrorVertical(s *bmp.Surface) {
	tmp := make([]byte, s.Stride)
	for y := 0; y < s.Height / 2; y++ {
		top, bottom := s.Row(y), s.Row(s.Height-1-y)
		copy(tmp, top)
		copy(top, bottom)
		copy(bottom, tmp)
	}
}
