package adjustments

import (
	"fmt"
	"math"

	"github.com/anas-shakeel/bmptool/internal/bmp"
)

// White is the background of a rotated image.
const White = 0xff

// Rotate rotates the surface by degrees around its center on a white background.
func Rotate(s *bmp.Surface, degrees float64) (*bmp.Surface, error) {
	return RotateFill(s, degrees, White)
}

// RotateFill rotates the surface by degrees around its center. The output is
// the bounding box of the rotated rectangle; every byte not covered by the
// source is set to fill.
//
// Each destination pixel is mapped back into the source with the inverse
// rotation and rounded to the nearest source pixel, so the output has no holes.
func RotateFill(s *bmp.Surface, degrees float64, fill byte) (*bmp.Surface, error) {
	if math.IsNaN(degrees) || math.IsInf(degrees, 0) {
		return nil, fmt.Errorf("%w: rotation angle %v", ErrParameter, degrees)
	}

	rad := degrees * math.Pi / 180
	sinA, cosA := math.Sincos(rad)
	width, height := float64(s.Width), float64(s.Height)

	newWidth := int(math.Round(math.Abs(width*cosA) + math.Abs(height*sinA)))
	newHeight := int(math.Round(math.Abs(width*sinA) + math.Abs(height*cosA)))

	dst, err := bmp.NewFilledSurface(newWidth, newHeight, fill)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParameter, err)
	}
	dst.Orientation = s.Orientation

	cx, cy := width/2, height/2
	ncx, ncy := float64(newWidth)/2, float64(newHeight)/2

	for y := 0; y < newHeight; y++ {
		dy := float64(y) - ncy
		for x := 0; x < newWidth; x++ {
			dx := float64(x) - ncx

			srcX := int(math.Round(cosA*dx + sinA*dy + cx))
			srcY := int(math.Round(-sinA*dx + cosA*dy + cy))
			if s.In(srcX, srcY) {
				dst.CopyPixel(x, y, s, srcX, srcY)
			}
		}
	}

	return dst, nil
}
