package adjustments

import (
	"testing"

	"github.com/anas-shakeel/bmptool/internal/bmp"
	"github.com/stretchr/testify/require"
)

// gradient returns a surface whose every pixel is distinct and whose padding
// bytes are set to 0xee.
func gradient(t *testing.T, width, height int) *bmp.Surface {
	t.Helper()
	s, err := bmp.NewFilledSurface(width, height, 0xee)
	require.NoError(t, err)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			s.Set(x, y, bmp.Pixel{B: byte(x), G: byte(y), R: byte(x*16 + y)})
		}
	}
	return s
}
