package adjustments

import (
	"math"
	"testing"

	"github.com/anas-shakeel/bmptool/internal/bmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotateZero(t *testing.T) {
	s := gradient(t, 5, 3)

	out, err := Rotate(s, 0)
	require.NoError(t, err)
	require.Equal(t, s.Width, out.Width)
	require.Equal(t, s.Height, out.Height)
	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			assert.Equal(t, s.At(x, y), out.At(x, y), "(%d,%d)", x, y)
		}
	}
}

func TestRotateDimensions(t *testing.T) {
	tests := []struct {
		degrees       float64
		width, height int
	}{
		{90, 2, 4},
		{-90, 2, 4},
		{270, 2, 4},
		{180, 4, 2},
		{360, 4, 2},
		{450, 2, 4},
		{45, 4, 4},
	}
	for _, tt := range tests {
		out, err := Rotate(gradient(t, 4, 2), tt.degrees)
		require.NoError(t, err)
		assert.Equal(t, tt.width, out.Width, "%v degrees", tt.degrees)
		assert.Equal(t, tt.height, out.Height, "%v degrees", tt.degrees)
		assert.Equal(t, bmp.Stride(out.Width), out.Stride)
		assert.Len(t, out.Pix, out.Stride*out.Height)
	}
}

func TestRotate45(t *testing.T) {
	s := gradient(t, 4, 4)

	out, err := Rotate(s, 45)
	require.NoError(t, err)
	require.Equal(t, 6, out.Width)
	require.Equal(t, 6, out.Height)

	assert.Equal(t, bmp.Pixel{B: White, G: White, R: White}, out.At(0, 0), "corners are background")
	assert.Equal(t, bmp.Pixel{B: White, G: White, R: White}, out.At(5, 5))
	assert.Equal(t, s.At(2, 2), out.At(3, 3), "centers line up")
	assert.Equal(t, byte(White), out.Row(0)[18], "padding is background too")
}

func TestRotateFill(t *testing.T) {
	out, err := RotateFill(gradient(t, 4, 4), 45, 0x00)
	require.NoError(t, err)
	assert.Equal(t, bmp.Pixel{}, out.At(0, 0))
}

func TestRotateCoversEveryInteriorPixel(t *testing.T) {
	s, err := bmp.NewSurface(8, 8)
	require.NoError(t, err)

	out, err := Rotate(s, 30)
	require.NoError(t, err)

	// An all-black source must leave no white hole around the center
	cx, cy := out.Width/2, out.Height/2
	for y := cy - 2; y <= cy+2; y++ {
		for x := cx - 2; x <= cx+2; x++ {
			assert.Equal(t, bmp.Pixel{}, out.At(x, y), "(%d,%d)", x, y)
		}
	}
}

func TestRotateKeepsOrientation(t *testing.T) {
	s := gradient(t, 3, 3)
	s.Orientation = bmp.TopDown

	out, err := Rotate(s, 90)
	require.NoError(t, err)
	assert.Equal(t, bmp.TopDown, out.Orientation)
}

func TestRotateInvalid(t *testing.T) {
	for _, degrees := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := Rotate(gradient(t, 2, 2), degrees)
		assert.ErrorIs(t, err, ErrParameter)
	}
}
