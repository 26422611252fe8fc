package adjustments

import (
	"testing"

	"github.com/anas-shakeel/bmptool/internal/bmp"
	"github.com/anthonynsimon/bild/transform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAxis(t *testing.T) {
	tests := []struct {
		token string
		axis  Axis
	}{
		{"h", Horizontal},
		{"-h", Horizontal},
		{"horizontal", Horizontal},
		{"H", Horizontal},
		{"v", Vertical},
		{"-v", Vertical},
		{"Vertical", Vertical},
	}
	for _, tt := range tests {
		axis, err := ParseAxis(tt.token)
		require.NoError(t, err, tt.token)
		assert.Equal(t, tt.axis, axis, tt.token)
	}

	for _, token := range []string{"", "x", "-x", "diagonal", "hv"} {
		_, err := ParseAxis(token)
		assert.ErrorIs(t, err, ErrParameter, token)
	}
}

func TestMirrorHorizontal(t *testing.T) {
	s := gradient(t, 3, 2)
	a, b, c := s.At(0, 1), s.At(1, 1), s.At(2, 1)

	MirrorHorizontal(s)
	assert.Equal(t, c, s.At(0, 1))
	assert.Equal(t, b, s.At(1, 1), "center column of an odd width stays put")
	assert.Equal(t, a, s.At(2, 1))
	assert.Equal(t, byte(0xee), s.Row(1)[9], "padding is untouched")
}

func TestMirrorVerticalMovesPadding(t *testing.T) {
	s := gradient(t, 1, 3)
	s.Row(0)[3] = 0xaa
	top, middle, bottom := s.At(0, 0), s.At(0, 1), s.At(0, 2)

	MirrorVertical(s)
	assert.Equal(t, bottom, s.At(0, 0))
	assert.Equal(t, middle, s.At(0, 1))
	assert.Equal(t, top, s.At(0, 2))
	assert.Equal(t, byte(0xaa), s.Row(2)[3])
	assert.Equal(t, byte(0xee), s.Row(0)[3])
}

func TestMirrorIsInvolution(t *testing.T) {
	for _, axis := range []Axis{Horizontal, Vertical} {
		for _, dims := range [][2]int{{1, 1}, {4, 2}, {5, 3}, {6, 7}} {
			s := gradient(t, dims[0], dims[1])
			original := s.Clone()

			require.NoError(t, Mirror(s, axis))
			if dims[0] > 1 && axis == Horizontal || dims[1] > 1 && axis == Vertical {
				assert.NotEqual(t, original.Pix, s.Pix, "%v %v", axis, dims)
			}
			require.NoError(t, Mirror(s, axis))
			assert.Equal(t, original, s, "%v %v", axis, dims)
		}
	}
}

func TestMirrorMatchesReference(t *testing.T) {
	for _, orientation := range []bmp.Orientation{bmp.BottomUp, bmp.TopDown} {
		s := gradient(t, 5, 4)
		s.Orientation = orientation
		src := s.Image()

		h := s.Clone()
		MirrorHorizontal(h)
		assert.Equal(t, transform.FlipH(src).Pix, h.Image().Pix, "horizontal %v", orientation)

		v := s.Clone()
		MirrorVertical(v)
		assert.Equal(t, transform.FlipV(src).Pix, v.Image().Pix, "vertical %v", orientation)
	}
}

func TestMirrorUnknownAxis(t *testing.T) {
	assert.ErrorIs(t, Mirror(gradient(t, 2, 2), Axis(7)), ErrParameter)
}
