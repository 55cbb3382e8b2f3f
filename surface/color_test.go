// SPDX-License-Identifier: MIT

package surface_test

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvdraw/surface"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want surface.Color
	}{
		{"white", surface.White},
		{" Brown ", surface.Brown},
		{"grey", surface.Gray},
		{"#ff0000", surface.Red},
		{"#0f0", surface.Green},
		{"0x8B4513", surface.Brown},
		{"16777215", surface.White},
		{"0", surface.Black},
	}
	for _, tc := range tests {
		got, err := surface.ParseColor(tc.in)
		require.NoErrorf(t, err, "%q", tc.in)
		require.Equalf(t, tc.want, got, "%q", tc.in)
	}

	for _, bad := range []string{"", "#12", "#zzzzzz", "0x1000000", "16777216", "-1", "mauve"} {
		_, err := surface.ParseColor(bad)
		require.ErrorIsf(t, err, surface.ErrInvalidColor, "%q", bad)
	}
}

func TestColorConversions(t *testing.T) {
	c := surface.RGB(150, 30, 150)
	require.Equal(t, surface.Color(0x961E96), c)

	r, g, b := c.Channels()
	require.Equal(t, []uint8{150, 30, 150}, []uint8{r, g, b})
	require.Equal(t, color.RGBA{R: 150, G: 30, B: 150, A: 0xFF}, c.ToRGBA())
	require.Equal(t, "#961e96", c.Hex())
	require.Equal(t, "white(#ffffff)", surface.White.String())
	require.Equal(t, "#961e96", c.String())

	require.Equal(t, surface.Magenta, surface.FromColor(color.RGBA{R: 0xFF, B: 0xFF, A: 0xFF}))
	require.Equal(t, c, surface.FromColor(c.ToRGBA()))
}

func TestBlend(t *testing.T) {
	require.Equal(t, surface.Red, surface.Blend(surface.Red, surface.Blue, 0))
	require.Equal(t, surface.Blue, surface.Blend(surface.Red, surface.Blue, 1))
	mid := surface.Blend(surface.Black, surface.White, 0.5)
	r, g, b := mid.Channels()
	require.Equal(t, r, g)
	require.Equal(t, g, b)
	require.Greater(t, r, uint8(0x40))
	require.Less(t, r, uint8(0xC0))
}
