// SPDX-License-Identifier: MIT

package surface

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a packed 0xRRGGBB value. It is the unit stored in scene files.
type Color uint32

// Palette.
const (
	Black       Color = 0x000000
	Blue        Color = 0x0000FF
	Green       Color = 0x00FF00
	Red         Color = 0xFF0000
	Cyan        Color = 0x00FFFF
	Magenta     Color = 0xFF00FF
	Yellow      Color = 0xFFFF00
	Gray        Color = 0x808080
	White       Color = 0xFFFFFF
	Brown       Color = 0x8B4513
	ForestGreen Color = 0x228B22
	LightBrown  Color = 0xCD853F
)

// maxColor is the largest valid packed value.
const maxColor Color = 0xFFFFFF

// names maps lowercase palette names to colors.
var names = map[string]Color{
	"black":       Black,
	"blue":        Blue,
	"green":       Green,
	"red":         Red,
	"cyan":        Cyan,
	"magenta":     Magenta,
	"yellow":      Yellow,
	"gray":        Gray,
	"grey":        Gray,
	"white":       White,
	"brown":       Brown,
	"forestgreen": ForestGreen,
	"lightbrown":  LightBrown,
}

// RGB builds a Color from 8-bit channels.
func RGB(r, g, b uint8) Color {
	return Color(r)<<16 | Color(g)<<8 | Color(b)
}

// Channels splits c into 8-bit red, green and blue.
func (c Color) Channels() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// ToRGBA converts c to an opaque color.RGBA.
func (c Color) ToRGBA() color.RGBA {
	r, g, b := c.Channels()

	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}

// Hex returns the "#rrggbb" form.
func (c Color) Hex() string {
	return c.colorful().Hex()
}

// String returns the hex form; palette colors also carry their name.
func (c Color) String() string {
	for _, n := range []string{"black", "blue", "green", "red", "cyan", "magenta", "yellow", "gray", "white", "brown"} {
		if names[n] == c {
			return n + "(" + c.Hex() + ")"
		}
	}

	return c.Hex()
}

func (c Color) colorful() colorful.Color {
	r, g, b := c.Channels()

	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// FromColor converts any color.Color, dropping alpha.
func FromColor(c color.Color) Color {
	cc, _ := colorful.MakeColor(c) // ok is false only for zero alpha
	r, g, b := cc.RGB255()

	return RGB(r, g, b)
}

// ParseColor accepts a palette name ("white"), "#rrggbb" or "#rgb" hex,
// "0xRRGGBB", or a decimal integer as written in scene files.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if c, ok := names[strings.ToLower(s)]; ok {
		return c, nil
	}
	switch {
	case strings.HasPrefix(s, "#"):
		if len(s) == 4 { // #rgb → #rrggbb
			s = string([]byte{'#', s[1], s[1], s[2], s[2], s[3], s[3]})
		}
		cc, err := colorful.Hex(s)
		if err != nil {
			return 0, fmt.Errorf("ParseColor(%q): %w", s, ErrInvalidColor)
		}
		r, g, b := cc.RGB255()

		return RGB(r, g, b), nil
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		v, err := strconv.ParseUint(s[2:], 16, 32)
		if err != nil || Color(v) > maxColor {
			return 0, fmt.Errorf("ParseColor(%q): %w", s, ErrInvalidColor)
		}

		return Color(v), nil
	default:
		v, err := strconv.ParseUint(s, 10, 32)
		if err != nil || Color(v) > maxColor {
			return 0, fmt.Errorf("ParseColor(%q): %w", s, ErrInvalidColor)
		}

		return Color(v), nil
	}
}

// Blend mixes a toward b by t∈[0,1] in Lab space.
func Blend(a, b Color, t float64) Color {
	r, g, bl := a.colorful().BlendLab(b.colorful(), t).Clamped().RGB255()

	return RGB(r, g, bl)
}
