// SPDX-License-Identifier: MIT

package session

import (
	"fmt"
	"io"

	"github.com/katalvlaran/lvdraw/shape"
	"github.com/katalvlaran/lvdraw/surface"
)

// Key is a key code: printable keys use their ASCII value, the arrows use
// X11 keysyms.
type Key uint32

// Arrow keysyms.
const (
	KeyLeft  Key = 65361
	KeyUp    Key = 65362
	KeyRight Key = 65363
	KeyDown  Key = 65364
)

var keyNames = map[Key]string{
	KeyLeft:  "left",
	KeyUp:    "up",
	KeyRight: "right",
	KeyDown:  "down",
}

// String returns "left".."down" for the arrows and the character otherwise.
func (k Key) String() string {
	if n, ok := keyNames[k]; ok {
		return n
	}
	if k >= 0x20 && k < 0x7F {
		return string(rune(k))
	}

	return fmt.Sprintf("Key(%d)", uint32(k))
}

// ParseKey accepts a single character or an arrow name.
func ParseKey(s string) (Key, error) {
	for k, n := range keyNames {
		if n == s {
			return k, nil
		}
	}
	if r := []rune(s); len(r) == 1 && r[0] >= 0x20 && r[0] < 0x7F {
		return Key(r[0]), nil
	}

	return 0, fmt.Errorf("ParseKey(%q): %w", s, ErrUnknownKey)
}

// palette binds the digit keys to colors.
var palette = [10]surface.Color{
	surface.White,
	surface.Black,
	surface.Green,
	surface.Red,
	surface.Cyan,
	surface.Magenta,
	surface.Yellow,
	surface.Gray,
	surface.Blue,
	surface.Brown,
}

var modeKeys = map[Key]shape.Kind{
	'p': shape.KindPoint, 'P': shape.KindPoint,
	'l': shape.KindLine, 'L': shape.KindLine,
	't': shape.KindTriangle, 'T': shape.KindTriangle,
	'c': shape.KindCircle, 'C': shape.KindCircle,
}

func writeHelp(w io.Writer, o options) {
	fmt.Fprintf(w, `Usage:
	Drawing mode:
		p - point	l - line	t - triangle	c - circle
	Rubber band mode:
		r - toggle rubber band mode
	Saving and loading:
		s - save to %[1]s	f - load %[1]s
	Color:
		0 - white	1 - black	2 - green	3 - red
		4 - cyan	5 - magenta	6 - yellow	7 - gray
		8 - blue	9 - brown
	View:
		arrows - pan by %[2]g
		+ - zoom by %[3]g	- - zoom by 1/%[3]g
		. - rotate by %[4]g deg	, - rotate by -%[4]g deg
		e - reset view
`, o.file, o.step, o.zoom, o.angle)
}
