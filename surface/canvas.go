// SPDX-License-Identifier: MIT

package surface

import (
	"fmt"
	"image"
	"image/draw"
	"sync"

	"github.com/disintegration/imaging"
	xdraw "golang.org/x/image/draw"

	"github.com/katalvlaran/lvdraw"
)

// Mode selects how SetPixel combines the draw color with the surface.
type Mode int

const (
	// ModeNormal overwrites the pixel with the draw color.
	ModeNormal Mode = iota
	// ModeXOR stores pixel XOR color; drawing the same shape twice restores
	// the surface (rubber-band previews).
	ModeXOR
)

// String returns "normal" or "xor".
func (m Mode) String() string {
	if m == ModeXOR {
		return "xor"
	}

	return "normal"
}

// Option configures a Canvas at construction.
type Option func(*Canvas)

// WithBackground sets the Clear color (default Black).
func WithBackground(c Color) Option {
	return func(cv *Canvas) { cv.bg = c }
}

// WithColor sets the initial draw color (default White).
func WithColor(c Color) Option {
	return func(cv *Canvas) { cv.fg = c }
}

// Canvas is an in-memory RGB pixel surface addressed in device coordinates
// with (0,0) at the bottom-left corner and y growing upward.
// Writes outside the surface are dropped.
//
// All methods are safe for concurrent use; a whole shape draw is not atomic.
type Canvas struct {
	mu   sync.Mutex
	img  *image.RGBA
	w, h int
	fg   Color
	bg   Color
	mode Mode
}

// New creates a w×h canvas filled with the background color.
//
// Errors:
//   - ErrInvalidSize when w < 1 or h < 1.
func New(w, h int, opts ...Option) (*Canvas, error) {
	if w < 1 || h < 1 {
		return nil, fmt.Errorf("New(%d,%d): %w", w, h, ErrInvalidSize)
	}
	cv := &Canvas{
		img: image.NewRGBA(image.Rect(0, 0, w, h)),
		w:   w,
		h:   h,
		fg:  White,
		bg:  Black,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(cv)
		}
	}
	cv.fill(cv.bg)

	return cv, nil
}

// Width returns the canvas width in pixels.
func (cv *Canvas) Width() int { return cv.w }

// Height returns the canvas height in pixels.
func (cv *Canvas) Height() int { return cv.h }

// SetColor sets the draw color used by subsequent SetPixel calls.
func (cv *Canvas) SetColor(c Color) {
	cv.mu.Lock()
	cv.fg = c
	cv.mu.Unlock()
}

// Color reports the current draw color.
func (cv *Canvas) Color() Color {
	cv.mu.Lock()
	defer cv.mu.Unlock()

	return cv.fg
}

// SetMode switches between overwrite and XOR drawing.
func (cv *Canvas) SetMode(m Mode) {
	cv.mu.Lock()
	cv.mode = m
	cv.mu.Unlock()
}

// Mode reports the current drawing mode.
func (cv *Canvas) Mode() Mode {
	cv.mu.Lock()
	defer cv.mu.Unlock()

	return cv.mode
}

// SetPixel writes the draw color at device (x, y) according to the mode.
func (cv *Canvas) SetPixel(x, y int) {
	cv.mu.Lock()
	defer cv.mu.Unlock()
	off, ok := cv.offset(x, y)
	if !ok {
		return
	}
	r, g, b := cv.fg.Channels()
	p := cv.img.Pix[off : off+4 : off+4]
	if cv.mode == ModeXOR {
		p[0] ^= r
		p[1] ^= g
		p[2] ^= b
	} else {
		p[0], p[1], p[2] = r, g, b
	}
	p[3] = 0xFF
}

// At returns the color stored at device (x, y); out-of-range reads
// return the background.
func (cv *Canvas) At(x, y int) Color {
	cv.mu.Lock()
	defer cv.mu.Unlock()
	off, ok := cv.offset(x, y)
	if !ok {
		return cv.bg
	}

	return RGB(cv.img.Pix[off], cv.img.Pix[off+1], cv.img.Pix[off+2])
}

// Clear fills the canvas with the background color. Mode and draw color
// are kept.
func (cv *Canvas) Clear() {
	cv.mu.Lock()
	cv.fill(cv.bg)
	cv.mu.Unlock()
}

// Count returns how many pixels currently differ from the background.
func (cv *Canvas) Count() int {
	cv.mu.Lock()
	defer cv.mu.Unlock()
	r, g, b := cv.bg.Channels()
	n := 0
	for i := 0; i < len(cv.img.Pix); i += 4 {
		if cv.img.Pix[i] != r || cv.img.Pix[i+1] != g || cv.img.Pix[i+2] != b {
			n++
		}
	}

	return n
}

// Image returns a copy of the pixels in image orientation (row 0 at the top).
func (cv *Canvas) Image() *image.RGBA {
	cv.mu.Lock()
	defer cv.mu.Unlock()
	out := image.NewRGBA(cv.img.Rect)
	copy(out.Pix, cv.img.Pix)

	return out
}

// Save writes the canvas to path; the format follows the file extension
// (png, jpg, gif, bmp, tiff). upscale > 1 enlarges every pixel into an
// upscale×upscale block.
//
// Errors:
//   - ErrInvalidUpscale when upscale < 1; encoder and file errors.
func (cv *Canvas) Save(path string, upscale int) error {
	if upscale < 1 {
		return fmt.Errorf("Save(%q): %w", path, ErrInvalidUpscale)
	}
	var img image.Image = cv.Image()
	if upscale > 1 {
		big := image.NewRGBA(image.Rect(0, 0, cv.w*upscale, cv.h*upscale))
		xdraw.NearestNeighbor.Scale(big, big.Bounds(), img, img.Bounds(), draw.Src, nil)
		img = big
	}
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("Save(%q): %w", path, err)
	}
	lvdraw.Logger().Info("surface: saved", "path", path, "width", img.Bounds().Dx(), "height", img.Bounds().Dy())

	return nil
}

// offset maps device (x, y) to a Pix offset; y is flipped so device y grows up.
func (cv *Canvas) offset(x, y int) (int, bool) {
	if x < 0 || x >= cv.w || y < 0 || y >= cv.h {
		return 0, false
	}
	row := cv.h - 1 - y

	return cv.img.PixOffset(x, row), true
}

func (cv *Canvas) fill(c Color) {
	draw.Draw(cv.img, cv.img.Rect, image.NewUniform(c.ToRGBA()), image.Point{}, draw.Src)
}
