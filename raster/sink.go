// SPDX-License-Identifier: MIT

package raster

import "fmt"

// PixelSetter is the single-pixel write capability the rasterizer draws into.
// Implementations decide color, clipping and storage.
type PixelSetter interface {
	SetPixel(x, y int)
}

// PixelFunc adapts an ordinary function to PixelSetter.
type PixelFunc func(x, y int)

// SetPixel calls f(x, y).
func (f PixelFunc) SetPixel(x, y int) { f(x, y) }

// Pixel is one emitted device coordinate.
type Pixel struct {
	X, Y int
}

// String renders the pixel as "(x,y)".
func (p Pixel) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Recorder is a PixelSetter that keeps every write in call order,
// duplicates included. The zero value is ready to use.
type Recorder struct {
	Pixels []Pixel
}

// SetPixel appends (x, y).
func (r *Recorder) SetPixel(x, y int) {
	r.Pixels = append(r.Pixels, Pixel{X: x, Y: y})
}

// Len reports how many writes were recorded.
func (r *Recorder) Len() int { return len(r.Pixels) }

// Reset drops the recorded pixels but keeps the backing array.
func (r *Recorder) Reset() { r.Pixels = r.Pixels[:0] }

// Set returns the distinct pixels as a set.
func (r *Recorder) Set() map[Pixel]struct{} {
	out := make(map[Pixel]struct{}, len(r.Pixels))
	for _, p := range r.Pixels {
		out[p] = struct{}{}
	}

	return out
}
