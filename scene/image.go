// SPDX-License-Identifier: MIT

package scene

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/lvdraw/shape"
	"github.com/katalvlaran/lvdraw/view"
)

// Canvas is what an Image draws onto: a shape canvas that can be cleared.
// *surface.Canvas satisfies it.
type Canvas interface {
	shape.Canvas
	Clear()
}

// Image is an ordered shape container. It owns its shapes: Add stores a
// clone and Shapes hands out clones. Safe for concurrent use.
type Image struct {
	mu     sync.RWMutex
	shapes []shape.Shape
}

// New returns an Image holding clones of shapes.
func New(shapes ...shape.Shape) *Image {
	img := &Image{shapes: make([]shape.Shape, 0, len(shapes))}
	for _, s := range shapes {
		if s != nil {
			img.shapes = append(img.shapes, s.Clone())
		}
	}

	return img
}

// Add appends a clone of s.
func (img *Image) Add(s shape.Shape) error {
	if s == nil {
		return fmt.Errorf("Add: %w", ErrNilShape)
	}
	c := s.Clone()
	img.mu.Lock()
	img.shapes = append(img.shapes, c)
	img.mu.Unlock()

	return nil
}

// Shapes returns clones of the stored shapes in insertion order.
func (img *Image) Shapes() []shape.Shape {
	img.mu.RLock()
	defer img.mu.RUnlock()
	out := make([]shape.Shape, len(img.shapes))
	for i, s := range img.shapes {
		out[i] = s.Clone()
	}

	return out
}

// Len reports the number of shapes.
func (img *Image) Len() int {
	img.mu.RLock()
	defer img.mu.RUnlock()

	return len(img.shapes)
}

// Erase removes every shape.
func (img *Image) Erase() {
	img.mu.Lock()
	img.shapes = nil
	img.mu.Unlock()
}

// Replace swaps the content for clones of other's shapes.
func (img *Image) Replace(other *Image) {
	if other == img {
		return
	}
	shapes := other.Shapes()
	img.mu.Lock()
	img.shapes = shapes
	img.mu.Unlock()
}

// Clone returns a deep copy.
func (img *Image) Clone() *Image {
	return &Image{shapes: img.Shapes()}
}

// Draw clears dst and draws every shape in order through vc.
// Drawing stops at the first shape error.
func (img *Image) Draw(dst Canvas, vc *view.Context) error {
	img.mu.RLock()
	defer img.mu.RUnlock()
	dst.Clear()
	for i, s := range img.shapes {
		if err := s.Draw(dst, vc); err != nil {
			return fmt.Errorf("Draw: shape %d: %w", i, err)
		}
	}

	return nil
}
