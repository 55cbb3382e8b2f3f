// SPDX-License-Identifier: MIT

package shape

import (
	"math"

	"github.com/katalvlaran/lvdraw/matrix"
	"github.com/katalvlaran/lvdraw/raster"
	"github.com/katalvlaran/lvdraw/surface"
	"github.com/katalvlaran/lvdraw/view"
)

// Compile-time conformance.
var (
	_ Shape = (*Point)(nil)
	_ Shape = (*Line)(nil)
	_ Shape = (*Triangle)(nil)
	_ Shape = (*Circle)(nil)
)

// Point is a single pixel.
type Point struct{ base }

// NewPoint returns a point at model (x, y).
func NewPoint(x, y float64, c surface.Color) *Point {
	return &Point{base{color: c, verts: points([2]float64{x, y})}}
}

func (p *Point) Kind() Kind   { return KindPoint }
func (p *Point) Clone() Shape { return &Point{p.clone()} }

// Draw sets one pixel.
func (p *Point) Draw(dst Canvas, vc *view.Context) error {
	px, err := p.device(KindPoint, dst, vc)
	if err != nil {
		return err
	}
	dst.SetPixel(px[0].X, px[0].Y)

	return nil
}

// Line is a segment between two vertices.
type Line struct{ base }

// NewLine returns the segment (x0, y0)→(x1, y1).
func NewLine(x0, y0, x1, y1 float64, c surface.Color) *Line {
	return &Line{base{color: c, verts: points([2]float64{x0, y0}, [2]float64{x1, y1})}}
}

func (l *Line) Kind() Kind   { return KindLine }
func (l *Line) Clone() Shape { return &Line{l.clone()} }

// Draw rasterizes the segment.
func (l *Line) Draw(dst Canvas, vc *view.Context) error {
	px, err := l.device(KindLine, dst, vc)
	if err != nil {
		return err
	}
	raster.DrawLine(dst, px[0].X, px[0].Y, px[1].X, px[1].Y)

	return nil
}

// Triangle is an outline through three vertices.
type Triangle struct{ base }

// NewTriangle returns the triangle (x0,y0), (x1,y1), (x2,y2).
func NewTriangle(x0, y0, x1, y1, x2, y2 float64, c surface.Color) *Triangle {
	return &Triangle{base{color: c, verts: points([2]float64{x0, y0}, [2]float64{x1, y1}, [2]float64{x2, y2})}}
}

func (t *Triangle) Kind() Kind   { return KindTriangle }
func (t *Triangle) Clone() Shape { return &Triangle{t.clone()} }

// Draw rasterizes the edges v0→v1, v1→v2, v2→v0.
func (t *Triangle) Draw(dst Canvas, vc *view.Context) error {
	px, err := t.device(KindTriangle, dst, vc)
	if err != nil {
		return err
	}
	raster.DrawPolyline(dst, px[0], px[1], px[2], px[0])

	return nil
}

// Circle stores its centre (column 0) and a rim point (column 1), so the
// radius follows any view transform applied to both.
type Circle struct{ base }

// NewCircle returns a circle of radius r around (cx, cy). The sign of r is
// ignored.
func NewCircle(cx, cy, r float64, c surface.Color) *Circle {
	return &Circle{base{color: c, verts: points([2]float64{cx, cy}, [2]float64{cx + math.Abs(r), cy})}}
}

func (ci *Circle) Kind() Kind   { return KindCircle }
func (ci *Circle) Clone() Shape { return &Circle{ci.clone()} }

// Center returns the model-space centre.
func (ci *Circle) Center() (x, y float64) {
	x, y, _ = matrix.PointXY(ci.verts, 0)

	return x, y
}

// Radius returns the model-space radius.
func (ci *Circle) Radius() float64 {
	cx, cy := ci.Center()
	rx, ry, _ := matrix.PointXY(ci.verts, 1)

	return math.Hypot(rx-cx, ry-cy)
}

// Draw rasterizes the outline; the device radius is the rounded distance
// between the transformed centre and rim point.
func (ci *Circle) Draw(dst Canvas, vc *view.Context) error {
	px, err := ci.device(KindCircle, dst, vc)
	if err != nil {
		return err
	}
	r := round(math.Hypot(float64(px[1].X-px[0].X), float64(px[1].Y-px[0].Y)))
	raster.DrawCircle(dst, px[0].X, px[0].Y, r)

	return nil
}
