// SPDX-License-Identifier: MIT

package shape

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/lvdraw"
	"github.com/katalvlaran/lvdraw/matrix"
	"github.com/katalvlaran/lvdraw/raster"
	"github.com/katalvlaran/lvdraw/surface"
	"github.com/katalvlaran/lvdraw/view"
)

// Kind enumerates the supported shape variants.
type Kind int

const (
	KindPoint Kind = iota + 1
	KindLine
	KindTriangle
	KindCircle
)

var kindNames = map[Kind]string{
	KindPoint:    "Point",
	KindLine:     "Line",
	KindTriangle: "Triangle",
	KindCircle:   "Circle",
}

// String returns the capitalized kind name used in scene files.
func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// Vertices reports how many vertex columns the kind stores.
// Circle stores its centre and one rim point.
func (k Kind) Vertices() int {
	switch k {
	case KindPoint:
		return 1
	case KindLine, KindCircle:
		return 2
	case KindTriangle:
		return 3
	}

	return 0
}

// ParseKind maps a case-insensitive name ("line") to its Kind.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return k, nil
		}
	}

	return 0, fmt.Errorf("ParseKind(%q): %w", name, ErrUnknownKind)
}

// Canvas is the drawing target of a shape: a pixel sink with a draw color.
// *surface.Canvas satisfies it.
type Canvas interface {
	raster.PixelSetter
	SetColor(c surface.Color)
}

// Shape is a colored figure whose geometry lives in model space as a
// 4×N homogeneous point set.
type Shape interface {
	Kind() Kind
	Color() surface.Color
	// Vertices returns a copy of the model-space point set.
	Vertices() *matrix.Dense
	// Draw maps the vertices through vc and rasterizes onto dst.
	Draw(dst Canvas, vc *view.Context) error
	Clone() Shape
}

// base carries the state every variant shares.
type base struct {
	color surface.Color
	verts *matrix.Dense
}

func (b *base) Color() surface.Color    { return b.color }
func (b *base) Vertices() *matrix.Dense { return b.verts.Copy() }

func (b *base) clone() base {
	return base{color: b.color, verts: b.verts.Copy()}
}

// device maps the vertices to device space and rounds them to pixels.
func (b *base) device(k Kind, dst Canvas, vc *view.Context) ([]raster.Pixel, error) {
	if vc == nil {
		return nil, fmt.Errorf("%s.Draw: %w", k, ErrNilContext)
	}
	dev, err := vc.ModelToDevice(b.verts)
	if err != nil {
		return nil, fmt.Errorf("%s.Draw: %w", k, err)
	}
	px := make([]raster.Pixel, dev.Cols())
	var x, y float64
	for j := range px {
		if x, y, err = matrix.PointXY(dev, j); err != nil {
			return nil, fmt.Errorf("%s.Draw: %w", k, err)
		}
		px[j] = raster.Pixel{X: round(x), Y: round(y)}
	}
	dst.SetColor(b.color)
	lvdraw.Logger().Debug("shape: draw", "kind", k.String(), "color", b.color.Hex(), "pixels", px)

	return px, nil
}

// round converts a device coordinate to the nearest pixel.
func round(v float64) int { return int(math.Round(v)) }

// points builds a 4×N point set from (x, y) pairs. A set holding a
// non-finite coordinate is replaced by points at the origin.
func points(xy ...[2]float64) *matrix.Dense {
	p, err := matrix.PointsFromXY(xy...)
	if err != nil {
		p, _ = matrix.NewPoints(max(len(xy), 1))
	}

	return p
}

// FromVertices builds a shape of kind k from a 4×N model-space matrix.
// The matrix is copied; w is forced to 1.
//
// Errors:
//   - ErrUnknownKind; ErrVertexCount when N does not match k;
//     matrix.ErrDimensionMismatch when m is not 4×N.
func FromVertices(k Kind, m matrix.Matrix, c surface.Color) (Shape, error) {
	want := k.Vertices()
	if want == 0 {
		return nil, fmt.Errorf("FromVertices(%d): %w", int(k), ErrUnknownKind)
	}
	if err := matrix.ValidateHomogeneous(m); err != nil {
		return nil, fmt.Errorf("FromVertices(%s): %w", k, err)
	}
	if m.Cols() != want {
		return nil, fmt.Errorf("FromVertices(%s): %d columns, want %d: %w", k, m.Cols(), want, ErrVertexCount)
	}
	verts, err := matrix.NewPoints(want)
	if err != nil {
		return nil, err
	}
	var x, y float64
	for j := 0; j < want; j++ {
		if x, y, err = matrix.PointXY(m, j); err != nil {
			return nil, fmt.Errorf("FromVertices(%s): %w", k, err)
		}
		if err = matrix.SetPointXY(verts, j, x, y); err != nil {
			return nil, fmt.Errorf("FromVertices(%s): %w", k, err)
		}
	}
	b := base{color: c, verts: verts}

	switch k {
	case KindPoint:
		return &Point{base: b}, nil
	case KindLine:
		return &Line{base: b}, nil
	case KindTriangle:
		return &Triangle{base: b}, nil
	default:
		return &Circle{base: b}, nil
	}
}
