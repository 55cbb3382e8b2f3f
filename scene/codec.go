// SPDX-License-Identifier: MIT

package scene

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvdraw"
	"github.com/katalvlaran/lvdraw/matrix"
	"github.com/katalvlaran/lvdraw/shape"
	"github.com/katalvlaran/lvdraw/surface"
)

// Block markers of the scene text format.
const (
	beginImage  = "Begin Image"
	endImage    = "End Image"
	beginShapes = "Begin Shapes"
	endShapes   = "End Shapes"
	beginVerts  = "Begin Verticies"
	endVerts    = "End Verticies"
	beginProps  = "Begin Shape Properties"
	endProps    = "End Shape Properties"

	keyColor    = "Color:"
	keyLocation = "Location:"
	keyRadius   = "r:"
)

// Encode writes the image in the scene text format. Coordinates use the
// shortest representation that round-trips (%g).
func (img *Image) Encode(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, beginImage)
	fmt.Fprintln(bw, beginShapes)
	for _, s := range img.Shapes() {
		if err := encodeShape(bw, s); err != nil {
			return fmt.Errorf("Encode: %w", err)
		}
	}
	fmt.Fprintln(bw, endShapes)
	fmt.Fprintln(bw, endImage)
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("Encode: %w", err)
	}

	return nil
}

func encodeShape(w io.Writer, s shape.Shape) error {
	k := s.Kind()
	v := s.Vertices()
	xy := make([][2]float64, v.Cols())
	for j := range xy {
		x, y, err := matrix.PointXY(v, j)
		if err != nil {
			return err
		}
		xy[j] = [2]float64{x, y}
	}
	listed := xy
	if k == shape.KindCircle {
		listed = xy[:1]
	}

	fmt.Fprintf(w, "Begin %s\n", k)
	fmt.Fprintf(w, "Begin %s Properties\n", k)
	fmt.Fprintf(w, "\t%s\n", beginVerts)
	for j, p := range listed {
		fmt.Fprintf(w, "\t\tv%d: %g,%g\n", j+1, p[0], p[1])
	}
	fmt.Fprintf(w, "\t%s\n", endVerts)
	if k == shape.KindCircle {
		fmt.Fprintf(w, "\t%s %g\n", keyRadius, math.Hypot(xy[1][0]-xy[0][0], xy[1][1]-xy[0][1]))
	}
	fmt.Fprintf(w, "End %s Properties\n", k)
	fmt.Fprintln(w, beginProps)
	fmt.Fprintf(w, "\t%s %d\n", keyColor, uint32(s.Color()))
	fmt.Fprintf(w, "\t%s %g,%g\n", keyLocation, xy[0][0], xy[0][1])
	fmt.Fprintln(w, endProps)
	_, err := fmt.Fprintf(w, "End %s\n", k)

	return err
}

// decoder walks the input line by line; line is 1-based.
type decoder struct {
	sc   *bufio.Scanner
	line int
}

// next returns the next line with surrounding blanks removed.
func (d *decoder) next() (string, bool) {
	if !d.sc.Scan() {
		return "", false
	}
	d.line++

	return strings.TrimSpace(d.sc.Text()), true
}

// eof builds the error for input that ends inside a block.
func (d *decoder) eof(what string) error {
	if err := d.sc.Err(); err != nil {
		return fmt.Errorf("scene: line %d: %w", d.line, err)
	}

	return lineErrorf(d.line, ErrMalformed, "unexpected end of input, missing %q", what)
}

func skipped(line int, text string) {
	if text != "" {
		lvdraw.Logger().Warn("scene: skipped line", "line", line, "text", text)
	}
}

// Decode reads the first image from r. Lines outside any recognized block
// are skipped; leading and trailing blanks on every line are ignored.
//
// Errors:
//   - ErrMalformed (with line number) for missing markers, truncated
//     blocks, bad numbers and wrong vertex counts.
//   - ErrUnknownShape for "Begin X" with an unknown X inside Shapes.
func Decode(r io.Reader) (*Image, error) {
	d := &decoder{sc: bufio.NewScanner(r)}
	for {
		text, ok := d.next()
		if !ok {
			return nil, d.eof(beginImage)
		}
		if text == beginImage {
			break
		}
		skipped(d.line, text)
	}

	img := New()
	for {
		text, ok := d.next()
		if !ok {
			return nil, d.eof(endImage)
		}
		switch text {
		case endImage:
			return img, nil
		case beginShapes:
			shapes, err := d.shapes()
			if err != nil {
				return nil, err
			}
			img.shapes = append(img.shapes, shapes...)
		default:
			skipped(d.line, text)
		}
	}
}

func (d *decoder) shapes() ([]shape.Shape, error) {
	var out []shape.Shape
	for {
		text, ok := d.next()
		if !ok {
			return nil, d.eof(endShapes)
		}
		if text == endShapes {
			return out, nil
		}
		name, isBlock := strings.CutPrefix(text, "Begin ")
		if !isBlock {
			skipped(d.line, text)
			continue
		}
		k, err := shape.ParseKind(name)
		if err != nil {
			return nil, lineErrorf(d.line, ErrUnknownShape, "%q", name)
		}
		s, err := d.shape(k)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
}

// shape reads one block up to "End <Kind>".
func (d *decoder) shape(k shape.Kind) (shape.Shape, error) {
	start := d.line
	end := "End " + k.String()
	var (
		verts  [][2]float64
		radius = math.NaN()
		col    = surface.White
	)

	for {
		text, ok := d.next()
		if !ok {
			return nil, d.eof(end)
		}
		switch {
		case text == end:
			return d.build(k, start, verts, radius, col)

		case isVertex(text):
			label, rest, _ := strings.Cut(text, ":")
			idx, _ := strconv.Atoi(label[1:])
			if idx != len(verts)+1 {
				return nil, lineErrorf(d.line, ErrMalformed, "vertex %s out of order", label)
			}
			p, err := parsePair(rest)
			if err != nil {
				return nil, lineErrorf(d.line, ErrMalformed, "vertex %s: %v", label, err)
			}
			verts = append(verts, p)

		case strings.HasPrefix(text, keyRadius):
			v, err := parseFloat(strings.TrimPrefix(text, keyRadius))
			if err != nil || v < 0 {
				return nil, lineErrorf(d.line, ErrMalformed, "radius %q", text)
			}
			radius = v

		case strings.HasPrefix(text, keyColor):
			c, err := surface.ParseColor(strings.TrimPrefix(text, keyColor))
			if err != nil {
				return nil, lineErrorf(d.line, ErrMalformed, "%v", err)
			}
			col = c

		default:
			// Section markers and Location are informational.
		}
	}
}

func (d *decoder) build(k shape.Kind, start int, verts [][2]float64, radius float64, c surface.Color) (shape.Shape, error) {
	want := k.Vertices()
	if k == shape.KindCircle {
		want = 1
		if math.IsNaN(radius) {
			return nil, lineErrorf(d.line, ErrMalformed, "%s at line %d has no radius", k, start)
		}
	}
	if len(verts) != want {
		return nil, lineErrorf(d.line, ErrMalformed, "%s at line %d has %d vertices, want %d", k, start, len(verts), want)
	}

	switch k {
	case shape.KindPoint:
		return shape.NewPoint(verts[0][0], verts[0][1], c), nil
	case shape.KindLine:
		return shape.NewLine(verts[0][0], verts[0][1], verts[1][0], verts[1][1], c), nil
	case shape.KindTriangle:
		return shape.NewTriangle(verts[0][0], verts[0][1], verts[1][0], verts[1][1], verts[2][0], verts[2][1], c), nil
	default:
		return shape.NewCircle(verts[0][0], verts[0][1], radius, c), nil
	}
}

// isVertex reports whether text looks like "v<digits>: ...".
func isVertex(text string) bool {
	label, _, ok := strings.Cut(text, ":")
	if !ok || len(label) < 2 || label[0] != 'v' {
		return false
	}
	for _, r := range label[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}

var errNonFinite = errors.New("non-finite number")

func parseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errNonFinite
	}

	return v, nil
}

func parsePair(s string) ([2]float64, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return [2]float64{}, fmt.Errorf("%q: want x,y", strings.TrimSpace(s))
	}
	x, err := parseFloat(xs)
	if err != nil {
		return [2]float64{}, err
	}
	y, err := parseFloat(ys)
	if err != nil {
		return [2]float64{}, err
	}

	return [2]float64{x, y}, nil
}

// SaveFile encodes the image into path, replacing any existing file.
func (img *Image) SaveFile(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("SaveFile: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("SaveFile: %w", cerr)
		}
	}()
	if err = img.Encode(f); err != nil {
		return fmt.Errorf("SaveFile(%q): %w", path, err)
	}
	lvdraw.Logger().Info("scene: saved", "path", path, "shapes", img.Len())

	return nil
}

// LoadFile decodes the first image stored in path.
func LoadFile(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("LoadFile: %w", err)
	}
	defer f.Close()

	img, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("LoadFile(%q): %w", path, err)
	}
	lvdraw.Logger().Info("scene: loaded", "path", path, "shapes", img.Len())

	return img, nil
}
