// SPDX-License-Identifier: MIT

package raster_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/katalvlaran/lvdraw/raster"
	"github.com/stretchr/testify/require"
)

func line(x0, y0, x1, y1 int) []raster.Pixel {
	var rec raster.Recorder
	raster.DrawLine(&rec, x0, y0, x1, y1)

	return rec.Pixels
}

func px(xy ...int) []raster.Pixel {
	out := make([]raster.Pixel, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		out = append(out, raster.Pixel{X: xy[i], Y: xy[i+1]})
	}

	return out
}

// TestDrawLine_Golden pins exact sequences for the documented cases.
func TestDrawLine_Golden(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
		want           []raster.Pixel
	}{
		{"horizontal", 0, 0, 5, 0, px(0, 0, 1, 0, 2, 0, 3, 0, 4, 0, 5, 0)},
		{"horizontal reversed", 5, 0, 0, 0, px(0, 0, 1, 0, 2, 0, 3, 0, 4, 0, 5, 0)},
		{"vertical", 0, 0, 0, 5, px(0, 0, 0, 1, 0, 2, 0, 3, 0, 4, 0, 5)},
		{"vertical reversed", 2, 3, 2, -1, px(2, -1, 2, 0, 2, 1, 2, 2, 2, 3)},
		{"point", 7, 7, 7, 7, px(7, 7)},
		{"diagonal", 0, 0, 5, 5, px(0, 0, 1, 1, 2, 2, 3, 3, 4, 4, 5, 5)},
		{"octant 1", 0, 0, 5, 3, px(0, 0, 1, 1, 2, 1, 3, 2, 4, 2, 5, 3)},
		{"octant 5", 5, 3, 0, 0, px(0, 0, 1, 1, 2, 1, 3, 2, 4, 2, 5, 3)},
		{"octant 7", 0, 0, 3, -5, px(3, -5, 2, -4, 2, -3, 1, -2, 1, -1, 0, 0)},
		{"octant 4", 0, 0, -5, 2, px(-5, 2, -4, 2, -3, 1, -2, 1, -1, 0, 0, 0)},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, line(tc.x0, tc.y0, tc.x1, tc.y1))
		})
	}
}

// TestDrawLine_AllOctants sweeps every endpoint in a square around a start
// point and checks the structural guarantees of the walk.
func TestDrawLine_AllOctants(t *testing.T) {
	const r = 12
	x0, y0 := 3, -2
	seen := map[raster.Octant]bool{}

	for x1 := x0 - r; x1 <= x0+r; x1++ {
		for y1 := y0 - r; y1 <= y0+r; y1++ {
			got := line(x0, y0, x1, y1)
			dx, dy := x1-x0, y1-y0
			seen[raster.ResolveOctant(x0, y0, x1, y1)] = true

			name := fmt.Sprintf("(%d,%d)->(%d,%d)", x0, y0, x1, y1)
			require.Lenf(t, got, max(iabs(dx), iabs(dy))+1, "%s count", name)

			set := map[raster.Pixel]bool{}
			for _, p := range got {
				set[p] = true
			}
			require.Lenf(t, set, len(got), "%s duplicates", name)
			require.Truef(t, set[raster.Pixel{X: x0, Y: y0}], "%s start missing", name)
			require.Truef(t, set[raster.Pixel{X: x1, Y: y1}], "%s end missing", name)

			for i := 1; i < len(got); i++ {
				step := max(iabs(got[i].X-got[i-1].X), iabs(got[i].Y-got[i-1].Y))
				require.Equalf(t, 1, step, "%s not 8-connected at %d", name, i)
			}

			// Every pixel stays within half a pixel of the ideal segment
			// along the minor axis.
			for _, p := range got {
				if dx == 0 && dy == 0 {
					break
				}
				if iabs(dy) <= iabs(dx) {
					ideal := float64(y0) + float64(dy)*float64(p.X-x0)/float64(dx)
					require.LessOrEqualf(t, math.Abs(float64(p.Y)-ideal), 0.5, "%s at %v", name, p)
				} else {
					ideal := float64(x0) + float64(dx)*float64(p.Y-y0)/float64(dy)
					require.LessOrEqualf(t, math.Abs(float64(p.X)-ideal), 0.5, "%s at %v", name, p)
				}
			}

			// Direction does not matter.
			require.Equalf(t, got, line(x1, y1, x0, y0), "%s reversed", name)
		}
	}

	for o := raster.Octant1; o <= raster.Octant8; o++ {
		require.Truef(t, seen[o], "%v never exercised", o)
	}
}

// TestDrawLine_DominantAxisOrder checks the walk runs low-to-high.
func TestDrawLine_DominantAxisOrder(t *testing.T) {
	shallow := line(10, 0, -10, 7)
	for i := 1; i < len(shallow); i++ {
		require.Equal(t, shallow[i-1].X+1, shallow[i].X)
	}
	steep := line(0, 10, 4, -10)
	for i := 1; i < len(steep); i++ {
		require.Equal(t, steep[i-1].Y+1, steep[i].Y)
	}
}

func TestResolveOctant(t *testing.T) {
	tests := []struct {
		dx, dy int
		want   raster.Octant
	}{
		{5, 3, raster.Octant1},
		{5, 5, raster.Octant1}, // tie goes shallow
		{3, 5, raster.Octant2},
		{-3, 5, raster.Octant3},
		{-5, 5, raster.Octant4},
		{-5, 3, raster.Octant4},
		{-5, -3, raster.Octant5},
		{-5, -5, raster.Octant5},
		{-3, -5, raster.Octant6},
		{3, -5, raster.Octant7},
		{5, -3, raster.Octant8},
		{5, -5, raster.Octant8},
		{5, 0, raster.OctantNone},
		{0, -5, raster.OctantNone},
	}
	for _, tc := range tests {
		got := raster.ResolveOctant(1, 1, 1+tc.dx, 1+tc.dy)
		require.Equalf(t, tc.want, got, "dx=%d dy=%d", tc.dx, tc.dy)
	}
}

func TestOctant_Predicates(t *testing.T) {
	require.Equal(t, "octant 3", raster.Octant3.String())
	require.Equal(t, "none", raster.OctantNone.String())
	require.Equal(t, "none", raster.Octant(42).String())

	for _, o := range []raster.Octant{raster.Octant1, raster.Octant4, raster.Octant5, raster.Octant8} {
		require.Truef(t, o.Shallow(), "%v", o)
	}
	for _, o := range []raster.Octant{raster.Octant2, raster.Octant3, raster.Octant6, raster.Octant7} {
		require.Falsef(t, o.Shallow(), "%v", o)
	}
	require.False(t, raster.Octant1.Swapped())
	require.True(t, raster.Octant4.Swapped())
	require.True(t, raster.Octant7.Swapped())
	require.False(t, raster.Octant8.Swapped())
}

func TestDrawPolyline(t *testing.T) {
	var rec raster.Recorder
	raster.DrawPolyline(&rec, raster.Pixel{X: 0, Y: 0}, raster.Pixel{X: 2, Y: 0}, raster.Pixel{X: 2, Y: 2})
	require.Equal(t, px(0, 0, 1, 0, 2, 0, 2, 0, 2, 1, 2, 2), rec.Pixels)

	rec.Reset()
	raster.DrawPolyline(&rec, raster.Pixel{X: 1, Y: 1})
	require.Zero(t, rec.Len())
}

func TestPixelFunc(t *testing.T) {
	n := 0
	raster.DrawLine(raster.PixelFunc(func(x, y int) { n++ }), 0, 0, 9, 4)
	require.Equal(t, 10, n)
	require.Equal(t, "(3,-4)", raster.Pixel{X: 3, Y: -4}.String())
}

func iabs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
