// SPDX-License-Identifier: MIT

package raster

// DrawCircle writes a midpoint-circle outline of the given radius around
// (cx, cy) to dst.
// Implementation:
//   - Stage 1: radius < 0 draws nothing; radius 0 draws the centre;
//     radius 1 draws the four axis neighbours. The general walk starts at
//     x = radius-1 and would collapse onto the centre for these radii.
//   - Stage 2: x = radius-1, y = 0, dx = dy = 1, err = dx - 2·radius.
//     While x ≥ y: plot the 8 symmetric points, then step y when err ≤ 0,
//     otherwise step x inward.
//
// Symmetric points coincide on the axes and the diagonal, so some pixels
// are written twice. No deduplication is done.
//
// Complexity:
//   - Time O(radius), Space O(1).
func DrawCircle(dst PixelSetter, cx, cy, radius int) {
	switch {
	case radius < 0:
		return
	case radius == 0:
		dst.SetPixel(cx, cy)
		return
	case radius == 1:
		dst.SetPixel(cx+1, cy)
		dst.SetPixel(cx, cy+1)
		dst.SetPixel(cx-1, cy)
		dst.SetPixel(cx, cy-1)
		return
	}

	x, y := radius-1, 0
	dx, dy := 1, 1
	err := dx - radius<<1
	for x >= y {
		plotOctants(dst, cx, cy, x, y)
		if err <= 0 {
			y++
			err += dy
			dy += 2
		} else {
			x--
			dx += 2
			err += dx - radius<<1
		}
	}
}

// plotOctants writes the 8 reflections of (x, y) around (cx, cy).
func plotOctants(dst PixelSetter, cx, cy, x, y int) {
	dst.SetPixel(cx+x, cy+y)
	dst.SetPixel(cx+y, cy+x)
	dst.SetPixel(cx-y, cy+x)
	dst.SetPixel(cx-x, cy+y)
	dst.SetPixel(cx-x, cy-y)
	dst.SetPixel(cx-y, cy-x)
	dst.SetPixel(cx+y, cy-x)
	dst.SetPixel(cx+x, cy-y)
}
