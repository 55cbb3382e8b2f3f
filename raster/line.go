// SPDX-License-Identifier: MIT

package raster

// DrawLine writes the Bresenham approximation of (x0,y0)→(x1,y1) to dst.
// Implementation:
//   - Stage 1: y0 == y1 → horizontal run min(x)..max(x) (covers the single point).
//   - Stage 2: x0 == x1 → vertical run min(y)..max(y).
//   - Stage 3: ResolveOctant; octants 4..7 swap endpoints, then the shallow
//     walk serves 1/4/5/8 and the steep walk serves 2/3/6/7.
//
// Pixel count is max(|dx|,|dy|)+1, both endpoints included, consecutive
// pixels 8-connected. The inner loops use integer arithmetic only.
//
// Complexity:
//   - Time O(max(|dx|,|dy|)), Space O(1).
func DrawLine(dst PixelSetter, x0, y0, x1, y1 int) {
	if y0 == y1 {
		if x0 > x1 {
			x0, x1 = x1, x0
		}
		for x := x0; x <= x1; x++ {
			dst.SetPixel(x, y0)
		}
		return
	}
	if x0 == x1 {
		if y0 > y1 {
			y0, y1 = y1, y0
		}
		for y := y0; y <= y1; y++ {
			dst.SetPixel(x0, y)
		}
		return
	}

	oct := ResolveOctant(x0, y0, x1, y1)
	if oct.Swapped() {
		x0, y0, x1, y1 = x1, y1, x0, y0
	}
	if oct.Shallow() {
		walkShallow(dst, x0, y0, x1, y1)
		return
	}
	walkSteep(dst, x0, y0, x1, y1)
}

// walkShallow steps x from x0 to x1 (x0 < x1, |dy| ≤ dx).
// The error term is kept in units of the minor delta; y moves once 2·err
// reaches dx.
func walkShallow(dst PixelSetter, x0, y0, x1, y1 int) {
	dx, dy := x1-x0, y1-y0
	ystep := 1
	if dy < 0 {
		ystep, dy = -1, -dy
	}
	y, err := y0, 0
	for x := x0; x <= x1; x++ {
		dst.SetPixel(x, y)
		err += dy
		if err<<1 >= dx {
			y += ystep
			err -= dx
		}
	}
}

// walkSteep steps y from y0 to y1 (y0 < y1, |dx| < dy).
func walkSteep(dst PixelSetter, x0, y0, x1, y1 int) {
	dx, dy := x1-x0, y1-y0
	xstep := 1
	if dx < 0 {
		xstep, dx = -1, -dx
	}
	x, err := x0, 0
	for y := y0; y <= y1; y++ {
		dst.SetPixel(x, y)
		err += dx
		if err<<1 >= dy {
			x += xstep
			err -= dy
		}
	}
}

// DrawPolyline draws consecutive segments through pts; a closed outline
// repeats the first point at the end. Shared vertices are written twice.
func DrawPolyline(dst PixelSetter, pts ...Pixel) {
	for i := 1; i < len(pts); i++ {
		DrawLine(dst, pts[i-1].X, pts[i-1].Y, pts[i].X, pts[i].Y)
	}
}
