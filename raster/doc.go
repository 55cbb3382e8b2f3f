// SPDX-License-Identifier: MIT

// Package raster converts integer line and circle geometry into pixel writes.
//
// Both algorithms are incremental and integer-only: DrawLine is an
// octant-resolved Bresenham walk, DrawCircle is the midpoint circle with
// 8-way symmetry. Output goes to a PixelSetter, one call per pixel; the
// package knows nothing about pixel storage, color or clipping.
//
// Line order is deterministic: pixels are emitted from the smaller to the
// larger coordinate along the dominant axis, so DrawLine(a, b) and
// DrawLine(b, a) produce the same sequence.
//
//	var rec raster.Recorder
//	raster.DrawLine(&rec, 0, 0, 5, 3)
//	// rec.Pixels: (0,0) (1,1) (2,1) (3,2) (4,2) (5,3)
package raster
