// Package lvdraw is a small 2D drawing engine: homogeneous-coordinate
// matrices, an invertible view transform stack, and integer scan conversion
// of lines and circles onto a pixel surface.
//
// 🚀 What is inside?
//
//	• matrix/ : dense float64 matrices, product/sum/transpose kernels, validators
//	• view/   : view Context keeping a device transform and its inverse in lock-step
//	• raster/ : octant-resolved Bresenham lines and midpoint circles over a pixel sink
//	• surface/: RGBA canvas (normal & XOR modes), palette, image export
//	• shape/  : points, lines, triangles and circles stored in model space
//	• scene/  : ordered shape collection with a line-oriented text format
//	• session/: interactive drawing-mode state machine (modes, rubber band, keys)
//	• config/ : TOML configuration for the CLI and the session
//
// ✨ Pipeline:
//
//	model vertices (4×N) ──ModelToDevice──▶ device vertices ──round──▶ DrawLine/DrawCircle ──▶ SetPixel
//
// Logging is silent by default; call SetLogger to route diagnostics from every
// sub-package to a *slog.Logger.
//
//	go get github.com/katalvlaran/lvdraw
package lvdraw
