// SPDX-License-Identifier: MIT

// Package shape holds the drawable figures of a scene: Point, Line,
// Triangle and Circle.
//
// Every shape stores its geometry in model space as a 4×N homogeneous
// point set (see matrix.NewPoints) and draws by mapping that set through a
// view.Context, rounding to the nearest device pixel and handing the result
// to the raster package. A Circle keeps its centre and one rim point, so a
// zoom rescales the drawn radius.
//
// Shapes are immutable after construction; Vertices and Clone return copies.
package shape
