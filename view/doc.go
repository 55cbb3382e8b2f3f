// SPDX-License-Identifier: MIT

// Package view maintains the model↔device transform pair of a drawing
// session.
//
// A Context is created once with a fixed origin (usually the canvas centre).
// Translate, Scale and Rotate compose an elementary matrix into toDevice and
// its algebraic inverse into toModel in the same call, so the two always
// stay inverses of each other without any matrix inversion. Reset returns
// both to the identity.
//
//	vc := view.New(400, 300)
//	_ = vc.Scale(2, 2)
//	_ = vc.Rotate(10)
//	dev, _ := vc.ModelToDevice(points) // 4×N in, 4×N out
//
// Scale is the one operation whose inverse introduces reciprocals, so long
// scale histories are where toModel drifts from the exact inverse.
package view
