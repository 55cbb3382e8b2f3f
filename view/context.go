// SPDX-License-Identifier: MIT
// Package view: forward/inverse view transform stack.
//
// Purpose:
//   - Keep a cumulative device transform (toDevice) and its inverse (toModel).
//   - Apply every user operation around a fixed origin.
//   - Convert homogeneous 4×N point sets between model and device space.
//
// Invariant:
//   - toModel · toDevice ≈ I at all times. The inverse is composed step by
//     step from each operation's algebraic inverse; it is never computed by
//     numeric inversion.
//
// Update rule for an elementary matrix E with inverse E⁻¹:
//
//	toDevice ← fromOrigin · E   · toOrigin · toDevice
//	toModel  ← toModel · fromOrigin · E⁻¹ · toOrigin
//
// Translation goes through the same path; the origin terms cancel.

package view

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvdraw"
	"github.com/katalvlaran/lvdraw/matrix"
)

// Operation tags used in error wrapping and log records.
const (
	opTranslate = "Translate"
	opScale     = "Scale"
	opRotate    = "Rotate"
	opReset     = "Reset"
	opToDevice  = "ModelToDevice"
	opToModel   = "DeviceToModel"
)

// size of every transform matrix (homogeneous 2D embedded in 4×4).
const size = matrix.HomogeneousRows

// Context owns the transform pair of one drawing session.
// It is not safe for concurrent mutation; callers serialize updates.
type Context struct {
	originX, originY float64

	toOrigin   *matrix.Dense // translate(-originX, -originY); fixed
	fromOrigin *matrix.Dense // translate(+originX, +originY); fixed

	toDevice *matrix.Dense // model → device
	toModel  *matrix.Dense // device → model
}

// New creates a Context whose operations pivot on (originX, originY).
// Both transforms start as the identity.
func New(originX, originY float64) *Context {
	return &Context{
		originX:    originX,
		originY:    originY,
		toOrigin:   translation(-originX, -originY),
		fromOrigin: translation(originX, originY),
		toDevice:   identity(),
		toModel:    identity(),
	}
}

// Origin returns the fixed pivot point.
func (c *Context) Origin() (x, y float64) { return c.originX, c.originY }

// ToDevice returns a copy of the cumulative model→device matrix.
func (c *Context) ToDevice() *matrix.Dense { return c.toDevice.Copy() }

// ToModel returns a copy of the cumulative device→model matrix.
func (c *Context) ToModel() *matrix.Dense { return c.toModel.Copy() }

// Translate shifts the view by (dx, dy) device units.
//
// Errors:
//   - ErrNonFinite when dx or dy is NaN/±Inf (state unchanged).
func (c *Context) Translate(dx, dy float64) error {
	if !finite(dx) || !finite(dy) {
		return fmt.Errorf("%s(%g,%g): %w", opTranslate, dx, dy, ErrNonFinite)
	}
	if err := c.apply(opTranslate, translation(dx, dy), translation(-dx, -dy)); err != nil {
		return err
	}
	lvdraw.Logger().Debug("view: translate", "dx", dx, "dy", dy)

	return nil
}

// Scale scales the view by (sx, sy) around the origin.
// Negative factors mirror and are accepted.
//
// Errors:
//   - ErrInvalidScale when sx or sy is zero, NaN or ±Inf (state unchanged).
//
// Notes:
//   - E⁻¹ holds 1/sx and 1/sy; these reciprocals are the only place where
//     rounding error accumulates in toModel.
func (c *Context) Scale(sx, sy float64) error {
	if sx == 0 || sy == 0 || !finite(sx) || !finite(sy) {
		return fmt.Errorf("%s(%g,%g): %w", opScale, sx, sy, ErrInvalidScale)
	}
	e, inv := identity(), identity()
	// Values are finite here, Set cannot fail.
	_ = e.Set(matrix.RowX, matrix.RowX, sx)
	_ = e.Set(matrix.RowY, matrix.RowY, sy)
	_ = inv.Set(matrix.RowX, matrix.RowX, 1/sx)
	_ = inv.Set(matrix.RowY, matrix.RowY, 1/sy)
	if err := c.apply(opScale, e, inv); err != nil {
		return err
	}
	lvdraw.Logger().Debug("view: scale", "sx", sx, "sy", sy)

	return nil
}

// Rotate rotates the view counter-clockwise by degrees around the origin
// (in a y-up device frame). The inverse step is the rotation by -degrees.
//
// Errors:
//   - ErrNonFinite when degrees is NaN/±Inf (state unchanged).
func (c *Context) Rotate(degrees float64) error {
	if !finite(degrees) {
		return fmt.Errorf("%s(%g): %w", opRotate, degrees, ErrNonFinite)
	}
	theta := degrees * math.Pi / 180
	if err := c.apply(opRotate, rotation(theta), rotation(-theta)); err != nil {
		return err
	}
	lvdraw.Logger().Debug("view: rotate", "degrees", degrees)

	return nil
}

// Reset discards all accumulated operations. The origin is kept.
func (c *Context) Reset() {
	c.toDevice = identity()
	c.toModel = identity()
	lvdraw.Logger().Debug("view: " + opReset)
}

// ModelToDevice returns toDevice · points for a 4×N point set.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch (rows != 4).
func (c *Context) ModelToDevice(points matrix.Matrix) (*matrix.Dense, error) {
	return c.convert(opToDevice, c.toDevice, points)
}

// DeviceToModel returns toModel · points for a 4×N point set.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch (rows != 4).
func (c *Context) DeviceToModel(points matrix.Matrix) (*matrix.Dense, error) {
	return c.convert(opToModel, c.toModel, points)
}

// convert validates the point set then multiplies.
func (c *Context) convert(op string, t *matrix.Dense, points matrix.Matrix) (*matrix.Dense, error) {
	if err := matrix.ValidateHomogeneous(points); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	out, err := matrix.Mul(t, points)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

// apply composes E and E⁻¹ into the pair. Both products are computed
// before either stored matrix changes.
func (c *Context) apply(op string, e, inv *matrix.Dense) error {
	dev, err := matrix.MulChain(c.fromOrigin, e, c.toOrigin, c.toDevice)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	mod, err := matrix.MulChain(c.toModel, c.fromOrigin, inv, c.toOrigin)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	// Same shape: Assign refreshes in place.
	if err = c.toDevice.Assign(dev); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err = c.toModel.Assign(mod); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// identity returns a fresh 4×4 identity.
func identity() *matrix.Dense {
	I, _ := matrix.NewIdentity(size) // size is a positive constant

	return I
}

// translation returns the elementary translate(dx, dy).
func translation(dx, dy float64) *matrix.Dense {
	t := identity()
	_ = t.Set(matrix.RowX, matrix.RowW, dx)
	_ = t.Set(matrix.RowY, matrix.RowW, dy)

	return t
}

// rotation returns the elementary rotation by theta radians in the xy plane.
// Rows/cols z and w stay identity.
func rotation(theta float64) *matrix.Dense {
	r := identity()
	sin, cos := math.Sincos(theta)
	_ = r.Set(matrix.RowX, matrix.RowX, cos)
	_ = r.Set(matrix.RowX, matrix.RowY, -sin)
	_ = r.Set(matrix.RowY, matrix.RowX, sin)
	_ = r.Set(matrix.RowY, matrix.RowY, cos)

	return r
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
