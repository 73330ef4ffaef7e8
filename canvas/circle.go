// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package canvas

import (
	"image"
	"image/draw"

	"github.com/gogpu/calgrid"
)

// kappa is the control-point distance of a cubic Bézier quarter circle.
const kappa = 0.5522847498

func (c *Canvas) fillCircle(op calgrid.Circle) {
	if op.R <= 0 || op.Color.A == 0 {
		return
	}
	cx := float32(op.CX + c.origin.X)
	cy := float32(op.CY + c.origin.Y)
	r := float32(op.R)
	k := r * kappa

	b := c.img.Bounds()
	z := c.raster
	z.Reset(b.Dx(), b.Dy())
	z.DrawOp = draw.Over
	z.MoveTo(cx+r, cy)
	z.CubeTo(cx+r, cy+k, cx+k, cy+r, cx, cy+r)
	z.CubeTo(cx-k, cy+r, cx-r, cy+k, cx-r, cy)
	z.CubeTo(cx-r, cy-k, cx-k, cy-r, cx, cy-r)
	z.CubeTo(cx+k, cy-r, cx+r, cy-k, cx+r, cy)
	z.ClosePath()
	z.Draw(c.img, b, image.NewUniform(op.Color), image.Point{})
}
