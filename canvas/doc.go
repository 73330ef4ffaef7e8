// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package canvas is a CPU drawing surface for calgrid instructions.
//
// A Canvas owns an *image.RGBA. Execute draws Circle instructions as
// anti-aliased discs (golang.org/x/image/vector) and Text instructions
// through the text package, resolving each FontRole to a registered face.
//
// Example:
//
//	c, err := canvas.New(350, 300)
//	if err != nil {
//	    return err
//	}
//	defer c.Close()
//
//	c.SetFont(calgrid.FontDay, dayFace)
//	c.SetFont(calgrid.FontMark, markFace)
//	c.Clear(color.White)
//	if err := c.Execute(ops); err != nil {
//	    return err
//	}
//	err = c.SavePNG("month.png")
//
// Canvas is not safe for concurrent use; create one per goroutine.
package canvas
