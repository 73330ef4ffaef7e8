// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package canvas

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/vector"

	"github.com/gogpu/calgrid"
	"github.com/gogpu/calgrid/text"
)

var (
	// ErrCanvasClosed is returned when operations are attempted on a closed canvas.
	ErrCanvasClosed = errors.New("canvas: canvas is closed")

	// ErrInvalidDimensions is returned when width or height is not positive.
	ErrInvalidDimensions = errors.New("canvas: invalid dimensions")

	// ErrNoFont is returned when a Text instruction names a role without a face.
	ErrNoFont = errors.New("canvas: no face for font role")
)

// Canvas renders calgrid draw instructions into an RGBA image.
type Canvas struct {
	img    *image.RGBA
	raster *vector.Rasterizer
	fonts  map[calgrid.FontRole]*text.Face
	origin image.Point
	closed bool
}

// New creates a transparent canvas of the given size.
func New(width, height int) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	return &Canvas{
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
		raster: vector.NewRasterizer(width, height),
		fonts:  make(map[calgrid.FontRole]*text.Face),
	}, nil
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.img.Rect.Dx() }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.img.Rect.Dy() }

// SetFont registers the face used for role.
func (c *Canvas) SetFont(role calgrid.FontRole, f *text.Face) {
	c.fonts[role] = f
}

// Font returns the face registered for role, or nil.
func (c *Canvas) Font(role calgrid.FontRole) *text.Face {
	return c.fonts[role]
}

// SetOrigin offsets every subsequent instruction by (x, y). Hosts use it
// to draw the grid below a weekday header.
func (c *Canvas) SetOrigin(x, y int) {
	c.origin = image.Pt(x, y)
}

// Clear fills the whole canvas with col.
func (c *Canvas) Clear(col color.Color) {
	if c.closed {
		return
	}
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// Execute draws ops in order. It stops at the first instruction that
// cannot be drawn.
func (c *Canvas) Execute(ops []calgrid.DrawInstruction) error {
	if c.closed {
		return ErrCanvasClosed
	}
	for i, op := range ops {
		var err error
		switch op := op.(type) {
		case calgrid.Circle:
			c.fillCircle(op)
		case calgrid.Text:
			err = c.drawText(op)
		default:
			err = fmt.Errorf("canvas: unsupported instruction %T", op)
		}
		if err != nil {
			return fmt.Errorf("instruction %d: %w", i, err)
		}
	}
	return nil
}

func (c *Canvas) drawText(t calgrid.Text) error {
	face := c.fonts[t.Font]
	if face == nil {
		return fmt.Errorf("%w: %s", ErrNoFont, t.Font)
	}
	x := float64(t.X + c.origin.X)
	y := float64(t.Y + c.origin.Y)
	return text.Draw(c.img, t.Content, face, x, y, t.Color)
}

// Image returns the backing image. It is live: later draws modify it.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Snapshot returns a copy of the current contents.
func (c *Canvas) Snapshot() *image.RGBA {
	out := image.NewRGBA(c.img.Rect)
	copy(out.Pix, c.img.Pix)
	return out
}

// Resize replaces the backing image with a cleared one of the new size.
func (c *Canvas) Resize(width, height int) error {
	if c.closed {
		return ErrCanvasClosed
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	c.img = image.NewRGBA(image.Rect(0, 0, width, height))
	c.raster.Reset(width, height)
	calgrid.Logger().Debug("canvas: resized", "width", width, "height", height)
	return nil
}

// Close releases the image. Close is idempotent.
func (c *Canvas) Close() error {
	c.closed = true
	c.img = image.NewRGBA(image.Rectangle{})
	return nil
}
