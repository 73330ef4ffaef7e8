// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package canvas

import (
	"fmt"
	"image/png"
	"io"
	"os"
)

// EncodePNG writes the canvas as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	if c.closed {
		return ErrCanvasClosed
	}
	return png.Encode(w, c.img)
}

// SavePNG writes the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) (err error) {
	if c.closed {
		return ErrCanvasClosed
	}
	// #nosec G304 -- output path is chosen by the caller
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("canvas: create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return png.Encode(f, c.img)
}
