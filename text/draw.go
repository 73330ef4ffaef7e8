package text

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Draw renders s onto dst with its baseline origin at (x, y).
// Nothing is drawn when the face's parser backend cannot rasterize.
func Draw(dst draw.Image, s string, face *Face, x, y float64, col color.Color) error {
	if s == "" || face == nil {
		return nil
	}
	parsed := face.source.Parsed()
	if parsed == nil {
		return ErrSourceClosed
	}
	otf := parsed.Opentype()
	if otf == nil {
		return nil
	}

	otFace, err := opentype.NewFace(otf, &opentype.FaceOptions{
		Size:    face.size,
		DPI:     72,
		Hinting: face.config.hinting.font(),
	})
	if err != nil {
		return err
	}
	defer func() { _ = otFace.Close() }()

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: otFace,
		Dot:  fixed.Point26_6{X: toFixed(x), Y: toFixed(y)},
	}
	d.DrawString(s)
	return nil
}

// Measure returns the advance width and line height of s.
func Measure(s string, face *Face) (width, height float64) {
	if s == "" || face == nil {
		return 0, 0
	}
	return face.Advance(s), face.Metrics().LineHeight()
}
