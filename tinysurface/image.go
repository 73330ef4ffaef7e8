package tinysurface

import (
	"image"
	"image/color"
	"image/draw"
)

// ImageDisplay is an in-memory drivers.Displayer backed by an RGBA image.
// It previews small-display output on a desktop and backs tests.
type ImageDisplay struct {
	img      *image.RGBA
	presents int
}

// NewImageDisplay returns a display of the given size.
func NewImageDisplay(width, height int) *ImageDisplay {
	return &ImageDisplay{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// Size implements drivers.Displayer.
func (d *ImageDisplay) Size() (x, y int16) {
	b := d.img.Bounds()
	return int16(b.Dx()), int16(b.Dy())
}

// SetPixel implements drivers.Displayer. Pixels off the display are ignored.
func (d *ImageDisplay) SetPixel(x, y int16, c color.RGBA) {
	d.img.SetRGBA(int(x), int(y), c)
}

// Display implements drivers.Displayer.
func (d *ImageDisplay) Display() error {
	d.presents++
	return nil
}

// FillRectangle fills a clipped rectangle.
func (d *ImageDisplay) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	r := image.Rect(int(x), int(y), int(x)+int(width), int(y)+int(height)).Intersect(d.img.Bounds())
	if !r.Empty() {
		draw.Draw(d.img, r, image.NewUniform(c), image.Point{}, draw.Src)
	}
	return nil
}

// Image returns the backing image.
func (d *ImageDisplay) Image() *image.RGBA { return d.img }

// Presents returns how many times Display was called.
func (d *ImageDisplay) Presents() int { return d.presents }
