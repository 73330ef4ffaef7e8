package tinysurface

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"

	"github.com/gogpu/calgrid"
)

// ErrNoFont is returned when a Text instruction names a role without a font.
var ErrNoFont = errors.New("tinysurface: no font for role")

// rectFiller is implemented by displays with an accelerated fill.
type rectFiller interface {
	FillRectangle(x, y, width, height int16, c color.RGBA) error
}

// Surface executes calgrid instructions on a Displayer.
type Surface struct {
	d     drivers.Displayer
	fonts map[calgrid.FontRole]*Font
	dx    int
	dy    int
}

// New returns a Surface drawing on d with the given fonts.
func New(d drivers.Displayer, day, mark *Font) *Surface {
	return &Surface{
		d: d,
		fonts: map[calgrid.FontRole]*Font{
			calgrid.FontDay:  day,
			calgrid.FontMark: mark,
		},
	}
}

// Size returns the display size.
func (s *Surface) Size() (width, height int) {
	w, h := s.d.Size()
	return int(w), int(h)
}

// SetOrigin offsets subsequent instructions by (x, y).
func (s *Surface) SetOrigin(x, y int) {
	s.dx, s.dy = x, y
}

// Clear fills the whole display with c.
func (s *Surface) Clear(c color.RGBA) error {
	w, h := s.d.Size()
	return s.fillRect(0, 0, int(w), int(h), c)
}

// Execute draws ops in order and stops at the first failure.
func (s *Surface) Execute(ops []calgrid.DrawInstruction) error {
	for i, op := range ops {
		var err error
		switch op := op.(type) {
		case calgrid.Circle:
			err = s.fillCircle(op.CX+s.dx, op.CY+s.dy, op.R, op.Color)
		case calgrid.Text:
			f := s.fonts[op.Font]
			if f == nil {
				err = fmt.Errorf("%w: %s", ErrNoFont, op.Font)
				break
			}
			tinyfont.WriteLine(s.d, f.fonter, int16(op.X+s.dx), int16(op.Y+s.dy), op.Content, op.Color)
		default:
			err = fmt.Errorf("tinysurface: unsupported instruction %T", op)
		}
		if err != nil {
			return fmt.Errorf("instruction %d: %w", i, err)
		}
	}
	return nil
}

// Display flushes the display.
func (s *Surface) Display() error {
	return s.d.Display()
}

// fillCircle fills every pixel whose offset from the center lies within r,
// one horizontal span per row.
func (s *Surface) fillCircle(cx, cy int, r float64, c color.RGBA) error {
	if r <= 0 || c.A == 0 {
		return nil
	}
	ir := int(math.Floor(r))
	for dy := -ir; dy <= ir; dy++ {
		half := int(math.Floor(math.Sqrt(r*r - float64(dy*dy))))
		if err := s.fillRect(cx-half, cy+dy, 2*half+1, 1, c); err != nil {
			return err
		}
	}
	return nil
}

func (s *Surface) fillRect(x, y, w, h int, c color.RGBA) error {
	if w <= 0 || h <= 0 {
		return nil
	}
	if f, ok := s.d.(rectFiller); ok {
		return f.FillRectangle(int16(x), int16(y), int16(w), int16(h), c)
	}
	for py := y; py < y+h; py++ {
		for px := x; px < x+w; px++ {
			s.d.SetPixel(int16(px), int16(py), c)
		}
	}
	return nil
}
