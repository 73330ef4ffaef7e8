package calgrid

import (
	"fmt"
	"image/color"
)

// FontRole names the font a Text instruction is drawn with. The drawing
// surface maps roles to concrete fonts.
type FontRole int

const (
	// FontDay is the day-number font (also used for weekday headers).
	FontDay FontRole = iota
	// FontMark is the annotation font.
	FontMark
)

// String returns the role name.
func (r FontRole) String() string {
	switch r {
	case FontDay:
		return "day"
	case FontMark:
		return "mark"
	default:
		return fmt.Sprintf("FontRole(%d)", int(r))
	}
}

// DrawInstruction is one drawing primitive. It is either a Circle or a Text.
// Coordinates use the top-left origin with y growing downwards.
type DrawInstruction interface {
	instruction()
}

// Circle is a filled circle centered on (CX, CY).
type Circle struct {
	CX, CY int
	R      float64
	Color  color.RGBA
}

// Text is a single line of text whose baseline starts at (X, Y).
type Text struct {
	X, Y    int
	Content string
	Font    FontRole
	Color   color.RGBA
}

func (Circle) instruction() {}
func (Text) instruction()   {}

// Palette holds the colors used by the calendar.
type Palette struct {
	Today      color.RGBA
	Selected   color.RGBA
	Text       color.RGBA
	OnSelected color.RGBA
	OtherMonth color.RGBA
	Mark       color.RGBA
	Header     color.RGBA
}

// DefaultPalette returns the stock green palette.
func DefaultPalette() Palette {
	return Palette{
		Today:      color.RGBA{R: 0xEA, G: 0xFA, B: 0xF2, A: 0xFF},
		Selected:   color.RGBA{R: 0x08, G: 0xA8, B: 0x6D, A: 0xFF},
		Text:       color.RGBA{R: 0x1D, G: 0x21, B: 0x29, A: 0xFF},
		OnSelected: color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
		OtherMonth: color.RGBA{R: 0xC9, G: 0xCD, B: 0xD4, A: 0xFF},
		Mark:       color.RGBA{R: 0x86, G: 0x90, B: 0x9C, A: 0xFF},
		Header:     color.RGBA{R: 0x86, G: 0x90, B: 0x9C, A: 0xFF},
	}
}
