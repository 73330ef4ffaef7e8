package tinysurface

import (
	"fmt"

	"tinygo.org/x/tinyfont"

	"github.com/gogpu/calgrid"
)

var (
	_ calgrid.Font            = (*Font)(nil)
	_ calgrid.BaselineMetrics = (*Font)(nil)
)

// Font adapts a tinyfont bitmap font to calgrid.Font.
type Font struct {
	name   string
	fonter tinyfont.Fonter

	ascent  float64
	descent float64
	hasBox  bool
}

// NewFont wraps f. name distinguishes fonts in width caches.
func NewFont(name string, f tinyfont.Fonter) *Font {
	font := &Font{name: name, fonter: f}
	font.measure()
	return font
}

// measure derives ascent and descent from the glyph boxes of printable
// ASCII. YOffset is the top of a glyph relative to the baseline.
func (f *Font) measure() {
	top, bottom := 0, 0
	for r := rune(0x21); r <= 0x7E; r++ {
		info := f.fonter.GetGlyph(r).Info()
		if info.Height == 0 {
			continue
		}
		y0 := int(info.YOffset)
		y1 := y0 + int(info.Height)
		if !f.hasBox || y0 < top {
			top = y0
		}
		if !f.hasBox || y1 > bottom {
			bottom = y1
		}
		f.hasBox = true
	}
	if top >= 0 {
		f.hasBox = false
		return
	}
	f.ascent = float64(top)
	f.descent = float64(max(bottom, 0))
}

// BaselineMetrics implements calgrid.BaselineMetrics from the glyph boxes.
// ok is false for fonts whose glyphs carry no box data.
func (f *Font) BaselineMetrics() (ascent, descent float64, ok bool) {
	return f.ascent, f.descent, f.hasBox
}

// ID implements calgrid.Font.
func (f *Font) ID() string {
	return fmt.Sprintf("tinyfont:%s@%d", f.name, f.fonter.GetYAdvance())
}

// Size returns the line advance, the closest thing a bitmap font has to
// a pixel size.
func (f *Font) Size() float64 {
	return float64(f.fonter.GetYAdvance())
}

// Advance implements calgrid.Font with the outbox width of s.
func (f *Font) Advance(s string) float64 {
	if s == "" {
		return 0
	}
	_, outbox := tinyfont.LineWidth(f.fonter, s)
	return float64(outbox)
}

// Fonter returns the wrapped font.
func (f *Font) Fonter() tinyfont.Fonter { return f.fonter }
