package text

import (
	"fmt"

	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// ximageParser implements FontParser with golang.org/x/image/font/opentype.
type ximageParser struct{}

func (ximageParser) Parse(data []byte) (ParsedFont, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: parse font: %w", err)
	}
	return &ximageFont{font: f}, nil
}

// ximageFont implements ParsedFont. sfnt.Font is safe for concurrent use
// as long as every call gets its own sfnt.Buffer.
type ximageFont struct {
	font *opentype.Font
}

func (f *ximageFont) Name() string {
	name, err := f.font.Name(nil, sfnt.NameIDFamily)
	if err != nil {
		return ""
	}
	return name
}

func (f *ximageFont) FullName() string {
	name, err := f.font.Name(nil, sfnt.NameIDFull)
	if err != nil {
		return ""
	}
	return name
}

func (f *ximageFont) GlyphIndex(r rune) uint16 {
	idx, err := f.font.GlyphIndex(nil, r)
	if err != nil {
		return 0
	}
	return uint16(idx)
}

func (f *ximageFont) GlyphAdvance(glyph uint16, ppem float64, h Hinting) float64 {
	var buf sfnt.Buffer
	adv, err := f.font.GlyphAdvance(&buf, sfnt.GlyphIndex(glyph), toFixed(ppem), h.font())
	if err != nil {
		return 0
	}
	return fromFixed(adv)
}

func (f *ximageFont) Kern(a, b uint16, ppem float64, h Hinting) float64 {
	var buf sfnt.Buffer
	k, err := f.font.Kern(&buf, sfnt.GlyphIndex(a), sfnt.GlyphIndex(b), toFixed(ppem), h.font())
	if err != nil {
		// ErrNotFound: the font has no kern table or no pair.
		return 0
	}
	return fromFixed(k)
}

func (f *ximageFont) Metrics(ppem float64, h Hinting) Metrics {
	var buf sfnt.Buffer
	m, err := f.font.Metrics(&buf, toFixed(ppem), h.font())
	if err != nil {
		return Metrics{}
	}
	ascent, descent := fromFixed(m.Ascent), fromFixed(m.Descent)
	if descent < 0 {
		descent = -descent
	}
	return Metrics{
		Ascent:    ascent,
		Descent:   descent,
		LineGap:   fromFixed(m.Height) - ascent - descent,
		XHeight:   fromFixed(m.XHeight),
		CapHeight: fromFixed(m.CapHeight),
	}
}

func (f *ximageFont) Opentype() *opentype.Font { return f.font }

func toFixed(v float64) fixed.Int26_6 { return fixed.Int26_6(v * 64) }

func fromFixed(v fixed.Int26_6) float64 { return float64(v) / 64 }
