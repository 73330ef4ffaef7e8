package text

import (
	"github.com/gogpu/calgrid"
)

var (
	_ calgrid.Font            = (*Face)(nil)
	_ calgrid.BaselineMetrics = (*Face)(nil)
)

// Face is a font at one pixel size. It is a lightweight value that shares
// the parsed font of its FontSource.
//
// Face is safe for concurrent use.
type Face struct {
	source *FontSource
	size   float64
	config faceConfig
	id     string
}

// ID identifies the font, size and hinting. Width caches key on it.
func (f *Face) ID() string { return f.id }

// Size returns the size in pixels.
func (f *Face) Size() float64 { return f.size }

// Source returns the FontSource this face was created from.
func (f *Face) Source() *FontSource { return f.source }

// Hinting returns the hinting mode.
func (f *Face) Hinting() Hinting { return f.config.hinting }

// Metrics returns the font metrics at this face's size.
func (f *Face) Metrics() Metrics {
	parsed := f.source.Parsed()
	if parsed == nil {
		return Metrics{}
	}
	return parsed.Metrics(f.size, f.config.hinting)
}

// BaselineMetrics reports the ascent (negative, above the baseline) and
// descent (positive) for baseline placement. ok is false when the font
// has been closed or carries no vertical metrics.
func (f *Face) BaselineMetrics() (ascent, descent float64, ok bool) {
	m := f.Metrics()
	if m.Ascent <= 0 {
		return 0, 0, false
	}
	return -m.Ascent, m.Descent, true
}

// Advance returns the advance width of s in pixels.
func (f *Face) Advance(s string) float64 {
	if s == "" {
		return 0
	}
	if f.config.shaper != nil {
		return f.config.shaper.Advance(s, f)
	}
	parsed := f.source.Parsed()
	if parsed == nil {
		return 0
	}

	total := 0.0
	prev, first := uint16(0), true
	for _, r := range s {
		gid := parsed.GlyphIndex(r)
		if !first {
			total += parsed.Kern(prev, gid, f.size, f.config.hinting)
		}
		total += parsed.GlyphAdvance(gid, f.size, f.config.hinting)
		prev, first = gid, false
	}
	return total
}

// HasGlyph reports whether the font has a glyph for r.
func (f *Face) HasGlyph(r rune) bool {
	parsed := f.source.Parsed()
	return parsed != nil && parsed.GlyphIndex(r) != 0
}
