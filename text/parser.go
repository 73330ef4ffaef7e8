package text

import (
	"sync"

	"golang.org/x/image/font/opentype"
)

// FontParser is a font parsing backend.
//
// The default implementation uses golang.org/x/image/font/opentype.
type FontParser interface {
	// Parse parses font data (TTF or OTF).
	Parse(data []byte) (ParsedFont, error)
}

// ParsedFont is a parsed font file. Sizes are pixels per em.
type ParsedFont interface {
	// Name returns the family name, or "".
	Name() string
	// FullName returns the full font name ("Go Bold"), or "".
	FullName() string
	// GlyphIndex returns the glyph for r, or 0 when the font lacks it.
	GlyphIndex(r rune) uint16
	// GlyphAdvance returns the advance of a glyph.
	GlyphAdvance(glyph uint16, ppem float64, h Hinting) float64
	// Kern returns the horizontal kerning adjustment between two glyphs.
	Kern(a, b uint16, ppem float64, h Hinting) float64
	// Metrics returns the font metrics.
	Metrics(ppem float64, h Hinting) Metrics
	// Opentype returns the underlying font for rasterization, or nil when
	// the backend cannot draw.
	Opentype() *opentype.Font
}

// defaultParserName is the name of the default parser.
const defaultParserName = "ximage"

var (
	parsersMu sync.RWMutex
	parsers   = map[string]FontParser{
		defaultParserName: ximageParser{},
	}
)

// RegisterParser registers a font parser under name.
func RegisterParser(name string, p FontParser) {
	parsersMu.Lock()
	defer parsersMu.Unlock()
	parsers[name] = p
}

// getParser returns the parser by name, or the default if not found.
func getParser(name string) FontParser {
	parsersMu.RLock()
	defer parsersMu.RUnlock()
	if p, ok := parsers[name]; ok {
		return p
	}
	return parsers[defaultParserName]
}
