package text

import (
	"bytes"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
)

// Shaper measures shaped text.
type Shaper interface {
	// Advance returns the shaped advance of s in face f, in pixels.
	Advance(s string, f *Face) float64
}

// GoTextShaper measures text with the HarfBuzz port of go-text/typesetting,
// so ligatures, kerning and complex scripts affect the advance.
//
// GoTextShaper is safe for concurrent use. Parsed fonts are cached per
// FontSource; faces and HarfBuzz shapers are not concurrent-safe, so each
// call gets its own face and a pooled shaper.
type GoTextShaper struct {
	pool sync.Pool

	mu    sync.RWMutex
	fonts map[*FontSource]*font.Font
}

// NewGoTextShaper creates a GoTextShaper.
func NewGoTextShaper() *GoTextShaper {
	return &GoTextShaper{
		pool: sync.Pool{
			New: func() any { return &shaping.HarfbuzzShaper{} },
		},
		fonts: make(map[*FontSource]*font.Font),
	}
}

// Advance implements Shaper. Text the shaper cannot handle (a closed or
// unparsable source) measures zero.
func (s *GoTextShaper) Advance(text string, f *Face) float64 {
	if text == "" || f == nil {
		return 0
	}
	gf, err := s.font(f.source)
	if err != nil {
		return 0
	}

	runes := []rune(text)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      font.NewFace(gf),
		Size:      toFixed(f.size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := s.pool.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	s.pool.Put(hb)
	return fromFixed(out.Advance)
}

func (s *GoTextShaper) font(source *FontSource) (*font.Font, error) {
	s.mu.RLock()
	if f, ok := s.fonts[source]; ok {
		s.mu.RUnlock()
		return f, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if f, ok := s.fonts[source]; ok {
		return f, nil
	}
	data := source.bytes()
	if data == nil {
		return nil, ErrSourceClosed
	}
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	s.fonts[source] = face.Font
	return face.Font, nil
}

// Forget drops the cached parse of source; call it after closing source.
func (s *GoTextShaper) Forget(source *FontSource) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.fonts, source)
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		switch r {
		case ' ', '\t', '\n', '\r':
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
