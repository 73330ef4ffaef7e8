package text

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/image/font/gofont/goregular"
)

// FontSource is a loaded font file. One FontSource creates any number of
// Faces at different sizes and should be shared across the application.
//
// FontSource is safe for concurrent use. It must not be copied after
// creation.
type FontSource struct {
	// addr points to the FontSource itself for copy detection.
	addr *FontSource

	mu     sync.RWMutex
	data   []byte
	parsed ParsedFont
	name   string
}

// NewFontSource creates a FontSource from font data (TTF or OTF).
// The data slice is copied and can be reused after this call.
func NewFontSource(data []byte, opts ...SourceOption) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	config := defaultSourceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	parsed, err := getParser(config.parserName).Parse(data)
	if err != nil {
		return nil, err
	}

	s := &FontSource{
		data:   append([]byte(nil), data...),
		parsed: parsed,
		name:   fontName(parsed),
	}
	s.addr = s
	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string, opts ...SourceOption) (*FontSource, error) {
	// #nosec G304 -- font path comes from user configuration
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: read font file: %w", err)
	}
	return NewFontSource(data, opts...)
}

var (
	defaultOnce   sync.Once
	defaultSource *FontSource
	defaultErr    error
)

// Default returns the bundled Go Regular font. It is parsed once.
func Default() (*FontSource, error) {
	defaultOnce.Do(func() {
		defaultSource, defaultErr = NewFontSource(goregular.TTF)
	})
	return defaultSource, defaultErr
}

// Face creates a Face at size pixels.
// It panics if s is nil (e.g. when an error from NewFontSourceFromFile was
// ignored).
func (s *FontSource) Face(size float64, opts ...FaceOption) *Face {
	if s == nil {
		panic("text: FontSource is nil; check the error from NewFontSource")
	}
	s.copyCheck()

	config := defaultFaceConfig()
	for _, opt := range opts {
		opt(&config)
	}
	return &Face{
		source: s,
		size:   size,
		config: config,
		id:     fmt.Sprintf("%s@%g/%s", s.name, size, config.hinting),
	}
}

// Name returns the full font name.
func (s *FontSource) Name() string {
	s.copyCheck()
	return s.name
}

// Parsed returns the parsed font, or nil after Close.
func (s *FontSource) Parsed() ParsedFont {
	s.copyCheck()
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.parsed
}

// bytes returns the raw font data, or nil after Close.
func (s *FontSource) bytes() []byte {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data
}

// Close releases the font data. Faces created from s measure zero and
// draw nothing afterwards.
func (s *FontSource) Close() error {
	s.copyCheck()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = nil
	s.parsed = nil
	return nil
}

// copyCheck panics if FontSource was copied by value.
func (s *FontSource) copyCheck() {
	if s.addr != s {
		panic("text: FontSource must not be copied by value")
	}
}

// fontName prefers the full name so that faces of one family
// ("Go Regular", "Go Bold") get distinct identities.
func fontName(parsed ParsedFont) string {
	if name := parsed.FullName(); name != "" {
		return name
	}
	if name := parsed.Name(); name != "" {
		return name
	}
	return "Unknown Font"
}
