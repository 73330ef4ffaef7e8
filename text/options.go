package text

// SourceOption configures FontSource creation.
type SourceOption func(*sourceConfig)

type sourceConfig struct {
	parserName string
}

func defaultSourceConfig() sourceConfig {
	return sourceConfig{parserName: defaultParserName}
}

// WithParser selects a parser registered with RegisterParser.
// Unknown names fall back to the default "ximage" parser.
func WithParser(name string) SourceOption {
	return func(c *sourceConfig) {
		c.parserName = name
	}
}

// FaceOption configures Face creation.
type FaceOption func(*faceConfig)

type faceConfig struct {
	hinting Hinting
	shaper  Shaper
}

func defaultFaceConfig() faceConfig {
	return faceConfig{hinting: HintingFull}
}

// WithHinting sets the hinting mode used for measuring and drawing.
func WithHinting(h Hinting) FaceOption {
	return func(c *faceConfig) {
		c.hinting = h
	}
}

// WithShaper measures advances with s instead of summing per-glyph
// advances and kerning pairs.
func WithShaper(s Shaper) FaceOption {
	return func(c *faceConfig) {
		c.shaper = s
	}
}
