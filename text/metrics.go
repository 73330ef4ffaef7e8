package text

// Metrics holds font metrics scaled to a face size. All values are
// positive distances in pixels.
type Metrics struct {
	// Ascent is the distance from the baseline to the top of the font.
	Ascent float64
	// Descent is the distance from the baseline to the bottom of the font.
	Descent float64
	// LineGap is the recommended gap between lines.
	LineGap float64
	// XHeight is the height of lowercase letters.
	XHeight float64
	// CapHeight is the height of uppercase letters.
	CapHeight float64
}

// LineHeight returns ascent + descent + line gap.
func (m Metrics) LineHeight() float64 {
	return m.Ascent + m.Descent + m.LineGap
}
