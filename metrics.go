package calgrid

// Font is the font-metrics provider contract used for layout.
// Implementations live next to the drawing surfaces (see the text and
// tinysurface packages).
type Font interface {
	// ID identifies the font and size. Width caches are keyed by it.
	ID() string

	// Size returns the nominal font size in pixels. It drives FallbackMetrics.
	Size() float64

	// Advance returns the horizontal advance of s in pixels.
	Advance(s string) float64
}

// BaselineMetrics is implemented by fonts that can report real vertical
// metrics. Ascent is negative (above the baseline) and descent positive.
// ok is false when the metrics are not available yet.
type BaselineMetrics interface {
	BaselineMetrics() (ascent, descent float64, ok bool)
}

// VerticalMetrics are signed font metrics: Ascent is negative above the
// baseline, Descent positive below it.
type VerticalMetrics struct {
	Ascent  float64
	Descent float64
}

// BaselineOffset returns the distance from a vertical center to the
// baseline that centers the glyph box on it.
func (m VerticalMetrics) BaselineOffset() float64 {
	return -(m.Ascent + m.Descent) / 2
}

// FallbackMetrics approximates metrics from the font size alone:
// ascent = -0.8*size, descent = 0.2*size.
func FallbackMetrics(size float64) VerticalMetrics {
	return VerticalMetrics{Ascent: -0.8 * size, Descent: 0.2 * size}
}

// ResolveMetrics returns real metrics when f implements BaselineMetrics and
// can supply them, and FallbackMetrics otherwise. The second result reports
// whether the metrics are real.
func ResolveMetrics(f Font) (VerticalMetrics, bool) {
	if bm, ok := f.(BaselineMetrics); ok {
		if ascent, descent, ok := bm.BaselineMetrics(); ok {
			return VerticalMetrics{Ascent: ascent, Descent: descent}, true
		}
	}
	Logger().Debug("calgrid: using fallback font metrics", "font", f.ID(), "size", f.Size())
	return FallbackMetrics(f.Size()), false
}
