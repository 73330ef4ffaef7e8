package calgrid

import (
	"strconv"
	"sync"

	"github.com/gogpu/calgrid/cache"
)

// maxDay is the largest day number that can appear in a cell.
const maxDay = 31

// widthKey identifies a cached width by font identity and text.
type widthKey struct {
	font string
	text string
}

// TextMetricsCache memoizes the widths of the day-number strings "1".."31"
// for the active font.
//
// The cache is filled eagerly when the font changes and dropped wholesale
// on the next font change, so it is never partially stale. Any other string
// (annotation text) is measured live and not cached: that vocabulary is
// unbounded.
//
// TextMetricsCache is safe for concurrent use.
type TextMetricsCache struct {
	mu     sync.Mutex
	widths *cache.Cache[widthKey, float64]
	active string
}

// NewTextMetricsCache returns an empty cache with no active font.
func NewTextMetricsCache() *TextMetricsCache {
	return &TextMetricsCache{
		widths: cache.New[widthKey, float64](0),
	}
}

// SetFont makes f the active font. When f differs from the active font,
// every cached width is dropped and the day numbers are measured again.
func (c *TextMetricsCache) SetFont(f Font) {
	if f == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setFontLocked(f)
}

func (c *TextMetricsCache) setFontLocked(f Font) {
	id := f.ID()
	if id == c.active && c.widths.Len() > 0 {
		return
	}
	gen := c.widths.Reset()
	c.active = id
	for d := 1; d <= maxDay; d++ {
		s := strconv.Itoa(d)
		c.widths.GetOrCreate(widthKey{font: id, text: s}, func() float64 { return f.Advance(s) })
	}
	Logger().Debug("calgrid: text metrics cache populated", "font", id, "generation", gen)
}

// WidthOf returns the advance width of text in f. A font other than the
// active one is treated as a font swap.
func (c *TextMetricsCache) WidthOf(text string, f Font) float64 {
	if f == nil || text == "" {
		return 0
	}
	id := f.ID()
	c.mu.Lock()
	if id != c.active {
		c.setFontLocked(f)
	}
	c.mu.Unlock()
	if w, ok := c.widths.Get(widthKey{font: id, text: text}); ok {
		return w
	}
	return f.Advance(text)
}

// Active returns the identity of the active font, or "" before SetFont.
func (c *TextMetricsCache) Active() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

// Len returns the number of cached widths.
func (c *TextMetricsCache) Len() int {
	return c.widths.Len()
}

// Stats exposes the underlying cache counters.
func (c *TextMetricsCache) Stats() cache.Stats {
	return c.widths.Stats()
}
