package calgrid

import "unicode/utf8"

// fakeFont measures every rune as perRune pixels and counts Advance calls
// unless calls is nil.
type fakeFont struct {
	id      string
	size    float64
	perRune float64
	ascent  float64
	descent float64
	real    bool
	calls   *int
}

func newFakeFont(id string, size float64) *fakeFont {
	return &fakeFont{
		id:      id,
		size:    size,
		perRune: size / 2,
		ascent:  -0.75 * size,
		descent: 0.25 * size,
		real:    true,
		calls:   new(int),
	}
}

func (f *fakeFont) ID() string    { return f.id }
func (f *fakeFont) Size() float64 { return f.size }
func (f *fakeFont) Advance(s string) float64 {
	if f.calls != nil {
		*f.calls++
	}
	return f.perRune * float64(utf8.RuneCountInString(s))
}

func (f *fakeFont) BaselineMetrics() (ascent, descent float64, ok bool) {
	return f.ascent, f.descent, f.real
}

func countCircles(ops []DrawInstruction) int {
	n := 0
	for _, op := range ops {
		if _, ok := op.(Circle); ok {
			n++
		}
	}
	return n
}

func texts(ops []DrawInstruction) []Text {
	var out []Text
	for _, op := range ops {
		if t, ok := op.(Text); ok {
			out = append(out, t)
		}
	}
	return out
}
