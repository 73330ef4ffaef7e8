package text

import (
	"math"
	"sync"
	"testing"
)

func TestGoTextShaperAdvance(t *testing.T) {
	source := loadTestFont(t)
	shaper := NewGoTextShaper()
	plain := source.Face(15, WithHinting(HintingNone))
	shaped := source.Face(15, WithHinting(HintingNone), WithShaper(shaper))

	for _, s := range []string{"1", "29", "Holiday", "Dentist 9:30"} {
		want := plain.Advance(s)
		got := shaped.Advance(s)
		if math.Abs(got-want) > 1+0.05*want {
			t.Errorf("shaped Advance(%q) = %v, per-glyph %v", s, got, want)
		}
	}
	if shaped.Advance("") != 0 {
		t.Error("empty text has width")
	}
}

func TestGoTextShaperClosedSource(t *testing.T) {
	source := loadTestFont(t)
	shaper := NewGoTextShaper()
	face := source.Face(15, WithShaper(shaper))
	_ = source.Close()
	if face.Advance("12") != 0 {
		t.Error("closed source still shapes")
	}
}

func TestGoTextShaperConcurrent(t *testing.T) {
	face := loadTestFont(t).Face(12, WithShaper(NewGoTextShaper()))
	want := face.Advance("Holiday")

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 20 {
				if got := face.Advance("Holiday"); got != want {
					t.Errorf("Advance = %v, want %v", got, want)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestGoTextShaperForget(t *testing.T) {
	source := loadTestFont(t)
	shaper := NewGoTextShaper()
	face := source.Face(15, WithShaper(shaper))
	face.Advance("1")
	shaper.Forget(source)
	shaper.mu.RLock()
	n := len(shaper.fonts)
	shaper.mu.RUnlock()
	if n != 0 {
		t.Errorf("cache has %d fonts after Forget", n)
	}
}
