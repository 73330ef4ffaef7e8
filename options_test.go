package calgrid

import (
	"image/color"
	"testing"
	"time"
)

// TestNewGridDefault tests that NewGrid uses the stock settings.
func TestNewGridDefault(t *testing.T) {
	g := NewGrid()
	if g == nil {
		t.Fatal("NewGrid returned nil")
	}
	if g.WeekStart() != time.Sunday {
		t.Errorf("WeekStart() = %v, want Sunday", g.WeekStart())
	}
	if g.Spacing() != SpacingGap {
		t.Errorf("Spacing() = %v, want gap", g.Spacing())
	}
	if g.Palette() != DefaultPalette() {
		t.Error("Palette() is not the default palette")
	}
	if g.Constants() != DefaultLayoutConstants() {
		t.Error("Constants() are not the default constants")
	}
	if g.Widths() == nil {
		t.Error("Widths() returned nil")
	}
}

// TestNewGridOptions tests that each option reaches the grid.
func TestNewGridOptions(t *testing.T) {
	pal := DefaultPalette()
	pal.Selected = color.RGBA{R: 0xFF, A: 0xFF}
	c := DefaultLayoutConstants()
	c.MaxGridWidth = 420

	g := NewGrid(
		WithWeekStart(time.Monday),
		WithPalette(pal),
		WithLayoutConstants(c),
		WithTrailingSpacing(SpacingPadding),
	)
	if g.WeekStart() != time.Monday {
		t.Errorf("WeekStart() = %v, want Monday", g.WeekStart())
	}
	if g.Palette().Selected != pal.Selected {
		t.Errorf("Palette().Selected = %v, want %v", g.Palette().Selected, pal.Selected)
	}
	if got := g.Layout(700, MustMonth(2024, 2)).Width(); got != 420 {
		t.Errorf("Layout width = %v, want 420", got)
	}
	if g.Spacing() != SpacingPadding {
		t.Errorf("Spacing() = %v, want padding", g.Spacing())
	}
}

// TestSharedTextMetricsCache tests that grids can share one width cache.
func TestSharedTextMetricsCache(t *testing.T) {
	shared := NewTextMetricsCache()
	a := NewGrid(WithTextMetricsCache(shared))
	b := NewGrid(WithTextMetricsCache(shared), WithWeekStart(time.Monday))
	if a.Widths() != shared || b.Widths() != shared {
		t.Fatal("grids did not adopt the shared cache")
	}

	f := newFakeFont("f@15", 15)
	a.Widths().WidthOf("12", f)
	if b.Widths().Len() != maxDay {
		t.Errorf("shared cache Len() = %d, want %d", b.Widths().Len(), maxDay)
	}
	if b.Widths().Active() != "f@15" {
		t.Errorf("shared cache Active() = %q, want f@15", b.Widths().Active())
	}
}
