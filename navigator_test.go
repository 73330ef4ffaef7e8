package calgrid

import (
	"errors"
	"testing"
	"time"
)

func testNavigator(t *testing.T) Navigator {
	t.Helper()
	nav, err := NewNavigator(DefaultMinMonth, MustMonth(2026, 10))
	if err != nil {
		t.Fatalf("NewNavigator: %v", err)
	}
	return nav
}

func TestNavigatorStep(t *testing.T) {
	nav := testNavigator(t)
	tests := []struct {
		from    Month
		d       Direction
		want    Month
		changed bool
	}{
		{MustMonth(2024, 12), MonthForward, MustMonth(2025, 1), true},
		{MustMonth(2024, 1), MonthBack, MustMonth(2023, 12), true},
		{MustMonth(2024, 2), YearBack, MustMonth(2023, 2), true},
		{MustMonth(2024, 2), YearForward, MustMonth(2025, 2), true},
		{MustMonth(1975, 1), YearBack, MustMonth(1975, 1), false},
		{MustMonth(1975, 1), MonthBack, MustMonth(1975, 1), false},
		{MustMonth(1975, 6), YearBack, MustMonth(1975, 1), true},
		{MustMonth(2026, 3), YearForward, MustMonth(2026, 10), true},
		{MustMonth(2026, 10), MonthForward, MustMonth(2026, 10), false},
		{MustMonth(2026, 10), YearForward, MustMonth(2026, 10), false},
	}
	for _, tt := range tests {
		t.Run(tt.from.String()+"/"+tt.d.String(), func(t *testing.T) {
			if got := nav.Step(tt.from, tt.d); got != tt.want {
				t.Errorf("Step = %v, want %v", got, tt.want)
			}
			if got := nav.CanStep(tt.from, tt.d); got != tt.changed {
				t.Errorf("CanStep = %v, want %v", got, tt.changed)
			}
		})
	}
}

func TestNavigatorStaysInBounds(t *testing.T) {
	nav := testNavigator(t)
	lo, hi := nav.Bounds()
	m := MustMonth(2000, 6)
	dirs := []Direction{YearBack, MonthBack, YearForward, YearForward, MonthForward}
	for i := range 400 {
		m = nav.Step(m, dirs[i%len(dirs)])
		if m.Before(lo) || m.After(hi) {
			t.Fatalf("step %d left bounds: %v", i, m)
		}
	}
}

func TestNewNavigatorErrors(t *testing.T) {
	if _, err := NewNavigator(MustMonth(2024, 5), MustMonth(2024, 4)); !errors.Is(err, ErrInvalidBounds) {
		t.Errorf("inverted bounds error = %v, want ErrInvalidBounds", err)
	}
	if _, err := NewNavigator(Month{}, MustMonth(2024, 4)); !errors.Is(err, ErrInvalidMonth) {
		t.Errorf("zero min error = %v, want ErrInvalidMonth", err)
	}
}

func TestDefaultNavigator(t *testing.T) {
	nav := DefaultNavigator(time.Date(2026, time.October, 18, 9, 0, 0, 0, time.UTC))
	lo, hi := nav.Bounds()
	if lo != MustMonth(1975, 1) || hi != MustMonth(2026, 10) {
		t.Errorf("Bounds = %v..%v", lo, hi)
	}
	if got := nav.Clamp(MustMonth(1960, 3)); got != lo {
		t.Errorf("Clamp(1960-03) = %v", got)
	}

	early := DefaultNavigator(time.Date(1970, time.May, 1, 0, 0, 0, 0, time.UTC))
	if lo, hi := early.Bounds(); lo != hi {
		t.Errorf("clock before the minimum should collapse the range, got %v..%v", lo, hi)
	}
}
