package calgrid

import (
	"errors"
	"testing"
	"time"
)

func TestNewMonthRejectsOutOfRange(t *testing.T) {
	for _, mo := range []int{0, 13, -1, 100} {
		_, err := NewMonth(2024, mo)
		if !errors.Is(err, ErrInvalidMonth) {
			t.Errorf("NewMonth(2024, %d) error = %v, want ErrInvalidMonth", mo, err)
		}
		var ime *InvalidMonthError
		if !errors.As(err, &ime) || ime.Month != mo {
			t.Errorf("NewMonth(2024, %d) error not an *InvalidMonthError with month %d", mo, mo)
		}
	}
}

func TestParseMonth(t *testing.T) {
	tests := []struct {
		in      string
		want    Month
		wantErr bool
	}{
		{"2024-02", MustMonth(2024, 2), false},
		{"2024-02-14", MustMonth(2024, 2), false},
		{" 1975-01 ", MustMonth(1975, 1), false},
		{"2024-13", Month{}, true},
		{"february", Month{}, true},
	}
	for _, tt := range tests {
		got, err := ParseMonth(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseMonth(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseMonth(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := ParseMonth("2024-13"); !errors.Is(err, ErrInvalidMonth) {
		t.Errorf("ParseMonth(2024-13) error = %v, want ErrInvalidMonth", err)
	}
}

func TestMonthArithmeticAcrossYears(t *testing.T) {
	tests := []struct {
		from Month
		n    int
		want Month
	}{
		{MustMonth(2023, 12), 1, MustMonth(2024, 1)},
		{MustMonth(2024, 1), -1, MustMonth(2023, 12)},
		{MustMonth(2024, 3), -15, MustMonth(2022, 12)},
		{MustMonth(2024, 3), 22, MustMonth(2026, 1)},
		{MustMonth(0, 1), -1, MustMonth(-1, 12)},
	}
	for _, tt := range tests {
		if got := tt.from.AddMonths(tt.n); got != tt.want {
			t.Errorf("%v.AddMonths(%d) = %v, want %v", tt.from, tt.n, got, tt.want)
		}
	}
	if got := MustMonth(2024, 2).AddYears(-49); got != MustMonth(1975, 2) {
		t.Errorf("AddYears(-49) = %v", got)
	}
}

func TestMonthDays(t *testing.T) {
	tests := []struct {
		m    Month
		want int
	}{
		{MustMonth(2024, 2), 29},
		{MustMonth(2023, 2), 28},
		{MustMonth(1900, 2), 28},
		{MustMonth(2000, 2), 29},
		{MustMonth(2024, 4), 30},
		{MustMonth(2024, 12), 31},
	}
	for _, tt := range tests {
		if got := tt.m.Days(); got != tt.want {
			t.Errorf("%v.Days() = %d, want %d", tt.m, got, tt.want)
		}
	}
}

func TestMonthStartWeekday(t *testing.T) {
	feb := MustMonth(2024, 2) // 2024-02-01 is a Thursday
	if got := feb.StartWeekday(time.Sunday); got != 4 {
		t.Errorf("StartWeekday(Sunday) = %d, want 4", got)
	}
	if got := feb.StartWeekday(time.Monday); got != 3 {
		t.Errorf("StartWeekday(Monday) = %d, want 3", got)
	}
	if got := feb.StartWeekday(time.Thursday); got != 0 {
		t.Errorf("StartWeekday(Thursday) = %d, want 0", got)
	}
}

func TestMonthCompare(t *testing.T) {
	a, b := MustMonth(2023, 12), MustMonth(2024, 1)
	if !a.Before(b) || !b.After(a) || a.Compare(a) != 0 {
		t.Errorf("ordering of %v and %v is wrong", a, b)
	}
	if a.String() != "2023-12" {
		t.Errorf("String() = %q", a.String())
	}
}

func TestDateKeyAndParse(t *testing.T) {
	d, err := ParseDate("2024-02-09")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if d.Key() != "2024-02-09" {
		t.Errorf("Key() = %q", d.Key())
	}
	if d.MonthOf() != MustMonth(2024, 2) {
		t.Errorf("MonthOf() = %v", d.MonthOf())
	}
	if _, err := ParseDate("2024-02-30"); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("ParseDate(2024-02-30) error = %v, want ErrInvalidDate", err)
	}
	if !MustMonth(2024, 2).Contains(d) || MustMonth(2024, 3).Contains(d) {
		t.Error("Contains is wrong")
	}
}
