package calgrid

import (
	"fmt"
	"strings"
	"time"
)

// Month identifies a calendar month. It is an immutable value: every
// derived operation returns a new Month.
//
// The zero Month is invalid; build one with NewMonth, MonthOf or ParseMonth.
type Month struct {
	year  int
	month time.Month
}

// NewMonth returns the Month for year and month (1..12).
// Months outside 1..12 fail with an *InvalidMonthError; they never wrap.
func NewMonth(year, month int) (Month, error) {
	if month < 1 || month > 12 {
		return Month{}, &InvalidMonthError{Year: year, Month: month}
	}
	return Month{year: year, month: time.Month(month)}, nil
}

// MustMonth is like NewMonth but panics on an invalid month.
// It is intended for constants and tests.
func MustMonth(year, month int) Month {
	m, err := NewMonth(year, month)
	if err != nil {
		panic(err)
	}
	return m
}

// MonthOf returns the month containing t, in t's location.
func MonthOf(t time.Time) Month {
	return Month{year: t.Year(), month: t.Month()}
}

// ParseMonth parses "YYYY-MM" or "YYYY-MM-DD" (the day is ignored).
func ParseMonth(s string) (Month, error) {
	s = strings.TrimSpace(s)
	layout := "2006-01"
	if len(s) == len("2006-01-02") {
		layout = "2006-01-02"
	}
	t, err := time.Parse(layout, s)
	if err != nil {
		var year, month int
		// time.Parse rejects 2024-13 with a generic message; surface the
		// month number instead when the shape is right.
		if n, scanErr := fmt.Sscanf(s, "%d-%d", &year, &month); scanErr == nil && n == 2 {
			if _, mErr := NewMonth(year, month); mErr != nil {
				return Month{}, mErr
			}
		}
		return Month{}, fmt.Errorf("calgrid: parse month %q: %w", s, err)
	}
	return MonthOf(t), nil
}

// Year returns the calendar year.
func (m Month) Year() int { return m.year }

// Month returns the month of the year.
func (m Month) Month() time.Month { return m.month }

// IsZero reports whether m is the zero (invalid) Month.
func (m Month) IsZero() bool { return m.month == 0 }

// Valid reports whether m holds a month in 1..12.
func (m Month) Valid() bool { return m.month >= time.January && m.month <= time.December }

func (m Month) validate() error {
	if !m.Valid() {
		return &InvalidMonthError{Year: m.year, Month: int(m.month)}
	}
	return nil
}

// index is the number of months since year 0; used for arithmetic and ordering.
func (m Month) index() int {
	return m.year*12 + int(m.month) - 1
}

func monthFromIndex(i int) Month {
	y := i / 12
	r := i % 12
	if r < 0 {
		r += 12
		y--
	}
	return Month{year: y, month: time.Month(r + 1)}
}

// AddMonths returns m shifted by n months. Year boundaries are handled in
// both directions.
func (m Month) AddMonths(n int) Month {
	return monthFromIndex(m.index() + n)
}

// AddYears returns m shifted by n years.
func (m Month) AddYears(n int) Month {
	return Month{year: m.year + n, month: m.month}
}

// Prev returns the previous month.
func (m Month) Prev() Month { return m.AddMonths(-1) }

// Next returns the following month.
func (m Month) Next() Month { return m.AddMonths(1) }

// Start returns midnight UTC on the first day of m.
func (m Month) Start() time.Time {
	return time.Date(m.year, m.month, 1, 0, 0, 0, 0, time.UTC)
}

// Days returns the number of days in m.
func (m Month) Days() int {
	// Day 0 of the following month normalizes to the last day of m.
	return time.Date(m.year, m.month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// StartWeekday returns the column (0..6) of the first day of m in a week
// that starts on weekStart.
func (m Month) StartWeekday(weekStart time.Weekday) int {
	wd := int(m.Start().Weekday()) - int(weekStart)
	if wd < 0 {
		wd += 7
	}
	return wd
}

// Compare returns -1, 0 or +1 depending on whether m is before, equal to or
// after o.
func (m Month) Compare(o Month) int {
	a, b := m.index(), o.index()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Before reports whether m is before o.
func (m Month) Before(o Month) bool { return m.Compare(o) < 0 }

// After reports whether m is after o.
func (m Month) After(o Month) bool { return m.Compare(o) > 0 }

// Date returns day within m. The day is not validated; see Contains.
func (m Month) Date(day int) Date {
	return Date{Year: m.year, Month: m.month, Day: day}
}

// Contains reports whether d falls in m.
func (m Month) Contains(d Date) bool {
	return d.Year == m.year && d.Month == m.month && d.Day >= 1 && d.Day <= m.Days()
}

// String formats m as "YYYY-MM".
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.year, int(m.month))
}

// Date is a calendar date without time or location.
// The zero Date means "no date".
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the date of t in t's location.
func DateOf(t time.Time) Date {
	y, mo, d := t.Date()
	return Date{Year: y, Month: mo, Day: d}
}

// ParseDate parses an ISO "YYYY-MM-DD" date.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(time.DateOnly, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return DateOf(t), nil
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool { return d == Date{} }

// MonthOf returns the month containing d.
func (d Date) MonthOf() Month { return Month{year: d.Year, month: d.Month} }

// Key returns the ISO "YYYY-MM-DD" form used to look up annotations.
func (d Date) Key() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// String implements fmt.Stringer.
func (d Date) String() string { return d.Key() }
