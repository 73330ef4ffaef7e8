package calgrid

import "time"

// Direction is a navigation step.
type Direction int

const (
	MonthBack Direction = iota
	MonthForward
	YearBack
	YearForward
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case MonthBack:
		return "month-back"
	case MonthForward:
		return "month-forward"
	case YearBack:
		return "year-back"
	case YearForward:
		return "year-forward"
	default:
		return "unknown"
	}
}

// DefaultMinMonth is the earliest month reachable by DefaultNavigator.
var DefaultMinMonth = Month{year: 1975, month: time.January}

// Navigator steps between months inside [min, max]. Steps that would
// cross a bound clamp to it; they never fail. Compare the month before and
// after a step to learn whether a bound was hit.
type Navigator struct {
	min, max Month
}

// NewNavigator returns a Navigator bounded by min and max (inclusive).
func NewNavigator(min, max Month) (Navigator, error) {
	if err := min.validate(); err != nil {
		return Navigator{}, err
	}
	if err := max.validate(); err != nil {
		return Navigator{}, err
	}
	if min.After(max) {
		return Navigator{}, ErrInvalidBounds
	}
	return Navigator{min: min, max: max}, nil
}

// DefaultNavigator bounds navigation to DefaultMinMonth .. the month of now.
func DefaultNavigator(now time.Time) Navigator {
	max := MonthOf(now)
	if max.Before(DefaultMinMonth) {
		max = DefaultMinMonth
	}
	return Navigator{min: DefaultMinMonth, max: max}
}

// Bounds returns the inclusive navigation range.
func (n Navigator) Bounds() (min, max Month) {
	return n.min, n.max
}

// Clamp returns m limited to the navigation range.
func (n Navigator) Clamp(m Month) Month {
	switch {
	case m.Before(n.min):
		return n.min
	case m.After(n.max):
		return n.max
	default:
		return m
	}
}

// Step moves m one month or one year in direction d and clamps the result.
func (n Navigator) Step(m Month, d Direction) Month {
	var next Month
	switch d {
	case MonthBack:
		next = m.AddMonths(-1)
	case MonthForward:
		next = m.AddMonths(1)
	case YearBack:
		next = m.AddYears(-1)
	case YearForward:
		next = m.AddYears(1)
	default:
		next = m
	}
	return n.Clamp(next)
}

// CanStep reports whether Step(m, d) would return a different month.
// UI layers use it to disable navigation controls.
func (n Navigator) CanStep(m Month, d Direction) bool {
	return n.Step(m, d) != m
}
