package calgrid

import (
	"errors"
	"fmt"
)

// Sentinel errors for the calgrid package.
var (
	// ErrInvalidMonth is matched by every InvalidMonthError.
	ErrInvalidMonth = errors.New("calgrid: invalid month")

	// ErrInvalidDate is returned when a date string or day number cannot be
	// interpreted.
	ErrInvalidDate = errors.New("calgrid: invalid date")

	// ErrFontUnavailable is returned when rendering is attempted before the
	// day or mark font has been supplied.
	ErrFontUnavailable = errors.New("calgrid: font not available")

	// ErrLayoutMismatch is returned when a GridLayout was computed for a
	// different row count than the month being rendered.
	ErrLayoutMismatch = errors.New("calgrid: layout row count does not match month")

	// ErrInvalidBounds is returned when a navigator minimum is after its maximum.
	ErrInvalidBounds = errors.New("calgrid: navigator minimum is after maximum")
)

// InvalidMonthError reports a month number outside 1..12.
type InvalidMonthError struct {
	Year  int
	Month int
}

func (e *InvalidMonthError) Error() string {
	return fmt.Sprintf("calgrid: invalid month %04d-%02d (month must be 1..12)", e.Year, e.Month)
}

// Is reports whether target is ErrInvalidMonth.
func (e *InvalidMonthError) Is(target error) bool {
	return target == ErrInvalidMonth
}
