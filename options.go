package calgrid

import "time"

// Option configures a Grid during creation.
//
// Example:
//
//	g := calgrid.NewGrid(
//	    calgrid.WithWeekStart(time.Monday),
//	    calgrid.WithTrailingSpacing(calgrid.SpacingPadding),
//	)
type Option func(*gridOptions)

type gridOptions struct {
	weekStart time.Weekday
	palette   Palette
	constants LayoutConstants
	spacing   TrailingSpacing
	widths    *TextMetricsCache
}

func defaultGridOptions() gridOptions {
	return gridOptions{
		weekStart: time.Sunday,
		palette:   DefaultPalette(),
		constants: DefaultLayoutConstants(),
		spacing:   SpacingGap,
	}
}

// WithWeekStart sets the weekday shown in the first column. Default Sunday.
func WithWeekStart(d time.Weekday) Option {
	return func(o *gridOptions) {
		o.weekStart = d
	}
}

// WithPalette sets the colors of the emitted instructions.
func WithPalette(p Palette) Option {
	return func(o *gridOptions) {
		o.palette = p
	}
}

// WithLayoutConstants overrides the fixed pixel dimensions.
func WithLayoutConstants(c LayoutConstants) Option {
	return func(o *gridOptions) {
		o.constants = c
	}
}

// WithTrailingSpacing selects the total-height policy. Default SpacingGap.
func WithTrailingSpacing(s TrailingSpacing) Option {
	return func(o *gridOptions) {
		o.spacing = s
	}
}

// WithTextMetricsCache shares a width cache between grids, for example
// when several months are rendered concurrently with the same font.
func WithTextMetricsCache(c *TextMetricsCache) Option {
	return func(o *gridOptions) {
		o.widths = c
	}
}
