package config

import (
	"errors"
	"fmt"
	"image/color"
	"strings"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/gogpu/calgrid"
)

var (
	ErrBadWeekday  = errors.New("unknown weekday")
	ErrBadTrailing = errors.New("trailing must be \"gap\" or \"padding\"")
	ErrBadSize     = errors.New("size must be positive")
)

// Validate checks every field that can be checked without loading files.
func (c Config) Validate() error {
	var errs []error
	if c.Fonts.DaySize <= 0 {
		errs = append(errs, fmt.Errorf("fonts.day_size: %w", ErrBadSize))
	}
	if c.Fonts.MarkSize <= 0 {
		errs = append(errs, fmt.Errorf("fonts.mark_size: %w", ErrBadSize))
	}
	if c.Layout.ViewportWidth <= 0 {
		errs = append(errs, fmt.Errorf("layout.viewport_width: %w", ErrBadSize))
	}
	if c.Layout.CellHeight <= 0 {
		errs = append(errs, fmt.Errorf("layout.cell_height: %w", ErrBadSize))
	}
	if _, err := c.WeekStart(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.Spacing(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.CalendarPalette(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.Background(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// WeekStart parses layout.week_start ("sunday", "Mon", ...).
func (c Config) WeekStart() (time.Weekday, error) {
	name := strings.ToLower(strings.TrimSpace(c.Layout.WeekStart))
	for d := time.Sunday; d <= time.Saturday; d++ {
		full := strings.ToLower(d.String())
		if name == full || name == full[:3] {
			return d, nil
		}
	}
	return time.Sunday, fmt.Errorf("layout.week_start %q: %w", c.Layout.WeekStart, ErrBadWeekday)
}

// Spacing parses layout.trailing.
func (c Config) Spacing() (calgrid.TrailingSpacing, error) {
	switch strings.ToLower(c.Layout.Trailing) {
	case "", calgrid.SpacingGap.String():
		return calgrid.SpacingGap, nil
	case calgrid.SpacingPadding.String():
		return calgrid.SpacingPadding, nil
	}
	return calgrid.SpacingGap, fmt.Errorf("layout.trailing %q: %w", c.Layout.Trailing, ErrBadTrailing)
}

// LayoutConstants returns the configured grid dimensions.
func (c Config) LayoutConstants() calgrid.LayoutConstants {
	return calgrid.LayoutConstants{
		CellHeight:        c.Layout.CellHeight,
		RowGap:            c.Layout.RowGap,
		CircleDiameter:    c.Layout.CircleDiameter,
		MarkVisualHeight:  c.Layout.MarkHeight,
		MarkBottomPadding: c.Layout.BottomPadding,
		DateMarkGap:       c.Layout.DateMarkGap,
		MaxGridWidth:      c.Layout.MaxGridWidth,
	}
}

// ParseColor parses "#RRGGBB" into an opaque color.
func ParseColor(s string) (color.RGBA, error) {
	c, err := colorful.Hex(strings.TrimSpace(s))
	if err != nil {
		return color.RGBA{}, err
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}, nil
}

// CalendarPalette parses the palette colors.
func (c Config) CalendarPalette() (calgrid.Palette, error) {
	var pal calgrid.Palette
	fields := []struct {
		key string
		val string
		dst *color.RGBA
	}{
		{"palette.today", c.Palette.Today, &pal.Today},
		{"palette.selected", c.Palette.Selected, &pal.Selected},
		{"palette.text", c.Palette.Text, &pal.Text},
		{"palette.on_selected", c.Palette.OnSelected, &pal.OnSelected},
		{"palette.other_month", c.Palette.OtherMonth, &pal.OtherMonth},
		{"palette.mark", c.Palette.Mark, &pal.Mark},
		{"palette.header", c.Palette.Header, &pal.Header},
	}
	for _, f := range fields {
		col, err := ParseColor(f.val)
		if err != nil {
			return calgrid.Palette{}, fmt.Errorf("%s %q: %w", f.key, f.val, err)
		}
		*f.dst = col
	}
	return pal, nil
}

// Background parses palette.background.
func (c Config) Background() (color.RGBA, error) {
	col, err := ParseColor(c.Palette.Background)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("palette.background %q: %w", c.Palette.Background, err)
	}
	return col, nil
}

// GridOptions converts the configuration into calgrid options.
func (c Config) GridOptions() ([]calgrid.Option, error) {
	ws, err := c.WeekStart()
	if err != nil {
		return nil, err
	}
	spacing, err := c.Spacing()
	if err != nil {
		return nil, err
	}
	pal, err := c.CalendarPalette()
	if err != nil {
		return nil, err
	}
	return []calgrid.Option{
		calgrid.WithWeekStart(ws),
		calgrid.WithTrailingSpacing(spacing),
		calgrid.WithPalette(pal),
		calgrid.WithLayoutConstants(c.LayoutConstants()),
	}, nil
}
