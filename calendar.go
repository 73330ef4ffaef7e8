package calgrid

// State is an immutable snapshot of a Calendar. Hosts that resolve taps
// and lay out on different goroutines hand a State to each side instead of
// sharing the Calendar.
type State struct {
	Month         Month
	Selection     Selection
	Layout        GridLayout
	ViewportWidth float64
	Today         Date
}

// Frame is the output of one Calendar render.
type Frame struct {
	Instructions []DrawInstruction
	Cells        []CellFrame
	// Dirty lists the cells whose memo key changed since the previous frame.
	Dirty  []int
	Height float64
}

// Calendar is the event-driven controller around a Grid: it owns the
// displayed month, the selection and the layout, and applies taps,
// navigation, resizes and font changes one at a time.
//
// Calendar is not safe for concurrent use; events must be serialized by
// the host (a UI loop does this naturally).
type Calendar struct {
	grid        *Grid
	nav         Navigator
	state       State
	annotations Annotations
	dayFont     Font
	markFont    Font
	memo        CellMemo

	onSelect func(Date)
	onMonth  func(Month)
}

// CalendarOption configures a Calendar.
type CalendarOption func(*Calendar)

// OnSelect registers a callback invoked when the selection changes to a
// new date.
func OnSelect(fn func(Date)) CalendarOption {
	return func(c *Calendar) { c.onSelect = fn }
}

// OnMonthChange registers a callback invoked after the displayed month changes.
func OnMonthChange(fn func(Month)) CalendarOption {
	return func(c *Calendar) { c.onMonth = fn }
}

// WithAnnotations sets the initial annotations.
func WithAnnotations(a Annotations) CalendarOption {
	return func(c *Calendar) { c.annotations = a }
}

// WithToday sets the date highlighted as today.
func WithToday(d Date) CalendarOption {
	return func(c *Calendar) { c.state.Today = d }
}

// NewCalendar creates a Calendar showing initial (clamped to nav's range)
// in a viewport of the given width.
func NewCalendar(g *Grid, nav Navigator, initial Month, viewportWidth float64, opts ...CalendarOption) (*Calendar, error) {
	if err := initial.validate(); err != nil {
		return nil, err
	}
	if g == nil {
		g = NewGrid()
	}
	c := &Calendar{grid: g, nav: nav}
	for _, opt := range opts {
		opt(c)
	}
	m := nav.Clamp(initial)
	c.state.Month = m
	c.state.ViewportWidth = viewportWidth
	c.state.Layout = g.Layout(viewportWidth, m)
	return c, nil
}

// Grid returns the underlying grid.
func (c *Calendar) Grid() *Grid { return c.grid }

// Navigator returns the navigation bounds.
func (c *Calendar) Navigator() Navigator { return c.nav }

// Snapshot returns the current state.
func (c *Calendar) Snapshot() State { return c.state }

// Ready reports whether both fonts are available. Frame fails until then.
func (c *Calendar) Ready() bool {
	return c.dayFont != nil && c.markFont != nil
}

// SetMonth displays m, clamped to the navigation range. Changing the month
// clears the selection. It reports whether the month changed.
func (c *Calendar) SetMonth(m Month) (bool, error) {
	if err := m.validate(); err != nil {
		return false, err
	}
	return c.showMonth(c.nav.Clamp(m)), nil
}

func (c *Calendar) showMonth(m Month) bool {
	if m == c.state.Month {
		return false
	}
	prevRows := c.state.Layout.RowCount
	c.state.Month = m
	c.state.Selection = c.state.Selection.Clear()
	c.state.Layout = c.grid.Layout(c.state.ViewportWidth, m)
	if c.state.Layout.RowCount != prevRows {
		Logger().Debug("calgrid: layout recomputed", "month", m.String(), "rows", c.state.Layout.RowCount)
	}
	Logger().Info("calgrid: month changed", "month", m.String())
	if c.onMonth != nil {
		c.onMonth(m)
	}
	return true
}

// Navigate steps the displayed month. It reports whether the month changed;
// a step against a bound is a silent no-op.
func (c *Calendar) Navigate(d Direction) bool {
	return c.showMonth(c.nav.Step(c.state.Month, d))
}

// CanNavigate reports whether Navigate(d) would change the month.
func (c *Calendar) CanNavigate(d Direction) bool {
	return c.nav.CanStep(c.state.Month, d)
}

// Tap resolves a tap and selects the cell when it belongs to the displayed
// month. It returns the resolved tap (ok false when the tap missed the
// grid) and whether the selection accepted it.
func (c *Calendar) Tap(x, y float64) (tap Tap, ok, selected bool) {
	tap, ok = c.grid.OnTap(x, y, c.state.Month, c.state.Layout)
	if !ok {
		return Tap{}, false, false
	}
	prev := c.state.Selection
	next, accepted := prev.Select(c.state.Month, tap)
	if !accepted {
		return tap, true, false
	}
	c.state.Selection = next
	if next != prev && c.onSelect != nil {
		c.onSelect(next.Date())
	}
	return tap, true, true
}

// Select selects d directly; it must fall in the displayed month.
func (c *Calendar) Select(d Date) bool {
	prev := c.state.Selection
	next, ok := prev.SelectDate(c.state.Month, d)
	if !ok {
		return false
	}
	c.state.Selection = next
	if next != prev && c.onSelect != nil {
		c.onSelect(d)
	}
	return true
}

// ClearSelection drops the selection.
func (c *Calendar) ClearSelection() {
	c.state.Selection = c.state.Selection.Clear()
}

// Resize recomputes the layout for a new viewport width.
func (c *Calendar) Resize(viewportWidth float64) {
	if viewportWidth == c.state.ViewportWidth {
		return
	}
	c.state.ViewportWidth = viewportWidth
	c.state.Layout = c.grid.Layout(viewportWidth, c.state.Month)
	c.memo.Reset()
	Logger().Debug("calgrid: layout recomputed", "width", viewportWidth, "cellWidth", c.state.Layout.CellWidth)
}

// SetFonts installs the day and mark fonts. A font swap invalidates the
// day-number width cache and every memoized cell.
func (c *Calendar) SetFonts(day, mark Font) {
	c.dayFont, c.markFont = day, mark
	if day != nil {
		c.grid.widths.SetFont(day)
	}
	c.memo.Reset()
}

// SetAnnotations replaces the annotations.
func (c *Calendar) SetAnnotations(a Annotations) {
	c.annotations = a
}

// SetToday changes the date highlighted as today.
func (c *Calendar) SetToday(d Date) {
	c.state.Today = d
}

// Frame renders the current state.
func (c *Calendar) Frame() (Frame, error) {
	cells, err := c.grid.RenderCells(RenderInput{
		Month:       c.state.Month,
		Annotations: c.annotations,
		Today:       c.state.Today,
		Selected:    c.state.Selection.Date(),
		Layout:      c.state.Layout,
		DayFont:     c.dayFont,
		MarkFont:    c.markFont,
	})
	if err != nil {
		return Frame{}, err
	}
	f := Frame{
		Cells:  cells,
		Dirty:  c.memo.Update(cells),
		Height: c.grid.TotalHeight(c.state.Month, c.state.Layout),
	}
	for _, cell := range cells {
		f.Instructions = append(f.Instructions, cell.Instructions...)
	}
	return f, nil
}
