package calgrid

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func newTestCalendar(t *testing.T, opts ...CalendarOption) *Calendar {
	t.Helper()
	nav, err := NewNavigator(DefaultMinMonth, MustMonth(2026, 10))
	if err != nil {
		t.Fatal(err)
	}
	c, err := NewCalendar(NewGrid(), nav, MustMonth(2024, 2), 350, opts...)
	if err != nil {
		t.Fatalf("NewCalendar: %v", err)
	}
	return c
}

func TestCalendarFrameNeedsFonts(t *testing.T) {
	c := newTestCalendar(t)
	if c.Ready() {
		t.Error("Ready before SetFonts")
	}
	if _, err := c.Frame(); !errors.Is(err, ErrFontUnavailable) {
		t.Errorf("Frame error = %v, want ErrFontUnavailable", err)
	}
	c.SetFonts(newFakeFont("day@15", 15), newFakeFont("mark@12", 12))
	if !c.Ready() {
		t.Error("not Ready after SetFonts")
	}
	f, err := c.Frame()
	if err != nil {
		t.Fatalf("Frame: %v", err)
	}
	if f.Height != 284 || len(f.Cells) != 35 || len(f.Dirty) != 35 {
		t.Errorf("frame height=%v cells=%d dirty=%d", f.Height, len(f.Cells), len(f.Dirty))
	}
}

func TestCalendarTapSelectsAndMarksDirty(t *testing.T) {
	var selected []Date
	c := newTestCalendar(t, OnSelect(func(d Date) { selected = append(selected, d) }))
	c.SetFonts(newFakeFont("day@15", 15), newFakeFont("mark@12", 12))
	if _, err := c.Frame(); err != nil {
		t.Fatal(err)
	}

	l := c.Snapshot().Layout
	x, y := CellCenter(17, l)
	tap, ok, accepted := c.Tap(x, y)
	if !ok || !accepted || tap.Date != (Date{2024, time.February, 14}) {
		t.Fatalf("Tap = %+v, %v, %v", tap, ok, accepted)
	}
	f, err := c.Frame()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{17}, f.Dirty); diff != "" {
		t.Errorf("dirty cells (-want +got):\n%s", diff)
	}

	// Same tap again: no new callback, no dirty cells.
	c.Tap(x, y)
	f, _ = c.Frame()
	if len(f.Dirty) != 0 {
		t.Errorf("reselect dirtied %v", f.Dirty)
	}

	x, y = CellCenter(18, l)
	c.Tap(x, y)
	f, _ = c.Frame()
	if diff := cmp.Diff([]int{17, 18}, f.Dirty); diff != "" {
		t.Errorf("dirty after moving selection (-want +got):\n%s", diff)
	}

	want := []Date{{2024, time.February, 14}, {2024, time.February, 15}}
	if diff := cmp.Diff(want, selected); diff != "" {
		t.Errorf("OnSelect calls (-want +got):\n%s", diff)
	}
}

func TestCalendarTapOutsideMonth(t *testing.T) {
	c := newTestCalendar(t)
	l := c.Snapshot().Layout

	x, y := CellCenter(0, l)
	tap, ok, accepted := c.Tap(x, y)
	if !ok || accepted {
		t.Errorf("leading tap = %+v ok=%v accepted=%v", tap, ok, accepted)
	}
	if _, ok := c.Snapshot().Selection.Selected(); ok {
		t.Error("leading tap selected a date")
	}
	if _, ok, _ := c.Tap(-1, -1); ok {
		t.Error("tap outside the grid resolved")
	}
}

func TestCalendarNavigateClearsSelection(t *testing.T) {
	var months []Month
	c := newTestCalendar(t, OnMonthChange(func(m Month) { months = append(months, m) }))
	if !c.Select(Date{2024, time.February, 14}) {
		t.Fatal("Select failed")
	}
	if !c.Navigate(MonthForward) {
		t.Fatal("Navigate failed")
	}
	s := c.Snapshot()
	if s.Month != MustMonth(2024, 3) {
		t.Errorf("Month = %v", s.Month)
	}
	if _, ok := s.Selection.Selected(); ok {
		t.Error("selection survived navigation")
	}
	// 2024-03 starts on Friday: 5 + 31 = 36 cells, six rows.
	if s.Layout.RowCount != 6 {
		t.Errorf("RowCount = %d, want 6", s.Layout.RowCount)
	}
	if len(months) != 1 || months[0] != MustMonth(2024, 3) {
		t.Errorf("OnMonthChange calls = %v, want [2024-03]", months)
	}
}

func TestCalendarNavigateAtBound(t *testing.T) {
	nav := testNavigator(t)
	c, err := NewCalendar(NewGrid(), nav, MustMonth(1975, 1), 350)
	if err != nil {
		t.Fatal(err)
	}
	if c.CanNavigate(YearBack) || c.Navigate(YearBack) {
		t.Error("YearBack from the minimum changed the month")
	}
	if !c.CanNavigate(MonthForward) {
		t.Error("MonthForward from the minimum disabled")
	}
}

func TestCalendarSetMonthClamps(t *testing.T) {
	c := newTestCalendar(t)
	changed, err := c.SetMonth(MustMonth(2030, 1))
	if err != nil || !changed {
		t.Fatalf("SetMonth = %v, %v", changed, err)
	}
	if got := c.Snapshot().Month; got != MustMonth(2026, 10) {
		t.Errorf("Month = %v, want clamp to 2026-10", got)
	}
	if _, err := c.SetMonth(Month{}); !errors.Is(err, ErrInvalidMonth) {
		t.Errorf("SetMonth(zero) error = %v", err)
	}
}

func TestCalendarResizeAndFontSwapResetMemo(t *testing.T) {
	c := newTestCalendar(t)
	c.SetFonts(newFakeFont("day@15", 15), newFakeFont("mark@12", 12))
	if _, err := c.Frame(); err != nil {
		t.Fatal(err)
	}

	c.Resize(700)
	if got := c.Snapshot().Layout.CellWidth; got != 100 {
		t.Errorf("CellWidth after resize = %v, want 100", got)
	}
	f, _ := c.Frame()
	if len(f.Dirty) != 35 {
		t.Errorf("dirty after resize = %d, want 35", len(f.Dirty))
	}

	f, _ = c.Frame()
	if len(f.Dirty) != 0 {
		t.Errorf("dirty on unchanged frame = %d", len(f.Dirty))
	}

	c.SetFonts(newFakeFont("day@18", 18), newFakeFont("mark@12", 12))
	f, _ = c.Frame()
	if len(f.Dirty) != 35 {
		t.Errorf("dirty after font swap = %d, want 35", len(f.Dirty))
	}
	if c.Grid().Widths().Active() != "day@18" {
		t.Errorf("width cache font = %q", c.Grid().Widths().Active())
	}
}

func TestCalendarAnnotationsAndToday(t *testing.T) {
	c := newTestCalendar(t,
		WithToday(Date{2024, time.February, 9}),
		WithAnnotations(Annotations{"2024-02-09": Mark{Text: "Dentist"}}),
	)
	c.SetFonts(newFakeFont("day@15", 15), newFakeFont("mark@12", 12))
	f, err := c.Frame()
	if err != nil {
		t.Fatal(err)
	}
	want := CellKey{Day: 9, IsCurrentMonth: true, IsToday: true, MarkText: "Dentist"}
	if f.Cells[12].Key != want {
		t.Errorf("key = %+v, want %+v", f.Cells[12].Key, want)
	}

	c.SetAnnotations(nil)
	c.SetToday(Date{})
	f, _ = c.Frame()
	if diff := cmp.Diff([]int{12}, f.Dirty); diff != "" {
		t.Errorf("dirty (-want +got):\n%s", diff)
	}
}
