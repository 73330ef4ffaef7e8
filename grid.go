package calgrid

import (
	"fmt"
	"strconv"
	"time"
)

// Grid lays out a month and emits draw instructions. Apart from its width
// cache, which never changes results, a Grid holds no state between calls:
// the same RenderInput always produces the same instructions.
type Grid struct {
	opts   gridOptions
	widths *TextMetricsCache
}

// NewGrid creates a Grid.
func NewGrid(opts ...Option) *Grid {
	o := defaultGridOptions()
	for _, opt := range opts {
		opt(&o)
	}
	widths := o.widths
	if widths == nil {
		widths = NewTextMetricsCache()
	}
	return &Grid{opts: o, widths: widths}
}

// WeekStart returns the weekday of the first column.
func (g *Grid) WeekStart() time.Weekday { return g.opts.weekStart }

// Palette returns the grid colors.
func (g *Grid) Palette() Palette { return g.opts.palette }

// Constants returns the layout constants.
func (g *Grid) Constants() LayoutConstants { return g.opts.constants }

// Spacing returns the total-height policy.
func (g *Grid) Spacing() TrailingSpacing { return g.opts.spacing }

// Widths returns the day-number width cache.
func (g *Grid) Widths() *TextMetricsCache { return g.widths }

// RowCount returns the row count of m for the grid's week start.
func (g *Grid) RowCount(m Month) int { return RowCount(m, g.opts.weekStart) }

// Cells returns the filled day sequence of m.
func (g *Grid) Cells(m Month) []DayCell { return DayCells(m, g.opts.weekStart) }

// Layout returns the GridLayout of m in a viewport of the given width.
func (g *Grid) Layout(viewportWidth float64, m Month) GridLayout {
	return NewGridLayout(viewportWidth, g.RowCount(m), g.opts.constants)
}

// TotalHeight returns the grid height of m using the grid's trailing
// spacing policy.
func (g *Grid) TotalHeight(m Month, l GridLayout) float64 {
	l.RowCount = g.RowCount(m)
	return l.TotalHeight(g.opts.spacing)
}

// RenderInput is everything a render depends on.
type RenderInput struct {
	Month       Month
	Annotations Annotations
	// Today and Selected are zero when absent.
	Today    Date
	Selected Date
	Layout   GridLayout
	DayFont  Font
	MarkFont Font
}

// CellFrame is the rendered output of one cell with its memo key.
type CellFrame struct {
	Index        int
	Key          CellKey
	Instructions []DrawInstruction
}

func (g *Grid) checkInput(in RenderInput) error {
	if err := in.Month.validate(); err != nil {
		return err
	}
	if in.DayFont == nil || in.MarkFont == nil {
		return ErrFontUnavailable
	}
	if rows := g.RowCount(in.Month); in.Layout.RowCount != rows {
		return fmt.Errorf("%w: layout has %d rows, %s needs %d",
			ErrLayoutMismatch, in.Layout.RowCount, in.Month, rows)
	}
	return nil
}

// RenderCells lays out every cell of the month and returns one frame per
// cell in grid order.
func (g *Grid) RenderCells(in RenderInput) ([]CellFrame, error) {
	if err := g.checkInput(in); err != nil {
		return nil, err
	}

	dayMetrics, _ := ResolveMetrics(in.DayFont)
	markMetrics, _ := ResolveMetrics(in.MarkFont)

	cells := g.Cells(in.Month)
	frames := make([]CellFrame, len(cells))
	lead := in.Month.StartWeekday(g.opts.weekStart)
	for i, cell := range cells {
		content := CellContent{Day: cell.Day, IsCurrentMonth: cell.IsCurrentMonth}
		if cell.IsCurrentMonth {
			date := in.Month.Date(i - lead + 1)
			content.IsToday = date == in.Today
			content.IsSelected = date == in.Selected
			content.MarkText = in.Annotations.MarkText(date)
		}

		measure := CellMeasure{
			Day:      dayMetrics,
			Mark:     markMetrics,
			DayWidth: g.widths.WidthOf(strconv.Itoa(cell.Day), in.DayFont),
		}
		if content.MarkText != "" {
			measure.MarkWidth = in.MarkFont.Advance(content.MarkText)
		}

		cx, cy := CellCenter(i, in.Layout)
		p := LayoutCell(content, cx, cy, in.Layout, measure)
		frames[i] = CellFrame{
			Index:        i,
			Key:          content.Key(),
			Instructions: p.Instructions(content, g.opts.palette),
		}
	}
	return frames, nil
}

// Render returns the ordered draw instructions of the whole month.
func (g *Grid) Render(in RenderInput) ([]DrawInstruction, error) {
	frames, err := g.RenderCells(in)
	if err != nil {
		return nil, err
	}
	out := make([]DrawInstruction, 0, len(frames)*2)
	for _, f := range frames {
		out = append(out, f.Instructions...)
	}
	return out, nil
}

// Tap is a resolved tap on the grid.
type Tap struct {
	Index int
	Cell  DayCell
	// Date is the concrete date of the cell; leading and trailing cells
	// resolve into the adjacent months.
	Date Date
}

// OnTap maps a tap to the cell under it. Taps on leading or trailing
// cells are reported too; callers decide whether to reject them for
// selection or to jump to the adjacent month.
func (g *Grid) OnTap(px, py float64, m Month, l GridLayout) (Tap, bool) {
	if !m.Valid() {
		return Tap{}, false
	}
	idx, ok := HitTest(px, py, l)
	if !ok {
		return Tap{}, false
	}
	cells := g.Cells(m)
	if idx >= len(cells) {
		return Tap{}, false
	}
	date, _ := CellDate(m, g.opts.weekStart, idx)
	return Tap{Index: idx, Cell: cells[idx], Date: date}, true
}

// Header emits the seven pre-formatted weekday labels, each centered on its
// column with the text box centered on centerY.
func (g *Grid) Header(labels [Columns]string, centerY float64, l GridLayout, f Font) []DrawInstruction {
	if f == nil {
		return nil
	}
	metrics, _ := ResolveMetrics(f)
	y := round(centerY + metrics.BaselineOffset())
	out := make([]DrawInstruction, 0, Columns)
	for col, label := range labels {
		if label == "" {
			continue
		}
		cx, _ := CellCenter(col, l)
		out = append(out, Text{
			X:       round(float64(round(cx)) - f.Advance(label)/2),
			Y:       y,
			Content: label,
			Font:    FontDay,
			Color:   g.opts.palette.Header,
		})
	}
	return out
}
