package calgrid

import (
	"math"
	"strconv"
)

// CellContent is the logical content of one cell.
type CellContent struct {
	Day            int
	IsCurrentMonth bool
	IsToday        bool
	IsSelected     bool
	MarkText       string
}

// Key returns the memo key of the content.
func (c CellContent) Key() CellKey {
	return CellKey(c)
}

// Highlight is the circle drawn behind a day number.
type Highlight int

const (
	HighlightNone Highlight = iota
	HighlightToday
	HighlightSelected
)

// CellMeasure carries the font measurements CellLayout needs.
type CellMeasure struct {
	Day       VerticalMetrics
	Mark      VerticalMetrics
	DayWidth  float64
	MarkWidth float64
}

// CellPlacement holds the rounded draw coordinates of one cell.
type CellPlacement struct {
	CX, CY    int
	Radius    float64
	Highlight Highlight
	DayX      int
	DayY      int
	HasMark   bool
	MarkX     int
	MarkY     int
}

// round rounds half away from zero, matching the pixel snapping of the
// drawing surfaces.
func round(v float64) int {
	return int(math.Round(v))
}

// LayoutCell computes the draw coordinates for a cell centered on (cx, cy).
//
// The center is snapped first and every element is positioned from the
// snapped center, so the circle and the text baseline share one pixel grid.
// Baselines come from font metrics: a selected and an unselected cell put
// the day number on exactly the same row.
func LayoutCell(content CellContent, cx, cy float64, l GridLayout, m CellMeasure) CellPlacement {
	p := CellPlacement{
		CX:     round(cx),
		CY:     round(cy),
		Radius: l.CircleRadius(),
	}
	fcx, fcy := float64(p.CX), float64(p.CY)

	switch {
	case content.IsSelected:
		p.Highlight = HighlightSelected
	case content.IsToday:
		p.Highlight = HighlightToday
	}

	p.DayX = round(fcx - m.DayWidth/2)
	p.DayY = round(fcy + m.Day.BaselineOffset())

	if content.MarkText != "" && content.IsCurrentMonth {
		rowBottom := fcy + l.CellHeight/2 + l.DateMarkGap
		bandCenter := rowBottom + l.MarkHeight/2
		p.HasMark = true
		p.MarkX = round(fcx - m.MarkWidth/2)
		p.MarkY = round(bandCenter + m.Mark.BaselineOffset())
	}
	return p
}

// Instructions turns a placement into draw instructions: the highlight
// circle (if any), the day number, then the mark (if any).
func (p CellPlacement) Instructions(content CellContent, pal Palette) []DrawInstruction {
	out := make([]DrawInstruction, 0, 3)
	switch p.Highlight {
	case HighlightSelected:
		out = append(out, Circle{CX: p.CX, CY: p.CY, R: p.Radius, Color: pal.Selected})
	case HighlightToday:
		out = append(out, Circle{CX: p.CX, CY: p.CY, R: p.Radius, Color: pal.Today})
	}

	dayColor := pal.OtherMonth
	if content.IsCurrentMonth {
		dayColor = pal.Text
		if content.IsSelected {
			dayColor = pal.OnSelected
		}
	}
	out = append(out, Text{
		X:       p.DayX,
		Y:       p.DayY,
		Content: strconv.Itoa(content.Day),
		Font:    FontDay,
		Color:   dayColor,
	})

	if p.HasMark {
		out = append(out, Text{
			X:       p.MarkX,
			Y:       p.MarkY,
			Content: content.MarkText,
			Font:    FontMark,
			Color:   pal.Mark,
		})
	}
	return out
}
