package calgrid

import (
	"math"
	"time"
)

// Columns is the fixed number of grid columns (days per week).
const Columns = 7

// DayCell is one position of the month grid.
//
// When IsCurrentMonth is false, Day refers to the previous month for
// leading cells and to the next month for trailing cells.
type DayCell struct {
	Day            int
	IsCurrentMonth bool
}

// RowCount returns the number of week rows needed to show m:
// ceil((startWeekday + daysInMonth) / 7). An invalid month has no rows.
func RowCount(m Month, weekStart time.Weekday) int {
	if !m.Valid() {
		return 0
	}
	n := m.StartWeekday(weekStart) + m.Days()
	return (n + Columns - 1) / Columns
}

// DayCells returns the RowCount(m)*7 cells of the grid in row-major order:
// the tail of the previous month, every day of m, then the head of the
// next month. An invalid month yields nil.
func DayCells(m Month, weekStart time.Weekday) []DayCell {
	if !m.Valid() {
		return nil
	}
	lead := m.StartWeekday(weekStart)
	days := m.Days()
	total := RowCount(m, weekStart) * Columns

	cells := make([]DayCell, 0, total)
	prevDays := m.Prev().Days()
	for d := prevDays - lead + 1; d <= prevDays; d++ {
		cells = append(cells, DayCell{Day: d})
	}
	for d := 1; d <= days; d++ {
		cells = append(cells, DayCell{Day: d, IsCurrentMonth: true})
	}
	for d := 1; len(cells) < total; d++ {
		cells = append(cells, DayCell{Day: d})
	}
	return cells
}

// CellDate resolves the cell at index of m's grid to a concrete date,
// using the adjacent month for leading and trailing cells.
func CellDate(m Month, weekStart time.Weekday, index int) (Date, bool) {
	if index < 0 || index >= RowCount(m, weekStart)*Columns {
		return Date{}, false
	}
	lead := m.StartWeekday(weekStart)
	switch days := m.Days(); {
	case index < lead:
		prev := m.Prev()
		return prev.Date(prev.Days() - lead + 1 + index), true
	case index < lead+days:
		return m.Date(index - lead + 1), true
	default:
		return m.Next().Date(index - lead - days + 1), true
	}
}

// CellCenter returns the pixel center of the cell at index.
//
//	x = col*cellWidth + cellWidth/2 + horizontalOffset
//	y = row*(cellHeight+markHeight+rowGap) + cellHeight/2
func CellCenter(index int, l GridLayout) (x, y float64) {
	col := index % Columns
	row := index / Columns
	x = float64(col)*l.CellWidth + l.CellWidth/2 + l.HorizontalOffset
	y = float64(row)*l.RowPitch() + l.CellHeight/2
	return x, y
}

// HitTest maps a point to the index of the cell containing it.
// Points outside the grid report false; that is not an error.
//
// A point in the gap between two rows belongs to the row above. The grid
// ends at the bottom of the last row's mark band: neither a trailing gap
// nor the bottom padding is part of any cell.
func HitTest(px, py float64, l GridLayout) (int, bool) {
	if l.CellWidth <= 0 || l.RowPitch() <= 0 || l.RowCount <= 0 {
		return 0, false
	}
	if py >= float64(l.RowCount-1)*l.RowPitch()+l.CellHeight+l.MarkHeight {
		return 0, false
	}
	col := int(math.Floor((px - l.HorizontalOffset) / l.CellWidth))
	row := int(math.Floor(py / l.RowPitch()))
	if col < 0 || col >= Columns || row < 0 || row >= l.RowCount {
		return 0, false
	}
	return row*Columns + col, true
}
