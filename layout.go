package calgrid

import "math"

// LayoutConstants are the fixed pixel dimensions a GridLayout is derived
// from. Only the cell width depends on the viewport.
type LayoutConstants struct {
	// CellHeight is the height of the day row, matching the highlight circle.
	CellHeight float64
	// RowGap is the vertical space between one row's mark band and the next row.
	RowGap float64
	// CircleDiameter is the configured diameter of the today/selected circle.
	CircleDiameter float64
	// MarkVisualHeight is the height of the annotation band under the day row.
	MarkVisualHeight float64
	// MarkBottomPadding is the space kept under the last row in SpacingPadding mode.
	MarkBottomPadding float64
	// DateMarkGap separates the day row from the annotation band.
	DateMarkGap float64
	// MaxGridWidth caps the grid width; the grid is centered in wider
	// viewports. Zero means the grid spans the viewport.
	MaxGridWidth float64
}

// DefaultLayoutConstants returns the stock dimensions: 32px day row and
// circle, 20px mark band, 6px row gap, 4px bottom padding.
func DefaultLayoutConstants() LayoutConstants {
	return LayoutConstants{
		CellHeight:        32,
		RowGap:            6,
		CircleDiameter:    32,
		MarkVisualHeight:  20,
		MarkBottomPadding: 4,
		DateMarkGap:       0,
	}
}

// TrailingSpacing selects what follows the last grid row when computing
// the total grid height.
type TrailingSpacing int

const (
	// SpacingGap places row gaps only between rows; nothing trails the last row.
	SpacingGap TrailingSpacing = iota
	// SpacingPadding adds MarkBottomPadding after the last row instead of a gap.
	SpacingPadding
)

// String returns the mode name.
func (s TrailingSpacing) String() string {
	switch s {
	case SpacingGap:
		return "gap"
	case SpacingPadding:
		return "padding"
	default:
		return "unknown"
	}
}

// GridLayout is the resolved pixel geometry of one month grid.
// It is a plain value; recompute it when the viewport width or the row
// count changes.
type GridLayout struct {
	RowCount         int
	CellWidth        float64
	CellHeight       float64
	MarkHeight       float64
	RowGap           float64
	HorizontalOffset float64
	CircleDiameter   float64
	BottomPadding    float64
	DateMarkGap      float64
}

// NewGridLayout derives the layout for a viewport width and row count.
func NewGridLayout(viewportWidth float64, rowCount int, c LayoutConstants) GridLayout {
	gridWidth := viewportWidth
	if c.MaxGridWidth > 0 && gridWidth > c.MaxGridWidth {
		gridWidth = c.MaxGridWidth
	}
	if gridWidth < 0 {
		gridWidth = 0
	}
	cellWidth := gridWidth / Columns
	return GridLayout{
		RowCount:         rowCount,
		CellWidth:        cellWidth,
		CellHeight:       c.CellHeight,
		MarkHeight:       c.MarkVisualHeight,
		RowGap:           c.RowGap,
		HorizontalOffset: (viewportWidth - cellWidth*Columns) / 2,
		CircleDiameter:   c.CircleDiameter,
		BottomPadding:    c.MarkBottomPadding,
		DateMarkGap:      c.DateMarkGap,
	}
}

// RowPitch is the distance between the tops of two consecutive rows.
func (l GridLayout) RowPitch() float64 {
	return l.CellHeight + l.MarkHeight + l.RowGap
}

// Width returns the width covered by the seven columns.
func (l GridLayout) Width() float64 {
	return l.CellWidth * Columns
}

// CircleRadius returns the highlight radius: half the configured diameter,
// capped so the circle never leaves its cell.
func (l GridLayout) CircleRadius() float64 {
	return math.Min(l.CircleDiameter/2, math.Min(l.CellWidth, l.CellHeight)/2)
}

// TotalHeight returns the height of the grid.
//
// SpacingGap:     rows*cellHeight + rows*markHeight + (rows-1)*rowGap
// SpacingPadding: the same with the bottom padding appended after the last row.
func (l GridLayout) TotalHeight(mode TrailingSpacing) float64 {
	if l.RowCount <= 0 {
		return 0
	}
	rows := float64(l.RowCount)
	h := rows*l.CellHeight + rows*l.MarkHeight + (rows-1)*l.RowGap
	if mode == SpacingPadding {
		h += l.BottomPadding
	}
	return h
}
