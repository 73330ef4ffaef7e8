// Package calgrid renders a month calendar as a pixel grid.
//
// # Overview
//
// Given a reference month, per-date annotations, a today date and a
// selected date, calgrid computes a seven-column grid, places each day
// number and its optional annotation with real font metrics, and emits an
// ordered list of drawing primitives (filled circles and baseline-anchored
// text). Taps go the other way: a pixel coordinate is mapped back to a
// logical cell.
//
// calgrid does not rasterize. The canvas package draws instructions into an
// image, tinysurface draws them on small displays, and cmd/calview draws
// them in an ebiten window.
//
// # Quick Start
//
//	grid := calgrid.NewGrid()
//	month := calgrid.MustMonth(2024, 2)
//	layout := grid.Layout(375, month)
//
//	ops, err := grid.Render(calgrid.RenderInput{
//	    Month:    month,
//	    Today:    calgrid.DateOf(time.Now()),
//	    Layout:   layout,
//	    DayFont:  dayFace,  // any calgrid.Font, e.g. a text.Face
//	    MarkFont: markFace,
//	})
//
//	tap, ok := grid.OnTap(x, y, month, layout)
//
// # Components
//
//   - Month math: RowCount, DayCells, CellCenter, HitTest
//   - TextMetricsCache: memoized widths of "1".."31" per font
//   - LayoutCell: rounded, metrics-derived draw coordinates of one cell
//   - Grid: renders a month, resolves taps, computes the grid height
//   - Navigator: month/year steps clamped to a range
//   - Calendar: serialized event controller with selection and memo
//
// # Coordinate System
//
// Origin (0,0) at top-left, x increases right, y increases down. Text
// positions are baselines. Every emitted coordinate is an integer.
package calgrid
