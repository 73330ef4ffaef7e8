package calgrid

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func feb2024Input(g *Grid) RenderInput {
	m := MustMonth(2024, 2)
	return RenderInput{
		Month: m,
		Annotations: Annotations{
			"2024-02-14": Mark{Text: "Party"},
			"2024-01-31": Mark{Text: "Hidden"},
			"2024-02-20": nil,
		},
		Today:    Date{2024, time.February, 9},
		Selected: Date{2024, time.February, 14},
		Layout:   g.Layout(350, m),
		DayFont:  newFakeFont("day@15", 15),
		MarkFont: newFakeFont("mark@12", 12),
	}
}

func TestRenderIsPure(t *testing.T) {
	g := NewGrid()
	in := feb2024Input(g)

	first, err := g.Render(in)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	second, err := g.Render(in)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("Render not deterministic (-first +second):\n%s", diff)
	}

	// A fresh grid with a cold cache renders the same instructions.
	fresh, err := NewGrid().Render(in)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if diff := cmp.Diff(first, fresh); diff != "" {
		t.Errorf("cold cache changed output (-warm +cold):\n%s", diff)
	}
}

func TestRenderCellsFebruary2024(t *testing.T) {
	g := NewGrid()
	in := feb2024Input(g)
	pal := g.Palette()

	frames, err := g.RenderCells(in)
	if err != nil {
		t.Fatalf("RenderCells: %v", err)
	}
	if len(frames) != 35 {
		t.Fatalf("len(frames) = %d, want 35", len(frames))
	}

	circles := 0
	for _, f := range frames {
		n := countCircles(f.Instructions)
		if n > 1 {
			t.Errorf("cell %d has %d circles", f.Index, n)
		}
		circles += n
	}
	if circles != 2 {
		t.Errorf("total circles = %d, want 2 (today and selected)", circles)
	}

	// Leading cell for January 31 carries no mark even though one exists.
	if k := frames[3].Key; k.Day != 31 || k.IsCurrentMonth || k.MarkText != "" {
		t.Errorf("leading cell key = %+v", k)
	}

	// 2024-02-09 is index 4+8.
	today := frames[12]
	if !today.Key.IsToday || today.Key.IsSelected {
		t.Errorf("today key = %+v", today.Key)
	}
	if c := today.Instructions[0].(Circle); c.Color != pal.Today {
		t.Errorf("today circle color = %v", c.Color)
	}

	sel := frames[17]
	wantKey := CellKey{Day: 14, IsCurrentMonth: true, IsSelected: true, MarkText: "Party"}
	if sel.Key != wantKey {
		t.Errorf("selected key = %+v, want %+v", sel.Key, wantKey)
	}
	txt := texts(sel.Instructions)
	if len(txt) != 2 || txt[1].Content != "Party" || txt[1].Font != FontMark {
		t.Errorf("selected cell texts = %+v", txt)
	}

	// A nil annotation is no annotation.
	if frames[23].Key.MarkText != "" || len(frames[23].Instructions) != 1 {
		t.Errorf("nil annotation cell = %+v", frames[23])
	}
}

func TestRenderSelectedTodaySuppressesTodayCircle(t *testing.T) {
	g := NewGrid()
	in := feb2024Input(g)
	in.Today = in.Selected

	frames, err := g.RenderCells(in)
	if err != nil {
		t.Fatal(err)
	}
	f := frames[17]
	if countCircles(f.Instructions) != 1 {
		t.Fatalf("circles = %d, want 1", countCircles(f.Instructions))
	}
	if c := f.Instructions[0].(Circle); c.Color != g.Palette().Selected {
		t.Errorf("circle color = %v, want selected", c.Color)
	}
}

func TestRenderErrors(t *testing.T) {
	g := NewGrid()
	tests := []struct {
		name   string
		mutate func(*RenderInput)
		want   error
	}{
		{"nil day font", func(in *RenderInput) { in.DayFont = nil }, ErrFontUnavailable},
		{"nil mark font", func(in *RenderInput) { in.MarkFont = nil }, ErrFontUnavailable},
		{"stale layout", func(in *RenderInput) { in.Layout.RowCount = 6 }, ErrLayoutMismatch},
		{"invalid month", func(in *RenderInput) { in.Month = Month{} }, ErrInvalidMonth},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := feb2024Input(g)
			tt.mutate(&in)
			if _, err := g.Render(in); !errors.Is(err, tt.want) {
				t.Errorf("Render error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestRenderUsesFallbackMetrics(t *testing.T) {
	g := NewGrid()
	in := feb2024Input(g)
	day := newFakeFont("day@15", 15)
	day.real = false
	in.DayFont = day

	frames, err := g.RenderCells(in)
	if err != nil {
		t.Fatal(err)
	}
	// Fallback: ascent -12, descent 3, so the baseline sits 4.5px below center.
	_, cy := CellCenter(0, in.Layout)
	if got, want := texts(frames[0].Instructions)[0].Y, round(cy+4.5); got != want {
		t.Errorf("fallback baseline = %d, want %d", got, want)
	}
}

func TestOnTap(t *testing.T) {
	g := NewGrid()
	m := MustMonth(2024, 2)
	l := g.Layout(350, m)

	x, y := CellCenter(10, l)
	tap, ok := g.OnTap(x, y, m, l)
	if !ok {
		t.Fatal("tap on cell 10 missed")
	}
	want := Tap{Index: 10, Cell: DayCell{Day: 7, IsCurrentMonth: true}, Date: Date{2024, time.February, 7}}
	if tap != want {
		t.Errorf("OnTap = %+v, want %+v", tap, want)
	}

	x, y = CellCenter(1, l)
	tap, ok = g.OnTap(x, y, m, l)
	if !ok || tap.Cell.IsCurrentMonth || tap.Date != (Date{2024, time.January, 29}) {
		t.Errorf("leading tap = %+v, %v", tap, ok)
	}

	if _, ok := g.OnTap(-5, y, m, l); ok {
		t.Error("tap left of the grid should miss")
	}
}

func TestGridWeekStart(t *testing.T) {
	g := NewGrid(WithWeekStart(time.Monday))
	m := MustMonth(2024, 1)
	cells := g.Cells(m)
	if !cells[0].IsCurrentMonth || cells[0].Day != 1 {
		t.Errorf("Monday-start January 2024 should open on the 1st, got %+v", cells[0])
	}
	if g.RowCount(m) != 5 {
		t.Errorf("RowCount = %d, want 5", g.RowCount(m))
	}
}

func TestGridTotalHeightPolicy(t *testing.T) {
	m := MustMonth(2024, 2)
	gap := NewGrid()
	pad := NewGrid(WithTrailingSpacing(SpacingPadding))
	if got := gap.TotalHeight(m, gap.Layout(350, m)); got != 284 {
		t.Errorf("gap height = %v, want 284", got)
	}
	if got := pad.TotalHeight(m, pad.Layout(350, m)); got != 288 {
		t.Errorf("padding height = %v, want 288", got)
	}
}

func TestHeader(t *testing.T) {
	g := NewGrid()
	l := g.Layout(350, MustMonth(2024, 2))
	labels := [Columns]string{"S", "M", "T", "W", "T", "F", "S"}
	f := newFakeFont("day@12", 12)

	ops := g.Header(labels, -20, l, f)
	if len(ops) != Columns {
		t.Fatalf("len = %d, want 7", len(ops))
	}
	for col, op := range ops {
		txt := op.(Text)
		cx, _ := CellCenter(col, l)
		if txt.X != round(float64(round(cx))-3) {
			t.Errorf("col %d x = %d", col, txt.X)
		}
		if txt.Color != g.Palette().Header {
			t.Errorf("col %d color = %v", col, txt.Color)
		}
	}
	if g.Header(labels, 0, l, nil) != nil {
		t.Error("Header with nil font should emit nothing")
	}
}
