package main

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gogpu/calgrid"
	"github.com/gogpu/calgrid/internal/config"
)

const (
	titleHeight  = 36
	headerHeight = 24
	gridTop      = titleHeight + headerHeight
	windowHeight = gridTop + 6*58
)

type game struct {
	cal    *calgrid.Calendar
	faces  map[calgrid.FontRole]*face
	bg     color.RGBA
	frame  calgrid.Frame
	stale  bool
	width  int
	header []calgrid.DrawInstruction
}

func newGame(cfg config.Config, initial calgrid.Month, now time.Time) (*game, error) {
	opts, err := cfg.GridOptions()
	if err != nil {
		return nil, err
	}
	bg, err := cfg.Background()
	if err != nil {
		return nil, err
	}
	day, mark, err := loadFaces(cfg)
	if err != nil {
		return nil, err
	}

	g := &game{
		faces: map[calgrid.FontRole]*face{calgrid.FontDay: day, calgrid.FontMark: mark},
		bg:    bg,
		stale: true,
		width: int(cfg.Layout.ViewportWidth),
	}
	cal, err := calgrid.NewCalendar(calgrid.NewGrid(opts...), calgrid.DefaultNavigator(now), initial,
		cfg.Layout.ViewportWidth,
		calgrid.WithToday(calgrid.DateOf(now)),
		calgrid.OnMonthChange(func(calgrid.Month) { g.stale = true }),
		calgrid.OnSelect(func(d calgrid.Date) {
			calgrid.Logger().Info("calview: selected", "date", d.String())
		}),
	)
	if err != nil {
		return nil, err
	}
	cal.SetFonts(day, mark)
	g.cal = cal
	return g, nil
}

func weekdayLabels(start time.Weekday) [calgrid.Columns]string {
	var labels [calgrid.Columns]string
	for i := range labels {
		labels[i] = ((start + time.Weekday(i)) % 7).String()[:2]
	}
	return labels
}

func (g *game) Update() error {
	step := func(month, year calgrid.Direction) {
		d := month
		if ebiten.IsKeyPressed(ebiten.KeyShift) {
			d = year
		}
		if g.cal.Navigate(d) {
			g.stale = true
		}
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		step(calgrid.MonthBack, calgrid.YearBack)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		step(calgrid.MonthForward, calgrid.YearForward)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.tap(x, y)
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		g.tap(x, y)
	}

	if g.stale {
		frame, err := g.cal.Frame()
		if err != nil {
			return err
		}
		g.frame = frame
		s := g.cal.Snapshot()
		g.header = g.cal.Grid().Header(weekdayLabels(g.cal.Grid().WeekStart()), titleHeight+headerHeight/2,
			s.Layout, g.faces[calgrid.FontDay])
		g.stale = false
	}
	return nil
}

func (g *game) tap(x, y int) {
	if _, _, selected := g.cal.Tap(float64(x), float64(y-gridTop)); selected {
		g.stale = true
	}
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(g.bg)

	s := g.cal.Snapshot()
	title := s.Month.Start().Format("January 2006")
	day := g.faces[calgrid.FontDay]
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(g.width)/2-day.Advance(title)/2, (titleHeight-day.Size())/2)
	op.ColorScale.ScaleWithColor(g.cal.Grid().Palette().Text)
	text.Draw(screen, title, day.gt, op)

	g.execute(screen, g.header, 0)
	g.execute(screen, g.frame.Instructions, gridTop)
}

// execute draws instructions shifted down by top. ebiten positions text
// by the top of the line box, so baselines move up by the ascent.
func (g *game) execute(screen *ebiten.Image, ops []calgrid.DrawInstruction, top int) {
	for _, op := range ops {
		switch op := op.(type) {
		case calgrid.Circle:
			vector.DrawFilledCircle(screen, float32(op.CX), float32(op.CY+top), float32(op.R), op.Color, true)
		case calgrid.Text:
			f := g.faces[op.Font]
			if f == nil {
				continue
			}
			opts := &text.DrawOptions{}
			opts.GeoM.Translate(float64(op.X), float64(op.Y+top)-f.gt.Metrics().HAscent)
			opts.ColorScale.ScaleWithColor(op.Color)
			text.Draw(screen, op.Content, f.gt, opts)
		}
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width {
		g.width = outsideWidth
		g.cal.Resize(float64(outsideWidth))
		g.stale = true
	}
	return outsideWidth, outsideHeight
}
