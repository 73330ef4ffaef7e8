package main

import (
	"context"
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/gogpu/calgrid"
	"github.com/gogpu/calgrid/canvas"
	"github.com/gogpu/calgrid/internal/annotations"
	"github.com/gogpu/calgrid/text"
)

// headerHeight is the weekday label band drawn above the grid.
const headerHeight = 28

type renderFlags struct {
	out      string
	prefix   string
	jobs     int
	today    string
	selected string
	header   bool
}

func newRenderCmd(a *app) *cobra.Command {
	var f renderFlags
	cmd := &cobra.Command{
		Use:   "render [MONTH | FROM..TO]...",
		Short: "Render months to PNG files",
		Long: `Render one PNG per month. Months are YYYY-MM; FROM..TO renders an
inclusive range. Without arguments the current month is rendered.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			months, err := parseMonths(args, now)
			if err != nil {
				return err
			}
			r, err := a.newRenderer(f, now)
			if err != nil {
				return err
			}
			if err := os.MkdirAll(f.out, 0o755); err != nil {
				return err
			}
			paths, err := r.renderAll(cmd.Context(), months, f.out, f.prefix, f.jobs)
			for _, p := range paths {
				if p != "" {
					fmt.Fprintln(cmd.OutOrStdout(), p)
				}
			}
			return err
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&f.out, "out", "o", ".", "output directory")
	flags.StringVar(&f.prefix, "prefix", "calendar-", "output file name prefix")
	flags.IntVarP(&f.jobs, "jobs", "j", runtime.NumCPU(), "months rendered in parallel")
	flags.StringVar(&f.today, "today", "", "date highlighted as today (YYYY-MM-DD, default the current date, \"none\" to disable)")
	flags.StringVar(&f.selected, "select", "", "selected date (YYYY-MM-DD)")
	flags.BoolVar(&f.header, "header", true, "draw weekday labels above the grid")
	return cmd
}

// parseMonths expands month arguments. Ranges are inclusive and must be
// ascending.
func parseMonths(args []string, now time.Time) ([]calgrid.Month, error) {
	if len(args) == 0 {
		return []calgrid.Month{calgrid.MonthOf(now)}, nil
	}
	var out []calgrid.Month
	for _, arg := range args {
		from, to, isRange := strings.Cut(arg, "..")
		first, err := calgrid.ParseMonth(from)
		if err != nil {
			return nil, err
		}
		if !isRange {
			out = append(out, first)
			continue
		}
		last, err := calgrid.ParseMonth(to)
		if err != nil {
			return nil, err
		}
		if first.After(last) {
			return nil, fmt.Errorf("range %s: %s is after %s", arg, first, last)
		}
		for m := first; !m.After(last); m = m.Next() {
			out = append(out, m)
		}
	}
	return out, nil
}

type renderer struct {
	grid     *calgrid.Grid
	day      *text.Face
	mark     *text.Face
	ann      calgrid.Annotations
	bg       color.RGBA
	width    float64
	today    calgrid.Date
	selected calgrid.Date
	header   bool
}

func parseOptionalDate(s string, def calgrid.Date) (calgrid.Date, error) {
	switch s {
	case "":
		return def, nil
	case "none":
		return calgrid.Date{}, nil
	}
	return calgrid.ParseDate(s)
}

func (a *app) newGrid() (*calgrid.Grid, error) {
	opts, err := a.cfg.GridOptions()
	if err != nil {
		return nil, err
	}
	return calgrid.NewGrid(opts...), nil
}

func (a *app) newRenderer(f renderFlags, now time.Time) (*renderer, error) {
	grid, err := a.newGrid()
	if err != nil {
		return nil, err
	}
	day, mark, err := a.cfg.Faces()
	if err != nil {
		return nil, err
	}
	bg, err := a.cfg.Background()
	if err != nil {
		return nil, err
	}
	r := &renderer{
		grid:   grid,
		day:    day,
		mark:   mark,
		bg:     bg,
		width:  a.cfg.Layout.ViewportWidth,
		header: f.header,
	}
	if r.today, err = parseOptionalDate(f.today, calgrid.DateOf(now)); err != nil {
		return nil, err
	}
	if r.selected, err = parseOptionalDate(f.selected, calgrid.Date{}); err != nil {
		return nil, err
	}
	if a.cfg.Annotations != "" {
		if r.ann, err = annotations.Load(a.cfg.Annotations); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func weekdayLabels(start time.Weekday) [calgrid.Columns]string {
	var labels [calgrid.Columns]string
	for i := range labels {
		labels[i] = ((start + time.Weekday(i)) % 7).String()[:3]
	}
	return labels
}

// render draws m onto a new canvas sized to the viewport width and the
// grid height.
func (r *renderer) render(m calgrid.Month) (*canvas.Canvas, error) {
	l := r.grid.Layout(r.width, m)
	ops, err := r.grid.Render(calgrid.RenderInput{
		Month:       m,
		Annotations: r.ann,
		Today:       r.today,
		Selected:    r.selected,
		Layout:      l,
		DayFont:     r.day,
		MarkFont:    r.mark,
	})
	if err != nil {
		return nil, err
	}

	top := 0
	if r.header {
		top = headerHeight
	}
	h := int(math.Ceil(r.grid.TotalHeight(m, l))) + top
	c, err := canvas.New(int(math.Ceil(r.width)), h)
	if err != nil {
		return nil, err
	}
	c.SetFont(calgrid.FontDay, r.day)
	c.SetFont(calgrid.FontMark, r.mark)
	c.Clear(r.bg)
	if r.header {
		labels := r.grid.Header(weekdayLabels(r.grid.WeekStart()), headerHeight/2, l, r.day)
		if err := c.Execute(labels); err != nil {
			_ = c.Close()
			return nil, err
		}
	}
	c.SetOrigin(0, top)
	if err := c.Execute(ops); err != nil {
		_ = c.Close()
		return nil, err
	}
	return c, nil
}

// renderAll renders months concurrently and returns the written paths in
// argument order. Paths of months that failed are empty.
func (r *renderer) renderAll(ctx context.Context, months []calgrid.Month, dir, prefix string, jobs int) ([]string, error) {
	if jobs < 1 {
		jobs = 1
	}
	paths := make([]string, len(months))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, m := range months {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			c, err := r.render(m)
			if err != nil {
				return fmt.Errorf("%s: %w", m, err)
			}
			defer func() { _ = c.Close() }()

			path := filepath.Join(dir, prefix+m.String()+".png")
			if err := c.SavePNG(path); err != nil {
				return fmt.Errorf("%s: %w", m, err)
			}
			paths[i] = path
			calgrid.Logger().Info("calrender: rendered", "month", m.String(), "path", path,
				"width", c.Width(), "height", c.Height())
			return nil
		})
	}
	return paths, g.Wait()
}
