// Command calview shows an interactive month calendar in a window.
//
// Click or touch a day to select it. Left and right arrows change the
// month; with Shift held they change the year.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/gogpu/calgrid"
	"github.com/gogpu/calgrid/internal/annotations"
	"github.com/gogpu/calgrid/internal/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfgFile, month string
	cmd := &cobra.Command{
		Use:          "calview",
		Short:        "Interactive month calendar",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cfgFile == "" {
				p, err := config.DefaultPath()
				if err != nil {
					return err
				}
				cfgFile = p
			}
			cfg, err := config.LoadOrCreate(cfgFile)
			if err != nil {
				return err
			}
			logger, closer := config.NewLogger(cfg.Log, cmd.ErrOrStderr())
			defer closer.Close()
			calgrid.SetLogger(logger)

			now := time.Now()
			initial := calgrid.MonthOf(now)
			if month != "" {
				if initial, err = calgrid.ParseMonth(month); err != nil {
					return err
				}
			}
			g, err := newGame(cfg, initial, now)
			if err != nil {
				return err
			}
			if cfg.Annotations != "" {
				ann, err := annotations.Load(cfg.Annotations)
				if err != nil {
					return err
				}
				g.cal.SetAnnotations(ann)
			}

			ebiten.SetWindowSize(int(cfg.Layout.ViewportWidth), windowHeight)
			ebiten.SetWindowTitle("calview")
			ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
			return ebiten.RunGame(g)
		},
	}
	cmd.Flags().StringVarP(&cfgFile, "config", "c", "", "config file")
	cmd.Flags().StringVarP(&month, "month", "m", "", "initial month (YYYY-MM)")
	return cmd
}
