package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gogpu/calgrid"
)

func newTapCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tap MONTH X Y",
		Short: "Resolve a grid-relative point to the cell under it",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := calgrid.ParseMonth(args[0])
			if err != nil {
				return err
			}
			x, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("x: %w", err)
			}
			y, err := strconv.ParseFloat(args[2], 64)
			if err != nil {
				return fmt.Errorf("y: %w", err)
			}
			grid, err := a.newGrid()
			if err != nil {
				return err
			}
			tap, ok := grid.OnTap(x, y, m, grid.Layout(a.cfg.Layout.ViewportWidth, m))
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "miss")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\tcell=%d\tcurrent=%t\n", tap.Date, tap.Index, tap.Cell.IsCurrentMonth)
			return nil
		},
	}
}
