package ui

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lmoreno/weekendly/internal/plan"
)

func (a *App) boundsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bounds [day] [start-hour] [end-hour]",
		Short: "Set a day's scheduling window",
		Long: `Set the hours within which activities may be placed on a day.

Existing activities outside the new window stay where they are; the
window applies to future placements and cascades.

Example:
  weekendly bounds saturday 10 20`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := plan.ParseDay(args[0])
			if err != nil {
				return err
			}
			start, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("start hour must be a number, got %q", args[1])
			}
			end, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("end hour must be a number, got %q", args[2])
			}

			ctx := cmd.Context()
			if err := a.loadCurrent(ctx); err != nil {
				return err
			}

			if err := a.store.SetBounds(d, plan.Bounds{StartHour: start, EndHour: end}); err != nil {
				return err
			}
			if err := a.persist(ctx); err != nil {
				return err
			}

			fmt.Printf("%s window is now %02d:00-%02d:00\n", d.Title(), start, end)
			return nil
		},
	}
}
