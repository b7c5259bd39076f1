package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lmoreno/weekendly/internal/plan"
)

func (a *App) moveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "move [day] [id...]",
		Short: "Reorder a day's activities",
		Long: `Apply a new ordering to a day and repack it from the day's start
bound with no gaps. Every activity on the day must appear exactly once;
ids may be abbreviated.

Example:
  weekendly move saturday 9c41 3f2a b7d0`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := plan.ParseDay(args[0])
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if err := a.loadCurrent(ctx); err != nil {
				return err
			}

			ordered := make([]string, 0, len(args)-1)
			for _, ref := range args[1:] {
				sa, err := a.resolveRef(ref)
				if err != nil {
					return err
				}
				if sa.Day != d {
					return fmt.Errorf("activity %s is on %s, not %s", shortID(sa.ID), sa.Day.Title(), d.Title())
				}
				ordered = append(ordered, sa.ID)
			}

			if err := a.store.ReorderDay(d, ordered); err != nil {
				return err
			}
			if err := a.persist(ctx); err != nil {
				return err
			}

			fmt.Printf("Reordered %s:\n", d.Title())
			a.printDay(d)
			return nil
		},
	}
}
