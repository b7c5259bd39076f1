package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lmoreno/weekendly/internal/plan"
)

func (a *App) scheduleCmd() *cobra.Command {
	var free bool

	cmd := &cobra.Command{
		Use:   "schedule [day]",
		Short: "Show the weekend schedule",
		Long: `Display the current plan's timeline for both days, or one day.

With --free, shows the open gaps instead of the placements.`,
		Example: `  weekendly schedule
  weekendly schedule saturday
  weekendly schedule sunday --free`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.loadCurrent(cmd.Context()); err != nil {
				return err
			}

			days := plan.Days
			if len(args) == 1 {
				d, err := plan.ParseDay(args[0])
				if err != nil {
					return err
				}
				days = []plan.Day{d}
			}

			a.printPlanHeader()
			for _, d := range days {
				if free {
					fmt.Println(formatDay(fmt.Sprintf("=== %s free slots ===", d.Title())))
					a.printFreeSlots(d)
					fmt.Println()
					continue
				}
				a.printDay(d)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&free, "free", false, "Show free slots instead of placements")

	return cmd
}
