package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lmoreno/weekendly/internal/plan"
	"github.com/lmoreno/weekendly/internal/timeutil"
)

func (a *App) editCmd() *cobra.Command {
	var (
		start    string
		duration int
		notes    string
	)

	cmd := &cobra.Command{
		Use:   "edit [id]",
		Short: "Edit a scheduled activity's time, duration, or notes",
		Long: `Edit a scheduled activity in place.

Changing the time or duration shifts every later activity on the same
day back-to-back after the edited one; activities pushed past the day's
end bound are removed and reported.`,
		Example: `  weekendly edit 3f2a --start=14:00
  weekendly edit 3f2a --duration=90
  weekendly edit 3f2a --notes="book tickets first"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.loadCurrent(ctx); err != nil {
				return err
			}

			sa, err := a.resolveRef(args[0])
			if err != nil {
				return err
			}

			var upd plan.Update
			if start != "" {
				t, err := a.clockOn(sa.Day, start)
				if err != nil {
					return err
				}
				upd.Start = &t
			}
			if cmd.Flags().Changed("duration") {
				upd.CustomDurationMin = &duration
			}
			if cmd.Flags().Changed("notes") {
				upd.Notes = &notes
			}
			if upd.Start == nil && upd.CustomDurationMin == nil && upd.Notes == nil {
				return fmt.Errorf("nothing to change, pass --start, --duration, or --notes")
			}

			evicted, err := a.store.UpdateScheduled(sa.ID, upd)
			if err != nil {
				return describeConflict(err)
			}
			if err := a.persist(ctx); err != nil {
				return err
			}

			act, _ := a.store.ResolveActivity(sa)
			fmt.Printf("Updated %s %s: now %s\n",
				act.Icon, formatHeader(act.Name),
				formatTime(timeutil.FormatClockRange(sa.Start, sa.End)))
			a.printEvicted(evicted)
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "New start time (HH:MM)")
	cmd.Flags().IntVar(&duration, "duration", 0, "Custom duration in minutes (0 restores the nominal duration)")
	cmd.Flags().StringVar(&notes, "notes", "", "Replace the placement notes")

	return cmd
}
