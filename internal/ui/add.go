package ui

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/lmoreno/weekendly/internal/plan"
	"github.com/lmoreno/weekendly/internal/timeutil"
)

func (a *App) addCmd() *cobra.Command {
	var (
		day      string
		at       string
		duration int
		notes    string
	)

	cmd := &cobra.Command{
		Use:   "add [activity-id]",
		Short: "Add an activity to the schedule",
		Long: `Add a catalog activity to a day.

Without --at, the activity goes into the earliest slot that fits.
With --at, it is placed at that exact time and rejected on conflict.

Example:
  weekendly add hiking-trail --day=saturday
  weekendly add brunch-cafe --day=sunday --at=11:00 --duration=90`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := plan.ParseDay(day)
			if err != nil {
				return err
			}

			act, ok := a.catalog.ByID(args[0])
			if !ok {
				return fmt.Errorf("unknown activity %q, see 'weekendly catalog'", args[0])
			}
			if duration > 0 {
				act.DurationMin = duration
			}

			ctx := cmd.Context()
			if err := a.loadCurrent(ctx); err != nil {
				return err
			}

			var sa *plan.ScheduledActivity
			if at != "" {
				start, err := a.clockOn(d, at)
				if err != nil {
					return err
				}
				sa, err = a.store.AddToSchedule(act, d, start)
				if err != nil {
					return describeConflict(err)
				}
			} else {
				sa, err = a.store.AddAuto(act, d)
				if err != nil {
					return err
				}
			}

			if notes != "" {
				if _, err := a.store.UpdateScheduled(sa.ID, plan.Update{Notes: &notes}); err != nil {
					return err
				}
			}

			if err := a.persist(ctx); err != nil {
				return err
			}

			fmt.Printf("Scheduled %s %s on %s at %s %s\n",
				act.Icon, formatHeader(act.Name), d.Title(),
				formatTime(timeutil.FormatClockRange(sa.Start, sa.End)),
				formatMuted("["+shortID(sa.ID)+"]"))
			return nil
		},
	}

	cmd.Flags().StringVar(&day, "day", "saturday", "Day: saturday or sunday")
	cmd.Flags().StringVar(&at, "at", "", "Exact start time (HH:MM); omit to auto-place")
	cmd.Flags().IntVar(&duration, "duration", 0, "Override the activity's nominal duration (minutes)")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes for this placement")

	return cmd
}

// clockOn parses HH:MM onto the resolved calendar date of the given day.
func (a *App) clockOn(d plan.Day, clock string) (time.Time, error) {
	parsed, err := time.Parse("15:04", clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("time must be HH:MM, got %q", clock)
	}

	dayStart, _ := plan.ResolveDay(d, a.store.Plan().TimeBounds.For(d), time.Now())
	return time.Date(dayStart.Year(), dayStart.Month(), dayStart.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0, dayStart.Location()), nil
}

// describeConflict augments a conflict rejection with its remediation hint.
func describeConflict(err error) error {
	var ce *plan.ConflictError
	if errors.As(err, &ce) {
		return fmt.Errorf("%s", ce.Kind.Message())
	}
	return err
}
