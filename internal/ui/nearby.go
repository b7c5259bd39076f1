package ui

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lmoreno/weekendly/internal/places"
	"github.com/lmoreno/weekendly/internal/plan"
	"github.com/lmoreno/weekendly/internal/timeutil"
)

func (a *App) nearbyCmd() *cobra.Command {
	var (
		kind     string
		radius   int
		schedule int
		day      string
	)

	cmd := &cobra.Command{
		Use:   "nearby [lat] [lng]",
		Short: "Discover schedulable places near a location",
		Long: `Search for places near the given coordinates and list them as
schedulable activities. Requires a Geoapify API key in the config or
the WEEKENDLY_GEOAPIFY_API_KEY environment variable.

With --schedule=N, the Nth result is added to the earliest free slot
of --day instead of just being listed.`,
		Example: `  weekendly nearby 40.4168 -3.7038
  weekendly nearby 40.4168 -3.7038 --kind=cafe
  weekendly nearby 40.4168 -3.7038 --kind=park --schedule=1 --day=sunday`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			lat, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("latitude must be a number, got %q", args[0])
			}
			lng, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("longitude must be a number, got %q", args[1])
			}

			var kinds []places.Kind
			if kind != "" {
				k, ok := places.ParseKind(kind)
				if !ok {
					return fmt.Errorf("unknown kind %q, one of: %v", kind, places.Kinds)
				}
				kinds = append(kinds, k)
			}

			if radius == 0 {
				radius = a.config.Places.RadiusM
			}

			opts := []places.ClientOption{}
			if a.config.Places.BaseURL != "" {
				opts = append(opts, places.WithBaseURL(a.config.Places.BaseURL))
			}
			client := places.NewClient(a.config.Places.APIKey, opts...)

			ctx := cmd.Context()
			results, err := client.SearchNearby(ctx, lat, lng, radius, kinds)
			if err != nil {
				return err
			}
			if len(results) == 0 {
				fmt.Println("No places found; try a wider radius or another kind.")
				return nil
			}

			if schedule == 0 {
				where, gErr := client.ReverseGeocode(ctx, lat, lng)
				if gErr != nil {
					where = fmt.Sprintf("%.4f, %.4f", lat, lng)
				}
				fmt.Println(formatHeader(fmt.Sprintf("%d place(s) near %s:", len(results), where)))
				printPlaces(results)
				fmt.Println(formatMuted("schedule one with --schedule=N --day=saturday|sunday"))
				return nil
			}

			if schedule < 1 || schedule > len(results) {
				return fmt.Errorf("--schedule must be between 1 and %d", len(results))
			}
			d, err := plan.ParseDay(day)
			if err != nil {
				return err
			}

			if err := a.loadCurrent(ctx); err != nil {
				return err
			}

			act := places.ToActivity(results[schedule-1])
			sa, err := a.store.AddAuto(act, d)
			if err != nil {
				return err
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

	cmd.Flags().StringVar(&kind, "kind", "", "Place kind: restaurant, cafe, park, museum, fitness, shopping, entertainment, attraction")
	cmd.Flags().IntVar(&radius, "radius", 0, "Search radius in meters (default from config)")
	cmd.Flags().IntVar(&schedule, "schedule", 0, "Schedule the Nth result instead of listing")
	cmd.Flags().StringVar(&day, "day", "saturday", "Day to schedule onto (with --schedule)")

	return cmd
}
