package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lmoreno/weekendly/internal/activity"
)

func (a *App) catalogCmd() *cobra.Command {
	var (
		category string
		mood     string
	)

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Browse the activity catalog",
		Long:  `List the built-in activities, optionally filtered by category or mood.`,
		Example: `  weekendly catalog
  weekendly catalog --category=outdoor
  weekendly catalog --mood=relaxed`,
		RunE: func(_ *cobra.Command, _ []string) error {
			matches := a.catalog.Filter(activity.Category(category), activity.Mood(mood))
			if len(matches) == 0 {
				fmt.Println("No activities match those filters.")
				return nil
			}

			fmt.Println(formatHeader(fmt.Sprintf("%d activities", len(matches))))
			printCatalog(matches)
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Filter by category (food, outdoor, entertainment, wellness, social, creative, learning, home)")
	cmd.Flags().StringVar(&mood, "mood", "", "Filter by mood (energetic, relaxed, happy, adventurous, cozy, productive, social)")

	cmd.AddCommand(templatesCmd())

	return cmd
}

func templatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List the weekend templates",
		Run: func(_ *cobra.Command, _ []string) {
			for _, t := range activity.Templates() {
				fmt.Printf("  %-22s %s %s\n", formatMuted(t.ID), t.Icon, formatHeader(t.Name))
				fmt.Printf("      %s\n", formatMuted(t.Description))
			}
		},
	}
}
