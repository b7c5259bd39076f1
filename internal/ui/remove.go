package ui

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) removeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove [id]",
		Short: "Remove an activity from the schedule",
		Long: `Remove a scheduled activity. The id may be abbreviated to any
unique prefix shown by 'weekendly schedule'.`,
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
			act, _ := a.store.ResolveActivity(sa)

			if err := a.store.RemoveScheduled(sa.ID); err != nil {
				return err
			}
			if err := a.persist(ctx); err != nil {
				return err
			}

			fmt.Printf("Removed %s %s from %s\n", act.Icon, act.Name, sa.Day.Title())
			return nil
		},
	}
}
