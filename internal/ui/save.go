package ui

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func (a *App) saveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "save [name]",
		Short: "Save the current plan, optionally renaming it",
		Long: `Persist the current plan. Mutating commands already save after
every change; 'save' exists to rename the plan or to refresh its
updated-at timestamp so it becomes the current plan again.

Example:
  weekendly save "Hiking Weekend"`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.loadCurrent(ctx); err != nil {
				return err
			}

			p := a.store.Plan()
			if len(args) == 1 && args[0] != "" {
				p.Name = args[0]
			}
			p.UpdatedAt = time.Now()
			if err := a.persist(ctx); err != nil {
				return err
			}

			fmt.Printf("Saved %s %s\n", formatHeader(p.Name), formatMuted("["+shortID(p.ID)+"]"))
			return nil
		},
	}
}
