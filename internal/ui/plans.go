package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

func (a *App) plansCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plans",
		Short: "List saved plans",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			summaries, err := a.repo.ListPlans(cmd.Context())
			if err != nil {
				return fmt.Errorf("listing plans: %w", err)
			}
			if len(summaries) == 0 {
				fmt.Println("No saved plans. Create one with 'weekendly new'.")
				return nil
			}

			fmt.Println(formatHeader(fmt.Sprintf("%d saved plan(s), newest first:", len(summaries))))
			printSummaries(summaries)
			return nil
		},
	}
}

func (a *App) loadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load [id]",
		Short: "Make a saved plan the current one",
		Long: `Load a saved plan by id (any unique prefix) and make it current.
The current plan is always the most recently saved or loaded one.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.ensureRepo(); err != nil {
				return err
			}

			id, err := a.resolvePlanRef(cmd, args[0])
			if err != nil {
				return err
			}

			p, err := a.repo.LoadPlan(ctx, id)
			if err != nil {
				return fmt.Errorf("loading plan: %w", err)
			}
			if p == nil {
				return fmt.Errorf("no plan with id %s", args[0])
			}

			// Bumping updated_at on save makes this the current plan.
			p.UpdatedAt = time.Now()
			a.store.SetPlan(p)
			if err := a.persist(ctx); err != nil {
				return err
			}

			fmt.Printf("Loaded %s\n", formatHeader(p.Name))
			a.printPlanHeader()
			return nil
		},
	}
}

func (a *App) deletePlanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete-plan [id]",
		Short: "Delete a saved plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.ensureRepo(); err != nil {
				return err
			}

			id, err := a.resolvePlanRef(cmd, args[0])
			if err != nil {
				return err
			}

			if err := a.repo.DeletePlan(ctx, id); err != nil {
				return err
			}

			if a.store.HasPlan() && a.store.Plan().ID == id {
				a.store.Clear()
			}

			fmt.Printf("Deleted plan %s\n", formatMuted(shortID(id)))
			return nil
		},
	}
}

// resolvePlanRef expands a plan id prefix to the full id.
func (a *App) resolvePlanRef(cmd *cobra.Command, ref string) (string, error) {
	summaries, err := a.repo.ListPlans(cmd.Context())
	if err != nil {
		return "", fmt.Errorf("listing plans: %w", err)
	}

	var match string
	for _, s := range summaries {
		if strings.HasPrefix(s.ID, ref) {
			if match != "" {
				return "", fmt.Errorf("plan reference %q is ambiguous, use more characters", ref)
			}
			match = s.ID
		}
	}
	if match == "" {
		return "", fmt.Errorf("no plan with id %s", ref)
	}
	return match, nil
}
