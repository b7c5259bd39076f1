package ui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/lmoreno/weekendly/internal/activity"
	"github.com/lmoreno/weekendly/internal/config"
	"github.com/lmoreno/weekendly/internal/db"
	"github.com/lmoreno/weekendly/internal/plan"
	"github.com/lmoreno/weekendly/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	repo    plan.Repository
	store   *plan.Store
	catalog *activity.Catalog
	config  *config.Config
	root    *cobra.Command
	noColor bool
}

// NewApp creates a new CLI application with the given repository and config.
// A nil repository is opened lazily from the configured database path.
func NewApp(repo plan.Repository, cfg *config.Config) *App {
	catalog := activity.Default()
	a := &App{
		repo:    repo,
		catalog: catalog,
		store:   plan.NewStore(catalog),
		config:  cfg,
	}

	a.root = &cobra.Command{
		Use:   "weekendly",
		Short: "A CLI tool for planning your weekend",
		Long: `Weekendly plans your Saturday and Sunday as conflict-free timelines.

Pick activities from the catalog or discover places nearby, let the
scheduler find the earliest open slot, and reshuffle the day without
ever creating overlaps.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}
			return tui.Run(a.store, a.repo, a.config)
		},
	}

	a.root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable colored output")
	cobra.OnInitialize(func() {
		if a.noColor || a.config.UI.NoColor {
			DisableColor()
		}
	})

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.newCmd())
	a.root.AddCommand(a.addCmd())
	a.root.AddCommand(a.scheduleCmd())
	a.root.AddCommand(a.catalogCmd())
	a.root.AddCommand(a.removeCmd())
	a.root.AddCommand(a.editCmd())
	a.root.AddCommand(a.moveCmd())
	a.root.AddCommand(a.boundsCmd())
	a.root.AddCommand(a.saveCmd())
	a.root.AddCommand(a.plansCmd())
	a.root.AddCommand(a.loadCmd())
	a.root.AddCommand(a.deletePlanCmd())
	a.root.AddCommand(a.nearbyCmd())
	a.root.AddCommand(a.exportCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("weekendly %s (commit: %s)\n", Version, Commit)
		},
	}
}

// ensureRepo opens the SQLite repository on first use.
func (a *App) ensureRepo() error {
	if a.repo != nil {
		return nil
	}

	if dir := filepath.Dir(a.config.Storage.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating data directory: %w", err)
		}
	}

	repo, err := db.New(a.config.Storage.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	a.repo = repo
	return nil
}

// loadCurrent loads the most recently saved plan into the store. Commands
// that mutate the schedule call this first; it fails with a hint when no
// plan exists yet.
func (a *App) loadCurrent(ctx context.Context) error {
	if err := a.ensureRepo(); err != nil {
		return err
	}

	p, err := a.repo.LoadLatest(ctx)
	if err != nil {
		return fmt.Errorf("loading plan: %w", err)
	}
	if p == nil {
		return fmt.Errorf("%w: create one with 'weekendly new'", plan.ErrNoPlan)
	}
	a.store.SetPlan(p)
	return nil
}

// persist saves the store's current plan.
func (a *App) persist(ctx context.Context) error {
	if err := a.repo.SavePlan(ctx, a.store.Plan()); err != nil {
		return fmt.Errorf("saving plan: %w", err)
	}
	return nil
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// Close releases the repository if one was opened.
func (a *App) Close() error {
	if a.repo == nil {
		return nil
	}
	return a.repo.Close()
}
