package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lmoreno/weekendly/internal/activity"
	"github.com/lmoreno/weekendly/internal/plan"
)

func (a *App) newCmd() *cobra.Command {
	var (
		theme    string
		template string
	)

	cmd := &cobra.Command{
		Use:   "new [name]",
		Short: "Create a new weekend plan",
		Long: `Create a new weekend plan and make it the current one.

A template pre-fills both days with its suggested activities, placed
into the earliest available slots.

Example:
  weekendly new "Lazy Weekend" --theme=lazy
  weekendly new --template=adventure-weekend`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			name := ""
			if len(args) == 1 {
				name = args[0]
			}

			th := activity.Theme(theme)
			if theme != "" && !th.Valid() {
				return fmt.Errorf("unknown theme %q", theme)
			}

			var tpl *activity.Template
			if template != "" {
				t, ok := activity.TemplateByID(template)
				if !ok {
					return fmt.Errorf("unknown template %q", template)
				}
				tpl = &t
				if name == "" {
					name = t.Name
				}
				if theme == "" {
					th = t.Theme
				}
			}

			p := a.store.NewPlan(name, th, a.config.TimeBounds())

			if tpl != nil {
				half := (len(tpl.Suggested) + 1) / 2
				for i, id := range tpl.Suggested {
					act, ok := a.catalog.ByID(id)
					if !ok {
						continue
					}
					day := plan.Saturday
					if i >= half {
						day = plan.Sunday
					}
					if _, err := a.store.AddAuto(act, day); err != nil {
						continue // day full, try the remaining suggestions
					}
				}
			}

			if err := a.persist(cmd.Context()); err != nil {
				return err
			}

			fmt.Printf("Created plan %s: %s\n", formatMuted(shortID(p.ID)), formatHeader(p.Name))
			if tpl != nil {
				fmt.Printf("Pre-filled from template %q (%d activities)\n", tpl.Name, p.ActivityCount())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&theme, "theme", "", "Plan theme: lazy, adventurous, family, romantic, productive, social, wellness, cultural")
	cmd.Flags().StringVar(&template, "template", "", "Template id to pre-fill from (see 'weekendly catalog templates')")

	return cmd
}
