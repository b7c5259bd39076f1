package ui

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/lmoreno/weekendly/internal/export"
)

func (a *App) exportCmd() *cobra.Command {
	var (
		format string
		out    string
		copy   bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the current plan",
		Long: `Render the current plan as shareable text, markdown, or an
iCalendar file importable into any calendar app.`,
		Example: `  weekendly export
  weekendly export --format=markdown --out=weekend.md
  weekendly export --format=ics --out=weekend.ics
  weekendly export --copy`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.loadCurrent(cmd.Context()); err != nil {
				return err
			}

			p := a.store.Plan()
			var rendered string
			switch format {
			case "text":
				rendered = export.Text(p, a.store.ResolveActivity)
			case "markdown", "md":
				rendered = export.Markdown(p, a.store.ResolveActivity)
			case "ics", "ical":
				rendered = export.ICS(p, a.store.ResolveActivity)
			default:
				return fmt.Errorf("unknown format %q, one of: text, markdown, ics", format)
			}

			if copy {
				if err := clipboard.WriteAll(rendered); err != nil {
					return fmt.Errorf("copying to clipboard: %w", err)
				}
				fmt.Println("Copied plan to clipboard.")
				return nil
			}

			if out != "" {
				if err := os.WriteFile(out, []byte(rendered), 0o644); err != nil {
					return fmt.Errorf("writing %s: %w", out, err)
				}
				fmt.Printf("Wrote %s\n", out)
				return nil
			}

			fmt.Print(rendered)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "Output format: text, markdown, or ics")
	cmd.Flags().StringVar(&out, "out", "", "Write to a file instead of stdout")
	cmd.Flags().BoolVar(&copy, "copy", false, "Copy the output to the clipboard")

	return cmd
}
