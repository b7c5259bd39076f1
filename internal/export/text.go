// Package export renders a weekend plan into shareable formats: plain text,
// markdown, and iCalendar.
package export

import (
	"fmt"
	"strings"

	"github.com/lmoreno/weekendly/internal/activity"
	"github.com/lmoreno/weekendly/internal/plan"
	"github.com/lmoreno/weekendly/internal/timeutil"
)

// Resolver maps a placement to its source activity. It has the same shape
// as the plan store's ResolveActivity so the store can be passed directly.
type Resolver func(*plan.ScheduledActivity) (activity.Activity, bool)

// Text renders the plan as plain shareable text.
func Text(p *plan.WeekendPlan, resolve Resolver) string {
	var b strings.Builder

	fmt.Fprintf(&b, "🌟 %s\n", p.Name)
	if p.Theme != "" {
		fmt.Fprintf(&b, "Theme: %s\n", p.Theme)
	}
	b.WriteString("\n")

	for _, d := range plan.Days {
		fmt.Fprintf(&b, "%s\n", d.Title())
		list := p.DayList(d)
		if len(list) == 0 {
			b.WriteString("  (nothing planned)\n")
		}
		for _, sa := range list {
			act, _ := resolve(sa)
			fmt.Fprintf(&b, "  %s  %s %s (%s)\n",
				timeutil.FormatClockRange(sa.Start, sa.End),
				act.Icon, act.Name,
				timeutil.FormatDuration(sa.DurationMin()))
			if act.Location != nil {
				fmt.Fprintf(&b, "           📍 %s\n", act.Location.Address)
			}
			if sa.Notes != "" {
				fmt.Fprintf(&b, "           %s\n", sa.Notes)
			}
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "Total planned: %s\n", timeutil.FormatDuration(totalMinutes(p)))
	return b.String()
}

// Markdown renders the plan as a markdown document with one section per day.
func Markdown(p *plan.WeekendPlan, resolve Resolver) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", p.Name)
	if p.Theme != "" {
		fmt.Fprintf(&b, "_Theme: %s_\n\n", p.Theme)
	}

	for _, d := range plan.Days {
		fmt.Fprintf(&b, "## %s\n\n", d.Title())
		list := p.DayList(d)
		if len(list) == 0 {
			b.WriteString("_Nothing planned._\n\n")
			continue
		}

		b.WriteString("| Time | Activity | Duration |\n")
		b.WriteString("| --- | --- | --- |\n")
		for _, sa := range list {
			act, _ := resolve(sa)
			name := act.Name
			if act.Location != nil {
				name = fmt.Sprintf("%s (%s)", name, act.Location.Address)
			}
			fmt.Fprintf(&b, "| %s | %s %s | %s |\n",
				timeutil.FormatClockRange(sa.Start, sa.End),
				act.Icon, name,
				timeutil.FormatDuration(sa.DurationMin()))
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "**Total planned:** %s\n", timeutil.FormatDuration(totalMinutes(p)))
	return b.String()
}

func totalMinutes(p *plan.WeekendPlan) int {
	total := 0
	for _, d := range plan.Days {
		for _, sa := range p.DayList(d) {
			total += sa.DurationMin()
		}
	}
	return total
}
