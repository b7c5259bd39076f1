package ui

import (
	"fmt"
	"strings"

	"github.com/lmoreno/weekendly/internal/activity"
	"github.com/lmoreno/weekendly/internal/places"
	"github.com/lmoreno/weekendly/internal/plan"
	"github.com/lmoreno/weekendly/internal/timeutil"
)

// shortID returns the first 8 characters of a placement id, enough to
// reference it unambiguously in a two-day plan.
func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

// resolveRef finds the single placement whose id starts with ref.
func (a *App) resolveRef(ref string) (*plan.ScheduledActivity, error) {
	if ref == "" {
		return nil, fmt.Errorf("activity reference cannot be empty")
	}

	var match *plan.ScheduledActivity
	for _, d := range plan.Days {
		for _, sa := range a.store.DayActivities(d) {
			if strings.HasPrefix(sa.ID, ref) {
				if match != nil {
					return nil, fmt.Errorf("reference %q is ambiguous, use more characters", ref)
				}
				match = sa
			}
		}
	}
	if match == nil {
		return nil, fmt.Errorf("%w: %s", plan.ErrNotFound, ref)
	}
	return match, nil
}

// printPlanHeader prints the plan name, theme, and total planned time.
func (a *App) printPlanHeader() {
	p := a.store.Plan()
	title := p.Name
	if p.Theme != "" {
		title += fmt.Sprintf(" (%s)", p.Theme)
	}
	fmt.Println(formatHeader(title))
	fmt.Println(formatMuted(fmt.Sprintf("total planned: %s across %d activities",
		timeutil.FormatDuration(a.store.TotalDurationMin()), p.ActivityCount())))
	fmt.Println()
}

// printDay prints one day's timeline with its capacity summary.
func (a *App) printDay(d plan.Day) {
	bounds := a.store.Plan().TimeBounds.For(d)
	fmt.Printf("%s %s\n",
		formatDay(fmt.Sprintf("=== %s ===", d.Title())),
		formatMuted(fmt.Sprintf("(%02d:00-%02d:00)", bounds.StartHour, bounds.EndHour)))

	list := a.store.DayActivities(d)
	if len(list) == 0 {
		fmt.Println(formatMuted("  nothing planned"))
	}
	for _, sa := range list {
		a.printActivityLine(sa)
	}

	cap := a.store.DayCapacity(d)
	line := fmt.Sprintf("  %s used, %s free",
		timeutil.FormatDuration(cap.UsedMinutes),
		timeutil.FormatDuration(cap.AvailableMinutes))
	if cap.CanFit {
		fmt.Println(formatStats(line))
	} else {
		fmt.Println(formatWarn(line))
	}
	fmt.Println()
}

func (a *App) printActivityLine(sa *plan.ScheduledActivity) {
	act, resolved := a.store.ResolveActivity(sa)

	name := act.Name
	if !resolved {
		name = formatWarn(name)
	}
	fmt.Printf("  %s  %s  %s %s %s\n",
		formatMuted(shortID(sa.ID)),
		formatTime(timeutil.FormatClockRange(sa.Start, sa.End)),
		act.Icon, name,
		formatMuted("("+timeutil.FormatDuration(a.store.EffectiveDuration(sa))+")"))
	if act.Location != nil && act.Location.Address != "" {
		fmt.Printf("             %s\n", formatMuted("📍 "+act.Location.Address))
	}
	if sa.Notes != "" {
		fmt.Printf("             %s\n", formatMuted(truncate(sa.Notes, termWidth()-13)))
	}
}

// truncate shortens s to at most w characters, marking the cut.
func truncate(s string, w int) string {
	if w < 4 || len(s) <= w {
		return s
	}
	return s[:w-1] + "…"
}

// printFreeSlots prints the open gaps for a day.
func (a *App) printFreeSlots(d plan.Day) {
	slots := a.store.FreeSlots(d)
	if len(slots) == 0 {
		fmt.Println(formatMuted("  no free slots"))
		return
	}
	for _, s := range slots {
		fmt.Printf("  %s %s\n",
			formatTime(timeutil.FormatClockRange(s.Start, s.End)),
			formatMuted("("+timeutil.FormatDuration(s.DurationMin())+")"))
	}
}

// printEvicted warns about activities dropped by a cascade.
func (a *App) printEvicted(evicted []*plan.ScheduledActivity) {
	if len(evicted) == 0 {
		return
	}
	fmt.Println(formatWarn(fmt.Sprintf("%d activity(ies) no longer fit and were removed:", len(evicted))))
	for _, sa := range evicted {
		act, _ := a.store.ResolveActivity(sa)
		fmt.Printf("  %s %s %s\n", formatWarn("✗"), act.Icon, act.Name)
	}
}

// printCatalog prints catalog entries as an aligned table.
func printCatalog(activities []activity.Activity) {
	nameWidth := 0
	for _, act := range activities {
		if len(act.Name) > nameWidth {
			nameWidth = len(act.Name)
		}
	}

	for _, act := range activities {
		moods := make([]string, len(act.Moods))
		for i, m := range act.Moods {
			moods[i] = string(m)
		}
		fmt.Printf("  %-22s %s %-*s %-10s %s\n",
			formatMuted(act.ID),
			act.Icon,
			nameWidth, act.Name,
			timeutil.FormatDuration(act.DurationMin),
			formatMuted(strings.Join(moods, ", ")))
	}
}

// printPlaces prints nearby search results, numbered for --schedule.
func printPlaces(results []places.Place) {
	for i, p := range results {
		fmt.Printf("  %2d. %s %s\n", i+1, formatHeader(p.Name),
			formatMuted(fmt.Sprintf("(%.1f km)", p.DistanceKm)))
		fmt.Printf("      %s\n", formatMuted(p.Address))
	}
}

// printSummaries prints saved plan listings.
func printSummaries(summaries []plan.Summary) {
	for _, s := range summaries {
		theme := ""
		if s.Theme != "" {
			theme = " [" + s.Theme + "]"
		}
		fmt.Printf("  %s  %s%s %s\n",
			formatMuted(shortID(s.ID)),
			formatHeader(s.Name), theme,
			formatMuted(fmt.Sprintf("(%d activities, updated %s)",
				s.ActivityCount, s.UpdatedAt.Format("2006-01-02 15:04"))))
	}
}
