package export

import (
	"strings"
	"testing"
	"time"

	"github.com/lmoreno/weekendly/internal/activity"
	"github.com/lmoreno/weekendly/internal/plan"
)

func exportTestPlan() (*plan.WeekendPlan, Resolver) {
	catalog := activity.NewCatalog([]activity.Activity{
		{ID: "hike", Name: "Morning Hike", Category: activity.CategoryOutdoor, DurationMin: 120, Icon: "🥾"},
	})

	cafe := activity.Activity{
		ID:            "loc-cafe",
		Name:          "Blue Bottle Coffee",
		Category:      activity.CategoryDining,
		DurationMin:   60,
		Icon:          "☕",
		LocationBased: true,
		Location: &activity.Location{
			Name:    "Blue Bottle Coffee",
			Address: "123 Main St",
			Lat:     40.4162,
			Lng:     -3.7005,
		},
	}

	sat := time.Date(2026, time.January, 10, 9, 0, 0, 0, time.Local)
	p := &plan.WeekendPlan{
		ID:   "p1",
		Name: "Chill Weekend",
		Saturday: []*plan.ScheduledActivity{
			{ID: "sa1", ActivityID: "hike", Start: sat, End: sat.Add(2 * time.Hour), Day: plan.Saturday, Notes: "bring water"},
			{ID: "sa2", ActivityID: "loc-cafe", Start: sat.Add(3 * time.Hour), End: sat.Add(4 * time.Hour), Day: plan.Saturday, ActivityData: &cafe},
		},
		Sunday: []*plan.ScheduledActivity{},
		TimeBounds: plan.TimeBounds{
			Saturday: plan.Bounds{StartHour: 9, EndHour: 21},
			Sunday:   plan.Bounds{StartHour: 9, EndHour: 21},
		},
		CreatedAt: time.Date(2026, time.January, 7, 12, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2026, time.January, 7, 12, 0, 0, 0, time.UTC),
	}

	resolve := func(sa *plan.ScheduledActivity) (activity.Activity, bool) {
		if sa.ActivityData != nil {
			return *sa.ActivityData, true
		}
		if a, ok := catalog.ByID(sa.ActivityID); ok {
			return a, true
		}
		return activity.Unresolved(sa.ActivityID), false
	}
	return p, resolve
}

func TestText(t *testing.T) {
	p, resolve := exportTestPlan()
	got := Text(p, resolve)

	for _, want := range []string{
		"Chill Weekend",
		"Saturday",
		"Morning Hike",
		"2h",
		"Blue Bottle Coffee",
		"123 Main St",
		"bring water",
		"(nothing planned)", // empty Sunday
		"Total planned: 3h",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("text output missing %q:\n%s", want, got)
		}
	}
}

func TestMarkdown(t *testing.T) {
	p, resolve := exportTestPlan()
	got := Markdown(p, resolve)

	for _, want := range []string{
		"# Chill Weekend",
		"## Saturday",
		"## Sunday",
		"| Time | Activity | Duration |",
		"Morning Hike",
		"_Nothing planned._",
		"**Total planned:** 3h",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("markdown output missing %q:\n%s", want, got)
		}
	}
}

func TestICS(t *testing.T) {
	p, resolve := exportTestPlan()
	got := ICS(p, resolve)

	for _, want := range []string{
		"BEGIN:VCALENDAR",
		"END:VCALENDAR",
		"METHOD:PUBLISH",
		"UID:sa1@weekendly",
		"UID:sa2@weekendly",
		"Morning Hike",
		"LOCATION:123 Main St",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("ics output missing %q:\n%s", want, got)
		}
	}

	if count := strings.Count(got, "BEGIN:VEVENT"); count != 2 {
		t.Errorf("got %d VEVENTs, want 2", count)
	}
}
