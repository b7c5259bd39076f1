package export

import (
	"fmt"

	ical "github.com/arran4/golang-ical"

	"github.com/lmoreno/weekendly/internal/plan"
)

// ICS renders the plan as an iCalendar document with one VEVENT per
// scheduled activity, importable into any calendar app.
func ICS(p *plan.WeekendPlan, resolve Resolver) string {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//weekendly//weekend planner//EN")
	cal.SetXWRCalName(p.Name)

	for _, d := range plan.Days {
		for _, sa := range p.DayList(d) {
			act, _ := resolve(sa)

			event := cal.AddEvent(fmt.Sprintf("%s@weekendly", sa.ID))
			event.SetCreatedTime(p.CreatedAt)
			event.SetDtStampTime(p.UpdatedAt)
			event.SetStartAt(sa.Start)
			event.SetEndAt(sa.End)
			event.SetSummary(fmt.Sprintf("%s %s", act.Icon, act.Name))

			desc := act.Description
			if sa.Notes != "" {
				if desc != "" {
					desc += "\n"
				}
				desc += "Notes: " + sa.Notes
			}
			if desc != "" {
				event.SetDescription(desc)
			}
			if act.Location != nil {
				event.SetLocation(act.Location.Address)
				event.SetGeo(act.Location.Lat, act.Location.Lng)
			}
		}
	}

	return cal.Serialize()
}
