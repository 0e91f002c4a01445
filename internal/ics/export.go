// Package ics renders the aggregated event set as an iCalendar feed.
package ics

import (
	"fmt"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/BokGosha/schedule-coursework/internal/model"
)

// Export serializes the aggregated set into a VCALENDAR document.
// Recurring events carry an RRULE derived from their descriptor so
// consumers run their own expansion, the same contract the calendar UI's
// renderer works under.
func Export(events []model.AggregatedEvent) string {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//schedule-coursework//companion//EN")

	now := time.Now().UTC()
	for _, ev := range events {
		ve := cal.AddEvent(fmt.Sprintf("event-%d@schedule-coursework", ev.ID))
		ve.SetDtStampTime(now)
		ve.SetSummary(ev.Title)
		if ev.Description != "" {
			ve.SetDescription(ev.Description)
		}
		if ev.Location != "" {
			ve.SetLocation(ev.Location)
		}

		if ev.IsAllDay {
			ve.SetAllDayStartAt(ev.StartTime.UTC())
			ve.SetAllDayEndAt(ev.EndTime.UTC())
		} else {
			ve.SetStartAt(ev.StartTime.UTC())
			ve.SetEndAt(ev.EndTime.UTC())
		}

		if ev.Recurrence != nil {
			ve.AddRrule(fmt.Sprintf("FREQ=%s;INTERVAL=%d", ev.Recurrence.Frequency, ev.Recurrence.Interval))
		}
		if ev.Color != "" {
			ve.SetProperty(ical.ComponentProperty("COLOR"), ev.Color)
		}
	}

	return cal.Serialize()
}
