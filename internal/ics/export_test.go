package ics

import (
	"strings"
	"testing"
	"time"

	"github.com/BokGosha/schedule-coursework/internal/model"
)

func TestExport(t *testing.T) {
	start := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	events := []model.AggregatedEvent{
		{
			Event: model.Event{
				ID:        10,
				OwnerID:   1,
				Title:     "Standup",
				StartTime: start,
				EndTime:   start.Add(30 * time.Minute),
				Color:     "#3f51b5",
			},
			Scope: model.ScopeOwned,
			Recurrence: &model.RecurrenceDescriptor{
				Frequency:   model.FreqWeekly,
				Interval:    1,
				Anchor:      start,
				HourOfDay:   9,
				MinuteOfDay: 0,
				Duration:    "0:30",
			},
		},
		{
			Event: model.Event{
				ID:        20,
				OwnerID:   2,
				Title:     "Dentist",
				StartTime: start.AddDate(0, 0, 1),
				EndTime:   start.AddDate(0, 0, 1).Add(time.Hour),
			},
			Scope: model.ScopeShared,
		},
	}

	feed := Export(events)

	for _, want := range []string{
		"BEGIN:VCALENDAR",
		"SUMMARY:Standup",
		"SUMMARY:Dentist",
		"RRULE:FREQ=WEEKLY;INTERVAL=1",
		"UID:event-10@schedule-coursework",
		"COLOR:#3f51b5",
		"END:VCALENDAR",
	} {
		if !strings.Contains(feed, want) {
			t.Errorf("feed missing %q", want)
		}
	}

	// The non-recurring event must not carry a rule.
	if strings.Count(feed, "RRULE") != 1 {
		t.Errorf("expected exactly one RRULE, feed:\n%s", feed)
	}
}
