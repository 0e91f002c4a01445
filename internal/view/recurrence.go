package view

import (
	"fmt"
	"time"

	"github.com/BokGosha/schedule-coursework/internal/model"
)

// Expand converts an event's stored recurrence metadata into a renderer
// facing descriptor. Non-recurring events yield nil. The frequency is
// copied through verbatim; validating it against the known rule set is the
// schedule backend's write-time job, not a read-time concern here.
//
// Hour and minute are taken from the UTC components of the start instant,
// never a local zone, so the descriptor stays stable across summer and
// winter time changes.
func Expand(ev model.Event) (*model.RecurrenceDescriptor, error) {
	if !ev.IsRecurring {
		return nil, nil
	}

	duration, err := FormatDuration(ev.StartTime, ev.EndTime)
	if err != nil {
		return nil, err
	}

	start := ev.StartTime.UTC()
	return &model.RecurrenceDescriptor{
		Frequency:   ev.RecurrenceRule,
		Interval:    1,
		Anchor:      ev.StartTime,
		HourOfDay:   start.Hour(),
		MinuteOfDay: start.Minute(),
		Duration:    duration,
	}, nil
}

// FormatDuration renders the wall-clock span between start and end as
// "H:MM" with zero-padded minutes. A zero or negative span is invalid
// input and is rejected with ErrInvalidRange, never clamped.
func FormatDuration(start, end time.Time) (string, error) {
	span := end.Sub(start)
	if span <= 0 {
		return "", fmt.Errorf("span %s: %w", span, ErrInvalidRange)
	}

	hours := int(span / time.Hour)
	minutes := int(span % time.Hour / time.Minute)
	return fmt.Sprintf("%d:%02d", hours, minutes), nil
}
