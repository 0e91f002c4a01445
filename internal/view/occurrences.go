package view

import (
	"fmt"
	"log"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/BokGosha/schedule-coursework/internal/model"
)

// maxOccurrencesPerEvent caps expansion so a wide window over a daily rule
// cannot produce an unbounded result.
const maxOccurrencesPerEvent = 1000

// Occurrences materializes concrete instances of the aggregated set within
// the inclusive [from, to] window. Non-recurring events contribute
// themselves when they overlap the window; recurring events are expanded
// from their anchor with the stored frequency, each instance keeping the
// event's original duration. Events with a frequency the rule engine does
// not recognize are skipped with a log line rather than failing the whole
// pass.
func Occurrences(events []model.AggregatedEvent, from, to time.Time) ([]model.Occurrence, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("window %s..%s: %w", from.Format(time.RFC3339), to.Format(time.RFC3339), ErrInvalidRange)
	}

	var out []model.Occurrence
	for _, ev := range events {
		if ev.Recurrence == nil {
			if rangesOverlap(ev.StartTime, ev.EndTime, from, to) {
				out = append(out, instance(ev, ev.StartTime, ev.EndTime))
			}
			continue
		}

		freq, err := ruleFrequency(ev.Recurrence.Frequency)
		if err != nil {
			log.Printf("Skipping occurrences for event %d: %v", ev.ID, err)
			continue
		}

		rule, err := rrule.NewRRule(rrule.ROption{
			Freq:     freq,
			Interval: ev.Recurrence.Interval,
			Dtstart:  ev.Recurrence.Anchor.UTC(),
		})
		if err != nil {
			log.Printf("Skipping occurrences for event %d: %v", ev.ID, err)
			continue
		}

		duration := ev.EndTime.Sub(ev.StartTime)
		// Start the scan one duration early so instances straddling the
		// window's left edge are not lost.
		starts := rule.Between(from.Add(-duration).UTC(), to.UTC(), true)
		if len(starts) > maxOccurrencesPerEvent {
			starts = starts[:maxOccurrencesPerEvent]
		}

		for _, start := range starts {
			end := start.Add(duration)
			if rangesOverlap(start, end, from, to) {
				out = append(out, instance(ev, start, end))
			}
		}
	}
	return out, nil
}

func ruleFrequency(freq string) (rrule.Frequency, error) {
	switch freq {
	case model.FreqDaily:
		return rrule.DAILY, nil
	case model.FreqWeekly:
		return rrule.WEEKLY, nil
	case model.FreqMonthly:
		return rrule.MONTHLY, nil
	case model.FreqYearly:
		return rrule.YEARLY, nil
	}
	return 0, fmt.Errorf("unrecognized recurrence rule %q", freq)
}

func instance(ev model.AggregatedEvent, start, end time.Time) model.Occurrence {
	return model.Occurrence{
		EventID: ev.ID,
		Title:   ev.Title,
		Start:   start,
		End:     end,
		AllDay:  ev.IsAllDay,
		Color:   ev.Color,
	}
}

func rangesOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	if aEnd.Before(bStart) {
		return false
	}
	if bEnd.Before(aStart) {
		return false
	}
	return true
}
