package view

import (
	"errors"
	"testing"
	"time"

	"github.com/BokGosha/schedule-coursework/internal/model"
)

func TestExpandNonRecurring(t *testing.T) {
	ev := event(1, 1, "")
	desc, err := Expand(ev)
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	if desc != nil {
		t.Error("non-recurring event produced a descriptor")
	}
}

func TestExpandUsesUTCTimeOfDay(t *testing.T) {
	// 09:00 UTC expressed in a +03:00 zone; the descriptor must still say
	// hour 9, not 12.
	msk := time.FixedZone("MSK", 3*3600)
	ev := model.Event{
		ID:             1,
		OwnerID:        1,
		Title:          "Standup",
		StartTime:      time.Date(2025, 6, 2, 12, 0, 0, 0, msk),
		EndTime:        time.Date(2025, 6, 2, 12, 30, 0, 0, msk),
		IsRecurring:    true,
		RecurrenceRule: model.FreqWeekly,
	}

	desc, err := Expand(ev)
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	if desc.HourOfDay != 9 || desc.MinuteOfDay != 0 {
		t.Errorf("time of day = %d:%02d, want 9:00", desc.HourOfDay, desc.MinuteOfDay)
	}
	if !desc.Anchor.Equal(ev.StartTime) {
		t.Errorf("anchor = %v, want start %v", desc.Anchor, ev.StartTime)
	}
	if desc.Interval != 1 {
		t.Errorf("interval = %d, want 1", desc.Interval)
	}
	if desc.Duration != "0:30" {
		t.Errorf("duration = %q, want 0:30", desc.Duration)
	}
}

func TestExpandPassesFrequencyThrough(t *testing.T) {
	ev := event(1, 1, "")
	ev.IsRecurring = true
	ev.RecurrenceRule = "FORTNIGHTLY" // not in the enumeration; still passed through

	desc, err := Expand(ev)
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	if desc.Frequency != "FORTNIGHTLY" {
		t.Errorf("frequency = %q, want FORTNIGHTLY", desc.Frequency)
	}
}

func TestExpandInvalidRange(t *testing.T) {
	ev := event(1, 1, "")
	ev.IsRecurring = true
	ev.RecurrenceRule = model.FreqDaily
	ev.EndTime = ev.StartTime.Add(-time.Hour)

	if _, err := Expand(ev); !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("err = %v, want ErrInvalidRange", err)
	}
}

func TestFormatDuration(t *testing.T) {
	start := ts(9, 0)
	tests := []struct {
		name string
		end  time.Time
		want string
	}{
		{"ninety minutes", start.Add(90 * time.Minute), "1:30"},
		{"forty five minutes", start.Add(45 * time.Minute), "0:45"},
		{"full day", start.Add(24 * time.Hour), "24:00"},
		{"one minute", start.Add(time.Minute), "0:01"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatDuration(start, tt.end)
			if err != nil {
				t.Fatalf("FormatDuration: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatDurationRejectsNonPositiveSpan(t *testing.T) {
	start := ts(9, 0)
	for _, end := range []time.Time{start, start.Add(-time.Minute)} {
		if _, err := FormatDuration(start, end); !errors.Is(err, ErrInvalidRange) {
			t.Errorf("end %v: err = %v, want ErrInvalidRange", end, err)
		}
	}
}
