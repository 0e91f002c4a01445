package view

import (
	"reflect"
	"testing"

	"github.com/BokGosha/schedule-coursework/internal/model"
)

func aggregated(colors ...string) []model.AggregatedEvent {
	out := make([]model.AggregatedEvent, len(colors))
	for i, c := range colors {
		out[i] = model.AggregatedEvent{Event: event(int64(i+1), 1, c), Scope: model.ScopeOwned}
	}
	return out
}

func TestAvailableColors(t *testing.T) {
	events := aggregated("#3f51b5", "#ff0000", "#3f51b5", "")
	got := AvailableColors(events)
	want := []string{"#3f51b5", "#ff0000"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestApplyFilter(t *testing.T) {
	events := aggregated("#3f51b5", "#ff0000", "#3f51b5")

	got := ApplyFilter(events, "#3f51b5")
	if len(got) != 2 {
		t.Fatalf("got %d events, want 2", len(got))
	}
	for _, ev := range got {
		if ev.Color != "#3f51b5" {
			t.Errorf("event %d has color %q", ev.ID, ev.Color)
		}
	}
}

func TestApplyFilterShowAll(t *testing.T) {
	events := aggregated("#3f51b5", "#ff0000")
	got := ApplyFilter(events, "")
	if len(got) != len(events) {
		t.Errorf("got %d events, want %d", len(got), len(events))
	}
}

func TestApplyFilterIdempotent(t *testing.T) {
	events := aggregated("#3f51b5", "#ff0000", "#3f51b5")
	once := ApplyFilter(events, "#3f51b5")
	twice := ApplyFilter(once, "#3f51b5")
	if !reflect.DeepEqual(once, twice) {
		t.Error("filtering twice changed the result")
	}
}

func TestApplyFilterStaleColorYieldsEmpty(t *testing.T) {
	// A persisted color that no longer exists is expected, not an error.
	events := aggregated("#3f51b5")
	got := ApplyFilter(events, "#00ff00")
	if len(got) != 0 {
		t.Errorf("got %d events, want 0", len(got))
	}
}
