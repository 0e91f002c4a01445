// Package view implements the event visibility and aggregation engine: it
// merges the viewer's own events with events shared to them, resolves per
// event whether the viewer is owner or read-only grantee, expands recurrence
// metadata into renderer descriptors and applies the color filter.
package view

import (
	"log"

	"github.com/BokGosha/schedule-coursework/internal/model"
)

// Aggregate merges owned and shared events into one annotated set. If an
// event id appears in both inputs the owned copy wins and a single entry
// with ScopeOwned is emitted; a user sharing an event with themselves must
// not see it twice. Output order is unspecified; only id uniqueness is
// guaranteed. The inputs are not modified.
func Aggregate(currentUserID int64, owned, shared []model.Event) []model.AggregatedEvent {
	seen := make(map[int64]bool, len(owned)+len(shared))
	out := make([]model.AggregatedEvent, 0, len(owned)+len(shared))

	for _, ev := range owned {
		if seen[ev.ID] {
			continue
		}
		seen[ev.ID] = true
		out = append(out, annotate(currentUserID, ev))
	}
	for _, ev := range shared {
		if seen[ev.ID] {
			continue
		}
		seen[ev.ID] = true
		out = append(out, annotate(currentUserID, ev))
	}
	return out
}

// annotate attaches scope and, for recurring events, the recurrence
// descriptor. A failed expansion keeps the event in the set without a
// descriptor; dropping it from the calendar would be worse than rendering
// it as a one-off.
func annotate(currentUserID int64, ev model.Event) model.AggregatedEvent {
	agg := model.AggregatedEvent{Event: ev, Scope: model.ScopeShared}
	if ev.OwnerID == currentUserID {
		agg.Scope = model.ScopeOwned
	}

	desc, err := Expand(ev)
	if err != nil {
		log.Printf("Recurrence expansion failed for event %d: %v", ev.ID, err)
		return agg
	}
	agg.Recurrence = desc
	return agg
}

// IndexByID builds the id-keyed lookup used for O(1) ownership checks,
// built once per aggregation pass instead of scanning per query.
func IndexByID(events []model.Event) map[int64]model.Event {
	idx := make(map[int64]model.Event, len(events))
	for _, ev := range events {
		idx[ev.ID] = ev
	}
	return idx
}
