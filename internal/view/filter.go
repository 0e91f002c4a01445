package view

import "github.com/BokGosha/schedule-coursework/internal/model"

// AvailableColors returns the distinct color tags present in the aggregated
// set, in first-seen order. Events without a color do not contribute a tag.
func AvailableColors(events []model.AggregatedEvent) []string {
	seen := make(map[string]bool, len(events))
	colors := make([]string, 0, len(events))
	for _, ev := range events {
		if ev.Color == "" || seen[ev.Color] {
			continue
		}
		seen[ev.Color] = true
		colors = append(colors, ev.Color)
	}
	return colors
}

// ApplyFilter narrows the aggregated set to events carrying the selected
// color. An empty selection means "show all". The selection is not
// validated against the current color set: a persisted color that no
// longer occurs legitimately yields an empty result.
func ApplyFilter(events []model.AggregatedEvent, selected string) []model.AggregatedEvent {
	if selected == "" {
		return events
	}
	out := make([]model.AggregatedEvent, 0, len(events))
	for _, ev := range events {
		if ev.Color == selected {
			out = append(out, ev)
		}
	}
	return out
}
