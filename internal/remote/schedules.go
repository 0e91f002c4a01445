package remote

import (
	"context"
	"fmt"

	"github.com/BokGosha/schedule-coursework/internal/model"
)

// Schedules is the client for the schedule store: CRUD over the current
// user's own events.
type Schedules struct {
	c *Client
}

// List returns all events owned by the current user.
func (s *Schedules) List(ctx context.Context) ([]model.Event, error) {
	var events []model.Event
	if err := s.c.get(ctx, "/api/v1/schedules/", nil, &events); err != nil {
		return nil, fmt.Errorf("listing schedules: %w", err)
	}
	return events, nil
}

// Get returns one owned event by id.
func (s *Schedules) Get(ctx context.Context, id int64) (model.Event, error) {
	var event model.Event
	if err := s.c.get(ctx, fmt.Sprintf("/api/v1/schedules/%d", id), nil, &event); err != nil {
		return model.Event{}, fmt.Errorf("fetching schedule %d: %w", id, err)
	}
	return event, nil
}

// Create stores a new event owned by the current user.
func (s *Schedules) Create(ctx context.Context, draft model.EventDraft) (model.Event, error) {
	var event model.Event
	if err := s.c.post(ctx, "/api/v1/schedules/", draft, &event); err != nil {
		return model.Event{}, fmt.Errorf("creating schedule: %w", err)
	}
	return event, nil
}

// Update replaces the writable fields of an owned event.
func (s *Schedules) Update(ctx context.Context, id int64, draft model.EventDraft) (model.Event, error) {
	var event model.Event
	if err := s.c.put(ctx, fmt.Sprintf("/api/v1/schedules/%d", id), draft, &event); err != nil {
		return model.Event{}, fmt.Errorf("updating schedule %d: %w", id, err)
	}
	return event, nil
}

// Delete removes an owned event. Whether outstanding grants are cascaded is
// a backend concern; see the aggregation pass for dangling-grant handling.
func (s *Schedules) Delete(ctx context.Context, id int64) error {
	if err := s.c.delete(ctx, fmt.Sprintf("/api/v1/schedules/%d", id)); err != nil {
		return fmt.Errorf("deleting schedule %d: %w", id, err)
	}
	return nil
}
