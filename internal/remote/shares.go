package remote

import (
	"context"
	"fmt"

	"github.com/BokGosha/schedule-coursework/internal/model"
)

// Shares is the client for the share registry: grant CRUD plus the two
// read views scoped to the current user as grantee or as owner.
type Shares struct {
	c *Client
}

type createGrantRequest struct {
	ScheduleID      int64  `json:"schedule_id"`
	SharedWithID    int64  `json:"shared_with_id"`
	PermissionLevel string `json:"permission_level"`
}

// Create grants one user access to one event. The registry does not
// promise to reject a duplicate (schedule, grantee) pair.
func (s *Shares) Create(ctx context.Context, scheduleID, sharedWithID int64, permission string) (model.ShareGrant, error) {
	req := createGrantRequest{
		ScheduleID:      scheduleID,
		SharedWithID:    sharedWithID,
		PermissionLevel: permission,
	}
	var grant model.ShareGrant
	if err := s.c.post(ctx, "/api/v1/shared-schedules/", req, &grant); err != nil {
		return model.ShareGrant{}, fmt.Errorf("creating grant for schedule %d: %w", scheduleID, err)
	}
	return grant, nil
}

// For lists the grants on one event joined with each grantee's identity.
func (s *Shares) For(ctx context.Context, scheduleID int64) ([]model.GrantEntry, error) {
	var entries []model.GrantEntry
	if err := s.c.get(ctx, fmt.Sprintf("/api/v1/shared-schedules/%d", scheduleID), nil, &entries); err != nil {
		return nil, fmt.Errorf("listing grants for schedule %d: %w", scheduleID, err)
	}
	return entries, nil
}

// WithMe lists the raw grants addressed to the current user.
func (s *Shares) WithMe(ctx context.Context) ([]model.ShareGrant, error) {
	var grants []model.ShareGrant
	if err := s.c.get(ctx, "/api/v1/shared-schedules/shared-with-me", nil, &grants); err != nil {
		return nil, fmt.Errorf("listing grants shared with me: %w", err)
	}
	return grants, nil
}

// WithMeData is the denormalized variant of WithMe: the granted events
// themselves, joined with their full data. This is exactly the aggregation
// pass's shared input.
func (s *Shares) WithMeData(ctx context.Context) ([]model.Event, error) {
	var events []model.Event
	if err := s.c.get(ctx, "/api/v1/shared-schedules/shared-with-me-with-data", nil, &events); err != nil {
		return nil, fmt.Errorf("listing events shared with me: %w", err)
	}
	return events, nil
}

// ByMe lists the grants the current user has handed out.
func (s *Shares) ByMe(ctx context.Context) ([]model.ShareGrant, error) {
	var grants []model.ShareGrant
	if err := s.c.get(ctx, "/api/v1/shared-schedules/shared-by-me", nil, &grants); err != nil {
		return nil, fmt.Errorf("listing grants shared by me: %w", err)
	}
	return grants, nil
}

// Delete revokes one grant by its grant id (not the event id).
func (s *Shares) Delete(ctx context.Context, grantID int64) error {
	if err := s.c.delete(ctx, fmt.Sprintf("/api/v1/shared-schedules/%d", grantID)); err != nil {
		return fmt.Errorf("deleting grant %d: %w", grantID, err)
	}
	return nil
}
