package remote

import (
	"context"
	"fmt"
	"net/url"

	"github.com/BokGosha/schedule-coursework/internal/model"
)

// Friends is the client for the friend directory. The companion only reads
// accepted friendships, as input to the sharing picker.
type Friends struct {
	c *Client
}

// Accepted lists the current user's accepted friendship edges.
func (f *Friends) Accepted(ctx context.Context) ([]model.Friend, error) {
	query := url.Values{"status": {model.FriendAccepted}}

	var friends []model.Friend
	if err := f.c.get(ctx, "/api/v1/friends/", query, &friends); err != nil {
		return nil, fmt.Errorf("listing accepted friends: %w", err)
	}
	return friends, nil
}
