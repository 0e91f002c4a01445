package remote

import (
	"context"
	"fmt"

	"github.com/BokGosha/schedule-coursework/internal/model"
)

// Users is the client for the user directory.
type Users struct {
	c *Client
}

// Me returns the record of the authenticated user. The companion calls
// this once at startup to pin the session's user id.
func (u *Users) Me(ctx context.Context) (model.User, error) {
	var user model.User
	if err := u.c.get(ctx, "/api/v1/auth/me", nil, &user); err != nil {
		return model.User{}, fmt.Errorf("fetching current user: %w", err)
	}
	return user, nil
}

// ByID returns one user-directory record.
func (u *Users) ByID(ctx context.Context, id int64) (model.User, error) {
	var user model.User
	if err := u.c.get(ctx, fmt.Sprintf("/api/v1/users/%d", id), nil, &user); err != nil {
		return model.User{}, fmt.Errorf("fetching user %d: %w", id, err)
	}
	return user, nil
}
