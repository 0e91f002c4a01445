// Package sharing manages view grants on the current user's events:
// creating and revoking grants, listing who an event is shared with and
// building the friend picker for the sharing UI.
package sharing

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/BokGosha/schedule-coursework/internal/model"
	"github.com/BokGosha/schedule-coursework/internal/remote"
)

// RefreshFunc is invoked after every successful grant mutation so the
// aggregated snapshot gets recomputed.
type RefreshFunc func(ctx context.Context)

// Manager mutates the share registry on behalf of the event owner.
// Ownership itself is established by the caller through access resolution;
// the backend re-checks on every write.
type Manager struct {
	shares  *remote.Shares
	users   *remote.Users
	friends *remote.Friends
	refresh RefreshFunc
}

// NewManager creates a sharing manager. refresh may be nil.
func NewManager(client *remote.Client, refresh RefreshFunc) *Manager {
	return &Manager{
		shares:  client.Shares(),
		users:   client.Users(),
		friends: client.Friends(),
		refresh: refresh,
	}
}

// Share grants granteeID access to the event. An empty permission defaults
// to view, the only level the client exercises. Nothing here prevents
// re-sharing with the same grantee; the picker treats the grant listing as
// the source of truth for who is already covered.
func (m *Manager) Share(ctx context.Context, eventID, granteeID int64, permission string) (model.ShareGrant, error) {
	if permission == "" {
		permission = model.PermissionView
	}
	grant, err := m.shares.Create(ctx, eventID, granteeID, permission)
	if err != nil {
		return model.ShareGrant{}, fmt.Errorf("sharing event %d with user %d: %w", eventID, granteeID, err)
	}
	m.notifyRefresh(ctx)
	return grant, nil
}

// Grants lists who an event is shared with, grantee identity included.
// Duplicate grants for the same grantee are collapsed to the first one
// seen, since the registry may hold duplicates.
func (m *Manager) Grants(ctx context.Context, eventID int64) ([]model.GrantEntry, error) {
	entries, err := m.shares.For(ctx, eventID)
	if err != nil {
		return nil, err
	}

	seen := make(map[int64]bool, len(entries))
	out := make([]model.GrantEntry, 0, len(entries))
	for _, entry := range entries {
		if seen[entry.UserID] {
			continue
		}
		seen[entry.UserID] = true
		out = append(out, entry)
	}
	return out, nil
}

// Unshare revokes a grant. A grant that is already gone counts as success:
// the observable outcome, no grant remaining, is the same either way, and
// both outcomes trigger re-aggregation so the snapshot catches up with
// whoever removed it.
func (m *Manager) Unshare(ctx context.Context, grantID int64) error {
	if err := m.shares.Delete(ctx, grantID); err != nil {
		if !errors.Is(err, remote.ErrNotFound) {
			return fmt.Errorf("revoking grant %d: %w", grantID, err)
		}
	}
	m.notifyRefresh(ctx)
	return nil
}

// SharedWithMe lists the raw grants addressed to the current user.
func (m *Manager) SharedWithMe(ctx context.Context) ([]model.ShareGrant, error) {
	return m.shares.WithMe(ctx)
}

// SharedByMe lists the grants the current user has handed out.
func (m *Manager) SharedByMe(ctx context.Context) ([]model.ShareGrant, error) {
	return m.shares.ByMe(ctx)
}

// ShareCandidates resolves the current user's accepted friends into
// directory records, excluding anyone who already holds a grant on the
// event. This is advisory input for the picker, not an enforced invariant.
func (m *Manager) ShareCandidates(ctx context.Context, eventID, currentUserID int64) ([]model.User, error) {
	friends, err := m.friends.Accepted(ctx)
	if err != nil {
		return nil, err
	}

	granted := make(map[int64]bool)
	if eventID != 0 {
		entries, err := m.shares.For(ctx, eventID)
		if err != nil {
			return nil, err
		}
		for _, entry := range entries {
			granted[entry.UserID] = true
		}
	}

	seen := make(map[int64]bool, len(friends))
	out := make([]model.User, 0, len(friends))
	for _, friend := range friends {
		// Friendship edges are directed; pick whichever end is not us.
		other := friend.FriendID
		if other == currentUserID {
			other = friend.UserID
		}
		if other == currentUserID || seen[other] || granted[other] {
			continue
		}
		seen[other] = true

		user, err := m.users.ByID(ctx, other)
		if err != nil {
			log.Printf("Friend lookup failed for user %d: %v", other, err)
			continue
		}
		out = append(out, user)
	}
	return out, nil
}

func (m *Manager) notifyRefresh(ctx context.Context) {
	if m.refresh != nil {
		m.refresh(ctx)
	}
}
