package view

import (
	"context"
	"fmt"
	"log"

	"github.com/BokGosha/schedule-coursework/internal/model"
)

// UserGetter looks up a user-directory record by id.
type UserGetter interface {
	ByID(ctx context.Context, id int64) (model.User, error)
}

// Access is the viewer's resolved relationship to a single event. It gates
// whether the editor surface renders mutable fields or a read-only view,
// so it must be fully resolved before any edit affordance is shown.
type Access struct {
	IsOwner   bool   `json:"is_owner"`
	OwnerID   int64  `json:"owner_id"`
	OwnerName string `json:"owner_name,omitempty"`
}

// Resolve determines whether the current user owns the given event. The
// owned index is consulted first since it is already-held state; only on a
// miss is the shared collection scanned. An event found in neither is
// reported as ErrNotFound.
//
// For a shared event the granting owner's display name is fetched through
// the user directory. A directory failure degrades to an id-only result:
// the ownership verdict is already final and only the label is missing.
func Resolve(ctx context.Context, eventID, currentUserID int64, owned map[int64]model.Event, shared []model.Event, users UserGetter) (Access, error) {
	if _, ok := owned[eventID]; ok {
		return Access{IsOwner: true, OwnerID: currentUserID}, nil
	}

	for _, ev := range shared {
		if ev.ID != eventID {
			continue
		}
		access := Access{OwnerID: ev.OwnerID}
		if users != nil {
			owner, err := users.ByID(ctx, ev.OwnerID)
			if err != nil {
				log.Printf("Owner lookup failed for user %d: %v", ev.OwnerID, err)
			} else {
				access.OwnerName = owner.Username
			}
		}
		return access, nil
	}

	return Access{}, fmt.Errorf("event %d: %w", eventID, ErrNotFound)
}
