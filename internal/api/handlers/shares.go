package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/BokGosha/schedule-coursework/internal/api/middleware"
	"github.com/BokGosha/schedule-coursework/internal/session"
	"github.com/BokGosha/schedule-coursework/internal/sharing"
	"github.com/BokGosha/schedule-coursework/internal/websocket"
)

// CreateShareRequest is the body for sharing an event.
type CreateShareRequest struct {
	SharedWithID    int64  `json:"shared_with_id"`
	PermissionLevel string `json:"permission_level"`
}

// ListShares returns who an event is shared with, grantee identity
// included.
func ListShares(manager *sharing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			middleware.WriteError(w, http.StatusBadRequest, middleware.ErrBadRequest, "Invalid event id")
			return
		}

		entries, err := manager.Grants(r.Context(), id)
		if err != nil {
			writeEngineError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, entries)
	}
}

// CreateShare grants a friend view access to an event. Ownership is
// resolved first: a grantee must never be able to re-share someone else's
// event through the companion, whatever the backend would say.
func CreateShare(sess *session.Session, manager *sharing.Manager, hub *websocket.Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			middleware.WriteError(w, http.StatusBadRequest, middleware.ErrBadRequest, "Invalid event id")
			return
		}

		var req CreateShareRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			middleware.WriteError(w, http.StatusBadRequest, middleware.ErrBadRequest, "Invalid request body")
			return
		}
		if req.SharedWithID == 0 {
			middleware.WriteError(w, http.StatusBadRequest, middleware.ErrValidation, "shared_with_id is required")
			return
		}

		ctx := r.Context()
		access, err := sess.ResolveAccess(ctx, id)
		if err != nil {
			writeEngineError(w, err)
			return
		}
		if !access.IsOwner {
			middleware.WriteError(w, http.StatusForbidden, middleware.ErrUnauthorized, "Only the owner can share an event")
			return
		}

		grant, err := manager.Share(ctx, id, req.SharedWithID, req.PermissionLevel)
		if err != nil {
			writeEngineError(w, err)
			return
		}

		if hub != nil {
			websocket.NewBroadcaster(hub).ShareCreated(id, grant.ID)
		}
		writeJSON(w, http.StatusCreated, grant)
	}
}

// DeleteShare revokes a grant. Revoking a grant that is already gone is a
// success; the observable outcome is the same.
func DeleteShare(manager *sharing.Manager, hub *websocket.Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "grantID")
		if err != nil {
			middleware.WriteError(w, http.StatusBadRequest, middleware.ErrBadRequest, "Invalid grant id")
			return
		}

		if err := manager.Unshare(r.Context(), id); err != nil {
			writeEngineError(w, err)
			return
		}

		if hub != nil {
			websocket.NewBroadcaster(hub).ShareRevoked(id)
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// SharedByMe lists the grants the current user has handed out.
func SharedByMe(manager *sharing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		grants, err := manager.SharedByMe(r.Context())
		if err != nil {
			writeEngineError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, grants)
	}
}

// ListFriends returns sharing-picker candidates: the current user's
// accepted friends, minus anyone already holding a grant on the event
// given via the event_id query parameter.
func ListFriends(sess *session.Session, manager *sharing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var eventID int64
		if raw := r.URL.Query().Get("event_id"); raw != "" {
			var err error
			eventID, err = parseID(raw)
			if err != nil {
				middleware.WriteError(w, http.StatusBadRequest, middleware.ErrBadRequest, "Invalid event_id")
				return
			}
		}

		candidates, err := manager.ShareCandidates(r.Context(), eventID, sess.UserID())
		if err != nil {
			writeEngineError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, candidates)
	}
}
