package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/BokGosha/schedule-coursework/internal/api/middleware"
	"github.com/BokGosha/schedule-coursework/internal/model"
	"github.com/BokGosha/schedule-coursework/internal/session"
	"github.com/BokGosha/schedule-coursework/internal/storage"
	"github.com/BokGosha/schedule-coursework/internal/view"
	"github.com/BokGosha/schedule-coursework/internal/websocket"
)

// EventsResponse is the aggregated view served to the rendering surface.
type EventsResponse struct {
	Events          []model.AggregatedEvent `json:"events"`
	AvailableColors []string                `json:"available_colors"`
	SelectedColor   string                  `json:"selected_color,omitempty"`
	RefreshedAt     time.Time               `json:"refreshed_at"`
	Occurrences     []model.Occurrence      `json:"occurrences,omitempty"`
}

// ListEvents runs an aggregation pass and returns the merged, annotated,
// filtered event set. Query parameters:
//
//	color=...                override the persisted color filter for this request
//	all=1                    bypass the filter entirely
//	expand_from / expand_to  RFC3339 window; adds materialized occurrences
func ListEvents(sess *session.Session, prefs *storage.PreferenceRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		snap, err := sess.Refresh(ctx)
		if err != nil {
			// The previous snapshot, if any, stays intact; the client can
			// retry on the next user action.
			writeEngineError(w, err)
			return
		}

		selected, err := prefs.SelectedColor(ctx)
		if err != nil {
			log.Printf("Reading color preference failed: %v", err)
			selected = ""
		}
		query := r.URL.Query()
		if c := query.Get("color"); c != "" {
			selected = c
		}
		if query.Get("all") == "1" {
			selected = ""
		}

		resp := EventsResponse{
			Events:          view.ApplyFilter(snap.Events, selected),
			AvailableColors: view.AvailableColors(snap.Events),
			SelectedColor:   selected,
			RefreshedAt:     snap.RefreshedAt,
		}

		if from, to, ok, err := expandWindow(query.Get("expand_from"), query.Get("expand_to")); err != nil {
			middleware.WriteError(w, http.StatusBadRequest, middleware.ErrValidation, err.Error())
			return
		} else if ok {
			occurrences, err := view.Occurrences(resp.Events, from, to)
			if err != nil {
				writeEngineError(w, err)
				return
			}
			resp.Occurrences = occurrences
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

func expandWindow(fromStr, toStr string) (from, to time.Time, ok bool, err error) {
	if fromStr == "" && toStr == "" {
		return time.Time{}, time.Time{}, false, nil
	}
	from, err = time.Parse(time.RFC3339, fromStr)
	if err != nil {
		return time.Time{}, time.Time{}, false, err
	}
	to, err = time.Parse(time.RFC3339, toStr)
	if err != nil {
		return time.Time{}, time.Time{}, false, err
	}
	return from, to, true, nil
}

// CreateEvent stores a new own event through the schedule store.
func CreateEvent(sess *session.Session, hub *websocket.Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var draft model.EventDraft
		if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
			middleware.WriteError(w, http.StatusBadRequest, middleware.ErrBadRequest, "Invalid request body")
			return
		}

		event, err := sess.CreateEvent(r.Context(), draft)
		if err != nil {
			writeEngineError(w, err)
			return
		}

		broadcastRefresh(sess, hub)
		writeJSON(w, http.StatusCreated, event)
	}
}

// GetEvent returns one aggregated event plus the viewer's resolved access.
func GetEvent(sess *session.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			middleware.WriteError(w, http.StatusBadRequest, middleware.ErrBadRequest, "Invalid event id")
			return
		}
		ctx := r.Context()

		snap, ok := sess.Current()
		if !ok {
			snap, err = sess.Refresh(ctx)
			if err != nil {
				writeEngineError(w, err)
				return
			}
		}

		for _, ev := range snap.Events {
			if ev.ID != id {
				continue
			}
			access, err := sess.ResolveAccess(ctx, id)
			if err != nil {
				writeEngineError(w, err)
				return
			}
			writeJSON(w, http.StatusOK, struct {
				model.AggregatedEvent
				Access view.Access `json:"access"`
			}{ev, access})
			return
		}

		middleware.WriteError(w, http.StatusNotFound, middleware.ErrNotFound, "Event not found")
	}
}

// GetAccess resolves whether the current user owns the event. The editor
// surface calls this before rendering edit affordances.
func GetAccess(sess *session.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			middleware.WriteError(w, http.StatusBadRequest, middleware.ErrBadRequest, "Invalid event id")
			return
		}

		access, err := sess.ResolveAccess(r.Context(), id)
		if err != nil {
			writeEngineError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, access)
	}
}

// UpdateEvent replaces an owned event's fields.
func UpdateEvent(sess *session.Session, hub *websocket.Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			middleware.WriteError(w, http.StatusBadRequest, middleware.ErrBadRequest, "Invalid event id")
			return
		}

		var draft model.EventDraft
		if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
			middleware.WriteError(w, http.StatusBadRequest, middleware.ErrBadRequest, "Invalid request body")
			return
		}

		event, err := sess.UpdateEvent(r.Context(), id, draft)
		if err != nil {
			writeEngineError(w, err)
			return
		}

		broadcastRefresh(sess, hub)
		writeJSON(w, http.StatusOK, event)
	}
}

// DeleteEvent removes an owned event. Subsequent aggregation passes must
// not surface it, whether or not the backend cascaded its grants.
func DeleteEvent(sess *session.Session, hub *websocket.Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			middleware.WriteError(w, http.StatusBadRequest, middleware.ErrBadRequest, "Invalid event id")
			return
		}

		if err := sess.DeleteEvent(r.Context(), id); err != nil {
			writeEngineError(w, err)
			return
		}

		broadcastRefresh(sess, hub)
		w.WriteHeader(http.StatusNoContent)
	}
}

func broadcastRefresh(sess *session.Session, hub *websocket.Hub) {
	if hub == nil {
		return
	}
	if snap, ok := sess.Current(); ok {
		websocket.NewBroadcaster(hub).EventsRefreshed(len(snap.Events), snap.RefreshedAt)
	}
}
