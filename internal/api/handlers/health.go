package handlers

import (
	"net/http"
	"time"

	"github.com/BokGosha/schedule-coursework/internal/session"
	"github.com/BokGosha/schedule-coursework/internal/storage"
	"github.com/BokGosha/schedule-coursework/internal/websocket"
)

// HealthCheck reports liveness of the local service and its database.
func HealthCheck(db *storage.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := "ok"
		code := http.StatusOK
		if err := db.PingContext(r.Context()); err != nil {
			status = "degraded"
			code = http.StatusServiceUnavailable
		}
		writeJSON(w, code, map[string]string{"status": status})
	}
}

// Status reports the companion's runtime state: bound user, snapshot age
// and connected view surfaces.
func Status(sess *session.Session, hub *websocket.Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := map[string]any{
			"user_id":    sess.UserID(),
			"ws_clients": hub.ClientCount(),
		}
		if snap, ok := sess.Current(); ok {
			resp["event_count"] = len(snap.Events)
			resp["refreshed_at"] = snap.RefreshedAt.Format(time.RFC3339)
		}
		writeJSON(w, http.StatusOK, resp)
	}
}
