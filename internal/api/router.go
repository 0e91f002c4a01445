// Package api provides HTTP routing and handlers for the companion's
// local REST API.
package api

import (
	"github.com/gorilla/mux"

	"github.com/BokGosha/schedule-coursework/internal/api/handlers"
	"github.com/BokGosha/schedule-coursework/internal/api/middleware"
	"github.com/BokGosha/schedule-coursework/internal/session"
	"github.com/BokGosha/schedule-coursework/internal/sharing"
	"github.com/BokGosha/schedule-coursework/internal/storage"
	"github.com/BokGosha/schedule-coursework/internal/websocket"
)

// NewRouter creates and configures the HTTP router with all API routes.
func NewRouter(
	db *storage.DB,
	prefs *storage.PreferenceRepository,
	sess *session.Session,
	manager *sharing.Manager,
	hub *websocket.Hub,
) *mux.Router {
	r := mux.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logging)
	r.Use(middleware.ErrorRecovery)

	// API subrouter
	api := r.PathPrefix("/api").Subrouter()

	// Health and status endpoints
	api.HandleFunc("/health", handlers.HealthCheck(db)).Methods("GET")
	api.HandleFunc("/status", handlers.Status(sess, hub)).Methods("GET")

	// WebSocket endpoint
	api.HandleFunc("/ws", handlers.WebSocketUpgrade(hub)).Methods("GET")

	// Aggregated event endpoints
	api.HandleFunc("/events", handlers.ListEvents(sess, prefs)).Methods("GET")
	api.HandleFunc("/events", handlers.CreateEvent(sess, hub)).Methods("POST")
	api.HandleFunc("/events/{id}", handlers.GetEvent(sess)).Methods("GET")
	api.HandleFunc("/events/{id}", handlers.UpdateEvent(sess, hub)).Methods("PUT")
	api.HandleFunc("/events/{id}", handlers.DeleteEvent(sess, hub)).Methods("DELETE")
	api.HandleFunc("/events/{id}/access", handlers.GetAccess(sess)).Methods("GET")

	// Sharing endpoints
	api.HandleFunc("/events/{id}/shares", handlers.ListShares(manager)).Methods("GET")
	api.HandleFunc("/events/{id}/shares", handlers.CreateShare(sess, manager, hub)).Methods("POST")
	api.HandleFunc("/shares/{grantID}", handlers.DeleteShare(manager, hub)).Methods("DELETE")
	api.HandleFunc("/shared-by-me", handlers.SharedByMe(manager)).Methods("GET")
	api.HandleFunc("/friends", handlers.ListFriends(sess, manager)).Methods("GET")

	// Color filter endpoints
	api.HandleFunc("/filter", handlers.GetFilter(prefs)).Methods("GET")
	api.HandleFunc("/filter", handlers.PutFilter(prefs, hub)).Methods("PUT")
	api.HandleFunc("/filter", handlers.DeleteFilter(prefs, hub)).Methods("DELETE")

	// Calendar export
	api.HandleFunc("/export.ics", handlers.ExportICS(sess)).Methods("GET")

	return r
}
