package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/BokGosha/schedule-coursework/internal/api/middleware"
	"github.com/BokGosha/schedule-coursework/internal/storage"
	"github.com/BokGosha/schedule-coursework/internal/websocket"
)

// FilterResponse carries the persisted color filter.
type FilterResponse struct {
	SelectedColor string `json:"selected_color"`
}

// GetFilter returns the persisted color filter, empty when unset.
func GetFilter(prefs *storage.PreferenceRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		color, err := prefs.SelectedColor(r.Context())
		if err != nil {
			middleware.WriteError(w, http.StatusInternalServerError, middleware.ErrInternalError, "Failed to read filter")
			return
		}
		writeJSON(w, http.StatusOK, FilterResponse{SelectedColor: color})
	}
}

// PutFilter persists the selected color. The value is stored as-is; it is
// deliberately not validated against the current color set, so a color
// that later disappears simply filters everything out.
func PutFilter(prefs *storage.PreferenceRepository, hub *websocket.Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req FilterResponse
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			middleware.WriteError(w, http.StatusBadRequest, middleware.ErrBadRequest, "Invalid request body")
			return
		}
		if req.SelectedColor == "" {
			middleware.WriteError(w, http.StatusBadRequest, middleware.ErrValidation, "selected_color is required; use DELETE to clear")
			return
		}

		if err := prefs.SetSelectedColor(r.Context(), req.SelectedColor); err != nil {
			middleware.WriteError(w, http.StatusInternalServerError, middleware.ErrInternalError, "Failed to store filter")
			return
		}

		if hub != nil {
			websocket.NewBroadcaster(hub).FilterChanged(req.SelectedColor)
		}
		writeJSON(w, http.StatusOK, req)
	}
}

// DeleteFilter clears the persisted color ("show all").
func DeleteFilter(prefs *storage.PreferenceRepository, hub *websocket.Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := prefs.ClearSelectedColor(r.Context()); err != nil {
			middleware.WriteError(w, http.StatusInternalServerError, middleware.ErrInternalError, "Failed to clear filter")
			return
		}

		if hub != nil {
			websocket.NewBroadcaster(hub).FilterChanged("")
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
