// Package handlers implements the local API's HTTP handlers.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/BokGosha/schedule-coursework/internal/api/middleware"
	"github.com/BokGosha/schedule-coursework/internal/remote"
	"github.com/BokGosha/schedule-coursework/internal/session"
	"github.com/BokGosha/schedule-coursework/internal/view"
)

// writeJSON writes v as a JSON response.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeEngineError maps engine and backend failures onto the API's error
// envelope. Anything not in the taxonomy is a backend round-trip failure
// and reported as bad_gateway: recoverable by the next user action, never
// retried in a loop here.
func writeEngineError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, view.ErrNotFound), errors.Is(err, remote.ErrNotFound):
		middleware.WriteError(w, http.StatusNotFound, middleware.ErrNotFound, err.Error())
	case errors.Is(err, view.ErrUnauthorized), errors.Is(err, remote.ErrUnauthorized):
		middleware.WriteError(w, http.StatusForbidden, middleware.ErrUnauthorized, err.Error())
	case errors.Is(err, view.ErrInvalidRange), errors.Is(err, session.ErrInvalidDraft):
		middleware.WriteError(w, http.StatusBadRequest, middleware.ErrValidation, err.Error())
	default:
		middleware.WriteError(w, http.StatusBadGateway, middleware.ErrBadGateway, err.Error())
	}
}

// pathID extracts the numeric {name} path variable.
func pathID(r *http.Request, name string) (int64, error) {
	return parseID(mux.Vars(r)[name])
}

func parseID(raw string) (int64, error) {
	return strconv.ParseInt(raw, 10, 64)
}
