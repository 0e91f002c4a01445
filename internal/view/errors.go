package view

import "errors"

// Failure conditions of the visibility engine. Transport failures from the
// remote layer are wrapped with %w and pass through unchanged.
var (
	// ErrNotFound means the selected event is absent from both the owned
	// and shared collections. Callers must treat this as stale UI state;
	// defaulting to "owner" here would be an access-control bug.
	ErrNotFound = errors.New("event not found in owned or shared collections")

	// ErrInvalidRange means an event's end does not come after its start
	// where a positive span is required.
	ErrInvalidRange = errors.New("event end must be after start")

	// ErrUnauthorized means a mutation was attempted by a non-owner. The
	// backend enforces this on every write as well; the client refuses
	// before the request leaves the process.
	ErrUnauthorized = errors.New("not the event owner")
)
