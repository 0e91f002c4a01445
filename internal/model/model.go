// Package model defines the domain types shared across the companion:
// events and share grants as the schedule backend returns them, plus the
// derived aggregated view types.
package model

import "time"

// Recurrence rule values accepted by the schedule backend.
const (
	FreqDaily   = "DAILY"
	FreqWeekly  = "WEEKLY"
	FreqMonthly = "MONTHLY"
	FreqYearly  = "YEARLY"
)

// Share grant permission levels. Only view is exercised today; there is no
// edit grant path in the client.
const (
	PermissionView = "view"
	PermissionEdit = "edit"
)

// Friendship statuses.
const (
	FriendPending  = "pending"
	FriendAccepted = "accepted"
	FriendRejected = "rejected"
)

// Scope says whether the current viewer owns an event or merely holds a
// view grant on it.
type Scope string

const (
	ScopeOwned  Scope = "owned"
	ScopeShared Scope = "shared"
)

// Event is a single user-owned calendar entry as stored by the schedule
// backend. OwnerID is immutable after creation and start never exceeds end.
type Event struct {
	ID             int64      `json:"id"`
	OwnerID        int64      `json:"user_id"`
	Title          string     `json:"title"`
	Description    string     `json:"description,omitempty"`
	StartTime      time.Time  `json:"start_time"`
	EndTime        time.Time  `json:"end_time"`
	IsAllDay       bool       `json:"is_all_day"`
	Location       string     `json:"location,omitempty"`
	Color          string     `json:"color,omitempty"`
	IsRecurring    bool       `json:"is_recurring"`
	RecurrenceRule string     `json:"recurrence_rule,omitempty"`
	CategoryID     *int64     `json:"category_id,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`
}

// EventDraft carries the writable fields for event create and update calls.
type EventDraft struct {
	Title          string    `json:"title"`
	Description    string    `json:"description,omitempty"`
	StartTime      time.Time `json:"start_time"`
	EndTime        time.Time `json:"end_time"`
	IsAllDay       bool      `json:"is_all_day"`
	Location       string    `json:"location,omitempty"`
	Color          string    `json:"color,omitempty"`
	IsRecurring    bool      `json:"is_recurring"`
	RecurrenceRule string    `json:"recurrence_rule,omitempty"`
	CategoryID     *int64    `json:"category_id,omitempty"`
}

// ShareGrant authorizes one user to view one event. The registry does not
// promise to reject duplicate (schedule, grantee) pairs, so listings must
// tolerate them.
type ShareGrant struct {
	ID              int64  `json:"id"`
	OwnerID         int64  `json:"user_id"`
	ScheduleID      int64  `json:"schedule_id"`
	SharedWithID    int64  `json:"shared_with_id"`
	PermissionLevel string `json:"permission_level"`
}

// GrantEntry is one row of the registry's per-event grant listing: the
// grantee's identity plus the grant id needed to revoke it.
type GrantEntry struct {
	GrantID         int64  `json:"shared_id"`
	UserID          int64  `json:"id"`
	Username        string `json:"username"`
	Email           string `json:"email,omitempty"`
	PermissionLevel string `json:"permission_level,omitempty"`
}

// User is a user-directory record.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Friend is a directed friendship edge. Symmetric acceptance implies a
// bidirectional friendship for display purposes.
type Friend struct {
	ID       int64  `json:"id"`
	UserID   int64  `json:"user_id"`
	FriendID int64  `json:"friend_id"`
	Status   string `json:"status"`
}

// RecurrenceDescriptor is the renderer-facing summary of a recurrence rule.
// Time-of-day fields are defined in UTC and Duration is a wall-clock "H:MM"
// span; the renderer runs its own materialization pass from Anchor forward.
type RecurrenceDescriptor struct {
	Frequency   string    `json:"freq"`
	Interval    int       `json:"interval"`
	Anchor      time.Time `json:"dtstart"`
	HourOfDay   int       `json:"byhour"`
	MinuteOfDay int       `json:"byminute"`
	Duration    string    `json:"duration"`
}

// AggregatedEvent is an Event annotated with the viewer's scope and, when
// recurring, a recurrence descriptor. It is rebuilt from scratch on every
// aggregation pass and never mutated in place.
type AggregatedEvent struct {
	Event
	Scope      Scope                 `json:"scope"`
	Recurrence *RecurrenceDescriptor `json:"recurrence,omitempty"`
}

// Occurrence is one concrete instance of an event materialized within a
// requested window.
type Occurrence struct {
	EventID int64     `json:"event_id"`
	Title   string    `json:"title"`
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
	AllDay  bool      `json:"all_day"`
	Color   string    `json:"color,omitempty"`
}
