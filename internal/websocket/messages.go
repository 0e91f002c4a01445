package websocket

import (
	"encoding/json"
	"time"
)

// MessageType identifies the type of WebSocket message.
type MessageType string

const (
	// Server -> Client event types
	TypeEventsRefreshed MessageType = "events.refreshed"
	TypeShareCreated    MessageType = "share.created"
	TypeShareRevoked    MessageType = "share.revoked"
	TypeFilterChanged   MessageType = "filter.changed"
	TypeNotification    MessageType = "notification"
)

// Message is the WebSocket message envelope.
type Message struct {
	Type      MessageType `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   any         `json:"payload"`
}

// NewMessage creates a message stamped with the current time.
func NewMessage(msgType MessageType, payload any) Message {
	return Message{
		Type:      msgType,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	}
}

// JSON serializes the message.
func (m Message) JSON() ([]byte, error) {
	return json.Marshal(m)
}

// EventsRefreshedPayload is the payload for events.refreshed: enough for a
// view surface to decide whether its copy of the aggregated set is stale.
type EventsRefreshedPayload struct {
	EventCount  int       `json:"event_count"`
	RefreshedAt time.Time `json:"refreshed_at"`
}

// SharePayload is the payload for share.created and share.revoked.
type SharePayload struct {
	EventID int64 `json:"event_id,omitempty"`
	GrantID int64 `json:"grant_id"`
}

// FilterChangedPayload is the payload for filter.changed.
type FilterChangedPayload struct {
	SelectedColor string `json:"selected_color"`
}

// NotificationPayload is the payload for notification events.
type NotificationPayload struct {
	Level   string `json:"level"` // info, warning, error
	Message string `json:"message"`
}
