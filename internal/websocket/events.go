package websocket

import (
	"log"
	"time"
)

// Broadcaster encodes and fans out companion events over the hub.
type Broadcaster struct {
	hub *Hub
}

// NewBroadcaster creates a broadcaster over hub.
func NewBroadcaster(hub *Hub) *Broadcaster {
	return &Broadcaster{hub: hub}
}

// EventsRefreshed announces a completed aggregation pass.
func (b *Broadcaster) EventsRefreshed(eventCount int, refreshedAt time.Time) {
	b.send(NewMessage(TypeEventsRefreshed, EventsRefreshedPayload{
		EventCount:  eventCount,
		RefreshedAt: refreshedAt,
	}))
}

// ShareCreated announces a new grant on an event.
func (b *Broadcaster) ShareCreated(eventID, grantID int64) {
	b.send(NewMessage(TypeShareCreated, SharePayload{EventID: eventID, GrantID: grantID}))
}

// ShareRevoked announces a removed grant.
func (b *Broadcaster) ShareRevoked(grantID int64) {
	b.send(NewMessage(TypeShareRevoked, SharePayload{GrantID: grantID}))
}

// FilterChanged announces a change to the persisted color filter. An empty
// color means the filter was cleared.
func (b *Broadcaster) FilterChanged(color string) {
	b.send(NewMessage(TypeFilterChanged, FilterChangedPayload{SelectedColor: color}))
}

// Notify sends a free-form notification to all connected clients.
func (b *Broadcaster) Notify(level, message string) {
	b.send(NewMessage(TypeNotification, NotificationPayload{Level: level, Message: message}))
}

func (b *Broadcaster) send(msg Message) {
	data, err := msg.JSON()
	if err != nil {
		log.Printf("Error encoding WebSocket message: %v", err)
		return
	}
	b.hub.Broadcast(data)
}
