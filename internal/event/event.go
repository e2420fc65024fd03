// Package event carries state-change notifications from the client core to
// whoever renders it. The view renderer subscribes and re-pulls the state
// snapshot when something changed.
package event

import (
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	TypeSessionEstablished Type = "session.established"
	TypeSessionCleared     Type = "session.cleared"
	TypePageChanged        Type = "page.changed"
	TypeProductSelected    Type = "product.selected"
	TypeAdminGranted       Type = "admin.granted"
)

type Event struct {
	ID        string `json:"id"`
	Type      Type   `json:"type"`
	Payload   any    `json:"payload,omitempty"`
	Timestamp string `json:"timestamp"`
}

func New(t Type, payload any) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      t,
		Payload:   payload,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

type Bus interface {
	Publish(e Event)
	Subscribe() (<-chan Event, func())
}
