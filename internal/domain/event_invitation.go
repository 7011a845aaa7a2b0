package domain

import (
	"context"
	"time"
)

// EventInvitation records an invitation email that was delivered.
// swagger:model EventInvitation
type EventInvitation struct {
	ID        int64     `json:"invitation_id"`
	EventName string    `json:"event_name"`
	Email     string    `json:"email"`
	SentAt    time.Time `json:"sent_at"`
}

// EventInvitationRepository defines storage operations for the invitation audit log.
type EventInvitationRepository interface {
	Create(ctx context.Context, inv *EventInvitation) error
	ListByEventName(ctx context.Context, eventName string) ([]*EventInvitation, error)
}
