package domain

import (
	"context"
	"time"
)

// EventRegistration links a User to an Event.
// swagger:model EventRegistration
type EventRegistration struct {
	ID               int64     `json:"registration_id"`
	UserID           int64     `json:"user_id"`
	EventID          int64     `json:"event_id"`
	RegistrationDate time.Time `json:"registration_date"`
}

// NewEventRegistration creates a new EventRegistration. ID is set by the repository on create.
func NewEventRegistration(userID, eventID int64, registrationDate time.Time) *EventRegistration {
	return &EventRegistration{
		UserID:           userID,
		EventID:          eventID,
		RegistrationDate: registrationDate,
	}
}

// EventRegistrationRepository defines storage operations for event registrations.
// Create returns ErrAlreadyRegistered when the (user, event) pair is already
// stored; the pair carries a unique constraint.
type EventRegistrationRepository interface {
	Create(ctx context.Context, reg *EventRegistration) error
	GetByUserAndEvent(ctx context.Context, userID, eventID int64) (*EventRegistration, error)
	ListUsersByEventID(ctx context.Context, eventID int64) ([]*User, error)
	ListEventsByUserID(ctx context.Context, userID int64) ([]*Event, error)
}

// RegistrationService enforces the existence and uniqueness rules around
// linking a User to an Event, and answers the join queries in both directions.
type RegistrationService interface {
	// Register checks the user, then the event, then the pair, in that
	// order, and creates the registration when all checks pass.
	Register(ctx context.Context, userID, eventID int64) (*EventRegistration, error)
	UsersForEvent(ctx context.Context, eventID int64) ([]*User, error)
	EventsForUser(ctx context.Context, userID int64) ([]*Event, error)
}
