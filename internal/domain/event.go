package domain

import (
	"context"
	"time"
)

// Event represents a registrable event.
// swagger:model Event
type Event struct {
	ID          int64     `json:"event_id"`
	Title       string    `json:"event_title"`
	Description string    `json:"event_description"`
	Location    string    `json:"event_location"`
	Date        time.Time `json:"event_date"`
}

// NewEvent returns a new Event with the given fields. ID is set by the repository on create.
func NewEvent(title, description, location string, date time.Time) *Event {
	return &Event{
		Title:       title,
		Description: description,
		Location:    location,
		Date:        date,
	}
}

// EventRepository defines the interface for event storage.
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id int64) (*Event, error)
	// Update replaces all mutable fields of the event identified by event.ID
	// and returns the stored row.
	Update(ctx context.Context, event *Event) (*Event, error)
	Delete(ctx context.Context, id int64) error
}

// EventService defines the business operations on events.
type EventService interface {
	CreateEvent(ctx context.Context, event *Event) error
	GetEvent(ctx context.Context, id int64) (*Event, error)
	UpdateEvent(ctx context.Context, event *Event) (*Event, error)
	DeleteEvent(ctx context.Context, id int64) error
}
