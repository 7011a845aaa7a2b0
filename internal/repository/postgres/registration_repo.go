package postgres

import (
	"context"
	"database/sql"
	"errors"

	"eventregistry/internal/domain"
)

type eventRegistrationRepository struct {
	DB *sql.DB
}

func NewEventRegistrationRepository(db *sql.DB) domain.EventRegistrationRepository {
	return &eventRegistrationRepository{
		DB: db,
	}
}

// Create inserts the registration. The (user_id, event_id) pair carries a
// unique constraint, so a concurrent duplicate surfaces as ErrAlreadyRegistered
// even when the caller's pre-insert check passed.
func (r *eventRegistrationRepository) Create(ctx context.Context, reg *domain.EventRegistration) error {
	query := `
		INSERT INTO event_registrations (user_id, event_id, registration_date)
		VALUES ($1, $2, $3)
		RETURNING registration_id
	`
	err := r.DB.QueryRowContext(ctx, query, reg.UserID, reg.EventID, reg.RegistrationDate).
		Scan(&reg.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyRegistered
		}
		return err
	}
	return nil
}

func (r *eventRegistrationRepository) GetByUserAndEvent(ctx context.Context, userID, eventID int64) (*domain.EventRegistration, error) {
	query := `
		SELECT registration_id, user_id, event_id, registration_date
		FROM event_registrations
		WHERE user_id = $1 AND event_id = $2
	`
	reg := &domain.EventRegistration{}
	err := r.DB.QueryRowContext(ctx, query, userID, eventID).
		Scan(&reg.ID, &reg.UserID, &reg.EventID, &reg.RegistrationDate)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRegistrationNotFound
		}
		return nil, err
	}
	return reg, nil
}

func (r *eventRegistrationRepository) ListUsersByEventID(ctx context.Context, eventID int64) ([]*domain.User, error) {
	query := `
		SELECT u.user_id, u.firstname, u.lastname, u.email, u.address
		FROM users u
		JOIN event_registrations r ON u.user_id = r.user_id
		WHERE r.event_id = $1
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]*domain.User, 0)
	for rows.Next() {
		u := &domain.User{}
		if err := rows.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.Address); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *eventRegistrationRepository) ListEventsByUserID(ctx context.Context, userID int64) ([]*domain.Event, error) {
	query := `
		SELECT e.event_id, e.event_title, e.event_description, e.event_location, e.event_date
		FROM events e
		JOIN event_registrations r ON e.event_id = r.event_id
		WHERE r.user_id = $1
	`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]*domain.Event, 0)
	for rows.Next() {
		e := &domain.Event{}
		if err := rows.Scan(&e.ID, &e.Title, &e.Description, &e.Location, &e.Date); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}
