package postgres

import (
	"context"
	"database/sql"
	"errors"

	"eventregistry/internal/domain"
)

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `
		INSERT INTO events (event_title, event_description, event_location, event_date)
		VALUES ($1, $2, $3, $4)
		RETURNING event_id
	`
	return r.DB.QueryRowContext(ctx, query, e.Title, e.Description, e.Location, e.Date).
		Scan(&e.ID)
}

func (r *eventRepository) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	query := `
		SELECT event_id, event_title, event_description, event_location, event_date
		FROM events
		WHERE event_id = $1
	`
	e := &domain.Event{}
	err := r.DB.QueryRowContext(ctx, query, id).
		Scan(&e.ID, &e.Title, &e.Description, &e.Location, &e.Date)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) Update(ctx context.Context, e *domain.Event) (*domain.Event, error) {
	query := `
		UPDATE events
		SET event_title = $1, event_description = $2, event_location = $3, event_date = $4
		WHERE event_id = $5
		RETURNING event_id, event_title, event_description, event_location, event_date
	`
	updated := &domain.Event{}
	err := r.DB.QueryRowContext(ctx, query, e.Title, e.Description, e.Location, e.Date, e.ID).
		Scan(&updated.ID, &updated.Title, &updated.Description, &updated.Location, &updated.Date)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return updated, nil
}

func (r *eventRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM events WHERE event_id = $1`
	result, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
