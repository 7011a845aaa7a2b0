package postgres

import (
	"context"
	"database/sql"

	"eventregistry/internal/domain"
)

type eventInvitationRepository struct {
	DB *sql.DB
}

func NewEventInvitationRepository(db *sql.DB) domain.EventInvitationRepository {
	return &eventInvitationRepository{DB: db}
}

func (r *eventInvitationRepository) Create(ctx context.Context, inv *domain.EventInvitation) error {
	query := `
		INSERT INTO event_invitations (event_name, email, sent_at)
		VALUES ($1, $2, $3)
		RETURNING invitation_id
	`
	return r.DB.QueryRowContext(ctx, query, inv.EventName, inv.Email, inv.SentAt).
		Scan(&inv.ID)
}

func (r *eventInvitationRepository) ListByEventName(ctx context.Context, eventName string) ([]*domain.EventInvitation, error) {
	query := `
		SELECT invitation_id, event_name, email, sent_at
		FROM event_invitations
		WHERE event_name = $1
		ORDER BY sent_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, eventName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	invs := make([]*domain.EventInvitation, 0)
	for rows.Next() {
		inv := &domain.EventInvitation{}
		if err := rows.Scan(&inv.ID, &inv.EventName, &inv.Email, &inv.SentAt); err != nil {
			return nil, err
		}
		invs = append(invs, inv)
	}
	return invs, rows.Err()
}
