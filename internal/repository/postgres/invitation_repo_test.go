package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"eventregistry/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestEventInvitationRepository_Create(t *testing.T) {
	ctx := context.Background()
	sentAt := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO event_invitations \(event_name, email, sent_at\)`).
		WithArgs("Launch", "a@b.com", sentAt).
		WillReturnRows(sqlmock.NewRows([]string{"invitation_id"}).AddRow(int64(3)))

	repo := NewEventInvitationRepository(db)
	inv := &domain.EventInvitation{EventName: "Launch", Email: "a@b.com", SentAt: sentAt}
	require.NoError(t, repo.Create(ctx, inv))
	require.Equal(t, int64(3), inv.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventInvitationRepository_ListByEventName(t *testing.T) {
	ctx := context.Background()
	sentAt := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT invitation_id, event_name, email, sent_at`).
			WithArgs("Launch").
			WillReturnRows(sqlmock.NewRows([]string{"invitation_id", "event_name", "email", "sent_at"}).
				AddRow(int64(3), "Launch", "a@b.com", sentAt))

		repo := NewEventInvitationRepository(db)
		got, err := repo.ListByEventName(ctx, "Launch")
		require.NoError(t, err)
		require.Equal(t, []*domain.EventInvitation{
			{ID: 3, EventName: "Launch", Email: "a@b.com", SentAt: sentAt},
		}, got)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("db error", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT invitation_id, event_name, email, sent_at`).
			WithArgs("Launch").
			WillReturnError(sql.ErrConnDone)

		repo := NewEventInvitationRepository(db)
		got, err := repo.ListByEventName(ctx, "Launch")
		require.Error(t, err)
		require.Nil(t, got)
	})
}
