package repository_test

import (
	"context"
	"testing"
	"time"

	"payping-dispatch/internal/domain/reminder"
	"payping-dispatch/internal/infra"
	"payping-dispatch/internal/infra/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	remID    = uuid.MustParse("33333333-3333-3333-3333-333333333333")
	ownerID  = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	clientID = uuid.MustParse("22222222-2222-2222-2222-222222222222")
)

var dueColumns = []string{
	"id", "user_id", "client_id", "remind_at", "kind", "channel", "message", "status",
	"user_notified_at", "client_emailed_at", "attempt_count", "last_attempt_at", "done_at",
	"send_client_email",
}

func TestReminderRepository_Due(t *testing.T) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockDB.Close()

	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	remindAt := now.Add(-time.Hour)
	notifiedAt := now.Add(-24 * time.Hour)

	rows := pgxmock.NewRows(dueColumns).
		AddRow(
			remID, ownerID, clientID, remindAt, "payment", "whatsapp",
			"Invoice #42 is due", "pending",
			pgtype.Timestamptz{}, pgtype.Timestamptz{},
			0, pgtype.Timestamptz{}, pgtype.Timestamptz{}, true,
		).
		AddRow(
			uuid.New(), ownerID, clientID, remindAt, "followup", "email",
			"Checking in", "pending",
			pgtype.Timestamptz{Time: notifiedAt, Valid: true}, pgtype.Timestamptz{},
			2, pgtype.Timestamptz{Time: notifiedAt, Valid: true}, pgtype.Timestamptz{}, true,
		)

	mockDB.ExpectQuery("FROM reminders").
		WithArgs(now, 5, 20).
		WillReturnRows(rows)

	repo := repository.NewReminderRepository(mockDB)
	got, err := repo.Due(context.Background(), now, 5, 20)
	require.NoError(t, err)
	require.Len(t, got, 2)

	fresh := got[0]
	assert.Equal(t, remID, fresh.ID)
	assert.Equal(t, reminder.CategoryPayment, fresh.Kind)
	assert.Equal(t, reminder.ChannelWhatsApp, fresh.Channel)
	assert.Equal(t, reminder.StatusPending, fresh.Status)
	assert.Nil(t, fresh.UserNotifiedAt)
	assert.Nil(t, fresh.ClientEmailedAt)
	assert.Nil(t, fresh.LastAttemptAt)
	assert.True(t, fresh.SendClientEmail)

	partial := got[1]
	assert.Equal(t, 2, partial.AttemptCount)
	require.NotNil(t, partial.UserNotifiedAt)
	assert.Equal(t, notifiedAt, *partial.UserNotifiedAt)
	assert.Nil(t, partial.ClientEmailedAt)

	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestReminderRepository_Due_QueryFailure(t *testing.T) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockDB.Close()

	now := time.Now().UTC()
	mockDB.ExpectQuery("FROM reminders").
		WithArgs(now, 5, 20).
		WillReturnError(assert.AnError)

	repo := repository.NewReminderRepository(mockDB)
	got, err := repo.Due(context.Background(), now, 5, 20)

	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	assert.Nil(t, got)
}

func TestReminderRepository_Apply_MinimalPatch(t *testing.T) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockDB.Close()

	now := time.Now().UTC()
	mockDB.ExpectExec(`UPDATE reminders SET attempt_count = \$1, last_attempt_at = \$2 WHERE id = \$3 AND status = 'pending'`).
		WithArgs(1, now, remID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	repo := repository.NewReminderRepository(mockDB)
	err = repo.Apply(context.Background(), remID, reminder.Patch{
		AttemptCount:  1,
		LastAttemptAt: now,
	})

	require.NoError(t, err)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestReminderRepository_Apply_FullPatch(t *testing.T) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockDB.Close()

	now := time.Now().UTC()
	done := reminder.StatusDone
	mockDB.ExpectExec(`UPDATE reminders SET attempt_count = \$1, last_attempt_at = \$2, user_notified_at = \$3, client_emailed_at = \$4, status = \$5, done_at = \$6 WHERE id = \$7 AND status = 'pending'`).
		WithArgs(1, now, now, now, "done", now, remID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	repo := repository.NewReminderRepository(mockDB)
	err = repo.Apply(context.Background(), remID, reminder.Patch{
		AttemptCount:    1,
		LastAttemptAt:   now,
		UserNotifiedAt:  &now,
		ClientEmailedAt: &now,
		Status:          &done,
		DoneAt:          &now,
	})

	require.NoError(t, err)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestReminderRepository_Apply_StaleRow(t *testing.T) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockDB.Close()

	now := time.Now().UTC()
	mockDB.ExpectExec("UPDATE reminders SET").
		WithArgs(1, now, remID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	repo := repository.NewReminderRepository(mockDB)
	err = repo.Apply(context.Background(), remID, reminder.Patch{
		AttemptCount:  1,
		LastAttemptAt: now,
	})

	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindStale))
}

func TestReminderRepository_Apply_ExecFailure(t *testing.T) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockDB.Close()

	now := time.Now().UTC()
	mockDB.ExpectExec("UPDATE reminders SET").
		WithArgs(1, now, remID).
		WillReturnError(assert.AnError)

	repo := repository.NewReminderRepository(mockDB)
	err = repo.Apply(context.Background(), remID, reminder.Patch{
		AttemptCount:  1,
		LastAttemptAt: now,
	})

	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
}
