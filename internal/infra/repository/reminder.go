package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"payping-dispatch/internal/domain/reminder"
	"payping-dispatch/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// dueQuery mirrors the dashboard's completion rule: a reminder stays a
// candidate while the owner notice is owed, or a requested client email is
// owed. Attempt-exhausted reminders are left pending on purpose ("give up but
// don't lose data"); they simply stop matching the attempt_count filter.
const dueQuery = `
SELECT id, user_id, client_id, remind_at, kind, channel, message, status,
       user_notified_at, client_emailed_at, attempt_count, last_attempt_at, done_at,
       send_client_email
FROM reminders
WHERE status = 'pending'
  AND remind_at <= $1
  AND attempt_count < $2
  AND (user_notified_at IS NULL OR (send_client_email AND client_emailed_at IS NULL))
LIMIT $3`

type ReminderRepository struct {
	db infra.DB
}

func NewReminderRepository(db infra.DB) *ReminderRepository {
	return &ReminderRepository{db: db}
}

func (r *ReminderRepository) Due(ctx context.Context, now time.Time, maxAttempts, limit int) ([]reminder.Reminder, error) {
	rows, err := r.db.Query(ctx, dueQuery, now, maxAttempts, limit)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to query due reminders", err)
	}
	defer rows.Close()

	var out []reminder.Reminder
	for rows.Next() {
		var (
			rem             reminder.Reminder
			kind, channel   string
			status          string
			userNotifiedAt  pgtype.Timestamptz
			clientEmailedAt pgtype.Timestamptz
			lastAttemptAt   pgtype.Timestamptz
			doneAt          pgtype.Timestamptz
		)
		if err := rows.Scan(
			&rem.ID, &rem.UserID, &rem.ClientID, &rem.RemindAt, &kind, &channel,
			&rem.Message, &status, &userNotifiedAt, &clientEmailedAt,
			&rem.AttemptCount, &lastAttemptAt, &doneAt, &rem.SendClientEmail,
		); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan reminder row", err)
		}
		rem.Kind = reminder.Category(kind)
		rem.Channel = reminder.Channel(channel)
		rem.Status = reminder.Status(status)
		rem.UserNotifiedAt = timePtr(userNotifiedAt)
		rem.ClientEmailedAt = timePtr(clientEmailedAt)
		rem.LastAttemptAt = timePtr(lastAttemptAt)
		rem.DoneAt = timePtr(doneAt)
		out = append(out, rem)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read due reminders", err)
	}
	return out, nil
}

// Apply writes one reminder's staged fields in a single update. The
// status='pending' guard keeps a concurrent manual "mark done" from being
// silently overwritten; losing the race surfaces as a stale-row error and the
// reminder is simply not re-selected.
func (r *ReminderRepository) Apply(ctx context.Context, id uuid.UUID, patch reminder.Patch) error {
	sets := []string{"attempt_count = $1", "last_attempt_at = $2"}
	args := []any{patch.AttemptCount, patch.LastAttemptAt}

	if patch.UserNotifiedAt != nil {
		args = append(args, *patch.UserNotifiedAt)
		sets = append(sets, fmt.Sprintf("user_notified_at = $%d", len(args)))
	}
	if patch.ClientEmailedAt != nil {
		args = append(args, *patch.ClientEmailedAt)
		sets = append(sets, fmt.Sprintf("client_emailed_at = $%d", len(args)))
	}
	if patch.Status != nil {
		args = append(args, string(*patch.Status))
		sets = append(sets, fmt.Sprintf("status = $%d", len(args)))
	}
	if patch.DoneAt != nil {
		args = append(args, *patch.DoneAt)
		sets = append(sets, fmt.Sprintf("done_at = $%d", len(args)))
	}

	args = append(args, id)
	query := fmt.Sprintf(
		"UPDATE reminders SET %s WHERE id = $%d AND status = 'pending'",
		strings.Join(sets, ", "), len(args),
	)

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to update reminder", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindStale, "reminder no longer pending", nil)
	}
	return nil
}

func timePtr(ts pgtype.Timestamptz) *time.Time {
	if !ts.Valid {
		return nil
	}
	t := ts.Time
	return &t
}
