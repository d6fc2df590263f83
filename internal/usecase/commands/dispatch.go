package commands

import (
	"context"
	"log/slog"

	"payping-dispatch/internal/domain/reminder"
	"payping-dispatch/internal/infra"
	"payping-dispatch/internal/pkg/clock"
	"payping-dispatch/internal/pkg/config"
	"payping-dispatch/internal/pkg/errs"

	"github.com/google/uuid"
)

//go:generate mockgen -source=dispatch.go -destination=../../../tests/mock/commands/dispatch.go -package=commandsmock

// ErrMailerNotConfigured aborts a run before any store access: without a send
// credential every delivery would fail and only burn attempt counters.
var ErrMailerNotConfigured = errs.New("email service not configured")

// ReminderResult reports what happened to one reminder during a single run.
// UserNotified and ClientEmailed are true only for sends that succeeded this
// run, not for timestamps carried over from earlier runs.
type ReminderResult struct {
	ID            uuid.UUID
	Client        string
	UserNotified  bool
	ClientEmailed bool
	Completed     bool
}

type RunSummary struct {
	Processed int
	Results   []ReminderResult
}

type DispatchCommands interface {
	Run(ctx context.Context) (*RunSummary, error)
}

type dispatchImpl struct {
	reminders ReminderRepository
	clients   ClientReadStore
	accounts  AccountReadStore
	mailer    MailSender
	clock     clock.Clock
	policy    config.DispatchConfig
	logger    *slog.Logger
}

func NewDispatchCommands(
	reminders ReminderRepository,
	clients ClientReadStore,
	accounts AccountReadStore,
	mailer MailSender,
	clk clock.Clock,
	cfg config.Config,
	logger *slog.Logger,
) DispatchCommands {
	return &dispatchImpl{
		reminders: reminders,
		clients:   clients,
		accounts:  accounts,
		mailer:    mailer,
		clock:     clk,
		policy:    cfg.Dispatch,
		logger:    logger,
	}
}

// Run selects one bounded batch of due reminders and drives each through the
// two-stage notification protocol. Reminders are processed sequentially; a
// failure inside one reminder never aborts the batch. Only the preconditions
// and the selection query itself can fail the run.
func (uc *dispatchImpl) Run(ctx context.Context) (*RunSummary, error) {
	if !uc.mailer.Configured() {
		return nil, ErrMailerNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, uc.policy.RunTimeout)
	defer cancel()

	now := uc.clock.Now()
	due, err := uc.reminders.Due(ctx, now, uc.policy.MaxAttempts, uc.policy.BatchLimit)
	if err != nil {
		return nil, errs.Wrap(err, "failed to fetch due reminders")
	}

	uc.logger.Info("dispatch run started", "due", len(due))

	results := make([]ReminderResult, 0, len(due))
	for i := range due {
		if res, ok := uc.process(ctx, &due[i]); ok {
			results = append(results, res)
		}
	}

	uc.logger.Info("dispatch run finished", "processed", len(results))
	return &RunSummary{Processed: len(results), Results: results}, nil
}

// process runs the per-reminder state machine. The returned bool is false
// when the reminder was skipped without any mutation (dangling relations are
// a data-integrity anomaly, not a retryable delivery failure).
func (uc *dispatchImpl) process(ctx context.Context, r *reminder.Reminder) (ReminderResult, bool) {
	log := uc.logger.With("reminder_id", r.ID)

	cl, err := uc.clients.FindByID(ctx, r.ClientID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			log.Warn("client not found, skipping reminder", "client_id", r.ClientID)
		} else {
			log.Error("failed to load client, skipping reminder", "error", err)
		}
		return ReminderResult{}, false
	}

	owner, err := uc.accounts.FindByID(ctx, r.UserID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			log.Warn("account not found, skipping reminder", "user_id", r.UserID)
		} else {
			log.Error("failed to load account, skipping reminder", "error", err)
		}
		return ReminderResult{}, false
	}

	now := uc.clock.Now()
	patch := reminder.Patch{
		AttemptCount:  r.AttemptCount + 1,
		LastAttemptAt: now,
	}

	// Cumulative outcomes across runs; the timestamp guard makes each send
	// happen at most once no matter how often the reminder is re-selected.
	ownerNotified := r.UserNotifiedAt != nil
	clientEmailed := r.ClientEmailedAt != nil

	if r.NeedsOwnerNotice() {
		msg := Message{
			To:      owner.Email,
			Subject: OwnerNoticeSubject(cl.Name),
			HTML:    OwnerNoticeHTML(r, cl),
		}
		if _, sendErr := uc.mailer.Send(ctx, msg); sendErr != nil {
			log.Warn("owner notification failed", "error", sendErr)
		} else {
			ownerNotified = true
			patch.UserNotifiedAt = &now
			log.Info("owner notified")
		}
	}

	clientEmail, hasEmail := cl.UsableEmail()
	if r.NeedsClientEmail(hasEmail) {
		msg := Message{
			To:       clientEmail,
			Subject:  ClientNoticeSubject,
			HTML:     ClientNoticeHTML(r.Message),
			ReplyTo:  owner.Email,
			FromName: owner.SenderName(),
		}
		if _, sendErr := uc.mailer.Send(ctx, msg); sendErr != nil {
			log.Warn("client email failed", "error", sendErr)
		} else {
			clientEmailed = true
			patch.ClientEmailedAt = &now
			log.Info("client emailed", "to", clientEmail)
		}
	}

	emailRequired := r.SendClientEmail && hasEmail
	completed := reminder.Complete(ownerNotified, clientEmailed, emailRequired)
	if completed {
		done := reminder.StatusDone
		patch.Status = &done
		patch.DoneAt = &now
		log.Info("reminder completed")
	}

	if applyErr := uc.reminders.Apply(ctx, r.ID, patch); applyErr != nil {
		// The stored row stays authoritative; the reminder is reconsidered on
		// the next run. Nothing was double-sent by a failed write.
		log.Error("failed to persist reminder progress", "error", applyErr)
	}

	return ReminderResult{
		ID:            r.ID,
		Client:        cl.Name,
		UserNotified:  patch.UserNotifiedAt != nil,
		ClientEmailed: patch.ClientEmailedAt != nil,
		Completed:     completed,
	}, true
}
