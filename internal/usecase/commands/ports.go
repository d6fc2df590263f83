package commands

import (
	"context"
	"time"

	"payping-dispatch/internal/domain/account"
	"payping-dispatch/internal/domain/client"
	"payping-dispatch/internal/domain/reminder"

	"github.com/google/uuid"
)

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/ports/ports.go -package=portsmock

// ReminderRepository is the dispatcher's read/write access to reminders.
type ReminderRepository interface {
	// Due returns at most limit reminders that are pending, due at or before
	// now, under the attempt ceiling, and still have outstanding work.
	Due(ctx context.Context, now time.Time, maxAttempts, limit int) ([]reminder.Reminder, error)
	// Apply writes one reminder's staged fields in a single update.
	Apply(ctx context.Context, id uuid.UUID, patch reminder.Patch) error
}

// ClientReadStore resolves a reminder's target client. Read-only.
type ClientReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*client.Client, error)
}

// AccountReadStore resolves a reminder's owning account. Read-only.
type AccountReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*account.Account, error)
}

// Message is one outbound email. ReplyTo and FromName are optional; when set,
// replies route to the account owner instead of the shared sending address.
type Message struct {
	To       string
	Subject  string
	HTML     string
	ReplyTo  string
	FromName string
}

// MailSender submits email through the external service. Send returns the
// service's opaque message id; anything short of a definitive acknowledgment
// is an error.
type MailSender interface {
	Configured() bool
	Send(ctx context.Context, msg Message) (string, error)
}
