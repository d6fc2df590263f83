package reminder

import (
	"time"

	"github.com/google/uuid"
)

// Reminder is the persisted notification obligation as stored in the
// reminders table. The dispatcher reconstructs it from the row and stages
// changes through Patch; it never creates or deletes reminders.
type Reminder struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	ClientID        uuid.UUID
	RemindAt        time.Time
	Kind            Category
	Channel         Channel
	Message         string
	Status          Status
	UserNotifiedAt  *time.Time
	ClientEmailedAt *time.Time
	AttemptCount    int
	LastAttemptAt   *time.Time
	DoneAt          *time.Time
	SendClientEmail bool
}

// Patch is the staged subset of mutable columns written back in one update.
// AttemptCount and LastAttemptAt are always staged; the rest only when the
// corresponding step succeeded this run.
type Patch struct {
	AttemptCount    int
	LastAttemptAt   time.Time
	UserNotifiedAt  *time.Time
	ClientEmailedAt *time.Time
	Status          *Status
	DoneAt          *time.Time
}

// DeliveryState projects the two nullable timestamps onto the explicit
// four-state lattice.
func (r *Reminder) DeliveryState() DeliveryState {
	switch {
	case r.UserNotifiedAt != nil && r.ClientEmailedAt != nil:
		return DeliveryBoth
	case r.UserNotifiedAt != nil:
		return DeliveryOwnerOnly
	case r.ClientEmailedAt != nil:
		return DeliveryClientOnly
	default:
		return DeliveryNone
	}
}

// NeedsOwnerNotice reports whether the owner notification is still owed.
// A set timestamp means the send already succeeded once and must not repeat.
func (r *Reminder) NeedsOwnerNotice() bool {
	return r.UserNotifiedAt == nil
}

// NeedsClientEmail reports whether a client email is still owed, given whether
// a usable client address exists at all.
func (r *Reminder) NeedsClientEmail(hasUsableEmail bool) bool {
	return r.SendClientEmail && r.ClientEmailedAt == nil && hasUsableEmail
}

// HasOutstandingWork mirrors the selection filter: a reminder is a candidate
// while the owner notice is owed, or a requested client email is owed. This is
// the invariant that keeps fully-delivered reminders out of every batch.
func (r *Reminder) HasOutstandingWork() bool {
	return r.UserNotifiedAt == nil || (r.SendClientEmail && r.ClientEmailedAt == nil)
}

// Complete decides the done transition. ownerNotified and clientEmailed are
// the cumulative outcomes (previous runs or this one); emailRequired is true
// only when the reminder asks for a client email AND a usable address exists.
// No usable address means completion does not wait on the client leg.
func Complete(ownerNotified, clientEmailed, emailRequired bool) bool {
	return ownerNotified && (!emailRequired || clientEmailed)
}
