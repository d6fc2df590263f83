package account

import (
	"strings"

	"github.com/google/uuid"
)

// Account is the owning user's profile, read-only from the dispatcher's
// perspective. Email is where owner notices go and where client replies are
// routed.
type Account struct {
	ID    uuid.UUID
	Email string
}

// SenderName is the human-readable from-name used when emailing a client on
// the owner's behalf: the local part of the owner's address.
func (a *Account) SenderName() string {
	if i := strings.Index(a.Email, "@"); i > 0 {
		return a.Email[:i]
	}
	return a.Email
}
