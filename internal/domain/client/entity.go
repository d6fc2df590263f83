package client

import (
	"strings"

	"github.com/google/uuid"
)

// Client is a contact record, read-only from the dispatcher's perspective.
// Contact is free-form: a phone number for WhatsApp-first users, or an email
// address for users who never filled the explicit email field.
type Client struct {
	ID      uuid.UUID
	UserID  uuid.UUID
	Name    string
	Contact string
	Email   *string
}

// UsableEmail derives the address a client notice can go to: the explicit
// email field when present, else the contact string when it is itself an
// email address. The "@" check is deliberately loose; it matches what the
// dashboard accepts.
func (c *Client) UsableEmail() (string, bool) {
	if c.Email != nil && *c.Email != "" {
		return *c.Email, true
	}
	if strings.Contains(c.Contact, "@") {
		return c.Contact, true
	}
	return "", false
}
