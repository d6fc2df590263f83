package account_test

import (
	"testing"

	"payping-dispatch/internal/domain/account"

	"github.com/stretchr/testify/assert"
)

func TestAccount_SenderName(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  string
	}{
		{name: "plain address", email: "jane@example.com", want: "jane"},
		{name: "dotted local part", email: "jane.doe@example.com", want: "jane.doe"},
		{name: "no at sign falls back to the whole string", email: "jane", want: "jane"},
		{name: "leading at sign keeps the whole string", email: "@example.com", want: "@example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := account.Account{Email: tt.email}
			assert.Equal(t, tt.want, a.SenderName())
		})
	}
}
