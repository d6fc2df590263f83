package reminder_test

import (
	"testing"
	"time"

	"payping-dispatch/internal/domain/reminder"

	"github.com/stretchr/testify/assert"
)

func timeRef(t time.Time) *time.Time { return &t }

func TestReminder_DeliveryState(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		userNotified  *time.Time
		clientEmailed *time.Time
		want          reminder.DeliveryState
		wantStr       string
	}{
		{
			name:    "neither timestamp set",
			want:    reminder.DeliveryNone,
			wantStr: "none",
		},
		{
			name:         "owner only",
			userNotified: timeRef(now),
			want:         reminder.DeliveryOwnerOnly,
			wantStr:      "owner_only",
		},
		{
			name:          "client only",
			clientEmailed: timeRef(now),
			want:          reminder.DeliveryClientOnly,
			wantStr:       "client_only",
		},
		{
			name:          "both set",
			userNotified:  timeRef(now),
			clientEmailed: timeRef(now.Add(time.Minute)),
			want:          reminder.DeliveryBoth,
			wantStr:       "both",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := reminder.Reminder{
				UserNotifiedAt:  tt.userNotified,
				ClientEmailedAt: tt.clientEmailed,
			}
			assert.Equal(t, tt.want, r.DeliveryState())
			assert.Equal(t, tt.wantStr, r.DeliveryState().String())
		})
	}
}

func TestReminder_NeedsOwnerNotice(t *testing.T) {
	now := time.Now().UTC()

	r := reminder.Reminder{}
	assert.True(t, r.NeedsOwnerNotice())

	r.UserNotifiedAt = timeRef(now)
	assert.False(t, r.NeedsOwnerNotice(), "a set timestamp means the send must not repeat")
}

func TestReminder_NeedsClientEmail(t *testing.T) {
	now := time.Now().UTC()

	tests := []struct {
		name            string
		sendClientEmail bool
		clientEmailedAt *time.Time
		hasUsableEmail  bool
		want            bool
	}{
		{
			name:            "requested, not yet sent, address available",
			sendClientEmail: true,
			hasUsableEmail:  true,
			want:            true,
		},
		{
			name:           "not requested",
			hasUsableEmail: true,
			want:           false,
		},
		{
			name:            "already emailed",
			sendClientEmail: true,
			clientEmailedAt: timeRef(now),
			hasUsableEmail:  true,
			want:            false,
		},
		{
			name:            "requested but no usable address",
			sendClientEmail: true,
			hasUsableEmail:  false,
			want:            false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := reminder.Reminder{
				SendClientEmail: tt.sendClientEmail,
				ClientEmailedAt: tt.clientEmailedAt,
			}
			assert.Equal(t, tt.want, r.NeedsClientEmail(tt.hasUsableEmail))
		})
	}
}

func TestReminder_HasOutstandingWork(t *testing.T) {
	now := time.Now().UTC()

	tests := []struct {
		name            string
		userNotified    *time.Time
		clientEmailed   *time.Time
		sendClientEmail bool
		want            bool
	}{
		{
			name: "fresh reminder",
			want: true,
		},
		{
			name:         "owner notified, no client email requested",
			userNotified: timeRef(now),
			want:         false,
		},
		{
			name:            "owner notified, client email still owed",
			userNotified:    timeRef(now),
			sendClientEmail: true,
			want:            true,
		},
		{
			name:            "both legs delivered",
			userNotified:    timeRef(now),
			clientEmailed:   timeRef(now),
			sendClientEmail: true,
			want:            false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := reminder.Reminder{
				UserNotifiedAt:  tt.userNotified,
				ClientEmailedAt: tt.clientEmailed,
				SendClientEmail: tt.sendClientEmail,
			}
			assert.Equal(t, tt.want, r.HasOutstandingWork())
		})
	}
}

func TestComplete(t *testing.T) {
	tests := []struct {
		name          string
		ownerNotified bool
		clientEmailed bool
		emailRequired bool
		want          bool
	}{
		{
			name:          "owner notified, email not required",
			ownerNotified: true,
			want:          true,
		},
		{
			name:          "owner notified, required email delivered",
			ownerNotified: true,
			clientEmailed: true,
			emailRequired: true,
			want:          true,
		},
		{
			name:          "owner notified, required email still owed",
			ownerNotified: true,
			emailRequired: true,
			want:          false,
		},
		{
			name:          "owner not notified blocks completion",
			clientEmailed: true,
			emailRequired: true,
			want:          false,
		},
		{
			name: "nothing delivered",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := reminder.Complete(tt.ownerNotified, tt.clientEmailed, tt.emailRequired)
			assert.Equal(t, tt.want, got)
		})
	}
}
