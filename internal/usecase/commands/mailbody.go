package commands

import (
	"fmt"
	"html"

	"payping-dispatch/internal/domain/client"
	"payping-dispatch/internal/domain/reminder"
)

// Email composition is pure string building over typed data so it can be
// tested without a network. User-entered fields are escaped; the original
// dashboard bounds them but the dispatcher does not trust that.

const dashboardURL = "https://ping-pay-profit.lovable.app/app"

const ClientNoticeSubject = "Quick reminder"

func OwnerNoticeSubject(clientName string) string {
	return "PayPing: Reminder due today — " + clientName
}

func OwnerNoticeHTML(r *reminder.Reminder, cl *client.Client) string {
	return fmt.Sprintf(`
    <div style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; max-width: 600px; margin: 0 auto;">
      <div style="background: linear-gradient(135deg, #6366f1 0%%, #8b5cf6 100%%); padding: 32px; border-radius: 12px 12px 0 0;">
        <h1 style="color: white; margin: 0; font-size: 24px;">⚡ PayPing Reminder</h1>
      </div>
      <div style="padding: 32px; background: #f8fafc; border-radius: 0 0 12px 12px;">
        <p style="color: #475569; font-size: 16px; margin: 0 0 24px 0;">
          You have a <strong>%s</strong> reminder due for:
        </p>
        <div style="background: white; padding: 20px; border-radius: 8px; border: 1px solid #e2e8f0; margin-bottom: 24px;">
          <h2 style="margin: 0 0 8px 0; color: #1e293b;">%s</h2>
          <p style="margin: 0 0 16px 0; color: #64748b;">%s</p>
          <div style="background: #f1f5f9; padding: 12px; border-radius: 6px;">
            <p style="margin: 0; color: #475569; font-style: italic;">&quot;%s&quot;</p>
          </div>
        </div>
        <p style="color: #64748b; font-size: 14px; margin: 0 0 24px 0;">
          Channel: <strong>%s</strong> | Type: <strong>%s</strong>
        </p>
        <a href="%s" style="display: inline-block; background: #6366f1; color: white; padding: 12px 24px; border-radius: 8px; text-decoration: none; font-weight: 600;">
          Open Dashboard
        </a>
      </div>
    </div>`,
		html.EscapeString(string(r.Kind)),
		html.EscapeString(cl.Name),
		html.EscapeString(cl.Contact),
		html.EscapeString(r.Message),
		html.EscapeString(string(r.Channel)),
		html.EscapeString(string(r.Kind)),
		dashboardURL,
	)
}

func ClientNoticeHTML(message string) string {
	return fmt.Sprintf(`
    <div style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; max-width: 600px; margin: 0 auto; padding: 32px;">
      <p style="color: #1e293b; font-size: 16px; line-height: 1.6; margin: 0 0 24px 0;">
        %s
      </p>
      <p style="color: #64748b; font-size: 14px; margin: 0;">
        — Sent via PayPing
      </p>
    </div>`,
		html.EscapeString(message),
	)
}
