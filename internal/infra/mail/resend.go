package mail

import (
	"context"
	"fmt"

	"payping-dispatch/internal/pkg/config"
	"payping-dispatch/internal/pkg/errs"
	"payping-dispatch/internal/usecase/commands"

	"github.com/resend/resend-go/v2"
)

// ResendSender submits email through the Resend API. A send counts as
// delivered only on a nil error plus a non-empty message id; anything else is
// treated as failure so the caller's idempotency timestamps stay unset.
type ResendSender struct {
	client *resend.Client
	cfg    config.ResendConfig
}

func NewResendSender(cfg config.ResendConfig) *ResendSender {
	return &ResendSender{
		client: resend.NewClient(cfg.APIKey),
		cfg:    cfg,
	}
}

func (s *ResendSender) Configured() bool {
	return s.cfg.APIKey != ""
}

func (s *ResendSender) Send(ctx context.Context, msg commands.Message) (string, error) {
	if !s.Configured() {
		return "", errs.New("resend api key not configured")
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.SendTimeout)
	defer cancel()

	params := &resend.SendEmailRequest{
		From:    s.fromLine(msg.FromName),
		To:      []string{msg.To},
		Subject: msg.Subject,
		Html:    msg.HTML,
	}
	if msg.ReplyTo != "" {
		params.ReplyTo = msg.ReplyTo
	}

	sent, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return "", errs.Wrap(err, "resend send failed")
	}
	if sent == nil || sent.Id == "" {
		return "", errs.New("resend returned no message id")
	}
	return sent.Id, nil
}

// fromLine keeps the shared sending address but surfaces who the email is
// really from, e.g. "jane via PayPing <onboarding@resend.dev>".
func (s *ResendSender) fromLine(fromName string) string {
	if fromName == "" {
		return fmt.Sprintf("%s <%s>", s.cfg.FromLabel, s.cfg.FromAddress)
	}
	return fmt.Sprintf("%s via %s <%s>", fromName, s.cfg.FromLabel, s.cfg.FromAddress)
}
