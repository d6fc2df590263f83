package bootstrap

import (
	"payping-dispatch/internal/infra/mail"
	"payping-dispatch/internal/pkg/config"
	"payping-dispatch/internal/usecase/commands"

	"go.uber.org/fx"
)

var MailerModule = fx.Module("mailer",
	fx.Provide(
		fx.Annotate(
			NewMailer,
			fx.As(new(commands.MailSender)),
		),
	),
)

func NewMailer(cfg config.Config) *mail.ResendSender {
	return mail.NewResendSender(cfg.Resend)
}
