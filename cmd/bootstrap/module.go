package bootstrap

import (
	"payping-dispatch/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	MailerModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
