package components

import (
	"payping-dispatch/internal/infra"
	"payping-dispatch/internal/infra/readstore"
	"payping-dispatch/internal/infra/repository"
	"payping-dispatch/internal/usecase/commands"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewInfraDB,
		fx.Annotate(
			repository.NewReminderRepository,
			fx.As(new(commands.ReminderRepository)),
		),
		fx.Annotate(
			readstore.NewClientReadStore,
			fx.As(new(commands.ClientReadStore)),
		),
		fx.Annotate(
			readstore.NewAccountReadStore,
			fx.As(new(commands.AccountReadStore)),
		),
	),
)

func NewInfraDB(pool *pgxpool.Pool) infra.DB {
	return pool
}
