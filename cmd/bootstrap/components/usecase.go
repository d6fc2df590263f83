package components

import (
	"payping-dispatch/internal/pkg/clock"
	"payping-dispatch/internal/usecase/commands"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		commands.NewDispatchCommands,
	),
)
