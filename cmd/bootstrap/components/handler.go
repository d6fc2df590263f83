package components

import (
	"payping-dispatch/internal/handler"
	"payping-dispatch/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewDispatchHandler,
	),
	fx.Invoke(handler.NewRouter),
)
