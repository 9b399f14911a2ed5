package components

import (
	"radstation/internal/handler"
	"radstation/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewRentalHandler,
	),
	fx.Invoke(handler.NewRouter),
)
