package components

import (
	"tripnest-api/internal/handler"
	"tripnest-api/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewPricingHandler,
		api.NewListingHandler,
	),
	fx.Invoke(handler.NewRouter),
)
