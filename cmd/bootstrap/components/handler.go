package components

import (
	"gym-booking/internal/handler"
	"gym-booking/internal/handler/api"
	"gym-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewCatalogHandler,
		api.NewCreditHandler,
		api.NewOrderHandler,
		api.NewWebhookHandler,
		api.NewAdminHandler,
		middleware.NewAuthMiddleware,
		middleware.NewRateLimiter,
	),
	fx.Invoke(handler.NewRouter),
)
