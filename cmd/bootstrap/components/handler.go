package components

import (
	"gaya-booking/internal/handler"
	"gaya-booking/internal/handler/api"
	"gaya-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewPaymentHandler,
		api.NewBookingHandler,
		api.NewPropertyImageHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
