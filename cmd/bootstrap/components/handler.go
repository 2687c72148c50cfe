package components

import (
	"campus-parking/internal/handler"
	"campus-parking/internal/handler/api"
	"campus-parking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewLotHandler,
		api.NewReservationHandler,
		api.NewAdminHandler,
		api.NewDetectionHandler,
		middleware.NewAuthMiddleware,
		handler.NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)
