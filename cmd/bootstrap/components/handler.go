package components

import (
	"coachbook/internal/handler"
	"coachbook/internal/handler/api"
	"coachbook/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAvailabilityHandler,
		api.NewBookingHandler,
		api.NewTagHandler,
		middleware.NewAuthMiddleware,
		func(a *api.AvailabilityHandler, b *api.BookingHandler, t *api.TagHandler) handler.Handlers {
			return handler.Handlers{Availability: a, Booking: b, Tag: t}
		},
	),
	fx.Invoke(handler.NewRouter),
)
