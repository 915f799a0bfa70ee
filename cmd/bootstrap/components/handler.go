package components

import (
	"campfinder/internal/handler"
	"campfinder/internal/handler/api"
	"campfinder/internal/handler/middleware"
	"campfinder/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		func() *gin.Engine { return gin.New() },
		api.NewAuthHandler,
		api.NewCampsiteHandler,
		api.NewReservationHandler,
		api.NewReviewHandler,
		api.NewGeolocationHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(metrics.Register),
	fx.Invoke(handler.NewRouter),
)

type handlerParams struct {
	fx.In

	Auth        *api.AuthHandler
	Campsite    *api.CampsiteHandler
	Reservation *api.ReservationHandler
	Review      *api.ReviewHandler
	Geolocation *api.GeolocationHandler
}

func NewHandlers(p handlerParams) handler.Handlers {
	return handler.Handlers{
		Auth:        p.Auth,
		Campsite:    p.Campsite,
		Reservation: p.Reservation,
		Review:      p.Review,
		Geolocation: p.Geolocation,
	}
}
