package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"campfinder/internal/handler/api"
	"campfinder/internal/handler/middleware"
	"campfinder/internal/infra/ratelimit"
	"campfinder/internal/pkg/config"
	"campfinder/internal/pkg/metrics"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups every API handler the router mounts.
type Handlers struct {
	Auth        *api.AuthHandler
	Campsite    *api.CampsiteHandler
	Reservation *api.ReservationHandler
	Review      *api.ReviewHandler
	Geolocation *api.GeolocationHandler
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *middleware.Logger,
	h Handlers,
	authMiddleware *middleware.AuthMiddleware,
	authLimiter ratelimit.Limiter,
) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware, authLimiter)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.Metrics())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware, authLimiter ratelimit.Limiter) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(metrics.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := authMiddleware.RequireAuth()
	limited := middleware.RateLimit(authLimiter, "auth")

	v1 := engine.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		addRoutes(auth, []route{
			{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register, Mw: []gin.HandlerFunc{limited}},
			{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login, Mw: []gin.HandlerFunc{limited}},
			{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh, Mw: []gin.HandlerFunc{limited}},
			{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout, Mw: []gin.HandlerFunc{requireAuth}},
			{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me, Mw: []gin.HandlerFunc{requireAuth}},
			{Method: http.MethodPut, Path: "/me", Handler: h.Auth.UpdateMe, Mw: []gin.HandlerFunc{requireAuth}},
		})

		campsites := v1.Group("/campsites")
		addRoutes(campsites, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Campsite.List},
			{Method: http.MethodGet, Path: "/nearby", Handler: h.Campsite.Nearby},
			{Method: http.MethodGet, Path: "/within", Handler: h.Campsite.Within},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Campsite.Get},
			{Method: http.MethodPost, Path: "", Handler: h.Campsite.Create, Mw: []gin.HandlerFunc{requireAuth}},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Campsite.Update, Mw: []gin.HandlerFunc{requireAuth}},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Campsite.Delete, Mw: []gin.HandlerFunc{requireAuth}},
			{Method: http.MethodGet, Path: "/:id/reviews", Handler: h.Review.ListByCampsite},
			{Method: http.MethodPost, Path: "/:id/reviews", Handler: h.Review.Create, Mw: []gin.HandlerFunc{requireAuth}},
			{Method: http.MethodGet, Path: "/:id/rating-stats", Handler: h.Review.RatingStats},
		})

		reviews := v1.Group("/reviews")
		addRoutes(reviews, []route{
			{Method: http.MethodGet, Path: "/:id", Handler: h.Review.Get},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Review.Update, Mw: []gin.HandlerFunc{requireAuth}},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Review.Delete, Mw: []gin.HandlerFunc{requireAuth}},
		})

		reservations := v1.Group("/reservations")
		reservations.Use(requireAuth)
		addRoutes(reservations, []route{
			{Method: http.MethodGet, Path: "/my-reservations", Handler: h.Reservation.GetUserReservations},
			{Method: http.MethodPost, Path: "/:id", Handler: h.Reservation.CreateReservation},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Reservation.GetReservation},
			{Method: http.MethodPut, Path: "/:id/cancel", Handler: h.Reservation.CancelReservation},
		})

		geolocation := v1.Group("/geolocation")
		addRoutes(geolocation, []route{
			{Method: http.MethodPost, Path: "/distance", Handler: h.Geolocation.Distance},
			{Method: http.MethodGet, Path: "/permission", Handler: h.Geolocation.Permission},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
