package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"coachbook/internal/handler/api"
	"coachbook/internal/handler/dto/request"
	"coachbook/internal/handler/middleware"
	"coachbook/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Availability *api.AvailabilityHandler
	Booking      *api.BookingHandler
	Tag          *api.TagHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) error {
	if err := request.RegisterValidations(); err != nil {
		return err
	}
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
	return nil
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := authMiddleware.RequireAuth()

	apiGroup := engine.Group("/api")
	{
		availabilities := apiGroup.Group("/availabilities")
		addRoutes(availabilities, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Availability.Create, Mw: []gin.HandlerFunc{requireAuth}},
			{Method: http.MethodGet, Path: "/:key", Handler: h.Availability.Get},
			{Method: http.MethodDelete, Path: "/:key", Handler: h.Availability.Delete, Mw: []gin.HandlerFunc{requireAuth}},
		})

		bookings := apiGroup.Group("/bookings")
		bookings.Use(requireAuth)
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Booking.Create},
				{Method: http.MethodGet, Path: "/:key", Handler: h.Booking.Get},
				{Method: http.MethodDelete, Path: "/:key", Handler: h.Booking.Delete},
			})
		}

		coaches := apiGroup.Group("/coaches/:coachId")
		addRoutes(coaches, []route{
			{Method: http.MethodGet, Path: "/availabilities", Handler: h.Availability.ListByCoach},
			{Method: http.MethodGet, Path: "/bookings", Handler: h.Booking.ListByCoach, Mw: []gin.HandlerFunc{requireAuth}},
		})

		seekers := apiGroup.Group("/seekers/:seekerId")
		seekers.Use(requireAuth)
		{
			addRoutes(seekers, []route{
				{Method: http.MethodGet, Path: "/bookings", Handler: h.Booking.ListBySeeker},
			})
		}

		posts := apiGroup.Group("/posts/:id/tags")
		posts.Use(requireAuth)
		{
			addRoutes(posts, []route{
				{Method: http.MethodPut, Path: "", Handler: h.Tag.Attach},
				{Method: http.MethodDelete, Path: "", Handler: h.Tag.DetachAll},
				{Method: http.MethodDelete, Path: "/:tagId", Handler: h.Tag.Detach},
			})
		}
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
