package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"github.com/anaarismendy/ReservasHoteles---Prueba-Tecnica/internal/handler/api"
	"github.com/anaarismendy/ReservasHoteles---Prueba-Tecnica/internal/handler/middleware"
	"github.com/anaarismendy/ReservasHoteles---Prueba-Tecnica/internal/infra/idempotency"
	"github.com/anaarismendy/ReservasHoteles---Prueba-Tecnica/internal/observability"
	"github.com/anaarismendy/ReservasHoteles---Prueba-Tecnica/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Pinger reports database reachability for /health.
type Pinger interface {
	Ping(ctx context.Context) error
}

type RouterDeps struct {
	fx.In

	Config         config.Config
	Logger         *middleware.Logger
	Metrics        *observability.Metrics
	Booking        *api.BookingHandler
	Idempotency    *idempotency.Store `optional:"true"` // absent when Redis is not configured
	DatabasePinger Pinger
}

func NewRouter(engine *gin.Engine, deps RouterDeps) {
	setupMiddleware(engine, deps)
	setupRoutes(engine, deps)
}

func setupMiddleware(engine *gin.Engine, deps RouterDeps) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(deps.Config.CORS))
	engine.Use(deps.Logger.LoggingMiddleware())
	engine.Use(middleware.Metrics(deps.Metrics))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, deps RouterDeps) {
	engine.GET("/health", healthCheck(deps.DatabasePinger))
	engine.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	var store middleware.IdempotencyStore
	if deps.Idempotency != nil {
		store = deps.Idempotency
	}
	idem := middleware.Idempotency(store, deps.Metrics)

	reservas := engine.Group("/api/reservas")
	reservas.Use(middleware.RateLimit(deps.Config.RateLimit, deps.Metrics))
	{
		addRoutes(reservas, []route{
			{Method: http.MethodGet, Path: "/disponibilidad", Handler: deps.Booking.CheckAvailability},
			{Method: http.MethodGet, Path: "/tarifas", Handler: deps.Booking.ListRates},
			{Method: http.MethodPost, Path: "/calcular-precio", Handler: deps.Booking.ComputePrice},
			{Method: http.MethodPost, Path: "", Handler: deps.Booking.CreateReservation, Mw: []gin.HandlerFunc{idem}},
		})
	}
}

// @Summary Health check
// @Description Check if the service and its database are reachable
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func healthCheck(pinger Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if pinger != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := pinger.Ping(ctx); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{
					"status":  "unavailable",
					"message": "Database is unreachable",
				})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Service is healthy",
		})
	}
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		hs := append(append([]gin.HandlerFunc{}, r.Mw...), r.Handler)
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, hs...)
		case http.MethodPost:
			g.POST(r.Path, hs...)
		default:
			g.Any(r.Path, hs...)
		}
	}
}
