package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/mapview-backend/internal/adapter/handler"
	"github.com/marcos-nsantos/mapview-backend/internal/infrastructure/middleware"
	"github.com/marcos-nsantos/mapview-backend/internal/infrastructure/observability"
)

type Router struct {
	engine         *gin.Engine
	viewHandler    *handler.ViewHandler
	tileHandler    *handler.TileHandler
	authMiddleware *middleware.AuthMiddleware
	rateLimiter    *middleware.RateLimiter
	httpMetrics    *observability.HTTPMetrics
	gatherer       prometheus.Gatherer
	logger         *zap.Logger
}

type RouterConfig struct {
	ViewHandler    *handler.ViewHandler
	TileHandler    *handler.TileHandler
	AuthMiddleware *middleware.AuthMiddleware
	// RateLimiter is optional.
	RateLimiter *middleware.RateLimiter
	HTTPMetrics *observability.HTTPMetrics
	Gatherer    prometheus.Gatherer
	Logger      *zap.Logger
	Environment string
}

func NewRouter(cfg RouterConfig) *Router {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	r := &Router{
		engine:         engine,
		viewHandler:    cfg.ViewHandler,
		tileHandler:    cfg.TileHandler,
		authMiddleware: cfg.AuthMiddleware,
		rateLimiter:    cfg.RateLimiter,
		httpMetrics:    cfg.HTTPMetrics,
		gatherer:       cfg.Gatherer,
		logger:         cfg.Logger,
	}

	r.setupMiddleware()
	r.setupRoutes()

	return r
}

func (r *Router) setupMiddleware() {
	r.engine.Use(middleware.Recovery(r.logger))
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(r.logger, "/health", "/metrics"))
	r.engine.Use(middleware.CORS())
	if r.httpMetrics != nil {
		r.engine.Use(middleware.Metrics(r.httpMetrics))
	}
}

func (r *Router) setupRoutes() {
	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if r.gatherer != nil {
		r.engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{})))
	}

	// Swagger documentation
	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.engine.Group("/api/v1")
	if r.rateLimiter != nil {
		api.Use(r.rateLimiter.Limit())
	}

	views := api.Group("/views")
	{
		views.POST("", r.viewHandler.Create)
		views.GET("", r.viewHandler.List)
		views.GET("/:id", r.viewHandler.Get)
		views.GET("/:id/tiles", r.tileHandler.Tiles)
		views.GET("/:id/cells", r.tileHandler.Cells)

		protected := views.Group("/:id")
		protected.Use(r.authMiddleware.RequireViewToken())
		{
			protected.PUT("/region", r.viewHandler.SetRegion)
			protected.POST("/pan", r.viewHandler.Pan)
			protected.POST("/zoom", r.viewHandler.Zoom)
			protected.POST("/recenter", r.viewHandler.Recenter)
			protected.DELETE("", r.viewHandler.Delete)
		}
	}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
