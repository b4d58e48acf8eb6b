package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mariemajor/looking-beyond-cosmos/internal/domain/auth"
	"github.com/mariemajor/looking-beyond-cosmos/internal/infra/config"
	"github.com/mariemajor/looking-beyond-cosmos/pkg/metrics"
)

// NewRouter wires up the HTTP handlers and returns a configured server.
func NewRouter(
	cfg *config.Config,
	handler *Handler,
	authSvc auth.Service,
	collectors *metrics.Collectors,
	gatherer prometheus.Gatherer,
) *http.Server {
	gin.SetMode(gin.ReleaseMode)
	logger := handler.logger

	router := gin.New()
	router.Use(
		gin.Recovery(),
		requestLogger(logger),
		metricsMiddleware(collectors),
		corsMiddleware(cfg.HTTP.AllowedOrigins),
		errorHandlingMiddleware(logger),
		rateLimitMiddleware(cfg.HTTP.RateLimit, logger),
	)

	router.GET("/healthz", handler.Health)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	api := router.Group("/api/v1")
	{
		api.GET("/astro", handler.AstroSnapshot)
		api.POST("/astro", handler.AstroSnapshot)
		api.GET("/astro/moon", handler.MoonPhase)
		api.GET("/astro/planets", handler.Planets)
		api.POST("/numerology", handler.Numerology)
		api.GET("/cosmic/today", handler.CosmicToday)
		api.POST("/moderation/check", handler.ModerationCheck)
		api.POST("/age/verify", handler.VerifyAge)
	}

	secured := api.Group("")
	secured.Use(authMiddleware(authSvc))
	{
		secured.POST("/guidance/chat", handler.GuidanceChat)
		secured.GET("/subscription", handler.Subscription)
		secured.POST("/profile/soul", handler.SoulProfile)
		secured.GET("/profile/spiritual", handler.GetSpiritualProfile)
		secured.PUT("/profile/spiritual", handler.PutSpiritualProfile)
		secured.POST("/moderation/reports", handler.ReportContent)
	}

	return &http.Server{
		Addr:           cfg.HTTP.Address,
		Handler:        router,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}
}
