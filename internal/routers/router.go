// Package routers assembles the gin engine.
package routers

import (
	"time"

	"github.com/haierkeys/simple-notes-service/internal/app"
	"github.com/haierkeys/simple-notes-service/internal/middleware"
	"github.com/haierkeys/simple-notes-service/internal/routers/api_router"
	"github.com/haierkeys/simple-notes-service/pkg/limiter"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var methodLimiters = limiter.NewMethodLimiter().AddBuckets(
	limiter.BucketRule{
		Key:          "/api/user/token",
		FillInterval: time.Second,
		Capacity:     10,
		Quantum:      10,
	},
)

// NewRouter builds the route table around the injected App container.
func NewRouter(appContainer *app.App) *gin.Engine {

	cfg := appContainer.Config()

	r := gin.New()

	registry := prometheus.NewRegistry()
	metrics := middleware.NewMetrics(registry)

	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	api := r.Group("/api")
	{
		api.Use(middleware.AppInfoWithConfig(app.Name, appContainer.Version().Version))
		api.Use(middleware.TraceMiddlewareWithConfig(cfg.Tracer.Enabled, cfg.Tracer.Header))
		api.Use(middleware.RateLimiter(methodLimiters))
		api.Use(middleware.ContextTimeout(time.Duration(cfg.App.DefaultContextTimeout) * time.Second))
		api.Use(metrics.Handler())
		api.Use(middleware.AccessLogWithLogger(appContainer.Logger()))
		api.Use(middleware.RecoveryWithLogger(appContainer.Logger()))

		userHandler := api_router.NewUserHandler(appContainer)
		noteHandler := api_router.NewNoteHandler(appContainer)
		healthHandler := api_router.NewHealthHandler(appContainer)

		api.POST("/user/token", userHandler.IssueToken)
		api.GET("/health", healthHandler.Check)

		auth := middleware.UserAuthWithConfig(cfg.Security.AuthTokenKey)

		notes := api.Group("/notes", auth)
		{
			notes.POST("", noteHandler.Create)
			notes.GET("", noteHandler.List)
			notes.GET("/:id", noteHandler.Get)
			notes.PUT("/:id", noteHandler.Replace)
			notes.PATCH("/:id", noteHandler.Patch)
			notes.DELETE("/:id", noteHandler.Delete)
		}
	}

	r.NoRoute(middleware.NoFound())

	return r
}
