// internal/router/router.go
package router

import (
	"context"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
	"gorm.io/gorm"

	"github.com/javajoker/jobtracker/internal/config"
	"github.com/javajoker/jobtracker/internal/handlers"
	"github.com/javajoker/jobtracker/internal/middleware"
	"github.com/javajoker/jobtracker/internal/services"
	"github.com/javajoker/jobtracker/internal/utils"
)

const metricsNamespace = "job_tracker"

// Initialize wires services, handlers and middleware into the API engine.
// Background housekeeping (rate limiter eviction) stops when ctx is done.
func Initialize(ctx context.Context, db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Initialize services
	applicationService := services.NewApplicationService(db)

	// Initialize handlers
	applicationHandler := handlers.NewApplicationHandler(applicationService)

	limiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.Burst)
	go limiter.Run(ctx)

	metrics := middleware.NewMetrics(metricsNamespace)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(metrics.Middleware())
	r.Use(middleware.CORS(cfg.CORS))
	r.Use(middleware.I18nMiddleware(cfg.I18n.DefaultLocale))

	// Health check
	r.GET("/health", handlers.Health)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	applications := r.Group("/applications")
	applications.Use(limiter.Middleware())
	{
		applications.GET("", applicationHandler.GetApplications)
		applications.POST("", applicationHandler.CreateApplication)
		applications.GET("/:id", applicationHandler.GetApplication)
		applications.PATCH("/:id", applicationHandler.UpdateApplication)
		applications.PUT("/:id", applicationHandler.UpdateApplication)
		applications.DELETE("/:id", applicationHandler.DeleteApplication)
	}

	r.NoRoute(utils.NotFoundResponse)

	return r
}
