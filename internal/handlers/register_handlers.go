package handlers

import (
	"net/http"

	"github.com/SscSPs/customer_reviews_app/cmd/docs"
	portssvc "github.com/SscSPs/customer_reviews_app/internal/core/ports/services"
	"github.com/SscSPs/customer_reviews_app/internal/middleware"
	"github.com/SscSPs/customer_reviews_app/internal/platform/config"
	"github.com/SscSPs/customer_reviews_app/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// RouteDeps are the cross-cutting collaborators the routes need besides services.
type RouteDeps struct {
	SubmitLimiter *limiter.Limiter
	LoginLimiter  *limiter.Limiter
	Posthog       *utils.PosthogClientWrapper
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	deps RouteDeps,
) {
	registerValidators()

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/api/v1")

	// Public review endpoints, bound to the visitor session
	public := v1.Group("", middleware.SessionMiddleware(cfg.SessionCookieName, cfg.IsProduction))
	registerReviewRoutes(public, services, deps)

	registerAuthRoutes(v1, services.Auth, deps.LoginLimiter)

	admin := v1.Group("/admin", middleware.AuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer))
	registerAdminReviewRoutes(admin, services.Moderation, deps.Posthog)
	registerSettingsRoutes(admin, services.CaptchaSettings)

	setupSwaggerRoutes(r, cfg)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// rateLimited returns the limiter middleware, or a pass-through when no limiter is configured.
func rateLimited(l *limiter.Limiter) gin.HandlerFunc {
	if l == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return middleware.RateLimit(l)
}
