package api

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/guttosm/sharedesk/internal/middleware"
)

// RouterOptions carries the deployment-dependent knobs of the HTTP stack.
// Nil limiters disable the corresponding budget.
type RouterOptions struct {
	ExposeErrorDetails bool
	RequestTimeout     time.Duration
	Limiter            *middleware.RateLimiter
	ContactLimiter     *middleware.RateLimiter
}

// NewRouter creates a Gin engine with routes configured.
// It receives a Handler instance with all business logic already injected.
//
// Responsibilities:
//   - Registers global middlewares (ErrorDisclosure, RequestID, Logger, Recovery, ErrorHandler, RateLimiter).
//   - Adds request timeout handling.
//   - Mounts Swagger docs (/swagger/*any).
//   - Configures the /api routes; the contact form gets its own, stricter budget.
//
// Note:
//   - Health and readiness endpoints (/healthz, /readyz) are registered in app.InitializeApp().
func NewRouter(handler *Handler, opts RouterOptions) *gin.Engine {
	router := gin.New()

	// ─── Middlewares ───────────────────────────────
	router.Use(
		middleware.ErrorDisclosure(opts.ExposeErrorDetails),
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.RecoveryMiddleware(),
		middleware.ErrorHandler,
	)
	if opts.Limiter != nil {
		router.Use(opts.Limiter.Handler())
	}

	// ─── Timeout ──────────────────────────────────
	if opts.RequestTimeout > 0 {
		router.Use(func(c *gin.Context) {
			ctx, cancel := context.WithTimeout(c.Request.Context(), opts.RequestTimeout)
			defer cancel()
			c.Request = c.Request.WithContext(ctx)
			c.Next()
		})
	}

	// ─── Swagger ──────────────────────────────────
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// ─── API ──────────────────────────────────────
	contact := []gin.HandlerFunc{handler.SubmitContact}
	if opts.ContactLimiter != nil {
		contact = append([]gin.HandlerFunc{opts.ContactLimiter.Handler()}, contact...)
	}

	api := router.Group("/api")
	{
		api.GET("/shares-detail", handler.ListCompanies)
		api.GET("/shares", handler.ListCompanies)
		api.GET("/shares-detail/:name", handler.GetCompanyDetail)
		api.GET("/companies/search", handler.SearchCompanies)
		api.POST("/contact", contact...)
		api.POST("/visits", handler.RecordVisit)
	}

	return router
}
