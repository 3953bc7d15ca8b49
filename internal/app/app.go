package app

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/sharedesk/config"
	"github.com/guttosm/sharedesk/internal/api"
	"github.com/guttosm/sharedesk/internal/middleware"
	"github.com/guttosm/sharedesk/internal/service"
	"github.com/guttosm/sharedesk/internal/storage"
)

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Connects to PostgreSQL using InitPostgres().
//   - Initializes the company and lead repositories and their services.
//   - Configures the Gin router with the API routes, rate limiters and error disclosure policy.
//   - Registers health and readiness probes.
//   - Provides a cleanup function to close the DB connection.
func InitializeApp() (*gin.Engine, func(), error) {
	cfg := config.AppConfig

	// indirection for unit testing
	db, err := postgresOpener(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize postgres: %w", err)
	}

	companies := service.NewCompanyAggregator(storage.NewCompanyRepository(db))
	leads := service.NewLeadService(storage.NewLeadsRepository(db))
	handler := api.NewHandler(companies, leads)

	opts := api.RouterOptions{
		ExposeErrorDetails: cfg.IsDevelopment(),
		RequestTimeout:     cfg.Server.RequestTimeout,
	}
	if cfg.RateLimit.Requests > 0 {
		opts.Limiter = middleware.NewRateLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window)
	}
	if cfg.RateLimit.ContactRequests > 0 {
		opts.ContactLimiter = middleware.NewRateLimiter(cfg.RateLimit.ContactRequests, cfg.RateLimit.Window)
	}
	router := api.NewRouter(handler, opts)

	api.NewHealthHandler(db.PingContext).Register(router)

	cleanup := func() {
		_ = db.Close()
	}

	return router, cleanup, nil
}
