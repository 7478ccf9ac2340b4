package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/query-service/internal/api/http/handlers"
	"github.com/spec-kit/query-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health    *handlers.HealthHandler
	Auth      *handlers.AuthHandler
	Queries   *handlers.QueriesHandler
	Teams     *handlers.TeamsHandler
	Analytics *handlers.AnalyticsHandler
	Metrics   *handlers.MetricsHandler
	// AuthMiddleware guards the API group when authentication is enabled;
	// nil leaves the service open.
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")
	api.Get("/health", cfg.Health.Live)
	api.Get("/metrics", cfg.Metrics.Summary)
	api.Post("/auth/login", cfg.Auth.Login)

	protected := api.Group("")
	if cfg.AuthMiddleware != nil {
		protected = api.Group("", cfg.AuthMiddleware.Handle)
	}

	protected.Get("/queries", cfg.Queries.List)
	protected.Post("/queries", cfg.Queries.Create)
	protected.Get("/queries/:id", cfg.Queries.Get)
	protected.Put("/queries/:id", cfg.Queries.Update)
	protected.Delete("/queries/:id", cfg.Queries.Delete)

	protected.Get("/teams", cfg.Teams.List)
	protected.Post("/teams", cfg.Teams.Create)
	protected.Get("/teams/:id", cfg.Teams.Get)
	protected.Put("/teams/:id", cfg.Teams.Update)
	protected.Delete("/teams/:id", cfg.Teams.Delete)

	protected.Get("/analytics", cfg.Analytics.Summarize)
}
