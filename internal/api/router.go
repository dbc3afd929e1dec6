package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/freelancehub/dashboard/docs" // registers the swagger docs
	"github.com/freelancehub/dashboard/internal/api/handler"
	"github.com/freelancehub/dashboard/internal/api/middleware"
	"github.com/freelancehub/dashboard/internal/core/domain"
	"github.com/freelancehub/dashboard/internal/core/ports"
	"github.com/freelancehub/dashboard/internal/core/service"
)

// Dependencies are the collaborators the router wires into handlers.
type Dependencies struct {
	Store ports.Store
	// Idempotency is optional; nil disables Idempotency-Key support.
	Idempotency ports.IdempotencyStore
	// Checks are probed by /health/ready, keyed by dependency name.
	Checks    map[string]handler.PingFunc
	JWTSecret string
	TokenTTL  time.Duration
	Logger    zerolog.Logger
	// Registry receives the HTTP metrics; nil uses the default registry.
	// /metrics always serves the default registry as well.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(deps.Logger))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "freelance",
		Registerer: registerer(deps.Registry),
	}))

	// --- Dependencies ---
	authService := service.NewAuthService(deps.Store.Users, deps.Store.Clients, deps.JWTSecret, deps.TokenTTL)
	dashboardService := service.NewDashboardService(deps.Store, deps.Idempotency, deps.Logger.With().Str("component", "dashboard").Logger())

	authHandler := handler.NewAuthHandler(authService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	timeEntryHandler := handler.NewTimeEntryHandler(dashboardService)
	reportHandler := handler.NewReportHandler(dashboardService)
	healthHandler := handler.NewHealthHandler(deps.Checks)

	// --- Public routes ---
	e.POST("/auth/login", authHandler.Login)
	e.GET("/health", healthHandler.Liveness)        // liveness  – is the process alive?
	e.GET("/health/ready", healthHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: gatherer(deps.Registry),
	}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Authenticated routes ---
	v1 := e.Group("/v1", middleware.Auth(deps.JWTSecret))
	v1.GET("/me", authHandler.Me)
	v1.GET("/dashboard", dashboardHandler.Summary)
	v1.GET("/projects", dashboardHandler.Projects)
	v1.GET("/invoices", dashboardHandler.Invoices)
	v1.GET("/reports", reportHandler.Get)
	v1.GET("/time-entries", timeEntryHandler.List)
	v1.POST("/time-entries", timeEntryHandler.Create, middleware.RBAC(domain.RoleAdmin, domain.RoleFreelancer))

	return e
}

func registerer(reg *prometheus.Registry) prometheus.Registerer {
	if reg == nil {
		return prometheus.DefaultRegisterer
	}
	return reg
}

func gatherer(reg *prometheus.Registry) prometheus.Gatherer {
	if reg == nil {
		return prometheus.DefaultGatherer
	}
	return prometheus.Gatherers{reg, prometheus.DefaultGatherer}
}
