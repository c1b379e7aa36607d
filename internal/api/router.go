// Package api provides the HTTP API for the dispatch optimizer.
package api

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/nexgen/dispatch-optimizer/internal/api/handler"
	"github.com/nexgen/dispatch-optimizer/internal/api/middleware"
	"github.com/nexgen/dispatch-optimizer/internal/dataset"
	"github.com/nexgen/dispatch-optimizer/internal/optimizer"
)

// RouterConfig holds configuration for the router.
type RouterConfig struct {
	Version   string
	BuildTime string
	Logger    zerolog.Logger
	Metrics   *middleware.Metrics
	Dataset   *dataset.Service
	Optimizer *optimizer.Service
}

// NewRouter creates the chi router with all API routes configured.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware - order matters
	r.Use(middleware.RequestID)
	r.Use(middleware.Tracing())
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware())
	}
	r.Use(middleware.Logger(cfg.Logger))
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequireJSON)
	r.Use(middleware.ContentTypeJSON)

	opsHandler := handler.NewOpsHandler(cfg.Version, cfg.BuildTime, cfg.Dataset)
	ordersHandler := handler.NewOrdersHandler(cfg.Dataset)
	optimizeHandler := handler.NewOptimizeHandler(cfg.Optimizer)
	fleetHandler := handler.NewFleetHandler(cfg.Dataset)
	analyticsHandler := handler.NewAnalyticsHandler(cfg.Dataset)
	adminHandler := handler.NewAdminHandler(cfg.Dataset)

	expensiveRateLimit := middleware.RateLimitByIP(middleware.ExpensiveRateLimit)
	standardRateLimit := middleware.RateLimitByIP(middleware.StandardRateLimit)

	r.Route("/v1", func(r chi.Router) {
		r.Route("/ops", func(r chi.Router) {
			r.Get("/health", opsHandler.HealthCheck)
			r.Get("/ready", opsHandler.ReadinessCheck)
			r.Get("/status", opsHandler.SystemStatus)
		})

		r.Route("/orders", func(r chi.Router) {
			r.With(standardRateLimit).Get("/", ordersHandler.ListOrders)
			r.With(expensiveRateLimit).Get("/export", ordersHandler.ExportOrders)
			r.Route("/{orderID}", func(r chi.Router) {
				r.With(standardRateLimit).Get("/", ordersHandler.GetOrder)
				r.With(expensiveRateLimit).Post("/optimize", optimizeHandler.Optimize)
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(standardRateLimit)
			r.Get("/fleet", fleetHandler.ListFleet)
			r.Get("/inventory", fleetHandler.ListInventory)
			r.Get("/feedback", fleetHandler.ListFeedback)
			r.Get("/analytics/summary", analyticsHandler.Summary)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(expensiveRateLimit)
			r.Post("/refresh", adminHandler.Refresh)
		})
	})

	return r
}
