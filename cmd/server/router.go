package main

import (
	"gitopsdemo/internal/handlers"
	"gitopsdemo/internal/metrics"
	"gitopsdemo/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// buildRouter wires the middleware chain and routes. Split from main so tests
// can exercise the full chain without a listener.
func buildRouter(env handlers.EnvFunc, registry *prometheus.Registry) *chi.Mux {
	httpMetrics := metrics.NewHTTP(registry)

	r := chi.NewRouter()

	// Middleware must be registered before any routes
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(httpMetrics.Handler)
	r.Use(middleware.Recoverer)
	r.Use(middleware.SecurityHeaders)

	r.Get("/", handlers.Root(env))
	r.Get("/health", handlers.HealthCheck)
	r.Get("/ready", handlers.ReadinessCheck)
	r.Get("/api/items", handlers.GetItems)
	r.Get("/api/status", handlers.GetStatus(env))
	r.Get("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}).ServeHTTP)

	return r
}
