// Package handler exposes the bot's operational HTTP endpoints:
// health and readiness probes, Prometheus metrics and command stats.
package handler

import (
	"net/http"

	"github.com/boddenberg/startup-bot-go/internal/domain"
	"github.com/boddenberg/startup-bot-go/internal/infra/observability"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Readiness reports whether the chat session is connected.
type Readiness interface {
	Ready() bool
}

// NewRouter creates the ops HTTP router with all routes and middleware.
func NewRouter(probe Readiness, advisorEnabled bool, metrics *observability.Metrics, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// --- Middleware ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(observability.ZapLoggerMiddleware(logger))
	r.Use(observability.TracingMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Heartbeat("/ping"))

	// --- Operational endpoints ---
	r.Get("/healthz", healthzHandler(probe, advisorEnabled))
	r.Get("/readyz", readyzHandler(probe))
	r.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	r.Route("/v1", func(r chi.Router) {
		r.Get("/stats", statsHandler(metrics))
	})

	return r
}

func healthzHandler(probe Readiness, advisorEnabled bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services := []domain.ServiceHealth{
			{Name: "startupbot", Status: "healthy"},
			{Name: "discord", Status: statusOf(isReady(probe))},
			{Name: "advisor", Status: statusOf(advisorEnabled)},
		}

		overall := "healthy"
		for _, s := range services {
			if s.Status != "healthy" {
				overall = "degraded"
			}
		}

		writeJSON(w, http.StatusOK, domain.HealthStatus{
			Status:   overall,
			Services: services,
		})
	}
}

func readyzHandler(probe Readiness) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !isReady(probe) {
			writeError(w, http.StatusServiceUnavailable, "discord session not ready")
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}

func statsHandler(metrics *observability.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, metrics.Snapshot())
	}
}

func isReady(probe Readiness) bool {
	return probe != nil && probe.Ready()
}

func statusOf(ok bool) string {
	if ok {
		return "healthy"
	}
	return "degraded"
}
