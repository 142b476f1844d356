package main

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"casework/internal/platform/metrics"
	"casework/internal/platform/middleware"
	"casework/pkg/platform/httputil"
	"casework/pkg/platform/middleware/request"
)

type registrar interface {
	Register(r chi.Router)
}

func newRouter(log *slog.Logger, m *metrics.Metrics, healthHandler http.HandlerFunc, handlers ...registrar) http.Handler {
	r := chi.NewRouter()
	r.Use(request.RequestID)
	r.Use(request.Time)
	r.Use(chimw.Recoverer)
	r.Use(middleware.AccessLog(log))
	r.Use(middleware.Instrument(m))

	r.Get("/health", healthHandler)
	r.Handle("/metrics", promhttp.Handler())
	for _, h := range handlers {
		h.Register(r)
	}
	return r
}

type healthCheck struct {
	name  string
	check func(ctx context.Context) error
}

// health reports each configured dependency.
func health(log *slog.Logger, checks ...healthCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		status := make(map[string]string, len(checks))
		code := http.StatusOK
		for _, c := range checks {
			if err := c.check(ctx); err != nil {
				log.WarnContext(ctx, "health check failed", "dependency", c.name, "error", err)
				status[c.name] = "down"
				code = http.StatusServiceUnavailable
				continue
			}
			status[c.name] = "ok"
		}
		httputil.WriteJSON(w, code, status)
	}
}
