package api

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	logging "github.com/adamanr/hrdesk/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"
)

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type RouterOptions struct {
	// CORSOrigin is a comma separated list of allowed front-end origins.
	CORSOrigin string
	// TrustProxy takes the client address from X-Forwarded-For / X-Real-IP.
	// Enable it only behind a proxy that sets those headers.
	TrustProxy bool
	Registry   *prometheus.Registry
	Ready      Pinger
	// LoginRate limits POST /auth/login per client address; zero disables it.
	LoginRate  rate.Limit
	LoginBurst int
}

// NewRouter wires middleware, operational endpoints and the REST routes.
func NewRouter(server *Server, logger *slog.Logger, opts RouterOptions) http.Handler {
	registry := opts.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	metrics := NewMetrics(registry)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	if opts.TrustProxy {
		r.Use(middleware.RealIP)
	}
	r.Use(logging.Middleware(logger))
	r.Use(middleware.Recoverer)
	r.Use(metrics.Middleware)
	if origins := splitOrigins(opts.CORSOrigin); len(origins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: origins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowedHeaders: []string{"Authorization", "Content-Type"},
			MaxAge:         300,
		}))
	}

	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		server.httpResponse(w, http.StatusOK, map[string]string{"status": "ok"}, "success")
	})

	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if opts.Ready != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()

			if err := opts.Ready.Ping(ctx); err != nil {
				logger.Warn("Readiness check failed", slog.String("error", err.Error()))
				server.httpResponse(w, http.StatusServiceUnavailable, errorBody("database unavailable"), "error")
				return
			}
		}

		server.httpResponse(w, http.StatusOK, map[string]string{"status": "ready"}, "success")
	})

	var loginLimits []func(http.Handler) http.Handler
	if opts.LoginRate > 0 {
		loginLimits = append(loginLimits, NewRateLimiter(opts.LoginRate, opts.LoginBurst, logger).Middleware)
	}

	return HandlerFromMux(server, r, server.ParamErrorHandler, loginLimits...)
}

func splitOrigins(s string) []string {
	var origins []string
	for _, o := range strings.Split(s, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}

	return origins
}
