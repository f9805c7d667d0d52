package console

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"golang.org/x/time/rate"

	_ "github.com/magabrotheeeer/payroll-admin-console/internal/http/docs"
	"github.com/magabrotheeeer/payroll-admin-console/internal/http/handlers/actions"
	"github.com/magabrotheeeer/payroll-admin-console/internal/http/handlers/dispatch"
	"github.com/magabrotheeeer/payroll-admin-console/internal/http/handlers/health"
	"github.com/magabrotheeeer/payroll-admin-console/internal/http/handlers/state/slice"
	"github.com/magabrotheeeer/payroll-admin-console/internal/http/handlers/state/snapshot"
	"github.com/magabrotheeeer/payroll-admin-console/internal/http/middlewarectx"
	"github.com/magabrotheeeer/payroll-admin-console/internal/session"
	"github.com/magabrotheeeer/payroll-admin-console/internal/store"
)

// RegisterRoutes регистрирует все маршруты шлюза. Операции слайса auth
// доступны без сессии, остальные только после входа.
func RegisterRoutes(r chi.Router, logger *slog.Logger, st *store.Store, sess *session.Session, limiter *rate.Limiter, reg *prometheus.Registry) {
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
	)

	r.Get("/healthz", health.New(sess).ServeHTTP)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/state", snapshot.New(logger, st).ServeHTTP)
		r.Get("/state/{slice}", slice.New(logger, st).ServeHTTP)
		r.Get("/actions", actions.New().ServeHTTP)

		dispatchHandler := dispatch.New(logger, st)
		r.Route("/dispatch", func(r chi.Router) {
			r.Use(middlewarectx.RateLimitMiddleware(limiter, logger))
			r.Post("/{slice:auth}/{op}", dispatchHandler.ServeHTTP)
			r.With(middlewarectx.SessionGuard(sess, logger)).Post("/{slice}/{op}", dispatchHandler.ServeHTTP)
		})
	})

	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
