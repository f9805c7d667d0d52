// Package console собирает шлюз админ-консоли: хранилище сессии, HTTP-клиент
// бэкенда, стор состояния и HTTP-сервер поверх них.
package console

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/magabrotheeeer/payroll-admin-console/internal/apiclient"
	"github.com/magabrotheeeer/payroll-admin-console/internal/config"
	"github.com/magabrotheeeer/payroll-admin-console/internal/http/middlewarectx"
	"github.com/magabrotheeeer/payroll-admin-console/internal/lib/sl"
	"github.com/magabrotheeeer/payroll-admin-console/internal/session"
	"github.com/magabrotheeeer/payroll-admin-console/internal/store"
)

const shutdownTimeout = 15 * time.Second

type App struct {
	server  *http.Server
	logger  *slog.Logger
	session *session.Session
	store   *store.Store
	closeFn func() error
}

func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	const op = "console.New"

	tokens, closeFn, err := newTokenStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	sess := session.New(tokens)
	token, err := sess.Rehydrate(ctx)
	if err != nil {
		_ = closeFn()
		return nil, err
	}
	logger.Info("session rehydrated", sl.Op(op), slog.Bool("authenticated", token != ""))

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	client := apiclient.New(cfg.BaseURL, sess, logger,
		apiclient.WithTimeout(cfg.TimeoutBackend),
		apiclient.WithMetrics(apiclient.NewMetrics(reg)),
	)
	st := store.New(client, sess, logger)
	client.SetNavigator(st)

	st.Subscribe(func(s store.Snapshot) {
		logger.Debug("state changed", slog.Uint64("version", s.Version), slog.String("location", s.Location))
	})

	router := chi.NewRouter()
	RegisterRoutes(router, logger, st, sess, middlewarectx.NewLimiter(cfg.RPS, cfg.Burst), reg)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server:  srv,
		logger:  logger,
		session: sess,
		store:   st,
		closeFn: closeFn,
	}, nil
}

// Run поднимает HTTP-сервер и, если сессия уже есть, подгружает профиль
// администратора. Возвращается после отмены ctx и остановки сервера.
func (a *App) Run(ctx context.Context) error {
	if a.session.Authenticated() {
		go a.warmUp(ctx)
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		a.close()
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		a.close()
		return err
	}
}

func (a *App) warmUp(ctx context.Context) {
	if err := a.store.Dispatch(ctx, store.FetchProfile{}); err != nil {
		a.logger.Warn("failed to fetch admin profile", sl.Op("console.warmUp"), sl.Err(err))
	}
}

func (a *App) close() {
	if err := a.closeFn(); err != nil {
		a.logger.Error("failed to close session store", sl.Err(err))
	}
}
