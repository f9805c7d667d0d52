// Package main Payroll Admin Console
//
// @title           Payroll Admin Console
// @version         1.0
// @description     Шлюз к состоянию админ-консоли payroll-платформы
// @BasePath  /api/v1
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/magabrotheeeer/payroll-admin-console/internal/app/console"
	"github.com/magabrotheeeer/payroll-admin-console/internal/config"
	"github.com/magabrotheeeer/payroll-admin-console/internal/lib/sl"
)

func main() {
	cfg := config.MustLoad()
	logger := sl.New(cfg.Env, cfg.LogLevel)

	logger.Info("starting admin-console", slog.String("env", cfg.Env))
	logger.Debug("config loaded", slog.String("config", cfg.String()))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := console.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize app", sl.Err(err))
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("app stopped with error", sl.Err(err))
		os.Exit(1)
	}

	logger.Info("admin-console stopped gracefully")
}
