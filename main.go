package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vr33ni-dev/gke-backend/api"
	"github.com/vr33ni-dev/gke-backend/db"
	"github.com/vr33ni-dev/gke-backend/utils"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := api.LoadConfig()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(utils.NewLogger(os.Stdout, cfg.AppEnv))

	// one fresh connection per /api request, nothing is opened here
	prober := db.NewProber(cfg.DB)
	slog.Info("db target", "addr", cfg.DB.Addr(), "user", cfg.DB.User, "database", cfg.DB.Name)

	// router
	r := api.NewRouterWithConfig(prober, cfg)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "env", cfg.AppEnv, "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			slog.Error("server failed", "error", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		slog.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown", "error", err)
		}
	}
}
