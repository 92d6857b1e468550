package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/vedicworks/muhurat-api/internal/infra/config"
)

const shutdownTimeout = 10 * time.Second

// App ties the configured HTTP server to the process lifecycle.
type App struct {
	cfg    *config.Config
	logger *slog.Logger
	server *http.Server
}

// NewApp is used by Wire to build the runnable app.
func NewApp(cfg *config.Config, logger *slog.Logger, server *http.Server) *App {
	return &App{cfg: cfg, logger: logger.With("component", "bootstrap"), server: server}
}

// Run starts the HTTP server and blocks until the context is cancelled or
// the listener fails. In-flight scans get shutdownTimeout to finish.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("muhurat api starting",
			"address", a.cfg.HTTP.Address,
			"slot_minutes", a.cfg.Muhurat.SlotMinutes,
			"day_start_hour", a.cfg.Muhurat.DayStartHour,
			"day_end_hour", a.cfg.Muhurat.DayEndHour,
			"min_score", a.cfg.Muhurat.MinScore)
		if err := a.server.ListenAndServe(); err != nil {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return a.server.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
