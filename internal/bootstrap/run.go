package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"resume-analytics/internal/shared/config"
	"resume-analytics/internal/shared/server"
	"resume-analytics/internal/shared/storage/db"
	"resume-analytics/internal/shared/telemetry"
)

const shutdownTimeout = 15 * time.Second

// Serve runs the HTTP API until ctx is cancelled, then drains in-flight
// requests.
func Serve(ctx context.Context, cfg config.Config) error {
	app, err := Build(ctx, cfg)
	if err != nil {
		return fmt.Errorf("bootstrap build: %w", err)
	}
	defer app.Close()

	srv := &http.Server{
		Addr:              server.Addr(cfg.Port),
		Handler:           app.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		telemetry.Info("server.start", map[string]any{"addr": srv.Addr, "env": cfg.Env})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	telemetry.Info("server.stop", map[string]any{"addr": srv.Addr})
	return srv.Shutdown(shutdownCtx)
}

// Migrate runs a goose command ("up", "down", "status" or "version")
// against DATABASE_URL.
func Migrate(ctx context.Context, cfg config.Config, command string) error {
	if cfg.DatabaseURL == "" {
		return errors.New("DATABASE_URL is required")
	}
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultMigrateOptions()))
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer sqlDB.Close()

	switch command {
	case "", "up":
		err = db.RunMigrations(ctx, sqlDB)
	case "down":
		err = db.RollbackMigration(ctx, sqlDB)
	case "status":
		err = db.MigrationStatus(ctx, sqlDB)
	case "version":
		var v int64
		v, err = db.MigrationVersion(ctx, sqlDB)
		if err == nil {
			telemetry.Info("migrate.version", map[string]any{"version": v})
		}
	default:
		return fmt.Errorf("unknown migrate command %q", command)
	}
	if err != nil {
		return err
	}
	telemetry.Info("migrate.done", map[string]any{"command": command})
	return nil
}
