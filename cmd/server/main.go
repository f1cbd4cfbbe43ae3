package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"time"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/templui/goaltracker/internal/app"
	"github.com/templui/goaltracker/internal/config"
	"github.com/templui/goaltracker/internal/logger"
	"github.com/templui/goaltracker/internal/routes"
)

func main() {
	cfg := config.Load()

	logger.Init(os.Stdout, cfg.IsDevelopment(), cfg.SentryDSN)

	app, err := app.New(cfg)
	if err != nil {
		slog.Error("failed to initialize app", "error", err)
		logger.Flush()
		os.Exit(1)
	}

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           routes.SetupRoutes(app),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.AppEnv, "url", "http://localhost:"+cfg.Port)

		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			logger.Flush()
			os.Exit(1)
		}
	}()

	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		cfg.ShutdownTimeout,
		map[string]gfshutdown.Operation{
			// one operation so the snapshot runs after the last request
			// and before the store is closed
			"server": func(ctx context.Context) error {
				slog.Info("graceful shutdown initiated")

				err := server.Shutdown(ctx)
				if err != nil {
					slog.Error("failed to shut down http server", "error", err)
				}

				if cfg.SnapshotOnShutdown {
					location, snapErr := app.SnapshotService.Save()
					if snapErr != nil {
						slog.Error("failed to save shutdown snapshot", "error", snapErr)
					} else {
						slog.Info("shutdown snapshot saved", "location", location)
					}
				}

				closeErr := app.Close()
				if closeErr != nil {
					slog.Error("failed to close app", "error", closeErr)
				}

				logger.Flush()
				return errors.Join(err, closeErr)
			},
		},
	)

	exitCode := <-wait
	slog.Info("server stopped", "exit_code", exitCode)
	os.Exit(exitCode)
}
