// Package relay implements the payment-callback relay service: a small HTTP
// hop between the payment gateway's redirect and the front-end callback page.
package relay

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonny-tran/lms-math-exam/pkg/slogx"
)

const BuildVersion = "v0.1.0"

// Application wires the relay's configuration, logging and HTTP server.
type Application struct {
	cfg    Config
	logger *slog.Logger
	server *http.Server
}

// New creates the relay application.
func New(cfg Config) *Application {
	logger := slogx.New(slogx.Config{
		Service: "callback-relay",
		Version: BuildVersion,
		Env:     cfg.Env,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
	})

	handler := NewHandler(cfg, logger)

	return &Application{
		cfg:    cfg,
		logger: logger,
		server: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           handler.Router(),
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// Run starts the server and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.logger.Info("callback relay starting",
		"port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
		defer cancel()

		if err := app.server.Shutdown(ctx); err != nil {
			_ = app.server.Close()
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}
