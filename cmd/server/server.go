package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

const shutdownTimeout = 10 * time.Second

// startHTTPServer serves router until SIGINT, SIGTERM or ctx cancellation,
// then shuts down gracefully and releases application resources.
func (app *application) startHTTPServer(ctx context.Context, router http.Handler) error {
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", app.config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return app.serve(ctx, server, server.ListenAndServe)
}

func (app *application) serve(ctx context.Context, server *http.Server, listen func() error) error {
	defer app.cleanup()

	serverCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		app.logger.Info("starting server", slog.String("addr", server.Addr))
		if err := listen(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			app.logger.Error("server failed", slog.String("error", err.Error()))
			return fmt.Errorf("server failed: %w", err)
		}
	case <-serverCtx.Done():
		app.logger.Info("shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		app.logger.Error("server shutdown failed", slog.String("error", err.Error()))
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	<-errCh

	app.logger.Info("server shutdown completed")
	return nil
}
