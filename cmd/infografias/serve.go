package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"infografias.nextwaveia.mx/internal/app"
	"infografias.nextwaveia.mx/internal/logging"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd)
		},
	}
}

func runServe(cmd *cobra.Command) error {
	application, err := setup(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	addr := net.JoinHostPort("", strconv.Itoa(application.Config.Port))
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}

	return serve(ctx, application, ln)
}

// serve runs the server on ln until ctx is cancelled, then drains in-flight
// requests.
func serve(ctx context.Context, application *app.Application, ln net.Listener) error {
	logger := application.Logger

	handler, shutdown, err := routes(application)
	if err != nil {
		return err
	}
	defer shutdown()

	srv := &http.Server{
		Handler:      handler,
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Serve(ln)
	}()

	logging.LogOperation(logger, "starting server",
		slog.String("addr", ln.Addr().String()),
		slog.Int("rate_limit", application.Config.RateLimit),
		slog.Int("packages", len(application.Catalog.All())))

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	start := time.Now()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.SafeCloseWithLogging(srv, logger, "http_server", ln.Addr().String())
		return fmt.Errorf("shutdown: %w", err)
	}

	logging.LogOperation(logger, "server stopped",
		slog.Duration("duration", time.Since(start)))
	return nil
}
