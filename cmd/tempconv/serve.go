package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tempconv/internal/handlers"
	"tempconv/internal/logger"
	"tempconv/internal/server"

	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

var servePort string

// serveCmd runs the HTTP API and the snapshot stream
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long: `Serve the converter and its history over HTTP.

Routes live under /api/v1, the snapshot stream under /ws and the API docs
under /swagger/index.html. Stop with Ctrl+C.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&servePort, "port", "p", "", "Listen port (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	port := a.cfg.Port
	if servePort != "" {
		port = servePort
	}
	if !a.cfg.Auth.Enabled {
		a.log.Warnw("auth disabled; /api/v1 is open")
	}
	apiHandler := handlers.NewHandler(a.services, a.log, a.cfg.Auth.Enabled)

	// expire notifications in the background
	go a.services.Notifier.Run(ctx, a.cfg.Notifications.Tick)

	srv := server.New(port, apiHandler.InitRoutes())
	errc := runHTTPServer(srv, a.log)

	return waitForShutdown(cancel, srv, errc, a.log)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, log *logger.Logger) <-chan error {
	errc := make(chan error, 1)
	go func() {
		log.Infow("http server listening", "addr", srv.Addr())
		if err := srv.Run(); err != nil {
			errc <- err
		}
	}()
	return errc
}

// waitForShutdown blocks until a termination signal or a server error, then
// performs graceful shutdown.
func waitForShutdown(cancel context.CancelFunc, srv *server.Server, errc <-chan error, log *logger.Logger) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	var runErr error
	select {
	case <-quit:
		log.Infow("shutting down server...")
	case runErr = <-errc:
		log.Errorw("error starting server", "err", runErr)
	}

	// stop background goroutines
	cancel()

	// allow in-flight requests to complete
	ctx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
		return errors.Join(runErr, err)
	}
	return runErr
}
