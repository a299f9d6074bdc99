package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"country-explorer/internal/config"
	"country-explorer/internal/handler"
	"country-explorer/internal/logging"
	"country-explorer/internal/service"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	logger, err := logging.New(config.AppConfig.LogLevel, verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	store, closeStore, err := openStore(cmd.Context(), logger)
	if err != nil {
		return err
	}
	defer closeStore()

	// Initialize services
	source := newSource()
	explorerService := service.NewExplorerService(source, store, logger)
	detailsService := service.NewDetailsService(source, store, explorerService, logger)

	sweepCtx, stopSweep := context.WithCancel(cmd.Context())
	defer stopSweep()
	if idle := config.AppConfig.SessionIdle; idle > 0 {
		go sweepSessions(sweepCtx, explorerService, idle)
	}

	app := handler.NewApp(
		handler.NewSessionHandler(explorerService),
		handler.NewCountryHandler(detailsService),
	)

	// Graceful shutdown channel
	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, os.Interrupt, syscall.SIGTERM)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- app.Listen(":" + config.AppConfig.ServerPort)
	}()

	logger.Info("Server started", zap.String("port", config.AppConfig.ServerPort))

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	case <-shutdownChan:
	}

	logger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}
	return nil
}

// sweepSessions closes sessions idle for longer than idle until ctx is done.
func sweepSessions(ctx context.Context, explorerService service.ExplorerService, idle time.Duration) {
	ticker := time.NewTicker(min(idle, time.Minute))
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			explorerService.Expire(ctx, idle)
		}
	}
}
