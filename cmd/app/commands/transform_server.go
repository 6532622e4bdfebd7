package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/winwin/textproc/internal/app"
	"github.com/winwin/textproc/internal/config"
)

// transformShutdownTimeout bounds graceful shutdown of the transform server.
// The transform service holds no database connections, so a short window is enough.
const transformShutdownTimeout = 10 * time.Second

// RunTransformServer starts the internal transform server with graceful
// shutdown support. The transform server is deployed on the internal network
// and authenticates callers with a static shared token; it never touches the
// database. Blocks until receiving SIGINT/SIGTERM or encountering a fatal error.
func RunTransformServer(ctx context.Context, version string) error {
	// Load configuration
	cfg := config.Load()
	if err := cfg.ValidateTransformServer(); err != nil {
		return fmt.Errorf("invalid transform server configuration: %w", err)
	}

	// Set Gin mode based on log level
	gin.SetMode(cfg.GetGinMode())

	// Create DI container
	container := app.NewContainer(cfg)

	// Get logger from container
	logger := container.Logger()
	logger.Info("starting transform server", slog.String("version", version))

	// Ensure cleanup on exit
	defer closeContainer(container, logger)

	// Get transform server from container
	server, err := container.TransformServer()
	if err != nil {
		return fmt.Errorf("failed to initialize transform server: %w", err)
	}

	// Setup graceful shutdown
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Start server in a goroutine
	serverErr := make(chan error, 1)
	go func() {
		if err := server.Start(ctx); err != nil {
			serverErr <- fmt.Errorf("transform server error: %w", err)
		}
	}()

	// Wait for shutdown signal or server error
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), transformShutdownTimeout)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("transform server shutdown: %w", err)
		}
	case err := <-serverErr:
		return err
	}

	return nil
}
