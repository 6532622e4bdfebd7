// Package app provides dependency injection container for assembling application components.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/gin-gonic/gin"

	authHTTP "github.com/winwin/textproc/internal/auth/http"
	authService "github.com/winwin/textproc/internal/auth/service"
	authUseCase "github.com/winwin/textproc/internal/auth/usecase"
	"github.com/winwin/textproc/internal/config"
	"github.com/winwin/textproc/internal/database"
	"github.com/winwin/textproc/internal/http"
	"github.com/winwin/textproc/internal/metrics"
	processingGateway "github.com/winwin/textproc/internal/processing/gateway"
	processingHTTP "github.com/winwin/textproc/internal/processing/http"
	processingUseCase "github.com/winwin/textproc/internal/processing/usecase"
	transformHTTP "github.com/winwin/textproc/internal/transform/http"
	transformService "github.com/winwin/textproc/internal/transform/service"
)

// Container holds all application dependencies and provides methods to access them.
// It follows the lazy initialization pattern - components are created on first access.
type Container struct {
	// Configuration
	config *config.Config

	// Infrastructure
	logger *slog.Logger
	db     *sql.DB

	// Managers
	txManager database.TxManager

	// Repositories
	userRepo          authUseCase.UserRepository
	processingLogRepo processingUseCase.ProcessingLogRepository

	// Services
	passwordService  authService.PasswordService
	sessionService   authService.SessionService
	transformGateway processingGateway.TransformGateway
	transformer      transformService.Transformer

	// Use Cases
	authUseCase    authUseCase.AuthUseCase
	processUseCase processingUseCase.ProcessUseCase

	// HTTP Handlers
	authHandler      *authHTTP.AuthHandler
	processHandler   *processingHTTP.ProcessHandler
	transformHandler *transformHTTP.TransformHandler

	// Metrics
	metricsProvider *metrics.Provider
	businessMetrics metrics.BusinessMetrics

	// Servers
	apiServer       *http.Server
	transformServer *http.Server
	metricsServer   *http.MetricsServer

	// Initialization flags and mutex for thread-safety
	mu                    sync.Mutex
	loggerInit            sync.Once
	dbInit                sync.Once
	txManagerInit         sync.Once
	userRepoInit          sync.Once
	processingLogRepoInit sync.Once
	passwordServiceInit   sync.Once
	sessionServiceInit    sync.Once
	transformGatewayInit  sync.Once
	transformerInit       sync.Once
	authUseCaseInit       sync.Once
	processUseCaseInit    sync.Once
	authHandlerInit       sync.Once
	processHandlerInit    sync.Once
	transformHandlerInit  sync.Once
	metricsProviderInit   sync.Once
	businessMetricsInit   sync.Once
	apiServerInit         sync.Once
	transformServerInit   sync.Once
	metricsServerInit     sync.Once
	initErrors            map[string]error
}

// NewContainer creates a new dependency injection container with the provided configuration.
func NewContainer(cfg *config.Config) *Container {
	return &Container{
		config:     cfg,
		initErrors: make(map[string]error),
	}
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// Logger returns the configured logger instance.
// It creates a new logger on first access based on the log level in configuration.
func (c *Container) Logger() *slog.Logger {
	c.loggerInit.Do(func() {
		c.logger = c.initLogger()
	})
	return c.logger
}

// DB returns the database connection.
// It creates and configures the database connection on first access.
func (c *Container) DB() (*sql.DB, error) {
	var err error
	c.dbInit.Do(func() {
		c.db, err = c.initDB()
		if err != nil {
			c.initErrors["db"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["db"]; exists {
		return nil, storedErr
	}
	return c.db, nil
}

// TxManager returns the transaction manager.
// It requires a database connection to be initialized first.
func (c *Container) TxManager() (database.TxManager, error) {
	var err error
	c.txManagerInit.Do(func() {
		c.txManager, err = c.initTxManager()
		if err != nil {
			c.initErrors["txManager"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["txManager"]; exists {
		return nil, storedErr
	}
	return c.txManager, nil
}

// MetricsProvider returns the OpenTelemetry metrics provider.
// Returns nil when metrics are disabled in configuration.
func (c *Container) MetricsProvider() (*metrics.Provider, error) {
	var err error
	c.metricsProviderInit.Do(func() {
		c.metricsProvider, err = c.initMetricsProvider()
		if err != nil {
			c.initErrors["metricsProvider"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["metricsProvider"]; exists {
		return nil, storedErr
	}
	return c.metricsProvider, nil
}

// BusinessMetrics returns the business metrics recorder.
// Returns a no-op implementation when metrics are disabled.
func (c *Container) BusinessMetrics() (metrics.BusinessMetrics, error) {
	var err error
	c.businessMetricsInit.Do(func() {
		c.businessMetrics, err = c.initBusinessMetrics()
		if err != nil {
			c.initErrors["businessMetrics"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["businessMetrics"]; exists {
		return nil, storedErr
	}
	return c.businessMetrics, nil
}

// APIServer returns the public API server with all routes registered.
func (c *Container) APIServer() (*http.Server, error) {
	var err error
	c.apiServerInit.Do(func() {
		c.apiServer, err = c.initAPIServer()
		if err != nil {
			c.initErrors["apiServer"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["apiServer"]; exists {
		return nil, storedErr
	}
	return c.apiServer, nil
}

// TransformServer returns the internal transform server with all routes registered.
func (c *Container) TransformServer() (*http.Server, error) {
	var err error
	c.transformServerInit.Do(func() {
		c.transformServer, err = c.initTransformServer()
		if err != nil {
			c.initErrors["transformServer"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["transformServer"]; exists {
		return nil, storedErr
	}
	return c.transformServer, nil
}

// MetricsServer returns the Prometheus metrics server.
// Returns nil when metrics are disabled in configuration.
func (c *Container) MetricsServer() (*http.MetricsServer, error) {
	var err error
	c.metricsServerInit.Do(func() {
		c.metricsServer, err = c.initMetricsServer()
		if err != nil {
			c.initErrors["metricsServer"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["metricsServer"]; exists {
		return nil, storedErr
	}
	return c.metricsServer, nil
}

// Shutdown performs cleanup of all initialized resources.
// It should be called when the application is shutting down.
func (c *Container) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var shutdownErrors []error

	// Shutdown servers if initialized
	if c.apiServer != nil {
		if err := c.apiServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("api server shutdown: %w", err))
		}
	}

	if c.transformServer != nil {
		if err := c.transformServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("transform server shutdown: %w", err))
		}
	}

	if c.metricsServer != nil {
		if err := c.metricsServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics server shutdown: %w", err))
		}
	}

	// Shutdown metrics provider if initialized
	if c.metricsProvider != nil {
		if err := c.metricsProvider.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics provider shutdown: %w", err))
		}
	}

	// Close database connection if initialized
	if c.db != nil {
		if err := c.db.Close(); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("database close: %w", err))
		}
	}

	// Return combined errors if any occurred
	if len(shutdownErrors) > 0 {
		return fmt.Errorf("shutdown errors: %v", shutdownErrors)
	}

	return nil
}

// initLogger creates and configures a structured logger based on the log level.
func (c *Container) initLogger() *slog.Logger {
	var logLevel slog.Level
	switch c.config.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})

	return slog.New(handler)
}

// initDB creates and configures the database connection.
func (c *Container) initDB() (*sql.DB, error) {
	db, err := database.Connect(database.Config{
		Driver:             c.config.DBDriver,
		ConnectionString:   c.config.DBConnectionString,
		MaxOpenConnections: c.config.DBMaxOpenConnections,
		MaxIdleConnections: c.config.DBMaxIdleConnections,
		ConnMaxLifetime:    c.config.DBConnMaxLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// initTxManager creates the transaction manager using the database connection.
func (c *Container) initTxManager() (database.TxManager, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for tx manager: %w", err)
	}
	return database.NewTxManager(db), nil
}

// initMetricsProvider creates the OpenTelemetry metrics provider.
func (c *Container) initMetricsProvider() (*metrics.Provider, error) {
	if !c.config.MetricsEnabled {
		return nil, nil
	}
	provider, err := metrics.NewProvider(c.config.MetricsNamespace)
	if err != nil {
		return nil, fmt.Errorf("failed to create metrics provider: %w", err)
	}
	return provider, nil
}

// initBusinessMetrics creates the business metrics recorder.
func (c *Container) initBusinessMetrics() (metrics.BusinessMetrics, error) {
	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for business metrics: %w", err)
	}
	if provider == nil {
		return metrics.NewNoOpBusinessMetrics(), nil
	}
	businessMetrics, err := metrics.NewBusinessMetrics(provider.MeterProvider(), c.config.MetricsNamespace)
	if err != nil {
		return nil, fmt.Errorf("failed to create business metrics: %w", err)
	}
	return businessMetrics, nil
}

// initAPIServer creates the public API server and registers its routes.
// Registration and login are open; process and history require a session token.
func (c *Container) initAPIServer() (*http.Server, error) {
	logger := c.Logger()

	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for api server: %w", err)
	}

	sessionService, err := c.SessionService()
	if err != nil {
		return nil, fmt.Errorf("failed to get session service for api server: %w", err)
	}

	authHandler, err := c.AuthHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get auth handler for api server: %w", err)
	}

	processHandler, err := c.ProcessHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get process handler for api server: %w", err)
	}

	server := http.NewServer(db, c.config.ServerHost, c.config.ServerPort, logger)

	extra := []gin.HandlerFunc{
		http.CORSMiddleware(c.config.CORSEnabled, c.config.CORSAllowOrigins, logger),
	}
	if c.config.MetricsEnabled {
		provider, err := c.MetricsProvider()
		if err != nil {
			return nil, fmt.Errorf("failed to get metrics provider for api server: %w", err)
		}
		if provider != nil {
			extra = append(extra, metrics.HTTPMetricsMiddleware(provider.MeterProvider(), c.config.MetricsNamespace))
		}
	}

	router := server.BuildRouter(extra...)

	api := router.Group("/api")
	auth := api.Group("/auth")
	auth.POST("/register", authHandler.RegisterHandler)
	auth.POST("/login", authHandler.LoginHandler)

	protected := api.Group("")
	protected.Use(authHTTP.SessionMiddleware(sessionService, logger))
	protected.POST("/process", processHandler.ProcessHandler)
	protected.GET("/history", processHandler.HistoryHandler)

	return server, nil
}

// initTransformServer creates the internal transform server and registers its routes.
// The transform server has no database access; its readiness check is unconditional.
func (c *Container) initTransformServer() (*http.Server, error) {
	logger := c.Logger()

	transformHandler := c.TransformHandler()

	server := http.NewServer(nil, c.config.TransformServerHost, c.config.TransformServerPort, logger)

	router := server.BuildRouter()

	api := router.Group("/api")
	api.Use(transformHTTP.InternalAuthMiddleware(c.config.InternalAuthToken, logger))
	api.POST("/transform", transformHandler.TransformHandler)

	return server, nil
}

// initMetricsServer creates the Prometheus metrics server.
func (c *Container) initMetricsServer() (*http.MetricsServer, error) {
	if !c.config.MetricsEnabled {
		return nil, nil
	}

	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for metrics server: %w", err)
	}

	logger := c.Logger()

	return http.NewMetricsServer(c.config.ServerHost, c.config.MetricsPort, logger, provider), nil
}
