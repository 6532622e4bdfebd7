package app

import (
	"fmt"

	processingGateway "github.com/winwin/textproc/internal/processing/gateway"
	processingHTTP "github.com/winwin/textproc/internal/processing/http"
	processingRepository "github.com/winwin/textproc/internal/processing/repository"
	processingUseCase "github.com/winwin/textproc/internal/processing/usecase"
)

// ProcessingLogRepository returns the processing log repository based on database driver.
func (c *Container) ProcessingLogRepository() (processingUseCase.ProcessingLogRepository, error) {
	var err error
	c.processingLogRepoInit.Do(func() {
		c.processingLogRepo, err = c.initProcessingLogRepository()
		if err != nil {
			c.initErrors["processingLogRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["processingLogRepo"]; exists {
		return nil, storedErr
	}
	return c.processingLogRepo, nil
}

// TransformGateway returns the HTTP client for the internal transform service.
func (c *Container) TransformGateway() processingGateway.TransformGateway {
	c.transformGatewayInit.Do(func() {
		c.transformGateway = processingGateway.NewTransformClient(
			c.config.TransformServiceURL,
			c.config.InternalAuthToken,
			c.config.TransformRequestTimeout,
			c.Logger(),
		)
	})
	return c.transformGateway
}

// ProcessUseCase returns the text processing use case.
func (c *Container) ProcessUseCase() (processingUseCase.ProcessUseCase, error) {
	var err error
	c.processUseCaseInit.Do(func() {
		c.processUseCase, err = c.initProcessUseCase()
		if err != nil {
			c.initErrors["processUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["processUseCase"]; exists {
		return nil, storedErr
	}
	return c.processUseCase, nil
}

// ProcessHandler returns the text processing HTTP handler.
func (c *Container) ProcessHandler() (*processingHTTP.ProcessHandler, error) {
	var err error
	c.processHandlerInit.Do(func() {
		c.processHandler, err = c.initProcessHandler()
		if err != nil {
			c.initErrors["processHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["processHandler"]; exists {
		return nil, storedErr
	}
	return c.processHandler, nil
}

// initProcessingLogRepository creates the processing log repository instance.
func (c *Container) initProcessingLogRepository() (processingUseCase.ProcessingLogRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for processing log repository: %w", err)
	}

	// Select the appropriate repository based on the database driver
	switch c.config.DBDriver {
	case "mysql":
		return processingRepository.NewMySQLProcessingLogRepository(db), nil
	case "postgres":
		return processingRepository.NewPostgreSQLProcessingLogRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initProcessUseCase creates the text processing use case with all its dependencies.
func (c *Container) initProcessUseCase() (processingUseCase.ProcessUseCase, error) {
	userRepo, err := c.UserRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get user repository for process use case: %w", err)
	}

	logRepo, err := c.ProcessingLogRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get processing log repository for process use case: %w", err)
	}

	transformGateway := c.TransformGateway()
	logger := c.Logger()

	baseUseCase := processingUseCase.NewProcessUseCase(userRepo, logRepo, transformGateway, logger)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for process use case: %w", err)
		}
		return processingUseCase.NewProcessUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

// initProcessHandler creates the text processing HTTP handler with all its dependencies.
func (c *Container) initProcessHandler() (*processingHTTP.ProcessHandler, error) {
	useCase, err := c.ProcessUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get process use case for process handler: %w", err)
	}

	logger := c.Logger()

	return processingHTTP.NewProcessHandler(useCase, logger), nil
}
