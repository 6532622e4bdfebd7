package usecase

import (
	"context"
	"time"

	"github.com/winwin/textproc/internal/metrics"
	"github.com/winwin/textproc/internal/processing/domain"
)

// processUseCaseWithMetrics decorates ProcessUseCase with metrics instrumentation.
type processUseCaseWithMetrics struct {
	next    ProcessUseCase
	metrics metrics.BusinessMetrics
}

// NewProcessUseCaseWithMetrics wraps a ProcessUseCase with metrics recording.
func NewProcessUseCaseWithMetrics(useCase ProcessUseCase, m metrics.BusinessMetrics) ProcessUseCase {
	return &processUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Process records metrics for transformation operations.
func (p *processUseCaseWithMetrics) Process(ctx context.Context, subject, inputText string) (string, error) {
	start := time.Now()
	output, err := p.next.Process(ctx, subject, inputText)

	status := "success"
	if err != nil {
		status = "error"
	}

	p.metrics.RecordOperation(ctx, "processing", "process", status)
	p.metrics.RecordDuration(ctx, "processing", "process", time.Since(start), status)

	return output, err
}

// History records metrics for history list operations.
func (p *processUseCaseWithMetrics) History(
	ctx context.Context,
	subject string,
	offset, limit int,
	createdAtFrom, createdAtTo *time.Time,
) ([]*domain.ProcessingLog, error) {
	start := time.Now()
	logs, err := p.next.History(ctx, subject, offset, limit, createdAtFrom, createdAtTo)

	status := "success"
	if err != nil {
		status = "error"
	}

	p.metrics.RecordOperation(ctx, "processing", "history", status)
	p.metrics.RecordDuration(ctx, "processing", "history", time.Since(start), status)

	return logs, err
}
