package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	authUseCase "github.com/winwin/textproc/internal/auth/usecase"
	apperrors "github.com/winwin/textproc/internal/errors"
	"github.com/winwin/textproc/internal/processing/domain"
	"github.com/winwin/textproc/internal/processing/gateway"
	userDomain "github.com/winwin/textproc/internal/user/domain"
)

// processUseCase orchestrates transformation calls and audit logging.
type processUseCase struct {
	userRepo  authUseCase.UserRepository
	logRepo   ProcessingLogRepository
	transform gateway.TransformGateway
	logger    *slog.Logger
}

// NewProcessUseCase creates a new ProcessUseCase.
func NewProcessUseCase(
	userRepo authUseCase.UserRepository,
	logRepo ProcessingLogRepository,
	transform gateway.TransformGateway,
	logger *slog.Logger,
) ProcessUseCase {
	return &processUseCase{
		userRepo:  userRepo,
		logRepo:   logRepo,
		transform: transform,
		logger:    logger,
	}
}

// resolveSubject maps the session subject back to a stored account.
// A valid token whose account has since disappeared is an authentication
// failure, not a not-found.
func (uc *processUseCase) resolveSubject(ctx context.Context, subject string) (*userDomain.User, error) {
	user, err := uc.userRepo.GetByEmail(ctx, subject)
	if err != nil {
		if apperrors.Is(err, userDomain.ErrUserNotFound) {
			return nil, domain.ErrUnknownSubject
		}
		return nil, err
	}
	return user, nil
}

// Process transforms inputText through the downstream service and appends
// exactly one processing log entry per successful transformation.
//
// The audit write is best-effort: a failed write is logged at Error level
// and the transformed text is still returned to the caller.
func (uc *processUseCase) Process(ctx context.Context, subject, inputText string) (string, error) {
	user, err := uc.resolveSubject(ctx, subject)
	if err != nil {
		return "", err
	}

	outputText, err := uc.transform.Transform(ctx, inputText)
	if err != nil {
		// No audit entry for failed transformations
		return "", err
	}

	log := &domain.ProcessingLog{
		ID:         uuid.Must(uuid.NewV7()),
		UserID:     user.ID,
		InputText:  inputText,
		OutputText: outputText,
		CreatedAt:  time.Now().UTC(),
	}

	if err := uc.logRepo.Create(ctx, log); err != nil {
		uc.logger.Error("failed to write processing log",
			slog.String("user_id", user.ID.String()),
			slog.String("error", err.Error()))
	}

	return outputText, nil
}

// History lists the subject's processing log entries, newest first.
func (uc *processUseCase) History(
	ctx context.Context,
	subject string,
	offset, limit int,
	createdAtFrom, createdAtTo *time.Time,
) ([]*domain.ProcessingLog, error) {
	user, err := uc.resolveSubject(ctx, subject)
	if err != nil {
		return nil, err
	}

	return uc.logRepo.List(ctx, user.ID, offset, limit, createdAtFrom, createdAtTo)
}
