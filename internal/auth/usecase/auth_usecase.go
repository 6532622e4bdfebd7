package usecase

import (
	"context"
	"strings"
	"time"

	validation "github.com/jellydator/validation"

	"github.com/google/uuid"

	authDomain "github.com/winwin/textproc/internal/auth/domain"
	authService "github.com/winwin/textproc/internal/auth/service"
	"github.com/winwin/textproc/internal/database"
	apperrors "github.com/winwin/textproc/internal/errors"
	userDomain "github.com/winwin/textproc/internal/user/domain"
	appValidation "github.com/winwin/textproc/internal/validation"
)

// RegisterInput contains the input data for account registration.
type RegisterInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginInput contains the input data for credential verification.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginOutput contains the issued session token and its expiration.
type LoginOutput struct {
	Token     string
	ExpiresAt time.Time
}

// authUseCase handles registration and login business logic.
type authUseCase struct {
	txManager       database.TxManager
	userRepo        UserRepository
	passwordService authService.PasswordService
	sessionService  authService.SessionService
}

// NewAuthUseCase creates a new AuthUseCase.
func NewAuthUseCase(
	txManager database.TxManager,
	userRepo UserRepository,
	passwordService authService.PasswordService,
	sessionService authService.SessionService,
) AuthUseCase {
	return &authUseCase{
		txManager:       txManager,
		userRepo:        userRepo,
		passwordService: passwordService,
		sessionService:  sessionService,
	}
}

// validateRegisterInput validates the registration input using jellydator/validation.
func (uc *authUseCase) validateRegisterInput(input RegisterInput) error {
	err := validation.ValidateStruct(&input,
		validation.Field(&input.Email,
			validation.Required.Error("email is required"),
			appValidation.NotBlank,
			appValidation.Email,
			validation.Length(5, 255).Error("email must be between 5 and 255 characters"),
		),
		validation.Field(&input.Password,
			validation.Required.Error("password is required"),
			validation.Length(8, 128).Error("password must be between 8 and 128 characters"),
			appValidation.PasswordStrength{
				MinLength:      8,
				RequireUpper:   true,
				RequireLower:   true,
				RequireNumber:  true,
				RequireSpecial: true,
			},
		),
	)
	return appValidation.WrapValidationError(err)
}

// Register creates a new account. The email is stored exactly as given after
// trimming: lookups are case-sensitive. The unique constraint on email is the
// source of truth for duplicates; ExistsByEmail is only a fast path.
func (uc *authUseCase) Register(ctx context.Context, input RegisterInput) (*userDomain.User, error) {
	input.Email = strings.TrimSpace(input.Email)
	if err := uc.validateRegisterInput(input); err != nil {
		return nil, err
	}

	email := input.Email

	exists, err := uc.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, userDomain.ErrUserAlreadyExists
	}

	hashedPassword, err := uc.passwordService.Hash(input.Password)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to hash password")
	}

	user := &userDomain.User{
		ID:           uuid.Must(uuid.NewV7()),
		Email:        email,
		PasswordHash: hashedPassword,
	}

	// A concurrent registration can still win between the existence check and
	// the insert; the repository maps that violation to ErrUserAlreadyExists.
	err = uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		return uc.userRepo.Create(ctx, user)
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// Login verifies credentials and issues a session token for the account email.
// Unknown email and wrong password both return ErrInvalidCredentials so the
// response reveals nothing about which emails are registered.
func (uc *authUseCase) Login(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	user, err := uc.userRepo.GetByEmail(ctx, strings.TrimSpace(input.Email))
	if err != nil {
		if apperrors.Is(err, userDomain.ErrUserNotFound) {
			return nil, authDomain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !uc.passwordService.Verify(input.Password, user.PasswordHash) {
		return nil, authDomain.ErrInvalidCredentials
	}

	token, expiresAt, err := uc.sessionService.Issue(user.Email)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to issue session token")
	}

	return &LoginOutput{
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}
