// Package usecase defines business logic interfaces for authentication operations.
package usecase

import (
	"context"

	"github.com/google/uuid"

	userDomain "github.com/winwin/textproc/internal/user/domain"
)

// UserRepository defines persistence operations for user credentials.
// Implementations must support transaction-aware operations via context propagation.
type UserRepository interface {
	// Create stores a new user. Returns ErrUserAlreadyExists when the email
	// is already taken.
	Create(ctx context.Context, user *userDomain.User) error

	// GetByEmail retrieves a user by email. Returns ErrUserNotFound if not found.
	GetByEmail(ctx context.Context, email string) (*userDomain.User, error)

	// GetByID retrieves a user by ID. Returns ErrUserNotFound if not found.
	GetByID(ctx context.Context, id uuid.UUID) (*userDomain.User, error)

	// ExistsByEmail reports whether a user with the given email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// AuthUseCase defines the business logic for account registration and login.
type AuthUseCase interface {
	// Register creates a new account with a hashed password.
	Register(ctx context.Context, input RegisterInput) (*userDomain.User, error)

	// Login verifies credentials and issues a session token. Unknown email
	// and wrong password are indistinguishable to the caller.
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)
}
