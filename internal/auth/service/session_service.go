package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	authDomain "github.com/winwin/textproc/internal/auth/domain"
	apperrors "github.com/winwin/textproc/internal/errors"
)

// minSigningKeyLength is the minimum accepted HMAC signing key length in bytes.
// Shorter keys weaken HS256 below its design strength.
const minSigningKeyLength = 32

// sessionService implements SessionService using HMAC-SHA256 signed JWTs.
type sessionService struct {
	signingKey []byte
	expiration time.Duration
	timeFunc   func() time.Time // injectable for testing
}

// Issue creates a signed session token for the given subject with issued-at
// and expiration claims.
func (s *sessionService) Issue(subject string) (string, time.Time, error) {
	now := s.timeFunc()
	expiresAt := now.Add(s.expiration)

	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(s.signingKey)
	if err != nil {
		return "", time.Time{}, apperrors.Wrap(err, "failed to sign session token")
	}

	return signedToken, expiresAt, nil
}

// Validate verifies the token signature and time claims and returns the subject.
// Only HS256 is accepted; tokens signed with any other algorithm are rejected
// before signature verification.
func (s *sessionService) Validate(token string) (string, error) {
	parsed, err := jwt.ParseWithClaims(
		token,
		&jwt.RegisteredClaims{},
		func(t *jwt.Token) (any, error) {
			return s.signingKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithTimeFunc(s.timeFunc),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", authDomain.ErrExpiredSessionToken
		}
		return "", authDomain.ErrInvalidSessionToken
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", authDomain.ErrInvalidSessionToken
	}

	return claims.Subject, nil
}

// NewSessionService creates a new SessionService signing tokens with HMAC-SHA256.
// The signing key must be at least 32 bytes.
func NewSessionService(signingKey string, expiration time.Duration) (SessionService, error) {
	if len(signingKey) < minSigningKeyLength {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "session signing key must be at least 32 bytes")
	}

	return &sessionService{
		signingKey: []byte(signingKey),
		expiration: expiration,
		timeFunc:   time.Now,
	}, nil
}
