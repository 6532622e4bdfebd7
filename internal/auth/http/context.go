// Package http provides HTTP handlers and middleware for authentication operations.
package http

import (
	"context"
)

// subjectKey is a context key type for storing the authenticated subject.
type subjectKey struct{}

// WithSubject stores the authenticated subject (the account email) in the context.
// This is typically called by the session middleware after successful token validation.
func WithSubject(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, subjectKey{}, subject)
}

// GetSubject retrieves the authenticated subject from the context.
// Returns (subject, true) if a subject is present, or ("", false) if none was set.
// This is typically called by handlers that need the caller's identity.
func GetSubject(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(subjectKey{}).(string)
	return subject, ok
}
