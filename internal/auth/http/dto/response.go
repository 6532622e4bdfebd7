// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	"time"
)

// LoginResponse contains the issued session token and its expiration.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
