package model

import (
	"time"

	"github.com/google/uuid"
)

// TokenManager issues and validates signed access tokens.
type TokenManager interface {
	Issue(userID uuid.UUID, email string, ttl time.Duration) (string, error)
	// Verify checks signature and expiry and returns the embedded claims.
	// Any failure mode (bad signature, malformed token, expired, missing
	// claims) yields ErrInvalidToken.
	Verify(token string) (TokenClaims, error)
	// DecodeUnsafe extracts claims WITHOUT verifying the signature. It exists
	// for debugging and inspection only and must never feed an authorization
	// decision.
	DecodeUnsafe(token string) (TokenClaims, error)
}

// TokenClaims carries the identity embedded in an access token.
type TokenClaims struct {
	UserID    uuid.UUID
	Email     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}
