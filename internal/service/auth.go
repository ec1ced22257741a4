package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jmfontan/docchat-server/internal/logger"
	"github.com/jmfontan/docchat-server/internal/model"
)

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, encodedHash string) bool
	NeedsRehash(encodedHash string) bool
}

// Auth provides registration, login and token refresh on top of the user
// store, the password hasher and the token manager.
type Auth struct {
	userStore model.UserStore
	hasher    PasswordHasher
	tokens    model.TokenManager
	logger    *logger.Logger
}

// NewAuth creates an Auth service.
func NewAuth(userStore model.UserStore, hasher PasswordHasher, tokens model.TokenManager, logger *logger.Logger) *Auth {
	return &Auth{
		userStore: userStore,
		hasher:    hasher,
		tokens:    tokens,
		logger:    logger,
	}
}

// Register creates a user with a freshly hashed password.
func (a *Auth) Register(ctx context.Context, email, password string) (model.User, error) {
	a.logger.Debug("Auth service: registering user", "email", email)

	existing, err := a.userStore.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}
	if existing.ID != uuid.Nil {
		a.logger.Info("Auth service: user already exists", "email", email)
		return model.User{}, model.ErrEmailTaken
	}

	hash, err := a.hasher.Hash(password)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user, err := a.userStore.Create(ctx, model.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		a.logger.Error("Auth service: failed to create user",
			"email", email,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	a.logger.Info("Auth service: user registered", "email", email, "user_id", user.ID)

	return user, nil
}

// Login verifies the password and issues an access token. Stored hashes
// produced with outdated cost parameters are transparently regenerated after
// a successful verify.
func (a *Auth) Login(ctx context.Context, email, password string) (string, error) {
	a.logger.Debug("Auth service: logging user in", "email", email)

	user, err := a.userStore.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		return "", model.ErrInvalidCredentials
	}
	if err != nil {
		return "", fmt.Errorf("failed to get user by email: %w", err)
	}

	if !a.hasher.Verify(password, user.PasswordHash) {
		a.logger.Info("Auth service: password verification failed", "email", email)
		return "", model.ErrInvalidCredentials
	}

	if a.hasher.NeedsRehash(user.PasswordHash) {
		a.rehash(ctx, user, password)
	}

	tokenString, err := a.tokens.Issue(user.ID, user.Email, 0)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	a.logger.Info("Auth service: user logged in", "email", email, "user_id", user.ID)

	return tokenString, nil
}

// Refresh exchanges a still-valid token for a fresh one.
func (a *Auth) Refresh(ctx context.Context, tokenString string) (string, error) {
	claims, err := a.tokens.Verify(tokenString)
	if err != nil {
		return "", model.ErrInvalidToken
	}

	fresh, err := a.tokens.Issue(claims.UserID, claims.Email, 0)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	return fresh, nil
}

// GetUserID validates the token and returns the authenticated user ID.
// Used by the authentication middleware.
func (a *Auth) GetUserID(ctx context.Context, tokenString string) (uuid.UUID, error) {
	claims, err := a.tokens.Verify(tokenString)
	if err != nil {
		return uuid.Nil, err
	}
	return claims.UserID, nil
}

// rehash upgrades a stale hash in place. A failure here must not fail the
// login: the old hash still verifies.
func (a *Auth) rehash(ctx context.Context, user model.User, password string) {
	fresh, err := a.hasher.Hash(password)
	if err != nil {
		a.logger.Warn("Auth service: rehash failed",
			"user_id", user.ID,
			"error", err.Error())
		return
	}
	if err := a.userStore.UpdatePasswordHash(ctx, user.ID, fresh); err != nil {
		a.logger.Warn("Auth service: failed to store rehashed password",
			"user_id", user.ID,
			"error", err.Error())
		return
	}
	a.logger.Info("Auth service: password hash upgraded", "user_id", user.ID)
}
