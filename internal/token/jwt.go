package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/jmfontan/docchat-server/internal/logger"
	"github.com/jmfontan/docchat-server/internal/model"
)

// DefaultTTL is the access token lifetime used when the caller passes no TTL.
const DefaultTTL = 60 * time.Minute

// Claims represents JWT claims with the user's email alongside the
// registered subject.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// JWT implements model.TokenManager backed by symmetric HMAC-SHA256.
type JWT struct {
	secretKey  string
	defaultTTL time.Duration
	logger     *logger.Logger
}

// NewJWT creates a JWT token manager. A missing secret is a configuration
// error and is rejected here rather than at first use.
func NewJWT(secretKey string, defaultTTL time.Duration, logger *logger.Logger) (*JWT, error) {
	if secretKey == "" {
		return nil, errors.New("token signing secret is not configured")
	}
	if defaultTTL <= 0 {
		defaultTTL = DefaultTTL
	}
	return &JWT{secretKey: secretKey, defaultTTL: defaultTTL, logger: logger}, nil
}

// Issue creates a signed token embedding user ID, email, issue and expiry
// times. A zero ttl falls back to the configured default.
func (j *JWT) Issue(userID uuid.UUID, email string, ttl time.Duration) (string, error) {
	if ttl == 0 {
		ttl = j.defaultTTL
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Email: email,
	})

	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// Verify validates signature and expiry and extracts the claims. Every
// failure mode maps to model.ErrInvalidToken so callers cannot distinguish a
// forged token from an expired one; the specific cause goes to the logs.
func (j *JWT) Verify(tokenString string) (model.TokenClaims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		j.logger.Debug("token verification failed", "error", err.Error())
		return model.TokenClaims{}, model.ErrInvalidToken
	}
	if !token.Valid {
		j.logger.Debug("token verification failed", "error", "token not valid")
		return model.TokenClaims{}, model.ErrInvalidToken
	}

	out, err := claimsToModel(claims)
	if err != nil {
		// A valid signature with missing claims is never partially trusted.
		j.logger.Debug("token verification failed", "error", err.Error())
		return model.TokenClaims{}, model.ErrInvalidToken
	}

	return out, nil
}

// DecodeUnsafe extracts claims without verifying the signature. Debugging
// and inspection only; never use its output for authorization decisions.
func (j *JWT) DecodeUnsafe(tokenString string) (model.TokenClaims, error) {
	claims := &Claims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return model.TokenClaims{}, model.ErrInvalidToken
	}

	out, err := claimsToModel(claims)
	if err != nil {
		return model.TokenClaims{}, model.ErrInvalidToken
	}

	return out, nil
}

func claimsToModel(claims *Claims) (model.TokenClaims, error) {
	if claims.Subject == "" {
		return model.TokenClaims{}, errors.New("missing subject claim")
	}
	if claims.Email == "" {
		return model.TokenClaims{}, errors.New("missing email claim")
	}
	if claims.ExpiresAt == nil {
		return model.TokenClaims{}, errors.New("missing expiry claim")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return model.TokenClaims{}, fmt.Errorf("malformed subject claim: %w", err)
	}

	out := model.TokenClaims{
		UserID:    userID,
		Email:     claims.Email,
		ExpiresAt: claims.ExpiresAt.Time,
	}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}

	return out, nil
}
